package scene

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/taigrr/mvpbox/pkg/math3d"
)

// fakeKeys implements KeyState for testing.
type fakeKeys struct {
	down    map[string]bool
	pressed map[string]bool
}

func (k fakeKeys) IsKeyDown(key string) bool    { return k.down[key] }
func (k fakeKeys) IsKeyPressed(key string) bool { return k.pressed[key] }

func pressed(keys ...string) fakeKeys {
	k := fakeKeys{pressed: map[string]bool{}, down: map[string]bool{}}
	for _, key := range keys {
		k.pressed[key] = true
		k.down[key] = true
	}
	return k
}

func TestUIStateApply(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want UIState
	}{
		{"no keys", pressed(), DefaultUIState()},
		{"translate", pressed("a"), UIState{AnimationTranslate, ProjectionPerspective}},
		{"scale and ortho", pressed("d", "o"), UIState{AnimationScale, ProjectionOrthographic}},
		{"off", pressed("x"), UIState{AnimationOff, ProjectionPerspective}},
		{"first binding wins", pressed("x", "a"), UIState{AnimationTranslate, ProjectionPerspective}},
		{"perspective wins over ortho", pressed("o", "p"), UIState{AnimationRotate, ProjectionPerspective}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DefaultUIState().Apply(tc.keys); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUIStateByName(t *testing.T) {
	s := UIState{AnimationScale, ProjectionOrthographic}
	if got := s.State(CategoryAnimation); got != "Scale" {
		t.Errorf("Animation = %q, want Scale", got)
	}
	if got := s.State(CategoryProjection); got != "Orthographic" {
		t.Errorf("Projection = %q, want Orthographic", got)
	}
	if got := s.State("Lighting"); got != "" {
		t.Errorf("unknown category = %q, want empty", got)
	}
}

func TestParseModes(t *testing.T) {
	for _, a := range []Animation{AnimationTranslate, AnimationRotate, AnimationScale, AnimationOff} {
		got, err := ParseAnimation(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAnimation(%q) = %v, %v", a.String(), got, err)
		}
	}
	for _, p := range []Projection{ProjectionPerspective, ProjectionOrthographic} {
		got, err := ParseProjection(p.String())
		if err != nil || got != p {
			t.Errorf("ParseProjection(%q) = %v, %v", p.String(), got, err)
		}
	}
	if got, err := ParseProjection("orthographic"); err != nil || got != ProjectionOrthographic {
		t.Errorf("ParseProjection is case sensitive: %v, %v", got, err)
	}
	if _, err := ParseAnimation("Wobble"); err == nil {
		t.Error("expected error for unknown animation")
	}
	if _, err := ParseProjection("Fisheye"); err == nil {
		t.Error("expected error for unknown projection")
	}
}

func TestDirectionPriority(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want Direction
	}{
		{"none", pressed(), DirectionNone},
		{"left", pressed(KeyLeft), DirectionLeft},
		{"up beats down", pressed(KeyDown, KeyUp), DirectionUp},
		{"down beats left", pressed(KeyLeft, KeyDown), DirectionDown},
		{"left beats right", pressed(KeyRight, KeyLeft), DirectionLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DirectionFrom(tc.keys); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNudgeMovesEyeAndUp(t *testing.T) {
	cam := DefaultCamera()
	ctl := DefaultControls()

	tests := []struct {
		dir   Direction
		delta math3d.Vec3
	}{
		{DirectionUp, math3d.V3(0, 0.5, 0)},
		{DirectionDown, math3d.V3(0, -0.5, 0)},
		{DirectionLeft, math3d.V3(-0.5, 0, 0)},
		{DirectionRight, math3d.V3(0.5, 0, 0)},
		{DirectionNone, math3d.Zero3()},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			got := cam.Nudge(tc.dir, ctl)
			if got.Eye != cam.Eye.Add(tc.delta) {
				t.Errorf("eye = %v, want %v", got.Eye, cam.Eye.Add(tc.delta))
			}
			if got.Up != cam.Up.Add(tc.delta) {
				t.Errorf("up = %v, want %v", got.Up, cam.Up.Add(tc.delta))
			}
			if got.Center != cam.Center {
				t.Errorf("center moved to %v", got.Center)
			}
		})
	}

	if cam != DefaultCamera() {
		t.Error("Nudge modified its receiver")
	}
}

func TestNudgeLockUp(t *testing.T) {
	cam := DefaultCamera().Nudge(DirectionRight, Controls{Step: 1, LockUp: true})
	if cam.Up != math3d.Up() {
		t.Errorf("up = %v, want unchanged", cam.Up)
	}
	if cam.Eye != math3d.V3(3.5, 1.5, -2.5) {
		t.Errorf("eye = %v, want (3.5, 1.5, -2.5)", cam.Eye)
	}
}

func TestNudgeIsUnbounded(t *testing.T) {
	cam := DefaultCamera()
	for range 100 {
		cam = cam.Nudge(DirectionUp, DefaultControls())
	}
	if cam.Eye.Y != 51.5 || cam.Up.Y != 51 {
		t.Errorf("eye.Y = %v, up.Y = %v, want 51.5 and 51", cam.Eye.Y, cam.Up.Y)
	}
}

func TestModelMatrix(t *testing.T) {
	const phase = 0.5

	tests := []struct {
		anim Animation
		want math3d.Mat4
	}{
		{AnimationTranslate, math3d.Translation(1.5, 0, 1.5)},
		{AnimationRotate, math3d.RotationY(phase)},
		{AnimationScale, math3d.Scale(phase)},
		{AnimationOff, math3d.Identity()},
	}

	for _, tc := range tests {
		t.Run(tc.anim.String(), func(t *testing.T) {
			if got := ModelMatrix(tc.anim, phase); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComposeOrder(t *testing.T) {
	cam := DefaultCamera()
	ui := UIState{AnimationTranslate, ProjectionOrthographic}

	frame, err := Compose(cam, ui, 0.7)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	want := frame.Projection.Mul(frame.View.Mul(frame.Model))
	if frame.MVP != want {
		t.Errorf("MVP = %v, want P*(V*M) = %v", frame.MVP, want)
	}

	wrong := frame.Model.Mul(frame.View).Mul(frame.Projection)
	if frame.MVP.ApproxEqual(wrong, 1e-9) {
		t.Error("MVP should not equal M*V*P")
	}
}

func TestUpdateRotatePhaseZero(t *testing.T) {
	cam := DefaultCamera()
	cam.Eye = math3d.V3(0, 0, 3)

	in := Input{
		UI:       UIState{AnimationRotate, ProjectionPerspective},
		Phase:    0,
		Controls: DefaultControls(),
	}
	_, frame, err := Update(cam, in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if frame.Model != math3d.Identity() {
		t.Errorf("model = %v, want identity", frame.Model)
	}
	if got := frame.MVP.At(3, 2); got != -1 {
		t.Errorf("MVP(3,2) = %v, want exactly -1", got)
	}
	if got := frame.Projection.At(3, 2); got != -1 {
		t.Errorf("P(3,2) = %v, want exactly -1", got)
	}
}

func TestUpdateKeepsPerspectiveRow(t *testing.T) {
	// Row 3 of P*X is -1 times row 2 of X for any X.
	in := Input{UI: UIState{AnimationRotate, ProjectionPerspective}, Phase: 0.3, Controls: DefaultControls()}
	_, frame, err := Update(DefaultCamera(), in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	vm := frame.View.Mul(frame.Model)
	for col := range 4 {
		if got, want := frame.MVP.At(3, col), -vm.At(2, col); math.Abs(got-want) > 1e-12 {
			t.Errorf("MVP(3,%d) = %v, want %v", col, got, want)
		}
	}
}

func TestUpdateAppliesNudgeBeforeView(t *testing.T) {
	in := Input{
		UI:        DefaultUIState(),
		Direction: DirectionLeft,
		Controls:  DefaultControls(),
	}
	next, frame, err := Update(DefaultCamera(), in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if next.Eye != math3d.V3(2, 1.5, -2.5) {
		t.Errorf("eye = %v, want (2, 1.5, -2.5)", next.Eye)
	}
	view, _ := next.View()
	if frame.View != view {
		t.Error("frame view was not built from the nudged camera")
	}
}

func TestUpdateDegenerateView(t *testing.T) {
	cam := DefaultCamera()
	cam.Eye = math3d.V3(0, 2, 0)
	cam.Up = math3d.V3(0, 1, 0)

	in := Input{UI: DefaultUIState(), Direction: DirectionUp, Controls: DefaultControls()}
	next, _, err := Update(cam, in)
	if !errors.Is(err, math3d.ErrDegenerate) {
		t.Fatalf("err = %v, want ErrDegenerate", err)
	}
	if next.Eye.Y != 2.5 {
		t.Errorf("camera state should still advance, eye.Y = %v", next.Eye.Y)
	}
}

func TestUpdateInvalidProjection(t *testing.T) {
	cam := DefaultCamera()
	cam.Near = 0

	_, _, err := Update(cam, Input{UI: DefaultUIState(), Controls: DefaultControls()})
	if !errors.Is(err, math3d.ErrInvalidProjection) {
		t.Errorf("err = %v, want ErrInvalidProjection", err)
	}
}

func TestInitialFrame(t *testing.T) {
	cam := DefaultCamera()
	frame, err := Initial(cam)
	if err != nil {
		t.Fatalf("Initial: %v", err)
	}
	if frame.MVP != frame.Projection.Mul(frame.View) {
		t.Error("initial MVP should be P*V")
	}
}

func TestPhase(t *testing.T) {
	if got := Phase(time.UnixMilli(0)); got != 0 {
		t.Errorf("Phase(0) = %v, want 0", got)
	}

	quarter := time.UnixMilli(int64(math.Round(math.Pi / 2 * 2000)))
	if got := Phase(quarter); math.Abs(got-1) > 1e-6 {
		t.Errorf("Phase(quarter) = %v, want ~1", got)
	}

	for ms := int64(0); ms < 20000; ms += 137 {
		if p := Phase(time.UnixMilli(ms)); p < -1 || p > 1 {
			t.Fatalf("Phase out of range: %v", p)
		}
	}
}

func TestFollowerConverges(t *testing.T) {
	start := DefaultCamera()
	f := NewFollower(60, start)

	target := start.Nudge(DirectionRight, Controls{Step: 2})
	var got Camera
	for range 240 {
		got = f.Follow(target)
	}

	if !got.Eye.ApproxEqual(target.Eye, 1e-3) {
		t.Errorf("eye = %v, want %v", got.Eye, target.Eye)
	}
	if !got.Up.ApproxEqual(target.Up, 1e-3) {
		t.Errorf("up = %v, want %v", got.Up, target.Up)
	}
	if got.FovY != target.FovY || got.Center != target.Center {
		t.Error("follower should only ease eye and up")
	}
}

func TestFollowerLagsFirstFrame(t *testing.T) {
	start := DefaultCamera()
	f := NewFollower(60, start)

	target := start.Nudge(DirectionUp, Controls{Step: 1})
	got := f.Follow(target)
	if got.Eye.Y <= start.Eye.Y || got.Eye.Y >= target.Eye.Y {
		t.Errorf("first eased eye.Y = %v, want strictly between %v and %v", got.Eye.Y, start.Eye.Y, target.Eye.Y)
	}
}

func TestKeysCoverBindings(t *testing.T) {
	got := map[string]bool{}
	for _, k := range Keys() {
		got[k] = true
	}
	for _, k := range []string{"up", "down", "left", "right", "a", "s", "d", "x", "p", "o"} {
		if !got[k] {
			t.Errorf("Keys() missing %q", k)
		}
	}
}
