package scene

import (
	"fmt"

	"github.com/taigrr/mvpbox/pkg/math3d"
)

// DefaultNudgeStep is how far one arrow-key frame moves the camera.
const DefaultNudgeStep = 0.5

// Camera holds the look-at frame and the static projection parameters.
// FovY is in degrees. Left and Right bound the orthographic box
// horizontally; its vertical extent follows from Aspect.
type Camera struct {
	Eye    math3d.Vec3
	Center math3d.Vec3
	Up     math3d.Vec3

	FovY   float64
	Aspect float64
	Left   float64
	Right  float64
	Near   float64
	Far    float64
}

// DefaultCamera looks at the origin from slightly above and behind.
func DefaultCamera() Camera {
	return Camera{
		Eye:    math3d.V3(2.5, 1.5, -2.5),
		Center: math3d.Zero3(),
		Up:     math3d.Up(),
		FovY:   90,
		Aspect: 16.0 / 9.0,
		Left:   -5,
		Right:  5,
		Near:   0.001,
		Far:    1000,
	}
}

// View returns the look-at matrix for the camera frame.
func (c Camera) View() (math3d.Mat4, error) {
	return math3d.LookAt(c.Eye, c.Center, c.Up)
}

// Projection returns the projection matrix for mode p.
func (c Camera) Projection(p Projection) (math3d.Mat4, error) {
	switch p {
	case ProjectionPerspective:
		return math3d.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
	case ProjectionOrthographic:
		return math3d.Orthographic(c.Left, c.Right, c.Aspect, c.Near, c.Far)
	}
	return math3d.Mat4{}, fmt.Errorf("unknown projection %v", p)
}

// WithAspect returns the camera with a new aspect ratio, for resizes.
func (c Camera) WithAspect(aspect float64) Camera {
	c.Aspect = aspect
	return c
}

// Direction is the arrow key acting on the camera this frame.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}

// DirectionFrom picks at most one held arrow key, preferring up, then down,
// left and right.
func DirectionFrom(keys KeyState) Direction {
	switch {
	case keys.IsKeyDown(KeyUp):
		return DirectionUp
	case keys.IsKeyDown(KeyDown):
		return DirectionDown
	case keys.IsKeyDown(KeyLeft):
		return DirectionLeft
	case keys.IsKeyDown(KeyRight):
		return DirectionRight
	}
	return DirectionNone
}

// Controls tunes how key input moves the camera.
type Controls struct {
	// Step is the distance added per nudge.
	Step float64
	// LockUp keeps the up vector fixed. When false the up vector moves by
	// the same step as the eye.
	LockUp bool
}

// DefaultControls nudges eye and up together by DefaultNudgeStep.
func DefaultControls() Controls {
	return Controls{Step: DefaultNudgeStep}
}

// Nudge returns the camera moved one step in direction d. Up and down move
// along y, left and right along x. Movement is unbounded: repeated nudges
// can carry the eye arbitrarily far or tip the up vector over.
func (c Camera) Nudge(d Direction, ctl Controls) Camera {
	var delta math3d.Vec3
	switch d {
	case DirectionUp:
		delta = math3d.V3(0, ctl.Step, 0)
	case DirectionDown:
		delta = math3d.V3(0, -ctl.Step, 0)
	case DirectionLeft:
		delta = math3d.V3(-ctl.Step, 0, 0)
	case DirectionRight:
		delta = math3d.V3(ctl.Step, 0, 0)
	default:
		return c
	}

	c.Eye = c.Eye.Add(delta)
	if !ctl.LockUp {
		c.Up = c.Up.Add(delta)
	}
	return c
}
