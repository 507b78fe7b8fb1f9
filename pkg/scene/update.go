package scene

import (
	"fmt"

	"github.com/taigrr/mvpbox/pkg/math3d"
)

// TranslateDistance scales the phase into the translation along x and z.
const TranslateDistance = 3

// Frame is everything one frame computed. MVP is always
// Projection * (View * Model) for the other three fields.
type Frame struct {
	UI         UIState
	Phase      float64
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	MVP        math3d.Mat4
}

// Input is the per-frame input to Update.
type Input struct {
	UI        UIState
	Direction Direction
	Phase     float64
	Controls  Controls
}

// ModelMatrix returns the model matrix for animation a at the given phase.
func ModelMatrix(a Animation, phase float64) math3d.Mat4 {
	switch a {
	case AnimationTranslate:
		return math3d.Translation(phase*TranslateDistance, 0, phase*TranslateDistance)
	case AnimationRotate:
		return math3d.RotationY(phase)
	case AnimationScale:
		return math3d.Scale(phase)
	}
	return math3d.Identity()
}

// Compose builds a full frame from scratch for the given camera, UI state
// and phase.
func Compose(cam Camera, ui UIState, phase float64) (Frame, error) {
	model := ModelMatrix(ui.Animation, phase)

	proj, err := cam.Projection(ui.Projection)
	if err != nil {
		return Frame{}, fmt.Errorf("%s projection: %w", ui.Projection, err)
	}

	view, err := cam.View()
	if err != nil {
		return Frame{}, fmt.Errorf("view: %w", err)
	}

	return Frame{
		UI:         ui,
		Phase:      phase,
		Model:      model,
		View:       view,
		Projection: proj,
		MVP:        proj.Mul(view.Mul(model)),
	}, nil
}

// Initial is the frame shown before the first update: no animation under a
// perspective projection.
func Initial(cam Camera) (Frame, error) {
	return Compose(cam, UIState{Animation: AnimationOff, Projection: ProjectionPerspective}, 0)
}

// Update advances one frame. It applies the camera nudge for in.Direction
// and recomputes every matrix from the resulting state. The returned camera
// is the next frame's state and is valid even when err is not nil, so that
// further input can move the camera out of a degenerate configuration.
func Update(cam Camera, in Input) (Camera, Frame, error) {
	next := cam.Nudge(in.Direction, in.Controls)
	frame, err := Compose(next, in.UI, in.Phase)
	if err != nil {
		return next, Frame{}, err
	}
	return next, frame, nil
}
