// Package scene composes the per-frame model, view and projection matrices
// for the single animated box from UI selections, key state and time.
package scene

import (
	"fmt"
	"strings"
)

// Animation selects how the model matrix follows the animation phase.
type Animation int

const (
	AnimationTranslate Animation = iota // slide along the x/z diagonal
	AnimationRotate                     // spin around the y axis
	AnimationScale                      // pulse the uniform scale
	AnimationOff                        // identity model matrix
)

var animationNames = [...]string{
	AnimationTranslate: "Translate",
	AnimationRotate:    "Rotate",
	AnimationScale:     "Scale",
	AnimationOff:       "Off",
}

func (a Animation) String() string {
	if a < 0 || int(a) >= len(animationNames) {
		return fmt.Sprintf("Animation(%d)", int(a))
	}
	return animationNames[a]
}

// ParseAnimation maps a UI name such as "Rotate" to its Animation,
// ignoring case.
func ParseAnimation(name string) (Animation, error) {
	for i, n := range animationNames {
		if strings.EqualFold(n, name) {
			return Animation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown animation %q", name)
}

// Projection selects the projection matrix constructor.
type Projection int

const (
	ProjectionPerspective Projection = iota
	ProjectionOrthographic
)

var projectionNames = [...]string{
	ProjectionPerspective:  "Perspective",
	ProjectionOrthographic: "Orthographic",
}

func (p Projection) String() string {
	if p < 0 || int(p) >= len(projectionNames) {
		return fmt.Sprintf("Projection(%d)", int(p))
	}
	return projectionNames[p]
}

// ParseProjection maps a UI name such as "Orthographic" to its Projection,
// ignoring case.
func ParseProjection(name string) (Projection, error) {
	for i, n := range projectionNames {
		if strings.EqualFold(n, name) {
			return Projection(i), nil
		}
	}
	return 0, fmt.Errorf("unknown projection %q", name)
}
