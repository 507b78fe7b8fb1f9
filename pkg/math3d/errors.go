package math3d

import "errors"

var (
	// ErrDegenerate is returned when a geometric construction has no
	// well-defined result: normalizing a zero vector, a look-at whose eye
	// sits on its center, or an up vector parallel to the view direction.
	ErrDegenerate = errors.New("math3d: degenerate configuration")

	// ErrInvalidProjection is returned for projection parameters outside
	// their domain: non-positive near, far not beyond near, reversed
	// bounds, a field of view outside (0, 180) degrees, or a non-positive
	// aspect ratio.
	ErrInvalidProjection = errors.New("math3d: invalid projection parameters")
)
