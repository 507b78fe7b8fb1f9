package math3d

import (
	"fmt"
	"math"
)

// Mat4 is a 4x4 matrix stored in column-major order, the layout a
// uniform matrix upload expects.
//
// Memory layout (indices):
// | 0  4  8  12 |
// | 1  5  9  13 |
// | 2  6  10 14 |
// | 3  7  11 15 |
//
// Mat4 is a value type. Constructors and operations return new matrices and
// never modify their operands.
type Mat4 [16]float64

// NewMat4 builds a matrix from 16 values given in row-major reading order,
// so literals in source look like the matrix on paper. The values are
// stored column-major.
func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64,
) Mat4 {
	return Mat4{
		m00, m10, m20, m30,
		m01, m11, m21, m31,
		m02, m12, m22, m32,
		m03, m13, m23, m33,
	}
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return NewMat4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Translation creates a translation matrix.
func Translation(x, y, z float64) Mat4 {
	return NewMat4(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Rotations are right-handed: a positive angle turns counter-clockwise when
// looking from the positive axis toward the origin. Every rotation matrix
// has determinant +1.

// RotationX creates a rotation matrix around the X axis. angle is in radians.
func RotationX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return NewMat4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY creates a rotation matrix around the Y axis. angle is in radians.
func RotationY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return NewMat4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ creates a rotation matrix around the Z axis. angle is in radians.
func RotationZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return NewMat4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Scale creates a uniform scaling matrix.
func Scale(s float64) Mat4 {
	return NewMat4(
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	)
}

// LookAt creates a view matrix for a camera at eye looking toward center.
//
// The camera frame is n = normalize(eye-center), u = normalize(up × n) and
// v = n × u. The rows of the result are u, v, n and the translation column
// is -(eye·u, eye·v, eye·n), so the camera looks down its -n axis.
//
// eye must differ from center and up must not be parallel to eye-center;
// otherwise the frame is undefined and ErrDegenerate is returned.
func LookAt(eye, center, up Vec3) (Mat4, error) {
	n, err := eye.Sub(center).Normalized()
	if err != nil {
		return Mat4{}, fmt.Errorf("look-at: eye %v coincides with center %v: %w", eye, center, err)
	}
	u, err := up.Cross(n).Normalized()
	if err != nil {
		return Mat4{}, fmt.Errorf("look-at: up %v is parallel to view direction %v: %w", up, n, err)
	}
	v, err := n.Cross(u).Normalized()
	if err != nil {
		return Mat4{}, fmt.Errorf("look-at: %w", err)
	}

	return NewMat4(
		u.X, u.Y, u.Z, -eye.Dot(u),
		v.X, v.Y, v.Z, -eye.Dot(v),
		n.X, n.Y, n.Z, -eye.Dot(n),
		0, 0, 0, 1,
	), nil
}

// Perspective creates a symmetric-frustum perspective projection.
// fovy is the vertical field of view in degrees, aspect is width/height,
// near and far are positive distances to the clipping planes.
//
// Clip-space z runs from -1 at the near plane to +1 at the far plane and
// row 3 is (0, 0, -1, 0), leaving the perspective divide to the consumer.
func Perspective(fovy, aspect, near, far float64) (Mat4, error) {
	switch {
	case !finite(fovy, aspect, near, far):
		return Mat4{}, fmt.Errorf("%w: non-finite perspective parameter (fovy=%g aspect=%g near=%g far=%g)",
			ErrInvalidProjection, fovy, aspect, near, far)
	case fovy <= 0 || fovy >= 180:
		return Mat4{}, fmt.Errorf("%w: fovy %g outside (0, 180)", ErrInvalidProjection, fovy)
	case aspect <= 0:
		return Mat4{}, fmt.Errorf("%w: aspect %g must be positive", ErrInvalidProjection, aspect)
	case near <= 0:
		return Mat4{}, fmt.Errorf("%w: near %g must be positive", ErrInvalidProjection, near)
	case far <= near:
		return Mat4{}, fmt.Errorf("%w: far %g must exceed near %g", ErrInvalidProjection, far, near)
	}

	ymin := -near * math.Tan(Deg2Rad(fovy)/2)
	ymax := -ymin
	xmin := aspect * ymin
	xmax := -xmin

	p00 := 2 * near / (xmax - xmin)
	p11 := 2 * near / (ymax - ymin)
	p02 := (xmax + xmin) / (xmax - xmin)
	p12 := (ymax + ymin) / (ymax - ymin)
	p22 := (far + near) / (near - far)
	p23 := 2 * near * far / (near - far)

	m := NewMat4(
		p00, 0, p02, 0,
		0, p11, p12, 0,
		0, 0, p22, p23,
		0, 0, -1, 0,
	)
	if !finite(m[:]...) {
		return Mat4{}, fmt.Errorf("%w: perspective overflows (fovy=%g aspect=%g near=%g far=%g)",
			ErrInvalidProjection, fovy, aspect, near, far)
	}
	return m, nil
}

// Orthographic creates an orthographic projection of the box
// [left, right] x [left/aspect, right/aspect] x [-near, -far].
func Orthographic(left, right, aspect, near, far float64) (Mat4, error) {
	switch {
	case !finite(left, right, aspect, near, far):
		return Mat4{}, fmt.Errorf("%w: non-finite orthographic parameter (left=%g right=%g aspect=%g near=%g far=%g)",
			ErrInvalidProjection, left, right, aspect, near, far)
	case right <= left:
		return Mat4{}, fmt.Errorf("%w: right %g must exceed left %g", ErrInvalidProjection, right, left)
	case aspect <= 0:
		return Mat4{}, fmt.Errorf("%w: aspect %g must be positive", ErrInvalidProjection, aspect)
	case far <= near:
		return Mat4{}, fmt.Errorf("%w: far %g must exceed near %g", ErrInvalidProjection, far, near)
	}

	top := right / aspect
	bottom := left / aspect

	m := NewMat4(
		2/(right-left), 0, 0, -(right+left)/(right-left),
		0, 2/(top-bottom), 0, -(top+bottom)/(top-bottom),
		0, 0, -2/(far-near), -(far+near)/(far-near),
		0, 0, 0, 1,
	)
	if !finite(m[:]...) {
		return Mat4{}, fmt.Errorf("%w: orthographic overflows (left=%g right=%g aspect=%g near=%g far=%g)",
			ErrInvalidProjection, left, right, aspect, near, far)
	}
	return m, nil
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for col := range 4 {
		for row := range 4 {
			var sum float64
			for k := range 4 {
				sum += a[row+k*4] * b[k+col*4]
			}
			m[row+col*4] = sum
		}
	}
	return m
}

// MulVec4 transforms a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms p as a point (w=1) and drops the resulting W.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return m.MulVec4(Point(p)).Vec3()
}

// MulDir transforms d as a direction (w=0, no translation).
func (m Mat4) MulDir(d Vec3) Vec3 {
	return m.MulVec4(Vec4{d.X, d.Y, d.Z, 0}).Vec3()
}

// Flatten returns the matrix in column-major order as float32, ready for a
// 4x4 uniform upload.
func (m Mat4) Flatten() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// FromFlat rebuilds a matrix from column-major float32 values.
func FromFlat(f [16]float32) Mat4 {
	var m Mat4
	for i, v := range f {
		m[i] = float64(v)
	}
	return m
}

// Determinant returns the determinant of the matrix.
func (m Mat4) Determinant() float64 {
	return m[0]*(m[5]*(m[10]*m[15]-m[14]*m[11])-m[9]*(m[6]*m[15]-m[14]*m[7])+m[13]*(m[6]*m[11]-m[10]*m[7])) -
		m[4]*(m[1]*(m[10]*m[15]-m[14]*m[11])-m[9]*(m[2]*m[15]-m[14]*m[3])+m[13]*(m[2]*m[11]-m[10]*m[3])) +
		m[8]*(m[1]*(m[6]*m[15]-m[14]*m[7])-m[5]*(m[2]*m[15]-m[14]*m[3])+m[13]*(m[2]*m[7]-m[6]*m[3])) -
		m[12]*(m[1]*(m[6]*m[11]-m[10]*m[7])-m[5]*(m[2]*m[11]-m[10]*m[3])+m[9]*(m[2]*m[7]-m[6]*m[3]))
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) float64 {
	return m[row+col*4]
}

// Row returns row i as a Vec4.
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[i], m[i+4], m[i+8], m[i+12]}
}

// ApproxEqual reports whether every element of m is within eps of n.
func (m Mat4) ApproxEqual(n Mat4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) > eps {
			return false
		}
	}
	return true
}

// String formats the matrix row by row.
func (m Mat4) String() string {
	return fmt.Sprintf("[%g %g %g %g; %g %g %g %g; %g %g %g %g; %g %g %g %g]",
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15])
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
