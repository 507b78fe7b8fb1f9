package render

import (
	"github.com/taigrr/mvpbox/pkg/math3d"
)

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal and D is the offset.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// Normalize scales the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Frustum is the six clipping planes of a clip-space transform, expressed in
// the input space of that transform. Extracted from a model-view-projection
// matrix, the planes live in object space and can test local bounds directly.
// Planes are ordered: Left, Right, Bottom, Top, Near, Far, normals inward.
type Frustum struct {
	Planes [6]Plane
}

// Frustum plane indices.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustumFromMatrix extracts frustum planes from a clip transform using
// the Gribb/Hartmann method: each plane is row 3 plus or minus row 0, 1 or 2.
func NewFrustumFromMatrix(m math3d.Mat4) Frustum {
	var f Frustum
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)

	plane := func(a math3d.Vec4, sign float64, b math3d.Vec4) Plane {
		return Plane{
			Normal: math3d.V3(a.X+sign*b.X, a.Y+sign*b.Y, a.Z+sign*b.Z),
			D:      a.W + sign*b.W,
		}
	}

	f.Planes[FrustumLeft] = plane(r3, 1, r0)
	f.Planes[FrustumRight] = plane(r3, -1, r0)
	f.Planes[FrustumBottom] = plane(r3, 1, r1)
	f.Planes[FrustumTop] = plane(r3, -1, r1)
	f.Planes[FrustumNear] = plane(r3, 1, r2)
	f.Planes[FrustumFar] = plane(r3, -1, r2)

	for i := range f.Planes {
		f.Planes[i].Normalize()
	}
	return f
}

// IntersectAABB reports whether any part of box may be inside the frustum.
// It checks the corner furthest along each plane normal; if that corner is
// behind a plane the whole box is.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, plane := range f.Planes {
		p := math3d.V3(
			selectComponent(plane.Normal.X >= 0, box.Max.X, box.Min.X),
			selectComponent(plane.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			selectComponent(plane.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if plane.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max math3d.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

func selectComponent(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
