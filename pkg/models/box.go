package models

import "github.com/taigrr/mvpbox/pkg/math3d"

// boxFaces lists each side of the unit box as an outward normal and its
// four corners, counter-clockwise seen from outside.
var boxFaces = [6]struct {
	normal  math3d.Vec3
	corners [4]math3d.Vec3
}{
	{math3d.V3(1, 0, 0), [4]math3d.Vec3{{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}}},
	{math3d.V3(-1, 0, 0), [4]math3d.Vec3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}}},
	{math3d.V3(0, 1, 0), [4]math3d.Vec3{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}}},
	{math3d.V3(0, -1, 0), [4]math3d.Vec3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}}},
	{math3d.V3(0, 0, 1), [4]math3d.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}}},
	{math3d.V3(0, 0, -1), [4]math3d.Vec3{{X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}}},
}

// NewBox builds an axis-aligned cube with edge length size centered on
// the origin. Each side has its own four vertices so normals stay flat.
func NewBox(size float64) *Mesh {
	h := size / 2
	m := NewMesh("box")
	m.Vertices = make([]MeshVertex, 0, 24)
	m.Faces = make([]Face, 0, 12)

	for _, side := range boxFaces {
		base := len(m.Vertices)
		for _, c := range side.corners {
			m.Vertices = append(m.Vertices, MeshVertex{
				Position: c.Scale(h),
				Normal:   side.normal,
			})
		}
		m.Faces = append(m.Faces,
			Face{V: [3]int{base, base + 1, base + 2}},
			Face{V: [3]int{base, base + 2, base + 3}},
		)
	}

	m.CalculateBounds()
	return m
}
