package models

import (
	"math"
	"testing"

	"github.com/taigrr/mvpbox/pkg/math3d"
)

func TestNewBox(t *testing.T) {
	box := NewBox(1)

	if box.TriangleCount() != 12 {
		t.Errorf("triangles = %d, want 12", box.TriangleCount())
	}
	if box.VertexCount() != 24 {
		t.Errorf("vertices = %d, want 24", box.VertexCount())
	}

	half := math3d.V3(0.5, 0.5, 0.5)
	if !box.BoundsMin.ApproxEqual(half.Negate(), 1e-12) || !box.BoundsMax.ApproxEqual(half, 1e-12) {
		t.Errorf("bounds = %v..%v, want ±0.5", box.BoundsMin, box.BoundsMax)
	}
	if !box.Center().ApproxEqual(math3d.Zero3(), 1e-12) {
		t.Errorf("center = %v, want origin", box.Center())
	}
}

func TestBoxWindingIsOutward(t *testing.T) {
	box := NewBox(2)
	for i := range box.TriangleCount() {
		f := box.GetFace(i)
		p0, n := box.GetVertex(f[0])
		p1, _ := box.GetVertex(f[1])
		p2, _ := box.GetVertex(f[2])

		geometric := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		if !geometric.ApproxEqual(n, 1e-12) {
			t.Errorf("face %d: winding normal %v, vertex normal %v", i, geometric, n)
		}
		// Outward: the normal points away from the center.
		if p0.Dot(n) <= 0 {
			t.Errorf("face %d: normal %v points inward", i, n)
		}
	}
}

func TestCalculateNormals(t *testing.T) {
	box := NewBox(1)
	want := NewBox(1)
	for i := range box.Vertices {
		box.Vertices[i].Normal = math3d.Zero3()
	}

	box.CalculateNormals()

	for i := range box.Vertices {
		if !box.Vertices[i].Normal.ApproxEqual(want.Vertices[i].Normal, 1e-12) {
			t.Errorf("vertex %d normal = %v, want %v", i, box.Vertices[i].Normal, want.Vertices[i].Normal)
		}
	}
}

func TestFit(t *testing.T) {
	m := NewBox(4)
	m.Transform(math3d.Translation(10, -3, 2))

	m.Fit(2)

	if !m.Center().ApproxEqual(math3d.Zero3(), 1e-9) {
		t.Errorf("center = %v, want origin", m.Center())
	}
	size := m.Size()
	if maxDim := math.Max(size.X, math.Max(size.Y, size.Z)); math.Abs(maxDim-2) > 1e-9 {
		t.Errorf("max dimension = %v, want 2", maxDim)
	}
}
