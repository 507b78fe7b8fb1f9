package render

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/taigrr/mvpbox/pkg/math3d"
)

// UniformMVP is the uniform the vertex stage multiplies positions by.
const UniformMVP = "u_mvp"

// ErrUniformNotSet is returned when drawing before u_mvp was uploaded.
var ErrUniformNotSet = errors.New("render: uniform not set")

// MeshRenderer is the geometry a Program can draw.
type MeshRenderer interface {
	TriangleCount() int
	GetFace(i int) [3]int
	GetVertex(i int) (pos, normal math3d.Vec3)
}

// BoundedMeshRenderer is a mesh that knows its local bounds, letting the
// program skip it when it lies entirely outside the frustum.
type BoundedMeshRenderer interface {
	MeshRenderer
	GetBounds() (min, max math3d.Vec3)
}

// Program stands in for a linked shader program. Uniform matrices are
// uploaded as 16 float32 values in column-major order, and the vertex stage
// computes clip = u_mvp * position in float32 as a GPU would.
type Program struct {
	uniforms map[string][16]float32

	// LightDir is the object-space direction faces are shaded against.
	LightDir math3d.Vec3
	// Ambient is the minimum brightness of a face facing away from LightDir.
	Ambient float32
}

// NewProgram creates a program with no uniforms set.
func NewProgram() *Program {
	return &Program{
		uniforms: make(map[string][16]float32),
		LightDir: math3d.V3(0.5, 1, 0.3).Normalize(),
		Ambient:  0.45,
	}
}

// SetUniform4x4f uploads a column-major 4x4 matrix.
func (p *Program) SetUniform4x4f(name string, m [16]float32) {
	p.uniforms[name] = m
}

// Uniform4x4f returns the matrix last uploaded under name.
func (p *Program) Uniform4x4f(name string) ([16]float32, bool) {
	m, ok := p.uniforms[name]
	return m, ok
}

// Draw runs every triangle of mesh through the vertex stage and hands the
// result to r, tinted from base by a per-face light factor.
func (p *Program) Draw(r *Rasterizer, mesh MeshRenderer, base Color) error {
	mvp, ok := p.uniforms[UniformMVP]
	if !ok {
		return fmt.Errorf("draw: %w: %s", ErrUniformNotSet, UniformMVP)
	}

	if bounded, ok := mesh.(BoundedMeshRenderer); ok {
		lo, hi := bounded.GetBounds()
		frustum := NewFrustumFromMatrix(math3d.FromFlat(mvp))
		if !frustum.IntersectAABB(NewAABB(lo, hi)) {
			r.Stats.MeshesCulled++
			return nil
		}
	}

	light := p.LightDir
	for i := range mesh.TriangleCount() {
		face := mesh.GetFace(i)

		var tri [3]ClipVertex
		var normal math3d.Vec3
		for j, idx := range face {
			pos, n := mesh.GetVertex(idx)
			tri[j] = vertexStage(&mvp, pos)
			normal = normal.Add(n)
		}

		r.DrawTriangle(tri, MultiplyColor(base, p.shade(normal, light)))
	}
	return nil
}

// shade maps the face normal to a brightness in [Ambient, 1].
func (p *Program) shade(normal, light math3d.Vec3) float32 {
	n := normal.Normalize()
	lambert := math32.Abs(float32(n.Dot(light)))
	return p.Ambient + (1-p.Ambient)*lambert
}

// vertexStage computes u_mvp * vec4(pos, 1).
func vertexStage(m *[16]float32, pos math3d.Vec3) ClipVertex {
	x, y, z := float32(pos.X), float32(pos.Y), float32(pos.Z)
	return ClipVertex{
		X: m[0]*x + m[4]*y + m[8]*z + m[12],
		Y: m[1]*x + m[5]*y + m[9]*z + m[13],
		Z: m[2]*x + m[6]*y + m[10]*z + m[14],
		W: m[3]*x + m[7]*y + m[11]*z + m[15],
	}
}
