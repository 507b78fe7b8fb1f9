// Package render rasterizes the box in software behind a shader-like
// uniform interface and presents the result in a terminal.
package render

import (
	"github.com/chewxy/math32"
)

// ClipVertex is a vertex in homogeneous clip space.
type ClipVertex struct {
	X, Y, Z, W float32
}

// Stats counts what happened to the triangles of the current frame.
type Stats struct {
	Triangles    int // triangles submitted
	Rejected     int // behind the eye or entirely outside one clip plane
	BackFaces    int // culled as back-facing
	Drawn        int // rasterized
	MeshesCulled int // whole meshes skipped by the frustum test
}

// Rasterizer fills clip-space triangles into a framebuffer with a depth
// test. Depth is NDC z in [-1, 1]; smaller is nearer.
type Rasterizer struct {
	fb    *Framebuffer
	depth []float32

	// CullBackFaces skips triangles that appear clockwise on screen.
	CullBackFaces bool
	Stats         Stats
}

// NewRasterizer creates a rasterizer drawing into fb.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	r := &Rasterizer{}
	r.Resize(fb)
	return r
}

// Resize points the rasterizer at a new framebuffer.
func (r *Rasterizer) Resize(fb *Framebuffer) {
	r.fb = fb
	if fb == nil {
		r.depth = nil
		return
	}
	r.depth = make([]float32, fb.Width*fb.Height)
	r.ClearDepth()
}

// ClearDepth resets the depth buffer and the frame statistics.
func (r *Rasterizer) ClearDepth() {
	// Use copy-doubling for faster clearing
	n := len(r.depth)
	r.Stats = Stats{}
	if n == 0 {
		return
	}
	r.depth[0] = math32.MaxFloat32
	for i := 1; i < n; i *= 2 {
		copy(r.depth[i:], r.depth[:i])
	}
}

// Depth returns the stored depth at (x, y), or MaxFloat32 when nothing was
// drawn there or (x, y) is out of bounds.
func (r *Rasterizer) Depth(x, y int) float32 {
	if r.fb == nil || x < 0 || x >= r.fb.Width || y < 0 || y >= r.fb.Height {
		return math32.MaxFloat32
	}
	return r.depth[y*r.fb.Width+x]
}

type screenVertex struct {
	x, y, z float32
}

// toScreen performs the perspective divide and viewport transform.
func (r *Rasterizer) toScreen(v ClipVertex) screenVertex {
	w := float32(r.fb.Width)
	h := float32(r.fb.Height)
	return screenVertex{
		x: (v.X/v.W + 1) * 0.5 * w,
		y: (1 - v.Y/v.W) * 0.5 * h, // Y flipped
		z: v.Z / v.W,
	}
}

// outsideSamePlane reports whether all three vertices lie outside one of
// the six clip planes.
func outsideSamePlane(t [3]ClipVertex) bool {
	tests := [6]func(v ClipVertex) bool{
		func(v ClipVertex) bool { return v.X < -v.W },
		func(v ClipVertex) bool { return v.X > v.W },
		func(v ClipVertex) bool { return v.Y < -v.W },
		func(v ClipVertex) bool { return v.Y > v.W },
		func(v ClipVertex) bool { return v.Z < -v.W },
		func(v ClipVertex) bool { return v.Z > v.W },
	}
	for _, out := range tests {
		if out(t[0]) && out(t[1]) && out(t[2]) {
			return true
		}
	}
	return false
}

// DrawTriangle rasterizes one clip-space triangle in a flat color.
// Triangles with a vertex at or behind the eye (w <= 0) are rejected
// rather than clipped; fragments outside the near/far depth range are
// discarded individually.
func (r *Rasterizer) DrawTriangle(tri [3]ClipVertex, c Color) {
	if r.fb == nil {
		return
	}
	r.Stats.Triangles++

	if tri[0].W <= 0 || tri[1].W <= 0 || tri[2].W <= 0 || outsideSamePlane(tri) {
		r.Stats.Rejected++
		return
	}

	s0, s1, s2 := r.toScreen(tri[0]), r.toScreen(tri[1]), r.toScreen(tri[2])

	// Signed area in screen space; the Y flip makes counter-clockwise
	// clip-space triangles negative here.
	area := edge(s0, s1, s2.x, s2.y)
	if area == 0 {
		r.Stats.Rejected++
		return
	}
	if r.CullBackFaces && area > 0 {
		r.Stats.BackFaces++
		return
	}

	minX := int(math32.Max(0, math32.Floor(min3(s0.x, s1.x, s2.x))))
	maxX := int(math32.Min(float32(r.fb.Width-1), math32.Ceil(max3(s0.x, s1.x, s2.x))))
	minY := int(math32.Max(0, math32.Floor(min3(s0.y, s1.y, s2.y))))
	maxY := int(math32.Min(float32(r.fb.Height-1), math32.Ceil(max3(s0.y, s1.y, s2.y))))

	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5

			// Dividing by the signed area makes the weights positive
			// inside the triangle for either winding.
			b0 := edge(s1, s2, px, py) * inv
			b1 := edge(s2, s0, px, py) * inv
			b2 := edge(s0, s1, px, py) * inv
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			z := b0*s0.z + b1*s1.z + b2*s2.z
			if z < -1 || z > 1 {
				continue
			}

			i := y*r.fb.Width + x
			if z >= r.depth[i] {
				continue
			}
			r.depth[i] = z
			r.fb.Pixels[i] = c
		}
	}
	r.Stats.Drawn++
}

// edge is twice the signed area of triangle (a, b, p).
func edge(a, b screenVertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

func min3(a, b, c float32) float32 {
	return math32.Min(a, math32.Min(b, c))
}

func max3(a, b, c float32) float32 {
	return math32.Max(a, math32.Max(b, c))
}
