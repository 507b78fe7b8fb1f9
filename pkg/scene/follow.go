package scene

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/mvpbox/pkg/math3d"
)

// springVec eases three components toward a target with one shared spring.
type springVec struct {
	pos math3d.Vec3
	vel math3d.Vec3
}

func (s *springVec) step(sp harmonica.Spring, target math3d.Vec3) {
	s.pos.X, s.vel.X = sp.Update(s.pos.X, s.vel.X, target.X)
	s.pos.Y, s.vel.Y = sp.Update(s.pos.Y, s.vel.Y, target.Y)
	s.pos.Z, s.vel.Z = sp.Update(s.pos.Z, s.vel.Z, target.Z)
}

// Follower smooths camera motion for display. It trails the logical camera
// with a critically damped spring on eye and up; the logical camera itself
// is never changed.
type Follower struct {
	spring harmonica.Spring
	eye    springVec
	up     springVec
}

// NewFollower creates a follower resting at start.
func NewFollower(fps int, start Camera) *Follower {
	return &Follower{
		// Frequency 6.0 settles within a few frames, damping 1.0 = no overshoot
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		eye:    springVec{pos: start.Eye},
		up:     springVec{pos: start.Up},
	}
}

// Follow advances the springs one frame toward target and returns target
// with the eased eye and up.
func (f *Follower) Follow(target Camera) Camera {
	f.eye.step(f.spring, target.Eye)
	f.up.step(f.spring, target.Up)

	target.Eye = f.eye.pos
	target.Up = f.up.pos
	return target
}
