// Package input tracks keyboard state between the terminal event reader and
// the frame loop.
package input

import (
	"maps"
	"sync"
)

// Keys records key presses from an event goroutine and hands the frame loop
// one consistent view per frame.
//
// Terminals usually report only presses, with auto-repeat standing in for a
// held key. Until the first release event arrives a key is "down" only for
// the frame following its press; after that it stays down until released.
type Keys struct {
	mu       sync.Mutex
	held     map[string]bool // reported down, no release seen yet
	releases bool            // whether the terminal reports key releases
	pressed  map[string]bool // pressed since the last Frame
}

// NewKeys creates an empty key tracker.
func NewKeys() *Keys {
	return &Keys{
		held:    make(map[string]bool),
		pressed: make(map[string]bool),
	}
}

// Press records that key went down.
func (k *Keys) Press(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[key] = true
	k.pressed[key] = true
}

// Release records that key went up. Once any release is seen the tracker
// trusts releases for held state.
func (k *Keys) Release(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.releases = true
	delete(k.held, key)
}

// Frame returns the key state for the frame about to run and starts the
// next one. Presses recorded after Frame returns belong to the next frame.
func (k *Keys) Frame() Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()

	s := Snapshot{
		down:    maps.Clone(k.held),
		pressed: k.pressed,
	}
	maps.Copy(s.down, k.pressed)

	k.pressed = make(map[string]bool)
	if !k.releases {
		clear(k.held)
	}
	return s
}

// Reset forgets all key state.
func (k *Keys) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.held)
	clear(k.pressed)
}

// Snapshot is the immutable key state of one frame.
type Snapshot struct {
	down    map[string]bool
	pressed map[string]bool
}

// IsKeyDown reports whether key was held during the frame.
func (s Snapshot) IsKeyDown(key string) bool {
	return s.down[key]
}

// IsKeyPressed reports whether key went down since the previous frame.
func (s Snapshot) IsKeyPressed(key string) bool {
	return s.pressed[key]
}
