package scene

import (
	"math"
	"time"
)

// PhasePeriod scales wall-clock milliseconds into the phase argument; one
// full oscillation takes 2π·PhasePeriod.
const PhasePeriod = 2000 * time.Millisecond

// Phase returns the animation phase at t, a value in [-1, 1] that varies
// smoothly with wall-clock time.
func Phase(t time.Time) float64 {
	return math.Sin(float64(t.UnixMilli()) / float64(PhasePeriod.Milliseconds()))
}
