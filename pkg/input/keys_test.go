package input

import (
	"sync"
	"testing"
)

func TestPressLastsOneFrame(t *testing.T) {
	k := NewKeys()
	k.Press("a")

	f := k.Frame()
	if !f.IsKeyPressed("a") || !f.IsKeyDown("a") {
		t.Fatal("a should be pressed and down in the frame it was pressed")
	}
	if f.IsKeyPressed("b") || f.IsKeyDown("b") {
		t.Error("b was never pressed")
	}

	f = k.Frame()
	if f.IsKeyPressed("a") {
		t.Error("press should not carry into the next frame")
	}
	if f.IsKeyDown("a") {
		t.Error("without release events a key is down for one frame only")
	}
}

func TestPressAfterFrameGoesToNextFrame(t *testing.T) {
	k := NewKeys()
	first := k.Frame()
	k.Press("o")

	if first.IsKeyPressed("o") {
		t.Error("a taken snapshot must not change")
	}
	if !k.Frame().IsKeyPressed("o") {
		t.Error("press recorded between frames was lost")
	}
}

func TestHeldUntilRelease(t *testing.T) {
	k := NewKeys()
	k.Release("left") // terminal reports releases
	k.Press("left")
	k.Frame()

	f := k.Frame()
	if !f.IsKeyDown("left") {
		t.Error("left should stay down until released")
	}
	if f.IsKeyPressed("left") {
		t.Error("left was pressed in an earlier frame")
	}

	k.Release("left")
	if k.Frame().IsKeyDown("left") {
		t.Error("left should be up after release")
	}
}

func TestReleaseWithinFrameStillCounts(t *testing.T) {
	k := NewKeys()
	k.Release("up")
	k.Press("up")
	k.Release("up")

	if !k.Frame().IsKeyDown("up") {
		t.Error("a tap inside one frame should still read as down for that frame")
	}
}

func TestReset(t *testing.T) {
	k := NewKeys()
	k.Press("x")
	k.Reset()
	f := k.Frame()
	if f.IsKeyDown("x") || f.IsKeyPressed("x") {
		t.Error("Reset should clear all state")
	}
}

func TestConcurrentPressesAreNotLost(t *testing.T) {
	const presses = 1000
	k := NewKeys()
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for range presses {
			k.Press("right")
			k.Release("right")
		}
	}()

	// Snapshots race the writer; at least one must observe a press.
	seen := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		select {
		case <-done:
			if k.Frame().IsKeyPressed("right") {
				seen++
			}
			if seen == 0 {
				t.Error("no frame observed a press")
			}
			return
		default:
			if k.Frame().IsKeyPressed("right") {
				seen++
			}
		}
	}
}
