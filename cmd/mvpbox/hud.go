package main

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

// HUD draws the status rows over the rendered frame.
type HUD struct {
	title     string
	triangles int
	fps       float64
	fpsFrames int
	fpsTime   time.Time

	base  lipgloss.Style
	fpsSt lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
}

// NewHUD creates a new HUD
func NewHUD(title string, triangles int) *HUD {
	base := lipgloss.NewStyle().
		Background(lipgloss.Color("#000000")).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1)
	return &HUD{
		title:     title,
		triangles: triangles,
		fpsTime:   time.Now(),
		base:      base,
		fpsSt:     base.Foreground(lipgloss.Color("#5FFF87")),
		label:     lipgloss.NewStyle().Faint(true),
		value:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFBF00")),
		warn:      base.Bold(true).Foreground(lipgloss.Color("#FF5F5F")),
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS(now time.Time) {
	h.fpsFrames++
	elapsed := now.Sub(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = now
	}
}

// Top returns the header row: frame rate, title and triangle count.
func (h *HUD) Top(width int) string {
	left := h.fpsSt.Render(fmt.Sprintf("%.0f FPS", h.fps))
	right := h.base.Render(fmt.Sprintf("%d tris", h.triangles))
	title := h.base.Bold(true).Render(h.title)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - lipgloss.Width(title)
	if gap < 2 {
		return left
	}
	pad := func(n int) string { return h.base.Padding(0).Render(strings.Repeat(" ", n)) }
	return left + pad(gap/2) + title + pad(gap-gap/2) + right
}

// Bottom returns the status row: the active UI selections and camera, or
// the reason the last frame could not be drawn.
func (h *HUD) Bottom(s *session) string {
	if s.err != nil {
		return h.warn.Render("camera stuck: " + s.err.Error())
	}
	fields := []string{
		h.field("Animation", s.ui.Animation.String()),
		h.field("Projection", s.ui.Projection.String()),
		h.field("eye", s.cam.Eye.String()),
		h.field("up", s.cam.Up.String()),
	}
	return h.base.Render(strings.Join(fields, "  "))
}

func (h *HUD) field(name, value string) string {
	return h.label.Render(name+":") + " " + h.value.Render(value)
}

// Render draws the HUD rows directly to the terminal.
func (h *HUD) Render(width, height int, s *session) {
	const clearLine = "\x1b[2K"

	// Helper to position cursor
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	fmt.Print(moveTo(1, 1) + clearLine + h.Top(width))
	fmt.Print(moveTo(height, 1) + clearLine + h.Bottom(s))
}
