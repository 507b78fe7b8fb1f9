package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorAmber = color.RGBA{255, 191, 0, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return color.RGBA{r, g, b, 255}
}

// HexToRGB parses a hex color such as "#FFBF00" (the leading # is
// optional) into normalized red, green and blue components in [0, 1].
func HexToRGB(hex string) ([3]float64, error) {
	c, err := parseHex(hex)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{c.R, c.G, c.B}, nil
}

// ParseHex parses a hex color into an opaque Color.
func ParseHex(hex string) (Color, error) {
	c, err := parseHex(hex)
	if err != nil {
		return Color{}, err
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

func parseHex(hex string) (colorful.Color, error) {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return c, nil
}

// MultiplyColor scales a color's RGB by intensity, clamped to [0, 1].
func MultiplyColor(c Color, intensity float32) Color {
	intensity = max(0, min(1, intensity))
	return color.RGBA{
		R: uint8(float32(c.R) * intensity),
		G: uint8(float32(c.G) * intensity),
		B: uint8(float32(c.B) * intensity),
		A: c.A,
	}
}
