// Package config loads mvpbox settings from an optional JSON file and
// command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/taigrr/mvpbox/pkg/math3d"
	"github.com/taigrr/mvpbox/pkg/render"
	"github.com/taigrr/mvpbox/pkg/scene"
)

// Config holds the camera, input and display settings.
// Zero values mean "use the default" except for Center, whose zero value
// is the default, and LockUp/Smooth, which default to false.
type Config struct {
	// Camera
	Eye    [3]float64 `json:"eye"`
	Center [3]float64 `json:"center"`
	Up     [3]float64 `json:"up"`
	FovY   float64    `json:"fovy"`
	Left   float64    `json:"left"`
	Right  float64    `json:"right"`
	Near   float64    `json:"near"`
	Far    float64    `json:"far"`

	// Input
	Step   float64 `json:"step"`
	LockUp bool    `json:"lock_up"`

	// Display
	Color      string `json:"color"`
	Background string `json:"background"`
	Animation  string `json:"animation"`
	Projection string `json:"projection"`
	Model      string `json:"model"`
	FPS        int    `json:"fps"`
	Smooth     bool   `json:"smooth"`
}

// Defaults for display settings.
const (
	DefaultColor      = "#FFBF00"
	DefaultBackground = "#000000"
	DefaultFPS        = 30
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Model      string
	FPS        int
	Smooth     bool
	Animation  string
	Projection string
}

// Resolve applies flag overrides and fills every unset field with its
// default. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Smooth {
		c.Smooth = true
	}
	if flags.Animation != "" {
		c.Animation = flags.Animation
	}
	if flags.Projection != "" {
		c.Projection = flags.Projection
	}

	def := scene.DefaultCamera()
	if c.Eye == [3]float64{} {
		c.Eye = array(def.Eye)
	}
	if c.Up == [3]float64{} {
		c.Up = array(def.Up)
	}
	if c.FovY == 0 {
		c.FovY = def.FovY
	}
	if c.Left == 0 && c.Right == 0 {
		c.Left, c.Right = def.Left, def.Right
	}
	if c.Near == 0 {
		c.Near = def.Near
	}
	if c.Far == 0 {
		c.Far = def.Far
	}

	if c.Step == 0 {
		c.Step = scene.DefaultNudgeStep
	}

	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	ui := scene.DefaultUIState()
	if c.Animation == "" {
		c.Animation = ui.Animation.String()
	}
	if c.Projection == "" {
		c.Projection = ui.Projection.String()
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
}

// Validate reports every setting that would make the first frame fail.
// Both projections are checked since either can be selected at runtime.
func (c Config) Validate() error {
	var errs []error

	cam := c.Camera()
	if _, err := cam.View(); err != nil {
		errs = append(errs, fmt.Errorf("camera: %w", err))
	}
	for _, p := range []scene.Projection{scene.ProjectionPerspective, scene.ProjectionOrthographic} {
		if _, err := cam.Projection(p); err != nil {
			errs = append(errs, fmt.Errorf("camera: %w", err))
		}
	}

	if c.Step < 0 {
		errs = append(errs, fmt.Errorf("step %g must not be negative", c.Step))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.FPS))
	}
	if _, err := render.ParseHex(c.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.ParseHex(c.Background); err != nil {
		errs = append(errs, err)
	}
	if _, err := scene.ParseAnimation(c.Animation); err != nil {
		errs = append(errs, err)
	}
	if _, err := scene.ParseProjection(c.Projection); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Camera returns the starting camera. Aspect keeps its default until the
// first resize.
func (c Config) Camera() scene.Camera {
	cam := scene.DefaultCamera()
	cam.Eye = vec(c.Eye)
	cam.Center = vec(c.Center)
	cam.Up = vec(c.Up)
	cam.FovY = c.FovY
	cam.Left, cam.Right = c.Left, c.Right
	cam.Near, cam.Far = c.Near, c.Far
	return cam
}

// Controls returns the key input settings.
func (c Config) Controls() scene.Controls {
	return scene.Controls{Step: c.Step, LockUp: c.LockUp}
}

// UI returns the starting UI state. Unknown names fall back to the
// defaults; call Validate to catch them.
func (c Config) UI() scene.UIState {
	ui := scene.DefaultUIState()
	if a, err := scene.ParseAnimation(c.Animation); err == nil {
		ui.Animation = a
	}
	if p, err := scene.ParseProjection(c.Projection); err == nil {
		ui.Projection = p
	}
	return ui
}

// Colors returns the box and background colors, falling back to the
// defaults for unparseable values.
func (c Config) Colors() (box, background render.Color) {
	box, err := render.ParseHex(c.Color)
	if err != nil {
		box = render.ColorAmber
	}
	background, err = render.ParseHex(c.Background)
	if err != nil {
		background = render.ColorBlack
	}
	return box, background
}

func vec(a [3]float64) math3d.Vec3 {
	return math3d.V3(a[0], a[1], a[2])
}

func array(v math3d.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
