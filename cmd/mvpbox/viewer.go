package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/taigrr/mvpbox/pkg/config"
	"github.com/taigrr/mvpbox/pkg/input"
	"github.com/taigrr/mvpbox/pkg/models"
	"github.com/taigrr/mvpbox/pkg/render"
	"github.com/taigrr/mvpbox/pkg/scene"
)

// objectSize is the edge length of the box, and the largest dimension a
// loaded model is fitted to.
const objectSize = 1.0

// loadMesh returns the box, or the model at path fitted to the box's size.
func loadMesh(path string) (*models.Mesh, error) {
	if path == "" {
		return models.NewBox(objectSize), nil
	}
	mesh, err := models.LoadGLTF(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	mesh.Fit(objectSize)
	slog.Info("model loaded", "path", path, "vertices", mesh.VertexCount(), "triangles", mesh.TriangleCount())
	return mesh, nil
}

// viewer owns the drawing state shared by the interactive and headless
// commands.
type viewer struct {
	fb    *render.Framebuffer
	rast  *render.Rasterizer
	prog  *render.Program
	mesh  *models.Mesh
	color render.Color
	bg    render.Color
}

func newViewer(width, height int, mesh *models.Mesh, cfg config.Config) *viewer {
	fb := render.NewFramebuffer(width, height)
	color, bg := cfg.Colors()
	return &viewer{
		fb:    fb,
		rast:  render.NewRasterizer(fb),
		prog:  render.NewProgram(),
		mesh:  mesh,
		color: color,
		bg:    bg,
	}
}

func (v *viewer) resize(width, height int) {
	v.fb = render.NewFramebuffer(width, height)
	v.rast.Resize(v.fb)
}

// draw clears the framebuffer, uploads the frame's MVP and draws the mesh.
// Back faces are culled only while the model keeps its handedness; a
// mirrored or flattened model leaves every face to the depth test.
func (v *viewer) draw(frame scene.Frame) error {
	v.fb.Clear(v.bg)
	v.rast.ClearDepth()
	v.rast.CullBackFaces = frame.Model.Determinant() > 0
	v.prog.SetUniform4x4f(render.UniformMVP, frame.MVP.Flatten())
	return v.prog.Draw(v.rast, v.mesh, v.color)
}

// loadConfig reads the optional config file, applies flags and validates
// the result.
func loadConfig(path string, flags config.Flags) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// session is the per-frame state of the interactive viewer.
type session struct {
	keys   *input.Keys
	cam    scene.Camera
	ui     scene.UIState
	ctl    scene.Controls
	follow *scene.Follower

	frame    scene.Frame // last frame that composed cleanly
	err      error       // why the latest frame did not
	mirrored bool        // model matrix flips handedness
}

func newSession(cfg config.Config, keys *input.Keys, aspect float64) (*session, error) {
	cam := cfg.Camera().WithAspect(aspect)
	frame, err := scene.Initial(cam)
	if err != nil {
		return nil, err
	}
	s := &session{
		keys:  keys,
		cam:   cam,
		ui:    cfg.UI(),
		ctl:   cfg.Controls(),
		frame: frame,
	}
	if cfg.Smooth {
		s.follow = scene.NewFollower(cfg.FPS, cam)
	}
	return s, nil
}

func (s *session) setAspect(aspect float64) {
	s.cam = s.cam.WithAspect(aspect)
}

// step advances one frame from the keys seen since the previous step. When
// the camera cannot compose a frame the previous frame is returned again and
// the camera keeps moving, so more input can recover it.
func (s *session) step(now time.Time) scene.Frame {
	keys := s.keys.Frame()
	s.ui = s.ui.Apply(keys)
	in := scene.Input{
		UI:        s.ui,
		Direction: scene.DirectionFrom(keys),
		Phase:     scene.Phase(now),
		Controls:  s.ctl,
	}

	next, frame, err := scene.Update(s.cam, in)
	if in.Direction != scene.DirectionNone {
		slog.Debug("camera moved", "dir", in.Direction, "eye", next.Eye, "up", next.Up)
	}
	s.cam = next
	if err != nil {
		if s.err == nil {
			slog.Warn("frame skipped", "err", err)
		}
		s.err = err
		return s.frame
	}
	s.err = nil

	if mirrored := frame.Model.Determinant() < 0; mirrored != s.mirrored {
		slog.Debug("model handedness changed", "mirrored", mirrored, "phase", in.Phase)
		s.mirrored = mirrored
	}

	if s.follow != nil {
		eased, ferr := scene.Compose(s.follow.Follow(next), s.ui, in.Phase)
		if ferr == nil {
			frame = eased
		} else {
			slog.Debug("eased camera degenerate, showing target", "err", ferr)
		}
	}
	s.frame = frame
	return frame
}
