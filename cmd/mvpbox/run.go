package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/taigrr/mvpbox/pkg/config"
	"github.com/taigrr/mvpbox/pkg/input"
	"github.com/taigrr/mvpbox/pkg/models"
	"github.com/taigrr/mvpbox/pkg/render"
	"github.com/taigrr/mvpbox/pkg/scene"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		flags      config.Flags
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the box interactively",
		Long: `Show the box interactively.

  A/S/D/X     animation: translate, rotate, scale, off
  P/O         projection: perspective, orthographic
  Arrow keys  move the camera
  Esc/Q       quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath, flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "JSON config file")
	f.StringVar(&flags.Model, "model", "", "glTF/GLB model to show instead of the box")
	f.IntVar(&flags.FPS, "fps", 0, fmt.Sprintf("target frames per second (default %d)", config.DefaultFPS))
	f.BoolVar(&flags.Smooth, "smooth", false, "ease camera moves with a spring")
	f.StringVar(&flags.Animation, "animation", "", "starting animation: translate, rotate, scale or off")
	f.StringVar(&flags.Projection, "projection", "", "starting projection: perspective or orthographic")
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	mesh, err := loadMesh(cfg.Model)
	if err != nil {
		return err
	}

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			slog.Error("terminal shutdown", "err", err)
		}
	}()

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	ctx, quit := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer quit()

	keys := input.NewKeys()
	resize := make(chan uv.WindowSizeEvent, 1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readEvents(ctx, quit, term, keys, resize)
	})
	g.Go(func() error {
		return loop(ctx, term, keys, resize, cfg, mesh, width, height)
	})
	return g.Wait()
}

// readEvents feeds terminal events to the key tracker and the frame loop
// until the user quits or ctx ends.
func readEvents(ctx context.Context, quit context.CancelFunc, term *uv.Terminal, keys *input.Keys, resize chan uv.WindowSizeEvent) error {
	events := term.Events()
	tracked := scene.Keys()

	for {
		var ev uv.Event
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				quit()
				return nil
			}
			ev = e
		}

		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			// Only the latest size matters
			select {
			case <-resize:
			default:
			}
			resize <- ev

		case uv.KeyPressEvent:
			if ev.MatchString("escape", "ctrl+c", "q") {
				slog.Info("quit requested")
				quit()
				return nil
			}
			for _, k := range tracked {
				if ev.MatchString(k) {
					keys.Press(k)
				}
			}

		case uv.KeyReleaseEvent:
			for _, k := range tracked {
				if ev.MatchString(k) {
					keys.Release(k)
				}
			}
		}
	}
}

// loop renders one frame per tick until ctx ends.
func loop(ctx context.Context, term *uv.Terminal, keys *input.Keys, resize <-chan uv.WindowSizeEvent,
	cfg config.Config, mesh *models.Mesh, width, height int,
) error {
	screen := render.NewTerminalRenderer(term, width, height)
	view := newViewer(0, 0, mesh, cfg)
	view.resize(screen.FramebufferSize())

	sess, err := newSession(cfg, keys, view.fb.Aspect())
	if err != nil {
		return err
	}

	title := "box"
	if cfg.Model != "" {
		title = filepath.Base(cfg.Model)
	}
	hud := NewHUD(title, mesh.TriangleCount())

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-resize:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			screen = render.NewTerminalRenderer(term, width, height)
			view.resize(screen.FramebufferSize())
			sess.setAspect(view.fb.Aspect())
			slog.Debug("resized", "cols", width, "rows", height)

		case now := <-ticker.C:
			frame := sess.step(now)

			if err := view.draw(frame); err != nil {
				return err
			}
			screen.Render(view.fb)
			if err := screen.Flush(); err != nil {
				return fmt.Errorf("flush: %w", err)
			}

			hud.UpdateFPS(now)
			hud.Render(width, height, sess)
		}
	}
}
