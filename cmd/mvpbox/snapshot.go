package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/taigrr/mvpbox/pkg/config"
	"github.com/taigrr/mvpbox/pkg/models"
	"github.com/taigrr/mvpbox/pkg/scene"
)

func newSnapshotCmd() *cobra.Command {
	var (
		configPath    string
		flags         config.Flags
		at            string
		phase         float64
		width, height int
		scale         int
	)

	cmd := &cobra.Command{
		Use:   "snapshot <out.png|out.webp>",
		Short: "Render a single frame to an image",
		Long: `Render a single frame to a PNG or WebP image.

The animation phase comes from --phase if given, otherwise from the
wall-clock time --at (RFC 3339, default now).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, flags)
			if err != nil {
				return err
			}
			if width <= 0 || height <= 0 || scale <= 0 {
				return fmt.Errorf("size %dx%d and scale %d must be positive", width, height, scale)
			}

			if !cmd.Flags().Changed("phase") {
				t := time.Now()
				if at != "" {
					if t, err = time.Parse(time.RFC3339, at); err != nil {
						return fmt.Errorf("parse --at: %w", err)
					}
				}
				phase = scene.Phase(t)
			}

			mesh, err := loadMesh(cfg.Model)
			if err != nil {
				return err
			}
			view := newViewer(width, height, mesh, cfg)

			cam := cfg.Camera().WithAspect(view.fb.Aspect())
			frame, err := scene.Compose(cam, cfg.UI(), phase)
			if err != nil {
				return err
			}
			if err := view.draw(frame); err != nil {
				return err
			}

			out := args[0]
			if err := view.fb.Save(out, scale); err != nil {
				return err
			}
			slog.Info("snapshot written", "path", out, "phase", phase, "ui", frame.UI, "stats", view.rast.Stats)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "JSON config file")
	f.StringVar(&flags.Model, "model", "", "glTF/GLB model to draw instead of the box")
	f.StringVar(&flags.Animation, "animation", "", "animation: translate, rotate, scale or off")
	f.StringVar(&flags.Projection, "projection", "", "projection: perspective or orthographic")
	f.StringVar(&at, "at", "", "wall-clock time that sets the animation phase (RFC 3339)")
	f.Float64Var(&phase, "phase", 0, "animation phase in [-1, 1], overrides --at")
	f.IntVar(&width, "width", 160, "framebuffer width in pixels")
	f.IntVar(&height, "height", 90, "framebuffer height in pixels")
	f.IntVar(&scale, "scale", 4, "integer upscale factor for the image")
	return cmd
}

func newExportCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "export <out.glb>",
		Short: "Write the drawn object as a binary glTF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mesh, err := loadMesh(model)
			if err != nil {
				return err
			}
			if err := models.SaveGLB(mesh, args[0]); err != nil {
				return err
			}
			slog.Info("mesh exported", "path", args[0], "triangles", mesh.TriangleCount())
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d triangles)\n", args[0], mesh.TriangleCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "glTF/GLB model to re-export, fitted to the box's size")
	return cmd
}
