// mvpbox - Model/View/Projection Box
// Shows one animated box in the terminal and lets you drive its model,
// view and projection matrices from the keyboard.
//
// Controls:
//
//	A/S/D/X     - Animation: translate, rotate, scale, off
//	P/O         - Projection: perspective, orthographic
//	Arrow keys  - Move the camera
//	Esc/Q       - Quit
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logs logOptions

	root := &cobra.Command{
		Use:   "mvpbox",
		Short: "Drive a box's model, view and projection matrices in the terminal",
		Long: `mvpbox renders a single box through a model-view-projection pipeline.
The run command is interactive; snapshot and export work headless.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return logs.open()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return logs.close()
		},
	}
	root.PersistentFlags().StringVar(&logs.path, "log", "", "write a debug log to this file")

	root.AddCommand(newRunCmd(), newSnapshotCmd(), newExportCmd())
	return root
}

// logOptions routes slog output to a file. The terminal belongs to the
// renderer while running, so without --log records are discarded.
type logOptions struct {
	path string
	file *os.File
}

func (o *logOptions) open() error {
	var w io.Writer = io.Discard
	if o.path != "" {
		f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		o.file = f
		w = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

func (o *logOptions) close() error {
	if o.file == nil {
		return nil
	}
	err := o.file.Close()
	o.file = nil
	return err
}
