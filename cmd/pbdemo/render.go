package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/progressbar"
	"github.com/gogpu/progressbar/internal/config"
	"github.com/gogpu/progressbar/surface"
)

const formatRGB565 = "rgb565"

type renderFlags struct {
	config   string
	out      string
	format   string
	scale    int
	lastOnly bool
}

func newRenderCmd() *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Replay a scenario and write a frame per step",
		Long: `Replay a scenario and write the initial frame plus one frame per step.

Formats png and bmp write upscaled previews. Format rgb565 writes the raw
little-endian panel buffer, updated only where bars changed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "Scenario file (default: built-in scenario)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "frames", "Output directory")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "png", "Frame format: png, bmp or rgb565")
	cmd.Flags().IntVar(&flags.scale, "scale", 0, "Preview upscaling factor (default: scenario display scale)")
	cmd.Flags().BoolVar(&flags.lastOnly, "last", false, "Write only the final frame")
	return cmd
}

func runRender(cmd *cobra.Command, flags *renderFlags) error {
	switch flags.format {
	case "png", "bmp", formatRGB565:
	default:
		return fmt.Errorf("%w: %q", surface.ErrUnsupportedFormat, flags.format)
	}

	s := config.Default()
	if flags.config != "" {
		var err error
		if s, err = config.Load(flags.config); err != nil {
			return err
		}
	}
	scale := s.Display.Scale
	if flags.scale > 0 {
		scale = flags.scale
	}

	d, err := newDisplay(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(flags.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	w := &frameWriter{dir: flags.out, format: flags.format, scale: scale}
	if flags.format == formatRGB565 {
		w.panel = surface.NewRGB565(s.Display.Width, s.Display.Height)
		w.panel.FlushImage(d.frame, d.frame.Bounds())
	}

	log := progressbar.Logger()
	written := 0
	write := func(step int) error {
		if err := w.write(step, d.frame); err != nil {
			return err
		}
		written++
		return nil
	}

	if !flags.lastOnly {
		if err := write(0); err != nil {
			return err
		}
	}
	for i, step := range s.Steps {
		if err := d.apply(step); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "step %d: %v\n", i+1, err)
		}
		changed := d.refresh()
		w.flush(d.frame, changed)
		log.Debug("pbdemo: refresh", "step", i+1, "rects", changed)

		if !flags.lastOnly {
			if err := write(i + 1); err != nil {
				return err
			}
		}
	}
	if flags.lastOnly {
		if err := write(len(s.Steps)); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", written, flags.out)
	return nil
}

// frameWriter stores numbered frames in a directory.
type frameWriter struct {
	dir    string
	format string
	scale  int
	panel  *surface.RGB565
}

// flush pushes the changed rectangles into the panel buffer, if any.
func (w *frameWriter) flush(frame image.Image, changed []image.Rectangle) {
	if w.panel == nil {
		return
	}
	for _, r := range changed {
		w.panel.FlushImage(frame, r)
	}
}

func (w *frameWriter) write(step int, frame image.Image) error {
	path := filepath.Join(w.dir, fmt.Sprintf("frame_%03d.%s", step, w.format))
	if w.panel != nil {
		if err := os.WriteFile(path, w.panel.Buf, 0o644); err != nil { //nolint:gosec // frames are meant to be shared
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
	if err := surface.Save(path, surface.Scale(frame, w.scale)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
