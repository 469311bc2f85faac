package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mobius/pkg/config"
	"github.com/matzehuels/mobius/pkg/errors"
	"github.com/matzehuels/mobius/pkg/render/sphere"
)

// sphereCommand creates the sphere command for the Möbius animation.
func (c *CLI) sphereCommand() *cobra.Command {
	var (
		configPath string
		size       string
	)
	def := config.Default()
	s := def.Sphere

	cmd := &cobra.Command{
		Use:   "sphere",
		Short: "Animate a loxodromic Möbius transformation on the Riemann sphere",
		Long: `Animate a loxodromic Möbius transformation on the Riemann sphere.

A grid of meridians and parallels is pushed through the transformation,
lifted onto the unit sphere and drawn from a slowly orbiting camera. Frames
are rendered in parallel and encoded to H.264 with ffmpeg.

If ffmpeg is missing or fails, the last frame is written next to the
requested output as a PNG instead.`,
		Example: `  mobius sphere
  mobius sphere --frames 60 --fps 24 -o loxo.mp4
  mobius sphere --size 800x640 --meridians 24 --parallels 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("size") {
				w, h, err := parseSize(size)
				if err != nil {
					return err
				}
				s.Width, s.Height = w, h
			}
			mergeSphere(&cfg.Sphere, s, cmd.Flags().Changed)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runSphere(cmd.Context(), cfg.Sphere)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (.toml, .yaml)")
	cmd.Flags().IntVar(&s.Frames, "frames", s.Frames, "number of frames")
	cmd.Flags().IntVar(&s.FPS, "fps", s.FPS, "frames per second")
	cmd.Flags().IntVar(&s.Resolution, "res", s.Resolution, "samples per grid line")
	cmd.Flags().IntVar(&s.Meridians, "meridians", s.Meridians, "number of meridians")
	cmd.Flags().IntVar(&s.Parallels, "parallels", s.Parallels, "number of parallels")
	cmd.Flags().StringVarP(&s.Output, "output", "o", s.Output, "video path")
	cmd.Flags().StringVar(&size, "size", fmt.Sprintf("%dx%d", s.Width, s.Height), "frame size as WIDTHxHEIGHT")

	return cmd
}

// mergeSphere copies explicitly set flags from src over dst.
func mergeSphere(dst *config.Sphere, src config.Sphere, changed func(string) bool) {
	if changed("frames") {
		dst.Frames = src.Frames
	}
	if changed("fps") {
		dst.FPS = src.FPS
	}
	if changed("res") {
		dst.Resolution = src.Resolution
	}
	if changed("meridians") {
		dst.Meridians = src.Meridians
	}
	if changed("parallels") {
		dst.Parallels = src.Parallels
	}
	if changed("output") {
		dst.Output = src.Output
	}
	if changed("size") {
		dst.Width, dst.Height = src.Width, src.Height
	}
}

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "size must be WIDTHxHEIGHT, got %q", s)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "size must be two positive integers, got %q", s)
	}
	return w, h, nil
}

// sphereOptions converts the sphere config section into animation options.
func sphereOptions(s config.Sphere) sphere.Options {
	return sphere.Options{
		Frames:     s.Frames,
		FPS:        s.FPS,
		Resolution: s.Resolution,
		Meridians:  s.Meridians,
		Parallels:  s.Parallels,
		Width:      s.Width,
		Height:     s.Height,
		Output:     s.Output,
	}
}

// runSphere renders the animation and reports where it went.
func (c *CLI) runSphere(ctx context.Context, s config.Sphere) error {
	// Frames are not cached; they are only intermediates for the encoder.
	runner, err := c.newRunner(true, "")
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := sphereOptions(s)
	opts.Logger = c.Logger
	ctx = withLogger(ctx, c.Logger)

	sw := startStopwatch(c.Logger)
	result, err := runner.RunSphere(ctx, opts)
	if err != nil {
		return fmt.Errorf("sphere: %w", err)
	}
	sw.lap("Rendered %d frames", result.Frames)

	if result.Fallback {
		printWarning("Video encoding unavailable, wrote the last frame instead")
		printDetail("%s", errors.UserMessage(result.VideoErr))
	} else {
		printSuccess("Animation written")
	}
	printFile(result.Path)
	return nil
}
