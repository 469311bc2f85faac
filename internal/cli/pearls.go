package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mobius/pkg/config"
	"github.com/matzehuels/mobius/pkg/errors"
	"github.com/matzehuels/mobius/pkg/pipeline"
)

// pearlsFlags holds pearls flags that have no config field of their own.
type pearlsFlags struct {
	configPath string
	formats    string
	pick       bool
	noCache    bool
	refresh    bool
}

// pearlsCommand creates the pearls command for drawing the inversion fractal.
func (c *CLI) pearlsCommand() *cobra.Command {
	var flags pearlsFlags
	def := config.Default()
	p := def.Pearls

	cmd := &cobra.Command{
		Use:   "pearls",
		Short: "Draw Indra's pearls by repeated circle inversion",
		Long: `Draw Indra's pearls by repeated circle inversion.

Starting from a preset of base circles, every circle is inverted in every
base circle except the one that produced it, down to the requested depth.
Circles smaller than the threshold are discarded along with their
descendants.

The result is written once per format as <output>.<format>. Rasterised and
converted outputs (png, pdf, lineage) are cached locally, so repeating a run
with the same settings is instant.

PDF output needs rsvg-convert on PATH.`,
		Example: `  mobius pearls
  mobius pearls --preset hexagon --depth 6 -f svg,pdf
  mobius pearls --threshold 1e-3 -o out/pearls -f png --size 2400
  mobius pearls --pick`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			mergePearls(&cfg.Pearls, p, flags.formats, cmd.Flags().Changed)
			if err := cfg.Validate(); err != nil {
				return err
			}

			if flags.pick {
				name, err := pickPreset()
				if err != nil {
					return err
				}
				if name == "" {
					printInfo("No preset selected")
					return nil
				}
				cfg.Pearls.Preset = name
			}

			return c.runPearls(cmd.Context(), cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (.toml, .yaml)")
	cmd.Flags().StringVar(&p.Preset, "preset", p.Preset, "base circle preset (see 'mobius presets')")
	cmd.Flags().IntVar(&p.Depth, "depth", p.Depth, "inversion depth")
	cmd.Flags().Float64Var(&p.Threshold, "threshold", p.Threshold, "discard circles with radius at or below this")
	cmd.Flags().IntVar(&p.MaxCircles, "max-circles", p.MaxCircles, "stop after this many circles (0 = no cap)")
	cmd.Flags().StringVarP(&p.Output, "output", "o", p.Output, "output base path, extension added per format")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg, png, pdf, json, dot, lineage (comma-separated, default svg,png)")
	cmd.Flags().IntVar(&p.Size, "size", p.Size, "canvas size in pixels")
	cmd.Flags().Float64Var(&p.Limit, "limit", p.Limit, "viewport half-width in plane units")
	cmd.Flags().StringVar(&p.Color, "color", p.Color, "stroke colour")
	cmd.Flags().StringVar(&p.Background, "background", p.Background, "background colour")
	cmd.Flags().BoolVar(&p.AutoFit, "auto-fit", p.AutoFit, "fit the viewport to the circles instead of --limit")
	cmd.Flags().IntVar(&p.LineageNodes, "lineage-nodes", p.LineageNodes, "maximum nodes in the lineage diagram")
	cmd.Flags().BoolVar(&flags.pick, "pick", false, "choose the preset interactively")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "ignore cached artifacts and re-render")

	return cmd
}

// loadConfig returns the defaults, overlaid with path when it is set.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// mergePearls copies explicitly set flags from src over dst. Flags left at
// their defaults do not override values from a config file.
func mergePearls(dst *config.Pearls, src config.Pearls, formats string, changed func(string) bool) {
	if changed("preset") {
		dst.Preset = src.Preset
	}
	if changed("depth") {
		dst.Depth = src.Depth
	}
	if changed("threshold") {
		dst.Threshold = src.Threshold
	}
	if changed("max-circles") {
		dst.MaxCircles = src.MaxCircles
	}
	if changed("output") {
		dst.Output = src.Output
	}
	if changed("format") {
		dst.Formats = pipeline.ParseFormats(formats)
	}
	if changed("size") {
		dst.Size = src.Size
	}
	if changed("limit") {
		dst.Limit = src.Limit
	}
	if changed("color") {
		dst.Color = src.Color
	}
	if changed("background") {
		dst.Background = src.Background
	}
	if changed("auto-fit") {
		dst.AutoFit = src.AutoFit
	}
	if changed("lineage-nodes") {
		dst.LineageNodes = src.LineageNodes
	}
}

// pearlsOptions converts the pearls config section into pipeline options.
func pearlsOptions(p config.Pearls) pipeline.Options {
	return pipeline.Options{
		Preset:       p.Preset,
		Depth:        p.Depth,
		Threshold:    p.Threshold,
		MaxCircles:   p.MaxCircles,
		Formats:      p.Formats,
		Size:         p.Size,
		Limit:        p.Limit,
		Color:        p.Color,
		Background:   p.Background,
		AutoFit:      p.AutoFit,
		LineageNodes: p.LineageNodes,
	}
}

// runPearls generates, renders and writes every requested format.
func (c *CLI) runPearls(ctx context.Context, cfg config.Config, flags pearlsFlags) error {
	if err := errors.ValidateOutputPath(cfg.Pearls.Output); err != nil {
		return err
	}

	runner, err := c.newRunner(flags.noCache || cfg.Cache.Disabled, cfg.Cache.Dir)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pearlsOptions(cfg.Pearls)
	opts.Refresh = flags.refresh
	opts.Logger = c.Logger
	ctx = withLogger(ctx, c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Drawing %s pearls at depth %d...", opts.Preset, opts.Depth))
	spinner.Start()

	result, err := runner.RunPearls(ctx, opts)
	if err != nil {
		spinner.StopWithError("Pearls failed")
		return fmt.Errorf("pearls: %w", err)
	}
	spinner.Stop()

	paths, err := writeArtifacts(cfg.Pearls.Output, opts.Formats, result.Artifacts)
	if err != nil {
		return err
	}

	printSuccess("Generated %s circles", StyleNumber.Render(fmt.Sprint(result.Stats.CircleCount)))
	printStats(result.Stats, result.CacheInfo.RenderHit)
	if result.Stats.Truncated {
		printWarning("Stopped at the %d circle cap; raise --max-circles for a complete drawing", opts.MaxCircles)
	}
	for _, path := range paths {
		printFile(path)
	}
	loggerFromContext(ctx).Debug("pearls run", "id", result.RunID)
	return nil
}

// writeArtifacts writes each format to base plus its extension and returns
// the paths in format order.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		data, ok := artifacts[f]
		if !ok {
			return paths, errors.New(errors.ErrCodeInternal, "no %s output produced", f)
		}
		path := base + pipeline.Extension(f)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
