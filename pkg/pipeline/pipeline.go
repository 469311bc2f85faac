// Package pipeline runs the mobius generate → render flows.
//
// The CLI builds [Options] from flags and config, then calls
// [Runner.RunPearls] or [Runner.RunSphere]. The runner owns the artifact
// cache and the logger and emits observability hooks; rendering itself is
// delegated to the pearls and sphere packages.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Preset = "hexagon"
//	opts.Formats = []string{"svg", "pdf"}
//	result, err := runner.RunPearls(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mobius/pkg/cache"
	"github.com/matzehuels/mobius/pkg/errors"
	"github.com/matzehuels/mobius/pkg/geom"
	"github.com/matzehuels/mobius/pkg/render/pearls"
	"github.com/matzehuels/mobius/pkg/render/sphere"
)

// Format constants for output formats.
const (
	FormatSVG     = "svg"
	FormatPNG     = "png"
	FormatPDF     = "pdf"
	FormatJSON    = "json"
	FormatDOT     = "dot"     // lineage graph source
	FormatLineage = "lineage" // lineage graph rendered to SVG
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:     true,
	FormatPNG:     true,
	FormatPDF:     true,
	FormatJSON:    true,
	FormatDOT:     true,
	FormatLineage: true,
}

// cachedFormats are the formats worth caching. SVG and DOT are cheaper to
// redraw than to load, and JSON embeds the run id.
var cachedFormats = map[string]bool{
	FormatPNG:     true,
	FormatPDF:     true,
	FormatLineage: true,
}

// TTLArtifact is how long a cached artifact stays valid.
const TTLArtifact = 30 * 24 * time.Hour

// DefaultLineageNodes caps the lineage diagram; graphviz layout time grows
// quickly beyond a few hundred nodes.
const DefaultLineageNodes = 200

// Extension returns the file extension for a format. The lineage SVG gets a
// distinct suffix so it does not overwrite the main drawing.
func Extension(format string) string {
	if format == FormatLineage {
		return ".lineage.svg"
	}
	return "." + format
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot, lineage)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// =============================================================================
// Options - Pearls Configuration
// =============================================================================

// Options configures [Runner.RunPearls].
//
// Depth and Threshold have meaningful zero values (no inversions, no
// pruning), so they are never defaulted; start from [DefaultOptions].
type Options struct {
	// Generation
	Preset     string        `json:"preset,omitempty"`
	Base       []geom.Circle `json:"-"` // overrides Preset when set
	Depth      int           `json:"depth"`
	Threshold  float64       `json:"threshold"`
	MaxCircles int           `json:"max_circles,omitempty"`

	// Rendering
	Formats      []string `json:"formats,omitempty"`
	Size         int      `json:"size,omitempty"`
	Limit        float64  `json:"limit,omitempty"`
	Color        string   `json:"color,omitempty"`
	Background   string   `json:"background,omitempty"`
	AutoFit      bool     `json:"auto_fit,omitempty"`
	LineageNodes int      `json:"lineage_nodes,omitempty"`

	// Refresh skips cache reads; fresh artifacts are still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	baseRadius float64
	validated  bool
}

// DefaultOptions returns the reference configuration: the square preset at
// depth 8 with threshold 1e-4, written as SVG and PNG.
func DefaultOptions() Options {
	return Options{
		Preset:    geom.DefaultPreset,
		Depth:     geom.DefaultDepth,
		Threshold: geom.DefaultThreshold,
		Formats:   []string{FormatSVG, FormatPNG},
	}
}

// SetDefaults fills zero-valued rendering fields.
func (o *Options) SetDefaults() {
	if o.Preset == "" && len(o.Base) == 0 {
		o.Preset = geom.DefaultPreset
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Size == 0 {
		o.Size = pearls.DefaultSize
	}
	if o.Limit == 0 {
		o.Limit = pearls.DefaultLimit
	}
	if o.Color == "" {
		o.Color = pearls.DefaultColor
	}
	if o.Background == "" {
		o.Background = pearls.DefaultBackground
	}
	if o.LineageNodes == 0 {
		o.LineageNodes = DefaultLineageNodes
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults, resolves the preset into base
// circles and validates everything. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if len(o.Base) == 0 {
		p, err := geom.LookupPreset(o.Preset)
		if err != nil {
			return err
		}
		o.Base = p.Circles
		o.baseRadius = p.BaseRadius
	} else {
		o.baseRadius = o.Base[0].Radius
	}

	if err := geom.Validate(o.Base, o.GenerateOptions()); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Size < 0 || o.Limit < 0 || o.LineageNodes < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "size, limit and lineage nodes must be positive")
	}
	o.validated = true
	return nil
}

// GenerateOptions returns the generator settings.
func (o *Options) GenerateOptions() geom.Options {
	return geom.Options{
		Depth:      o.Depth,
		Threshold:  o.Threshold,
		MaxCircles: o.MaxCircles,
	}
}

// RenderOptions returns the pearls renderer options.
func (o *Options) RenderOptions() []pearls.Option {
	opts := []pearls.Option{
		pearls.WithSize(o.Size),
		pearls.WithLimit(o.Limit),
		pearls.WithColor(o.Color),
		pearls.WithBackground(o.Background),
	}
	if o.baseRadius > 0 {
		opts = append(opts, pearls.WithBaseRadius(o.baseRadius))
	}
	if o.AutoFit {
		opts = append(opts, pearls.WithAutoFit())
	}
	return opts
}

// GenerationKeyOpts returns cache key options for the circle set.
func (o *Options) GenerationKeyOpts() cache.GenerationKeyOpts {
	base := make([][3]float64, len(o.Base))
	for i, c := range o.Base {
		base[i] = [3]float64{c.X(), c.Y(), c.Radius}
	}
	return cache.GenerationKeyOpts{
		Base:       base,
		Depth:      o.Depth,
		Threshold:  o.Threshold,
		MaxCircles: o.MaxCircles,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:     format,
		Size:       o.Size,
		Limit:      o.Limit,
		Color:      o.Color,
		Background: o.Background,
		AutoFit:    o.AutoFit,
	}
	if format == FormatLineage {
		k.LineageNodes = o.LineageNodes
	}
	return k
}

// needsLineage reports whether any requested format uses the inversion tree.
func (o *Options) needsLineage() bool {
	for _, f := range o.Formats {
		if f == FormatDOT || f == FormatLineage {
			return true
		}
	}
	return false
}

// =============================================================================
// Results
// =============================================================================

// PearlsResult contains the outputs of a pearls run.
type PearlsResult struct {
	// RunID identifies this run in logs and the JSON export.
	RunID string

	Circles []geom.Circle

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CircleCount  int
	Levels       []geom.DepthStats
	Truncated    bool
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks which artifacts came from the cache.
type CacheInfo struct {
	Hits      []string // formats served from cache
	RenderHit bool     // every cacheable format was a hit
}

// SphereResult contains the outputs of a sphere run.
type SphereResult struct {
	RunID string
	sphere.Result
	Duration time.Duration
}
