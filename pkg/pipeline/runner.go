package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mobius/pkg/buildinfo"
	"github.com/matzehuels/mobius/pkg/cache"
	"github.com/matzehuels/mobius/pkg/geom"
	"github.com/matzehuels/mobius/pkg/observability"
	"github.com/matzehuels/mobius/pkg/render/pearls"
	"github.com/matzehuels/mobius/pkg/render/sphere"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, keys are scoped to the build version.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// RunPearls generates the circle set and renders every requested format.
func (r *Runner) RunPearls(ctx context.Context, opts Options) (*PearlsResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &PearlsResult{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run", result.RunID[:8])

	// Stage 1: Generate
	nodes := r.generate(ctx, &opts, logger, &result.Stats)
	result.Circles = make([]geom.Circle, len(nodes))
	for i, n := range nodes {
		result.Circles[i] = n.Circle
	}
	result.Stats.CircleCount = len(nodes)
	if !opts.needsLineage() {
		nodes = nil
	}

	logger.Info("generated circles",
		"circles", result.Stats.CircleCount,
		"duration", result.Stats.GenerateTime)
	if result.Stats.Truncated {
		logger.Warn("circle cap reached, deeper levels were cut", "max", opts.MaxCircles)
	}

	// Stage 2: Render
	renderStart := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)
	in := renderInput{
		circles: result.Circles,
		nodes:   nodes,
		opts:    &opts,
		meta: pearls.Meta{
			RunID:     result.RunID,
			Preset:    opts.Preset,
			Depth:     opts.Depth,
			Threshold: opts.Threshold,
		},
	}
	genKey := r.Keyer.GenerationKey(opts.GenerationKeyOpts())

	var renderErr error
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			renderErr = err
			break
		}
		data, hit, err := r.renderCached(ctx, format, genKey, in)
		if err != nil {
			renderErr = fmt.Errorf("render %s: %w", format, err)
			break
		}
		if hit {
			result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
		}
		result.Artifacts[format] = data
		logger.Debug("rendered", "format", format, "bytes", len(data), "cached", hit)
	}

	result.Stats.RenderTime = time.Since(renderStart)
	observability.Render().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, renderErr)
	if renderErr != nil {
		return nil, renderErr
	}
	result.CacheInfo.RenderHit = r.allCachedHit(opts.Formats, result.CacheInfo.Hits)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// generate runs the inversion BFS, logging each level.
func (r *Runner) generate(ctx context.Context, opts *Options, logger *log.Logger, stats *Stats) []geom.Node {
	hooks := observability.Generator()
	hooks.OnGenerateStart(ctx, len(opts.Base), opts.Depth)

	gen := opts.GenerateOptions()
	gen.OnDepth = func(s geom.DepthStats) {
		stats.Levels = append(stats.Levels, s)
		stats.Truncated = stats.Truncated || s.Truncated
		hooks.OnDepthComplete(ctx, s.Depth, s.Produced, s.Total)
		logger.Infof("depth %d computed (%d circles)", s.Depth, s.Total)
	}

	start := time.Now()
	nodes := geom.GenerateTree(opts.Base, gen)
	stats.GenerateTime = time.Since(start)
	hooks.OnGenerateComplete(ctx, len(nodes), stats.GenerateTime)
	return nodes
}

// renderCached serves a format from the cache when possible.
func (r *Runner) renderCached(ctx context.Context, format, genKey string, in renderInput) ([]byte, bool, error) {
	if !cachedFormats[format] {
		data, err := renderFormat(ctx, format, in)
		return data, false, err
	}

	key := r.Keyer.ArtifactKey(genKey, in.opts.ArtifactKeyOpts(format))
	if !in.opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, format)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, format)
	}

	data, err := renderFormat(ctx, format, in)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, data, TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "format", format, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

// allCachedHit reports whether every cacheable requested format was a hit.
func (r *Runner) allCachedHit(formats, hits []string) bool {
	hit := make(map[string]bool, len(hits))
	for _, h := range hits {
		hit[h] = true
	}
	cacheable := false
	for _, f := range formats {
		if !cachedFormats[f] {
			continue
		}
		cacheable = true
		if !hit[f] {
			return false
		}
	}
	return cacheable
}

// RunSphere renders the Möbius sphere animation.
func (r *Runner) RunSphere(ctx context.Context, opts sphere.Options) (*SphereResult, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	runID := uuid.NewString()
	hooks := observability.Render()
	formats := []string{"mp4"}

	userOnFrame := opts.OnFrame
	opts.OnFrame = func(i, total int) {
		hooks.OnFrame(ctx, i, total)
		if userOnFrame != nil {
			userOnFrame(i, total)
		}
	}

	start := time.Now()
	hooks.OnRenderStart(ctx, formats)
	res, err := sphere.Animate(ctx, opts)
	duration := time.Since(start)
	hooks.OnRenderComplete(ctx, formats, duration, err)
	if err != nil {
		return nil, err
	}

	return &SphereResult{RunID: runID, Result: res, Duration: duration}, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
