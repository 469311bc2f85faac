package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mobius/pkg/observability"
)

// logHooks writes pipeline events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.GeneratorHooks = logHooks{}
	_ observability.RenderHooks    = logHooks{}
	_ observability.CacheHooks     = logHooks{}
)

func (h logHooks) OnGenerateStart(_ context.Context, baseCount, depth int) {
	h.logger.Debug("generate start", "base", baseCount, "depth", depth)
}

func (h logHooks) OnDepthComplete(_ context.Context, depth, produced, total int) {
	h.logger.Debug("depth done", "depth", depth, "new", produced, "total", total)
}

func (h logHooks) OnGenerateComplete(_ context.Context, total int, d time.Duration) {
	h.logger.Debug("generate done", "circles", total, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", strings.Join(formats, ","))
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", strings.Join(formats, ","), "err", err)
		return
	}
	h.logger.Debug("render done", "formats", strings.Join(formats, ","), "took", d.Round(time.Millisecond))
}

// OnFrame is left quiet; the animator already logs every tenth frame.
func (h logHooks) OnFrame(context.Context, int, int) {}

func (h logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}
