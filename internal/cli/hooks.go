package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Nikolay-Lysenko/renovation/pkg/observability"
)

// logRenderHooks forwards build and render events to the CLI logger at
// debug level. It is installed for every command run so --verbose surfaces
// the timing of each stage.
type logRenderHooks struct {
	observability.NoopRenderHooks
	logger *log.Logger
}

func (h *logRenderHooks) OnBuildStart(ctx context.Context, source string) {
	h.logger.Debug("building project", "source", source)
}

func (h *logRenderHooks) OnBuildComplete(ctx context.Context, source string, planCount, elementCount int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("project build failed", "source", source, "error", err)
		return
	}
	h.logger.Debug("project built", "source", source, "plans", planCount, "elements", elementCount, "duration", duration.Round(time.Millisecond))
}

func (h *logRenderHooks) OnRenderStart(ctx context.Context, format string, planCount int) {
	h.logger.Debug("render started", "format", format, "plans", planCount)
}

func (h *logRenderHooks) OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("render finished", "format", format, "duration", duration.Round(time.Millisecond))
}

// logCacheHooks forwards artifact cache events to the CLI logger.
type logCacheHooks struct {
	observability.NoopCacheHooks
	logger *log.Logger
}

func (h *logCacheHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.logger.Debug("cache hit", "key_type", keyType)
}

func (h *logCacheHooks) OnCacheMiss(ctx context.Context, keyType string) {
	h.logger.Debug("cache miss", "key_type", keyType)
}

func (h *logCacheHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "key_type", keyType, "bytes", size)
}
