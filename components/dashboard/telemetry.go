package dashboard

import (
	"context"
	"log/slog"
	"sort"
	"strings"
)

// Telemetry records dashboard events for observability.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// SlogTelemetry writes events to a structured logger at debug level;
// events ending in ".invalid" or ".rejected" are logged as warnings.
type SlogTelemetry struct {
	logger *slog.Logger
}

// NewSlogTelemetry adapts a logger; nil uses slog.Default().
func NewSlogTelemetry(logger *slog.Logger) *SlogTelemetry {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogTelemetry{logger: logger}
}

// Record implements Telemetry.
func (t *SlogTelemetry) Record(ctx context.Context, event string, payload map[string]any) {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, payload[key]))
	}
	level := slog.LevelDebug
	if strings.HasSuffix(event, ".invalid") || strings.HasSuffix(event, ".rejected") {
		level = slog.LevelWarn
	}
	t.logger.LogAttrs(ctx, level, event, attrs...)
}

