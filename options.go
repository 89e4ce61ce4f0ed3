package sdk

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// WorkspaceOption configures a Workspace.
type WorkspaceOption func(*workspaceConfig)

// workspaceConfig holds configuration for a Workspace instance.
type workspaceConfig struct {
	logger        *slog.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	width, height float64
}

// WithLogger sets a custom logger for the workspace and the simulations it
// creates. If not provided, a default JSON logger is created.
func WithLogger(logger *slog.Logger) WorkspaceOption {
	return func(c *workspaceConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer used to trace snapshot
// replacement and projection builds.
func WithTracer(tracer trace.Tracer) WorkspaceOption {
	return func(c *workspaceConfig) {
		c.tracer = tracer
	}
}

// WithMeterProvider sets an OpenTelemetry meter provider passed through to
// every simulation the workspace creates.
func WithMeterProvider(mp metric.MeterProvider) WorkspaceOption {
	return func(c *workspaceConfig) {
		c.meterProvider = mp
	}
}

// WithCanvasSize sets the rendering viewport dimensions used for centering
// and initial jitter. Required for a meaningful canvas layout; it can also
// be set later with SetCanvasSize.
func WithCanvasSize(width, height float64) WorkspaceOption {
	return func(c *workspaceConfig) {
		c.width, c.height = width, height
	}
}
