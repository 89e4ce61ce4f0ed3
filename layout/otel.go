package layout

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// otelMetrics holds the OpenTelemetry metric instruments for a simulation.
// Instruments are created once at construction and reused for every tick.
// A nil *otelMetrics (metrics not configured) is valid and records nothing.
type otelMetrics struct {
	// tickCounter increments once per completed simulation tick.
	tickCounter metric.Int64Counter

	// reheatCounter increments once per Reheat call.
	reheatCounter metric.Int64Counter

	// settleHistogram records the duration from (re)heating to settling,
	// in milliseconds.
	settleHistogram metric.Float64Histogram
}

// newOTelMetrics creates and initializes the metric instruments from the
// given provider.
func newOTelMetrics(mp metric.MeterProvider) (*otelMetrics, error) {
	meter := mp.Meter("github.com/workloom/sdk/layout")
	m := &otelMetrics{}
	var err error

	m.tickCounter, err = meter.Int64Counter(
		"layout.ticks",
		metric.WithDescription("Number of simulation ticks advanced"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create tick counter: %w", err)
	}

	m.reheatCounter, err = meter.Int64Counter(
		"layout.reheats",
		metric.WithDescription("Number of times a settled layout was reheated"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create reheat counter: %w", err)
	}

	m.settleHistogram, err = meter.Float64Histogram(
		"layout.settle.duration",
		metric.WithDescription("Time from (re)heating to settling in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create settle histogram: %w", err)
	}

	return m, nil
}

func (m *otelMetrics) addTick() {
	if m == nil {
		return
	}
	m.tickCounter.Add(context.Background(), 1)
}

func (m *otelMetrics) addReheat() {
	if m == nil {
		return
	}
	m.reheatCounter.Add(context.Background(), 1)
}

func (m *otelMetrics) recordSettle(d time.Duration) {
	if m == nil {
		return
	}
	m.settleHistogram.Record(context.Background(), float64(d.Milliseconds()))
}
