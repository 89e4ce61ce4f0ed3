package layout

import (
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel/metric"
)

// Defaults for the simulation parameters. The force defaults match the
// canvas' visual tuning: links relax toward 150 units of separation, charge
// keeps clusters apart at strength -300, and collision enforces an 80-unit
// minimum between node centers.
const (
	DefaultLinkDistance    = 150.0
	DefaultChargeStrength  = -300.0
	DefaultCollisionRadius = 80.0

	// DefaultAlphaDecay settles the simulation in roughly 300 ticks,
	// matching 1 - pow(alphaMin, 1/300).
	DefaultAlphaDecay = 0.0228

	DefaultAlphaMin      = 0.001
	DefaultVelocityDecay = 0.4

	// DefaultReheatAlpha is the energy restored by Reheat: enough for the
	// layout to relax around a structural edit without reshuffling
	// globally.
	DefaultReheatAlpha = 0.3
)

// Option configures a Simulation.
type Option func(*config)

type config struct {
	linkDistance    float64
	chargeStrength  float64
	collisionRadius float64
	centerX         float64
	centerY         float64
	alphaDecay      float64
	alphaMin        float64
	velocityDecay   float64

	logger        *slog.Logger
	meterProvider metric.MeterProvider
	rng           *rand.Rand
}

func defaultConfig() *config {
	return &config{
		linkDistance:    DefaultLinkDistance,
		chargeStrength:  DefaultChargeStrength,
		collisionRadius: DefaultCollisionRadius,
		alphaDecay:      DefaultAlphaDecay,
		alphaMin:        DefaultAlphaMin,
		velocityDecay:   DefaultVelocityDecay,
	}
}

// WithLinkDistance sets the target separation the link force pulls linked
// nodes toward. Parent-child and dependency links share the one force.
func WithLinkDistance(d float64) Option {
	return func(c *config) {
		c.linkDistance = d
	}
}

// WithChargeStrength sets the many-body strength. Negative values repel;
// the default repels.
func WithChargeStrength(s float64) Option {
	return func(c *config) {
		c.chargeStrength = s
	}
}

// WithCollisionRadius sets the minimum separation enforced between node
// centers, independent of the link force.
func WithCollisionRadius(r float64) Option {
	return func(c *config) {
		c.collisionRadius = r
	}
}

// WithCenter sets the canvas center the whole layout is biased toward so
// the graph does not drift off-view. Defaults to the origin.
func WithCenter(x, y float64) Option {
	return func(c *config) {
		c.centerX, c.centerY = x, y
	}
}

// WithAlphaDecay sets the per-tick decay of the energy term. Lower values
// take longer to settle but explore more layouts.
func WithAlphaDecay(d float64) Option {
	return func(c *config) {
		c.alphaDecay = d
	}
}

// WithVelocityDecay sets the per-tick velocity damping in [0, 1). Higher
// values behave like a more viscous medium.
func WithVelocityDecay(d float64) Option {
	return func(c *config) {
		c.velocityDecay = d
	}
}

// WithLogger sets a structured logger for lifecycle events. If not
// provided, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMeterProvider enables OpenTelemetry metrics for the simulation: tick
// counts, reheat counts, and settle durations.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithRand sets the random source used to break ties between exactly
// coincident nodes. Inject a seeded source for reproducible layouts in
// tests. Defaults to the shared math/rand source.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}
