package layout

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/workloom/sdk/graph"
)

// Sentinel errors for simulation construction.
var (
	// ErrEmptyProjection is returned when a simulation is created over a
	// projection with no nodes.
	ErrEmptyProjection = errors.New("layout: projection has no nodes")

	// ErrUnknownLinkEndpoint is returned when a projection link references
	// a node id that is not present among the projected nodes.
	ErrUnknownLinkEndpoint = errors.New("layout: link endpoint not in projection")
)

// State is the lifecycle state of a Simulation.
type State int

const (
	// StateIdle means the simulation has been created but not started.
	StateIdle State = iota

	// StateRunning means ticks advance the layout.
	StateRunning

	// StateStopped means ticking has halted; coordinates are frozen at the
	// last completed tick and are eligible to be persisted.
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// particle is the simulation's owned copy of a projected node. The buffer
// is exclusively mutable by the simulation; renderers only ever see copies,
// so a restarted simulation never aliases a previous instance's state.
type particle struct {
	id     uuid.UUID
	x, y   float64
	vx, vy float64
	fx, fy *float64
}

// link is a projection link resolved to particle indices, with the
// degree-derived bias and strength the link force needs.
type link struct {
	source, target int
	strength       float64
	bias           float64
}

// Simulation is a force-directed layout over one graph projection. It is a
// cooperative, single-threaded state machine: an external per-frame clock
// calls Tick, and all mutation (drag, reheat, stop) is expected to be
// serialized through that same caller. No operation blocks or performs I/O.
//
// Create one Simulation per active canvas view.
type Simulation struct {
	cfg   *config
	state State
	alpha float64

	particles []*particle
	byID      map[uuid.UUID]int
	links     []link

	logger  *slog.Logger
	metrics *otelMetrics
	heated  time.Time
	ticks   int64
}

// New creates a Simulation from a projection. Initial coordinates and pins
// are copied from the projected nodes; the projection itself is not retained
// and never mutated.
func New(p *graph.Projection, opts ...Option) (*Simulation, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if len(p.Nodes) == 0 {
		return nil, ErrEmptyProjection
	}

	s := &Simulation{
		cfg:       cfg,
		state:     StateIdle,
		alpha:     1,
		particles: make([]*particle, 0, len(p.Nodes)),
		byID:      make(map[uuid.UUID]int, len(p.Nodes)),
		logger:    cfg.logger,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	for i, gn := range p.Nodes {
		pt := &particle{id: gn.Node.ID, x: gn.X, y: gn.Y}
		if gn.FX != nil {
			v := *gn.FX
			pt.fx = &v
		}
		if gn.FY != nil {
			v := *gn.FY
			pt.fy = &v
		}
		s.particles = append(s.particles, pt)
		s.byID[gn.Node.ID] = i
	}

	degree := make([]int, len(s.particles))
	for _, l := range p.Links {
		si, ok := s.byID[l.Source]
		if !ok {
			return nil, fmt.Errorf("%w: source %s", ErrUnknownLinkEndpoint, l.Source)
		}
		ti, ok := s.byID[l.Target]
		if !ok {
			return nil, fmt.Errorf("%w: target %s", ErrUnknownLinkEndpoint, l.Target)
		}
		degree[si]++
		degree[ti]++
		s.links = append(s.links, link{source: si, target: ti})
	}
	for i := range s.links {
		l := &s.links[i]
		sd, td := degree[l.source], degree[l.target]
		l.strength = 1 / float64(min(sd, td))
		l.bias = float64(sd) / float64(sd+td)
	}

	if cfg.meterProvider != nil {
		m, err := newOTelMetrics(cfg.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("layout: init metrics: %w", err)
		}
		s.metrics = m
	}

	return s, nil
}

// State returns the simulation's lifecycle state.
func (s *Simulation) State() State {
	return s.state
}

// Alpha returns the current energy term in [0, 1].
func (s *Simulation) Alpha() float64 {
	return s.alpha
}

// Start moves the simulation from idle (or stopped) to running at full
// energy. Starting a running simulation is a no-op.
func (s *Simulation) Start() {
	if s.state == StateRunning {
		return
	}
	s.alpha = 1
	s.state = StateRunning
	s.heated = time.Now()
	s.logger.Debug("layout simulation started", "nodes", len(s.particles), "links", len(s.links))
}

// Stop halts ticking. Coordinates freeze at their last completed tick; there
// is no partial-tick rollback. Positions then reports the values eligible
// for persistence.
func (s *Simulation) Stop() {
	if s.state != StateRunning {
		return
	}
	s.state = StateStopped
	s.logger.Debug("layout simulation stopped", "alpha", s.alpha, "ticks", s.ticks)
}

// Reheat raises the energy term to at least alpha and resumes ticking from
// the current positions, so the layout relaxes around a structural edit or a
// finished drag instead of reshuffling globally. An alpha of zero or less
// uses DefaultReheatAlpha.
func (s *Simulation) Reheat(alpha float64) {
	if alpha <= 0 {
		alpha = DefaultReheatAlpha
	}
	if alpha > s.alpha {
		s.alpha = alpha
	}
	if s.state != StateRunning {
		s.state = StateRunning
		s.heated = time.Now()
	}
	s.metrics.addReheat()
	s.logger.Debug("layout simulation reheated", "alpha", s.alpha)
}

// Tick advances the simulation by one discrete step, integrating all forces
// and updating the owned coordinate buffer. It reports whether the
// simulation is still running: once the energy term decays below the
// settle threshold the simulation stops itself and Tick returns false.
// Ticking an idle or stopped simulation is a no-op.
func (s *Simulation) Tick() bool {
	if s.state != StateRunning {
		return false
	}

	s.alpha += (0 - s.alpha) * s.cfg.alphaDecay
	if s.alpha < s.cfg.alphaMin {
		s.state = StateStopped
		settle := time.Since(s.heated)
		s.metrics.recordSettle(settle)
		s.logger.Debug("layout simulation settled", "ticks", s.ticks, "duration", settle)
		return false
	}

	s.applyLinkForce()
	s.applyChargeForce()
	s.applyCenterForce()
	s.applyCollisionForce()
	s.integrate()

	s.ticks++
	s.metrics.addTick()
	return true
}

// integrate applies velocity decay and advances positions. A pinned axis is
// clamped to its pin and its velocity zeroed, so pinned nodes never move
// regardless of force magnitudes.
func (s *Simulation) integrate() {
	damping := 1 - s.cfg.velocityDecay
	for _, pt := range s.particles {
		if pt.fx != nil {
			pt.x = *pt.fx
			pt.vx = 0
		} else {
			pt.vx *= damping
			pt.x += pt.vx
		}
		if pt.fy != nil {
			pt.y = *pt.fy
			pt.vy = 0
		} else {
			pt.vy *= damping
			pt.y += pt.vy
		}
	}
}

// Pin fixes the identified node at (x, y) for subsequent ticks, excluding it
// from position updates while all other nodes continue relaxing around it.
// Used while the user is actively dragging. Reports whether the id is known.
func (s *Simulation) Pin(id uuid.UUID, x, y float64) bool {
	i, ok := s.byID[id]
	if !ok {
		return false
	}
	pt := s.particles[i]
	pt.x, pt.y = x, y
	pt.fx, pt.fy = &x, &y
	return true
}

// Unpin releases the identified node back to the simulation. Reports whether
// the id is known.
func (s *Simulation) Unpin(id uuid.UUID) bool {
	i, ok := s.byID[id]
	if !ok {
		return false
	}
	pt := s.particles[i]
	pt.fx, pt.fy = nil, nil
	return true
}

// Position returns the current coordinates of the identified node.
func (s *Simulation) Position(id uuid.UUID) (x, y float64, ok bool) {
	i, found := s.byID[id]
	if !found {
		return 0, 0, false
	}
	return s.particles[i].x, s.particles[i].y, true
}

// Positions copies the current coordinates of every node out of the owned
// buffer, in projection order. The result is safe to hand to renderers or
// the persistence collaborator while the simulation keeps ticking.
func (s *Simulation) Positions() []graph.PositionRecord {
	out := make([]graph.PositionRecord, 0, len(s.particles))
	for _, pt := range s.particles {
		out = append(out, graph.PositionRecord{ID: pt.id, X: pt.x, Y: pt.y})
	}
	return out
}

// jiggle returns a tiny random offset used to separate exactly coincident
// nodes so force directions stay defined.
func (s *Simulation) jiggle() float64 {
	random := rand.Float64
	if s.cfg.rng != nil {
		random = s.cfg.rng.Float64
	}
	return (random() - 0.5) * 1e-6
}
