package graph

import (
	"math"
	"math/rand"

	"github.com/workloom/sdk/node"
	"github.com/workloom/sdk/tree"
)

// DefaultJitterRadius bounds the uniform jitter applied to nodes without a
// persisted position, so that freshly created nodes do not start the layout
// perfectly stacked on the canvas center.
const DefaultJitterRadius = 100.0

// Option configures a projection.
type Option func(*config)

type config struct {
	centerX, centerY float64
	jitterRadius     float64
	rng              *rand.Rand
}

// WithCenter sets the canvas center used for initial placement of nodes
// without a persisted position. Defaults to the origin.
func WithCenter(x, y float64) Option {
	return func(c *config) {
		c.centerX, c.centerY = x, y
	}
}

// WithJitterRadius bounds the initial-placement jitter around the canvas
// center. Defaults to DefaultJitterRadius.
func WithJitterRadius(r float64) Option {
	return func(c *config) {
		c.jitterRadius = r
	}
}

// WithRand sets the random source used for initial-placement jitter.
// Inject a seeded source for reproducible projections in tests. Defaults to
// the shared math/rand source.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// Project materializes the simulation-ready view of the snapshot held by
// idx: one GraphNode per node, a parent-child link per resolvable parent
// reference, and a dependency link per node-reference input whose source
// resolves within the snapshot.
//
// Unresolvable references are dropped from the link set without error; the
// node itself always survives. Projection is deterministic apart from the
// initial jitter of unpositioned nodes, and link ids are stable across
// re-projections (see LinkID).
func Project(idx *tree.Index, opts ...Option) *Projection {
	cfg := &config{jitterRadius: DefaultJitterRadius}
	for _, opt := range opts {
		opt(cfg)
	}

	nodes := idx.Nodes()
	p := &Projection{
		Nodes: make([]*GraphNode, 0, len(nodes)),
		Links: make([]Link, 0, len(nodes)),
	}

	for _, n := range nodes {
		gn := &GraphNode{Node: n}
		if n.Position != nil {
			gn.X, gn.Y = n.Position.X, n.Position.Y
		} else {
			gn.X, gn.Y = cfg.jitter()
		}
		p.Nodes = append(p.Nodes, gn)
	}

	for _, n := range nodes {
		if n.ParentID != nil {
			if _, ok := idx.Node(*n.ParentID); ok {
				p.Links = append(p.Links, Link{
					ID:     LinkID(KindParentChild, *n.ParentID, n.ID),
					Source: *n.ParentID,
					Target: n.ID,
					Kind:   KindParentChild,
				})
			}
		}
		for _, in := range n.Inputs {
			if in.Type != node.InputTypeNodeReference || in.SourceNodeID == nil {
				continue
			}
			if _, ok := idx.Node(*in.SourceNodeID); !ok {
				continue
			}
			p.Links = append(p.Links, Link{
				ID:     LinkID(KindDependency, *in.SourceNodeID, n.ID),
				Source: *in.SourceNodeID,
				Target: n.ID,
				Kind:   KindDependency,
				Label:  in.Label,
			})
		}
	}

	return p
}

// jitter picks a uniform point within jitterRadius of the canvas center.
func (c *config) jitter() (float64, float64) {
	random := rand.Float64
	if c.rng != nil {
		random = c.rng.Float64
	}
	// Uniform over the disk: sqrt keeps density flat instead of
	// clustering toward the center.
	r := c.jitterRadius * math.Sqrt(random())
	theta := 2 * math.Pi * random()
	return c.centerX + r*math.Cos(theta), c.centerY + r*math.Sin(theta)
}
