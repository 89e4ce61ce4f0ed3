package graph

import (
	"github.com/google/uuid"

	"github.com/workloom/sdk/node"
)

// Kind tags the semantic type of a link. Parent-child and dependency links
// share the layout engine's link force but differ in rendering weight, so
// they are kept as distinct edges even between the same pair of nodes.
type Kind string

const (
	// KindParentChild is a structural edge from a parent node to a child.
	KindParentChild Kind = "parent-child"

	// KindDependency is a referential edge from a dependency's node to the
	// node that consumes it, derived from a node-reference input.
	KindDependency Kind = "dependency"
)

// GraphNode wraps a Node with mutable simulation coordinates. X and Y are
// advanced by the layout engine; FX and FY, when set, pin an axis so the
// engine leaves it alone (used while the user drags the node).
type GraphNode struct {
	Node node.Node

	X float64 `json:"x"`
	Y float64 `json:"y"`

	FX *float64 `json:"fx,omitempty"`
	FY *float64 `json:"fy,omitempty"`
}

// Pin fixes the node at (x, y) for subsequent simulation ticks.
func (g *GraphNode) Pin(x, y float64) {
	g.X, g.Y = x, y
	g.FX, g.FY = &x, &y
}

// Unpin releases a pinned node back to the simulation.
func (g *GraphNode) Unpin() {
	g.FX, g.FY = nil, nil
}

// Link is a typed edge between two projected nodes. The ID is derived
// deterministically from (Kind, Source, Target), so re-projecting the same
// relationship always yields the same id. Label is only populated on
// dependency links that carried one.
type Link struct {
	ID     string    `json:"id"`
	Source uuid.UUID `json:"source"`
	Target uuid.UUID `json:"target"`
	Kind   Kind      `json:"kind"`
	Label  string    `json:"label,omitempty"`
}

// Projection is the simulation-ready view of one node snapshot.
type Projection struct {
	Nodes []*GraphNode
	Links []Link
}

// Node returns the projected node with the given id, if present.
func (p *Projection) Node(id uuid.UUID) (*GraphNode, bool) {
	for _, gn := range p.Nodes {
		if gn.Node.ID == id {
			return gn, true
		}
	}
	return nil, false
}

// PositionRecord is the {id, x, y} triple harvested from a settled layout
// for the external persistence collaborator to write back as the node's
// Position. The graph and layout packages never perform that write.
type PositionRecord struct {
	ID uuid.UUID `json:"id"`
	X  float64   `json:"x"`
	Y  float64   `json:"y"`
}

// Positions snapshots the current coordinates of every projected node.
func (p *Projection) Positions() []PositionRecord {
	out := make([]PositionRecord, 0, len(p.Nodes))
	for _, gn := range p.Nodes {
		out = append(out, PositionRecord{ID: gn.Node.ID, X: gn.X, Y: gn.Y})
	}
	return out
}
