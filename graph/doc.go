// Package graph projects a node snapshot into the typed node/edge records
// consumed by the force layout engine and the canvas renderer.
//
// Project classifies every relationship in the snapshot into a tagged Link:
// parent-child edges from the hierarchy and dependency edges from
// node-reference inputs. Both kinds may coexist between the same pair of
// nodes; they stay separate edges with separate ids. A reference whose
// target is missing from the snapshot is silently omitted from the link set
// (contrast with the tree index, which degrades a missing parent to root
// membership).
//
// GraphNode carries the mutable simulation coordinates; initial coordinates
// come from a node's persisted Position when present, otherwise from a
// bounded uniform jitter around the canvas center. Link identity is
// content-addressed from (kind, source, target), so re-projecting an
// unchanged snapshot is idempotent with respect to link ids.
//
//	idx := tree.Build(nodes)
//	p := graph.Project(idx, graph.WithCenter(width/2, height/2))
//	sim, err := layout.New(p, layout.WithCenter(width/2, height/2))
package graph
