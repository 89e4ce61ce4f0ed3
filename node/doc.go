// Package node defines the Node data model shared by the tree, graph, and
// layout packages.
//
// A Node is a unit of hierarchical work content: it may reference a parent
// node (forming a tree) and may declare dependencies on other nodes through
// node-reference inputs (forming a graph). Nodes carry presentation metadata
// (title, status, author) that the structural layers treat as opaque.
//
// # Creating Nodes
//
// Nodes are usually supplied wholesale by an external data-fetching layer,
// but the fluent builder is convenient for tests and tooling:
//
//	analysis := node.New("Competitive analysis").
//	    WithStatus("in_progress").
//	    WithPosition(120, 340)
//
//	summary := node.New("Summary").
//	    WithParent(analysis.ID).
//	    WithNodeReference(analysis.ID, "analysis output")
//
//	if err := summary.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Snapshot Semantics
//
// The structural layers (tree.Index, graph.Project) are pure functions of an
// ordered []Node snapshot. They never mutate the nodes they are given, and
// they are rebuilt in full whenever the snapshot changes. Referential
// integrity is not required of a snapshot: unresolvable parent references
// degrade to root membership and unresolvable dependency references are
// dropped from the graph projection.
package node
