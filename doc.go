// Package sdk is the Workloom node graph SDK: the hierarchical node model
// behind a collaborative workspace, together with its two view projections.
//
// A workspace is a flat collection of parent-linked nodes. The SDK turns
// each snapshot of that collection into:
//
//   - a breadcrumb-navigable hierarchy for a tree/grid view
//     (packages tree and node), and
//   - a positioned, force-directed graph for a canvas view
//     (packages graph and layout), with cross-node dependency references
//     classified into typed edges alongside the parent-child structure.
//
// Persistence, transport, authentication, and rendering are external
// collaborators: the SDK consumes node snapshots, hands plain data to
// renderers, and exposes settled coordinates for the host to write back.
//
// # Quick Start
//
//	ws := sdk.NewWorkspace(
//	    sdk.WithLogger(logger),
//	    sdk.WithCanvasSize(1280, 800),
//	)
//	ws.Replace(ctx, nodes)
//
//	// Grid view
//	nav := ws.Navigator()
//	nav.Navigate(folderID)
//	children := nav.CurrentChildren()
//	crumbs := nav.Breadcrumbs()
//
//	// Canvas view
//	p := ws.Project(ctx)
//	sim, err := ws.NewSimulation(p)
//	if err != nil {
//	    return err
//	}
//	sim.Start()
//	for sim.Tick() {
//	    render(sim.Positions())
//	}
//	persist(sim.Positions()) // write back as node positions
//
// The packages compose without the facade too: tree.Build, graph.Project,
// and layout.New accept and return plain values, so hosts with their own
// state management can use each layer directly.
//
// Session-scoped UI state (current org/project, view mode, selection,
// camera) lives in package uistate with an explicit persistence allow-list.
package sdk
