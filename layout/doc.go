// Package layout runs a force-directed physical simulation over a graph
// projection, producing 2D coordinates for canvas rendering.
//
// Four forces shape the layout each tick: a link spring pulling connected
// nodes toward a target separation, many-body repulsion keeping all pairs
// apart, a centering bias holding the layout on the canvas, and a collision
// constraint enforcing a minimum separation between node centers. An energy
// term (alpha) decays every tick; when it crosses the settle threshold the
// simulation stops itself and the coordinates become eligible for
// persistence.
//
// # Lifecycle
//
// A Simulation is a cooperative state machine driven by an external
// per-frame clock, typically the rendering surface's refresh callback:
//
//	sim, err := layout.New(projection,
//	    layout.WithCenter(width/2, height/2),
//	    layout.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//	sim.Start()
//
//	// per animation frame:
//	if sim.Tick() {
//	    render(sim.Positions())
//	}
//
// After a structural edit (node added or removed, projection rebuilt) or a
// finished drag, Reheat restores a fraction of the energy so the layout
// relaxes locally instead of reshuffling:
//
//	sim.Reheat(0) // DefaultReheatAlpha
//
// # Dragging and Pinning
//
// While the user drags a node, pin it so the rest of the layout relaxes
// around the pointer:
//
//	sim.Pin(id, pointerX, pointerY) // on drag move
//	sim.Unpin(id)                   // on drag end
//	sim.Reheat(0)
//
// A pinned node never changes position across ticks, regardless of force
// magnitudes.
//
// # Concurrency
//
// The simulation owns its coordinate buffer exclusively and exposes only
// copy-out accessors, so renderers never alias live simulation state. All
// operations are expected to be serialized through a single caller (the UI
// event loop); the package performs no locking, blocking, or I/O.
package layout
