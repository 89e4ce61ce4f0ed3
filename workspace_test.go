package sdk_test

import (
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	sdk "github.com/workloom/sdk"
	"github.com/workloom/sdk/graph"
	"github.com/workloom/sdk/layout"
	"github.com/workloom/sdk/node"
	"github.com/workloom/sdk/tree"
)

func quietWorkspace(opts ...sdk.WorkspaceOption) *sdk.Workspace {
	opts = append([]sdk.WorkspaceOption{
		sdk.WithLogger(slog.New(slog.DiscardHandler)),
	}, opts...)
	return sdk.NewWorkspace(opts...)
}

// TestWorkspace_GridFlow exercises the grid path end to end: replace a
// snapshot, descend through a folder, and read the breadcrumb trail back.
func TestWorkspace_GridFlow(t *testing.T) {
	ws := quietWorkspace()

	folder := *node.New("Research")
	a := *node.New("Sources").WithParent(folder.ID)
	b := *node.New("Draft").WithParent(folder.ID)
	ws.Replace(context.Background(), []node.Node{folder, a, b})

	nav := ws.Navigator()
	require.Len(t, nav.CurrentChildren(), 1, "only the folder sits at the top level")

	nav.Navigate(folder.ID)
	children := nav.CurrentChildren()
	require.Len(t, children, 2)
	assert.Equal(t, "Sources", children[0].Title)
	assert.Equal(t, "Draft", children[1].Title)
	assert.False(t, nav.IsLeafView())

	nav.Navigate(a.ID)
	assert.True(t, nav.IsLeafView())
	crumbs := nav.Breadcrumbs()
	require.Len(t, crumbs, 2)
	assert.Equal(t, "Research", crumbs[0].Title)
	assert.Equal(t, "Sources", crumbs[1].Title)
}

// TestWorkspace_ReplacePreservesCursor verifies the navigator survives a
// snapshot refresh with its cursor intact.
func TestWorkspace_ReplacePreservesCursor(t *testing.T) {
	ws := quietWorkspace()

	folder := *node.New("Inbox")
	item := *node.New("Task").WithParent(folder.ID)
	ws.Replace(context.Background(), []node.Node{folder, item})
	ws.Navigator().Navigate(folder.ID)

	extra := *node.New("Note").WithParent(folder.ID)
	ws.Replace(context.Background(), []node.Node{folder, item, extra})

	assert.Equal(t, folder.ID, ws.Navigator().Current())
	assert.Len(t, ws.Navigator().CurrentChildren(), 2)
}

// TestWorkspace_CanvasFlow exercises the canvas path: project the snapshot
// centered on the canvas, run the simulation to a settle, read positions.
func TestWorkspace_CanvasFlow(t *testing.T) {
	ws := quietWorkspace(sdk.WithCanvasSize(1280, 800))

	root := *node.New("App")
	api := *node.New("API").WithParent(root.ID)
	ui := *node.New("UI").WithParent(root.ID).WithNodeReference(api.ID, "calls")
	ws.Replace(context.Background(), []node.Node{root, api, ui})

	p := ws.Project(context.Background())
	require.Len(t, p.Nodes, 3)
	require.Len(t, p.Links, 3)

	for _, gn := range p.Nodes {
		d := math.Hypot(gn.X-640, gn.Y-400)
		assert.LessOrEqual(t, d, graph.DefaultJitterRadius+1e-9)
	}

	sim, err := ws.NewSimulation(p)
	require.NoError(t, err)
	sim.Start()
	for sim.Tick() {
	}

	require.Equal(t, layout.StateStopped, sim.State())
	positions := sim.Positions()
	require.Len(t, positions, 3)
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			d := math.Hypot(positions[j].X-positions[i].X, positions[j].Y-positions[i].Y)
			assert.GreaterOrEqual(t, d, layout.DefaultCollisionRadius*0.9)
		}
	}
}

// TestWorkspace_EmptySnapshot verifies a fresh workspace projects to an
// empty graph and the simulation constructor rejects it.
func TestWorkspace_EmptySnapshot(t *testing.T) {
	ws := quietWorkspace()

	p := ws.Project(context.Background())
	assert.Empty(t, p.Nodes)
	assert.Empty(t, p.Links)

	_, err := ws.NewSimulation(p)
	require.ErrorIs(t, err, layout.ErrEmptyProjection)
}

// TestWorkspace_Tracing verifies the facade emits spans for snapshot
// replacement and projection through an injected tracer.
func TestWorkspace_Tracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	ws := quietWorkspace(sdk.WithTracer(tp.Tracer("test")))

	ws.Replace(context.Background(), []node.Node{*node.New("only")})
	ws.Project(context.Background())

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "workspace.replace", spans[0].Name())
	assert.Equal(t, "workspace.project", spans[1].Name())
}

// TestWorkspace_MeterProvider verifies a configured meter provider flows
// through to the simulations the workspace creates, and an instrumented
// simulation runs to a settle.
func TestWorkspace_MeterProvider(t *testing.T) {
	ws := quietWorkspace(
		sdk.WithCanvasSize(800, 600),
		sdk.WithMeterProvider(metricnoop.NewMeterProvider()),
	)

	parent := *node.New("Parent")
	c := *node.New("Child").WithParent(parent.ID)
	ws.Replace(context.Background(), []node.Node{parent, c})

	sim, err := ws.NewSimulation(ws.Project(context.Background()))
	require.NoError(t, err)

	sim.Start()
	for sim.Tick() {
	}
	sim.Reheat(0)
	for sim.Tick() {
	}
	assert.Equal(t, layout.StateStopped, sim.State())
}

// TestWorkspace_IndexAccess verifies the facade exposes the derived index
// for read-side collaborators.
func TestWorkspace_IndexAccess(t *testing.T) {
	ws := quietWorkspace()
	n := *node.New("solo")
	ws.Replace(context.Background(), []node.Node{n})

	idx := ws.Index()
	require.Equal(t, 1, idx.Len())
	got, ok := idx.Node(n.ID)
	require.True(t, ok)
	assert.Equal(t, "solo", got.Title)
	assert.Equal(t, []node.Node{n}, idx.Children(tree.Root))
}
