package sdk

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/workloom/sdk/graph"
	"github.com/workloom/sdk/layout"
	"github.com/workloom/sdk/node"
	"github.com/workloom/sdk/tree"
)

// Workspace is the root facade over the node graph core. It owns the latest
// node snapshot, keeps the derived tree index and grid navigator current,
// and constructs graph projections and layout simulations wired with the
// canvas dimensions and the workspace's observability hooks.
//
// A Workspace expects its snapshot to be replaced wholesale by an external
// data-fetching collaborator on every change; rebuilding the derived state
// is idempotent and side-effect-free, so rapid updates can be coalesced to
// the latest snapshot. All calls are expected to come from a single UI
// event loop.
type Workspace struct {
	logger *slog.Logger
	tracer trace.Tracer

	width, height float64

	index *tree.Index
	nav   *tree.Navigator

	layoutOpts []layout.Option
}

// NewWorkspace creates a Workspace with an empty snapshot.
//
// Example:
//
//	ws := sdk.NewWorkspace(
//	    sdk.WithLogger(logger),
//	    sdk.WithCanvasSize(1280, 800),
//	)
//	ws.Replace(ctx, nodes)
func NewWorkspace(opts ...WorkspaceOption) *Workspace {
	cfg := &workspaceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if cfg.tracer == nil {
		cfg.tracer = noop.NewTracerProvider().Tracer("")
	}

	w := &Workspace{
		logger: cfg.logger,
		tracer: cfg.tracer,
		width:  cfg.width,
		height: cfg.height,
		index:  tree.Build(nil),
	}
	w.nav = tree.NewNavigator(w.index)
	if cfg.meterProvider != nil {
		w.layoutOpts = append(w.layoutOpts, layout.WithMeterProvider(cfg.meterProvider))
	}
	return w
}

// SetCanvasSize updates the rendering viewport dimensions used for
// centering and initial jitter. The new size only affects future
// projections and simulations; settled nodes are not moved retroactively.
func (w *Workspace) SetCanvasSize(width, height float64) {
	w.width, w.height = width, height
}

// Replace swaps in a new node snapshot, rebuilding the tree index and
// rebinding the grid navigator. The navigator's cursor is preserved: if the
// current folder vanished from the snapshot, the grid degrades to an empty
// view.
func (w *Workspace) Replace(ctx context.Context, nodes []node.Node) {
	_, span := w.tracer.Start(ctx, "workspace.replace",
		trace.WithAttributes(attribute.Int("workspace.nodes", len(nodes))))
	defer span.End()

	w.index = tree.Build(nodes)
	w.nav.Rebind(w.index)
	w.logger.Debug("workspace snapshot replaced", "nodes", w.index.Len())
}

// Index returns the tree index for the current snapshot.
func (w *Workspace) Index() *tree.Index {
	return w.index
}

// Navigator returns the grid navigator. The same navigator instance is kept
// across snapshot replacements so the cursor survives data refreshes.
func (w *Workspace) Navigator() *tree.Navigator {
	return w.nav
}

// Project materializes the force-layout projection of the current snapshot,
// centered on the workspace's canvas.
func (w *Workspace) Project(ctx context.Context, opts ...graph.Option) *graph.Projection {
	_, span := w.tracer.Start(ctx, "workspace.project")
	defer span.End()

	opts = append([]graph.Option{graph.WithCenter(w.width/2, w.height/2)}, opts...)
	p := graph.Project(w.index, opts...)
	span.SetAttributes(
		attribute.Int("projection.nodes", len(p.Nodes)),
		attribute.Int("projection.links", len(p.Links)),
	)
	return p
}

// NewSimulation creates a layout simulation over p, pre-wired with the
// canvas center, the workspace logger, and the workspace meter provider.
// Additional options override the pre-wired ones.
func (w *Workspace) NewSimulation(p *graph.Projection, opts ...layout.Option) (*layout.Simulation, error) {
	base := []layout.Option{
		layout.WithCenter(w.width/2, w.height/2),
		layout.WithLogger(w.logger),
	}
	base = append(base, w.layoutOpts...)
	return layout.New(p, append(base, opts...)...)
}
