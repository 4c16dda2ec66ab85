package grid

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/internal/sizecache"
)

// Grid lays out an ordered list of items along one axis.
//
// A Grid starts out needing layout. RequestLayout computes and applies
// geometry, and is a no-op while the bounds are unchanged and nothing was
// invalidated. RequestFit measures without touching applied geometry and is
// memoized per query size until the next invalidation.
//
// The engine cannot observe content changing on its own: callers must call
// Invalidate after changing anything that affects a content's intrinsic size.
type Grid struct {
	name        string
	orientation Orientation
	items       []*Item
	parent      *Grid

	backend    Backend
	ownBackend bool
	logger     *slog.Logger
	ownLogger  bool
	metrics    *instruments
	ownMeter   bool

	cache       *sizecache.Cache
	needsLayout bool
	laidOut     bool
	lastBounds  Size
	contentSize Size
}

// New creates a grid stacking items along orientation's axis.
func New(orientation Orientation, items []*Item, opts ...Option) *Grid {
	g := &Grid{
		orientation: orientation,
		backend:     NopBackend{},
		metrics:     noopInstruments(),
		cache:       sizecache.New(sizecache.DefaultCapacity),
		needsLayout: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if len(items) > 0 {
		g.Append(items...)
	}
	return g
}

// NewVertical creates a grid stacking items top-to-bottom.
func NewVertical(items ...*Item) *Grid {
	return New(Vertical, items)
}

// NewHorizontal creates a grid stacking items left-to-right.
func NewHorizontal(items ...*Item) *Grid {
	return New(Horizontal, items)
}

// Name returns the name set by WithName.
func (g *Grid) Name() string { return g.name }

// Orientation returns the primary axis.
func (g *Grid) Orientation() Orientation { return g.orientation }

// SetOrientation changes the primary axis. Changing it invalidates the grid
// and every grid nested in it.
func (g *Grid) SetOrientation(o Orientation) {
	if o == g.orientation {
		return
	}
	g.orientation = o
	g.Invalidate()
}

// Items returns the items in arrangement order. The slice must not be modified.
func (g *Grid) Items() []*Item { return g.items }

// Len returns the number of items.
func (g *Grid) Len() int { return len(g.items) }

// Parent returns the grid this grid is nested in, or nil.
func (g *Grid) Parent() *Grid { return g.parent }

// Backend returns the rendering backend.
func (g *Grid) Backend() Backend { return g.backend }

// NeedsLayout reports whether the next RequestLayout will recompute.
func (g *Grid) NeedsLayout() bool { return g.needsLayout }

// ContentSize returns the aggregate size computed by the last layout pass.
func (g *Grid) ContentSize() Size { return g.contentSize }

// IntrinsicSize returns the grid's natural size with no constraints.
func (g *Grid) IntrinsicSize() Size {
	return g.RequestFit(Size{})
}

// Invalidate forces the next layout pass to recompute and drops memoized
// fitting sizes, here and in every nested grid. Ancestors are invalidated
// too since their measurements include this grid.
func (g *Grid) Invalidate() {
	g.invalidateDown()
	for p := g.parent; p != nil; p = p.parent {
		p.invalidateSelf()
	}
}

func (g *Grid) invalidateDown() {
	g.invalidateSelf()
	for _, it := range g.items {
		if n, ok := nestedGrid(it.content); ok {
			n.invalidateDown()
		}
	}
}

func (g *Grid) invalidateSelf() {
	g.needsLayout = true
	g.cache.Clear()
}

// RequestLayout resolves every item against bounds, applies the geometry
// through the backend and then lays out nested grids inside their content
// boxes. It does nothing when bounds match the previous pass and the grid has
// not been invalidated since.
func (g *Grid) RequestLayout(bounds Size) {
	ctx := context.Background()
	if g.laidOut && !g.needsLayout && bounds == g.lastBounds {
		g.metrics.skipped.Add(ctx, 1, g.metrics.attrs(g))
		return
	}
	g.metrics.passes.Add(ctx, 1, g.metrics.attrs(g))
	g.metrics.items.Record(ctx, int64(len(g.items)), g.metrics.attrs(g))

	for _, it := range g.items {
		g.backend.ReleaseGeometry(g, it.content)
	}

	p := g.newPass(bounds)
	p.resolve()
	geometry := p.place()

	for i, it := range g.items {
		r := p.resolved[i]
		it.spacing = g.orientation.join(r.spacingP, r.spacingO)
		it.geometry = geometry[i]
		g.backend.ApplyGeometry(g, it.content, it.geometry)
	}

	g.contentSize = p.aggregate()
	g.lastBounds = bounds
	g.needsLayout = false
	g.laidOut = true

	for _, it := range g.items {
		if n, ok := nestedGrid(it.content); ok {
			n.RequestLayout(it.geometry.Size())
		}
	}
}

// RequestFit returns the size the grid would occupy given query, without
// applying any geometry. Results are memoized per query until invalidation.
func (g *Grid) RequestFit(query Size) Size {
	ctx := context.Background()
	if s, ok := g.cache.Get(query); ok {
		g.metrics.hits.Add(ctx, 1, g.metrics.attrs(g))
		return s
	}
	g.metrics.misses.Add(ctx, 1, g.metrics.attrs(g))

	p := g.newPass(query)
	p.resolve()
	s := p.aggregate()
	g.cache.Put(query, s)
	return s
}

// measure asks content for its natural size under avail.
func (g *Grid) measure(c Content, avail Size) Size {
	g.metrics.measures.Add(context.Background(), 1, g.metrics.attrs(g))
	w, h := c.MeasureIntrinsicSize(avail.Width, avail.Height)
	return Size{Width: w, Height: h}
}

// log returns the grid's logger, falling back to the process debug logger so
// that debug.Init and debug.Close reach grids created before them.
func (g *Grid) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return debug.Logger()
}

// SupportsIntrinsicSizing implements Content. A grid always measures.
func (g *Grid) SupportsIntrinsicSizing() bool { return true }

// MeasureIntrinsicSize implements Content by running a fitting query.
func (g *Grid) MeasureIntrinsicSize(availableWidth, availableHeight float64) (float64, float64) {
	s := g.RequestFit(Size{Width: availableWidth, Height: availableHeight})
	return s.Width, s.Height
}

// NestedGrid implements Nested.
func (g *Grid) NestedGrid() *Grid { return g }

// String describes the grid for debugging.
func (g *Grid) String() string {
	if g.name != "" {
		return g.name
	}
	return fmt.Sprintf("%s grid(%d items)", g.orientation, len(g.items))
}
