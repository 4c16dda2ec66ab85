package grid

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/grindlemire/go-grid/internal/sizecache"
)

// Option configures a Grid.
type Option func(*Grid)

// WithName names the grid in log records and metrics.
func WithName(name string) Option {
	return func(g *Grid) {
		g.name = name
	}
}

// WithBackend sets the rendering backend. Grids without an explicit backend
// adopt their parent's when nested.
func WithBackend(b Backend) Option {
	return func(g *Grid) {
		if b == nil {
			b = NopBackend{}
		}
		g.backend = b
		g.ownBackend = true
	}
}

// WithLogger sets the logger used for degenerate-geometry warnings. Grids
// without an explicit logger adopt their parent's when nested.
func WithLogger(l *slog.Logger) Option {
	return func(g *Grid) {
		if l == nil {
			return
		}
		g.logger = l
		g.ownLogger = true
	}
}

// WithMeter records layout metrics with m. Grids without an explicit meter
// adopt their parent's when nested.
func WithMeter(m metric.Meter) Option {
	return func(g *Grid) {
		ins, err := newInstruments(m)
		if err != nil {
			g.log().Warn("grid: metrics disabled", "error", err)
			return
		}
		g.metrics = ins
		g.ownMeter = true
	}
}

// WithCacheCapacity sets how many fitting results are memoized. Default is 10.
func WithCacheCapacity(n int) Option {
	return func(g *Grid) {
		g.cache = sizecache.New(n)
	}
}
