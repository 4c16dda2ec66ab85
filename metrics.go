package grid

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// instruments records layout activity.
type instruments struct {
	passes   metric.Int64Counter
	skipped  metric.Int64Counter
	hits     metric.Int64Counter
	misses   metric.Int64Counter
	measures metric.Int64Counter
	items    metric.Int64Histogram
}

func newInstruments(meter metric.Meter) (*instruments, error) {
	passes, err := meter.Int64Counter(
		"grid.layout.passes",
		metric.WithDescription("Layout passes that recomputed geometry"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, err
	}

	skipped, err := meter.Int64Counter(
		"grid.layout.skipped",
		metric.WithDescription("Layout requests skipped because nothing changed"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, err
	}

	hits, err := meter.Int64Counter(
		"grid.fit.hits",
		metric.WithDescription("Fitting queries served from the size cache"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter(
		"grid.fit.misses",
		metric.WithDescription("Fitting queries that resolved the items"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, err
	}

	measures, err := meter.Int64Counter(
		"grid.measure.calls",
		metric.WithDescription("Intrinsic size queries sent to content"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	items, err := meter.Int64Histogram(
		"grid.layout.items",
		metric.WithDescription("Items resolved per layout pass"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, err
	}

	return &instruments{
		passes:   passes,
		skipped:  skipped,
		hits:     hits,
		misses:   misses,
		measures: measures,
		items:    items,
	}, nil
}

// noopInstruments never fails: the noop meter creates no-op instruments.
func noopInstruments() *instruments {
	ins, _ := newInstruments(noop.NewMeterProvider().Meter("grid"))
	return ins
}

// attrs returns the attributes attached to g's measurements.
func (ins *instruments) attrs(g *Grid) metric.MeasurementOption {
	kv := []attribute.KeyValue{attribute.String("grid.orientation", g.orientation.String())}
	if g.name != "" {
		kv = append(kv, attribute.String("grid.name", g.name))
	}
	return metric.WithAttributes(kv...)
}
