package grid

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func counterTotal(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()
	m := findMetric(rm, name)
	if m == nil {
		return 0
	}
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("%s: expected Sum[int64], got %T", name, m.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestMetrics_LayoutAndFit(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	c := newCounting("c", 10, 10)
	g := New(Vertical, []*Item{Intrinsic(c), Fixed(NewBox("f"), 5)},
		WithMeter(mp.Meter("test")), WithName("main"))

	g.RequestLayout(NewSize(20, 40))
	g.RequestLayout(NewSize(20, 40))
	g.RequestFit(Size{})
	g.RequestFit(Size{})

	rm := collect(t, reader)

	type tc struct {
		name string
		want int64
	}
	tests := map[string]tc{
		"passes":   {name: "grid.layout.passes", want: 1},
		"skipped":  {name: "grid.layout.skipped", want: 1},
		"hits":     {name: "grid.fit.hits", want: 1},
		"misses":   {name: "grid.fit.misses", want: 1},
		"measures": {name: "grid.measure.calls", want: int64(c.calls)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := counterTotal(t, rm, tt.name); got != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, got, tt.want)
			}
		})
	}

	hist := findMetric(rm, "grid.layout.items")
	if hist == nil {
		t.Fatal("grid.layout.items metric not found")
	}
	h, ok := hist.Data.(metricdata.Histogram[int64])
	if !ok {
		t.Fatalf("expected Histogram[int64], got %T", hist.Data)
	}
	if len(h.DataPoints) != 1 || h.DataPoints[0].Sum != 2 {
		t.Errorf("grid.layout.items data points = %+v, want one with sum 2", h.DataPoints)
	}
}

func TestMetrics_NestedGridInheritsMeter(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	inner := NewHorizontal(Expanding(NewBox("x"), 1))
	root := New(Vertical, []*Item{Expanding(inner, 1)}, WithMeter(mp.Meter("test")))

	root.RequestLayout(NewSize(10, 10))

	rm := collect(t, reader)
	if got := counterTotal(t, rm, "grid.layout.passes"); got != 2 {
		t.Errorf("grid.layout.passes = %d, want 2 (root and nested)", got)
	}
}

func TestMetrics_DefaultIsNoop(t *testing.T) {
	g := NewVertical(Fixed(NewBox("a"), 1))
	g.RequestLayout(NewSize(1, 1))
	if g.metrics == nil {
		t.Fatal("grid should always carry instruments")
	}
}
