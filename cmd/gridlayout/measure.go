package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/canvas"
	"github.com/grindlemire/go-grid/gridfile"
	"github.com/grindlemire/go-grid/internal/debug"
)

func runMeasure(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("measure", flag.ExitOnError)
	var vp viewport
	vp.register(fs)
	stats := fs.Bool("stats", false, "print layout metrics")

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := documentArg(fs)
	if err != nil {
		return err
	}
	if err := vp.resolve(); err != nil {
		return err
	}
	defer debug.Close()

	doc, err := gridfile.Load(path)
	if err != nil {
		return err
	}

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	c := canvas.New()
	layout, err := gridfile.Build(doc,
		grid.WithBackend(c),
		grid.WithMeter(provider.Meter("gridlayout")),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	root := layout.Root
	intrinsic := root.IntrinsicSize()
	bounds := grid.NewSize(float64(vp.width), float64(vp.height))
	root.RequestLayout(bounds)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "intrinsic\t%g x %g\n", intrinsic.Width, intrinsic.Height)
	fmt.Fprintf(w, "bounds\t%g x %g\n", bounds.Width, bounds.Height)
	fmt.Fprintf(w, "content\t%g x %g\n", root.ContentSize().Width, root.ContentSize().Height)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "NAME\tX\tY\tWIDTH\tHEIGHT")
	for _, f := range c.Frames() {
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", f.Name, f.Frame.X, f.Frame.Y, f.Frame.Width, f.Frame.Height)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if *stats {
		return printStats(out, reader)
	}
	return nil
}

func printStats(out io.Writer, reader *sdkmetric.ManualReader) error {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		return fmt.Errorf("collecting metrics: %w", err)
	}

	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					totals[m.Name] += dp.Value
				}
			case metricdata.Histogram[int64]:
				for _, dp := range data.DataPoints {
					totals[m.Name] += int64(dp.Count)
				}
			}
		}
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "METRIC\tTOTAL")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%d\n", name, totals[name])
	}
	return w.Flush()
}
