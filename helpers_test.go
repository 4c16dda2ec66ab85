package grid

import (
	"fmt"
	"strings"
	"testing"
)

// countingContent reports a fixed natural size and counts measurements.
type countingContent struct {
	name  string
	w, h  float64
	calls int
}

func newCounting(name string, w, h float64) *countingContent {
	return &countingContent{name: name, w: w, h: h}
}

func (c *countingContent) SupportsIntrinsicSizing() bool { return true }

func (c *countingContent) MeasureIntrinsicSize(_, _ float64) (float64, float64) {
	c.calls++
	return c.w, c.h
}

func (c *countingContent) String() string { return c.name }

// recordingBackend logs backend calls as "op owner content".
type recordingBackend struct {
	calls    []string
	geometry map[Content]Geometry
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{geometry: make(map[Content]Geometry)}
}

func (b *recordingBackend) record(op string, owner *Grid, c Content) {
	b.calls = append(b.calls, fmt.Sprintf("%s %s %s", op, owner, describe(c)))
}

func (b *recordingBackend) Attach(owner *Grid, c Content) { b.record("attach", owner, c) }

func (b *recordingBackend) Detach(owner *Grid, c Content) {
	b.record("detach", owner, c)
	delete(b.geometry, c)
}

func (b *recordingBackend) ReleaseGeometry(owner *Grid, c Content) {
	b.record("release", owner, c)
	delete(b.geometry, c)
}

func (b *recordingBackend) ApplyGeometry(owner *Grid, c Content, g Geometry) {
	b.record("apply", owner, c)
	b.geometry[c] = g
}

func (b *recordingBackend) count(prefix string) int {
	n := 0
	for _, c := range b.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// expectPanic fails the test unless fn panics with a message containing want.
func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("expected panic containing %q did not occur", want)
			return
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, want) {
			t.Errorf("panic = %q, want it to contain %q", msg, want)
		}
	}()
	fn()
}

// primaryLengths returns each item's cell length along the grid's axis.
func primaryLengths(g *Grid) []float64 {
	out := make([]float64, len(g.items))
	for i, it := range g.items {
		out[i] = g.orientation.primary(it.geometry.Cell.Size())
	}
	return out
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
