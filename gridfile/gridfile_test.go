package gridfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/text"
)

const dashboard = `
name: dashboard
orientation: vertical
items:
  - name: title
    sizing: intrinsic
    horizontal: center
    text: Report
  - name: body
    sizing: expanding
    value: 1
    margin: [1, 2]
    grid:
      orientation: horizontal
      items:
        - {name: chart, sizing: expanding, value: 3}
        - {name: legend, sizing: fixed, value: 6, vertical: "leading:4"}
  - name: footer
    sizing: fixed
    value: 2
    size: [8, 1]
`

func TestBuild_Dashboard(t *testing.T) {
	doc, err := Parse([]byte(dashboard))
	require.NoError(t, err)

	layout, err := Build(doc)
	require.NoError(t, err)

	root := layout.Root
	assert.Equal(t, "dashboard", root.Name())
	assert.Equal(t, grid.Vertical, root.Orientation())
	require.Equal(t, 3, root.Len())

	title, ok := layout.Lookup("title")
	require.True(t, ok)
	assert.IsType(t, &text.Label{}, title)

	body, ok := layout.Lookup("body")
	require.True(t, ok)
	nested, ok := body.(*grid.Grid)
	require.True(t, ok)
	assert.Equal(t, grid.Horizontal, nested.Orientation())
	assert.Same(t, root, nested.Parent())

	root.RequestLayout(grid.NewSize(40, 20))

	titleGeo := root.Items()[0].Geometry()
	assert.Equal(t, grid.NewRect(17, 0, 6, 1), titleGeo.Rect())

	bodyGeo := root.Items()[1].Geometry()
	assert.Equal(t, grid.NewRect(2, 2, 36, 15), bodyGeo.Rect())

	chart, _ := layout.Lookup("chart")
	owner, index, found := root.Find(chart)
	require.True(t, found)
	assert.Same(t, nested, owner)
	assert.Equal(t, 0, index)
	assert.Equal(t, grid.NewRect(0, 0, 30, 15), nested.Items()[0].Geometry().Rect())
	assert.Equal(t, grid.NewRect(30, 0, 6, 4), nested.Items()[1].Geometry().Rect())
}

func TestParseAlignment(t *testing.T) {
	type tc struct {
		in      string
		want    grid.Alignment
		wantErr bool
	}

	tests := map[string]tc{
		"empty":          {in: "", want: grid.Fill()},
		"fill":           {in: "fill", want: grid.Fill()},
		"center auto":    {in: "center", want: grid.CenterAuto()},
		"center fixed":   {in: "center:20", want: grid.Center(20)},
		"leading fixed":  {in: "Leading: 8", want: grid.Leading(8)},
		"trailing auto":  {in: "trailing", want: grid.TrailingAuto()},
		"trailing fixed": {in: "trailing:4.5", want: grid.Trailing(4.5)},
		"fill length":    {in: "fill:3", wantErr: true},
		"bad length":     {in: "center:wide", wantErr: true},
		"negative":       {in: "leading:-1", wantErr: true},
		"unknown":        {in: "middle", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAlignment(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDocument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMargin(t *testing.T) {
	type tc struct {
		in      []float64
		want    grid.Edges
		wantErr bool
	}

	tests := map[string]tc{
		"none":     {in: nil, want: grid.Edges{}},
		"all":      {in: []float64{3}, want: grid.EdgeAll(3)},
		"v h":      {in: []float64{1, 2}, want: grid.EdgeSymmetric(1, 2)},
		"trbl":     {in: []float64{1, 2, 3, 4}, want: grid.EdgeTRBL(1, 2, 3, 4)},
		"three":    {in: []float64{1, 2, 3}, wantErr: true},
		"negative": {in: []float64{-1}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseMargin(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDocument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_Invalid(t *testing.T) {
	tests := map[string]struct {
		doc  string
		want string
	}{
		"unknown key": {
			doc:  "orientation: vertical\nitems:\n  - {sizing: fixed, colour: red}\n",
			want: "colour",
		},
		"unknown orientation": {
			doc:  "orientation: diagonal\n",
			want: "orientation",
		},
		"unknown sizing": {
			doc:  "items:\n  - {sizing: stretchy}\n",
			want: "items[0].sizing",
		},
		"two contents": {
			doc:  "items:\n  - {sizing: fixed, text: hi, size: [1, 1]}\n",
			want: "exclusive",
		},
		"bad size": {
			doc:  "items:\n  - {sizing: fixed, size: [1]}\n",
			want: "items[0].size",
		},
		"min on fixed": {
			doc:  "items:\n  - {sizing: fixed, value: 3, min: 1}\n",
			want: "intrinsic items only",
		},
		"collapse on fixed": {
			doc:  "items:\n  - {sizing: fixed, collapse: true}\n",
			want: "expanding items only",
		},
		"negative value": {
			doc:  "items:\n  - {sizing: fixed, value: -3}\n",
			want: "negative value",
		},
		"duplicate names": {
			doc:  "items:\n  - {name: a, sizing: fixed}\n  - {name: a, sizing: fixed}\n",
			want: "duplicate name",
		},
		"nested error path": {
			doc:  "items:\n  - sizing: expanding\n    grid:\n      items:\n        - {sizing: fixed, horizontal: sideways}\n",
			want: "items[0].grid.items[0].horizontal",
		},
		"empty": {
			doc:  "",
			want: "empty document",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.doc))
			if err == nil {
				_, err = Build(doc)
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDocument)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuild_Defaults(t *testing.T) {
	doc, err := Parse([]byte("items:\n  - {name: a, sizing: expanding}\n  - {name: b, sizing: intrinsic, max: 5, size: [3, 9]}\n"))
	require.NoError(t, err)

	layout, err := Build(doc)
	require.NoError(t, err)

	items := layout.Root.Items()
	assert.Equal(t, grid.Vertical, layout.Root.Orientation())
	assert.Equal(t, 1.0, items[0].Value(), "expanding weight defaults to 1")
	assert.Equal(t, 5.0, items[1].MaxLength())

	layout.Root.RequestLayout(grid.NewSize(10, 20))
	assert.Equal(t, 5.0, items[1].Geometry().SizePrimary)
	assert.Equal(t, 15.0, items[0].Geometry().SizePrimary)
}

func TestBuild_Options(t *testing.T) {
	doc, err := Parse([]byte(dashboard))
	require.NoError(t, err)

	backend := &countingBackend{}
	layout, err := Build(doc, grid.WithBackend(backend))
	require.NoError(t, err)

	body, _ := layout.Lookup("body")
	assert.Same(t, backend, body.(*grid.Grid).Backend(), "nested grids inherit the backend")

	layout.Root.RequestLayout(grid.NewSize(40, 20))
	assert.Equal(t, 5, backend.applied)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dashboard), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dashboard", doc.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidDocument)
}

func TestFromGrid_RoundTrip(t *testing.T) {
	doc, err := Parse([]byte(dashboard))
	require.NoError(t, err)
	layout, err := Build(doc)
	require.NoError(t, err)

	out := FromGrid(layout.Root)
	data, err := Marshal(out)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, out, again)

	rebuilt, err := Build(again)
	require.NoError(t, err)

	layout.Root.RequestLayout(grid.NewSize(40, 20))
	rebuilt.Root.RequestLayout(grid.NewSize(40, 20))
	for name, c := range layout.Contents {
		other, ok := rebuilt.Lookup(name)
		require.True(t, ok, name)
		owner, i, _ := layout.Root.Find(c)
		otherOwner, j, _ := rebuilt.Root.Find(other)
		assert.Equal(t, owner.Items()[i].Geometry(), otherOwner.Items()[j].Geometry(), name)
	}
}

type countingBackend struct {
	grid.NopBackend
	applied int
}

func (b *countingBackend) ApplyGeometry(*grid.Grid, grid.Content, grid.Geometry) {
	b.applied++
}
