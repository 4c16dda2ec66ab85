package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/text"
)

func TestCanvas_Render(t *testing.T) {
	c := New()
	a, b := grid.NewBox("a"), grid.NewBox("b")
	row := grid.NewHorizontal(grid.Expanding(a, 1), grid.Expanding(b, 1))
	root := grid.New(grid.Vertical, []*grid.Item{
		grid.Fixed(text.NewLabel("Title"), 1),
		grid.Expanding(row, 1),
	}, grid.WithBackend(c))

	buf := c.Render(root, 20, 6)

	want := "Title\n" +
		"┌───a────┐┌───b────┐\n" +
		"│        ││        │\n" +
		"│        ││        │\n" +
		"│        ││        │\n" +
		"└────────┘└────────┘"
	assert.Equal(t, want, buf.StringTrimmed())
}

func TestCanvas_Frame(t *testing.T) {
	c := New()
	leaf := grid.NewBox("leaf")
	inner := grid.NewHorizontal(
		grid.Fixed(grid.NewBox("pad"), 4),
		grid.Fixed(leaf, 6, grid.WithVertical(grid.Center(2))),
	)
	root := grid.New(grid.Vertical, []*grid.Item{
		grid.Fixed(grid.NewBox("header"), 3),
		grid.Fixed(inner, 10, grid.WithMargin(grid.EdgeTRBL(1, 0, 0, 2))),
	}, grid.WithBackend(c))

	root.RequestLayout(grid.NewSize(30, 20))

	rel, ok := c.Geometry(leaf)
	require.True(t, ok)
	assert.Equal(t, grid.NewRect(4, 3.5, 6, 2), rel.Rect())

	abs, ok := c.Frame(leaf)
	require.True(t, ok)
	assert.Equal(t, grid.NewRect(6, 7.5, 6, 2), abs)

	owner, ok := c.Attached(leaf)
	require.True(t, ok)
	assert.Same(t, inner, owner)
}

func TestCanvas_TracksMutations(t *testing.T) {
	c := New()
	a, b := grid.NewBox("a"), grid.NewBox("b")
	root := grid.New(grid.Vertical, []*grid.Item{grid.Fixed(a, 5), grid.Fixed(b, 5)}, grid.WithBackend(c))
	root.RequestLayout(grid.NewSize(10, 10))
	require.Equal(t, 2, c.Len())

	root.Remove(a)
	_, ok := c.Attached(a)
	assert.False(t, ok, "removed content should be detached")
	_, ok = c.Geometry(b)
	assert.True(t, ok, "sibling geometry stays until the next pass")

	root.Invalidate()
	root.RequestLayout(grid.NewSize(10, 10))
	geo, ok := c.Geometry(b)
	require.True(t, ok)
	assert.Equal(t, float64(0), geo.OffsetPrimary)
}

func TestCanvas_SwapAcrossGrids(t *testing.T) {
	c := New()
	x, y := grid.NewBox("x"), grid.NewBox("y")
	left := grid.NewVertical(grid.Fixed(x, 2))
	right := grid.NewVertical(grid.Fixed(grid.NewBox("r0"), 2), grid.Fixed(y, 2))
	root := grid.New(grid.Horizontal, []*grid.Item{grid.Expanding(left, 1), grid.Expanding(right, 1)}, grid.WithBackend(c))
	root.RequestLayout(grid.NewSize(10, 4))

	root.Swap(x, y)
	root.RequestLayout(grid.NewSize(10, 4))

	owner, ok := c.Attached(x)
	require.True(t, ok)
	assert.Same(t, right, owner)

	frame, ok := c.Frame(x)
	require.True(t, ok)
	assert.Equal(t, grid.NewRect(5, 2, 5, 2), frame)
}

func TestCanvas_Frames(t *testing.T) {
	c := New()
	root := grid.New(grid.Horizontal, []*grid.Item{
		grid.Fixed(grid.NewBox("left"), 3),
		grid.Expanding(grid.NewBox("right"), 1),
	}, grid.WithBackend(c))
	root.RequestLayout(grid.NewSize(10, 2))

	frames := c.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, NamedFrame{Name: "left", Frame: grid.NewRect(0, 0, 3, 2)}, frames[0])
	assert.Equal(t, NamedFrame{Name: "right", Frame: grid.NewRect(3, 0, 7, 2)}, frames[1])
}

func TestCanvas_BorderStyle(t *testing.T) {
	c := New(WithBorder(BorderASCII))
	root := grid.New(grid.Vertical, []*grid.Item{grid.Expanding(grid.NewBox("x"), 1)}, grid.WithBackend(c))

	buf := c.Render(root, 5, 3)

	assert.Equal(t, "+-x-+\n|   |\n+---+", buf.String())
}
