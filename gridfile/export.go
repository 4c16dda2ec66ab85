package gridfile

import (
	"fmt"
	"math"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/text"
)

// FromGrid describes a live grid tree as a document. Labels become text,
// other measurable content becomes a natural size, nested grids recurse.
func FromGrid(g *grid.Grid) *Document {
	d := &Document{
		Name:        g.Name(),
		Orientation: g.Orientation().String(),
		Items:       make([]Item, 0, g.Len()),
	}
	for _, it := range g.Items() {
		d.Items = append(d.Items, fromItem(it))
	}
	return d
}

func fromItem(it *grid.Item) Item {
	out := Item{
		Sizing:     it.Sizing().String(),
		Horizontal: alignmentString(it.Horizontal()),
		Vertical:   alignmentString(it.Vertical()),
		Margin:     marginList(it.Margin()),
		Collapse:   it.CanCollapse(),
	}
	if it.Sizing() != grid.SizingIntrinsic {
		out.Value = it.Value()
	}
	if it.Sizing() == grid.SizingIntrinsic {
		if n := it.MinLength(); n > 0 {
			out.Min = &n
		}
		if n := it.MaxLength(); !math.IsInf(n, 1) {
			out.Max = &n
		}
	}

	switch c := it.Content().(type) {
	case *grid.Grid:
		out.Name = c.Name()
		out.Grid = FromGrid(c)
		out.Grid.Name = ""
	case *text.Label:
		s := c.Text()
		out.Text = &s
		if name := c.String(); name != s {
			out.Name = name
		}
	case *grid.Box:
		out.Name = c.Name
		if c.SupportsIntrinsicSizing() {
			w, h := c.MeasureIntrinsicSize(0, 0)
			out.Size = []float64{w, h}
		}
	default:
		out.Name = fmt.Sprint(c)
	}
	return out
}

// marginList picks the shortest form ParseMargin reads back.
func marginList(e grid.Edges) []float64 {
	switch {
	case e.IsZero():
		return nil
	case e.Top == e.Right && e.Top == e.Bottom && e.Top == e.Left:
		return []float64{e.Top}
	case e.Top == e.Bottom && e.Left == e.Right:
		return []float64{e.Top, e.Left}
	}
	return []float64{e.Top, e.Right, e.Bottom, e.Left}
}
