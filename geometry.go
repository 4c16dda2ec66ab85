// geometry.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package grid

import "github.com/grindlemire/go-grid/internal/layout"

// Size represents a width/height pair.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return layout.NewSize(width, height)
}

// NewRect creates a Rect.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Orientation selects the primary axis items are stacked along.
type Orientation uint8

const (
	Vertical   Orientation = iota // Items stacked top-to-bottom
	Horizontal                    // Items stacked left-to-right
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// primary returns the component of s along the primary axis.
func (o Orientation) primary(s Size) float64 {
	if o == Horizontal {
		return s.Width
	}
	return s.Height
}

// orthogonal returns the component of s across the primary axis.
func (o Orientation) orthogonal(s Size) float64 {
	if o == Horizontal {
		return s.Height
	}
	return s.Width
}

// size builds a Size from axis components.
func (o Orientation) size(primary, orthogonal float64) Size {
	if o == Horizontal {
		return Size{Width: primary, Height: orthogonal}
	}
	return Size{Width: orthogonal, Height: primary}
}

// span is a pair of leading/trailing lengths along one axis.
type span struct {
	lead, trail float64
}

func (s span) sum() float64 { return s.lead + s.trail }

// split breaks four-sided edges into primary and orthogonal spans.
func (o Orientation) split(e Edges) (primary, orthogonal span) {
	vertical := span{lead: e.Top, trail: e.Bottom}
	horizontal := span{lead: e.Left, trail: e.Right}
	if o == Horizontal {
		return horizontal, vertical
	}
	return vertical, horizontal
}

// join is the inverse of split.
func (o Orientation) join(primary, orthogonal span) Edges {
	vertical, horizontal := primary, orthogonal
	if o == Horizontal {
		vertical, horizontal = orthogonal, primary
	}
	return Edges{Top: vertical.lead, Right: horizontal.trail, Bottom: vertical.trail, Left: horizontal.lead}
}

// Geometry is the placement of one item's content within its grid, in the
// grid's own coordinate space.
type Geometry struct {
	Orientation Orientation

	// OffsetPrimary and OffsetOrthogonal locate the content box's leading
	// corner along each axis.
	OffsetPrimary    float64
	OffsetOrthogonal float64

	// SizePrimary and SizeOrthogonal are the content box dimensions.
	SizePrimary    float64
	SizeOrthogonal float64

	// Cell is the full box allocated to the item, margins and slack included.
	Cell Rect
}

// Rect returns the content box as a rectangle.
func (g Geometry) Rect() Rect {
	if g.Orientation == Horizontal {
		return NewRect(g.OffsetPrimary, g.OffsetOrthogonal, g.SizePrimary, g.SizeOrthogonal)
	}
	return NewRect(g.OffsetOrthogonal, g.OffsetPrimary, g.SizeOrthogonal, g.SizePrimary)
}

// Size returns the content box dimensions.
func (g Geometry) Size() Size {
	return g.Orientation.size(g.SizePrimary, g.SizeOrthogonal)
}
