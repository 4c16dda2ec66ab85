package layout

import "math"

// Rect represents a rectangle. X and Y are the top-left corner; Width and
// Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Round snaps the rectangle to whole units. Edges are rounded rather than the
// width and height so that adjacent rectangles stay adjacent.
func (r Rect) Round() Rect {
	x := math.Round(r.X)
	y := math.Round(r.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Round(r.Right()) - x,
		Height: math.Round(r.Bottom()) - y,
	}
}
