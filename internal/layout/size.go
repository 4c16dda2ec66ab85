package layout

import "math"

// Size is a width/height pair. A zero or infinite component means the axis is
// unconstrained when a Size is used as a query.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Bounded reports whether length is a usable, positive constraint.
func Bounded(length float64) bool {
	return length > 0 && !math.IsInf(length, 1) && !math.IsNaN(length)
}
