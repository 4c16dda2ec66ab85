package grid

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/grindlemire/go-grid/internal/debug"
)

// Sizing selects how an item's primary-axis length is resolved.
type Sizing uint8

const (
	SizingFixed     Sizing = iota // Authored length
	SizingExpanding               // Weighted share of leftover space
	SizingIntrinsic               // Measured content length, clamped to [min, max]
)

// String returns the sizing name.
func (s Sizing) String() string {
	switch s {
	case SizingExpanding:
		return "expanding"
	case SizingIntrinsic:
		return "intrinsic"
	default:
		return "fixed"
	}
}

// Item is one arranged unit: a piece of content plus its sizing and alignment
// rules. Items are built by Fixed, Expanding and Intrinsic and belong to at
// most one grid at a time.
type Item struct {
	content Content
	sizer   sizer
	value   float64

	horizontal Alignment
	vertical   Alignment
	margin     Edges

	minLength   float64
	maxLength   float64
	canCollapse bool

	// Derived by the last layout pass of the owning grid.
	spacing  Edges
	geometry Geometry

	owner *Grid
}

// ItemOption configures an Item.
type ItemOption func(*Item)

// WithHorizontal sets the horizontal alignment. Default is Fill.
func WithHorizontal(a Alignment) ItemOption {
	return func(it *Item) {
		it.horizontal = a
	}
}

// WithVertical sets the vertical alignment. Default is Fill.
func WithVertical(a Alignment) ItemOption {
	return func(it *Item) {
		it.vertical = a
	}
}

// WithMargin sets the four-sided inset between the cell and its content.
func WithMargin(e Edges) ItemOption {
	return func(it *Item) {
		it.margin = e
	}
}

// WithMinLength sets the lower bound of an intrinsic item's content length.
// A minimum above the current maximum is lowered to the maximum.
func WithMinLength(n float64) ItemOption {
	return func(it *Item) {
		it.setMin(n)
	}
}

// WithMaxLength sets the upper bound of an intrinsic item's content length.
// A maximum below the current minimum is raised to the minimum.
func WithMaxLength(n float64) ItemOption {
	return func(it *Item) {
		it.setMax(n)
	}
}

// WithCollapse lets an expanding item shrink to nothing when it receives no
// share of the leftover space. By default such an item falls back to its
// content's natural length.
func WithCollapse(collapse bool) ItemOption {
	return func(it *Item) {
		it.canCollapse = collapse
	}
}

func newItem(c Content, s sizer, value float64, opts []ItemOption) *Item {
	if c == nil {
		panic("grid: item content must not be nil")
	}
	it := &Item{
		content:    c,
		sizer:      s,
		value:      value,
		horizontal: Fill(),
		vertical:   Fill(),
		maxLength:  math.Inf(1),
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Fixed creates an item whose cell is length long on the primary axis.
func Fixed(c Content, length float64, opts ...ItemOption) *Item {
	return newItem(c, fixedSizer{}, length, opts)
}

// Expanding creates an item that takes weight shares of the primary-axis
// space left over after fixed and intrinsic items.
func Expanding(c Content, weight float64, opts ...ItemOption) *Item {
	return newItem(c, expandingSizer{}, weight, opts)
}

// Intrinsic creates an item sized by its content's measured length.
func Intrinsic(c Content, opts ...ItemOption) *Item {
	return newItem(c, intrinsicSizer{}, 0, opts)
}

// Content returns the arranged content.
func (it *Item) Content() Content { return it.content }

// Sizing returns the sizing strategy.
func (it *Item) Sizing() Sizing { return it.sizer.kind() }

// Value returns the fixed length or the expansion weight.
func (it *Item) Value() float64 { return it.value }

// Horizontal returns the horizontal alignment.
func (it *Item) Horizontal() Alignment { return it.horizontal }

// Vertical returns the vertical alignment.
func (it *Item) Vertical() Alignment { return it.vertical }

// Margin returns the item margin.
func (it *Item) Margin() Edges { return it.margin }

// MinLength returns the intrinsic lower bound.
func (it *Item) MinLength() float64 { return it.minLength }

// MaxLength returns the intrinsic upper bound (+Inf when unset).
func (it *Item) MaxLength() float64 { return it.maxLength }

// CanCollapse reports whether a zero-share expanding item may shrink to nothing.
func (it *Item) CanCollapse() bool { return it.canCollapse }

// Spacing returns the gaps between the content box and the cell box derived
// by the last layout pass, margins included.
func (it *Item) Spacing() Edges { return it.spacing }

// Geometry returns the geometry applied by the last layout pass.
func (it *Item) Geometry() Geometry { return it.geometry }

// Owner returns the grid holding the item, or nil.
func (it *Item) Owner() *Grid { return it.owner }

// SetMinLength changes the intrinsic lower bound and invalidates the owner.
func (it *Item) SetMinLength(n float64) {
	it.setMin(n)
	it.invalidateOwner()
}

// SetMaxLength changes the intrinsic upper bound and invalidates the owner.
func (it *Item) SetMaxLength(n float64) {
	it.setMax(n)
	it.invalidateOwner()
}

func (it *Item) setMin(n float64) {
	if n > it.maxLength {
		it.logger().Warn("grid: min length above max, clamping min",
			"content", describe(it.content), "min", n, "max", it.maxLength)
		n = it.maxLength
	}
	it.minLength = n
}

func (it *Item) setMax(n float64) {
	if n < it.minLength {
		it.logger().Warn("grid: max length below min, clamping max",
			"content", describe(it.content), "min", it.minLength, "max", n)
		n = it.minLength
	}
	it.maxLength = n
}

func (it *Item) invalidateOwner() {
	if it.owner != nil {
		it.owner.Invalidate()
	}
}

func (it *Item) logger() *slog.Logger {
	if it.owner != nil {
		return it.owner.log()
	}
	return debug.Logger()
}

// alignments returns the primary and orthogonal alignment for o.
func (it *Item) alignments(o Orientation) (primary, orthogonal Alignment) {
	if o == Horizontal {
		return it.horizontal, it.vertical
	}
	return it.vertical, it.horizontal
}

// String describes the item for debugging.
func (it *Item) String() string {
	return fmt.Sprintf("%s(%s %g)", it.sizer.kind(), describe(it.content), it.value)
}

// describe names content in log records.
func describe(c Content) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", c)
}
