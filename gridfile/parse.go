package gridfile

import (
	"fmt"
	"strconv"
	"strings"

	grid "github.com/grindlemire/go-grid"
)

// ParseOrientation accepts "vertical" (the default when empty) or
// "horizontal".
func ParseOrientation(s string) (grid.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical":
		return grid.Vertical, nil
	case "horizontal":
		return grid.Horizontal, nil
	}
	return grid.Vertical, fmt.Errorf("%w: unknown orientation %q", ErrInvalidDocument, s)
}

// ParseAlignment reads "fill", or an anchor ("center", "leading",
// "trailing") optionally followed by ":length". Without a length the content
// keeps its measured size. Empty means fill.
func ParseAlignment(s string) (grid.Alignment, error) {
	anchor, length, hasLength := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")

	var n float64
	if hasLength {
		v, err := strconv.ParseFloat(strings.TrimSpace(length), 64)
		if err != nil || v < 0 {
			return grid.Alignment{}, fmt.Errorf("%w: bad alignment length in %q", ErrInvalidDocument, s)
		}
		n = v
	}

	switch anchor {
	case "", "fill":
		if hasLength {
			return grid.Alignment{}, fmt.Errorf("%w: fill takes no length in %q", ErrInvalidDocument, s)
		}
		return grid.Fill(), nil
	case "center":
		if hasLength {
			return grid.Center(n), nil
		}
		return grid.CenterAuto(), nil
	case "leading":
		if hasLength {
			return grid.Leading(n), nil
		}
		return grid.LeadingAuto(), nil
	case "trailing":
		if hasLength {
			return grid.Trailing(n), nil
		}
		return grid.TrailingAuto(), nil
	}
	return grid.Alignment{}, fmt.Errorf("%w: unknown alignment %q", ErrInvalidDocument, s)
}

// ParseSizing reads "fixed", "expanding" or "intrinsic".
func ParseSizing(s string) (grid.Sizing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed":
		return grid.SizingFixed, nil
	case "expanding":
		return grid.SizingExpanding, nil
	case "intrinsic":
		return grid.SizingIntrinsic, nil
	}
	return grid.SizingFixed, fmt.Errorf("%w: unknown sizing %q", ErrInvalidDocument, s)
}

// ParseMargin reads one (all sides), two (vertical, horizontal) or four
// (top, right, bottom, left) numbers.
func ParseMargin(v []float64) (grid.Edges, error) {
	for _, n := range v {
		if n < 0 {
			return grid.Edges{}, fmt.Errorf("%w: negative margin %v", ErrInvalidDocument, v)
		}
	}
	switch len(v) {
	case 0:
		return grid.Edges{}, nil
	case 1:
		return grid.EdgeAll(v[0]), nil
	case 2:
		return grid.EdgeSymmetric(v[0], v[1]), nil
	case 4:
		return grid.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	}
	return grid.Edges{}, fmt.Errorf("%w: margin needs 1, 2 or 4 numbers, got %d", ErrInvalidDocument, len(v))
}

// alignmentString is the inverse of ParseAlignment.
func alignmentString(a grid.Alignment) string {
	if a.IsFill() {
		return ""
	}
	return a.String()
}
