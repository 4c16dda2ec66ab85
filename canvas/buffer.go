package canvas

import (
	"strings"

	"github.com/rivo/uniseg"
)

// continuation marks the second cell of a wide rune.
const continuation rune = -1

// Buffer is a 2D grid of terminal cells.
type Buffer struct {
	cells  []rune
	width  int
	height int
}

// NewBuffer creates a buffer of the given dimensions filled with spaces.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)

	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Rune returns the rune at (x, y), or a space when out of bounds or covered
// by a wide rune to its left.
func (b *Buffer) Rune(x, y int) rune {
	i := b.idx(x, y)
	if i < 0 || b.cells[i] == continuation {
		return ' '
	}
	return b.cells[i]
}

// SetRune sets a rune at position (x, y). A wide rune also claims the cell
// to its right; one that would not fit at the last column is dropped.
func (b *Buffer) SetRune(x, y int, r rune) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.clearWide(x, y)

	if runeWidth(r) == 2 {
		if x+1 >= b.width {
			b.cells[i] = ' '
			return
		}
		b.clearWide(x+1, y)
		b.cells[i] = r
		b.cells[i+1] = continuation
		return
	}
	b.cells[i] = r
}

// clearWide blanks the wide rune covering (x, y), if any.
func (b *Buffer) clearWide(x, y int) {
	i := b.idx(x, y)
	switch {
	case b.cells[i] == continuation:
		b.cells[i] = ' '
		if x > 0 {
			b.cells[i-1] = ' '
		}
	case runeWidth(b.cells[i]) == 2 && x+1 < b.width:
		b.cells[i+1] = ' '
	}
}

// SetString writes s starting at (x, y), stopping before column limit.
// Returns the display width consumed.
func (b *Buffer) SetString(x, y int, s string, limit int) int {
	limit = min(limit, b.width)
	cur := x
	for _, r := range s {
		w := runeWidth(r)
		if cur+w > limit {
			break
		}
		b.SetRune(cur, y, r)
		cur += w
	}
	return cur - x
}

// Fill sets every cell of the rectangle to r.
func (b *Buffer) Fill(x, y, width, height int, r rune) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			b.SetRune(col, row, r)
		}
	}
}

// String renders the buffer with one line per row.
func (b *Buffer) String() string {
	return b.render(false)
}

// StringTrimmed renders the buffer with trailing spaces removed from each row.
func (b *Buffer) StringTrimmed() string {
	return b.render(true)
}

func (b *Buffer) render(trim bool) string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		for x := 0; x < b.width; x++ {
			r := b.cells[y*b.width+x]
			if r == continuation {
				continue
			}
			line.WriteRune(r)
		}
		if trim {
			sb.WriteString(strings.TrimRight(line.String(), " "))
		} else {
			sb.WriteString(line.String())
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func runeWidth(r rune) int {
	if r == continuation {
		return 0
	}
	return max(uniseg.StringWidth(string(r)), 1)
}
