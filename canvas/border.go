package canvas

// BorderStyle selects the characters boxes are drawn with.
type BorderStyle int

const (
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle BorderStyle = iota
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderASCII uses plain ASCII (+, -, |)
	BorderASCII
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (s BorderStyle) Chars() BorderChars {
	switch s {
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderASCII:
		return BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

// ParseBorderStyle maps "single", "rounded", "double" or "ascii" to a style.
func ParseBorderStyle(s string) (BorderStyle, bool) {
	switch s {
	case "single", "":
		return BorderSingle, true
	case "rounded":
		return BorderRounded, true
	case "double":
		return BorderDouble, true
	case "ascii":
		return BorderASCII, true
	}
	return BorderSingle, false
}

// drawBox outlines the rectangle and centers title in its top edge, truncated
// to fit. Rectangles smaller than 2x2 are skipped.
func drawBox(buf *Buffer, x, y, width, height int, style BorderStyle, title string) {
	if width < 2 || height < 2 {
		return
	}
	chars := style.Chars()

	left, right := x, x+width-1
	top, bottom := y, y+height-1

	buf.SetRune(left, top, chars.TopLeft)
	buf.SetRune(right, top, chars.TopRight)
	buf.SetRune(left, bottom, chars.BottomLeft)
	buf.SetRune(right, bottom, chars.BottomRight)

	for col := left + 1; col < right; col++ {
		buf.SetRune(col, top, chars.Top)
		buf.SetRune(col, bottom, chars.Bottom)
	}
	for row := top + 1; row < bottom; row++ {
		buf.SetRune(left, row, chars.Left)
		buf.SetRune(right, row, chars.Right)
	}

	available := width - 2
	if title == "" || available <= 0 {
		return
	}
	titleWidth := 0
	for _, r := range title {
		if titleWidth+runeWidth(r) > available {
			break
		}
		titleWidth += runeWidth(r)
	}
	buf.SetString(left+1+(available-titleWidth)/2, top, title, left+1+available)
}
