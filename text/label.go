package text

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	grid "github.com/grindlemire/go-grid"
)

var _ grid.Content = (*Label)(nil)

// Label is a block of text laid out by a grid. Its intrinsic size is the
// size of the text wrapped to the available width.
//
// Changing the text changes the intrinsic size. Grids cannot observe that,
// so callers must invalidate the owning grid after SetText.
type Label struct {
	name     string
	text     string
	measurer Measurer
	wrap     bool
}

// Option configures a Label.
type Option func(*Label)

// WithMeasurer sets how text is measured. Default is CellMeasurer.
func WithMeasurer(m Measurer) Option {
	return func(l *Label) {
		l.measurer = m
	}
}

// WithWrap enables or disables wrapping at the available width. Hard line
// breaks are always honored. Default is true.
func WithWrap(wrap bool) Option {
	return func(l *Label) {
		l.wrap = wrap
	}
}

// WithName names the label in logs and rendered output.
func WithName(name string) Option {
	return func(l *Label) {
		l.name = name
	}
}

// NewLabel creates a label showing s.
func NewLabel(s string, opts ...Option) *Label {
	l := &Label{
		text:     s,
		measurer: CellMeasurer{},
		wrap:     true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text.
func (l *Label) SetText(s string) { l.text = s }

// SupportsIntrinsicSizing implements grid.Content.
func (l *Label) SupportsIntrinsicSizing() bool { return true }

// MeasureIntrinsicSize implements grid.Content. The text is wrapped to
// availableWidth when it is positive; the available height is not used.
func (l *Label) MeasureIntrinsicSize(availableWidth, _ float64) (float64, float64) {
	lines := l.Lines(availableWidth)
	var w float64
	for _, line := range lines {
		w = max(w, l.measurer.Advance(line))
	}
	return w, float64(len(lines)) * l.measurer.LineHeight()
}

// Lines returns the text broken into lines no wider than width where the
// text allows it. A word wider than width gets a line of its own. A width of
// zero or less breaks only at hard line breaks.
func (l *Label) Lines(width float64) []string {
	if l.text == "" {
		return nil
	}
	wrap := l.wrap && width > 0

	var (
		lines []string
		line  strings.Builder
		seg   string
		must  bool
	)
	rest, state := l.text, -1
	for len(rest) > 0 {
		seg, rest, must, state = uniseg.FirstLineSegmentInString(rest, state)
		if wrap && line.Len() > 0 && l.measurer.Advance(trimBreak(line.String()+seg)) > width {
			lines = append(lines, trimBreak(line.String()))
			line.Reset()
		}
		line.WriteString(seg)
		if must {
			lines = append(lines, trimBreak(line.String()))
			line.Reset()
		}
	}
	if line.Len() > 0 {
		lines = append(lines, trimBreak(line.String()))
	}
	return lines
}

// String returns the label name, or its text when unnamed.
func (l *Label) String() string {
	if l.name != "" {
		return l.name
	}
	return l.text
}

// trimBreak drops trailing whitespace and line terminators.
func trimBreak(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
