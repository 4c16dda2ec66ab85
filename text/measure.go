package text

import (
	"fmt"

	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Measurer reports the extent of a single line of text.
type Measurer interface {
	// Advance returns the width of s, which contains no line breaks.
	Advance(s string) float64

	// LineHeight returns the distance between consecutive baselines.
	LineHeight() float64
}

// CellMeasurer measures text in monospace terminal cells. East Asian wide
// characters and most emoji take two cells.
type CellMeasurer struct{}

// Advance implements Measurer.
func (CellMeasurer) Advance(s string) float64 {
	return float64(uniseg.StringWidth(s))
}

// LineHeight implements Measurer. Every line is one cell tall.
func (CellMeasurer) LineHeight() float64 { return 1 }

// FontMeasurer measures text in pixels using a TrueType face.
type FontMeasurer struct {
	face   font.Face
	height float64
}

// NewFontMeasurer creates a measurer for the Go Regular face at size points
// and 72 DPI, so one point is one pixel.
func NewFontMeasurer(size float64) (*FontMeasurer, error) {
	return NewFontMeasurerFrom(goregular.TTF, size, 72)
}

// NewFontMeasurerFrom creates a measurer for the TrueType or OpenType font
// in ttf.
func NewFontMeasurerFrom(ttf []byte, size, dpi float64) (*FontMeasurer, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	return &FontMeasurer{
		face:   face,
		height: pixels(face.Metrics().Height),
	}, nil
}

// Advance implements Measurer. Kerning between adjacent glyphs is included.
func (m *FontMeasurer) Advance(s string) float64 {
	return pixels(font.MeasureString(m.face, s))
}

// LineHeight implements Measurer.
func (m *FontMeasurer) LineHeight() float64 { return m.height }

// Close releases the face.
func (m *FontMeasurer) Close() error {
	return m.face.Close()
}

func pixels(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
