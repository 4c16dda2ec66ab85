// Package text provides label content for grids.
//
// A Label wraps its text to the width a grid offers and reports the wrapped
// block's size as its intrinsic size. How wide a string is depends on the
// Measurer: CellMeasurer counts terminal cells, FontMeasurer uses real glyph
// advances from a TrueType face.
package text
