// Package canvas is a grid backend that keeps the geometry a grid applies to
// each content and draws the resulting tree as text.
//
// Leaf content is drawn as a titled box; content that can break itself into
// lines (such as text.Label) is drawn as its lines. Nested grids are not
// drawn themselves, only their items.
package canvas
