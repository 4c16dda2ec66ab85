// Package layout holds the float geometry primitives shared by the grid engine
// and its backends.
//
// Types are re-exported through the root grid package for public consumption.
// Lengths are float64 so that proportional shares (for example a 1:3 split of
// 400 units) resolve exactly; backends round once when materializing.
package layout
