// Package grid is a single-axis stack layout engine.
//
// A Grid arranges an ordered list of items along a primary axis (vertical or
// horizontal). Each item is sized on that axis by one of three strategies:
//
//   - Fixed: an authored length.
//   - Expanding: a weighted share of the space the other items leave over.
//   - Intrinsic: the content's own measured length, clamped to [min, max].
//
// On the orthogonal axis every item is aligned on its own (fill, centered,
// leading or trailing, each with a fixed or content-driven length).
//
// The engine only computes geometry. Content answers intrinsic-size queries
// through the [Content] interface and a [Backend] materializes the computed
// [Geometry]. A *Grid is itself Content, so grids nest: a nested grid is laid
// out top-down after its parent and measured bottom-up while its parent
// resolves intrinsic lengths.
//
// A Grid is not safe for concurrent use. All calls are expected on the same
// goroutine, and content must not mutate a grid from inside a measurement
// callback that grid is driving.
package grid
