// Package geom provides the integer geometry used by the layout engine.
//
// # Rectangles
//
// [Rect] is a value type in parent-local integer coordinates. Its set algebra
// follows the conventions of the design surface that produced the widgets:
//
//   - [Rect.Intersects] requires a strictly positive overlap on both axes and
//     is false whenever either rectangle is empty.
//   - [Rect.Contains] tests full containment, edges included.
//   - [Rect.Union] keeps degenerate rectangles, so a zero-sized widget still
//     stretches a bounding box to its position.
//
// # Distances
//
// [Distance] is the corner/edge metric used for neighbour search. It is not
// the centroid distance: two rectangles sharing a vertical range are exactly
// their horizontal gap apart, and only diagonal neighbours pay the hypotenuse.
//
//	a := geom.NewRect(0, 0, 10, 10)
//	b := geom.NewRect(30, 0, 10, 10)
//	geom.Distance(a, b) // 20
package geom
