// Package arrange implements the deterministic arrange operations of the
// layout engine: align, distribute, pack, expand, center, connect and chain.
//
// # Overview
//
// Every operation works on a selection of widgets sharing one parent and
// moves them in place. When constraints are requested the operation also
// emits anchor connections so the arrangement survives later edits:
//
//	a := arrange.New(8, logger)
//	err := a.Align(arrange.AlignLeft, selection, true)
//
// # Ordering
//
// Before aligning, the selection is sorted along the cross axis (by Y for
// left/center/right, by X for top/middle/bottom/baseline). If the first
// widget is farther from its parent's edges than the last one the order is
// reversed, so anchor chains grow away from the nearest edge. Distribution
// sorts along its own axis.
//
// # Gaps
//
// [Gap] and [GapWidget] measure free space from a rectangle to its nearest
// neighbour in one direction, using a strip inset by one unit so that
// touching widgets do not see themselves. When nothing lies in the strip the
// container edge is used, and GapWidget returns the container itself.
package arrange
