// Package group finds the subset of a container's widgets that most
// plausibly forms a table.
//
// The search enumerates every rectangle spanned by four distinct widget
// edges (top, bottom, left, right), grown by one unit on each side. A
// rectangle becomes a [Candidate] when no widget straddles its boundary,
// it holds enough widgets, and those widgets cover enough of its area.
// Candidates are then pruned pairwise, their unobstructed whitespace
// corridors are measured, and the survivors are scored with the column
// alignment analysis of package table.
//
// Enumeration is quartic in the number of distinct edge coordinates. The
// [Searcher] refuses inputs above its configured widget ceiling.
package group
