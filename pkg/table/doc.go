// Package table recovers a row/column structure from a set of rectangles.
//
// Rows and columns are bands: maximal runs of overlapping intervals on one
// axis, separated by seams no rectangle crosses. Every rectangle is mapped
// to the cell at the intersection of its row band and column band. When two
// rectangles land in the same cell (typically because one of them spans
// several bands and merged them) the layout is not a table and
// [Layout.Valid] is false.
//
// For each column the analyzer decides whether its members share a left
// edge, a center line or a right edge by comparing the population standard
// deviation of the three positions:
//
//	l := table.Analyze(rects)
//	if l.Valid {
//	    fmt.Println(l.Rows, l.Cols, l.Alignment, l.Confidence)
//	}
//
// Confidence aggregates the per-column likelihoods as independent events,
// so a single well-aligned column is enough to push it toward 1.
package table
