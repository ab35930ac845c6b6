package geom

import "math"

// Distance returns the corner/edge distance between a and b.
//
// xmin and ymin are the smallest absolute differences between any pair of
// vertical (respectively horizontal) edges. When the vertical ranges overlap
// the horizontal candidate is xmin, otherwise the hypotenuse of both; the
// vertical candidate is symmetric. The smaller candidate wins. Ranges that
// merely touch count as overlapping.
func Distance(a, b Rect) float64 {
	ax1, ax2 := a.X, a.Right()
	ay1, ay2 := a.Y, a.Bottom()
	bx1, bx2 := b.X, b.Right()
	by1, by2 := b.Y, b.Bottom()

	xmin := min(abs(ax1-bx1), abs(ax1-bx2), abs(ax2-bx1), abs(ax2-bx2))
	ymin := min(abs(ay1-by1), abs(ay1-by2), abs(ay2-by1), abs(ay2-by2))

	yOverlap := ay1 <= by2 && by1 <= ay2
	xOverlap := ax1 <= bx2 && bx1 <= ax2

	// single precision, matching the metric stored by the editor
	diag := float64(float32(math.Hypot(float64(xmin), float64(ymin))))

	xRet, yRet := diag, diag
	if yOverlap {
		xRet = float64(xmin)
	}
	if xOverlap {
		yRet = float64(ymin)
	}
	return math.Min(xRet, yRet)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
