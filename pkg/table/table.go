package table

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/matzehuels/scout/pkg/geom"
)

// Alignment is the dominant horizontal alignment of a column.
type Alignment int

const (
	Center Alignment = iota
	Left
	Right
)

var alignmentNames = [...]string{Center: "center", Left: "left", Right: "right"}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return fmt.Sprintf("alignment(%d)", int(a))
	}
	return alignmentNames[a]
}

// minAlignmentSamples is the smallest column size for which alignment is
// inferred; smaller columns default to Center.
const minAlignmentSamples = 3

// Layout is the table structure recovered by Analyze.
type Layout struct {
	Rows int
	Cols int

	// Alignment holds one entry per column.
	Alignment []Alignment

	// Confidence in [0, 1] that the columns are deliberately aligned.
	Confidence float64

	// Valid reports whether every rectangle occupies its own cell.
	Valid bool

	// Cells[row][col] is the index of the rectangle in that cell, or -1.
	Cells [][]int

	// Skips[i] is the number of empty cells walked over, column by column,
	// before reaching rectangle i.
	Skips []int
}

// Analyze bands rects into rows and columns and scores column alignment.
// An empty input yields an invalid zero layout.
func Analyze(rects []geom.Rect) Layout {
	if len(rects) == 0 {
		return Layout{}
	}

	rowBands := bands(rects, true)
	colBands := bands(rects, false)
	l := Layout{Rows: len(rowBands), Cols: len(colBands)}

	l.Cells = make([][]int, l.Rows)
	for r := range l.Cells {
		l.Cells[r] = slices.Repeat([]int{-1}, l.Cols)
	}
	for i, rc := range rects {
		row := bandOf(rowBands, rc.Y, rc.Bottom())
		col := bandOf(colBands, rc.X, rc.Right())
		if row < 0 || col < 0 || l.Cells[row][col] >= 0 {
			return Layout{Rows: l.Rows, Cols: l.Cols}
		}
		l.Cells[row][col] = i
	}
	l.Valid = true

	l.Skips = make([]int, len(rects))
	skip := 0
	for c := 0; c < l.Cols; c++ {
		for r := 0; r < l.Rows; r++ {
			idx := l.Cells[r][c]
			if idx < 0 {
				skip++
				continue
			}
			l.Skips[idx] = skip
			skip = 0
		}
	}

	l.Alignment = make([]Alignment, l.Cols)
	for c := 0; c < l.Cols; c++ {
		var members []geom.Rect
		for r := 0; r < l.Rows; r++ {
			if idx := l.Cells[r][c]; idx >= 0 {
				members = append(members, rects[idx])
			}
		}
		align, p := columnAlignment(members)
		l.Alignment[c] = align
		l.Confidence = l.Confidence + p - l.Confidence*p
	}
	return l
}

// =============================================================================
// Banding
// =============================================================================

type band struct {
	start, end int
}

// bands merges the vertical (rows) or horizontal (columns) extents of rects
// into disjoint bands. Intervals that only touch stay in separate bands.
func bands(rects []geom.Rect, vertical bool) []band {
	iv := make([]band, len(rects))
	for i, r := range rects {
		if vertical {
			iv[i] = band{r.Y, r.Bottom()}
		} else {
			iv[i] = band{r.X, r.Right()}
		}
	}
	slices.SortFunc(iv, func(a, b band) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}
		return cmp.Compare(a.end, b.end)
	})

	out := []band{iv[0]}
	for _, b := range iv[1:] {
		cur := &out[len(out)-1]
		if b.start < cur.end {
			cur.end = max(cur.end, b.end)
			continue
		}
		out = append(out, b)
	}
	return out
}

func bandOf(bs []band, start, end int) int {
	for i, b := range bs {
		if b.start <= start && end <= b.end {
			return i
		}
	}
	return -1
}

// =============================================================================
// Alignment
// =============================================================================

// columnAlignment picks the edge with the lowest population standard
// deviation and returns it with the likelihood 1 - best/second. Ties and
// columns with too few members give Center with likelihood 0.
//
// The ranking uses exact integer dispersions so that columns of equal width,
// where all three deviations coincide, always tie.
func columnAlignment(members []geom.Rect) (Alignment, float64) {
	if len(members) < minAlignmentSamples {
		return Center, 0
	}

	lefts := make([]float64, len(members))
	centers := make([]float64, len(members))
	rights := make([]float64, len(members))
	var disp [3]dispersion
	for i, r := range members {
		lefts[i] = float64(r.X)
		centers[i] = r.CenterX()
		rights[i] = float64(r.Right())
		disp[0].add(2 * r.X)
		disp[1].add(2*r.X + r.Width)
		disp[2].add(2 * r.Right())
	}

	var rank [3]int64
	for i := range disp {
		rank[i] = disp[i].value()
	}
	best := 0
	for i := 1; i < len(rank); i++ {
		if rank[i] < rank[best] {
			best = i
		}
	}
	second := -1
	for i := range rank {
		if i != best && (second < 0 || rank[i] < rank[second]) {
			second = i
		}
	}
	if rank[best] >= rank[second] {
		return Center, 0
	}

	kinds := [3]Alignment{Left, Center, Right}
	devs := [3]float64{
		stat.PopStdDev(lefts, nil),
		stat.PopStdDev(centers, nil),
		stat.PopStdDev(rights, nil),
	}
	return kinds[best], 1 - devs[best]/devs[second]
}

// dispersion accumulates n·Σv² − (Σv)², which is n² times the population
// variance of the samples.
type dispersion struct {
	n, sum, sumSq int64
}

func (d *dispersion) add(v int) {
	d.n++
	d.sum += int64(v)
	d.sumSq += int64(v) * int64(v)
}

func (d dispersion) value() int64 {
	return d.n*d.sumSq - d.sum*d.sum
}
