package table

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/scout/pkg/geom"
)

// gridRects builds three rows of four columns. Column 0 and 3 share their
// left edge, column 1 its center and column 2 its right edge.
func gridRects() []geom.Rect {
	widths := [3][4]int{
		{40, 40, 40, 36},
		{38, 38, 38, 40},
		{36, 36, 36, 38},
	}
	var out []geom.Rect
	for row := 0; row < 3; row++ {
		y := row * 30
		w := widths[row]
		out = append(out,
			geom.NewRect(0, y, w[0], 20),
			geom.NewRect(70-w[1]/2, y, w[1], 20),
			geom.NewRect(140-w[2], y, w[2], 20),
			geom.NewRect(150, y, w[3], 20),
		)
	}
	return out
}

func TestAnalyzeGrid(t *testing.T) {
	l := Analyze(gridRects())

	if !l.Valid {
		t.Fatal("grid should be valid")
	}
	if l.Rows != 3 || l.Cols != 4 {
		t.Fatalf("size = %dx%d, want 3x4", l.Rows, l.Cols)
	}
	want := []Alignment{Left, Center, Right, Left}
	if !slices.Equal(l.Alignment, want) {
		t.Errorf("Alignment = %v, want %v", l.Alignment, want)
	}
	if math.Abs(l.Confidence-1) > 1e-9 {
		t.Errorf("Confidence = %v, want 1", l.Confidence)
	}
	for i, s := range l.Skips {
		if s != 0 {
			t.Errorf("Skips[%d] = %d, want 0", i, s)
		}
	}
	if l.Cells[1][2] != 6 {
		t.Errorf("Cells[1][2] = %d, want 6", l.Cells[1][2])
	}
}

func TestAnalyzeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		rects []geom.Rect
	}{
		{"empty", nil},
		{
			name: "spanning widget merges columns",
			rects: []geom.Rect{
				geom.NewRect(0, 0, 40, 20),
				geom.NewRect(50, 0, 40, 20),
				geom.NewRect(0, 30, 90, 20),
				geom.NewRect(0, 60, 40, 20),
			},
		},
		{
			name: "stacked overlap",
			rects: []geom.Rect{
				geom.NewRect(0, 0, 20, 20),
				geom.NewRect(5, 5, 20, 20),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Analyze(tt.rects)
			if l.Valid {
				t.Errorf("Analyze() valid = true, want false (%dx%d)", l.Rows, l.Cols)
			}
			if l.Confidence != 0 {
				t.Errorf("Confidence = %v, want 0", l.Confidence)
			}
		})
	}
}

func TestAnalyzeSkips(t *testing.T) {
	l := Analyze([]geom.Rect{
		geom.NewRect(0, 0, 10, 10),
		geom.NewRect(20, 0, 10, 10),
		geom.NewRect(20, 20, 10, 10),
	})
	if !l.Valid {
		t.Fatal("layout should be valid")
	}
	if !slices.Equal(l.Skips, []int{0, 1, 0}) {
		t.Errorf("Skips = %v, want [0 1 0]", l.Skips)
	}
	if l.Cells[1][0] != -1 || l.Cells[1][1] != 2 {
		t.Errorf("Cells = %v", l.Cells)
	}
}

func TestAnalyzeTouchingBandsStaySeparate(t *testing.T) {
	l := Analyze([]geom.Rect{geom.NewRect(0, 0, 10, 10), geom.NewRect(10, 0, 10, 10)})
	if l.Cols != 2 || l.Rows != 1 || !l.Valid {
		t.Errorf("got %dx%d valid=%v, want 1x2 valid", l.Rows, l.Cols, l.Valid)
	}
}

func TestColumnAlignment(t *testing.T) {
	tests := []struct {
		name    string
		members []geom.Rect
		want    Alignment
		p       float64
	}{
		{
			name:    "too few members",
			members: []geom.Rect{geom.NewRect(0, 0, 10, 10), geom.NewRect(0, 20, 20, 10)},
			want:    Center,
		},
		{
			name: "identical rects tie",
			members: []geom.Rect{
				geom.NewRect(0, 0, 10, 10), geom.NewRect(0, 20, 10, 10), geom.NewRect(0, 40, 10, 10),
			},
			want: Center,
		},
		{
			name: "right edges",
			members: []geom.Rect{
				geom.NewRect(0, 0, 30, 10), geom.NewRect(10, 20, 20, 10), geom.NewRect(20, 40, 10, 10),
			},
			want: Right,
			p:    1,
		},
		{
			name: "weak center",
			members: []geom.Rect{
				geom.NewRect(0, 0, 10, 10), geom.NewRect(0, 20, 12, 10), geom.NewRect(2, 40, 10, 10),
			},
			want: Center,
			p:    1 - math.Sqrt(3)/2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, p := columnAlignment(tt.members)
			if got != tt.want {
				t.Errorf("alignment = %v, want %v", got, tt.want)
			}
			if math.Abs(p-tt.p) > 1e-9 {
				t.Errorf("p = %v, want %v", p, tt.p)
			}
		})
	}
}

func TestColumnAlignmentEqualWidthsTie(t *testing.T) {
	columns := [][]int{
		{3, 41, 77},
		{11, 23, 37},
		{0, 7, 19, 100},
		{5, 5, 6},
		{-13, 2, 29, 31, 64},
	}
	for _, xs := range columns {
		for _, w := range []int{1, 10, 25, 33, 120} {
			t.Run(fmt.Sprintf("xs=%v w=%d", xs, w), func(t *testing.T) {
				members := make([]geom.Rect, len(xs))
				for i, x := range xs {
					members[i] = geom.NewRect(x, i*30, w, 20)
				}
				got, p := columnAlignment(members)
				if got != Center || p != 0 {
					t.Errorf("columnAlignment() = %v p=%v, want center p=0", got, p)
				}
			})
		}
	}
}

func TestAnalyzeEqualWidthButtons(t *testing.T) {
	var rects []geom.Rect
	for row, x := range []int{4, 31, 12} {
		rects = append(rects, geom.NewRect(x, row*30, 60, 20))
	}
	l := Analyze(rects)
	if !l.Valid || l.Cols != 1 {
		t.Fatalf("got %dx%d valid=%v", l.Rows, l.Cols, l.Valid)
	}
	if l.Alignment[0] != Center || l.Confidence != 0 {
		t.Errorf("Alignment = %v Confidence = %v, want center with 0", l.Alignment, l.Confidence)
	}
}

func TestConfidenceAggregation(t *testing.T) {
	// two copies of the weak center column side by side
	col := []geom.Rect{geom.NewRect(0, 0, 10, 10), geom.NewRect(0, 20, 12, 10), geom.NewRect(2, 40, 10, 10)}
	var rects []geom.Rect
	for _, r := range col {
		rects = append(rects, r, r.Translate(100, 0))
	}

	l := Analyze(rects)
	p := 1 - math.Sqrt(3)/2
	want := p + p - p*p
	if math.Abs(l.Confidence-want) > 1e-9 {
		t.Errorf("Confidence = %v, want %v", l.Confidence, want)
	}
}
