package group

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/matzehuels/scout/pkg/geom"
	"github.com/matzehuels/scout/pkg/table"
)

// Candidate is a rectangular region evaluated as a possible table.
// Contained indexes into the widget slice the search ran over.
type Candidate struct {
	Bounds     geom.Rect
	Contained  *bitset.BitSet
	WidgetArea int
	GroupArea  int
	GapArea    int

	Table table.Layout
	Score float64
}

// Count returns the number of contained widgets.
func (c *Candidate) Count() int {
	return int(c.Contained.Count())
}

// Fill is the fraction of the candidate covered by contained widgets.
func (c *Candidate) Fill() float64 {
	if c.GroupArea == 0 {
		return 0
	}
	return float64(c.WidgetArea) / float64(c.GroupArea)
}

// Viability is the fraction covered by widgets and unobstructed gaps.
func (c *Candidate) Viability() float64 {
	if c.GroupArea == 0 {
		return 0
	}
	return float64(c.WidgetArea+c.GapArea) / float64(c.GroupArea)
}

// EmptyFraction is the uncovered area per contained widget, relative to the
// candidate area. Gaps between pairs may overlap, so it can be negative.
func (c *Candidate) EmptyFraction() float64 {
	n := c.Count()
	if n == 0 || c.GroupArea == 0 {
		return 0
	}
	empty := c.GroupArea - c.WidgetArea - c.GapArea
	return float64(empty) / float64(n*c.GroupArea)
}

// indices lists the contained widget indices in ascending order.
func (c *Candidate) indices() []int {
	out := make([]int, 0, c.Count())
	for i, ok := c.Contained.NextSet(0); ok; i, ok = c.Contained.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}
