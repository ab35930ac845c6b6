package arrange

import (
	"slices"

	"github.com/matzehuels/scout/pkg/errors"
	"github.com/matzehuels/scout/pkg/geom"
	"github.com/matzehuels/scout/pkg/widget"
)

// axis reads and writes one coordinate axis of a widget.
type axis struct {
	vertical bool
}

func (ax axis) start(w *widget.Widget) int {
	if ax.vertical {
		return w.Y
	}
	return w.X
}

func (ax axis) size(w *widget.Widget) int {
	if ax.vertical {
		return w.Height
	}
	return w.Width
}

func (ax axis) setStart(w *widget.Widget, v int) {
	if ax.vertical {
		w.Y = v
	} else {
		w.X = v
	}
}

func (ax axis) setSize(w *widget.Widget, v int) {
	if ax.vertical {
		w.Height = v
		w.Vertical = widget.Fixed
	} else {
		w.Width = v
		w.Horizontal = widget.Fixed
	}
}

func (ax axis) rootDistance(w, parent *widget.Widget) int {
	if ax.vertical {
		return rootDistanceY(w, parent)
	}
	return rootDistanceX(w, parent)
}

// distribute spreads ws, already sorted along the axis, so the gaps between
// neighbours are equal up to integer remainder. The outer edges stay put.
func distribute(ws []*widget.Widget, parent *widget.Widget, vertical, apply bool) error {
	if len(ws) < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "distribute needs at least two widgets, got %d", len(ws))
	}
	ax := axis{vertical: vertical}
	lead, trail := widget.Left, widget.Right
	if vertical {
		lead, trail = widget.Top, widget.Bottom
	}

	lo := ax.start(ws[0])
	hi := lo + ax.size(ws[0])
	sum := 0
	for _, w := range ws {
		sum += ax.size(w)
		lo = min(lo, ax.start(w))
		hi = max(hi, ax.start(w)+ax.size(w))
	}
	gaps := len(ws) - 1
	totalGap := hi - lo - sum
	last := lo
	reverse := ax.rootDistance(ws[0], parent) > ax.rootDistance(ws[len(ws)-1], parent)

	for i := 1; i < len(ws); i++ {
		size := ax.size(ws[i-1])
		lo += size
		pos := lo + totalGap*i/gaps
		ax.setStart(ws[i], pos)
		if apply {
			margin := pos - last - size
			if reverse {
				ws[i-1].Connect(trail, ws[i], lead, margin)
			} else {
				ws[i].Connect(lead, ws[i-1], trail, margin)
			}
			last = pos
		}
	}
	return nil
}

// pack moves each widget toward its leading neighbour until one margin
// separates them, never leaving the selection's original bounding box.
func (a *Arranger) pack(ws []*widget.Widget, parent *widget.Widget, vertical bool) {
	ws = geometric(ws)
	bounds, ok := boundingBox(ws)
	if !ok {
		return
	}
	ax := axis{vertical: vertical}
	dir := geom.West
	lo, hi := bounds.X, bounds.Right()
	if vertical {
		dir = geom.North
		lo, hi = bounds.Y, bounds.Bottom()
	}

	slices.SortStableFunc(ws, func(p, q *widget.Widget) int { return ax.start(p) - ax.start(q) })
	peers := parent.Children()
	for _, w := range ws {
		g := Gap(dir, w.Rect(), peers, parent)
		pos := a.Margin + ax.start(w) - g
		pos = max(pos, lo)
		pos = min(pos, hi-ax.size(w))
		ax.setStart(w, pos)
	}
}

// expand splits the selection into columns (rows when horizontal), then
// slices the free span around the selection evenly among each column's
// members, fixing their size on that axis.
func (a *Arranger) expand(ws []*widget.Widget, parent *widget.Widget, vertical bool) {
	ws = geometric(ws)
	sel, ok := boundingBox(ws)
	if !ok {
		return
	}
	ax := axis{vertical: vertical}
	peers := parent.Children()

	var clipStart, clipSize int
	if vertical {
		gn := Gap(geom.North, sel, peers, parent)
		gs := Gap(geom.South, sel, peers, parent)
		clipStart, clipSize = sel.Y-gn, sel.Height+gn+gs
	} else {
		gw := Gap(geom.West, sel, peers, parent)
		ge := Gap(geom.East, sel, peers, parent)
		clipStart, clipSize = sel.X-gw, sel.Width+gw+ge
	}

	margin := a.Margin
	for _, group := range partition(ws, vertical) {
		slices.SortStableFunc(group, func(p, q *widget.Widget) int { return ax.start(p) - ax.start(q) })
		n := len(group)
		total := clipSize - (n-1)*margin - 2*margin
		for i, w := range group {
			from := margin*i + i*total/n
			to := margin*i + total*(i+1)/n
			ax.setStart(w, from+clipStart+margin)
			ax.setSize(w, to-from)
		}
	}
}

// partition groups ws into columns (vertical) or rows. Each group is seeded
// by the first remaining widget and collects every widget overlapping the
// seed on the cross axis.
func partition(ws []*widget.Widget, vertical bool) [][]*widget.Widget {
	var groups [][]*widget.Widget
	remaining := slices.Clone(ws)
	for len(remaining) > 0 {
		seed := remaining[0]
		group := []*widget.Widget{seed}
		var rest []*widget.Widget
		for _, w := range remaining[1:] {
			if (vertical && sameColumn(seed, w)) || (!vertical && sameRow(seed, w)) {
				group = append(group, w)
			} else {
				rest = append(rest, w)
			}
		}
		groups = append(groups, group)
		remaining = rest
	}
	return groups
}

func sameColumn(a, b *widget.Widget) bool {
	return max(a.X, b.X) < min(a.X+a.Width, b.X+b.Width)
}

func sameRow(a, b *widget.Widget) bool {
	return max(a.Y, b.Y) < min(a.Y+a.Height, b.Y+b.Height)
}
