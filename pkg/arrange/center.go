package arrange

import (
	"github.com/matzehuels/scout/pkg/geom"
	"github.com/matzehuels/scout/pkg/widget"
)

func centerInParent(ws []*widget.Widget, parent *widget.Widget, vertical, apply bool) {
	for _, w := range ws {
		if vertical {
			w.Y = (parent.Height - w.Height) / 2
			if apply {
				w.Connect(widget.CenterY, parent, widget.CenterY, 0)
			}
			continue
		}
		w.X = (parent.Width - w.Width) / 2
		if apply {
			w.Connect(widget.CenterX, parent, widget.CenterX, 0)
		}
	}
}

// centerBetween centers each widget between its neighbours on the axis.
// With constraints the widget is instead anchored to both neighbours with an
// even bias.
func centerBetween(ws []*widget.Widget, parent *widget.Widget, vertical, apply bool) {
	lead, trail := geom.West, geom.East
	if vertical {
		lead, trail = geom.North, geom.South
	}
	peers := parent.Children()

	for _, w := range ws {
		r := w.Rect()
		before, beforeW := gapSearch(lead, r, peers, parent)
		after, afterW := gapSearch(trail, r, peers, parent)

		if !apply {
			if vertical {
				w.Y += (after - before) / 2
			} else {
				w.X += (after - before) / 2
			}
			continue
		}

		linkToNeighbor(w, lead, beforeW, parent, 0)
		linkToNeighbor(w, trail, afterW, parent, 0)
		if vertical {
			w.VerticalBias = 0.5
		} else {
			w.HorizontalBias = 0.5
		}
	}
}

// linkToNeighbor anchors the side of w facing d to target: to the facing
// side of a sibling, or to the same side of the container.
func linkToNeighbor(w *widget.Widget, d geom.Direction, target, parent *widget.Widget, margin int) {
	src := widget.AnchorFor(d)
	dst := src.Opposite()
	if target == parent {
		dst = src
	}
	w.Connect(src, target, dst, margin)
}

// connect anchors the d side of each widget to its nearest neighbour in
// that direction. Without constraints the current gap is kept as margin.
func connect(ws []*widget.Widget, parent *widget.Widget, d geom.Direction, apply bool) {
	peers := parent.Children()
	for _, w := range ws {
		dist, target := gapSearch(d, w.Rect(), peers, parent)
		margin := dist
		if apply {
			margin = 0
		}
		linkToNeighbor(w, d, target, parent, margin)
	}
}

// chain links ws into a chain along one axis. Interior widgets link to their
// chain neighbours; the ends link to whatever bounds them.
func chain(ws []*widget.Widget, parent *widget.Widget, vertical bool) {
	lead, trail := geom.West, geom.East
	if vertical {
		lead, trail = geom.North, geom.South
		sortByY(ws)
	} else {
		sortByX(ws)
	}
	peers := parent.Children()

	for i, w := range ws {
		var before, after *widget.Widget
		if i == 0 {
			before = GapWidget(lead, w.Rect(), peers, parent)
		} else {
			before = ws[i-1]
		}
		if i == len(ws)-1 {
			after = GapWidget(trail, w.Rect(), peers, parent)
		} else {
			after = ws[i+1]
		}
		linkToNeighbor(w, lead, before, parent, 0)
		linkToNeighbor(w, trail, after, parent, 0)
		if vertical {
			w.VerticalBias = 0.5
		} else {
			w.HorizontalBias = 0.5
		}
	}
}
