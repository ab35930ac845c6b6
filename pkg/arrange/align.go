package arrange

import (
	"math"
	"slices"

	"github.com/matzehuels/scout/pkg/widget"
)

// alignSide snaps one side of every widget to the outermost value and,
// with constraints, chains each widget to its predecessor on that side.
func alignSide(ws []*widget.Widget, side widget.AnchorType, apply bool) {
	if apply {
		flipConnectionsAndReverse(ws, side)
	}

	target := math.MaxInt
	if side == widget.Right || side == widget.Bottom {
		target = math.MinInt
	}
	for _, w := range ws {
		switch side {
		case widget.Left:
			target = min(target, w.X)
		case widget.Top:
			target = min(target, w.Y)
		case widget.Right:
			target = max(target, w.X+w.Width)
		case widget.Bottom:
			target = max(target, w.Y+w.Height)
		}
	}

	for i, w := range ws {
		switch side {
		case widget.Left:
			w.X = target
		case widget.Top:
			w.Y = target
		case widget.Right:
			w.X = target - w.Width
		case widget.Bottom:
			w.Y = target - w.Height
		}
		if apply && i > 0 {
			w.Reset(side.Opposite())
			w.Connect(side, ws[i-1], side, 0)
		}
	}
}

// flipConnectionsAndReverse reverses ws when every widget after the first is
// already chained on side (and not on the opposite side), then drops a link
// from the new head back into the selection so re-chaining cannot loop.
func flipConnectionsAndReverse(ws []*widget.Widget, side widget.AnchorType) {
	chained := true
	for _, w := range ws[1:] {
		if !w.IsConnected(side) || w.IsConnected(side.Opposite()) {
			chained = false
			break
		}
	}
	if chained {
		slices.Reverse(ws)
	}

	head := ws[0]
	for _, w := range ws {
		if head.IsConnectedTo(side, w) {
			head.Reset(side)
			break
		}
	}
}

// alignCenters moves every widget so its center lies on the mean center.
// Arithmetic is single precision, as in the editor.
func alignCenters(ws []*widget.Widget, vertical, apply bool) {
	var avg float32
	for _, w := range ws {
		if vertical {
			avg += float32(w.Y) + float32(w.Height)/2
		} else {
			avg += float32(w.X) + float32(w.Width)/2
		}
	}
	avg /= float32(len(ws))

	anchor := widget.CenterX
	if vertical {
		anchor = widget.CenterY
	}
	for i, w := range ws {
		if vertical {
			w.Y = int(avg - float32(w.Height)/2)
		} else {
			w.X = int(avg - float32(w.Width)/2)
		}
		if apply && i > 0 {
			w.Connect(anchor, ws[i-1], anchor, 0)
		}
	}
}

// alignBaselines lines up text baselines. A single vertically constrained
// widget acts as the reference; with constraints and at least one such
// widget, unconstrained widgets are linked greedily to their horizontally
// closest constrained one instead of forming a sequential chain.
func alignBaselines(ws []*widget.Widget, apply bool) {
	if apply {
		flipBaselineAndReverse(ws)
	}

	var avg float32
	constrained := 0
	var fixed *widget.Widget
	for _, w := range ws {
		if w.IsVerticallyConstrained() {
			constrained++
			fixed = w
		}
		avg += float32(w.Y + w.Baseline)
	}
	avg /= float32(len(ws))
	if constrained == 1 {
		avg = float32(fixed.Y + fixed.Baseline)
	}

	if !apply || constrained == 0 {
		for i, w := range ws {
			w.Y = int(avg - float32(w.Baseline))
			if apply && i > 0 {
				w.Connect(widget.Baseline, ws[i-1], widget.Baseline, 0)
			}
		}
		return
	}

	var linked, pending []*widget.Widget
	for _, w := range ws {
		if w.IsVerticallyConstrained() {
			linked = append(linked, w)
		} else {
			pending = append(pending, w)
		}
	}
	for len(pending) > 0 {
		best := math.MaxInt
		fromIdx, to := -1, (*widget.Widget)(nil)
		for i, from := range pending {
			for _, cand := range linked {
				if d := edgeGap(from, cand); d < best {
					best = d
					fromIdx, to = i, cand
				}
			}
		}
		from := pending[fromIdx]
		from.Connect(widget.Baseline, to, widget.Baseline, 0)
		from.Y = to.Y + to.Baseline - from.Baseline
		linked = append(linked, from)
		pending = slices.Delete(pending, fromIdx, fromIdx+1)
	}
}

// flipBaselineAndReverse reverses ws when every widget after the first is
// already baseline-linked, then clears all baseline links.
func flipBaselineAndReverse(ws []*widget.Widget) {
	chained := true
	for _, w := range ws[1:] {
		if !w.IsConnected(widget.Baseline) {
			chained = false
			break
		}
	}
	if chained {
		slices.Reverse(ws)
	}
	for _, w := range ws {
		w.Reset(widget.Baseline)
	}
}

// edgeGap is the smallest horizontal distance between any edge of a and any
// edge of b.
func edgeGap(a, b *widget.Widget) int {
	aL, aR := a.X, a.X+a.Width
	bL, bR := b.X, b.X+b.Width
	return min(absInt(bL-aL), absInt(bL-aR), absInt(bR-aR), absInt(bR-aL))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
