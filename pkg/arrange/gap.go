package arrange

import (
	"math"

	"github.com/matzehuels/scout/pkg/geom"
	"github.com/matzehuels/scout/pkg/widget"
)

// Gap returns the free distance from region to the nearest peer in
// direction d, or to the container edge when no peer lies that way.
func Gap(d geom.Direction, region geom.Rect, peers []*widget.Widget, container *widget.Widget) int {
	dist, _ := gapSearch(d, region, peers, container)
	return dist
}

// GapWidget returns the peer that bounds region in direction d. The
// container itself is returned when no peer lies that way.
func GapWidget(d geom.Direction, region geom.Rect, peers []*widget.Widget, container *widget.Widget) *widget.Widget {
	_, w := gapSearch(d, region, peers, container)
	return w
}

func gapSearch(d geom.Direction, region geom.Rect, peers []*widget.Widget, container *widget.Widget) (int, *widget.Widget) {
	cw, ch := container.Width, container.Height
	s := searchStrip(d, region, cw, ch)

	best := math.MaxInt
	var nearest *widget.Widget
	for _, p := range peers {
		if p == container {
			continue
		}
		r := p.Bounds()
		if !r.Intersects(s) {
			continue
		}
		if dist := int(geom.Distance(r, region)); dist < best {
			best = dist
			nearest = p
		}
	}

	if best > max(cw, ch) {
		return edgeDistance(d, region, cw, ch), container
	}
	return best, nearest
}

// searchStrip is the area between region's side and the container edge,
// inset by one unit from region and narrowed by one unit on each flank.
func searchStrip(d geom.Direction, region geom.Rect, cw, ch int) geom.Rect {
	switch d {
	case geom.North:
		return geom.Rect{X: region.X + 1, Y: 0, Width: region.Width - 2, Height: region.Y}
	case geom.South:
		y := region.Bottom() + 1
		return geom.Rect{X: region.X + 1, Y: y, Width: region.Width - 2, Height: ch - y}
	case geom.West:
		return geom.Rect{X: 0, Y: region.Y + 1, Width: region.X, Height: region.Height - 2}
	default:
		x := region.Right() + 1
		return geom.Rect{X: x, Y: region.Y + 1, Width: cw - x, Height: region.Height - 2}
	}
}

func edgeDistance(d geom.Direction, region geom.Rect, cw, ch int) int {
	switch d {
	case geom.North:
		return region.Y
	case geom.South:
		return ch - region.Bottom()
	case geom.West:
		return region.X
	default:
		return cw - region.Right()
	}
}

// rootDistance is the distance from w to the nearest edge of its parent.
func rootDistance(w, parent *widget.Widget) int {
	return min(rootDistanceX(w, parent), rootDistanceY(w, parent))
}

func rootDistanceX(w, parent *widget.Widget) int {
	return min(w.X, parent.Width-(w.X+w.Width))
}

func rootDistanceY(w, parent *widget.Widget) int {
	return min(w.Y, parent.Height-(w.Y+w.Height))
}
