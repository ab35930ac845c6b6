package group

import (
	"slices"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/scout/pkg/config"
	"github.com/matzehuels/scout/pkg/geom"
	"github.com/matzehuels/scout/pkg/observability"
	"github.com/matzehuels/scout/pkg/table"
	"github.com/matzehuels/scout/pkg/widget"
)

// Searcher runs table-group inference with fixed thresholds.
type Searcher struct {
	cfg    config.Group
	logger *log.Logger
	hooks  observability.EngineHooks
}

// NewSearcher returns a Searcher. A nil logger uses log.Default() and nil
// hooks use the global registry.
func NewSearcher(cfg config.Group, logger *log.Logger, hooks observability.EngineHooks) *Searcher {
	if logger == nil {
		logger = log.Default()
	}
	if hooks == nil {
		hooks = observability.Engine()
	}
	return &Searcher{cfg: cfg, logger: logger, hooks: hooks}
}

// Result is the full outcome of a search.
type Result struct {
	// Widgets is the inferred group, nil when none was found.
	Widgets []*widget.Widget

	// Best is the highest-scoring candidate, even when its table turned out
	// invalid. Nil when no candidate survived.
	Best *Candidate

	Stats observability.CandidateStats
}

// Infer returns the widgets of the best table candidate among widgets.
// ok is false when no candidate qualifies or the best one does not form a
// valid table.
func (s *Searcher) Infer(widgets []*widget.Widget) (group []*widget.Widget, ok bool) {
	r := s.Search(widgets)
	return r.Widgets, r.Widgets != nil
}

// Search runs the complete inference and reports intermediate statistics.
func (s *Searcher) Search(widgets []*widget.Widget) Result {
	start := time.Now()
	geo := make([]*widget.Widget, 0, len(widgets))
	for _, w := range widgets {
		if !w.IsGuideline() {
			geo = append(geo, w)
		}
	}

	var res Result
	res.Stats.Widgets = len(geo)
	defer func() {
		s.hooks.OnCandidates(res.Stats)
		s.logger.Debug("group search",
			"widgets", res.Stats.Widgets,
			"evaluated", res.Stats.Evaluated,
			"enumerated", res.Stats.Enumerated,
			"reduced", res.Stats.Reduced,
			"viable", res.Stats.Viable,
			"found", res.Widgets != nil,
			"elapsed", time.Since(start))
	}()

	if len(geo) < s.cfg.MinSize {
		return res
	}
	if s.cfg.MaxWidgets > 0 && len(geo) > s.cfg.MaxWidgets {
		s.logger.Warn("group search skipped", "widgets", len(geo), "max", s.cfg.MaxWidgets)
		return res
	}

	rects := make([]geom.Rect, len(geo))
	for i, w := range geo {
		rects[i] = w.Rect()
	}

	cands, evaluated := s.enumerate(geo, rects, widgets)
	res.Stats.Evaluated = evaluated
	res.Stats.Enumerated = len(cands)

	cands = reduce(cands)
	res.Stats.Reduced = len(cands)

	viable := cands[:0]
	for _, c := range cands {
		c.GapArea = gapArea(rects, c.indices())
		if c.Viability() > s.cfg.MinViability {
			viable = append(viable, c)
		}
	}
	res.Stats.Viable = len(viable)

	for _, c := range viable {
		idx := c.indices()
		members := make([]geom.Rect, len(idx))
		for i, j := range idx {
			members[i] = rects[j]
		}
		c.Table = table.Analyze(members)
		c.Score = (c.Table.Confidence + (1 - c.EmptyFraction()) + (1 - 1/float64(c.Count()))) / 3
		if res.Best == nil || c.Score > res.Best.Score {
			res.Best = c
		}
	}
	if res.Best == nil {
		return res
	}
	res.Stats.BestScore = res.Best.Score
	if !res.Best.Table.Valid {
		return res
	}

	for _, i := range res.Best.indices() {
		res.Widgets = append(res.Widgets, geo[i])
	}
	return res
}

// =============================================================================
// Enumeration
// =============================================================================

// box is a widget's collision rectangle. member indexes the searched
// widgets and is -1 for guidelines.
type box struct {
	rect   geom.Rect
	member int
}

// enumerate returns every candidate spanned by distinct edge coordinates
// of geo that no widget in all straddles and that meets the size and fill
// thresholds, along with the number of rectangles it examined. Candidates
// appear in (north, south, west, east) loop order.
//
// Only widgets reaching into a north/south band can affect its candidates,
// so each band is filtered once and skipped outright when it cannot
// vertically hold MinSize widgets.
func (s *Searcher) enumerate(geo []*widget.Widget, rects []geom.Rect, all []*widget.Widget) ([]*Candidate, int) {
	var norths, souths, wests, easts []int
	for _, r := range rects {
		norths = append(norths, r.Y)
		souths = append(souths, r.Bottom())
		wests = append(wests, r.X)
		easts = append(easts, r.Right())
	}
	for _, c := range []*[]int{&norths, &souths, &wests, &easts} {
		slices.Sort(*c)
		*c = slices.Compact(*c)
	}

	index := make(map[*widget.Widget]int, len(geo))
	for i, w := range geo {
		index[w] = i
	}
	boxes := make([]box, len(all))
	for i, w := range all {
		boxes[i] = box{rect: w.Bounds(), member: -1}
		if j, ok := index[w]; ok {
			boxes[i].member = j
		}
	}

	var out []*Candidate
	evaluated := 0
	band := make([]box, 0, len(boxes))
	scratch := bitset.New(uint(len(geo)))
	for _, n := range norths {
		for _, so := range souths {
			if so <= n {
				continue
			}
			top, bottom := n-1, so+1
			band = band[:0]
			inside := 0
			for _, b := range boxes {
				if b.rect.Bottom() < top || b.rect.Y > bottom {
					continue
				}
				band = append(band, b)
				if b.member >= 0 && b.rect.Y >= top && b.rect.Bottom() <= bottom {
					inside++
				}
			}
			if inside < s.cfg.MinSize {
				continue
			}
			for _, we := range wests {
				for _, e := range easts {
					if e <= we {
						continue
					}
					bounds := geom.Rect{X: we - 1, Y: top, Width: e - we + 2, Height: bottom - top}
					evaluated++
					c, stop := s.evaluate(bounds, band, scratch)
					if c != nil {
						out = append(out, c)
					}
					if stop {
						break
					}
				}
			}
		}
	}
	return out, evaluated
}

// evaluate builds the candidate for bounds, or returns nil if a widget in
// band straddles it or it fails the size or fill threshold. stop is true
// when a straddler also sticks out west, north or south, since then every
// wider candidate with the same west, north and south edges fails as well.
// scratch is overwritten.
func (s *Searcher) evaluate(bounds geom.Rect, band []box, scratch *bitset.BitSet) (c *Candidate, stop bool) {
	scratch.ClearAll()
	area, straddled := 0, false
	for _, b := range band {
		if bounds.Contains(b.rect) {
			if b.member >= 0 {
				scratch.Set(uint(b.member))
				area += b.rect.Area()
			}
			continue
		}
		if !b.rect.Intersects(bounds) {
			continue
		}
		if b.rect.X < bounds.X || b.rect.Y < bounds.Y || b.rect.Bottom() > bounds.Bottom() {
			return nil, true
		}
		straddled = true
	}
	if straddled || int(scratch.Count()) < s.cfg.MinSize {
		return nil, false
	}
	if float64(area) < s.cfg.MinFill*float64(bounds.Area()) {
		return nil, false
	}
	return &Candidate{
		Bounds:     bounds,
		Contained:  scratch.Clone(),
		WidgetArea: area,
		GroupArea:  bounds.Area(),
	}, false
}

// =============================================================================
// Redundancy
// =============================================================================

// reduce drops candidates that another candidate makes redundant: of two
// with the same contents the larger one goes, and of two nested ones the
// inner goes when the outer is proportionally fuller. Nested means both the
// contents and the bounds nest.
func reduce(cands []*Candidate) []*Candidate {
	counts := make([]uint, len(cands))
	for i, c := range cands {
		counts[i] = c.Contained.Count()
	}

	dropped := make([]bool, len(cands))
	for i := range cands {
		if dropped[i] {
			continue
		}
		for j := i + 1; j < len(cands); j++ {
			if dropped[j] {
				continue
			}
			a, b := cands[i], cands[j]
			switch {
			case counts[i] == counts[j]:
				if !a.Contained.Equal(b.Contained) {
					break
				}
				if a.GroupArea > b.GroupArea {
					dropped[i] = true
				} else {
					dropped[j] = true
				}
			case counts[i] > counts[j]:
				if a.Fill() > b.Fill() && a.Bounds.Contains(b.Bounds) && a.Contained.IsSuperSet(b.Contained) {
					dropped[j] = true
				}
			default:
				if b.Fill() > a.Fill() && b.Bounds.Contains(a.Bounds) && b.Contained.IsSuperSet(a.Contained) {
					dropped[i] = true
				}
			}
			if dropped[i] {
				break
			}
		}
	}

	out := cands[:0]
	for i, c := range cands {
		if !dropped[i] {
			out = append(out, c)
		}
	}
	return out
}

// =============================================================================
// Gap Area
// =============================================================================

// gapArea sums the areas of the gaps between every non-intersecting pair of
// members that no third member obstructs.
func gapArea(rects []geom.Rect, members []int) int {
	total := 0
	for x := 0; x < len(members); x++ {
		for y := x + 1; y < len(members); y++ {
			a, b := rects[members[x]], rects[members[y]]
			g, ok := gapBetween(a, b)
			if !ok {
				continue
			}
			blocked := false
			for _, k := range members {
				if k == members[x] || k == members[y] {
					continue
				}
				if rects[k].Intersects(g) {
					blocked = true
					break
				}
			}
			if !blocked {
				total += g.Area()
			}
		}
	}
	return total
}

// gapBetween returns the rectangle between a and b. On an axis where the two
// overlap it spans the overlap; on an axis where they are apart it spans the
// separation. ok is false when a and b intersect.
func gapBetween(a, b geom.Rect) (geom.Rect, bool) {
	if a.Intersects(b) {
		return geom.Rect{}, false
	}
	x0, x1 := span(a.X, a.Right(), b.X, b.Right())
	y0, y1 := span(a.Y, a.Bottom(), b.Y, b.Bottom())
	return geom.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// span returns the overlap of [a0,a1) and [b0,b1), or the interval between
// them when they are disjoint.
func span(a0, a1, b0, b1 int) (int, int) {
	lo, hi := max(a0, b0), min(a1, b1)
	if lo <= hi {
		return lo, hi
	}
	return hi, lo
}
