package arrange

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scout/pkg/errors"
	"github.com/matzehuels/scout/pkg/geom"
	"github.com/matzehuels/scout/pkg/widget"
)

// Arranger applies arrange operations to widget selections.
type Arranger struct {
	// Margin is the spacing used by pack and expand.
	Margin int

	Logger *log.Logger
}

// New creates an Arranger. A nil logger uses log.Default().
func New(margin int, logger *log.Logger) *Arranger {
	if logger == nil {
		logger = log.Default()
	}
	return &Arranger{Margin: margin, Logger: logger}
}

// Align applies op to widgets, which must be non-empty and share a parent.
// With applyConstraints the operation also emits anchor connections.
// The caller's slice is not reordered.
func (a *Arranger) Align(op Op, widgets []*widget.Widget, applyConstraints bool) error {
	if !op.Valid() {
		return errors.New(errors.ErrCodeUnknownOp, "unknown arrange operation %d", int(op))
	}
	if len(widgets) == 0 {
		return errors.New(errors.ErrCodeEmptySelection, "%s: no widgets selected", op)
	}
	parent, ok := widget.CommonParent(widgets)
	if !ok {
		return errors.New(errors.ErrCodeNoCommonParent, "%s: widgets do not share a parent", op)
	}

	ws := slices.Clone(widgets)
	switch op {
	case AlignLeft, AlignCenter, AlignRight:
		sortByY(ws)
		reverseIfFarther(ws, parent)
	case AlignTop, AlignMiddle, AlignBottom, AlignBaseline:
		sortByX(ws)
		reverseIfFarther(ws, parent)
	case DistributeVertical:
		sortByY(ws)
	case DistributeHorizontal:
		sortByX(ws)
	}

	a.Logger.Debug("arrange", "op", op, "widgets", len(ws), "constraints", applyConstraints, "parent", parent.ID)

	switch op {
	case AlignLeft:
		alignSide(ws, widget.Left, applyConstraints)
	case AlignRight:
		alignSide(ws, widget.Right, applyConstraints)
	case AlignTop:
		alignSide(ws, widget.Top, applyConstraints)
	case AlignBottom:
		alignSide(ws, widget.Bottom, applyConstraints)
	case AlignCenter:
		alignCenters(ws, false, applyConstraints)
	case AlignMiddle:
		alignCenters(ws, true, applyConstraints)
	case AlignBaseline:
		alignBaselines(ws, applyConstraints)
	case DistributeVertical:
		return distribute(ws, parent, true, applyConstraints)
	case DistributeHorizontal:
		return distribute(ws, parent, false, applyConstraints)
	case PackVertical:
		a.pack(ws, parent, true)
	case PackHorizontal:
		a.pack(ws, parent, false)
	case ExpandVertical:
		a.expand(ws, parent, true)
	case ExpandHorizontal:
		a.expand(ws, parent, false)
	case CenterHorizontalInParent:
		centerInParent(ws, parent, false, applyConstraints)
	case CenterVerticalInParent:
		centerInParent(ws, parent, true, applyConstraints)
	case CenterHorizontal:
		centerBetween(ws, parent, false, applyConstraints)
	case CenterVertical:
		centerBetween(ws, parent, true, applyConstraints)
	case ConnectTop:
		connect(ws, parent, geom.North, applyConstraints)
	case ConnectBottom:
		connect(ws, parent, geom.South, applyConstraints)
	case ConnectLeft:
		connect(ws, parent, geom.West, applyConstraints)
	case ConnectRight:
		connect(ws, parent, geom.East, applyConstraints)
	case ChainHorizontal:
		chain(ws, parent, false)
	case ChainVertical:
		chain(ws, parent, true)
	}
	return nil
}

// =============================================================================
// Ordering
// =============================================================================

func sortByX(ws []*widget.Widget) {
	slices.SortStableFunc(ws, func(a, b *widget.Widget) int { return cmp.Compare(a.X, b.X) })
}

func sortByY(ws []*widget.Widget) {
	slices.SortStableFunc(ws, func(a, b *widget.Widget) int { return cmp.Compare(a.Y, b.Y) })
}

// reverseIfFarther flips ws when its first widget sits farther from the
// parent's edges than its last, so anchor chains start near an edge.
func reverseIfFarther(ws []*widget.Widget, parent *widget.Widget) {
	if rootDistance(ws[0], parent) > rootDistance(ws[len(ws)-1], parent) {
		slices.Reverse(ws)
	}
}

// geometric returns the widgets of ws that are not guidelines.
func geometric(ws []*widget.Widget) []*widget.Widget {
	out := make([]*widget.Widget, 0, len(ws))
	for _, w := range ws {
		if !w.IsGuideline() {
			out = append(out, w)
		}
	}
	return out
}

func boundingBox(ws []*widget.Widget) (geom.Rect, bool) {
	rects := make([]geom.Rect, 0, len(ws))
	for _, w := range ws {
		if !w.IsGuideline() {
			rects = append(rects, w.Rect())
		}
	}
	return geom.Bounds(rects)
}
