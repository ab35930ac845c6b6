package widget

import (
	"slices"

	"github.com/matzehuels/scout/pkg/geom"
)

// Widget is a rectangle in its parent's coordinate space.
type Widget struct {
	ID   string
	Kind Kind

	X, Y          int
	Width, Height int

	// Baseline is the text baseline offset from the widget's top edge.
	Baseline int

	Horizontal, Vertical         Behavior
	HorizontalBias, VerticalBias float64

	// SkipCount is the number of empty table cells preceding this widget.
	SkipCount int

	// HandlesOwnConstraints opts the widget's subtree out of inference.
	HandlesOwnConstraints bool

	parent    *Widget
	children  []*Widget
	container bool
	anchors   map[AnchorType]Connection
}

// New creates a leaf widget.
func New(id string, x, y, width, height int) *Widget {
	return &Widget{
		ID:             id,
		X:              x,
		Y:              y,
		Width:          width,
		Height:         height,
		HorizontalBias: 0.5,
		VerticalBias:   0.5,
	}
}

// NewContainer creates a widget that can own children.
func NewContainer(id string, x, y, width, height int) *Widget {
	w := New(id, x, y, width, height)
	w.container = true
	return w
}

// NewGuideline creates a guideline at pos along the axis the kind implies.
// A vertical guideline sits at x=pos, a horizontal one at y=pos.
func NewGuideline(id string, kind Kind, pos int) *Widget {
	w := New(id, 0, 0, 0, 0)
	w.Kind = kind
	if kind == KindVerticalGuideline {
		w.X = pos
	} else {
		w.Y = pos
	}
	return w
}

// IsGuideline reports whether w is a non-geometric helper line.
func (w *Widget) IsGuideline() bool {
	return w.Kind == KindVerticalGuideline || w.Kind == KindHorizontalGuideline
}

// Rect returns the widget's rectangle.
func (w *Widget) Rect() geom.Rect {
	return geom.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// SetRect moves and resizes the widget.
func (w *Widget) SetRect(r geom.Rect) {
	w.X, w.Y, w.Width, w.Height = r.X, r.Y, r.Width, r.Height
}

// Bounds returns the rectangle used for collision checks. Guidelines are
// stretched across their parent and are at least one unit thick; everything
// else is [Widget.Rect].
func (w *Widget) Bounds() geom.Rect {
	if w.parent == nil || !w.IsGuideline() {
		return w.Rect()
	}
	if w.Kind == KindVerticalGuideline {
		return geom.Rect{X: w.X, Y: 0, Width: max(w.Width, 1), Height: w.parent.Height}
	}
	return geom.Rect{X: 0, Y: w.Y, Width: w.parent.Width, Height: max(w.Height, 1)}
}

// =============================================================================
// Tree
// =============================================================================

// Parent returns the owning container, or nil for a root.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// IsContainer reports whether w was created as a container.
func (w *Widget) IsContainer() bool {
	return w.container
}

// Children returns the ordered children. The slice must not be modified.
func (w *Widget) Children() []*Widget {
	return w.children
}

// AddChild appends c, detaching it from any previous parent.
// It also turns w into a container.
func (w *Widget) AddChild(c *Widget) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	w.container = true
	c.parent = w
	w.children = append(w.children, c)
}

// RemoveChild detaches c. It reports whether c was a child of w.
func (w *Widget) RemoveChild(c *Widget) bool {
	i := slices.Index(w.children, c)
	if i < 0 {
		return false
	}
	w.children = slices.Delete(w.children, i, i+1)
	c.parent = nil
	return true
}

// Walk visits w and its descendants in pre-order. Returning false from fn
// skips the subtree below the visited widget.
func (w *Widget) Walk(fn func(*Widget) bool) {
	if !fn(w) {
		return
	}
	for _, c := range w.children {
		c.Walk(fn)
	}
}

// Find returns the widget with the given ID in w's subtree.
func (w *Widget) Find(id string) *Widget {
	var found *Widget
	w.Walk(func(n *Widget) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// CommonParent returns the parent shared by every widget in ws.
// ok is false if ws is empty, any widget is a root, or parents differ.
func CommonParent(ws []*Widget) (parent *Widget, ok bool) {
	if len(ws) == 0 || ws[0].parent == nil {
		return nil, false
	}
	parent = ws[0].parent
	for _, w := range ws[1:] {
		if w.parent != parent {
			return nil, false
		}
	}
	return parent, true
}

// =============================================================================
// Anchors
// =============================================================================

// Connect links anchor src of w to anchor targetType of target.
// Any previous connection of src is replaced.
func (w *Widget) Connect(src AnchorType, target *Widget, targetType AnchorType, margin int) {
	if w.anchors == nil {
		w.anchors = make(map[AnchorType]Connection)
	}
	w.anchors[src] = Connection{Target: target, TargetType: targetType, Margin: margin}
}

// Reset clears anchor t.
func (w *Widget) Reset(t AnchorType) {
	delete(w.anchors, t)
}

// ResetAll clears every anchor.
func (w *Widget) ResetAll() {
	clear(w.anchors)
}

// Anchor returns the connection of anchor t.
func (w *Widget) Anchor(t AnchorType) (Connection, bool) {
	c, ok := w.anchors[t]
	return c, ok
}

// IsConnected reports whether anchor t has a target.
func (w *Widget) IsConnected(t AnchorType) bool {
	_, ok := w.anchors[t]
	return ok
}

// IsConnectedTo reports whether anchor t targets the given widget.
func (w *Widget) IsConnectedTo(t AnchorType, target *Widget) bool {
	c, ok := w.anchors[t]
	return ok && c.Target == target
}

// IsVerticallyConstrained reports whether top, bottom or baseline is connected.
func (w *Widget) IsVerticallyConstrained() bool {
	return w.IsConnected(Top) || w.IsConnected(Bottom) || w.IsConnected(Baseline)
}

// IsHorizontallyConstrained reports whether left, right or center_x is connected.
func (w *Widget) IsHorizontallyConstrained() bool {
	return w.IsConnected(Left) || w.IsConnected(Right) || w.IsConnected(CenterX)
}

// Anchors returns the connected anchors ordered by type.
func (w *Widget) Anchors() []Anchor {
	out := make([]Anchor, 0, len(w.anchors))
	for _, t := range AnchorTypes {
		if c, ok := w.anchors[t]; ok {
			out = append(out, Anchor{Type: t, Connection: c})
		}
	}
	return out
}
