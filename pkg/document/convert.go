package document

import (
	"github.com/google/uuid"

	"github.com/matzehuels/scout/pkg/errors"
	"github.com/matzehuels/scout/pkg/widget"
)

const defaultBias = 0.5

// =============================================================================
// Document → Widgets
// =============================================================================

// Build turns doc into a widget tree and returns its root.
// Missing IDs are filled in with UUIDs, which is visible in doc afterwards.
func Build(doc *Document) (*widget.Widget, error) {
	b := builder{byID: make(map[string]*widget.Widget)}
	root, err := b.node(&doc.Root)
	if err != nil {
		return nil, err
	}
	if err := b.link(&doc.Root); err != nil {
		return nil, err
	}
	return root, nil
}

type builder struct {
	byID map[string]*widget.Widget
}

func (b *builder) node(n *Node) (*widget.Widget, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if err := errors.ValidateWidgetID(n.ID); err != nil {
		return nil, err
	}
	if _, dup := b.byID[n.ID]; dup {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "duplicate widget id %q", n.ID)
	}
	if err := errors.ValidateSize(n.ID, n.Width, n.Height); err != nil {
		return nil, err
	}

	var w *widget.Widget
	if n.Container || len(n.Children) > 0 {
		w = widget.NewContainer(n.ID, n.X, n.Y, n.Width, n.Height)
	} else {
		w = widget.New(n.ID, n.X, n.Y, n.Width, n.Height)
	}
	b.byID[n.ID] = w

	var err error
	if n.Kind != "" {
		if w.Kind, err = widget.ParseKind(n.Kind); err != nil {
			return nil, wrapField(err, n.ID, "kind")
		}
	}
	if n.Horizontal != "" {
		if w.Horizontal, err = widget.ParseBehavior(n.Horizontal); err != nil {
			return nil, wrapField(err, n.ID, "horizontal")
		}
	}
	if n.Vertical != "" {
		if w.Vertical, err = widget.ParseBehavior(n.Vertical); err != nil {
			return nil, wrapField(err, n.ID, "vertical")
		}
	}
	if n.HorizontalBias != nil {
		w.HorizontalBias = *n.HorizontalBias
	}
	if n.VerticalBias != nil {
		w.VerticalBias = *n.VerticalBias
	}
	w.Baseline = n.Baseline
	w.SkipCount = n.SkipCount
	w.HandlesOwnConstraints = n.HandlesOwnConstraints

	for i := range n.Children {
		c, err := b.node(&n.Children[i])
		if err != nil {
			return nil, err
		}
		w.AddChild(c)
	}
	return w, nil
}

// link resolves anchors once every widget exists, so anchors may point
// forward in document order.
func (b *builder) link(n *Node) error {
	w := b.byID[n.ID]
	for _, a := range n.Anchors {
		src, err := widget.ParseAnchorType(a.Type)
		if err != nil {
			return wrapField(err, n.ID, "anchor type")
		}
		dst, err := widget.ParseAnchorType(a.TargetType)
		if err != nil {
			return wrapField(err, n.ID, "anchor target_type")
		}
		target, ok := b.byID[a.Target]
		if !ok {
			return errors.New(errors.ErrCodeInvalidDocument,
				"widget %s: anchor %s targets unknown widget %q", n.ID, a.Type, a.Target)
		}
		w.Connect(src, target, dst, a.Margin)
	}
	for i := range n.Children {
		if err := b.link(&n.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

func wrapField(err error, id, field string) error {
	return errors.Wrap(errors.ErrCodeInvalidDocument, err, "widget %s: invalid %s", id, field)
}

// =============================================================================
// Widgets → Document
// =============================================================================

// FromWidget serializes the tree rooted at root.
func FromWidget(root *widget.Widget) Document {
	return Document{Root: fromWidget(root)}
}

func fromWidget(w *widget.Widget) Node {
	n := Node{
		ID:                    w.ID,
		X:                     w.X,
		Y:                     w.Y,
		Width:                 w.Width,
		Height:                w.Height,
		Baseline:              w.Baseline,
		SkipCount:             w.SkipCount,
		HandlesOwnConstraints: w.HandlesOwnConstraints,
	}
	if w.Kind != widget.KindView {
		n.Kind = w.Kind.String()
	}
	if w.Horizontal != widget.Fixed {
		n.Horizontal = w.Horizontal.String()
	}
	if w.Vertical != widget.Fixed {
		n.Vertical = w.Vertical.String()
	}
	if w.HorizontalBias != defaultBias {
		bias := w.HorizontalBias
		n.HorizontalBias = &bias
	}
	if w.VerticalBias != defaultBias {
		bias := w.VerticalBias
		n.VerticalBias = &bias
	}
	for _, a := range w.Anchors() {
		n.Anchors = append(n.Anchors, Anchor{
			Type:       a.Type.String(),
			Target:     a.Target.ID,
			TargetType: a.TargetType.String(),
			Margin:     a.Margin,
		})
	}
	for _, c := range w.Children() {
		n.Children = append(n.Children, fromWidget(c))
	}
	n.Container = w.IsContainer() && len(n.Children) == 0
	return n
}
