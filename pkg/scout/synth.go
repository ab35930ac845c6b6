package scout

import (
	"github.com/matzehuels/scout/pkg/arrange"
	"github.com/matzehuels/scout/pkg/widget"
)

// Synthesizer derives anchor constraints for the children of one container.
// The container's origin is zero for the duration of the call.
type Synthesizer interface {
	Synthesize(container *widget.Widget, children []*widget.Widget) error
}

// SynthesizerFunc adapts a function to Synthesizer.
type SynthesizerFunc func(container *widget.Widget, children []*widget.Widget) error

func (f SynthesizerFunc) Synthesize(container *widget.Widget, children []*widget.Widget) error {
	return f(container, children)
}

// NeighborSynthesizer connects every child that lacks a horizontal anchor
// to its nearest neighbour on the left, and every child that lacks a
// vertical anchor to its nearest neighbour above. Current gaps become the
// margins, so positions are preserved.
type NeighborSynthesizer struct {
	Arranger *arrange.Arranger
}

func (s *NeighborSynthesizer) Synthesize(container *widget.Widget, children []*widget.Widget) error {
	var left, top []*widget.Widget
	for _, c := range children {
		if c.IsGuideline() {
			continue
		}
		if !c.IsHorizontallyConstrained() {
			left = append(left, c)
		}
		if !c.IsVerticallyConstrained() {
			top = append(top, c)
		}
	}

	a := s.Arranger
	if a == nil {
		a = arrange.New(0, nil)
	}
	if len(left) > 0 {
		if err := a.Align(arrange.ConnectLeft, left, false); err != nil {
			return err
		}
	}
	if len(top) > 0 {
		if err := a.Align(arrange.ConnectTop, top, false); err != nil {
			return err
		}
	}
	return nil
}
