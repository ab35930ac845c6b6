package widget

import (
	"fmt"

	"github.com/matzehuels/scout/pkg/geom"
)

// Kind distinguishes regular views from guidelines.
type Kind int

const (
	KindView Kind = iota
	KindVerticalGuideline
	KindHorizontalGuideline
)

var kindNames = map[Kind]string{
	KindView:                "view",
	KindVerticalGuideline:   "vguide",
	KindHorizontalGuideline: "hguide",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a kind name. The empty string means a view.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindView, nil
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindView, fmt.Errorf("unknown widget kind %q", s)
}

// Behavior is how a widget sizes itself along one axis.
type Behavior int

const (
	Fixed Behavior = iota
	Wrap
	Match
)

var behaviorNames = map[Behavior]string{
	Fixed: "fixed",
	Wrap:  "wrap",
	Match: "match",
}

func (b Behavior) String() string {
	if s, ok := behaviorNames[b]; ok {
		return s
	}
	return fmt.Sprintf("behavior(%d)", int(b))
}

// ParseBehavior converts a behaviour name. The empty string means Fixed.
func ParseBehavior(s string) (Behavior, error) {
	if s == "" {
		return Fixed, nil
	}
	for b, name := range behaviorNames {
		if name == s {
			return b, nil
		}
	}
	return Fixed, fmt.Errorf("unknown dimension behavior %q", s)
}

// AnchorType names a connection point on a widget.
type AnchorType int

const (
	Left AnchorType = iota
	Top
	Right
	Bottom
	Baseline
	CenterX
	CenterY
)

// AnchorTypes lists every anchor type in declaration order.
var AnchorTypes = []AnchorType{Left, Top, Right, Bottom, Baseline, CenterX, CenterY}

var anchorNames = [...]string{"left", "top", "right", "bottom", "baseline", "center_x", "center_y"}

func (a AnchorType) String() string {
	if a >= 0 && int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("anchor(%d)", int(a))
}

// ParseAnchorType converts an anchor name such as "left" or "center_x".
func ParseAnchorType(s string) (AnchorType, error) {
	for i, name := range anchorNames {
		if name == s {
			return AnchorType(i), nil
		}
	}
	return Left, fmt.Errorf("unknown anchor type %q", s)
}

// Opposite returns the anchor on the other side of the same axis.
// Baseline and center anchors are their own opposite.
func (a AnchorType) Opposite() AnchorType {
	switch a {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	case Bottom:
		return Top
	default:
		return a
	}
}

// AnchorFor maps a search direction to the side anchor facing it.
func AnchorFor(d geom.Direction) AnchorType {
	switch d {
	case geom.North:
		return Top
	case geom.South:
		return Bottom
	case geom.West:
		return Left
	default:
		return Right
	}
}

// Connection is the target of an anchor.
type Connection struct {
	Target     *Widget
	TargetType AnchorType
	Margin     int
}

// Anchor is a connected anchor of a widget, as returned by [Widget.Anchors].
type Anchor struct {
	Type AnchorType
	Connection
}
