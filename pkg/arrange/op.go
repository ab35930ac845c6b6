package arrange

import (
	"fmt"

	"github.com/matzehuels/scout/pkg/errors"
)

// Op is an arrange operation.
type Op int

const (
	AlignTop Op = iota
	AlignMiddle
	AlignBottom
	AlignBaseline
	AlignLeft
	AlignCenter
	AlignRight
	DistributeVertical
	DistributeHorizontal
	PackVertical
	PackHorizontal
	ExpandVertical
	ExpandHorizontal
	CenterHorizontalInParent
	CenterVerticalInParent
	CenterHorizontal
	CenterVertical
	ConnectTop
	ConnectBottom
	ConnectLeft
	ConnectRight
	ChainHorizontal
	ChainVertical

	opCount
)

type opInfo struct {
	name string
	desc string
}

var opInfos = [opCount]opInfo{
	AlignTop:                 {"align-top", "snap top edges to the topmost widget"},
	AlignMiddle:              {"align-middle", "align vertical centers on their mean"},
	AlignBottom:              {"align-bottom", "snap bottom edges to the lowest widget"},
	AlignBaseline:            {"align-baseline", "align text baselines"},
	AlignLeft:                {"align-left", "snap left edges to the leftmost widget"},
	AlignCenter:              {"align-center", "align horizontal centers on their mean"},
	AlignRight:               {"align-right", "snap right edges to the rightmost widget"},
	DistributeVertical:       {"distribute-vertical", "equalize vertical gaps"},
	DistributeHorizontal:     {"distribute-horizontal", "equalize horizontal gaps"},
	PackVertical:             {"pack-vertical", "move widgets up to one margin from their neighbour"},
	PackHorizontal:           {"pack-horizontal", "move widgets left to one margin from their neighbour"},
	ExpandVertical:           {"expand-vertical", "stretch columns to fill the free vertical space"},
	ExpandHorizontal:         {"expand-horizontal", "stretch rows to fill the free horizontal space"},
	CenterHorizontalInParent: {"center-horizontal-in-parent", "center horizontally in the container"},
	CenterVerticalInParent:   {"center-vertical-in-parent", "center vertically in the container"},
	CenterHorizontal:         {"center-horizontal", "center between the left and right neighbours"},
	CenterVertical:           {"center-vertical", "center between the top and bottom neighbours"},
	ConnectTop:               {"connect-top", "anchor top edges to the neighbour above"},
	ConnectBottom:            {"connect-bottom", "anchor bottom edges to the neighbour below"},
	ConnectLeft:              {"connect-left", "anchor left edges to the neighbour on the left"},
	ConnectRight:             {"connect-right", "anchor right edges to the neighbour on the right"},
	ChainHorizontal:          {"chain-horizontal", "link widgets into a horizontal chain"},
	ChainVertical:            {"chain-vertical", "link widgets into a vertical chain"},
}

// Ops returns every operation in declaration order.
func Ops() []Op {
	ops := make([]Op, opCount)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// Valid reports whether op is a known operation.
func (op Op) Valid() bool {
	return op >= 0 && op < opCount
}

func (op Op) String() string {
	if !op.Valid() {
		return fmt.Sprintf("op(%d)", int(op))
	}
	return opInfos[op].name
}

// Description returns a one-line summary for help output.
func (op Op) Description() string {
	if !op.Valid() {
		return ""
	}
	return opInfos[op].desc
}

// ParseOp converts a kebab-case operation name.
func ParseOp(s string) (Op, error) {
	for i, info := range opInfos {
		if info.name == s {
			return Op(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeUnknownOp, "unknown arrange operation %q", s)
}
