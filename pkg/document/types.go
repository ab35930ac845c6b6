package document

// Document is the serialized form of a widget tree.
type Document struct {
	Root Node `json:"root" toml:"root"`
}

// Node is one serialized widget.
type Node struct {
	ID     string `json:"id,omitempty" toml:"id,omitempty"`
	Kind   string `json:"kind,omitempty" toml:"kind,omitempty"` // "view" (default), "vguide" or "hguide"
	X      int    `json:"x,omitempty" toml:"x,omitempty"`
	Y      int    `json:"y,omitempty" toml:"y,omitempty"`
	Width  int    `json:"width,omitempty" toml:"width,omitempty"`
	Height int    `json:"height,omitempty" toml:"height,omitempty"`

	Baseline   int    `json:"baseline,omitempty" toml:"baseline,omitempty"`
	Horizontal string `json:"horizontal,omitempty" toml:"horizontal,omitempty"` // "fixed" (default), "wrap" or "match"
	Vertical   string `json:"vertical,omitempty" toml:"vertical,omitempty"`

	// Biases default to 0.5 and are omitted at that value.
	HorizontalBias *float64 `json:"horizontal_bias,omitempty" toml:"horizontal_bias,omitempty"`
	VerticalBias   *float64 `json:"vertical_bias,omitempty" toml:"vertical_bias,omitempty"`

	SkipCount             int  `json:"skip_count,omitempty" toml:"skip_count,omitempty"`
	HandlesOwnConstraints bool `json:"handles_own_constraints,omitempty" toml:"handles_own_constraints,omitempty"`

	// Container marks an empty container; nodes with children are always
	// containers.
	Container bool `json:"container,omitempty" toml:"container,omitempty"`

	Anchors  []Anchor `json:"anchors,omitempty" toml:"anchors,omitempty"`
	Children []Node   `json:"children,omitempty" toml:"children,omitempty"`
}

// Anchor is one serialized connection.
type Anchor struct {
	Type       string `json:"type" toml:"type"`
	Target     string `json:"target" toml:"target"`
	TargetType string `json:"target_type" toml:"target_type"`
	Margin     int    `json:"margin,omitempty" toml:"margin,omitempty"`
}
