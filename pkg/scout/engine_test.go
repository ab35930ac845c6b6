package scout

import (
	"io"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scout/pkg/arrange"
	"github.com/matzehuels/scout/pkg/config"
	"github.com/matzehuels/scout/pkg/errors"
	"github.com/matzehuels/scout/pkg/geom"
	"github.com/matzehuels/scout/pkg/observability"
	"github.com/matzehuels/scout/pkg/table"
	"github.com/matzehuels/scout/pkg/widget"
)

type recordingHooks struct {
	observability.NoopEngineHooks
	arranges    []string
	groups      []bool
	synthesized []string
}

func (h *recordingHooks) OnArrange(op string, _ int, _ bool, _ time.Duration, _ error) {
	h.arranges = append(h.arranges, op)
}

func (h *recordingHooks) OnGroupInferred(_ string, _ int, found bool, _ time.Duration) {
	h.groups = append(h.groups, found)
}

func (h *recordingHooks) OnSynthesize(container string, _ int, _ time.Duration, _ error) {
	h.synthesized = append(h.synthesized, container)
}

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return New(config.Default(), opts...)
}

func gridContainer() *widget.Widget {
	widths := [3][4]int{{40, 40, 40, 36}, {38, 38, 38, 40}, {36, 36, 36, 38}}
	root := widget.NewContainer("form", 0, 0, 400, 300)
	for row := 0; row < 3; row++ {
		y := row * 30
		w := widths[row]
		for col, r := range []geom.Rect{
			geom.NewRect(0, y, w[0], 20),
			geom.NewRect(70-w[1]/2, y, w[1], 20),
			geom.NewRect(140-w[2], y, w[2], 20),
			geom.NewRect(150, y, w[3], 20),
		} {
			c := widget.New("", r.X, r.Y, r.Width, r.Height)
			c.ID = string(rune('a'+row)) + string(rune('0'+col))
			root.AddChild(c)
		}
	}
	return root
}

func TestEngineAlign(t *testing.T) {
	hooks := &recordingHooks{}
	e := newTestEngine(WithHooks(hooks))

	root := widget.NewContainer("root", 0, 0, 200, 200)
	a := widget.New("a", 30, 10, 20, 20)
	b := widget.New("b", 10, 50, 20, 20)
	root.AddChild(a)
	root.AddChild(b)

	if err := e.Align(arrange.AlignLeft, []*widget.Widget{a, b}, false); err != nil {
		t.Fatal(err)
	}
	if a.X != 10 {
		t.Errorf("a.X = %d, want 10", a.X)
	}
	if err := e.Align(arrange.AlignLeft, nil, false); !errors.Is(err, errors.ErrCodeEmptySelection) {
		t.Errorf("empty Align() error = %v", err)
	}
	if !slices.Equal(hooks.arranges, []string{"align-left", "align-left"}) {
		t.Errorf("OnArrange calls = %v", hooks.arranges)
	}
}

func TestWrap(t *testing.T) {
	e := newTestEngine()
	c := widget.NewContainer("panel", 5, 5, 500, 500)
	c.Horizontal = widget.Match
	a := widget.New("a", 50, 60, 20, 20)
	b := widget.New("b", 100, 120, 30, 10)
	guide := widget.NewGuideline("guide", widget.KindVerticalGuideline, 300)
	c.AddChild(a)
	c.AddChild(b)
	c.AddChild(guide)

	if err := e.Wrap(c); err != nil {
		t.Fatal(err)
	}

	if got, want := a.Rect(), geom.NewRect(8, 8, 20, 20); got != want {
		t.Errorf("a = %v, want %v", got, want)
	}
	if got, want := b.Rect(), geom.NewRect(58, 68, 30, 10); got != want {
		t.Errorf("b = %v, want %v", got, want)
	}
	if guide.X != 258 {
		t.Errorf("guide.X = %d, want 258", guide.X)
	}
	if c.Width != 96 || c.Height != 86 {
		t.Errorf("container size = %dx%d, want 96x86", c.Width, c.Height)
	}
	if c.X != 5 || c.Y != 5 {
		t.Errorf("container moved to (%d,%d)", c.X, c.Y)
	}
	if c.Horizontal != widget.Fixed || c.Vertical != widget.Fixed {
		t.Errorf("behaviours = %v/%v, want fixed", c.Horizontal, c.Vertical)
	}
}

func TestWrapErrors(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		name string
		c    *widget.Widget
		code errors.Code
	}{
		{"nil container", nil, errors.ErrCodeInvalidInput},
		{"no children", widget.NewContainer("empty", 0, 0, 10, 10), errors.ErrCodeEmptySelection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := e.Wrap(tt.c); !errors.Is(err, tt.code) {
				t.Errorf("Wrap() error = %v, want %s", err, tt.code)
			}
		})
	}
}

// buildTree returns a root holding a regular panel, a panel that manages
// its own constraints, and a loose widget.
func buildTree() (root, panel, locked *widget.Widget) {
	root = widget.NewContainer("root", 0, 0, 400, 300)
	panel = widget.NewContainer("panel", 50, 40, 200, 100)
	panel.AddChild(widget.New("p1", 10, 10, 20, 20))
	panel.AddChild(widget.New("p2", 50, 10, 20, 20))
	locked = widget.NewContainer("locked", 250, 40, 100, 100)
	locked.HandlesOwnConstraints = true
	locked.AddChild(widget.New("l1", 10, 10, 20, 20))
	root.AddChild(panel)
	root.AddChild(locked)
	root.AddChild(widget.New("r1", 10, 200, 30, 20))
	return root, panel, locked
}

func TestInferConstraintsOrder(t *testing.T) {
	root, panel, _ := buildTree()
	hooks := &recordingHooks{}

	var seen []string
	synth := SynthesizerFunc(func(c *widget.Widget, children []*widget.Widget) error {
		if c.X != 0 || c.Y != 0 {
			t.Errorf("%s origin = (%d,%d) during synthesis", c.ID, c.X, c.Y)
		}
		if !slices.Equal(children, c.Children()) {
			t.Errorf("%s: children mismatch", c.ID)
		}
		seen = append(seen, c.ID)
		return nil
	})

	e := newTestEngine(WithHooks(hooks), WithSynthesizer(synth))
	if err := e.InferConstraints(root); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(seen, []string{"panel", "root"}) {
		t.Errorf("synthesized %v, want [panel root]", seen)
	}
	if !slices.Equal(hooks.synthesized, seen) {
		t.Errorf("OnSynthesize calls = %v", hooks.synthesized)
	}
	if panel.X != 50 || panel.Y != 40 {
		t.Errorf("panel origin not restored: (%d,%d)", panel.X, panel.Y)
	}
}

func TestInferConstraintsNeighbors(t *testing.T) {
	root, panel, locked := buildTree()
	if err := newTestEngine().InferConstraints(root); err != nil {
		t.Fatal(err)
	}
	p1, p2 := panel.Find("p1"), panel.Find("p2")
	l1, r1 := locked.Find("l1"), root.Find("r1")

	tests := []struct {
		w      *widget.Widget
		anchor widget.AnchorType
		target *widget.Widget
		tt     widget.AnchorType
		margin int
	}{
		{p1, widget.Left, panel, widget.Left, 10},
		{p1, widget.Top, panel, widget.Top, 10},
		{p2, widget.Left, p1, widget.Right, 20},
		{p2, widget.Top, panel, widget.Top, 10},
		{panel, widget.Left, root, widget.Left, 50},
		{panel, widget.Top, root, widget.Top, 40},
		{locked, widget.Left, panel, widget.Right, 0},
		{r1, widget.Top, root, widget.Top, 200},
	}
	for _, tt := range tests {
		t.Run(tt.w.ID+"."+tt.anchor.String(), func(t *testing.T) {
			c, ok := tt.w.Anchor(tt.anchor)
			if !ok {
				t.Fatal("not connected")
			}
			if c.Target != tt.target || c.TargetType != tt.tt || c.Margin != tt.margin {
				t.Errorf("got %s.%s+%d, want %s.%s+%d",
					c.Target.ID, c.TargetType, c.Margin, tt.target.ID, tt.tt, tt.margin)
			}
		})
	}

	if len(l1.Anchors()) != 0 {
		t.Errorf("widget inside self-managed container was constrained: %v", l1.Anchors())
	}
}

func TestInferConstraintsKeepsExistingAnchors(t *testing.T) {
	root, panel, _ := buildTree()
	p2 := panel.Find("p2")
	p2.Connect(widget.Right, panel, widget.Right, 130)

	if err := newTestEngine().InferConstraints(root); err != nil {
		t.Fatal(err)
	}
	if p2.IsConnected(widget.Left) {
		t.Error("horizontally constrained widget gained a left anchor")
	}
	if !p2.IsConnected(widget.Top) {
		t.Error("vertical anchor missing")
	}
}

func TestInferConstraintsError(t *testing.T) {
	root, _, _ := buildTree()
	boom := errors.New(errors.ErrCodeNotFound, "boom")
	e := newTestEngine(WithSynthesizer(SynthesizerFunc(func(*widget.Widget, []*widget.Widget) error {
		return boom
	})))

	err := e.InferConstraints(root)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Fatalf("InferConstraints() error = %v", err)
	}
	if err := e.InferConstraints(nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("nil root error = %v", err)
	}
}

func TestInferTableGroup(t *testing.T) {
	hooks := &recordingHooks{}
	e := newTestEngine(WithHooks(hooks))
	root := gridContainer()

	ws, err := e.InferTableGroup(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(ws) != 12 {
		t.Fatalf("group size = %d, want 12", len(ws))
	}

	l, err := e.AnalyzeGroup(ws)
	if err != nil {
		t.Fatal(err)
	}
	if l.Rows != 3 || l.Cols != 4 {
		t.Errorf("table = %dx%d, want 3x4", l.Rows, l.Cols)
	}
	want := []table.Alignment{table.Left, table.Center, table.Right, table.Left}
	if !slices.Equal(l.Alignment, want) {
		t.Errorf("Alignment = %v, want %v", l.Alignment, want)
	}

	small := widget.NewContainer("small", 0, 0, 100, 100)
	small.AddChild(widget.New("x", 0, 0, 10, 10))
	ws, err = e.InferTableGroup(small)
	if err != nil || ws != nil {
		t.Errorf("InferTableGroup(small) = %v, %v; want nil, nil", ws, err)
	}

	if !slices.Equal(hooks.groups, []bool{true, false}) {
		t.Errorf("OnGroupInferred found = %v", hooks.groups)
	}
}

func TestInferTableGroupTooLarge(t *testing.T) {
	cfg := config.Default()
	cfg.Group.MaxWidgets = 5
	e := New(cfg, WithLogger(log.New(io.Discard)))

	if _, err := e.InferTableGroup(gridContainer()); !errors.Is(err, errors.ErrCodeTooLarge) {
		t.Errorf("InferTableGroup() error = %v, want TOO_LARGE", err)
	}
	if _, err := e.InferTableGroup(nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("nil root error = %v", err)
	}
}

func TestAnalyzeGroupSkipCounts(t *testing.T) {
	e := newTestEngine()
	a := widget.New("a", 0, 0, 10, 10)
	b := widget.New("b", 20, 0, 10, 10)
	c := widget.New("c", 20, 20, 10, 10)

	l, err := e.AnalyzeGroup([]*widget.Widget{a, b, c})
	if err != nil {
		t.Fatal(err)
	}
	if !l.Valid {
		t.Fatal("layout should be valid")
	}
	if a.SkipCount != 0 || b.SkipCount != 1 || c.SkipCount != 0 {
		t.Errorf("skips = %d,%d,%d, want 0,1,0", a.SkipCount, b.SkipCount, c.SkipCount)
	}

	if _, err := e.AnalyzeGroup(nil); !errors.Is(err, errors.ErrCodeEmptySelection) {
		t.Errorf("AnalyzeGroup(nil) error = %v", err)
	}
}
