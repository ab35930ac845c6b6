package scout

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scout/pkg/arrange"
	"github.com/matzehuels/scout/pkg/config"
	"github.com/matzehuels/scout/pkg/errors"
	"github.com/matzehuels/scout/pkg/geom"
	"github.com/matzehuels/scout/pkg/group"
	"github.com/matzehuels/scout/pkg/observability"
	"github.com/matzehuels/scout/pkg/table"
	"github.com/matzehuels/scout/pkg/widget"
)

// Engine runs layout operations with a fixed configuration.
type Engine struct {
	cfg      config.Config
	logger   *log.Logger
	hooks    observability.EngineHooks
	synth    Synthesizer
	arranger *arrange.Arranger
	searcher *group.Searcher
}

// Option configures an Engine.
type Option func(*Engine)

func WithLogger(l *log.Logger) Option              { return func(e *Engine) { e.logger = l } }
func WithHooks(h observability.EngineHooks) Option { return func(e *Engine) { e.hooks = h } }
func WithSynthesizer(s Synthesizer) Option         { return func(e *Engine) { e.synth = s } }

// New creates an Engine. Without options it logs to log.Default(), reports
// to the global hooks and synthesizes constraints with a NeighborSynthesizer.
func New(cfg config.Config, opts ...Option) *Engine {
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	if e.hooks == nil {
		e.hooks = observability.Engine()
	}
	e.arranger = arrange.New(cfg.Margin, e.logger)
	if e.synth == nil {
		e.synth = &NeighborSynthesizer{Arranger: e.arranger}
	}
	e.searcher = group.NewSearcher(cfg.Group, e.logger, e.hooks)
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() config.Config { return e.cfg }

// Align applies op to widgets. See [arrange.Arranger.Align].
func (e *Engine) Align(op arrange.Op, widgets []*widget.Widget, applyConstraints bool) error {
	start := time.Now()
	err := e.arranger.Align(op, widgets, applyConstraints)
	e.hooks.OnArrange(op.String(), len(widgets), applyConstraints, time.Since(start), err)
	return err
}

// Wrap shrinks container around its children: the children's bounding box
// grown by the configured margin becomes the container size, the children
// are shifted so that box starts at the origin, and both dimension
// behaviours become fixed. Guidelines are shifted but do not contribute to
// the box.
func (e *Engine) Wrap(container *widget.Widget) error {
	if container == nil {
		return errors.New(errors.ErrCodeInvalidInput, "wrap: nil container")
	}
	var rects []geom.Rect
	for _, c := range container.Children() {
		if !c.IsGuideline() {
			rects = append(rects, c.Rect())
		}
	}
	box, ok := geom.Bounds(rects)
	if !ok {
		return errors.New(errors.ErrCodeEmptySelection, "wrap %s: no children to wrap", container.ID)
	}
	box = box.Outset(e.cfg.Margin)

	for _, c := range container.Children() {
		switch c.Kind {
		case widget.KindVerticalGuideline:
			c.X -= box.X
		case widget.KindHorizontalGuideline:
			c.Y -= box.Y
		default:
			c.SetRect(c.Rect().Translate(-box.X, -box.Y))
		}
	}
	container.Horizontal = widget.Fixed
	container.Vertical = widget.Fixed
	container.Width, container.Height = box.Width, box.Height

	e.logger.Debug("wrap", "container", container.ID, "size", box)
	return nil
}

// InferConstraints synthesizes constraints for root and every container
// below it, children before parents. Containers that handle their own
// constraints are skipped together with their subtrees.
func (e *Engine) InferConstraints(root *widget.Widget) error {
	if root == nil {
		return errors.New(errors.ErrCodeInvalidInput, "infer constraints: nil root")
	}
	return e.inferContainer(root)
}

func (e *Engine) inferContainer(c *widget.Widget) error {
	if !c.IsContainer() || c.HandlesOwnConstraints {
		return nil
	}
	for _, child := range c.Children() {
		if err := e.inferContainer(child); err != nil {
			return err
		}
	}

	x, y := c.X, c.Y
	c.X, c.Y = 0, 0
	start := time.Now()
	err := e.synth.Synthesize(c, c.Children())
	c.X, c.Y = x, y
	e.hooks.OnSynthesize(c.ID, len(c.Children()), time.Since(start), err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "synthesize %s", c.ID)
	}
	return nil
}

// InferTableGroup returns the children of root that form the most plausible
// table, or nil when there is none.
func (e *Engine) InferTableGroup(root *widget.Widget) ([]*widget.Widget, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "infer table group: nil root")
	}
	geometric := 0
	for _, c := range root.Children() {
		if !c.IsGuideline() {
			geometric++
		}
	}
	if limit := e.cfg.Group.MaxWidgets; limit > 0 && geometric > limit {
		return nil, errors.New(errors.ErrCodeTooLarge,
			"infer table group %s: %d widgets exceeds limit of %d", root.ID, geometric, limit)
	}

	start := time.Now()
	ws, _ := e.searcher.Infer(root.Children())
	e.hooks.OnGroupInferred(root.ID, len(ws), ws != nil, time.Since(start))
	return ws, nil
}

// AnalyzeGroup analyzes widgets as a table and stores each widget's skip
// count. Skip counts are left untouched when the layout is invalid.
func (e *Engine) AnalyzeGroup(widgets []*widget.Widget) (table.Layout, error) {
	if len(widgets) == 0 {
		return table.Layout{}, errors.New(errors.ErrCodeEmptySelection, "analyze group: no widgets")
	}
	rects := make([]geom.Rect, len(widgets))
	for i, w := range widgets {
		rects[i] = w.Rect()
	}

	l := table.Analyze(rects)
	if l.Valid {
		for i, w := range widgets {
			w.SkipCount = l.Skips[i]
		}
	}
	e.logger.Debug("analyze group", "widgets", len(widgets), "rows", l.Rows, "cols", l.Cols,
		"valid", l.Valid, "confidence", l.Confidence)
	return l, nil
}
