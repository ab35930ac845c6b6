// Package observability provides hooks for instrumenting the layout engine.
//
// The engine calls hooks around every arrange operation, every group search
// and every synthesizer invocation. Hooks never influence results; they exist
// so hosts can collect timings and search statistics without the engine
// depending on a metrics backend.
//
// # Architecture
//
//   - [EngineHooks] is the event interface
//   - [NoopEngineHooks] is the default
//   - [LogHooks] writes events to a charmbracelet logger
//   - a guarded global registry lets main install hooks once at startup
//
// # Usage
//
//	func main() {
//	    observability.SetEngineHooks(observability.LogHooks{Logger: logger})
//	    // ... run application
//	}
//
// The engine reads the registry when it is constructed, unless hooks are
// passed explicitly:
//
//	engine := scout.New(cfg, scout.WithHooks(myHooks))
package observability

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// CandidateStats summarises one group search.
type CandidateStats struct {
	Widgets    int     // geometric widgets considered
	Evaluated  int     // candidate rectangles examined after pruning
	Enumerated int     // candidates that passed the containment and fill filters
	Reduced    int     // candidates left after redundancy elimination
	Viable     int     // candidates left after the viability filter
	BestScore  float64 // probability of the selected candidate, 0 if none
}

// EngineHooks receives events from the layout engine.
type EngineHooks interface {
	// OnArrange records a completed arrange operation.
	OnArrange(op string, count int, applyConstraints bool, duration time.Duration, err error)

	// OnCandidates records the statistics of a group search.
	OnCandidates(stats CandidateStats)

	// OnGroupInferred records the outcome of table-group inference on a container.
	OnGroupInferred(container string, size int, found bool, duration time.Duration)

	// OnSynthesize records one constraint synthesizer invocation.
	OnSynthesize(container string, children int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnArrange(string, int, bool, time.Duration, error) {}
func (NoopEngineHooks) OnCandidates(CandidateStats)                       {}
func (NoopEngineHooks) OnGroupInferred(string, int, bool, time.Duration)  {}
func (NoopEngineHooks) OnSynthesize(string, int, time.Duration, error)    {}

// =============================================================================
// Logging Implementation
// =============================================================================

// LogHooks logs every event at debug level. A nil Logger uses log.Default().
type LogHooks struct {
	Logger *log.Logger
}

func (h LogHooks) logger() *log.Logger {
	if h.Logger == nil {
		return log.Default()
	}
	return h.Logger
}

func (h LogHooks) OnArrange(op string, count int, applyConstraints bool, d time.Duration, err error) {
	if err != nil {
		h.logger().Warn("arrange failed", "op", op, "widgets", count, "err", err)
		return
	}
	h.logger().Debug("arrange", "op", op, "widgets", count, "constraints", applyConstraints, "took", d)
}

func (h LogHooks) OnCandidates(s CandidateStats) {
	h.logger().Debug("group candidates",
		"widgets", s.Widgets, "evaluated", s.Evaluated, "enumerated", s.Enumerated, "reduced", s.Reduced,
		"viable", s.Viable, "best", s.BestScore)
}

func (h LogHooks) OnGroupInferred(container string, size int, found bool, d time.Duration) {
	h.logger().Debug("group inferred", "container", container, "found", found, "size", size, "took", d)
}

func (h LogHooks) OnSynthesize(container string, children int, d time.Duration, err error) {
	if err != nil {
		h.logger().Warn("synthesize failed", "container", container, "err", err)
		return
	}
	h.logger().Debug("synthesize", "container", container, "children", children, "took", d)
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks. A nil h is ignored.
// This should be called once at application startup.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
}
