package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	h := NoopEngineHooks{}
	h.OnArrange("align-left", 3, true, time.Millisecond, nil)
	h.OnCandidates(CandidateStats{Widgets: 12})
	h.OnGroupInferred("root", 12, true, time.Millisecond)
	h.OnSynthesize("root", 4, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Engine() should return NoopEngineHooks by default")
	}

	custom := &countingHooks{}
	SetEngineHooks(custom)
	if Engine() != custom {
		t.Error("SetEngineHooks should set custom hooks")
	}

	SetEngineHooks(nil)
	if Engine() != custom {
		t.Error("SetEngineHooks(nil) should be ignored")
	}

	Reset()
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Reset() should restore NoopEngineHooks")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := LogHooks{Logger: log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})}

	h.OnArrange("pack-vertical", 2, false, time.Millisecond, nil)
	h.OnCandidates(CandidateStats{Widgets: 12, Evaluated: 60, Enumerated: 40, Reduced: 10, Viable: 3, BestScore: 0.8})
	h.OnSynthesize("root", 3, 0, errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"pack-vertical", "evaluated=60", "enumerated=40", "synthesize failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type countingHooks struct {
	NoopEngineHooks
	arranges int
}

func (c *countingHooks) OnArrange(string, int, bool, time.Duration, error) { c.arranges++ }
