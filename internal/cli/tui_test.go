package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/scout/pkg/arrange"
)

func press(m OpListModel, keys ...tea.KeyType) (OpListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(tea.KeyMsg{Type: k})
		m = next.(OpListModel)
	}
	return m, cmd
}

func TestOpListModelSelect(t *testing.T) {
	m := NewOpListModel(arrange.Ops())

	m, _ = press(m, tea.KeyUp, tea.KeyDown, tea.KeyDown)
	if m.Cursor != 2 {
		t.Fatalf("Cursor = %d, want 2", m.Cursor)
	}
	m, cmd := press(m, tea.KeyEnter)
	if m.Selected == nil || *m.Selected != arrange.AlignBottom {
		t.Errorf("Selected = %v, want align-bottom", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit")
	}
}

func TestOpListModelScrolls(t *testing.T) {
	m := NewOpListModel(arrange.Ops())
	m.Height = 5

	for range 7 {
		m, _ = press(m, tea.KeyDown)
	}
	if m.Cursor != 7 || m.Offset != 3 {
		t.Errorf("Cursor=%d Offset=%d, want 7 and 3", m.Cursor, m.Offset)
	}

	view := m.View()
	if !strings.Contains(view, "distribute-vertical") || strings.Contains(view, "align-top") {
		t.Errorf("view does not follow the cursor:\n%s", view)
	}
	if !strings.Contains(view, "[8/23]") {
		t.Errorf("view missing position:\n%s", view)
	}
}

func TestOpListModelQuit(t *testing.T) {
	m, cmd := press(NewOpListModel(arrange.Ops()), tea.KeyEsc)
	if m.Selected != nil || cmd == nil {
		t.Errorf("esc: Selected=%v cmd=%v", m.Selected, cmd)
	}
}
