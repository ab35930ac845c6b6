package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/scout/pkg/arrange"
)

var (
	listCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// OpListModel - Interactive arrange operation selection
// =============================================================================

// OpListModel is the bubbletea model for picking an arrange operation.
type OpListModel struct {
	Ops      []arrange.Op
	Cursor   int
	Selected *arrange.Op
	Height   int
	Offset   int
}

// NewOpListModel creates a list over ops.
func NewOpListModel(ops []arrange.Op) OpListModel {
	return OpListModel{Ops: ops, Height: 12}
}

func (m OpListModel) Init() tea.Cmd {
	return nil
}

func (m OpListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Ops)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Ops) == 0 {
				return m, nil
			}
			op := m.Ops[m.Cursor]
			m.Selected = &op
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m OpListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Operation"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Ops))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, m.Ops[i].String(), m.Ops[i].Description()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("", "Operation", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return listHeaderStyle
			case m.Offset+row == m.Cursor:
				return listCurrentStyle
			case col == 2:
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Ops))))

	return b.String()
}

// pickOp runs the picker and returns the chosen operation. ok is false when
// the user quits without choosing.
func pickOp() (op arrange.Op, ok bool, err error) {
	final, err := tea.NewProgram(NewOpListModel(arrange.Ops())).Run()
	if err != nil {
		return 0, false, err
	}
	m := final.(OpListModel)
	if m.Selected == nil {
		return 0, false, nil
	}
	return *m.Selected, true, nil
}
