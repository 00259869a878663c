package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rainbow-chess/internal/palette"
)

// PickerModel is the palette selection table.
type PickerModel struct {
	schemes []palette.Scheme
	table   table.Model
	help    help.Model
	keys    PickerKeyMap
	height  int

	chosen string // set on enter
	closed bool   // set on esc
}

// NewPickerModel creates a picker over reg with current highlighted.
func NewPickerModel(reg *palette.Registry, current string, height int) PickerModel {
	m := PickerModel{
		schemes: reg.List(),
		help:    help.New(),
		keys:    DefaultPickerKeyMap(),
		height:  height,
	}
	m.table = m.createTable()

	for i, s := range m.schemes {
		if s.Key() == current {
			m.table.SetCursor(i)
			break
		}
	}
	return m
}

// createTable creates the table with one row per scheme.
func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Palette", Width: 20},
		{Title: "Key", Width: 14},
		{Title: "Colors", Width: 6},
	}

	rows := make([]table.Row, len(m.schemes))
	for i, s := range m.schemes {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			s.Name(),
			s.Key(),
			fmt.Sprintf("%d", s.Len()),
		}
	}

	height := m.height - 8 // Leave room for title, preview and help
	if height < 5 {
		height = 5
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Highlighted returns the scheme under the cursor.
func (m PickerModel) Highlighted() palette.Scheme {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.schemes) {
		return palette.Scheme{}
	}
	return m.schemes[i]
}

// Chosen returns the key selected with enter, if any.
func (m PickerModel) Chosen() (string, bool) {
	return m.chosen, m.chosen != ""
}

// Closed reports whether the picker was dismissed without a choice.
func (m PickerModel) Closed() bool {
	return m.closed
}

// Update handles picker input.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Select):
			m.chosen = m.Highlighted().Key()
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table and a swatch preview of the highlighted scheme.
func (m PickerModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("PALETTES"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	if s := m.Highlighted(); !s.IsZero() {
		b.WriteString(Swatches(s, 4))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
