package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rainbow-chess/internal/position"
)

const pgnPlaceholder = `[Event "Example"]
[Site "?"]
[Date "2024.01.01"]
[White "Player1"]
[Black "Player2"]
[Result "*"]

1. e4 e5 2. Nf3 Nc6 *`

// ImportRequest is what the dialog hands back on submit.
type ImportRequest struct {
	Format position.Format
	Text   string
}

// ImportModel is the FEN/PGN import dialog.
type ImportModel struct {
	format position.Format
	input  textarea.Model
	help   help.Model
	keys   ImportKeyMap
	err    string

	submitted *ImportRequest
	canceled  bool
}

// NewImportModel creates a focused dialog on the FEN tab.
func NewImportModel(width int) ImportModel {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	if width > 8 {
		ta.SetWidth(min(width-4, 72))
	}
	ta.Focus()

	m := ImportModel{
		format: position.FEN,
		input:  ta,
		help:   help.New(),
		keys:   DefaultImportKeyMap(),
	}
	m.applyFormat()
	return m
}

func (m *ImportModel) applyFormat() {
	if m.format == position.PGN {
		m.input.Placeholder = pgnPlaceholder
		m.input.SetHeight(8)
	} else {
		m.input.Placeholder = position.StartFEN
		m.input.SetHeight(3)
	}
}

// Init starts the cursor blink.
func (m ImportModel) Init() tea.Cmd {
	return textarea.Blink
}

// Format returns the active tab.
func (m ImportModel) Format() position.Format {
	return m.format
}

// Submitted returns the request once the user confirmed non-empty input.
func (m ImportModel) Submitted() (ImportRequest, bool) {
	if m.submitted == nil {
		return ImportRequest{}, false
	}
	return *m.submitted, true
}

// Canceled reports whether the dialog was dismissed.
func (m ImportModel) Canceled() bool {
	return m.canceled
}

// Update handles dialog input.
func (m ImportModel) Update(msg tea.Msg) (ImportModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, nil
		case key.Matches(msg, m.keys.Switch):
			if m.format == position.FEN {
				m.format = position.PGN
			} else {
				m.format = position.FEN
			}
			m.err = ""
			m.applyFormat()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				m.err = "Please enter a valid " + m.format.String()
				return m, nil
			}
			m.submitted = &ImportRequest{Format: m.format, Text: text}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the dialog.
func (m ImportModel) View() string {
	tab := lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("241"))
	active := tab.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	fen, pgn := tab.Render("FEN"), tab.Render("PGN")
	label := "FEN String:"
	if m.format == position.PGN {
		pgn = active.Render("PGN")
		label = "PGN Data:"
	} else {
		fen = active.Render("FEN")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Import Chess Position"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, fen, pgn))
	b.WriteString("\n\n")
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(b.String())
}
