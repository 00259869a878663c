package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rainbow-chess/internal/board"
	"github.com/vovakirdan/rainbow-chess/internal/palette"
	"github.com/vovakirdan/rainbow-chess/internal/position"
	"github.com/vovakirdan/rainbow-chess/internal/snapshot"
	"github.com/vovakirdan/rainbow-chess/internal/theme"
)

// Notification texts.
const (
	msgImported     = "Successfully imported %s"
	msgImportFailed = "Error: Invalid %s format"
	msgExported     = "Image exported successfully!"
	msgExportFailed = "Error exporting image"
	msgReset        = "Board reset to starting position"
	msgNoExport     = "Export is not available in this session"
)

type mode int

const (
	modeBoard mode = iota
	modePicker
	modeImport
)

// EditorOptions configures a new editor.
type EditorOptions struct {
	Registry    *palette.Registry
	Engine      position.Engine
	Scheme      string
	Orientation board.Orientation
	Notation    bool
	Snapshot    snapshot.Options
	Filename    string
	Exporter    *snapshot.Exporter // nil when exporting is not possible, as over SSH
	Width       int
	Height      int
}

// exportDoneMsg carries the outcome of an asynchronous export.
type exportDoneMsg struct {
	result snapshot.Result
	err    error
}

// EditorModel is the Bubble Tea model of the board editor.
type EditorModel struct {
	opts     EditorOptions
	reg      *palette.Registry
	engine   position.Engine
	pos      *position.Position
	theme    theme.Theme
	notation bool
	size     int

	mode     mode
	picker   PickerModel
	importer ImportModel

	notice    Notice
	noticeID  int
	exporting bool

	help     help.Model
	keys     EditorKeyMap
	width    int
	height   int
	quitting bool
}

// NewEditorModel creates an editor at the standard starting position.
func NewEditorModel(opts EditorOptions) EditorModel {
	if opts.Registry == nil {
		opts.Registry = palette.Builtin()
	}
	if opts.Engine == nil {
		opts.Engine = position.NewEngine()
	}
	if opts.Filename == "" {
		opts.Filename = snapshot.DefaultFilename
	}
	opts.Snapshot = opts.Snapshot.Normalize()

	return EditorModel{
		opts:     opts,
		reg:      opts.Registry,
		engine:   opts.Engine,
		pos:      opts.Engine.Start(),
		theme:    theme.Build(opts.Registry, opts.Scheme, opts.Orientation),
		notation: opts.Notation,
		size:     opts.Snapshot.BoardSize,
		help:     help.New(),
		keys:     DefaultEditorKeyMap(),
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Init initializes the editor.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the editor state.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case noticeExpiredMsg:
		if msg.id == m.notice.id {
			m.notice = Notice{}
		}
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			return m.notify(msgExportFailed, true)
		}
		return m.notify(msgExported, false)
	}

	switch m.mode {
	case modePicker:
		return m.updatePicker(msg)
	case modeImport:
		return m.updateImport(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input on the board screen.
func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextScheme):
		m.setScheme(m.reg.Next(m.theme.Scheme.Key(), 1).Key())

	case key.Matches(msg, m.keys.PrevScheme):
		m.setScheme(m.reg.Next(m.theme.Scheme.Key(), -1).Key())

	case key.Matches(msg, m.keys.Picker):
		m.picker = NewPickerModel(m.reg, m.theme.Scheme.Key(), m.height)
		m.mode = modePicker

	case key.Matches(msg, m.keys.Flip):
		m.theme = m.theme.Flipped()

	case key.Matches(msg, m.keys.Notation):
		m.notation = !m.notation

	case key.Matches(msg, m.keys.Grow):
		m.size = snapshot.ClampBoardSize(m.size + snapshot.BoardSizeStep)

	case key.Matches(msg, m.keys.Shrink):
		m.size = snapshot.ClampBoardSize(m.size - snapshot.BoardSizeStep)

	case key.Matches(msg, m.keys.Import):
		m.importer = NewImportModel(m.width)
		m.mode = modeImport
		return m, m.importer.Init()

	case key.Matches(msg, m.keys.Reset):
		m.pos = m.engine.Start()
		return m.notify(msgReset, false)

	case key.Matches(msg, m.keys.Export):
		return m.startExport()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *EditorModel) setScheme(k string) {
	m.theme = theme.Build(m.reg, k, m.theme.Orientation)
}

func (m EditorModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if k, ok := m.picker.Chosen(); ok {
		m.setScheme(k)
		m.mode = modeBoard
		return m, nil
	}
	if m.picker.Closed() {
		m.mode = modeBoard
		return m, nil
	}
	return m, cmd
}

func (m EditorModel) updateImport(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.importer, cmd = m.importer.Update(msg)
	if m.importer.Canceled() {
		m.mode = modeBoard
		return m, nil
	}
	req, ok := m.importer.Submitted()
	if !ok {
		return m, cmd
	}

	m.mode = modeBoard
	pos, err := m.engine.Load(req.Format, req.Text)
	if err != nil {
		return m.notify(fmt.Sprintf(msgImportFailed, req.Format), true)
	}
	m.pos = pos
	return m.notify(fmt.Sprintf(msgImported, req.Format), false)
}

// notify shows text and schedules its expiry.
func (m EditorModel) notify(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.noticeID++
	m.notice = Notice{Text: text, Error: isErr, id: m.noticeID}
	return m, expireNoticeCmd(m.noticeID, NoticeDuration)
}

// startExport renders the current board and hands it to the exporter off
// the update loop.
func (m EditorModel) startExport() (tea.Model, tea.Cmd) {
	if m.opts.Exporter == nil {
		return m.notify(msgNoExport, true)
	}
	if m.exporting {
		return m, nil
	}

	opts := m.SnapshotOptions()
	th, pos, exp, name := m.theme, m.pos, m.opts.Exporter, m.opts.Filename
	m.exporting = true
	return m, func() tea.Msg {
		img, err := snapshot.Render(th, pos, opts)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		res, err := exp.Export(context.Background(), img, name)
		return exportDoneMsg{result: res, err: err}
	}
}

// SnapshotOptions returns the raster options matching the editor state.
func (m EditorModel) SnapshotOptions() snapshot.Options {
	o := m.opts.Snapshot
	o.BoardSize = m.size
	o.Notation = m.notation
	return o
}

// Theme returns the current render pass.
func (m EditorModel) Theme() theme.Theme { return m.theme }

// Position returns the current position.
func (m EditorModel) Position() *position.Position { return m.pos }

// Notice returns the visible notification, if any.
func (m EditorModel) Notice() Notice { return m.notice }

// View renders the editor.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modePicker:
		return m.picker.View()
	case modeImport:
		return m.importer.View()
	}

	boardView := RenderBoard(m.theme, m.pos, m.notation)
	panel := m.renderPanel()

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("Rainbow Chess Puzzle Creator"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boardView, "   ", panel))
	b.WriteString("\n\n")

	if m.notice.Text != "" {
		bg := lipgloss.Color("#22C55E")
		if m.notice.Error {
			bg = lipgloss.Color("#EF4444")
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(bg).
			Padding(0, 1).
			Render(m.notice.Text))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderPanel renders the palette, export size, FEN and game status.
func (m EditorModel) renderPanel() string {
	head := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString(head.Render("Palette"))
	b.WriteString("\n")
	b.WriteString(m.theme.Scheme.Name())
	b.WriteString(dim.Render(" (" + m.theme.Scheme.Key() + ")"))
	b.WriteString("\n")
	b.WriteString(Swatches(m.theme.Scheme, 2))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Bottom: %s\n", m.theme.Orientation)
	fmt.Fprintf(&b, "Board Size: %dpx\n\n", m.size)

	b.WriteString(head.Render("Current Position"))
	b.WriteString("\n")
	b.WriteString(dim.Width(36).Render("FEN: " + m.pos.FEN()))
	b.WriteString("\n\n")

	b.WriteString(head.Render("Game Status"))
	b.WriteString("\n")
	b.WriteString(strings.Join(StatusLines(m.pos), "\n"))
	return b.String()
}

// Run starts the editor in the alternate screen.
func Run(opts EditorOptions) error {
	p := tea.NewProgram(
		NewEditorModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
