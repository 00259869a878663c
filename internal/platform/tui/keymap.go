package tui

import "github.com/charmbracelet/bubbles/key"

// EditorKeyMap defines the key bindings of the board editor.
type EditorKeyMap struct {
	NextScheme key.Binding
	PrevScheme key.Binding
	Picker     key.Binding
	Flip       key.Binding
	Import     key.Binding
	Export     key.Binding
	Reset      key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Notation   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevScheme, k.NextScheme, k.Picker, k.Flip, k.Import, k.Export, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevScheme, k.NextScheme, k.Picker},
		{k.Flip, k.Notation, k.Grow, k.Shrink},
		{k.Import, k.Export, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultEditorKeyMap returns the default editor bindings. Export is
// disabled when the editor has no exporter.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		NextScheme: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("]", "next palette"),
		),
		PrevScheme: key.NewBinding(
			key.WithKeys("[", "left", "h"),
			key.WithHelp("[", "prev palette"),
		),
		Picker: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "palettes"),
		),
		Flip: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flip board"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export png"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger export"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "smaller export"),
		),
		Notation: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notation"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerKeyMap defines the key bindings of the palette picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp returns bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPickerKeyMap returns the default picker bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ImportKeyMap defines the key bindings of the import dialog.
type ImportKeyMap struct {
	Switch key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k ImportKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Submit, k.Cancel}
}

// FullHelp returns bindings for the full help view.
func (k ImportKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultImportKeyMap returns the default import dialog bindings.
func DefaultImportKeyMap() ImportKeyMap {
	return ImportKeyMap{
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "FEN/PGN"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "import"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
