// Package theme bundles everything one render pass needs: the resolved
// scheme, its square colors, the notation styles and the board orientation.
// It also exposes the string-keyed entry points used by presentation code.
package theme

import (
	"github.com/vovakirdan/rainbow-chess/internal/board"
	"github.com/vovakirdan/rainbow-chess/internal/contrast"
	"github.com/vovakirdan/rainbow-chess/internal/palette"
)

// Notation is the boundary form of the resolved notation styles.
type Notation struct {
	LightSquareForeground string `yaml:"light_square_foreground"`
	DarkSquareForeground  string `yaml:"dark_square_foreground"`
	Bold                  bool   `yaml:"bold"`
}

// Distribute returns the "e4" -> "#RRGGBB" map for a scheme key from the
// built-in catalog. Unknown keys use the default scheme.
func Distribute(schemeKey string) map[string]string {
	return DistributeIn(palette.Builtin(), schemeKey)
}

// DistributeIn is Distribute against an explicit registry.
func DistributeIn(reg *palette.Registry, schemeKey string) map[string]string {
	m := board.Distribute(reg.Lookup(schemeKey))
	return m.ByName()
}

// ResolveContrast returns the notation foregrounds for a scheme key from the
// built-in catalog. Unknown keys use the default scheme.
func ResolveContrast(schemeKey string) Notation {
	return ResolveContrastIn(palette.Builtin(), schemeKey)
}

// ResolveContrastIn is ResolveContrast against an explicit registry.
func ResolveContrastIn(reg *palette.Registry, schemeKey string) Notation {
	st := contrast.Resolve(reg.Lookup(schemeKey))
	return Notation{
		LightSquareForeground: st.Light.Foreground.String(),
		DarkSquareForeground:  st.Dark.Foreground.String(),
		Bold:                  st.Light.Bold && st.Dark.Bold,
	}
}

// Label is the notation a square carries when labels are drawn on the board.
// Rank is set on the leftmost display column, File on the bottom display row.
type Label struct {
	Rank  string
	File  string
	Style contrast.Style
}

// Empty reports whether the square carries no glyphs.
func (l Label) Empty() bool {
	return l.Rank == "" && l.File == ""
}

// Theme is the result of one render pass. It is rebuilt whenever the scheme
// or the orientation changes.
type Theme struct {
	Scheme      palette.Scheme
	Colors      board.ColorMap
	Styles      contrast.Styles
	Orientation board.Orientation
}

// Build resolves schemeKey against reg and computes colors and styles.
func Build(reg *palette.Registry, schemeKey string, o board.Orientation) Theme {
	s := reg.Lookup(schemeKey)
	return Theme{
		Scheme:      s,
		Colors:      board.Distribute(s),
		Styles:      contrast.Resolve(s),
		Orientation: o,
	}
}

// Flipped returns a copy of t with the opposite orientation.
func (t Theme) Flipped() Theme {
	t.Orientation = t.Orientation.Flip()
	return t
}

// Fill returns the background color of sq.
func (t Theme) Fill(sq board.Square) palette.Color {
	return t.Colors.At(sq)
}

// StyleFor returns the notation style matching the square's color class.
func (t Theme) StyleFor(sq board.Square) contrast.Style {
	return t.Styles.For(sq.IsDark())
}

// Rows returns the display grid for the theme's orientation.
func (t Theme) Rows() [board.Size][board.Size]board.Square {
	return board.Rows(t.Orientation)
}

// LabelAt returns the notation glyphs drawn on sq.
func (t Theme) LabelAt(sq board.Square) Label {
	var l Label
	leftFile, bottomRank := 0, 1
	if t.Orientation == board.BlackBottom {
		leftFile, bottomRank = board.Size-1, board.Size
	}
	if sq.File == leftFile {
		l.Rank = string(byte('0' + sq.Rank))
	}
	if sq.Rank == bottomRank {
		l.File = string(sq.FileLetter())
	}
	if !l.Empty() {
		l.Style = t.StyleFor(sq)
	}
	return l
}
