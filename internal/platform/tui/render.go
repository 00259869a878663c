package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rainbow-chess/internal/palette"
	"github.com/vovakirdan/rainbow-chess/internal/position"
	"github.com/vovakirdan/rainbow-chess/internal/theme"
)

// Square size in terminal cells. Two columns per row keeps squares roughly
// square in most fonts.
const (
	squareWidth  = 6
	squareHeight = 3
)

var (
	whitePieceColor = lipgloss.Color("#FFFFFF")
	blackPieceColor = lipgloss.Color("#000000")
)

// lipColor converts a palette color to a lipgloss true-color value.
func lipColor(c palette.Color) lipgloss.Color {
	return lipgloss.Color(c.String())
}

// Swatch renders a block of the given color, width cells wide.
func Swatch(c palette.Color, width int) string {
	return lipgloss.NewStyle().Background(lipColor(c)).Render(strings.Repeat(" ", width))
}

// Swatches renders every accent of s followed by its light-square color.
func Swatches(s palette.Scheme, width int) string {
	var b strings.Builder
	for _, c := range s.Accents() {
		b.WriteString(Swatch(c, width))
	}
	b.WriteString(" ")
	b.WriteString(Swatch(s.LightSquare(), width))
	return b.String()
}

// RenderBoard draws th as a grid of colored squares with the pieces of pos
// (nil for an empty board) and, when notation is set, the rank and file
// labels in the resolved contrast styles.
func RenderBoard(th theme.Theme, pos *position.Position, notation bool) string {
	rows := th.Rows()
	lines := make([]string, 0, len(rows)*squareHeight)

	for _, row := range rows {
		var band [squareHeight]strings.Builder
		for _, sq := range row {
			bg := lipColor(th.Fill(sq))
			base := lipgloss.NewStyle().Background(bg)

			var lb theme.Label
			if notation {
				lb = th.LabelAt(sq)
			}
			labelStyle := base.Foreground(lipColor(lb.Style.Foreground)).Bold(lb.Style.Bold)

			// Top line: rank digit in the left corner.
			if lb.Rank != "" {
				band[0].WriteString(labelStyle.Render(lb.Rank))
				band[0].WriteString(base.Render(strings.Repeat(" ", squareWidth-1)))
			} else {
				band[0].WriteString(base.Render(strings.Repeat(" ", squareWidth)))
			}

			// Middle line: the piece, centered.
			mid := base.Render(strings.Repeat(" ", squareWidth))
			if pos != nil {
				if pc, ok := pos.PieceAt(sq); ok {
					fg := whitePieceColor
					if pc.Side == position.Black {
						fg = blackPieceColor
					}
					left := (squareWidth - 1) / 2
					mid = base.Render(strings.Repeat(" ", left)) +
						base.Foreground(fg).Bold(true).Render(string(pc.Glyph())) +
						base.Render(strings.Repeat(" ", squareWidth-1-left))
				}
			}
			band[1].WriteString(mid)

			// Bottom line: file letter in the right corner.
			if lb.File != "" {
				band[2].WriteString(base.Render(strings.Repeat(" ", squareWidth-1)))
				band[2].WriteString(labelStyle.Render(lb.File))
			} else {
				band[2].WriteString(base.Render(strings.Repeat(" ", squareWidth)))
			}
		}
		for i := range band {
			lines = append(lines, band[i].String())
		}
	}
	return strings.Join(lines, "\n")
}

// StatusLines describes the position the way the side panel shows it.
func StatusLines(pos *position.Position) []string {
	if pos == nil {
		return nil
	}
	lines := []string{
		"Turn: " + pos.Turn().String(),
		"In Check: " + yesNo(pos.InCheck()),
		"Game Over: " + yesNo(pos.GameOver()),
	}
	if pos.GameOver() {
		lines = append(lines, "Result: "+pos.Result())
	}
	return lines
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
