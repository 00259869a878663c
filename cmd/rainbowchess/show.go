package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rainbow-chess/internal/platform/tui"
	"github.com/vovakirdan/rainbow-chess/internal/position"
	"github.com/vovakirdan/rainbow-chess/internal/theme"
)

var (
	flagShowScheme     string
	flagShowFEN        string
	flagShowPGN        string
	flagShowFlip       bool
	flagShowNoNotation bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a themed board with a position",
	Long: `Print a board colored with a palette to the terminal, together with the
game status of the position.

The position defaults to the standard starting position. Use --fen for a FEN
string or --pgn for a PGN file ("-" reads standard input).

Examples:
  rainbowchess show
  rainbowchess show --scheme lesbian --flip
  rainbowchess show --fen "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
  cat game.pgn | rainbowchess show --pgn -`,
	Run: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&flagShowScheme, "scheme", "s", "", "Palette key (default: configured scheme)")
	addPositionFlags(showCmd, &flagShowFEN, &flagShowPGN)
	showCmd.Flags().BoolVar(&flagShowFlip, "flip", false, "Put the other side at the bottom")
	showCmd.Flags().BoolVar(&flagShowNoNotation, "no-notation", false, "Hide rank and file labels")
}

// addPositionFlags registers the --fen and --pgn flags on cmd.
func addPositionFlags(cmd *cobra.Command, fen, pgn *string) {
	cmd.Flags().StringVar(fen, "fen", "", "Position as a FEN string")
	cmd.Flags().StringVar(pgn, "pgn", "", "PGN file to replay (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("fen", "pgn")
}

// loadPosition resolves the --fen/--pgn flags into a position.
func loadPosition(fen, pgnPath string) (*position.Position, error) {
	engine := position.NewEngine()
	switch {
	case fen != "":
		return engine.LoadFEN(fen)
	case pgnPath != "":
		data, err := readInput(pgnPath)
		if err != nil {
			return nil, err
		}
		return engine.LoadPGN(string(data))
	default:
		return engine.Start(), nil
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// buildTheme resolves the scheme and orientation for a command.
func buildTheme(scheme string, flip bool) theme.Theme {
	th := theme.Build(reg, schemeOr(scheme), cfg.OrientationValue())
	if flip {
		th = th.Flipped()
	}
	return th
}

func runShow(_ *cobra.Command, _ []string) {
	pos, err := loadPosition(flagShowFEN, flagShowPGN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	th := buildTheme(flagShowScheme, flagShowFlip)
	notation := cfg.ShowNotation && !flagShowNoNotation
	logger.Debug("rendering board", "scheme", th.Scheme.Key(), "bottom", th.Orientation, "fen", pos.FEN())

	panel := []string{
		lipgloss.NewStyle().Bold(true).Render(th.Scheme.Name()),
		tui.Swatches(th.Scheme, 2),
		"",
		"FEN: " + pos.FEN(),
		"",
	}
	panel = append(panel, tui.StatusLines(pos)...)

	boardView := tui.RenderBoard(th, pos, notation)
	panelView := strings.Join(panel, "\n")

	// Stack the panel under the board on narrow terminals
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	if lipgloss.Width(boardView)+3+lipgloss.Width(panelView) > width {
		fmt.Println(boardView)
		fmt.Println()
		fmt.Println(panelView)
		return
	}
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, boardView, "   ", panelView))
}
