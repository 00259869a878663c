package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rainbow-chess/internal/platform/tui"
)

var (
	flagEditScheme  string
	flagEditGallery bool
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Interactive board editor",
	Long: `Open the board editor: switch palettes, flip the board, import FEN or
PGN positions and export the board as PNG.

Controls:
  ] / [      - Next / previous palette
  p          - Palette picker
  f          - Flip board
  i          - Import FEN or PGN
  e          - Export PNG
  + / -      - Grow / shrink export size
  n          - Toggle notation
  r          - Reset position
  ?          - Help
  q          - Quit

Examples:
  rainbowchess edit
  rainbowchess edit --scheme transgender --gallery`,
	Run: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&flagEditScheme, "scheme", "s", "", "Initial palette key (default: configured scheme)")
	editCmd.Flags().BoolVar(&flagEditGallery, "gallery", false, "Export to the picture directory first")
}

func runEdit(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	// Notices report the outcome; the alt screen has no room for log lines.
	exporter, name := newExporter(nil, "", flagEditGallery || cfg.Export.Gallery)

	err := tui.Run(tui.EditorOptions{
		Registry:    reg,
		Scheme:      schemeOr(flagEditScheme),
		Orientation: cfg.OrientationValue(),
		Notation:    cfg.ShowNotation,
		Snapshot:    cfg.SnapshotOptions(),
		Filename:    name,
		Exporter:    exporter,
		Width:       width,
		Height:      height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
}
