package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rainbow-chess/internal/board"
	"github.com/vovakirdan/rainbow-chess/internal/theme"
)

var (
	flagColorsScheme string
	flagColorsFormat string
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Print the square colors of a palette",
	Long: `Print the color of every square for a palette, from a8 to h1.

Dark squares take their color from the palette accents; light squares share
the palette's light square color. Unknown palettes fall back to the default.

Examples:
  rainbowchess colors --scheme rainbow
  rainbowchess colors --scheme progress --format yaml`,
	Run: runColors,
}

func init() {
	colorsCmd.Flags().StringVarP(&flagColorsScheme, "scheme", "s", "", "Palette key (default: configured scheme)")
	colorsCmd.Flags().StringVar(&flagColorsFormat, "format", "text", "Output format: text or yaml")
}

func runColors(_ *cobra.Command, _ []string) {
	colors := theme.DistributeIn(reg, schemeOr(flagColorsScheme))

	switch flagColorsFormat {
	case "yaml":
		out, err := yaml.Marshal(colors)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
	case "text":
		for _, row := range board.Rows(board.WhiteBottom) {
			for i, sq := range row {
				if i > 0 {
					fmt.Print(" ")
				}
				fmt.Printf("%s=%s", sq, colors[sq.String()])
			}
			fmt.Println()
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (use text or yaml)\n", flagColorsFormat)
		os.Exit(1)
	}
}

// schemeOr returns key, or the configured scheme when key is empty.
func schemeOr(key string) string {
	if key != "" {
		return key
	}
	return cfg.Scheme
}
