package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rainbow-chess/internal/theme"
)

var (
	flagContrastScheme string
	flagContrastFormat string
)

var contrastCmd = &cobra.Command{
	Use:   "contrast",
	Short: "Print the notation colors of a palette",
	Long: `Print the foreground colors used for rank and file labels on light and
dark squares of a palette.

Examples:
  rainbowchess contrast --scheme bisexual
  rainbowchess contrast --scheme nonbinary --format yaml`,
	Run: runContrast,
}

func init() {
	contrastCmd.Flags().StringVarP(&flagContrastScheme, "scheme", "s", "", "Palette key (default: configured scheme)")
	contrastCmd.Flags().StringVar(&flagContrastFormat, "format", "text", "Output format: text or yaml")
}

func runContrast(_ *cobra.Command, _ []string) {
	n := theme.ResolveContrastIn(reg, schemeOr(flagContrastScheme))

	switch flagContrastFormat {
	case "yaml":
		out, err := yaml.Marshal(n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
	case "text":
		fmt.Printf("Light squares: %s\n", n.LightSquareForeground)
		fmt.Printf("Dark squares:  %s\n", n.DarkSquareForeground)
		fmt.Printf("Bold:          %t\n", n.Bold)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (use text or yaml)\n", flagContrastFormat)
		os.Exit(1)
	}
}
