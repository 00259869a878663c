package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rainbow-chess/internal/platform/tui"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List available palettes",
	Long: `List all palettes known to rainbowchess, including any loaded from the
palettes_file configured in config.yaml.

Examples:
  rainbowchess schemes`,
	Run: runSchemes,
}

func runSchemes(_ *cobra.Command, _ []string) {
	schemes := reg.List()
	if len(schemes) == 0 {
		fmt.Println("No palettes available.")
		return
	}

	fmt.Println("Available palettes:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range schemes {
		marker := " "
		if s.Key() == reg.DefaultKey() {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\t%s\t%d\t%s\n", marker, s.Key(), s.Name(), s.Len(), tui.Swatches(s, 2))
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use: rainbowchess show --scheme <key>")
}
