// rainbowchess renders chess positions on boards colored from named
// palettes and exports them as PNG images.
//
// Usage:
//
//	rainbowchess schemes            - List available palettes
//	rainbowchess colors             - Print the square colors of a palette
//	rainbowchess contrast           - Print the notation colors of a palette
//	rainbowchess show               - Print a themed board to the terminal
//	rainbowchess export             - Export a themed board as PNG
//	rainbowchess edit               - Interactive board editor
//	rainbowchess serve              - Host the editor over SSH
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.rainbowchess, ./configs)
//	--debug          - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rainbow-chess/internal/config"
	"github.com/vovakirdan/rainbow-chess/internal/palette"
)

var (
	// Global flags
	flagConfigPath string
	flagDebug      bool

	// Resolved in the root pre-run hook.
	cfg    config.Config
	reg    *palette.Registry
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rainbowchess",
	Short: "Rainbow Chess - colorful chess boards in your terminal",
	Long: `Rainbow Chess paints chess positions on boards whose dark squares are
colored from a named palette, and exports them as shareable PNG images.

Available commands:
  schemes   - List available palettes
  colors    - Print the square colors of a palette
  contrast  - Print the notation colors of a palette
  show      - Print a themed board with a position
  export    - Export a themed board as PNG
  edit      - Interactive board editor
  serve     - Start SSH server hosting the editor

Examples:
  rainbowchess schemes
  rainbowchess show --scheme rainbow --fen "8/8/8/4k3/8/8/8/4K3 w - - 0 1"
  rainbowchess export --scheme bisexual --pgn game.pgn -o puzzle.png
  rainbowchess edit --scheme progress
  rainbowchess serve --ssh :23235`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(schemesCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads .env, the configuration and the palette registry, and builds
// the logger shared by all commands.
func setup(_ *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rainbowchess",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("could not load .env", "error", err)
	}

	var err error
	cfg, err = config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "source", cfg.Source, "scheme", cfg.Scheme)

	reg, err = cfg.Palettes()
	if err != nil {
		return err
	}
	if !reg.Exists(cfg.Scheme) {
		logger.Warn("unknown scheme, using default", "scheme", cfg.Scheme, "default", reg.DefaultKey())
	}
	return nil
}
