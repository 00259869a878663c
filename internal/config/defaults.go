package config

import (
	_ "embed"

	"github.com/vovakirdan/rainbow-chess/internal/board"
	"github.com/vovakirdan/rainbow-chess/internal/palette"
	"github.com/vovakirdan/rainbow-chess/internal/snapshot"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultSSHAddress is the listen address used when none is configured.
const DefaultSSHAddress = ":23235"

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Scheme:       palette.Builtin().DefaultKey(),
		Orientation:  board.WhiteBottom.String(),
		BoardSize:    snapshot.DefaultBoardSize,
		ShowNotation: true,
		Export: ExportConfig{
			Filename: snapshot.DefaultFilename,
			Scale:    snapshot.DefaultScale,
			Padding:  snapshot.DefaultPadding,
			Dir:      ".",
		},
		SSH: SSHConfig{
			Address:            DefaultSSHAddress,
			IdleTimeoutMinutes: 30,
		},
		Source: "default",
	}
}

// Normalize clamps sizes into range and replaces values that cannot be used
// with their defaults.
func Normalize(cfg Config) Config {
	def := Default()

	if cfg.Scheme == "" {
		cfg.Scheme = def.Scheme
	}
	o, err := board.ParseOrientation(cfg.Orientation)
	if err != nil {
		o = board.WhiteBottom
	}
	cfg.Orientation = o.String()
	cfg.BoardSize = snapshot.ClampBoardSize(cfg.BoardSize)

	if cfg.Export.Filename == "" {
		cfg.Export.Filename = def.Export.Filename
	}
	if cfg.Export.Scale <= 0 {
		cfg.Export.Scale = def.Export.Scale
	}
	if cfg.Export.Padding < 0 {
		cfg.Export.Padding = def.Export.Padding
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = def.Export.Dir
	}

	if cfg.SSH.Address == "" {
		cfg.SSH.Address = def.SSH.Address
	}
	if cfg.SSH.IdleTimeoutMinutes <= 0 {
		cfg.SSH.IdleTimeoutMinutes = def.SSH.IdleTimeoutMinutes
	}
	return cfg
}

// OrientationValue returns the parsed board orientation.
func (c Config) OrientationValue() board.Orientation {
	o, _ := board.ParseOrientation(c.Orientation)
	return o
}

// SnapshotOptions returns the raster options for exports.
func (c Config) SnapshotOptions() snapshot.Options {
	return snapshot.Options{
		BoardSize: c.BoardSize,
		Padding:   c.Export.Padding,
		Scale:     c.Export.Scale,
		Notation:  c.ShowNotation,
	}.Normalize()
}
