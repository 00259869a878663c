package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rainbow-chess/internal/palette"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "config.yaml"

// Environment variables that override the configuration file.
const (
	EnvScheme      = "RAINBOWCHESS_SCHEME"
	EnvOrientation = "RAINBOWCHESS_ORIENTATION"
	EnvBoardSize   = "RAINBOWCHESS_BOARD_SIZE"
)

// Loader resolves configuration. The zero value searches the standard
// locations and reads the process environment.
type Loader struct {
	// HomeDir overrides the user home directory. Empty uses os.UserHomeDir.
	HomeDir string
	// WorkDir is the directory holding the local configs/ folder. Empty
	// means the current directory.
	WorkDir string
	// LookupEnv overrides os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load is Loader{}.Load.
func Load(customPath string) (Config, error) {
	return Loader{}.Load(customPath)
}

// Load reads the configuration and applies environment overrides.
// Search order: customPath -> ~/.rainbowchess/config.yaml ->
// ./configs/config.yaml -> embedded default -> hardcoded default.
func (l Loader) Load(customPath string) (Config, error) {
	cfg, err := l.read(customPath)
	if err != nil {
		return cfg, err
	}
	if err := l.applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return Normalize(cfg), nil
}

func (l Loader) read(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{l.userConfigPath(), filepath.Join(l.WorkDir, "configs", FileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				cfg.Source = path
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultConfigYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults so omitted keys keep
// their default values.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func (l Loader) userConfigPath() string {
	home := l.HomeDir
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(home, ".rainbowchess", FileName)
}

func (l Loader) applyEnv(cfg *Config) error {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvScheme); ok && v != "" {
		cfg.Scheme = v
	}
	if v, ok := lookup(EnvOrientation); ok && v != "" {
		cfg.Orientation = v
	}
	if v, ok := lookup(EnvBoardSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvBoardSize, v, err)
		}
		cfg.BoardSize = n
	}
	return nil
}

// LoadDotEnv loads KEY=value pairs from the given files (".env" when none
// are given) into the process environment. Missing files are ignored;
// variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	present := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: cannot stat %s: %w", f, err)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("config: cannot load env file: %w", err)
	}
	return nil
}

// Palettes returns the built-in catalog extended with the schemes from
// PalettesFile, if one is configured.
func (c Config) Palettes() (*palette.Registry, error) {
	reg := palette.Builtin()
	if c.PalettesFile == "" {
		return reg, nil
	}
	data, err := os.ReadFile(c.PalettesFile)
	if err != nil {
		return reg, fmt.Errorf("config: failed to read palettes %s: %w", c.PalettesFile, err)
	}
	schemes, err := palette.ParseSchemes(data)
	if err != nil {
		return reg, fmt.Errorf("config: %s: %w", c.PalettesFile, err)
	}
	ext, err := reg.With(schemes...)
	if err != nil {
		return reg, fmt.Errorf("config: %s: %w", c.PalettesFile, err)
	}
	return ext, nil
}
