// Package config provides YAML-based configuration loading for the board
// editor, the exporter and the SSH server.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Scheme       string       `yaml:"scheme"`
	Orientation  string       `yaml:"orientation"` // "white" or "black" at the bottom
	BoardSize    int          `yaml:"board_size"`  // export size in pixels, 300-800
	ShowNotation bool         `yaml:"show_notation"`
	PalettesFile string       `yaml:"palettes_file"`
	Export       ExportConfig `yaml:"export"`
	SSH          SSHConfig    `yaml:"ssh"`

	// Source records where the configuration came from: a file path or
	// "embedded".
	Source string `yaml:"-"`
}

// ExportConfig controls PNG export.
type ExportConfig struct {
	Filename   string `yaml:"filename"`
	Scale      int    `yaml:"scale"`
	Padding    int    `yaml:"padding"`
	Dir        string `yaml:"dir"`
	Gallery    bool   `yaml:"gallery"` // try the picture directory before Dir
	GalleryDir string `yaml:"gallery_dir"`
}

// SSHConfig controls the SSH server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}
