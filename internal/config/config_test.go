package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func noEnv(string) (string, bool) { return "", false }

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	l := Loader{HomeDir: t.TempDir(), WorkDir: t.TempDir(), LookupEnv: noEnv}
	cfg, err := l.Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}

	want := Default()
	want.Source = "embedded"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("embedded config differs from Default() (-want +got):\n%s", diff)
	}
}

func TestSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	userPath := filepath.Join(home, ".rainbowchess", FileName)
	localPath := filepath.Join(work, "configs", FileName)
	l := Loader{HomeDir: home, WorkDir: work, LookupEnv: noEnv}

	writeFile(t, localPath, "scheme: gay\n")
	cfg, err := l.Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scheme != "gay" || cfg.Source != localPath {
		t.Errorf("got scheme %q from %q, expected gay from local configs", cfg.Scheme, cfg.Source)
	}

	writeFile(t, userPath, "scheme: lesbian\n")
	cfg, err = l.Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scheme != "lesbian" || cfg.Source != userPath {
		t.Errorf("got scheme %q from %q, expected lesbian from user config", cfg.Scheme, cfg.Source)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "scheme: progress\norientation: black\n")
	cfg, err = l.Load(custom)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scheme != "progress" || cfg.Orientation != "black" || cfg.Source != custom {
		t.Errorf("custom path not used: %+v", cfg)
	}
}

func TestOmittedKeysKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, path, "export:\n  scale: 3\n")

	cfg, err := Loader{LookupEnv: noEnv}.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Export.Scale != 3 {
		t.Errorf("Export.Scale = %d, expected 3", cfg.Export.Scale)
	}
	if cfg.Export.Padding != 35 || cfg.BoardSize != 500 || !cfg.ShowNotation {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestCustomPathErrors(t *testing.T) {
	if _, err := (Loader{LookupEnv: noEnv}).Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "scheme: [unclosed\n")
	_, err := Loader{LookupEnv: noEnv}.Load(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load(bad) error = %v, expected parse failure", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvScheme:      "bisexual",
		EnvOrientation: "b",
		EnvBoardSize:   "650",
	}
	l := Loader{
		HomeDir:   t.TempDir(),
		WorkDir:   t.TempDir(),
		LookupEnv: func(k string) (string, bool) { v, ok := env[k]; return v, ok },
	}

	cfg, err := l.Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scheme != "bisexual" || cfg.Orientation != "black" || cfg.BoardSize != 650 {
		t.Errorf("env not applied: %+v", cfg)
	}

	env[EnvBoardSize] = "large"
	if _, err := l.Load(""); err == nil {
		t.Error("Load() with non-numeric board size should fail")
	}
}

func TestNormalize(t *testing.T) {
	in := Config{
		Orientation: "sideways",
		BoardSize:   2000,
		Export:      ExportConfig{Scale: -1, Padding: -5},
	}
	got := Normalize(in)

	if got.Scheme != "default" {
		t.Errorf("Scheme = %q, expected default", got.Scheme)
	}
	if got.Orientation != "white" {
		t.Errorf("Orientation = %q, expected white", got.Orientation)
	}
	if got.BoardSize != 800 {
		t.Errorf("BoardSize = %d, expected 800", got.BoardSize)
	}
	if got.Export.Scale != 2 || got.Export.Padding != 35 {
		t.Errorf("Export = %+v, expected scale 2 padding 35", got.Export)
	}
	if got.Export.Filename != "rainbow-chess-puzzle.png" || got.Export.Dir != "." {
		t.Errorf("Export = %+v, expected default filename and dir", got.Export)
	}
	if got.SSH.Address != DefaultSSHAddress || got.SSH.IdleTimeout().Minutes() != 30 {
		t.Errorf("SSH = %+v, expected defaults", got.SSH)
	}
}

func TestSnapshotOptions(t *testing.T) {
	cfg := Default()
	cfg.BoardSize = 350
	cfg.ShowNotation = false

	opts := cfg.SnapshotOptions()
	if opts.BoardSize != 350 || opts.Scale != 2 || opts.Padding != 35 || opts.Notation {
		t.Errorf("SnapshotOptions() = %+v", opts)
	}
}

func TestPalettesFile(t *testing.T) {
	cfg := Default()
	reg, err := cfg.Palettes()
	if err != nil {
		t.Fatalf("Palettes() failed: %v", err)
	}
	if reg.Len() != 18 {
		t.Errorf("built-in registry has %d schemes, expected 18", reg.Len())
	}

	cfg.PalettesFile = filepath.Join(t.TempDir(), "palettes.yaml")
	writeFile(t, cfg.PalettesFile, `schemes:
  - key: sunset
    name: Sunset
    colors: ["#FF5E5B", "#FFED66", "#00CECB"]
`)
	reg, err = cfg.Palettes()
	if err != nil {
		t.Fatalf("Palettes() failed: %v", err)
	}
	s, ok := reg.Get("sunset")
	if !ok {
		t.Fatal("sunset scheme missing")
	}
	if s.Len() != 3 || s.Name() != "Sunset" {
		t.Errorf("sunset = %s with %d accents", s.Name(), s.Len())
	}

	writeFile(t, cfg.PalettesFile, "schemes:\n  - key: broken\n    colors: [\"#FFF\"]\n")
	if _, err := cfg.Palettes(); err == nil {
		t.Error("Palettes() with a malformed color should fail")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	writeFile(t, path, EnvScheme+"=aromantic\n")
	t.Setenv(EnvScheme, "")
	os.Unsetenv(EnvScheme)

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv(missing) failed: %v", err)
	}
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() failed: %v", err)
	}
	if got := os.Getenv(EnvScheme); got != "aromantic" {
		t.Errorf("%s = %q, expected aromantic", EnvScheme, got)
	}
}
