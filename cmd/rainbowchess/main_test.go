package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/rainbow-chess/internal/config"
	"github.com/vovakirdan/rainbow-chess/internal/position"
	"github.com/vovakirdan/rainbow-chess/internal/snapshot"
)

func TestLoadPosition(t *testing.T) {
	dir := t.TempDir()
	pgnPath := filepath.Join(dir, "game.pgn")
	if err := os.WriteFile(pgnPath, []byte("[Event \"?\"]\n\n1. f3 e5 2. g4 Qh4# 0-1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		fen       string
		pgn       string
		wantFEN   string
		checkmate bool
	}{
		{name: "default start", wantFEN: position.StartFEN},
		{name: "fen", fen: "8/8/8/4k3/8/8/8/4K3 w - - 0 1", wantFEN: "8/8/8/4k3/8/8/8/4K3 w - - 0 1"},
		{name: "pgn file", pgn: pgnPath, checkmate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := loadPosition(tt.fen, tt.pgn)
			if err != nil {
				t.Fatalf("loadPosition() failed: %v", err)
			}
			if tt.wantFEN != "" && pos.FEN() != tt.wantFEN {
				t.Errorf("FEN = %q, expected %q", pos.FEN(), tt.wantFEN)
			}
			if pos.Checkmate() != tt.checkmate {
				t.Errorf("Checkmate() = %v, expected %v", pos.Checkmate(), tt.checkmate)
			}
		})
	}
}

func TestLoadPositionErrors(t *testing.T) {
	if _, err := loadPosition("", filepath.Join(t.TempDir(), "missing.pgn")); err == nil {
		t.Error("missing PGN file should fail")
	}

	_, err := loadPosition("not a fen", "")
	var perr *position.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("invalid FEN error = %v, expected *position.ParseError", err)
	}
}

func TestNewExporter(t *testing.T) {
	cfg = config.Default()
	cfg.Export.Dir = t.TempDir()
	cfg.Export.GalleryDir = t.TempDir()

	tests := []struct {
		name     string
		output   string
		gallery  bool
		sinks    []string
		filename string
	}{
		{name: "configured dir", sinks: []string{"download"}, filename: snapshot.DefaultFilename},
		{name: "gallery first", gallery: true, sinks: []string{"gallery", "download"}, filename: snapshot.DefaultFilename},
		{name: "explicit output", output: "out/board.png", gallery: true, sinks: []string{"download"}, filename: "board.png"},
		{name: "stdout", output: "-", sinks: []string{"stdout"}, filename: snapshot.DefaultFilename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, name := newExporter(nil, tt.output, tt.gallery)
			if name != tt.filename {
				t.Errorf("filename = %q, expected %q", name, tt.filename)
			}
			got := exp.Sinks()
			if len(got) != len(tt.sinks) {
				t.Fatalf("sinks = %v, expected %v", got, tt.sinks)
			}
			for i := range got {
				if got[i] != tt.sinks[i] {
					t.Errorf("sinks = %v, expected %v", got, tt.sinks)
					break
				}
			}
		})
	}
}
