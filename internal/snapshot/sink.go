package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink is a delivery target for an encoded image. Save returns a
// human-readable location on success.
type Sink interface {
	Name() string
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

// FileSink writes the image into a directory, like a browser download.
type FileSink struct {
	Dir string
}

// Name implements Sink.
func (FileSink) Name() string { return "download" }

// Save implements Sink.
func (s FileSink) Save(ctx context.Context, filename string, data []byte) (string, error) {
	return writeFile(ctx, s.Dir, filename, data)
}

// ErrNoGallery is returned when no picture directory can be determined.
var ErrNoGallery = errors.New("no picture directory available")

// GallerySink saves into the user's picture directory. An empty Dir uses
// ~/Pictures.
type GallerySink struct {
	Dir string
}

// Name implements Sink.
func (GallerySink) Name() string { return "gallery" }

// Save implements Sink.
func (s GallerySink) Save(ctx context.Context, filename string, data []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoGallery, err)
		}
		dir = filepath.Join(home, "Pictures")
	}
	return writeFile(ctx, dir, filename, data)
}

// WriterSink streams the image to a writer such as stdout.
type WriterSink struct {
	W     io.Writer
	Label string
}

// Name implements Sink.
func (s WriterSink) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return "writer"
}

// Save implements Sink.
func (s WriterSink) Save(ctx context.Context, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.W == nil {
		return "", errors.New("no writer")
	}
	if _, err := s.W.Write(data); err != nil {
		return "", fmt.Errorf("cannot write image: %w", err)
	}
	return s.Name(), nil
}

func writeFile(ctx context.Context, dir, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create directory: %w", err)
	}
	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("cannot write file: %w", err)
	}
	return path, nil
}
