package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultFilename is used when the caller does not name the export.
const DefaultFilename = "rainbow-chess-puzzle.png"

// Encode compresses img as PNG.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("snapshot: cannot encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Result reports where an export ended up.
type Result struct {
	Sink     string
	Filename string
	Location string
	Bytes    int
}

// SinkError is one failed delivery attempt.
type SinkError struct {
	Sink string
	Err  error
}

func (e SinkError) Error() string {
	return e.Sink + ": " + e.Err.Error()
}

func (e SinkError) Unwrap() error { return e.Err }

// CaptureError is returned when an image could not be produced or no sink
// accepted it.
type CaptureError struct {
	Filename string
	Attempts []SinkError
	Err      error
}

func (e *CaptureError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "snapshot: error exporting image %q", e.Filename)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	for _, a := range e.Attempts {
		b.WriteString("; ")
		b.WriteString(a.Error())
	}
	return b.String()
}

func (e *CaptureError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts)+1)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	for _, a := range e.Attempts {
		errs = append(errs, a)
	}
	return errs
}

// ErrNoSinks is wrapped by CaptureError when the exporter has nowhere to
// deliver.
var ErrNoSinks = errors.New("no sinks configured")

// Exporter encodes images and hands them to the first sink that accepts
// them.
type Exporter struct {
	sinks  []Sink
	logger *log.Logger
}

// NewExporter creates an exporter trying sinks in order. A nil logger
// discards output.
func NewExporter(logger *log.Logger, sinks ...Sink) *Exporter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Exporter{sinks: sinks, logger: logger}
}

// Sinks returns the names of the configured sinks in try order.
func (e *Exporter) Sinks() []string {
	names := make([]string, len(e.sinks))
	for i, s := range e.sinks {
		names[i] = s.Name()
	}
	return names
}

// Export encodes img and delivers it under filename.
func (e *Exporter) Export(ctx context.Context, img image.Image, filename string) (Result, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	data, err := Encode(img)
	if err != nil {
		return Result{}, &CaptureError{Filename: filename, Err: err}
	}
	return e.Deliver(ctx, data, filename)
}

// Deliver hands already encoded data to the sinks.
func (e *Exporter) Deliver(ctx context.Context, data []byte, filename string) (Result, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	if len(e.sinks) == 0 {
		return Result{}, &CaptureError{Filename: filename, Err: ErrNoSinks}
	}

	capErr := &CaptureError{Filename: filename}
	for _, s := range e.sinks {
		if err := ctx.Err(); err != nil {
			capErr.Err = err
			return Result{}, capErr
		}
		loc, err := s.Save(ctx, filename, data)
		if err != nil {
			e.logger.Warn("sink failed", "sink", s.Name(), "error", err)
			capErr.Attempts = append(capErr.Attempts, SinkError{Sink: s.Name(), Err: err})
			continue
		}
		e.logger.Info("image exported", "sink", s.Name(), "location", loc, "bytes", len(data))
		return Result{Sink: s.Name(), Filename: filename, Location: loc, Bytes: len(data)}, nil
	}
	return Result{}, capErr
}
