// Package snapshot rasterizes a themed board into an image and delivers the
// encoded PNG through an ordered chain of sinks.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/rainbow-chess/internal/board"
	"github.com/vovakirdan/rainbow-chess/internal/palette"
	"github.com/vovakirdan/rainbow-chess/internal/position"
	"github.com/vovakirdan/rainbow-chess/internal/theme"
)

// Board size limits in unscaled pixels.
const (
	MinBoardSize     = 300
	MaxBoardSize     = 800
	DefaultBoardSize = 500
	BoardSizeStep    = 50
	DefaultPadding   = 35
	DefaultScale     = 2
	maxScale         = 4
)

// Options control the raster layout. Sizes are in unscaled pixels; the
// output is Scale times larger.
type Options struct {
	BoardSize int
	Padding   int
	Scale     int
	Notation  bool
}

// DefaultOptions mirrors the on-screen board: 500px, 35px white frame,
// captured at twice the resolution.
func DefaultOptions() Options {
	return Options{
		BoardSize: DefaultBoardSize,
		Padding:   DefaultPadding,
		Scale:     DefaultScale,
		Notation:  true,
	}
}

// Normalize clamps the options into their supported ranges.
func (o Options) Normalize() Options {
	o.BoardSize = ClampBoardSize(o.BoardSize)
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.Scale < 1 {
		o.Scale = 1
	}
	if o.Scale > maxScale {
		o.Scale = maxScale
	}
	return o
}

// ClampBoardSize keeps a board size within [MinBoardSize, MaxBoardSize].
// Zero selects the default.
func ClampBoardSize(n int) int {
	switch {
	case n == 0:
		return DefaultBoardSize
	case n < MinBoardSize:
		return MinBoardSize
	case n > MaxBoardSize:
		return MaxBoardSize
	}
	return n
}

// Layout holds the pixel geometry of one render.
type Layout struct {
	Square int
	Margin int
	Width  int
	Height int
}

// LayoutFor computes the scaled geometry. The board edge is rounded down to
// a multiple of eight so every square has the same size.
func LayoutFor(o Options) Layout {
	o = o.Normalize()
	sq := o.BoardSize * o.Scale / board.Size
	margin := o.Padding * o.Scale
	edge := sq*board.Size + 2*margin
	return Layout{Square: sq, Margin: margin, Width: edge, Height: edge}
}

// Origin returns the top-left pixel of the square shown at display row and
// column.
func (l Layout) Origin(row, col int) image.Point {
	return image.Pt(l.Margin+col*l.Square, l.Margin+row*l.Square)
}

var (
	boldOnce sync.Once
	boldFont *opentype.Font
	boldErr  error
)

func loadBold() (*opentype.Font, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = opentype.Parse(gobold.TTF)
	})
	return boldFont, boldErr
}

func newFace(size float64) (font.Face, error) {
	f, err := loadBold()
	if err != nil {
		return nil, fmt.Errorf("snapshot: cannot parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: cannot create font face: %w", err)
	}
	return face, nil
}

// Render paints the board of th with the pieces of pos (nil for an empty
// board) onto a white frame.
func Render(th theme.Theme, pos *position.Position, o Options) (*image.RGBA, error) {
	o = o.Normalize()
	l := LayoutFor(o)
	img := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	labelFace, err := newFace(float64(l.Square) * 0.2)
	if err != nil {
		return nil, err
	}
	defer labelFace.Close()
	pieceFace, err := newFace(float64(l.Square) * 0.42)
	if err != nil {
		return nil, err
	}
	defer pieceFace.Close()

	rows := th.Rows()
	for r := range rows {
		for c, sq := range rows[r] {
			at := l.Origin(r, c)
			cell := image.Rect(at.X, at.Y, at.X+l.Square, at.Y+l.Square)
			draw.Draw(img, cell, image.NewUniform(rgba(th.Fill(sq))), image.Point{}, draw.Src)

			if o.Notation {
				drawLabel(img, labelFace, cell, th.LabelAt(sq))
			}
			if pos != nil {
				if pc, ok := pos.PieceAt(sq); ok {
					drawPiece(img, pieceFace, cell, pc)
				}
			}
		}
	}
	return img, nil
}

func rgba(c palette.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// drawLabel puts the rank digit in the top-left corner of the square and the
// file letter in the bottom-right corner.
func drawLabel(dst draw.Image, face font.Face, cell image.Rectangle, lb theme.Label) {
	if lb.Empty() {
		return
	}
	inset := cell.Dx() / 16
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(rgba(lb.Style.Foreground)), Face: face}
	m := face.Metrics()

	if lb.Rank != "" {
		d.Dot = fixed.P(cell.Min.X+inset, cell.Min.Y+inset)
		d.Dot.Y += m.Ascent
		d.DrawString(lb.Rank)
	}
	if lb.File != "" {
		w := d.MeasureString(lb.File)
		d.Dot = fixed.P(cell.Max.X-inset, cell.Max.Y-inset)
		d.Dot.X -= w
		d.Dot.Y -= m.Descent
		d.DrawString(lb.File)
	}
}

var (
	lightPiece = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	darkPiece  = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
)

// drawPiece draws a piece as an outlined disc with its letter centered.
func drawPiece(dst draw.Image, face font.Face, cell image.Rectangle, pc position.Piece) {
	fill, ink := lightPiece, darkPiece
	if pc.Side == position.Black {
		fill, ink = darkPiece, lightPiece
	}

	center := image.Pt(cell.Min.X+cell.Dx()/2, cell.Min.Y+cell.Dy()/2)
	radius := cell.Dx() * 36 / 100
	outline := radius / 10
	if outline < 1 {
		outline = 1
	}
	fillDisc(dst, center, radius, ink)
	fillDisc(dst, center, radius-outline, fill)

	letter := string(position.Piece{Side: position.White, Kind: pc.Kind}.Letter())
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(ink), Face: face}
	m := face.Metrics()
	w := d.MeasureString(letter)
	d.Dot = fixed.P(center.X, center.Y)
	d.Dot.X -= w / 2
	d.Dot.Y += (m.Ascent - m.Descent) / 2
	d.DrawString(letter)
}

func fillDisc(dst draw.Image, center image.Point, radius int, c color.Color) {
	if radius <= 0 {
		return
	}
	mask := &disc{center: center, r: radius}
	draw.DrawMask(dst, mask.Bounds(), image.NewUniform(c), image.Point{}, mask, mask.Bounds().Min, draw.Over)
}

// disc is an alpha mask for a filled circle.
type disc struct {
	center image.Point
	r      int
}

func (d *disc) ColorModel() color.Model { return color.AlphaModel }

func (d *disc) Bounds() image.Rectangle {
	return image.Rect(d.center.X-d.r, d.center.Y-d.r, d.center.X+d.r, d.center.Y+d.r)
}

func (d *disc) At(x, y int) color.Color {
	dx, dy := x-d.center.X, y-d.center.Y
	if dx*dx+dy*dy <= d.r*d.r {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

// Thumbnail scales img down to the given width, keeping the aspect ratio.
func Thumbnail(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	if width <= 0 || width >= b.Dx() {
		width = b.Dx()
	}
	height := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
