// Package palette holds the catalog of named board color schemes.
// The built-in catalog is parsed once from embedded YAML at package
// initialization and never mutated afterwards.
package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB value. Its canonical text form is "#RRGGBB".
type Color uint32

// Common colors used for notation foregrounds.
const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
)

// RGB builds a Color from channel bytes.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseColor decodes a "#RRGGBB" string. Hex digits are case-insensitive.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("palette: invalid color %q: want #RRGGBB", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("palette: invalid color %q: %w", s, err)
	}
	return RGB(c.RGB255()), nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// Intended for static data only.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB returns the red, green and blue channel bytes.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String returns the canonical "#RRGGBB" form.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}
