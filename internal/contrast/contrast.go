// Package contrast picks readable foreground colors for notation glyphs drawn
// over a palette.
package contrast

import "github.com/vovakirdan/rainbow-chess/internal/palette"

// lightThreshold is the brightness above which a color counts as light, in
// thousandths so the comparison stays in integers.
const lightThreshold = 155 * 1000

// Style is the foreground treatment for glyphs on one square class.
type Style struct {
	Foreground palette.Color
	Bold       bool
}

// Styles holds the notation style for each square class.
type Styles struct {
	Light Style
	Dark  Style
}

// For returns the style for a light (false) or dark (true) square.
func (s Styles) For(dark bool) Style {
	if dark {
		return s.Dark
	}
	return s.Light
}

// weightedSum is 299R + 587G + 114B, the BT.601 luma scaled by 1000.
func weightedSum(c palette.Color) int {
	r, g, b := c.RGB()
	return 299*int(r) + 587*int(g) + 114*int(b)
}

// Brightness returns the perceptual brightness of c in [0, 255].
func Brightness(c palette.Color) float64 {
	return float64(weightedSum(c)) / 1000
}

// IsLight reports whether c is bright enough to need dark text.
// A brightness of exactly 155 is not light.
func IsLight(c palette.Color) bool {
	return weightedSum(c) > lightThreshold
}

// Resolve derives the notation styles for a scheme.
//
// Glyphs on light squares are black when the light color is light and white
// otherwise. Glyphs on dark squares follow a vote over the accent colors:
// white when a strict majority of accents is light, black otherwise, so a
// tie goes to black.
func Resolve(s palette.Scheme) Styles {
	lightFg := palette.White
	if IsLight(s.LightSquare()) {
		lightFg = palette.Black
	}

	lightAccents := 0
	for _, c := range s.Accents() {
		if IsLight(c) {
			lightAccents++
		}
	}
	darkFg := palette.Black
	if 2*lightAccents > s.Len() {
		darkFg = palette.White
	}

	return Styles{
		Light: Style{Foreground: lightFg, Bold: true},
		Dark:  Style{Foreground: darkFg, Bold: true},
	}
}
