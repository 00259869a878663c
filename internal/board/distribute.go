package board

import "github.com/vovakirdan/rainbow-chess/internal/palette"

// ColorMap assigns exactly one fill color to every square.
type ColorMap [NumSquares]palette.Color

// At returns the fill color of sq.
func (m ColorMap) At(sq Square) palette.Color {
	return m[sq.Index()]
}

// ByName returns the map keyed by algebraic square name with "#RRGGBB"
// values.
func (m ColorMap) ByName() map[string]string {
	out := make(map[string]string, NumSquares)
	for i, c := range m {
		out[SquareAt(i).String()] = c.String()
	}
	return out
}

// Distribute colors all 64 squares from a scheme.
//
// Light squares always get the scheme's light color. Dark squares draw from
// the accent palette: palettes of two to five colors use a fixed formula per
// size that keeps diagonal neighbours apart, anything else cycles through the
// accents in board traversal order.
func Distribute(s palette.Scheme) ColorMap {
	var m ColorMap
	n := s.Len()
	light := s.LightSquare()

	for i := range m {
		sq := SquareAt(i)
		if !sq.IsDark() {
			m[i] = light
			continue
		}
		m[i] = s.Accent(AccentIndex(n, sq))
	}
	return m
}

// AccentIndex returns which accent a dark square receives from a palette of
// n colors. The result is undefined for light squares or n < 1.
func AccentIndex(n int, sq Square) int {
	f, r := sq.File, sq.Rank
	switch n {
	case 2:
		return ((f + r) >> 1) % 2
	case 3:
		return (f + 2*r) % 3
	case 4:
		return (2*f + r) % 4
	case 5:
		return (3*f + 2*r) % 5
	default:
		return darkOrdinal(sq) % n
	}
}

// darkOrdinal is the position of a dark square among the 32 dark squares in
// traversal order (rank 8 first, file a first). Each rank holds four dark
// squares at every other file, so the in-rank position is file/2.
func darkOrdinal(sq Square) int {
	return (Size-sq.Rank)*(Size/2) + sq.File/2
}
