package position

// Side is the color of a player.
type Side int

const (
	White Side = iota
	Black
)

// String returns "White" or "Black".
func (s Side) String() string {
	if s == Black {
		return "Black"
	}
	return "White"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

// Kind is a piece type.
type Kind int

const (
	King Kind = iota + 1
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// Piece is a colored piece on the board.
type Piece struct {
	Side Side
	Kind Kind
}

var (
	letters = map[Kind]rune{King: 'K', Queen: 'Q', Rook: 'R', Bishop: 'B', Knight: 'N', Pawn: 'P'}
	// Solid glyphs render the same shape for both sides; the renderer colors them.
	solidGlyphs = map[Kind]rune{King: '♚', Queen: '♛', Rook: '♜', Bishop: '♝', Knight: '♞', Pawn: '♟'}
)

// Letter returns the English piece letter, upper case for White and lower
// case for Black, as in FEN.
func (p Piece) Letter() rune {
	r := letters[p.Kind]
	if p.Side == Black {
		r += 'a' - 'A'
	}
	return r
}

// Glyph returns the filled chess symbol for the piece kind.
func (p Piece) Glyph() rune {
	return solidGlyphs[p.Kind]
}
