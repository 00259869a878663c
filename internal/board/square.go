// Package board models the 8x8 chessboard geometry and maps a palette onto
// its squares.
package board

import "fmt"

// Size is the number of files and ranks.
const Size = 8

// NumSquares is the number of squares on the board.
const NumSquares = Size * Size

// Square identifies a board square. File is 0-7 (a-h), Rank is 1-8.
type Square struct {
	File int
	Rank int
}

// NewSquare builds a square from a file index (0-7) and rank (1-8).
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare decodes algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("board: invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '0')
	sq := Square{File: file, Rank: rank}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("board: invalid square %q", s)
	}
	return sq, nil
}

// MustParseSquare is ParseSquare for literals; it panics on bad input.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < Size && s.Rank >= 1 && s.Rank <= Size
}

// Parity is (file + rank) mod 2.
func (s Square) Parity() int {
	return (s.File + s.Rank) % 2
}

// IsDark reports whether the square belongs to the dark color class.
func (s Square) IsDark() bool {
	return s.Parity() == 1
}

// FileLetter returns 'a'..'h'.
func (s Square) FileLetter() byte {
	return byte('a' + s.File)
}

// String returns algebraic notation such as "e4".
func (s Square) String() string {
	return string([]byte{s.FileLetter(), byte('0' + s.Rank)})
}

// Index returns a dense 0-63 index, a1 = 0, h8 = 63.
func (s Square) Index() int {
	return (s.Rank-1)*Size + s.File
}

// SquareAt is the inverse of Index.
func SquareAt(index int) Square {
	return Square{File: index % Size, Rank: index/Size + 1}
}

// All returns every square, rank 8 down to rank 1 and file a to h within a
// rank. This is the traversal order used for round-robin coloring.
func All() []Square {
	out := make([]Square, 0, NumSquares)
	for rank := Size; rank >= 1; rank-- {
		for file := 0; file < Size; file++ {
			out = append(out, Square{File: file, Rank: rank})
		}
	}
	return out
}

// DarkSquares returns the 32 dark squares in traversal order (see All).
func DarkSquares() []Square {
	out := make([]Square, 0, NumSquares/2)
	for _, sq := range All() {
		if sq.IsDark() {
			out = append(out, sq)
		}
	}
	return out
}
