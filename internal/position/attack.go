package position

import "github.com/vovakirdan/rainbow-chess/internal/board"

var (
	knightSteps = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookDirs    = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// inCheck reports whether side's king is attacked. A board without that
// king is never in check.
func inCheck(pieces map[board.Square]Piece, side Side) bool {
	for sq, p := range pieces {
		if p.Side == side && p.Kind == King {
			return attacked(pieces, sq, side.Opponent())
		}
	}
	return false
}

// attacked reports whether target is attacked by any piece of side by.
func attacked(pieces map[board.Square]Piece, target board.Square, by Side) bool {
	at := func(df, dr int) (Piece, bool) {
		sq := board.Square{File: target.File + df, Rank: target.Rank + dr}
		if !sq.Valid() {
			return Piece{}, false
		}
		p, ok := pieces[sq]
		return p, ok
	}

	// Pawns attack diagonally forward, so look one rank behind the target
	// from the attacker's point of view.
	pawnRank := -1
	if by == Black {
		pawnRank = 1
	}
	for _, df := range []int{-1, 1} {
		if p, ok := at(df, pawnRank); ok && p == (Piece{Side: by, Kind: Pawn}) {
			return true
		}
	}

	for _, st := range knightSteps {
		if p, ok := at(st[0], st[1]); ok && p == (Piece{Side: by, Kind: Knight}) {
			return true
		}
	}
	for _, st := range kingSteps {
		if p, ok := at(st[0], st[1]); ok && p == (Piece{Side: by, Kind: King}) {
			return true
		}
	}

	slide := func(dirs [4][2]int, kinds ...Kind) bool {
		for _, d := range dirs {
			for step := 1; step < board.Size; step++ {
				sq := board.Square{File: target.File + d[0]*step, Rank: target.Rank + d[1]*step}
				if !sq.Valid() {
					break
				}
				p, ok := pieces[sq]
				if !ok {
					continue
				}
				if p.Side == by {
					for _, k := range kinds {
						if p.Kind == k {
							return true
						}
					}
				}
				break
			}
		}
		return false
	}

	return slide(rookDirs, Rook, Queen) || slide(bishopDirs, Bishop, Queen)
}
