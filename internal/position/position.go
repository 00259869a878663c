// Package position loads chess positions from FEN or PGN text and answers
// status queries about them. Rules and notation parsing are delegated to
// github.com/notnil/chess; callers only see the Engine and Position types.
package position

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/vovakirdan/rainbow-chess/internal/board"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Format names a position notation.
type Format int

const (
	FEN Format = iota
	PGN
)

// String returns "FEN" or "PGN".
func (f Format) String() string {
	if f == PGN {
		return "PGN"
	}
	return "FEN"
}

// ErrEmptyInput is wrapped by ParseError when the text is blank.
var ErrEmptyInput = errors.New("empty input")

// ParseError reports text that could not be loaded as a position.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s format: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Engine loads positions. It is the capability the presentation layer
// depends on; tests may substitute their own.
type Engine interface {
	Start() *Position
	LoadFEN(text string) (*Position, error)
	LoadPGN(text string) (*Position, error)
	Load(f Format, text string) (*Position, error)
}

// Chess is the Engine backed by notnil/chess.
type Chess struct{}

// NewEngine returns the default engine.
func NewEngine() Chess { return Chess{} }

// Start returns the standard initial position.
func (Chess) Start() *Position {
	return newPosition(chess.NewGame())
}

// Load parses text in the given format.
func (c Chess) Load(f Format, text string) (*Position, error) {
	if f == PGN {
		return c.LoadPGN(text)
	}
	return c.LoadFEN(text)
}

// LoadFEN parses a FEN record. Runs of whitespace between fields are
// accepted.
func (Chess) LoadFEN(text string) (*Position, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, &ParseError{Format: FEN, Err: ErrEmptyInput}
	}
	opt, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		return nil, &ParseError{Format: FEN, Err: err}
	}
	return newPosition(chess.NewGame(opt)), nil
}

// LoadPGN parses a PGN game record and returns its final position.
func (Chess) LoadPGN(text string) (*Position, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ParseError{Format: PGN, Err: ErrEmptyInput}
	}
	opt, err := chess.PGN(strings.NewReader(text))
	if err != nil {
		return nil, &ParseError{Format: PGN, Err: err}
	}
	return newPosition(chess.NewGame(opt)), nil
}

// ValidateFEN reports whether text loads as a FEN record.
func ValidateFEN(text string) bool {
	_, err := Chess{}.LoadFEN(text)
	return err == nil
}

// ValidatePGN reports whether text loads as a PGN game.
func ValidatePGN(text string) bool {
	_, err := Chess{}.LoadPGN(text)
	return err == nil
}

// Position is a loaded, read-only chess position with its status flags
// computed once at load time.
type Position struct {
	fen       string
	turn      Side
	pieces    map[board.Square]Piece
	moves     int
	inCheck   bool
	draw      bool
	plies     int
	outcome   string
	drawClaim bool
}

func newPosition(g *chess.Game) *Position {
	pos := g.Position()

	p := &Position{
		fen:     g.FEN(),
		turn:    White,
		pieces:  make(map[board.Square]Piece, 32),
		moves:   len(g.ValidMoves()),
		plies:   len(g.Moves()),
		outcome: string(g.Outcome()),
	}
	if pos.Turn() == chess.Black {
		p.turn = Black
	}

	for sq, pc := range pos.Board().SquareMap() {
		kind, ok := kinds[pc.Type()]
		if !ok {
			continue
		}
		side := White
		if pc.Color() == chess.Black {
			side = Black
		}
		p.pieces[board.Square{File: int(sq.File()), Rank: int(sq.Rank()) + 1}] = Piece{Side: side, Kind: kind}
	}

	p.inCheck = inCheck(p.pieces, p.turn)
	p.draw = g.Outcome() == chess.Draw
	for _, m := range g.EligibleDraws() {
		if m == chess.ThreefoldRepetition || m == chess.FiftyMoveRule {
			p.drawClaim = true
		}
	}
	return p
}

var kinds = map[chess.PieceType]Kind{
	chess.King:   King,
	chess.Queen:  Queen,
	chess.Rook:   Rook,
	chess.Bishop: Bishop,
	chess.Knight: Knight,
	chess.Pawn:   Pawn,
}

// FEN serializes the position.
func (p *Position) FEN() string { return p.fen }

// Turn returns the side to move.
func (p *Position) Turn() Side { return p.turn }

// Plies returns the number of half-moves played to reach the position
// (zero for positions loaded from FEN).
func (p *Position) Plies() int { return p.plies }

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.inCheck }

// Checkmate reports whether the side to move is checkmated.
func (p *Position) Checkmate() bool { return p.inCheck && p.moves == 0 }

// Stalemate reports whether the side to move has no legal move but is not
// in check.
func (p *Position) Stalemate() bool { return !p.inCheck && p.moves == 0 }

// Draw reports a drawn position: stalemate, insufficient material, or a
// claimable threefold repetition or fifty-move rule.
func (p *Position) Draw() bool {
	return p.draw || p.drawClaim || p.Stalemate()
}

// GameOver reports whether play cannot continue or a draw applies.
func (p *Position) GameOver() bool {
	return p.Checkmate() || p.Draw()
}

// Result describes how the game ended, or "" while it is in progress.
func (p *Position) Result() string {
	switch {
	case p.Checkmate():
		return "Checkmate"
	case p.Stalemate():
		return "Stalemate"
	case p.Draw():
		return "Draw"
	case p.GameOver():
		return "Game Over"
	default:
		return ""
	}
}

// Outcome returns the PGN result token ("1-0", "0-1", "1/2-1/2" or "*").
func (p *Position) Outcome() string { return p.outcome }

// PieceAt returns the piece on sq, if any.
func (p *Position) PieceAt(sq board.Square) (Piece, bool) {
	pc, ok := p.pieces[sq]
	return pc, ok
}

// Pieces returns a copy of the occupied squares.
func (p *Position) Pieces() map[board.Square]Piece {
	out := make(map[board.Square]Piece, len(p.pieces))
	for sq, pc := range p.pieces {
		out[sq] = pc
	}
	return out
}
