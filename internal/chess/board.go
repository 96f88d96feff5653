package chess

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board is an 8x8 grid of optional pieces, addressed Squares[row][col].
// A nil entry is an empty square. The board owns the pieces on it; a
// captured piece is simply dropped.
type Board struct {
	Squares [BoardSize][BoardSize]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// backRank is the file order of the pieces on each side's first row.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]*Piece{}

	for col := 0; col < BoardSize; col++ {
		b.Squares[BackRow(White)][col] = W(backRank[col])
		b.Squares[PawnHomeRow(White)][col] = W(Pawn)
		b.Squares[PawnHomeRow(Black)][col] = B(Pawn)
		b.Squares[BackRow(Black)][col] = B(backRank[col])
	}
}

// Get returns the piece at the given square, or nil if the square is
// empty or off the board.
func (b *Board) Get(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at the given square, replacing any occupant.
func (b *Board) Set(sq Square, piece *Piece) error {
	if !sq.Valid() {
		return &errors.MoveError{Err: errors.ErrInvalidSquare, To: sq.String()}
	}
	b.Squares[sq.Row][sq.Col] = piece
	return nil
}

// Clear empties the given square.
func (b *Board) Clear(sq Square) error {
	return b.Set(sq, nil)
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == nil
}

// Copy creates a deep copy of the board. Pieces are copied too, so the
// copy shares no state with the original.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; p != nil {
				cp := *p
				newBoard.Squares[row][col] = &cp
			}
		}
	}
	return newBoard
}

// Equal reports whether both boards hold the same colour and kind on every square.
func (b *Board) Equal(other *Board) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p, q := b.Squares[row][col], other.Squares[row][col]
			if (p == nil) != (q == nil) {
				return false
			}
			if p != nil && *p != *q {
				return false
			}
		}
	}
	return true
}

// PlacedPiece pairs a piece with the square it stands on.
type PlacedPiece struct {
	Square Square
	Piece  *Piece
}

// Pieces returns every piece of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []PlacedPiece {
	var pieces []PlacedPiece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p != nil && p.Colour == colour {
				pieces = append(pieces, PlacedPiece{Square: Sq(row, col), Piece: p})
			}
		}
	}
	return pieces
}

// CountKings returns the number of kings of the given colour.
func (b *Board) CountKings(colour Colour) int {
	n := 0
	for _, pp := range b.Pieces(colour) {
		if pp.Piece.Kind == King {
			n++
		}
	}
	return n
}

// String renders the board one row per line, row 0 first, squares
// separated by spaces, '.' for an empty square, followed by a blank line.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if p := b.Squares[row][col]; p != nil {
				sb.WriteByte(p.Symbol())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// SquareState records the occupant of one square at snapshot time.
type SquareState struct {
	Square Square
	Piece  *Piece
}

// Snapshot captures the occupants of a set of squares for later restoration.
// It is cheaper than Copy() when only a few squares are about to change
// (e.g., a speculative move).
type Snapshot []SquareState

// Save captures the current occupants of the given squares.
// Off-board squares are ignored.
func (b *Board) Save(squares ...Square) Snapshot {
	snap := make(Snapshot, 0, len(squares))
	for _, sq := range squares {
		if sq.Valid() {
			snap = append(snap, SquareState{Square: sq, Piece: b.Squares[sq.Row][sq.Col]})
		}
	}
	return snap
}

// Restore puts back the occupants recorded in a snapshot. Entries are
// applied in reverse so a square saved twice ends up with its first value.
func (b *Board) Restore(snap Snapshot) {
	for i := len(snap) - 1; i >= 0; i-- {
		s := snap[i]
		b.Squares[s.Square.Row][s.Square.Col] = s.Piece
	}
}
