package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MovePiece validates and applies a move. On failure the board is left
// unchanged and the error wraps ErrInvalidSquare, ErrNoPiece or
// ErrIllegalMove. On success the destination occupant is discarded and
// returned when it belongs to the other colour. A move from a square to
// itself leaves the board as it was.
//
// Only king moves are checked for self-check; moving any other piece may
// expose its own king.
func MovePiece(board *chess.Board, from, to chess.Square, detector CheckDetector) (*chess.Piece, error) {
	if !from.Valid() || !to.Valid() {
		return nil, &errors.MoveError{Err: errors.ErrInvalidSquare, From: from.String(), To: to.String()}
	}

	piece := board.Get(from)
	if piece == nil {
		return nil, &errors.MoveError{Err: errors.ErrNoPiece, From: from.String()}
	}

	if !IsValidMove(board, from, to, detector) {
		return nil, &errors.MoveError{
			Err:   errors.ErrIllegalMove,
			From:  from.String(),
			To:    to.String(),
			Piece: piece.String(),
		}
	}

	target := board.Get(to)
	board.Squares[from.Row][from.Col] = nil
	board.Squares[to.Row][to.Col] = piece

	if target != nil && target.Colour != piece.Colour {
		return target, nil
	}
	return nil, nil
}
