// Package engine provides chess move validation, check detection and
// board manipulation.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CheckDetector reports whether a colour's king is attacked on a board.
// The king's legality rule consults it; *Analyzer implements it.
type CheckDetector interface {
	IsInCheck(board *chess.Board, colour chess.Colour) bool
}

// IsValidMove reports whether the piece on from may move to to.
//
// The caller guarantees from holds the moving piece; an empty or off-board
// from, or an off-board to, is never valid. Turn order is not considered.
// A rook or queen may "move" to its own square; every other kind may not.
// Only a king move is filtered for check, by a speculative trial on the
// board asking detector; the board is restored before IsValidMove returns.
// A nil detector skips that filter.
func IsValidMove(board *chess.Board, from, to chess.Square, detector CheckDetector) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	piece := board.Get(from)
	if piece == nil {
		return false
	}

	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch piece.Kind {
	case chess.Pawn:
		return isValidPawnMove(board, piece, from, to)

	case chess.Knight:
		return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)

	case chess.Bishop:
		if rowDiff != colDiff || rowDiff == 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if rowDiff != 0 && colDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if rowDiff != colDiff && rowDiff != 0 && colDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.King:
		if max(rowDiff, colDiff) != 1 {
			return false
		}
		if detector == nil {
			return true
		}
		return !trial(board, from, to, func() bool {
			return detector.IsInCheck(board, piece.Colour)
		})
	}

	return false
}
