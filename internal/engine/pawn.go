package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isValidPawnMove applies the pawn rule: one square forward onto an empty
// square, two from the home row through two empty squares, or one square
// diagonally forward onto an opposing piece.
func isValidPawnMove(board *chess.Board, pawn *chess.Piece, from, to chess.Square) bool {
	dir := chess.ColourOffset(pawn.Colour)
	rowStep := to.Row - from.Row

	if to.Col == from.Col {
		if rowStep == dir {
			return board.IsEmpty(to)
		}
		if rowStep == 2*dir && from.Row == chess.PawnHomeRow(pawn.Colour) {
			return board.IsEmpty(from.Offset(dir, 0)) && board.IsEmpty(to)
		}
		return false
	}

	if abs(to.Col-from.Col) == 1 && rowStep == dir {
		target := board.Get(to)
		return target != nil && target.Colour != pawn.Colour
	}
	return false
}
