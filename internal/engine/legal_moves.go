package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Destinations returns every square the piece on from may move to, in
// row-major order. King destinations are filtered through detector.
func Destinations(board *chess.Board, from chess.Square, detector CheckDetector) []chess.Square {
	if board.IsEmpty(from) {
		return nil
	}
	var targets []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if IsValidMove(board, from, to, detector) {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

// HasLegalMoves returns true if any piece of the given colour has a destination.
func HasLegalMoves(board *chess.Board, colour chess.Colour, detector CheckDetector) bool {
	for _, pp := range board.Pieces(colour) {
		if len(Destinations(board, pp.Square, detector)) > 0 {
			return true
		}
	}
	return false
}
