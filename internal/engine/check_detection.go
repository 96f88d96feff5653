package engine

import (
	"log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Analyzer answers check and checkmate questions about a board. Its
// methods leave the board exactly as they found it; intermediate trials
// mutate it in place, so a board must not be shared between goroutines
// while an analysis runs.
type Analyzer struct {
	logger *log.Logger
}

// NewAnalyzer creates an analyzer. A non-nil logger receives one line per
// escaping trial found during checkmate analysis.
func NewAnalyzer(logger *log.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// IsInCheck reports whether the first king of the given colour, in row-major
// order, can be reached by any opposing piece's movement rule. A board
// without such a king is not in check.
func (a *Analyzer) IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := findKing(board, colour)
	if !ok {
		return false
	}
	return a.isSquareAttacked(board, king, colour.Opposite())
}

// IsCheckmate reports whether the given colour is in check and no move of
// any of its pieces resolves the check. Discovered checks are not filtered:
// a non-king move that exposes the king is still tried, and counts as an
// escape only if the king ends up unattacked.
func (a *Analyzer) IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	if !a.IsInCheck(board, colour) {
		return false
	}
	return len(a.escapes(board, colour, 1)) == 0
}

// Escapes lists every move of the given colour that leaves its king out of
// check. It returns nil when the colour is not in check.
func (a *Analyzer) Escapes(board *chess.Board, colour chess.Colour) []chess.Move {
	if !a.IsInCheck(board, colour) {
		return nil
	}
	return a.escapes(board, colour, 0)
}

// escapes tries every legal move of colour and collects those that end the
// check, stopping after limit escapes when limit is positive.
func (a *Analyzer) escapes(board *chess.Board, colour chess.Colour, limit int) []chess.Move {
	var found []chess.Move
	for _, pp := range board.Pieces(colour) {
		for _, to := range Destinations(board, pp.Square, a) {
			stillInCheck := trial(board, pp.Square, to, func() bool {
				return a.IsInCheck(board, colour)
			})
			if stillInCheck {
				continue
			}
			move := chess.Move{From: pp.Square, To: to}
			if a.logger != nil {
				a.logger.Printf("%s escapes check: %s %s", colour, pp.Piece, move)
			}
			found = append(found, move)
			if limit > 0 && len(found) >= limit {
				return found
			}
		}
	}
	return found
}

// findKing finds the first king of the given colour in row-major order.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p != nil && p.Kind == chess.King && p.Colour == colour {
				return chess.Sq(row, col), true
			}
		}
	}
	return chess.Square{}, false
}

// isSquareAttacked returns true if any piece of byColour may move onto target.
// Pawns attack only through their diagonal capture rule, since the straight
// advance needs an empty destination.
func (a *Analyzer) isSquareAttacked(board *chess.Board, target chess.Square, byColour chess.Colour) bool {
	for _, pp := range board.Pieces(byColour) {
		if IsValidMove(board, pp.Square, target, a) {
			return true
		}
	}
	return false
}
