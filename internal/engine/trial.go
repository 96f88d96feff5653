package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// trial moves the occupant of from onto to, evaluates probe on the moved
// position and puts both squares back. The restore is deferred so it also
// runs when probe panics.
func trial(board *chess.Board, from, to chess.Square, probe func() bool) bool {
	snap := board.Save(from, to)
	defer board.Restore(snap)

	piece := board.Squares[from.Row][from.Col]
	board.Squares[from.Row][from.Col] = nil
	board.Squares[to.Row][to.Col] = piece

	return probe()
}
