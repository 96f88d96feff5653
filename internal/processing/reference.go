package processing

import (
	"fmt"

	refchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// crossCheck asks the reference move generator whether toMove is
// checkmated. Boards without exactly one king per side are skipped since
// the reference cannot represent them.
func crossCheck(board *chess.Board, toMove chess.Colour, checkmate bool) *Reference {
	if board.CountKings(chess.White) != 1 || board.CountKings(chess.Black) != 1 {
		return &Reference{Skipped: "needs one king per side"}
	}

	mated, err := referenceCheckmate(engine.ToFEN(board, toMove))
	if err != nil {
		return &Reference{Skipped: err.Error()}
	}
	return &Reference{Checkmate: mated, Agree: mated == checkmate}
}

// referenceCheckmate loads a FEN into the reference game and reads its outcome.
func referenceCheckmate(fen string) (mated bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reference move generator failed: %v", r)
		}
	}()

	opt, err := refchess.FEN(fen)
	if err != nil {
		return false, err
	}
	game := refchess.NewGame(opt)
	return game.Method() == refchess.Checkmate, nil
}
