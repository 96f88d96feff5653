package game

import (
	"bytes"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// selfMate is a position where black's c-pawn shields its king on a7;
// advancing it two squares leaves black checkmated.
func selfMate(t *testing.T) *chess.Board {
	t.Helper()
	return testutil.PlaceBoard(t, "ka7", "pc7", "Re7", "Rh8", "Rh6", "Kh1")
}

func TestNew(t *testing.T) {
	g := New()

	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.Equal(t, WhiteToMove, g.State())
	assert.Equal(t, chess.White, g.ToMove())
	assert.True(t, g.Board().Equal(chess.NewInitialBoard()))
	assert.False(t, g.InCheck())

	assert.NotEqual(t, g.ID, New().ID, "each game gets its own ID")
}

func TestNew_WithBoard(t *testing.T) {
	board := testutil.PlaceBoard(t, "ke8", "Ke1")
	g := New(WithBoard(board, chess.Black))

	assert.Same(t, board, g.Board())
	assert.Equal(t, BlackToMove, g.State())
}

func TestMove_AlternatesTurns(t *testing.T) {
	g := New()

	res, err := g.MoveText("e2 e4")
	require.NoError(t, err)
	assert.Equal(t, "e2e4", res.Move.String())
	assert.Equal(t, chess.Piece{Colour: chess.White, Kind: chess.Pawn}, *res.Piece)
	assert.Nil(t, res.Captured)
	assert.False(t, res.Checkmate)
	assert.Equal(t, BlackToMove, g.State())

	_, err = g.MoveText("d7 d5")
	require.NoError(t, err)
	assert.Equal(t, WhiteToMove, g.State())

	res, err = g.MoveText("e4 d5")
	require.NoError(t, err)
	require.NotNil(t, res.Captured)
	assert.Equal(t, chess.Piece{Colour: chess.Black, Kind: chess.Pawn}, *res.Captured)
	assert.Equal(t, BlackToMove, g.State())
}

func TestMove_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"black piece on white's turn", "e7 e5", chesserrors.ErrWrongTurn},
		{"empty square", "e4 e5", chesserrors.ErrNoPiece},
		{"illegal pawn jump", "e2 e5", chesserrors.ErrIllegalMove},
		{"bishop through pawn", "c1 e3", chesserrors.ErrIllegalMove},
		{"one word", "e2", chesserrors.ErrInvalidInput},
		{"three words", "e2 e4 e5", chesserrors.ErrInvalidInput},
		{"long word", "e2 e44", chesserrors.ErrInvalidInput},
		{"empty", "", chesserrors.ErrInvalidInput},
		{"off-board square", "e2 e9", chesserrors.ErrInvalidSquare},
		{"bad file", "z2 e4", chesserrors.ErrInvalidSquare},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := New()

			_, err := g.MoveText(tt.text)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, WhiteToMove, g.State(), "state unchanged")
			assert.True(t, g.Board().Equal(chess.NewInitialBoard()), "board unchanged")
		})
	}

	t.Run("off-board squares", func(t *testing.T) {
		g := New()
		_, err := g.Move(chess.Sq(1, 4), chess.Sq(8, 4))
		assert.ErrorIs(t, err, chesserrors.ErrInvalidSquare)
	})
}

func TestMove_CheckmateOfMover(t *testing.T) {
	var logBuf bytes.Buffer
	g := New(WithBoard(selfMate(t), chess.Black), WithLogger(log.New(&logBuf, "", 0)))
	require.False(t, g.InCheck())

	res, err := g.MoveText("c7 c5")
	require.NoError(t, err)
	assert.True(t, res.Checkmate)
	assert.Equal(t, chess.Black, res.Loser)
	assert.Equal(t, Ended, g.State())

	assert.Contains(t, logBuf.String(), "black p c7c5")
	assert.Contains(t, logBuf.String(), "checkmate, black loses")

	_, err = g.MoveText("e7 e8")
	assert.ErrorIs(t, err, chesserrors.ErrGameOver)
}

func TestMove_CheckDoesNotEndGame(t *testing.T) {
	// On c6 the pawn shields a6 and b6 from the rook on h6.
	g := New(WithBoard(selfMate(t), chess.Black))

	res, err := g.MoveText("c7 c6")
	require.NoError(t, err)
	assert.False(t, res.Checkmate)
	assert.Equal(t, WhiteToMove, g.State())
}

func TestMove_RookStaysPut(t *testing.T) {
	board := testutil.PlaceBoard(t, "Ra1", "Ke1", "ke8")
	before := board.Copy()
	g := New(WithBoard(board, chess.White))

	res, err := g.MoveText("a1 a1")
	require.NoError(t, err)
	assert.Nil(t, res.Captured)
	assert.True(t, g.Board().Equal(before))
	assert.Equal(t, BlackToMove, g.State())
}

func TestQuit(t *testing.T) {
	g := New()
	g.Quit()
	assert.Equal(t, Ended, g.State())

	_, err := g.MoveText("e2 e4")
	assert.ErrorIs(t, err, chesserrors.ErrGameOver)
}

func TestParseMove(t *testing.T) {
	from, to, err := ParseMove("  g1   f3 ")
	require.NoError(t, err)
	assert.Equal(t, chess.Sq(0, 6), from)
	assert.Equal(t, chess.Sq(2, 5), to)

	_, _, err = ParseMove("g1f3")
	assert.ErrorIs(t, err, chesserrors.ErrInvalidInput)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "white to move", WhiteToMove.String())
	assert.Equal(t, "black to move", BlackToMove.String())
	assert.Equal(t, "ended", Ended.String())
	assert.Equal(t, "unknown", State(9).String())
}
