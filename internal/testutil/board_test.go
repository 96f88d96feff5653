package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestPlaceBoard(t *testing.T) {
	board := PlaceBoard(t, "ka1", "Re1", "Kh8")

	tests := []struct {
		square string
		want   chess.Piece
	}{
		{"a1", chess.Piece{Colour: chess.Black, Kind: chess.King}},
		{"e1", chess.Piece{Colour: chess.White, Kind: chess.Rook}},
		{"h8", chess.Piece{Colour: chess.White, Kind: chess.King}},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			got := board.Get(chess.MustParseSquare(tt.square))
			AssertNotNil(t, got)
			if got != nil {
				AssertEqual(t, *got, tt.want)
			}
		})
	}

	AssertEqual(t, len(board.Pieces(chess.White)), 2)
	AssertEqual(t, len(board.Pieces(chess.Black)), 1)
}

func TestSquares(t *testing.T) {
	got := Squares(t, "a1", "e4", "h8")
	want := []chess.Square{chess.Sq(0, 0), chess.Sq(3, 4), chess.Sq(7, 7)}
	AssertEqual(t, got, want)
}

func TestAssertBoardUnchanged_Success(t *testing.T) {
	AssertBoardUnchanged(t, chess.NewInitialBoard(), chess.NewInitialBoard())
	AssertBoardUnchanged(t, PlaceBoard(t, "Ke1"), PlaceBoard(t, "Ke1"), "single king")
}
