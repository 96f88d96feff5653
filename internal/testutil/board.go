package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PlaceBoard builds a board from placements of the form "Ka1" or "re8":
// a piece symbol (uppercase white, lowercase black) followed by a square.
// It calls t.Fatal on a malformed placement.
func PlaceBoard(t *testing.T, placements ...string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for _, p := range placements {
		if len(p) != 3 {
			t.Fatalf("bad placement %q: want symbol and square, e.g. \"Ka1\"", p)
		}
		piece, ok := chess.PieceFromSymbol(p[0])
		if !ok {
			t.Fatalf("bad placement %q: unknown piece %c", p, p[0])
		}
		sq, err := chess.ParseSquare(p[1:])
		if err != nil {
			t.Fatalf("bad placement %q: %v", p, err)
		}
		if err := board.Set(sq, piece); err != nil {
			t.Fatalf("bad placement %q: %v", p, err)
		}
	}
	return board
}

// Squares parses algebraic square names, calling t.Fatal on a bad one.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("bad square %q: %v", name, err)
		}
		squares = append(squares, sq)
	}
	return squares
}

// AssertBoardUnchanged fails when any square of got differs from want
// in colour or kind. The diff is reported in the board's text rendering.
func AssertBoardUnchanged(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got.Equal(want) {
		return
	}
	report(t, "board changed (-want +got):\n"+cmp.Diff(want.String(), got.String()), msgAndArgs...)
}
