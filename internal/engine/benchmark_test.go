package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"BackRank":  backRankMate,
	"FoolsMate": foolsMate,
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkToFEN(b *testing.B) {
	board, toMove, _ := NewBoardFromFEN(benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ToFEN(board, toMove)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	analyzer := NewAnalyzer(nil)
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, toMove, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				analyzer.IsInCheck(board, toMove)
			}
		})
	}
}

func BenchmarkIsCheckmate(b *testing.B) {
	analyzer := NewAnalyzer(nil)
	for _, name := range []string{"BackRank", "FoolsMate"} {
		b.Run(name, func(b *testing.B) {
			board, toMove, _ := NewBoardFromFEN(benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				analyzer.IsCheckmate(board, toMove)
			}
		})
	}
}

func BenchmarkHasLegalMoves(b *testing.B) {
	analyzer := NewAnalyzer(nil)
	for _, name := range []string{"Initial", "Midgame", "Endgame"} {
		b.Run(name, func(b *testing.B) {
			board, _, _ := NewBoardFromFEN(benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HasLegalMoves(board, chess.White, analyzer)
			}
		})
	}
}
