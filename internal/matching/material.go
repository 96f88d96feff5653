// Package matching provides position filtering by material balance.
package matching

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// pieceKinds is the number of distinct piece kinds.
const pieceKinds = int(chess.King) + 1

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces [pieceKinds]int
	blackPieces [pieceKinds]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
// Letters of the wrong case for their side, and unknown letters, are ignored.
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	parts := strings.Split(pattern, ":")
	countPieces(&mm.whitePieces, parts[0], chess.White)
	if len(parts) >= 2 {
		countPieces(&mm.blackPieces, parts[1], chess.Black)
	}
	return mm
}

// countPieces adds each piece symbol of the given colour in s to counts.
func countPieces(counts *[pieceKinds]int, s string, colour chess.Colour) {
	for i := 0; i < len(s); i++ {
		piece, ok := chess.PieceFromSymbol(s[i])
		if !ok || piece.Colour != colour {
			continue
		}
		counts[piece.Kind]++
	}
}

// MatchBoard checks if a position matches the material pattern.
func (mm *MaterialMatcher) MatchBoard(board *chess.Board) bool {
	if board == nil {
		return false
	}

	var whiteCounts, blackCounts [pieceKinds]int
	for _, pp := range board.Pieces(chess.White) {
		whiteCounts[pp.Piece.Kind]++
	}
	for _, pp := range board.Pieces(chess.Black) {
		blackCounts[pp.Piece.Kind]++
	}

	if mm.exactMatch {
		return whiteCounts == mm.whitePieces && blackCounts == mm.blackPieces
	}
	return atLeast(whiteCounts, mm.whitePieces) && atLeast(blackCounts, mm.blackPieces)
}

// atLeast reports whether have holds at least every count in want.
func atLeast(have, want [pieceKinds]int) bool {
	for kind, count := range want {
		if have[kind] < count {
			return false
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// Pattern returns the pattern the matcher was built from.
func (mm *MaterialMatcher) Pattern() string {
	return mm.pattern
}
