package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Zobrist keys: one per (colour, kind, square), plus black to move.
var (
	zobristPiece [2][6][chess.BoardSize * chess.BoardSize]uint64
	zobristSide  uint64
)

func init() {
	// Fixed seed so hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := range zobristPiece {
		for k := range zobristPiece[c] {
			for sq := range zobristPiece[c][k] {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	zobristSide = rnd.Uint64()
}

// GenerateZobristHash computes the Zobrist hash of a board with the given
// side to move.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := board.Squares[row][col]; p != nil {
				key ^= zobristPiece[p.Colour][p.Kind][row*chess.BoardSize+col]
			}
		}
	}
	if toMove == chess.Black {
		key ^= zobristSide
	}
	return key
}

// WeakHash is a cheap secondary hash: the sum of piece codes weighted by
// square index. Two positions with equal Zobrist hashes but different
// weak hashes are a Zobrist collision.
func WeakHash(board *chess.Board) uint32 {
	var h uint32
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := board.Squares[row][col]; p != nil {
				code := uint32(p.Colour)*6 + uint32(p.Kind) + 1
				h += code * uint32(row*chess.BoardSize+col+1)
			}
		}
	}
	return h
}
