// Package hashing provides position hashing and duplicate position detection.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PositionSignature identifies a position in the detector.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for collision checks
	WeakHash uint32
	// ToMove is the side to move
	ToMove chess.Colour
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	hashTable      map[uint64][]PositionSignature
	duplicateCount int
	maxCapacity    int
	size           int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity; once full, new positions are
// no longer recorded but are still compared against those already stored.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// Signature computes the signature of a position.
func Signature(board *chess.Board, toMove chess.Colour) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(board, toMove),
		WeakHash: WeakHash(board),
		ToMove:   toMove,
	}
}

// CheckAndAdd checks if a position was seen before and records it.
// Returns true if the position is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, toMove chess.Colour) bool {
	if board == nil {
		return false
	}

	sig := Signature(board, toMove)
	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.size = 0
}
