package hashing

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(0)
	board, toMove, err := engine.NewBoardFromFEN(engine.InitialFEN)
	if err != nil {
		t.Fatal(err)
	}

	const numPositions = 100
	const numWorkers = 10
	perWorker := numPositions / numWorkers

	boards := make([]*chess.Board, numPositions)
	for i := range boards {
		boards[i] = board.Copy()
	}

	var duplicates atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if detector.CheckAndAdd(boards[workerID*perWorker+j], toMove) {
					duplicates.Add(1)
				}
			}
		}(i)
	}
	wg.Wait()

	if got := duplicates.Load(); got != numPositions-1 {
		t.Errorf("duplicates = %d, want %d", got, numPositions-1)
	}
	if detector.DuplicateCount() != numPositions-1 {
		t.Errorf("DuplicateCount() = %d, want %d", detector.DuplicateCount(), numPositions-1)
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d, want 1", detector.UniqueCount())
	}
	if detector.IsFull() {
		t.Error("unlimited detector reported full")
	}
}
