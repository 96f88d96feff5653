// Package worker fans position analysis out over a fixed set of goroutines
// and hands the results back in input order.
package worker

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ErrStopped is returned by Submit once Stop has been called.
var ErrStopped = errors.New("worker pool stopped")

// WorkItem is one position of a batch. Board is nil when the source text
// has not been parsed yet.
type WorkItem struct {
	Index  int    // position in the input
	FEN    string // source text of the position
	Board  *chess.Board
	ToMove chess.Colour
}

// ProcessFunc analyses one work item.
type ProcessFunc[R any] func(item WorkItem) R

type indexed[R any] struct {
	index int
	value R
}

type settings struct {
	workers    int
	bufferSize int
}

// Option configures a Pool.
type Option func(*settings)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) Option {
	return func(s *settings) {
		if size >= 1 {
			s.bufferSize = size
		}
	}
}

// Pool runs a ProcessFunc over submitted items. The lifecycle is Start,
// any number of Submit calls from one goroutine followed by Close, while
// another goroutine collects with Ordered.
type Pool[R any] struct {
	settings
	process ProcessFunc[R]
	work    chan WorkItem
	results chan indexed[R]
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// New creates a pool running process. Without options it has one worker
// and a buffer of ten items.
func New[R any](process ProcessFunc[R], opts ...Option) *Pool[R] {
	s := settings{workers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[R]{
		settings: s,
		process:  process,
		work:     make(chan WorkItem, s.bufferSize),
		results:  make(chan indexed[R], s.bufferSize),
	}
}

// Start launches the workers.
func (p *Pool[R]) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool[R]) run() {
	defer p.wg.Done()
	for item := range p.work {
		if p.stopped.Load() {
			continue
		}
		p.results <- indexed[R]{index: item.Index, value: p.process(item)}
	}
}

// Submit queues item, blocking while the buffer is full. It gives up with
// ctx's error when ctx is done first, and with ErrStopped after Stop.
func (p *Pool[R]) Submit(ctx context.Context, item WorkItem) error {
	if p.stopped.Load() {
		return ErrStopped
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.work <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes the workers discard queued items instead of processing them.
// Results already produced are still delivered.
func (p *Pool[R]) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool[R]) Stopped() bool {
	return p.stopped.Load()
}

// Close ends submission and waits for the workers, then closes the
// result stream so Ordered can return.
func (p *Pool[R]) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Ordered collects every result until Close and returns them sorted by
// the index of the item that produced them.
func (p *Pool[R]) Ordered() []R {
	var collected []indexed[R]
	for r := range p.results {
		collected = append(collected, r)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	out := make([]R, len(collected))
	for i, r := range collected {
		out[i] = r.value
	}
	return out
}
