// Package worker fans search subtrees out over a bounded set of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/gym-chess-go/internal/chess"
	"github.com/lgbarn/gym-chess-go/internal/engine"
)

// WorkItem is one root action to evaluate.
type WorkItem struct {
	Index  int // position in the root action list
	Action chess.Action
	State  engine.State // state after Action was applied
}

// ProcessResult is the outcome of evaluating a WorkItem.
type ProcessResult struct {
	Index  int
	Action chess.Action
	Score  int
	Nodes  uint64
	Err    error
}

// ProcessFunc evaluates a single work item.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed number of workers.
type Pool struct {
	numWorkers int
	bufferSize int
	work       chan WorkItem
	results    chan ProcessResult
	process    ProcessFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// New creates a pool. Default: 1 worker, buffer size of 10.
func New(process ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers. Items received after ctx is done or after
// Stop are drained without being processed.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.work {
		if p.IsStopped() || ctx.Err() != nil {
			continue
		}
		p.results <- p.process(ctx, item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// Stop makes workers skip any item they have not started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close stops accepting work and waits for the workers, then closes the
// result channel.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel processed results arrive on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Run processes every item and returns the results ordered by Index.
// Item indexes must be 0..len(items)-1. The first item error stops the
// pool, so items not yet started are skipped and keep a zero result. The
// lowest-index item error, or the context error, is returned.
func Run(ctx context.Context, process ProcessFunc, items []WorkItem, opts ...Option) ([]ProcessResult, error) {
	p := New(process, opts...)
	p.Start(ctx)

	go func() {
		for _, item := range items {
			if ctx.Err() != nil || p.IsStopped() {
				break
			}
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, len(items))
	for r := range p.Results() {
		if r.Err != nil {
			p.Stop()
		}
		results[r.Index] = r
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, r := range results {
		if r.Err != nil {
			return results, r.Err
		}
	}
	return results, nil
}
