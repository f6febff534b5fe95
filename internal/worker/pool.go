// Package worker plays independent games in parallel. Each game owns its
// players and search engines; nothing is shared between workers.
package worker

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/couchbaselabs/logg"

	"github.com/lgbarn/checkers-go/internal/game"
)

// WorkItem is a game waiting to be played.
type WorkItem struct {
	Game  *game.Game
	Index int // position in the batch, for ordering results
}

// ProcessResult is the outcome of playing one game.
type ProcessResult struct {
	Index  int
	Record *game.Record // may be partial if Error is set
	Error  error
}

// PlayFunc plays a work item.
type PlayFunc func(item WorkItem) ProcessResult

// Play is the default PlayFunc.
func Play(item WorkItem) ProcessResult {
	rec, err := item.Game.Play()
	return ProcessResult{Index: item.Index, Record: rec, Error: err}
}

// Pool runs games on a fixed number of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan ProcessResult
	play       PlayFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithPlayFunc replaces the function that plays each item.
func WithPlayFunc(fn PlayFunc) PoolOption {
	return func(p *Pool) {
		if fn != nil {
			p.play = fn
		}
	}
}

// NewPool creates a pool. Defaults: one worker per CPU, buffer size of 10,
// items played with Play.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: runtime.NumCPU(),
		bufferSize: 10,
		play:       Play,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// worker plays items from the work channel until it is closed.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without playing
		}
		logg.LogTo("WORKER", "worker %d: game %d", id, item.Index+1)
		p.resultChan <- p.play(item)
	}
}

// Submit queues a game. It blocks while the work buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to skip games not yet started.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading played games.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// PlayAll plays games on the pool and returns their results in batch
// order. If stopOnError is set, games not yet started when the first error
// arrives are skipped and have no result.
func PlayAll(games []*game.Game, stopOnError bool, opts ...PoolOption) []ProcessResult {
	pool := NewPool(opts...)
	pool.Start()

	go func() {
		for i, g := range games {
			pool.Submit(WorkItem{Game: g, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(games))
	for r := range pool.Results() {
		if r.Error != nil && stopOnError {
			pool.Stop()
		}
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
