// Copyright 2025 The go-gradient Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool splits row ranges across a fixed set of persistent
// goroutines. A Pool is created once and handed to every kernel call, so
// repeated convolutions do not pay for goroutine spawns.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForGrain(rows, 64, func(start, end int) {
//	    for i := start; i < end; i++ {
//	        processRow(i)
//	    }
//	})
//
// A nil *Pool is valid and runs every call on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once in New and live
// until Close.
type Pool struct {
	numWorkers int
	workC      chan chunk
	closeOnce  sync.Once
	closed     atomic.Bool
}

// chunk is one contiguous [start, end) range of a ParallelFor call.
type chunk struct {
	start, end int
	fn         func(start, end int)
	done       *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan chunk, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for c := range p.workC {
		c.fn(c.start, c.end)
		c.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close stops the workers once queued chunks finish. Safe to call repeatedly.
// Calls made after Close run sequentially on the caller.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor runs fn over [0, n) split into at most NumWorkers contiguous
// ranges. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForGrain(n, 1, fn)
}

// ParallelForGrain is ParallelFor with a lower bound on range size: no range
// handed to fn is shorter than grain, except the last one. Ranges never
// overlap, so fn may write to disjoint regions of a shared buffer without
// synchronization.
func (p *Pool) ParallelForGrain(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	grain = max(grain, 1)

	if p == nil || p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n/grain)
	if workers <= 1 {
		fn(0, n)
		return
	}

	size := (n + workers - 1) / workers
	var wg sync.WaitGroup

	// The caller keeps the first range for itself.
	for start := size; start < n; start += size {
		wg.Add(1)
		p.workC <- chunk{start: start, end: min(start+size, n), fn: fn, done: &wg}
	}
	fn(0, min(size, n))
	wg.Wait()
}
