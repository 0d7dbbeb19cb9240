// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// evaluating large operand corpora in parallel. A Pool is created once per
// generator run and reused for every shape and operation, so goroutines are
// not respawned per batch.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ParallelForErr(ctx, len(cases), func(i int) error {
//	    return evaluate(&cases[i])
//	})
package workerpool

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// WorkersEnv names the environment variable that overrides the default
// worker count.
const WorkersEnv = "SIMDGEN_WORKERS"

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// If numWorkers <= 0, DefaultWorkers is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers()
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

// DefaultWorkers returns SIMDGEN_WORKERS when it holds a positive integer,
// and GOMAXPROCS otherwise.
func DefaultWorkers() int {
	if val := os.Getenv(WorkersEnv); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return runtime.GOMAXPROCS(0)
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelForErr executes fn for each index in [0, n). Workers claim indices
// with an atomic counter, which balances uneven per-item cost. After the
// first error, or once ctx is done, workers stop claiming new indices. It
// blocks until claimed work completes and returns the first error observed,
// or ctx.Err().
func (p *Pool) ParallelForErr(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	var (
		nextIdx  atomic.Int64
		stop     atomic.Bool
		errOnce  sync.Once
		firstErr error
	)
	loop := func() {
		for !stop.Load() {
			if ctx.Err() != nil {
				stop.Store(true)
				return
			}
			idx := int(nextIdx.Add(1)) - 1
			if idx >= n {
				return
			}
			if err := fn(idx); err != nil {
				errOnce.Do(func() { firstErr = err })
				stop.Store(true)
				return
			}
		}
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		loop()
	} else {
		var wg sync.WaitGroup
		wg.Add(workers)
		for range workers {
			p.workC <- workItem{fn: loop, barrier: &wg}
		}
		wg.Wait()
	}

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
