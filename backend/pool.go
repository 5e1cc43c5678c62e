package backend

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/kolkov/spmdlib/spmd"
)

// Pool is a region driver backed by a persistent worker pool. The pool's
// workers are spawned once and reused across regions, avoiding per-region
// goroutine spawn overhead when many small regions run back to back.
type Pool struct {
	pool   *workerpool.Pool
	closed atomic.Bool
}

// NewPool creates a driver with the given number of persistent pool
// workers. If workers <= 0, the pool sizes itself to GOMAXPROCS.
func NewPool(workers int) *Pool {
	return &Pool{pool: workerpool.New(workers)}
}

// Workers returns the number of persistent workers in the pool, which is
// the largest region size Run accepts.
func (p *Pool) Workers() int {
	return p.pool.NumWorkers()
}

// Close shuts the pool down. Pending regions complete first; calling Close
// multiple times is safe. Run refuses further regions after Close.
func (p *Pool) Close() {
	p.closed.Store(true)
	p.pool.Close()
}

// Run executes one parallel region of tsize workers on the pool and returns
// after all of them finish. The factory's SyncFunc must already be
// registered and must rendezvous exactly tsize participants.
//
// tsize must not exceed the pool size: the region's workers rendezvous
// inside collective operations, so all tsize of them must run concurrently.
// A pool worker hosting two of them would deadlock the region, which is why
// Run refuses oversized regions up front.
func (p *Pool) Run(f *spmd.Factory, tsize int, body Body) error {
	if tsize <= 0 {
		return fmt.Errorf("backend: region size %d, want > 0", tsize)
	}
	if tsize > p.pool.NumWorkers() {
		return fmt.Errorf("backend: region size %d exceeds pool size %d", tsize, p.pool.NumWorkers())
	}
	// A closed worker pool degrades to sequential execution, which would
	// stall a multi-worker region in its first rendezvous.
	if p.closed.Load() {
		return fmt.Errorf("backend: pool is closed")
	}

	errs := make([]error, tsize)

	// With tsize <= pool size, ParallelFor hands each index to its own
	// pool worker, so all region workers run concurrently.
	p.pool.ParallelFor(tsize, func(start, end int) {
		for tid := start; tid < end; tid++ {
			c := f.NewControl()
			c.Tid = tid
			c.Tsize = tsize
			errs[tid] = body(c)
		}
	})

	return errors.Join(errs...)
}
