// Package backend provides region drivers for the common thread-launching
// mechanisms: raw goroutines, a persistent worker pool, and a
// single-threaded fallback. Each driver owns the spawn/join boilerplate of
// one parallel region (building a fresh spmd.Control per worker with Tid
// and Tsize set), so kernels stay identical across mechanisms.
//
// Drivers do not register a synchronization callback; that stays with the
// caller, who knows the launching mechanism:
//
//	f := spmd.NewFactory()
//	f.Sync = barrier.NewCyclic(workers).Sync
//	err := backend.Goroutines(f, workers, func(c *spmd.Control) error {
//		return kernels.VectorDot(c, v1, v2, &dot)
//	})
package backend

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kolkov/spmdlib/spmd"
)

// Body is the unit of work one worker executes in a parallel region. It is
// called exactly once per worker with that worker's own Control.
type Body func(c *spmd.Control) error

// Goroutines runs one parallel region of tsize workers, each on a freshly
// spawned goroutine, and joins them all before returning. The factory's
// SyncFunc must already be registered and must rendezvous exactly tsize
// participants.
//
// The returned error joins every worker's error; a nil return means every
// worker completed cleanly.
func Goroutines(f *spmd.Factory, tsize int, body Body) error {
	if tsize <= 0 {
		return fmt.Errorf("backend: region size %d, want > 0", tsize)
	}

	errs := make([]error, tsize)

	var wg sync.WaitGroup
	wg.Add(tsize)
	for tid := 0; tid < tsize; tid++ {
		go func(tid int) {
			defer wg.Done()

			c := f.NewControl()
			c.Tid = tid
			c.Tsize = tsize
			errs[tid] = body(c)
		}(tid)
	}
	wg.Wait()

	return errors.Join(errs...)
}
