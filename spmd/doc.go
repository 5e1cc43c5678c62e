// Package spmd provides the thread-coordination core of the Pure-Go SPMD
// library: write a numeric kernel once, run it under any thread-launching
// mechanism.
//
// SPMD (single program, multiple data) kernels are ordinary functions that
// every worker of a parallel region executes concurrently. Each worker
// receives a [Control] carrying its thread index and the region's thread
// count; workers coordinate only through the collective operations defined
// here. The package deliberately standardizes nothing about how workers are
// launched: goroutines, a managed worker pool, and single-threaded
// execution are all supported through the same two-piece contract:
//
//   - A [Factory] is the region-wide shared context. The driver creates one,
//     registers a [SyncFunc] barrier callback appropriate to its launching
//     mechanism, and shares the factory with every worker.
//   - A [Control] is the per-worker handle: thread index (Tid), thread count
//     (Tsize), and a reference to the shared factory. A fresh Control is
//     created per worker per region; Tid and Tsize never change afterwards.
//
// # Quick Start
//
//	f := spmd.NewFactory()
//	f.Sync = barrier.NewCyclic(workers).Sync
//
//	var wg sync.WaitGroup
//	for tid := 0; tid < workers; tid++ {
//		wg.Add(1)
//		go func(tid int) {
//			defer wg.Done()
//			c := f.NewControl()
//			c.Tid, c.Tsize = tid, workers
//			kernels.VectorDot(c, v1, v2, &dot)
//		}(tid)
//	}
//	wg.Wait()
//
// The backend package wraps this spawn/join boilerplate for the common
// launching mechanisms.
//
// # Collective Operations
//
// Three collective operations are defined; each must be called by every one
// of the region's Tsize workers for every logical phase, or the region
// deadlocks:
//
//   - [Control.Sync]: barrier rendezvous. No worker returns until all
//     Tsize workers have called it.
//   - [SharedSlice] / [SharedMalloc]: single-writer shared allocation.
//     Thread 0 allocates between two barriers; every worker receives the
//     same buffer. The trailing barrier is the happens-before edge that
//     makes the freshly written buffer (and any allocation error) visible
//     to all workers before any of them proceeds.
//   - [SharedFree]: single barrier, then thread 0 drops the factory's
//     buffer reference.
//
// # Memory Model
//
// A barrier is both a rendezvous and a memory fence: any write performed by
// worker i before a barrier is visible to every worker after that same
// barrier returns. The factory's shared-buffer slot relies on exactly this:
// only thread 0 ever writes it, and the barrier pair around each
// allocation/release is the only synchronization. At most one shared buffer
// is live per factory at any time.
//
// # Failure Semantics
//
// Allocation failures inside [SharedSlice] are published through the same
// barrier that publishes the buffer, so every participant observes the same
// error, not just the allocating thread. Misuse that cannot be reported
// collectively fails fast instead: calling [Control.Sync] on a factory with
// no registered SyncFunc panics, as does a barrier whose participant count
// disagrees with the caller's Tsize. A worker that skips a collective call
// entirely stalls its peers; there is no timeout or abort path at this
// layer.
package spmd
