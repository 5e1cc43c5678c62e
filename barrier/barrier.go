// Package barrier provides ready-made synchronization callbacks for SPMD
// regions: a reusable cyclic barrier for concurrently running workers and a
// trivial waiter for single-threaded execution.
//
// Both satisfy the spmd.SyncFunc contract and are registered on a factory by
// direct assignment:
//
//	f := spmd.NewFactory()
//	f.Sync = barrier.NewCyclic(workers).Sync
package barrier

import (
	"fmt"
	"sync"
)

// Cyclic is a reusable rendezvous barrier for a fixed set of participants.
//
// Wait blocks until all participants of the current generation have arrived,
// then releases them together and resets for the next generation, so the
// same instance serves every phase of every collective operation. The
// generation counter distinguishes consecutive phases: a participant woken
// by a broadcast of generation g cannot be confused with one still waiting
// on generation g+1, even under spurious wakeups.
type Cyclic struct {
	mu    sync.Mutex
	cond  *sync.Cond
	total int
	left  int
	gen   uint64
}

// NewCyclic returns a barrier for exactly total participants. It panics if
// total is not positive.
func NewCyclic(total int) *Cyclic {
	if total <= 0 {
		panic(fmt.Sprintf("barrier: participant count %d, want > 0", total))
	}
	b := &Cyclic{total: total, left: total}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Participants returns the number of participants the barrier was built for.
func (b *Cyclic) Participants() int {
	return b.total
}

// Wait blocks the caller until all participants have called Wait for the
// current generation, then releases them together.
func (b *Cyclic) Wait() {
	b.mu.Lock()
	gen := b.gen

	b.left--
	if b.left == 0 {
		// Last arrival: open the next generation and wake everyone.
		b.gen++
		b.left = b.total
		b.cond.Broadcast()
	} else {
		for gen == b.gen {
			b.cond.Wait()
		}
	}
	b.mu.Unlock()
}

// Sync adapts the barrier to the spmd.SyncFunc signature. The tid and data
// arguments are unused; tsize is cross-checked against the barrier's
// participant count, since a mismatch means the rendezvous can never
// complete; panicking beats hanging every peer.
func (b *Cyclic) Sync(tid, tsize int, data any) {
	if tsize != b.total {
		panic(fmt.Sprintf("barrier: control reports %d participants, barrier built for %d", tsize, b.total))
	}
	b.Wait()
}
