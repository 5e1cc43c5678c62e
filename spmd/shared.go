package spmd

import (
	"errors"
	"fmt"
)

// ErrNegativeLength is returned by SharedSlice and SharedMalloc when asked
// for a buffer of negative length. Every participant of the collective call
// receives it, not just thread 0.
var ErrNegativeLength = errors.New("negative buffer length")

// SharedSlice collectively allocates a []T of length n visible to every
// worker of c's region. It is a collective operation: all Tsize workers must
// call it with the same type and length, and each receives the same slice.
//
// Protocol: a leading barrier establishes that no worker still reads a
// previous buffer; thread 0 then allocates into the factory's single shared
// slot; a trailing barrier publishes the slot (and any allocation error)
// to every worker before any of them proceeds. Only the two barriers
// synchronize the hand-off; no lock protects the slot.
//
// The buffer is single-writer by convention for region-wide state (thread 0
// mutates, others read between barriers), but workers may freely write
// disjoint per-thread slots of it, as the reduction kernels do.
func SharedSlice[T any](c *Control, n int) ([]T, error) {
	f := c.factory

	c.Sync()

	if c.Tid == 0 {
		if n < 0 {
			f.shared = nil
			f.sharedErr = fmt.Errorf("spmd: shared allocation of %d elements: %w", n, ErrNegativeLength)
		} else {
			f.shared = make([]T, n)
			f.sharedErr = nil
		}
	}

	// Publishes both the slot and the error written above.
	c.Sync()

	if err := f.sharedErr; err != nil {
		return nil, err
	}
	buf, ok := f.shared.([]T)
	if !ok {
		return nil, fmt.Errorf("spmd: shared slot holds %T, not the requested slice type", f.shared)
	}
	return buf, nil
}

// SharedMalloc collectively allocates a raw byte buffer of numBytes visible
// to every worker of c's region. See SharedSlice for the protocol.
func SharedMalloc(c *Control, numBytes int) ([]byte, error) {
	return SharedSlice[byte](c, numBytes)
}

// SharedFree collectively releases the factory's live shared buffer. The
// single leading barrier guarantees no worker is still computing with the
// buffer when thread 0 drops the reference; there is no trailing barrier, so
// a worker returning from SharedFree must not assume the release has already
// happened, only that no peer still uses the buffer.
//
// The factory tracks its one live buffer, so no buffer argument is needed.
func SharedFree(c *Control) {
	c.Sync()

	if c.Tid == 0 {
		c.factory.shared = nil
		c.factory.sharedErr = nil
	}
}
