// Package kernels provides the SPMD worker routines of the library: numeric
// collectives that every worker of a parallel region calls with its own
// spmd.Control. Each kernel partitions the index space with the shared
// contiguous block rule and coordinates exclusively through the collective
// operations of the spmd package, so the same kernel code runs unchanged
// under any backend.
//
// Every kernel is itself collective: all Tsize workers of the region must
// call it, with identical vector arguments, exactly once per phase.
package kernels

import (
	"fmt"

	"github.com/kolkov/spmdlib/internal/spmd/partition"
	"github.com/kolkov/spmdlib/spmd"
)

// VectorAdd computes result[i] = v1[i] + v2[i] over this worker's
// contiguous block of the index space. Blocks are disjoint and no shared
// state exists, so no barrier is needed; the driver must still join all
// workers before reading result. Workers whose block is empty (Tsize larger
// than the vector) return immediately.
func VectorAdd(c *spmd.Control, v1, v2, result []float64) error {
	if len(v2) != len(v1) || len(result) != len(v1) {
		return fmt.Errorf("kernels: vector length mismatch: v1=%d v2=%d result=%d",
			len(v1), len(v2), len(result))
	}

	begin, end := partition.Range(c.Tid, c.Tsize, len(v1))
	for i := begin; i < end; i++ {
		result[i] = v1[i] + v2[i]
	}
	return nil
}

// VectorDot computes the dot product of v1 and v2 and stores it in *result
// on every worker's return.
//
// The reduction runs in three stages: each worker accumulates its block into
// its own slot of a shared scratch vector, a barrier makes all partial sums
// visible, then thread 0 folds the slots into slot 0 in increasing index
// order and publishes the scalar. The fixed fold order makes the
// floating-point result bit-exact across runs for a given Tsize. A second
// barrier guarantees *result is fully written before any worker returns.
//
// Length validation happens before the first collective call, so a
// consistent argument error returns on every worker without desynchronizing
// the region.
func VectorDot(c *spmd.Control, v1, v2 []float64, result *float64) error {
	if len(v2) != len(v1) {
		return fmt.Errorf("kernels: vector length mismatch: v1=%d v2=%d", len(v1), len(v2))
	}
	if result == nil {
		return fmt.Errorf("kernels: nil result pointer")
	}

	scratch, err := spmd.SharedSlice[float64](c, c.Tsize)
	if err != nil {
		return fmt.Errorf("kernels: dot scratch: %w", err)
	}

	// Local accumulation into this worker's own slot.
	scratch[c.Tid] = 0
	begin, end := partition.Range(c.Tid, c.Tsize, len(v1))
	for i := begin; i < end; i++ {
		scratch[c.Tid] += v1[i] * v2[i]
	}

	// All partial sums must be complete before thread 0 reduces them.
	c.Sync()

	if c.Tid == 0 {
		for t := 1; t < c.Tsize; t++ {
			scratch[0] += scratch[t]
		}
		*result = scratch[0]
	}

	// Publishes *result to every worker before any of them returns.
	c.Sync()

	spmd.SharedFree(c)
	return nil
}
