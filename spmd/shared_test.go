package spmd

import (
	"errors"
	"sync"
	"testing"

	"github.com/kolkov/spmdlib/barrier"
)

// region runs body on tsize goroutines against f, each with its own
// control, and joins them. Test helper mirroring what the backend package
// does for real drivers.
func region(t *testing.T, f *Factory, tsize int, body func(c *Control)) {
	t.Helper()

	var wg sync.WaitGroup
	wg.Add(tsize)
	for tid := 0; tid < tsize; tid++ {
		go func(tid int) {
			defer wg.Done()

			c := f.NewControl()
			c.Tid = tid
			c.Tsize = tsize
			body(c)
		}(tid)
	}
	wg.Wait()
}

// TestSharedSlice_SingleWorker exercises the allocation protocol in the
// degenerate one-worker region.
func TestSharedSlice_SingleWorker(t *testing.T) {
	f := NewFactory()
	f.Sync = barrier.Serial

	c := f.NewControl()
	c.Tid = 0
	c.Tsize = 1

	buf, err := SharedSlice[float64](c, 4)
	if err != nil {
		t.Fatalf("SharedSlice: %v", err)
	}
	if len(buf) != 4 {
		t.Fatalf("len(buf) = %d, want 4", len(buf))
	}
	if f.shared == nil {
		t.Error("factory slot empty while buffer is live")
	}

	SharedFree(c)
	if f.shared != nil {
		t.Error("factory slot still holds a buffer after SharedFree")
	}
}

// TestSharedSlice_AllWorkersSameBuffer verifies every participant of a
// multi-worker region receives the same backing buffer, that per-thread
// slot writes are visible across the barrier, and that free empties the
// factory slot.
func TestSharedSlice_AllWorkersSameBuffer(t *testing.T) {
	const workers = 4

	f := NewFactory()
	f.Sync = barrier.NewCyclic(workers).Sync

	first := make([]*float64, workers)

	region(t, f, workers, func(c *Control) {
		buf, err := SharedSlice[float64](c, workers)
		if err != nil {
			t.Errorf("worker %d: SharedSlice: %v", c.Tid, err)
			return
		}

		first[c.Tid] = &buf[0]
		buf[c.Tid] = float64(c.Tid + 1)

		c.Sync()

		// Every worker observes every slot after the barrier.
		sum := 0.0
		for _, x := range buf {
			sum += x
		}
		if want := float64(workers * (workers + 1) / 2); sum != want {
			t.Errorf("worker %d: slot sum = %g, want %g", c.Tid, sum, want)
		}

		c.Sync()
		SharedFree(c)
	})

	for tid := 1; tid < workers; tid++ {
		if first[tid] != first[0] {
			t.Errorf("worker %d received a different buffer than worker 0", tid)
		}
	}
	if f.shared != nil {
		t.Error("factory slot still holds a buffer after the region")
	}
}

// TestSharedSlice_NegativeLength verifies an invalid collective allocation
// is reported to every participant, not only to the allocating thread,
// and never deadlocks.
func TestSharedSlice_NegativeLength(t *testing.T) {
	const workers = 4

	f := NewFactory()
	f.Sync = barrier.NewCyclic(workers).Sync

	errs := make([]error, workers)
	region(t, f, workers, func(c *Control) {
		_, errs[c.Tid] = SharedSlice[byte](c, -1)
	})

	for tid, err := range errs {
		if !errors.Is(err, ErrNegativeLength) {
			t.Errorf("worker %d: err = %v, want ErrNegativeLength", tid, err)
		}
	}
	if f.shared != nil {
		t.Error("factory slot holds a buffer after failed allocation")
	}
}

// TestSharedMalloc_Bytes verifies the raw byte flavor.
func TestSharedMalloc_Bytes(t *testing.T) {
	f := NewFactory()
	f.Sync = barrier.Serial

	c := f.NewControl()
	c.Tid = 0
	c.Tsize = 1

	buf, err := SharedMalloc(c, 64)
	if err != nil {
		t.Fatalf("SharedMalloc: %v", err)
	}
	if len(buf) != 64 {
		t.Fatalf("len(buf) = %d, want 64", len(buf))
	}
	SharedFree(c)
}

// TestSharedMallocFree_RepeatedPhases drives many allocate/free cycles
// through the same factory and barrier: the reentrancy guarantee every
// multi-phase algorithm depends on.
func TestSharedMallocFree_RepeatedPhases(t *testing.T) {
	const (
		workers = 3
		phases  = 50
	)

	f := NewFactory()
	f.Sync = barrier.NewCyclic(workers).Sync

	region(t, f, workers, func(c *Control) {
		for p := 0; p < phases; p++ {
			buf, err := SharedSlice[int](c, workers)
			if err != nil {
				t.Errorf("worker %d phase %d: %v", c.Tid, p, err)
				return
			}
			buf[c.Tid] = p
			c.Sync()
			SharedFree(c)
		}
	})

	if f.shared != nil {
		t.Error("factory slot still holds a buffer after all phases")
	}
}
