package spmd

// SyncFunc is the pluggable barrier callback registered on a Factory.
//
// The contract: a call blocks until tsize concurrent callers sharing the
// same auxiliary data have all invoked it in the current phase, then
// releases them together. Implementations must be reusable for unboundedly
// many phases: the same callback is waited on by every phase of every
// collective operation executed through the factory.
//
// The barrier package provides ready-made implementations for goroutine
// regions and single-threaded execution; drivers with their own
// synchronization machinery can supply anything matching this signature.
type SyncFunc func(tid, tsize int, data any)

// Factory is the region-wide shared context for SPMD execution.
//
// One Factory is shared by every Control of a parallel region. It owns the
// registered barrier callback, the callback's auxiliary data, and the single
// shared-buffer slot used for single-writer/multi-reader hand-off between
// workers.
//
// Sync and SyncData are registered by direct assignment after NewFactory,
// before the first Control is created:
//
//	f := spmd.NewFactory()
//	f.Sync = barrier.NewCyclic(workers).Sync
//
// A Factory may be reused across sequential parallel regions (with a fresh
// batch of Controls per region), but never by two regions concurrently: it
// holds exactly one shared-buffer slot.
type Factory struct {
	// Sync is the collective barrier callback. Every collective operation
	// on a Control referencing this factory flows through it. Calling a
	// collective with Sync unregistered panics.
	Sync SyncFunc

	// SyncData is passed verbatim as the data argument on every Sync
	// invocation. It is owned by the driver and must outlive every Control
	// derived from this factory.
	SyncData any

	// shared is the single-writer buffer slot. Only thread 0 writes it,
	// and only between the barrier pair of SharedSlice/SharedFree; all
	// other workers read it after the trailing barrier. At most one buffer
	// is live at a time.
	shared any

	// sharedErr is the outcome of the most recent shared allocation,
	// published to all workers by the same barrier that publishes the
	// buffer itself.
	sharedErr error
}

// NewFactory returns a fresh Factory with no barrier callback registered,
// no auxiliary data, and an empty shared-buffer slot.
func NewFactory() *Factory {
	return &Factory{}
}
