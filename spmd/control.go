package spmd

// Control is the per-worker handle of a parallel region.
//
// Each of a region's Tsize workers owns exactly one Control carrying its
// thread index, the region's thread count, and a reference to the shared
// Factory. Controls are created immediately before a worker starts its unit
// of work and discarded when that work completes; Tid and Tsize are set once
// by the driver and never mutated afterwards.
type Control struct {
	// Tid is this worker's thread index, 0 <= Tid < Tsize.
	Tid int

	// Tsize is the total number of workers in the current region, > 0.
	Tsize int

	factory *Factory
}

// NewControl returns a Control referencing f with placeholder Tid = 0 and
// Tsize = 0. The driver must set both before the worker's first collective
// call; the zero values are placeholders, not meaningful defaults.
func (f *Factory) NewControl() *Control {
	return &Control{factory: f}
}

// Factory returns the shared factory this control was created from.
func (c *Control) Factory() *Factory {
	return c.factory
}

// Sync is the collective barrier: it invokes the factory's registered
// SyncFunc with (c.Tid, c.Tsize, factory.SyncData) and does not return until
// all Tsize workers concurrently executing on controls of this factory have
// also called Sync for the current phase.
//
// It is the caller's responsibility that exactly Tsize workers reach every
// Sync; a worker that skips one stalls its peers indefinitely. Sync panics
// if no SyncFunc has been registered on the factory; that misuse would
// otherwise corrupt every later collective silently.
func (c *Control) Sync() {
	f := c.factory
	if f.Sync == nil {
		panic("spmd: Sync called on a Factory with no SyncFunc registered")
	}
	f.Sync(c.Tid, c.Tsize, f.SyncData)
}
