package backend

import "github.com/kolkov/spmdlib/spmd"

// Serial runs one parallel region with a single worker on the calling
// goroutine. The factory's SyncFunc must still be registered, because
// collective operations invoke it even in a one-worker region;
// barrier.Serial is the natural choice.
func Serial(f *spmd.Factory, body Body) error {
	c := f.NewControl()
	c.Tid = 0
	c.Tsize = 1
	return body(c)
}
