package barrier

import "fmt"

// Serial is the synchronization callback for single-threaded execution:
// with one participant every rendezvous is trivially complete, so it returns
// immediately. It panics when tsize exceeds 1: a multi-worker region wired
// to Serial would race through every barrier and corrupt shared state.
func Serial(tid, tsize int, data any) {
	if tsize > 1 {
		panic(fmt.Sprintf("barrier: Serial used by a region of %d workers", tsize))
	}
}
