// Package partition implements the contiguous block-splitting rule shared
// by all SPMD kernels: n elements are split into blocks of ceil(n/tsize),
// thread tid owning the tid-th block.
package partition

// Range returns the half-open index range [begin, end) owned by thread tid
// of tsize over n elements. Blocks are contiguous; every non-trailing block
// has the full ceil(n/tsize) length, and only trailing blocks are shorter
// or empty (always empty for late threads when tsize > n).
func Range(tid, tsize, n int) (begin, end int) {
	per := (n-1)/tsize + 1

	begin = tid * per
	end = begin + per
	if end > n {
		end = n
	}
	if begin > n {
		begin = n
	}
	return begin, end
}
