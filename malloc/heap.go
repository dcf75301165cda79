package malloc

import "unsafe"

// Heaper extends the process heap. Grow returns the start address of
// a fresh contiguous region of exactly n bytes, 8-byte aligned. The
// heap only grows; regions are never handed back. Implementations
// need not be safe for concurrent use, every call is serialized by
// the owning Malloc's heap mutex.
type Heaper interface {
	Grow(n int64) (uintptr, error)
}

// goheap sources regions from the Go runtime. Backing slices stay
// referenced for the life of the heap so the collector cannot reclaim
// them while raw pointers into the region are live.
type goheap struct {
	regions [][]byte
}

func newgoheap() *goheap {
	return &goheap{regions: make([][]byte, 0, 16)}
}

func (h *goheap) Grow(n int64) (uintptr, error) {
	region := make([]byte, n)
	h.regions = append(h.regions, region)
	return uintptr(unsafe.Pointer(&region[0])), nil
}
