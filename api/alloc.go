package api

import "unsafe"

// Mallocer interface for custom memory management, the four classic
// allocation entry points plus accounting.
type Mallocer interface {
	// Alloc a chunk of `n` bytes. Allocated memory is always
	// 8-byte aligned, nil when n is zero.
	Alloc(n int64) unsafe.Pointer

	// Calloc a zero-filled chunk of nitems*size bytes, nil when
	// either count is zero.
	Calloc(nitems, size int64) unsafe.Pointer

	// Realloc the chunk behind ptr to n bytes, possibly moving it.
	// The first min(old, n) bytes are preserved.
	Realloc(ptr unsafe.Pointer, n int64) unsafe.Pointer

	// Free chunk back to the allocator, nil is ignored.
	Free(ptr unsafe.Pointer)

	// Chunklen return the length of the chunk usable by application,
	// can exceed the requested size.
	Chunklen(ptr unsafe.Pointer) int64

	// Info of free memory cached by this mallocer and the number of
	// blocks holding it.
	Info() (cached, nblocks int64)
}
