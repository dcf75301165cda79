// Package malloc implements a drop-in dynamic memory allocator for
// concurrent programs, with a limited scope:
//
//   - Memory is organized as a linear heap of blocks, each block a
//     16-byte header followed by an 8-byte aligned payload.
//   - Every owner goroutine allocates through its own Cache, a private
//     address-ordered free list that takes no locks.
//   - Caches exchange memory through a single global overflow pool.
//     The pool mutex is only ever try-acquired on the allocation path;
//     a contended pool is treated as an empty pool.
//   - The heap only grows. Memory is never returned to the operating
//     system; released blocks are cached for reuse.
//   - Heap exhaustion is fatal. The classic allocator contract has no
//     error path, so a failing heap extender panics the process.
//
// A process creates one Malloc and hands a fresh Cache to every worker:
//
//	m := malloc.New(malloc.Defaultsettings())
//	tc := m.Newcache()
//	ptr := tc.Alloc(512)
//	...
//	tc.Free(ptr)
//
// A block freed through cache T parks in T's free list regardless of
// which cache allocated it; cross-cache migration happens only through
// the global pool, when a cache grows the heap and donates the spare
// half of the fresh region.
package malloc
