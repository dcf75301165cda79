package malloc

import "fmt"
import "sync/atomic"
import "unsafe"

import "github.com/bnclabs/gomalloc/api"
import "github.com/bnclabs/gomalloc/lib"

// Cache fronts the shared allocator state with a private
// address-ordered free list. All placement decisions happen here
// without taking a lock; only the global pool and the heap extender
// are shared, and neither is ever waited on while the other is held.
type Cache struct {
	nallocs int64 // owner-only counter
	nfrees  int64 // owner-only counter

	m  *Malloc
	fl freelist
}

//---- operations

// Alloc return an 8-byte aligned payload of capacity at least size.
// The capacity can exceed the request when splitting the chosen block
// would leave a remainder too small to carry a payload. A zero or
// negative size yields nil. Heap exhaustion panics, the classic
// allocator contract has no error path.
func (tc *Cache) Alloc(size int64) unsafe.Pointer {
	if size <= 0 {
		return nil
	}
	size = alignsize(size)

	if nd, pre := tc.fl.fit(size); nd != nil {
		return tc.handout(nd, pre, size)
	}
	// Local miss. Probe the overflow pool; a taken block funnels
	// through this cache's free list first, so it can merge with
	// neighbours already parked here before being carved.
	if nd := tc.m.pool.take(size); nd != nil {
		debugf("malloc: cache took %v byte block from pool", nd.size)
		tc.fl.insert(nd)
		if nd, pre := tc.fl.fit(size); nd != nil {
			return tc.handout(nd, pre, size)
		}
	}
	return tc.growalloc(size)
}

// Free release ptr into this cache, nil is ignored. ptr must have
// been produced by a cache sharing the same Malloc; the block parks
// in this cache's free list whichever cache allocated it.
func (tc *Cache) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	nd := headerof(ptr)
	tc.nfrees++
	atomic.AddInt64(&tc.m.allocated, -nd.size)
	markfree(nd)
	tc.fl.insert(nd)
}

// Calloc allocate nitems*size bytes, zero-filled. The fill covers the
// rounded request, which can exceed nitems*size by up to 7 bytes.
// Returns nil when either count is zero.
func (tc *Cache) Calloc(nitems, size int64) unsafe.Pointer {
	if nitems <= 0 || size <= 0 {
		return nil
	}
	total := alignsize(nitems * size)
	ptr := tc.Alloc(total)
	lib.Memzero(ptr, int(total))
	return ptr
}

// Realloc resize the block behind ptr to size bytes. Shrinks happen
// in place, releasing the tail when it can stand as a block of its
// own. Grows absorb the free right neighbour when one sits flush in
// this cache and covers the request, otherwise allocate-copy-free,
// preserving the old content. A nil ptr degenerates to Alloc, a zero
// size to Free returning nil.
func (tc *Cache) Realloc(ptr unsafe.Pointer, size int64) unsafe.Pointer {
	if ptr == nil {
		return tc.Alloc(size)
	} else if size <= 0 {
		tc.Free(ptr)
		return nil
	}
	size = alignsize(size)

	nd := headerof(ptr)
	oldsize := nd.size
	if oldsize == size {
		return ptr
	}

	if oldsize > size { // shrink in place
		if oldsize > size+Headersize {
			nd.size = size
			tail := nodeat(nd.addr() + uintptr(Headersize+size))
			tail.size = oldsize - size - Headersize
			tail.next = nilnode
			atomic.AddInt64(&tc.m.allocated, size-oldsize)
			markfree(tail)
			tc.fl.insert(tail)
		}
		return ptr
	}

	// Grow. Locate nd's would-be position in the cache to find its
	// right neighbour, without touching the list yet.
	var pre *node
	cur := tc.fl.head
	for cur != nilnode {
		if cur > nd.addr() {
			break
		}
		pre = nodeat(cur)
		cur = pre.next
	}
	if cur != nilnode && nd.end() == cur {
		right := nodeat(cur)
		if oldsize+Headersize+right.size >= size {
			tc.fl.detach(right, pre)
			nd.size = oldsize + Headersize + right.size
			if nd.size > size+Headersize {
				rem := nodeat(nd.addr() + uintptr(Headersize+size))
				rem.size = nd.size - size - Headersize
				rem.next = nilnode
				nd.size = size
				tc.fl.insert(rem)
			}
			atomic.AddInt64(&tc.m.allocated, nd.size-oldsize)
			return ptr
		}
	}

	newptr := tc.Alloc(size)
	lib.Memcpy(newptr, ptr, int(oldsize))
	tc.Free(ptr)
	return newptr
}

// Chunklen return the payload capacity behind ptr, at least the size
// requested and possibly more after a hand-over.
func (tc *Cache) Chunklen(ptr unsafe.Pointer) int64 {
	return headerof(ptr).size
}

//---- local functions

func (tc *Cache) handout(nd, pre *node, size int64) unsafe.Pointer {
	ptr := tc.fl.carve(nd, pre, size)
	if (uintptr(ptr) & uintptr(Alignment-1)) != 0 {
		fmsg := "allocated pointer is not %v byte aligned"
		panic(fmt.Errorf(fmsg, Alignment))
	}
	tc.nallocs++
	atomic.AddInt64(&tc.m.allocated, nd.size)
	return ptr
}

// growalloc obtain fresh memory from the heap extender. Large
// requests get a twin region sized to the request, small requests get
// two standard chunks. Either way one half is offered to the global
// pool so that later caches can allocate without growing; when the
// pool mutex is contended the spare stays local instead.
func (tc *Cache) growalloc(size int64) unsafe.Pointer {
	chunk := tc.m.chunksize
	if size > chunk-Headersize {
		base := tc.m.grow(2*size + 2*Headersize)
		spare := nodeat(base + uintptr(Headersize+size))
		spare.size, spare.next = size, nilnode
		if !tc.m.pool.donate(spare) {
			tc.fl.insert(spare)
		}
		nd := nodeat(base)
		nd.size, nd.next = size, nilnode
		tc.nallocs++
		atomic.AddInt64(&tc.m.allocated, nd.size)
		return nd.payload()
	}

	base := tc.m.grow(2 * chunk)
	spare := nodeat(base + uintptr(chunk))
	spare.size, spare.next = chunk-Headersize, nilnode
	nd := nodeat(base)
	nd.next = nilnode
	if tc.m.pool.donate(spare) {
		nd.size = chunk - Headersize
	} else {
		nd.size = 2*chunk - Headersize
	}
	tc.fl.insert(nd)
	fit, pre := tc.fl.fit(size)
	return tc.handout(fit, pre, size)
}

var _ api.Mallocer = (*Cache)(nil)
