package malloc

import "sync/atomic"

import "github.com/dustin/go-humanize"

// Info return process-wide accounting: bytes obtained from the heap
// extender, payload bytes live with callers, number of heap growths
// and the donate/take traffic through the global pool.
func (m *Malloc) Info() (heap, alloc, ngrows, ndonates, ntakes int64) {
	heap = atomic.LoadInt64(&m.heapsize)
	alloc = atomic.LoadInt64(&m.allocated)
	ngrows = atomic.LoadInt64(&m.ngrows)
	ndonates, ntakes = m.pool.counters()
	return
}

// Ncaches return the number of caches handed out by this allocator.
func (m *Malloc) Ncaches() int64 {
	return atomic.LoadInt64(&m.ncaches)
}

// Logstats emit one humanized accounting line through the package
// logger, enable with LogComponents("malloc").
func (m *Malloc) Logstats() {
	heap, alloc, ngrows, ndonates, ntakes := m.Info()
	fmsg := "malloc: heap:%v alloc:%v ngrows:%v ndonates:%v ntakes:%v"
	infof(fmsg, humanize.IBytes(uint64(heap)), humanize.IBytes(uint64(alloc)),
		ngrows, ndonates, ntakes)
}

// Info return this cache's accounting: bytes parked free in the cache
// including headers, and the number of free blocks holding them.
// Owner-only, like every other cache method.
func (tc *Cache) Info() (cached, nblocks int64) {
	for cur := tc.fl.head; cur != nilnode; {
		nd := nodeat(cur)
		cached += Headersize + nd.size
		nblocks++
		cur = nd.next
	}
	return
}

// Counts return the number of allocations and releases that went
// through this cache.
func (tc *Cache) Counts() (nallocs, nfrees int64) {
	return tc.nallocs, tc.nfrees
}
