package malloc

import "sync"

// globalpool is the process-wide overflow list through which caches
// exchange memory. The mutex is only ever try-acquired on the
// allocation path, so a cache that finds it contended proceeds as if
// the pool were empty instead of waiting.
type globalpool struct {
	mu       sync.Mutex
	fl       freelist
	ndonates int64 // protected by mu
	ntakes   int64 // protected by mu
}

// donate offer a free block to the pool. Returns false without
// blocking when the pool mutex is contended, in which case the caller
// keeps the block.
func (pool *globalpool) donate(nd *node) bool {
	if !pool.mu.TryLock() {
		return false
	}
	pool.fl.insert(nd)
	pool.ndonates++
	pool.mu.Unlock()
	return true
}

// take unlink and return the first block of at least size bytes, by
// ascending address. Returns nil without blocking when the mutex is
// contended or the pool holds no fit.
func (pool *globalpool) take(size int64) *node {
	if !pool.mu.TryLock() {
		return nil
	}
	nd, pre := pool.fl.fit(size)
	if nd != nil {
		pool.fl.detach(nd, pre)
		pool.ntakes++
	}
	pool.mu.Unlock()
	return nd
}

// counters snapshot the donate/take traffic.
func (pool *globalpool) counters() (ndonates, ntakes int64) {
	pool.mu.Lock()
	ndonates, ntakes = pool.ndonates, pool.ntakes
	pool.mu.Unlock()
	return
}
