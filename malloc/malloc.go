package malloc

import "sync"
import "sync/atomic"

import s "github.com/prataprc/gosettings"
import "github.com/dustin/go-humanize"

// Malloc is the process-wide allocator state: the heap extender, the
// mutex serializing it, and the global overflow pool. One Malloc is
// shared by any number of caches; it holds no free blocks of its own.
type Malloc struct {
	// 64-bit aligned atomic counters.
	heapsize  int64 // total bytes obtained from the heap extender
	allocated int64 // payload bytes currently live with callers
	ngrows    int64
	ncaches   int64

	heapmu sync.Mutex // held only around Heaper.Grow calls
	heap   Heaper
	pool   globalpool

	chunksize int64
}

// New create an allocator from settings, document found in
// Defaultsettings(). Panics on malformed settings.
func New(setts s.Settings) *Malloc {
	m := &Malloc{chunksize: setts.Int64("chunksize")}
	if m.chunksize <= Headersize {
		panicerr("chunksize %v must exceed the header size %v",
			m.chunksize, Headersize)
	} else if (m.chunksize % Alignment) != 0 {
		panicerr("chunksize %v not a multiple of %v", m.chunksize, Alignment)
	}
	heap := setts.String("heap")
	switch heap {
	case "mmap":
		m.heap = newosheap()
	case "go":
		m.heap = newgoheap()
	default:
		panicerr("unknown heap backend %q", heap)
	}
	infof("malloc: new allocator chunksize:%v heap:%q",
		humanize.IBytes(uint64(m.chunksize)), heap)
	return m
}

// Newcache return a fresh, empty cache backed by this allocator. A
// cache must have a single owner goroutine at any time; the shared
// heap and pool take care of their own synchronization.
func (m *Malloc) Newcache() *Cache {
	atomic.AddInt64(&m.ncaches, 1)
	return &Cache{m: m}
}

// grow extend the heap by n bytes under the heap mutex. Nothing else
// happens under the mutex; carving blocks out of the fresh region is
// the caller's job. Failure to grow is fatal.
func (m *Malloc) grow(n int64) uintptr {
	m.heapmu.Lock()
	base, err := m.heap.Grow(n)
	m.heapmu.Unlock()
	if err != nil {
		errorf("malloc: heap extender failed growing %v bytes: %v", n, err)
		panic(ErrorOutofMemory)
	}
	atomic.AddInt64(&m.heapsize, n)
	atomic.AddInt64(&m.ngrows, 1)
	debugf("malloc: heap grown by %v", humanize.IBytes(uint64(n)))
	return base
}
