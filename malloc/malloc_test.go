package malloc

import "testing"

import s "github.com/prataprc/gosettings"

func TestNewmalloc(t *testing.T) {
	chklist := []s.Settings{
		{"chunksize": 0, "heap": "go"},
		{"chunksize": Headersize, "heap": "go"},
		{"chunksize": 1001, "heap": "go"},
		{"chunksize": Chunksize, "heap": "tcmalloc"},
	}
	for _, setts := range chklist {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic for %v", setts)
				}
			}()
			New(Defaultsettings().Mixin(setts))
		}()
	}
	m := New(testsettings())
	if m.chunksize != Chunksize {
		t.Errorf("expected %v, got %v", Chunksize, m.chunksize)
	}
}

func TestNcaches(t *testing.T) {
	m := New(testsettings())
	if x := m.Ncaches(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	m.Newcache()
	m.Newcache()
	if x := m.Ncaches(); x != 2 {
		t.Errorf("expected %v, got %v", 2, x)
	}
}

func TestLargeAlloc(t *testing.T) {
	// requests above the chunk payload grow a twin region sized to
	// the request, the second half lands in the global pool.
	m := New(testsettings())
	tc := m.Newcache()

	ptr := tc.Alloc(40000)
	if ptr == nil {
		t.Errorf("unexpected allocation failure")
	}
	if x := tc.Chunklen(ptr); x != 40000 {
		t.Errorf("expected %v, got %v", 40000, x)
	}
	heap, alloc, ngrows, ndonates, ntakes := m.Info()
	if heap != 2*40000+2*Headersize {
		t.Errorf("expected %v, got %v", 2*40000+2*Headersize, heap)
	} else if alloc != 40000 {
		t.Errorf("expected %v, got %v", 40000, alloc)
	} else if ngrows != 1 {
		t.Errorf("expected %v, got %v", 1, ngrows)
	} else if ndonates != 1 {
		t.Errorf("expected %v, got %v", 1, ndonates)
	} else if ntakes != 0 {
		t.Errorf("expected %v, got %v", 0, ntakes)
	}
	if _, nblocks := tc.Info(); nblocks != 0 {
		t.Errorf("expected empty cache, got %v blocks", nblocks)
	}
	tc.Free(ptr)
}

func TestSmallAllocGrow(t *testing.T) {
	// a small request on an empty allocator grows two chunks, keeps
	// one and donates the other.
	m := New(testsettings())
	tc := m.Newcache()

	ptr := tc.Alloc(96)
	heap, alloc, ngrows, ndonates, _ := m.Info()
	if heap != 2*Chunksize {
		t.Errorf("expected %v, got %v", 2*Chunksize, heap)
	} else if alloc != 96 {
		t.Errorf("expected %v, got %v", 96, alloc)
	} else if ngrows != 1 {
		t.Errorf("expected %v, got %v", 1, ngrows)
	} else if ndonates != 1 {
		t.Errorf("expected %v, got %v", 1, ndonates)
	}
	cached, nblocks := tc.Info()
	if nblocks != 1 {
		t.Errorf("expected 1 block, got %v", nblocks)
	} else if cached != Chunksize-Headersize-96 {
		t.Errorf("expected %v, got %v", Chunksize-Headersize-96, cached)
	}
	tc.Free(ptr)
}

func TestAllocAccounting(t *testing.T) {
	// live payload is accounted on the shared allocator, whichever
	// cache frees.
	m := New(testsettings())
	tc1, tc2 := m.Newcache(), m.Newcache()

	a, b := tc1.Alloc(128), tc1.Alloc(256)
	if _, alloc, _, _, _ := m.Info(); alloc != 128+256 {
		t.Errorf("expected %v, got %v", 128+256, alloc)
	}
	tc2.Free(a)
	tc1.Free(b)
	if _, alloc, _, _, _ := m.Info(); alloc != 0 {
		t.Errorf("expected %v, got %v", 0, alloc)
	}
	if nallocs, nfrees := tc1.Counts(); nallocs != 2 || nfrees != 1 {
		t.Errorf("unexpected counts %v %v", nallocs, nfrees)
	}
	if nallocs, nfrees := tc2.Counts(); nallocs != 0 || nfrees != 1 {
		t.Errorf("unexpected counts %v %v", nallocs, nfrees)
	}
}

func TestLogstats(t *testing.T) {
	m := New(testsettings())
	tc := m.Newcache()
	tc.Free(tc.Alloc(512))
	m.Logstats()
}
