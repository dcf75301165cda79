package malloc

import "testing"
import "unsafe"

func TestAlignsize(t *testing.T) {
	inputs := []int64{1, 7, 8, 9, 15, 16, 100, 32768, 40000}
	outputs := []int64{8, 8, 8, 16, 16, 16, 104, 32768, 40000}
	for i, input := range inputs {
		if x := alignsize(input); x != outputs[i] {
			t.Errorf("expected %v, got %v", outputs[i], x)
		}
	}
}

func TestNodeview(t *testing.T) {
	heap := newgoheap()
	base, err := heap.Grow(1024)
	if err != nil {
		t.Fatalf("unexpected %v", err)
	}
	nd := nodeat(base)
	nd.size, nd.next = 96, nilnode

	if x := nd.addr(); x != base {
		t.Errorf("expected %x, got %x", base, x)
	}
	ptr := nd.payload()
	if x := uintptr(ptr); x != base+uintptr(Headersize) {
		t.Errorf("expected %x, got %x", base+uintptr(Headersize), x)
	} else if (x % uintptr(Alignment)) != 0 {
		t.Errorf("payload %x not %v byte aligned", x, Alignment)
	}
	if x := headerof(ptr); x != nd {
		t.Errorf("expected %p, got %p", nd, x)
	}
	if x := nd.end(); x != base+uintptr(Headersize+96) {
		t.Errorf("expected %x, got %x", base+uintptr(Headersize+96), x)
	}
}

func TestHeadersize(t *testing.T) {
	if x := int64(unsafe.Sizeof(node{})); x != Headersize {
		t.Errorf("expected %v, got %v", Headersize, x)
	} else if (Headersize % Alignment) != 0 {
		t.Errorf("header size %v not aligned", Headersize)
	}
}
