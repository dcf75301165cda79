//go:build debug
// +build debug

package malloc

import "reflect"
import "unsafe"

var poisonblk = make([]byte, 1024)

func init() {
	for i := 0; i < len(poisonblk); i++ {
		poisonblk[i] = 0xff
	}
}

// markfree poison the payload of a freshly released block so that
// use-after-free reads surface as 0xff garbage.
func markfree(nd *node) {
	var dst []byte
	initsz := len(poisonblk)
	sl := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	sl.Data, sl.Len, sl.Cap = uintptr(nd.payload()), initsz, initsz
	for i := int64(0); i < nd.size/int64(initsz); i++ {
		copy(dst, poisonblk)
		sl.Data = (uintptr)(uint64(sl.Data) + uint64(initsz))
	}
	if rem := int(nd.size) % initsz; rem > 0 {
		sl.Len, sl.Cap = rem, rem
		copy(dst, poisonblk)
	}
}

// checklist walk the list and verify ascending address order, link
// sanity and complete coalescing.
func checklist(fl *freelist) {
	prev := nilnode
	for cur := fl.head; cur != nilnode; {
		nd := nodeat(cur)
		if (nd.size % Alignment) != 0 {
			panicerr("free block at %x size %v unaligned", cur, nd.size)
		}
		if prev != nilnode {
			if cur <= prev {
				panicerr("freelist order violated at %x", cur)
			}
			if nodeat(prev).end() == cur {
				panicerr("uncoalesced neighbours at %x", cur)
			}
		}
		prev, cur = cur, nd.next
	}
}
