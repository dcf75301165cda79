package malloc

import "unsafe"

// freelist is a singly linked chain of free blocks kept in ascending
// header-address order. The zero value is an empty list. Methods take
// no locks; a freelist is either owned by a single cache or reached
// under the global pool mutex.
type freelist struct {
	head uintptr
}

// insert splice nd into the list keeping address order, then merge
// with the right and the left neighbour when they touch. Both merges
// are attempted on every insertion, which keeps coalescing complete.
func (fl *freelist) insert(nd *node) {
	var pre *node
	cur := fl.head
	for cur != nilnode {
		if cur > nd.addr() {
			break
		}
		pre = nodeat(cur)
		cur = pre.next
	}
	nd.next = cur
	if pre != nil {
		pre.next = nd.addr()
	} else {
		fl.head = nd.addr()
	}
	if cur != nilnode && nd.end() == cur {
		right := nodeat(cur)
		nd.size += Headersize + right.size
		nd.next = right.next
		right.next = nilnode
	}
	if pre != nil && pre.end() == nd.addr() {
		pre.size += Headersize + nd.size
		pre.next = nd.next
		nd.next = nilnode
	}
	checklist(fl)
}

// fit first-fit scan for a block of at least size bytes, by ascending
// address. Returns the block and its list predecessor. When the list
// has no fit the block is nil and the predecessor is the list tail.
func (fl *freelist) fit(size int64) (nd, pre *node) {
	cur := fl.head
	for cur != nilnode {
		curnd := nodeat(cur)
		if curnd.size >= size {
			return curnd, pre
		}
		pre = curnd
		cur = curnd.next
	}
	return nil, pre
}

// detach unlink nd from the list, given its predecessor, and reset
// its link to the live sentinel.
func (fl *freelist) detach(nd, pre *node) {
	if pre != nil {
		pre.next = nd.next
	} else {
		fl.head = nd.next
	}
	nd.next = nilnode
	checklist(fl)
}

// carve hand out nd to satisfy a request of size bytes. When the
// block can spare a remainder carrying a payload of its own, split:
// the low portion becomes the live block and the high portion takes
// nd's place in the list. Otherwise the whole block is handed over
// and the caller gets the overshoot.
func (fl *freelist) carve(nd, pre *node, size int64) unsafe.Pointer {
	if nd.size > size+Headersize {
		rem := nodeat(nd.addr() + uintptr(Headersize+size))
		rem.size = nd.size - size - Headersize
		rem.next = nd.next
		if pre != nil {
			pre.next = rem.addr()
		} else {
			fl.head = rem.addr()
		}
		nd.size = size
		nd.next = nilnode
		checklist(fl)
		return nd.payload()
	}
	fl.detach(nd, pre)
	checklist(fl)
	return nd.payload()
}
