//go:build linux || darwin || freebsd || netbsd || openbsd
// +build linux darwin freebsd netbsd openbsd

package malloc

import "unsafe"

import "golang.org/x/sys/unix"

// mmapheap sources regions from anonymous memory mappings, outside
// the reach of the Go garbage collector.
type mmapheap struct {
	regions [][]byte
}

func newosheap() Heaper {
	return &mmapheap{regions: make([][]byte, 0, 16)}
}

func (h *mmapheap) Grow(n int64) (uintptr, error) {
	region, err := unix.Mmap(
		-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, err
	}
	h.regions = append(h.regions, region)
	return uintptr(unsafe.Pointer(&region[0])), nil
}
