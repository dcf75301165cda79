package lib

import "reflect"
import "strings"
import "unsafe"

// Parsecsv convert a string of comma separated values into list of
// string of values.
func Parsecsv(input string) []string {
	if input == "" {
		return nil
	}
	ss := strings.Split(input, ",")
	outs := make([]string, 0)
	for _, s := range ss {
		s = strings.Trim(s, " \t\r\n")
		if s == "" {
			continue
		}
		outs = append(outs, s)
	}
	return outs
}

// Memcpy copy memory block of length `ln` from `src` to `dst`. This
// function is useful when the blocks live outside the golang heap.
func Memcpy(dst, src unsafe.Pointer, ln int) int {
	var dstnd, srcnd []byte
	dstsl := (*reflect.SliceHeader)(unsafe.Pointer(&dstnd))
	dstsl.Data, dstsl.Len, dstsl.Cap = (uintptr)(dst), ln, ln
	srcsl := (*reflect.SliceHeader)(unsafe.Pointer(&srcnd))
	srcsl.Data, srcsl.Len, srcsl.Cap = (uintptr)(src), ln, ln
	return copy(dstnd, srcnd)
}

var zeroblk = make([]byte, 1024)

// Memzero zero-fill `ln` bytes of the memory block starting at `ptr`.
func Memzero(ptr unsafe.Pointer, ln int) int {
	var dst []byte
	initsz := len(zeroblk)
	sl := (*reflect.SliceHeader)(unsafe.Pointer(&dst))
	sl.Data, sl.Len, sl.Cap = (uintptr)(ptr), initsz, initsz
	for i := 0; i < ln/initsz; i++ {
		copy(dst, zeroblk)
		sl.Data = (uintptr)(uint64(sl.Data) + uint64(initsz))
	}
	if rem := ln % initsz; rem > 0 {
		sl.Len, sl.Cap = rem, rem
		copy(dst, zeroblk)
	}
	return ln
}
