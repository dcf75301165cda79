//go:build !debug
// +build !debug

package malloc

// Release builds compile the consistency hooks away. Build with
// `-tags debug` to poison freed payloads and re-validate free lists
// on every mutation.

func markfree(nd *node) {
}

func checklist(fl *freelist) {
}
