package malloc

import s "github.com/prataprc/gosettings"

// Alignment request sizes and payload addresses are aligned to 8 bytes.
const Alignment = int64(8)

// Headersize size of the block header prefixed to every payload.
// Must remain a multiple of Alignment so payloads inherit it.
const Headersize = int64(16)

// Chunksize default heap-growth unit for small allocations. Can be
// overridden with the "chunksize" settings key.
const Chunksize = int64(32768)

// Defaultsettings for creating a Malloc.
//
// "chunksize" (int64, default: 32768)
//	Heap growth unit for requests that fit a chunk. Larger requests
//	grow the heap by twice the request plus two block headers instead.
//
// "heap" (string, default: "mmap")
//	Heap extender backend, can be "mmap" or "go". The "mmap"
//	backend maps anonymous memory outside the Go heap; the "go"
//	backend carves regions out of Go-allocated byte slices.
func Defaultsettings() s.Settings {
	return s.Settings{
		"chunksize": Chunksize,
		"heap":      "mmap",
	}
}
