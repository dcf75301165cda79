// Gomalloc is a thread-caching dynamic memory allocator for golang
// programs that manage memory outside the garbage collector. Each
// worker owns a private cache of free blocks and falls back to a
// shared overflow pool, growing the heap in chunks when both miss.
// Refer to the malloc sub-package for the allocator proper, the api
// sub-package for interfaces and cmd/mallocperf for a load generator.
package gomalloc
