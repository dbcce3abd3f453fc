// Package malloc supplies manual memory management primitives for
// workloads whose allocation behaviour is known apriori, with a
// limited scope:
//
//   - Types and Functions exported by this package are not thread
//     safe. Concurrent access needs external synchronization or one
//     allocator instance per goroutine.
//   - Memory is allocated from the allocator's single owned buffer,
//     sized up front. Allocators never grow and never fall back to a
//     different memory source, exhaustion is reported to the caller
//     as ErrorOutofMemory.
//   - Memory handed out is uninitialized, constructing the object in
//     it is the caller's responsibility.
//
// Two allocation strategies are supported.
//
// Pool dispenses fixed sized chunks from a pre-allocated buffer,
// tracking free chunks without any per-chunk bookkeeping outside the
// pool. Alloc and Free are O(1) and there is no fragmentation, at the
// cost of a fixed capacity and a single chunk size. Two pool
// algorithms are available, `flist` tracks free chunks on a stack of
// slot indices and reuses the most recently freed chunk first, `fbit`
// tracks chunk occupancy on a bitmap and reuses the lowest free slot
// first.
//
// Arena dispenses variably sized, alignment respecting byte ranges by
// advancing a cursor through a pre-allocated buffer. Individual
// ranges cannot be freed, Reset invalidates every outstanding
// allocation at once in O(1). Objects placed in an arena share its
// lifetime, finalize any external resources they own before Reset.
package malloc
