package api

import "unsafe"

// MemoryPool interface for fixed sized chunk allocators.
type MemoryPool interface {
	// Slabsize return the size of chunks dispensed by this pool.
	Slabsize() int64

	// Alloc a chunk from pool. Allocated memory is uninitialized
	// and always 64-bit aligned. Returns ErrorOutofMemory once all
	// chunks are handed out.
	Alloc() (ptr unsafe.Pointer, err error)

	// Free chunk back to pool.
	Free(ptr unsafe.Pointer)

	// Info of memory accounting for this pool.
	Info() (capacity, heap, alloc, overhead int64)

	// Release this pool and all its resources.
	Release()
}

// Mallocer interface for custom memory management.
type Mallocer interface {
	// Info of memory accounting for this allocator.
	Info() (capacity, heap, alloc, overhead int64)

	// Utilization percentage of currently allocated memory.
	Utilization() float64

	// Release the allocator and all its resources.
	Release()
}
