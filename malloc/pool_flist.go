// Functions and methods are not thread safe.

package malloc

import "unsafe"

// poolflist manages a memory block sliced up into equal sized chunks,
// free chunks are tracked by a stack of slot indices. Freed chunks
// are pushed on top of the stack, so the most recently freed chunk is
// handed out first.
type poolflist struct {
	// 64-bit aligned stats
	mallocated int64

	capacity int64  // memory managed by this pool
	size     int64  // fixed size chunks in this pool
	base     []byte // pool's buffer
	freelist []uint16
	freeoff  int
}

// size of each chunk in the block and no. of chunks in the block.
func newpoolflist(size, n int64) *poolflist {
	capacity := size * n
	pool := &poolflist{
		capacity: capacity,
		size:     size,
		base:     make([]byte, capacity),
		freelist: make([]uint16, n),
		freeoff:  int(n - 1),
	}
	// seed the stack in reverse, the first pass hands out chunks in
	// ascending address order.
	for i := int64(0); i < n; i++ {
		pool.freelist[i] = uint16(n - 1 - i)
	}
	return pool
}

// Slabsize implement api.MemoryPool{} interface.
func (pool *poolflist) Slabsize() int64 {
	return pool.size
}

// Alloc implement api.MemoryPool{} interface.
func (pool *poolflist) Alloc() (unsafe.Pointer, error) {
	if pool.base == nil {
		panicerr("poolflist.alloc(): pool already released")
	} else if pool.freeoff < 0 {
		return nil, ErrorOutofMemory
	}
	nthchunk := int64(pool.freelist[pool.freeoff])
	pool.freelist = pool.freelist[:pool.freeoff]
	pool.freeoff--
	ptr := unsafe.Pointer(&pool.base[nthchunk*pool.size])
	initblock(uintptr(ptr), pool.size)
	pool.mallocated += pool.size
	return ptr, nil
}

// Free implement api.MemoryPool{} interface. Freeing the same chunk
// twice, or a pointer that did not come from this pool's Alloc, is
// undefined behavior. Other than rejecting pointers that are not on
// a chunk boundary, no validation is done, that is the contract which
// keeps Free O(1).
func (pool *poolflist) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		panic("poolflist.free(): nil pointer")
	} else if pool.base == nil {
		panicerr("poolflist.free(): pool already released")
	}
	diffptr := uint64(uintptr(ptr) - uintptr(unsafe.Pointer(&pool.base[0])))
	if (diffptr % uint64(pool.size)) != 0 {
		panicerr("poolflist.free(): unaligned pointer: %x,%v", diffptr, pool.size)
	}
	nthchunk := uint16(diffptr / uint64(pool.size))
	pool.freelist = append(pool.freelist, nthchunk)
	pool.freeoff++
	pool.mallocated -= pool.size
}

// Info implement api.MemoryPool{} interface.
func (pool *poolflist) Info() (capacity, heap, alloc, overhead int64) {
	self := int64(unsafe.Sizeof(*pool))
	slicesz := int64(cap(pool.freelist)) * int64(unsafe.Sizeof(uint16(0)))
	return pool.capacity, pool.capacity, pool.mallocated, self + slicesz
}

// Release implement api.MemoryPool{} interface.
func (pool *poolflist) Release() {
	pool.freelist, pool.freeoff = nil, -1
	pool.capacity, pool.base = 0, nil
	pool.mallocated = 0
}

//---- local functions

func (pool *poolflist) checkallocated() int64 {
	return pool.capacity - int64(len(pool.freelist))*pool.size
}
