// Functions and methods are not thread safe.

package malloc

import "unsafe"

import "github.com/willf/bitset"

// poolfbit manages a memory block sliced up into equal sized chunks,
// chunk occupancy is tracked by a bitmap. Allocation picks the lowest
// free slot, so freed chunks are reused in address order rather than
// the flist pool's LIFO order.
type poolfbit struct {
	// 64-bit aligned stats
	mallocated int64

	capacity int64  // memory managed by this pool
	size     int64  // fixed size chunks in this pool
	base     []byte // pool's buffer
	occupied *bitset.BitSet
}

// size of each chunk in the block and no. of chunks in the block.
func newpoolfbit(size, n int64) *poolfbit {
	return &poolfbit{
		capacity: size * n,
		size:     size,
		base:     make([]byte, size*n),
		occupied: bitset.New(uint(n)),
	}
}

// Slabsize implement api.MemoryPool{} interface.
func (pool *poolfbit) Slabsize() int64 {
	return pool.size
}

// Alloc implement api.MemoryPool{} interface.
func (pool *poolfbit) Alloc() (unsafe.Pointer, error) {
	if pool.base == nil {
		panicerr("poolfbit.alloc(): pool already released")
	} else if pool.mallocated == pool.capacity {
		return nil, ErrorOutofMemory
	}
	nthchunk, ok := pool.occupied.NextClear(0)
	if !ok || int64(nthchunk) >= (pool.capacity/pool.size) {
		return nil, ErrorOutofMemory
	}
	pool.occupied.Set(nthchunk)
	ptr := unsafe.Pointer(&pool.base[int64(nthchunk)*pool.size])
	initblock(uintptr(ptr), pool.size)
	pool.mallocated += pool.size
	return ptr, nil
}

// Free implement api.MemoryPool{} interface. The occupancy bitmap
// catches double-free of a chunk, every other misuse remains
// undefined behavior as with the flist pool.
func (pool *poolfbit) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		panic("poolfbit.free(): nil pointer")
	} else if pool.base == nil {
		panicerr("poolfbit.free(): pool already released")
	}
	diffptr := uint64(uintptr(ptr) - uintptr(unsafe.Pointer(&pool.base[0])))
	if (diffptr % uint64(pool.size)) != 0 {
		panicerr("poolfbit.free(): unaligned pointer: %x,%v", diffptr, pool.size)
	}
	nthchunk := uint(diffptr / uint64(pool.size))
	if !pool.occupied.Test(nthchunk) {
		panicerr("poolfbit.free(): chunk %v already free", nthchunk)
	}
	pool.occupied.Clear(nthchunk)
	pool.mallocated -= pool.size
}

// Info implement api.MemoryPool{} interface.
func (pool *poolfbit) Info() (capacity, heap, alloc, overhead int64) {
	self := int64(unsafe.Sizeof(*pool))
	bitsetsz := int64(pool.occupied.BinaryStorageSize())
	return pool.capacity, pool.capacity, pool.mallocated, self + bitsetsz
}

// Release implement api.MemoryPool{} interface.
func (pool *poolfbit) Release() {
	pool.occupied = nil
	pool.capacity, pool.base = 0, nil
	pool.mallocated = 0
}

//---- local functions

func (pool *poolfbit) checkallocated() int64 {
	return int64(pool.occupied.Count()) * pool.size
}
