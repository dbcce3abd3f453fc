package malloc

import "unsafe"

import "github.com/bnclabs/memalloc/api"
import s "github.com/bnclabs/gosettings"

// TypedPool dispenses chunks of a single element type from a fixed
// capacity pool. Chunk memory is uninitialized, constructing the
// element is the caller's responsibility. Same Free contract as
// api.MemoryPool.
type TypedPool[T any] struct {
	pool api.MemoryPool
}

// NewTypedPool create a pool of `n` chunks of type T. Chunk size is
// sizeof(T) rounded up to the pool's Alignment granularity.
func NewTypedPool[T any](n int64, setts s.Settings) *TypedPool[T] {
	var v T
	size := alignup(int64(unsafe.Sizeof(v)), Alignment)
	if size == 0 {
		size = Alignment
	}
	return &TypedPool[T]{pool: NewPool(size, n, setts)}
}

// Alloc a chunk from the pool, reinterpreted as *T.
func (tpool *TypedPool[T]) Alloc() (*T, error) {
	ptr, err := tpool.pool.Alloc()
	if err != nil {
		return nil, err
	}
	return (*T)(ptr), nil
}

// Free chunk back to pool.
func (tpool *TypedPool[T]) Free(ptr *T) {
	tpool.pool.Free(unsafe.Pointer(ptr))
}

// Slabsize return the size of chunks dispensed by this pool.
func (tpool *TypedPool[T]) Slabsize() int64 {
	return tpool.pool.Slabsize()
}

// Info of memory accounting for this pool.
func (tpool *TypedPool[T]) Info() (capacity, heap, alloc, overhead int64) {
	return tpool.pool.Info()
}

// Release this pool and all its resources.
func (tpool *TypedPool[T]) Release() {
	tpool.pool.Release()
}

// New allocate a T from arena, with the type's natural alignment.
// Allocated memory is uninitialized.
func New[T any](arena *Arena) (*T, error) {
	var v T
	size, align := int64(unsafe.Sizeof(v)), int64(unsafe.Alignof(v))
	ptr, err := arena.Allocalign(size, align)
	if err != nil {
		return nil, err
	}
	return (*T)(ptr), nil
}

// NewSlice allocate `n` contiguous elements of type T from arena.
// Element memory is uninitialized. Returns a nil slice for n < 1,
// without touching the arena.
func NewSlice[T any](arena *Arena, n int64) ([]T, error) {
	if n < 1 {
		return nil, nil
	}
	var v T
	size, align := int64(unsafe.Sizeof(v)), int64(unsafe.Alignof(v))
	ptr, err := arena.Allocalign(size*n, align)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(ptr), n), nil
}
