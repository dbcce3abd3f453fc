package malloc

import "github.com/bnclabs/memalloc/api"
import s "github.com/bnclabs/gosettings"

// NewPool create a pool of `n` chunks, each of `size` bytes, over a
// single buffer owned by the pool. `size` should be a multiple of
// Alignment so that every chunk is 64-bit aligned, `n` cannot exceed
// Maxchunks. Settings parameter "allocator" picks the pool algorithm,
// "flist" or "fbit".
func NewPool(size, n int64, setts s.Settings) api.MemoryPool {
	if size < Alignment || (size%Alignment) != 0 {
		panicerr("size %v should be a multiple of %v", size, Alignment)
	} else if n < 1 || n > Maxchunks {
		panicerr("n %v should be between 1 and %v", n, Maxchunks)
	}
	allocator := setts.String("allocator")
	switch allocator {
	case "flist":
		return newpoolflist(size, n)
	case "fbit":
		return newpoolfbit(size, n)
	}
	panicerr("invalid allocator %q", allocator)
	return nil
}
