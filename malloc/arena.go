// Functions and methods are not thread safe.

package malloc

import "unsafe"

import s "github.com/bnclabs/gosettings"

// Arena is a linear allocator over a single buffer of fixed capacity.
// Allocation advances a cursor through the buffer, rounding it up to
// the requested alignment, and never reclaims individual allocations.
// Reset moves the cursor back to zero, invalidating every outstanding
// allocation at once.
type Arena struct {
	offset int64  // cursor to the first unused byte
	base   []byte // arena's buffer

	// configuration
	capacity  int64 // memory capacity to be managed by this arena
	alignment int64 // default alignment for Alloc
}

// NewArena create a new memory arena. Settings parameter "alignment"
// gives the default alignment used by Alloc.
func NewArena(capacity int64, setts s.Settings) *Arena {
	arena := &Arena{
		capacity:  capacity,
		alignment: setts.Int64("alignment"),
	}
	if capacity < 1 || capacity > Maxarenasize {
		panicerr("capacity %v should be between 1 and %v", capacity, Maxarenasize)
	} else if ispow2(arena.alignment) == false {
		panicerr("alignment %v should be a power of 2", arena.alignment)
	}
	arena.base = make([]byte, capacity)
	return arena
}

//---- operations

// Alloc `size` bytes with the arena's default alignment.
func (arena *Arena) Alloc(size int64) (unsafe.Pointer, error) {
	return arena.Allocalign(size, arena.alignment)
}

// Allocalign allocate `size` bytes at the next cursor position that
// satisfies `alignment`, a power of 2. Allocated memory is
// uninitialized. Returns ErrorOutofMemory if the remaining capacity,
// after alignment padding, is smaller than size, the arena never
// grows and never spills to a fallback allocator.
func (arena *Arena) Allocalign(size, alignment int64) (unsafe.Pointer, error) {
	if arena.base == nil {
		panicerr("arena released")
	} else if size < 1 {
		panicerr("Allocalign size %v", size)
	} else if ispow2(alignment) == false {
		panicerr("alignment %v should be a power of 2", alignment)
	}
	baseptr := int64(uintptr(unsafe.Pointer(&arena.base[0])))
	adjustment := alignup(baseptr+arena.offset, alignment) - (baseptr + arena.offset)
	// subtraction form, `size` can be close to the int64 ceiling.
	if adjustment > arena.capacity-arena.offset ||
		size > arena.capacity-arena.offset-adjustment {
		return nil, ErrorOutofMemory
	}
	ptr := unsafe.Pointer(&arena.base[arena.offset+adjustment])
	arena.offset += adjustment + size
	return ptr, nil
}

// Reset move the cursor back to zero, in O(1). This is the only
// deallocation mechanism on the arena, every pointer handed out since
// the previous Reset becomes invalid. Memory contents are left
// untouched, destructors are never run, objects owning external
// resources should be finalized by the caller before Reset.
func (arena *Arena) Reset() {
	if arena.base == nil {
		panicerr("arena released")
	}
	arena.offset = 0
}

// Release implement api.Mallocer{} interface. Drops the arena's
// buffer, any further operation on the arena panics.
func (arena *Arena) Release() {
	arena.base = nil
	arena.capacity, arena.offset = 0, 0
}

//---- statistics

// Info implement api.Mallocer{} interface.
func (arena *Arena) Info() (capacity, heap, alloc, overhead int64) {
	self := int64(unsafe.Sizeof(*arena))
	return arena.capacity, arena.capacity, arena.offset, self
}

// Available return the number of bytes between the cursor and the end
// of the buffer, ignoring any padding a subsequent allocation might
// need.
func (arena *Arena) Available() int64 {
	return arena.capacity - arena.offset
}

// Utilization implement api.Mallocer{} interface.
func (arena *Arena) Utilization() float64 {
	if arena.base == nil {
		panicerr("arena released")
	}
	return (float64(arena.offset) / float64(arena.capacity)) * 100
}
