package malloc

import "testing"
import "unsafe"

import "github.com/stretchr/testify/require"

func TestTypedPool(t *testing.T) {
	type record struct {
		key   int64
		value [40]byte
	}

	pool := NewTypedPool[record](3, Defaultsettings())
	require.Equal(t, int64(48), pool.Slabsize())

	records := make([]*record, 0, 3)
	for i := int64(0); i < 3; i++ {
		r, err := pool.Alloc()
		require.NoError(t, err)
		r.key = i
		records = append(records, r)
	}
	_, err := pool.Alloc()
	require.ErrorIs(t, err, ErrorOutofMemory)

	// the freed chunk is handed out again.
	pool.Free(records[1])
	r, err := pool.Alloc()
	require.NoError(t, err)
	require.Same(t, records[1], r)

	// values written through earlier pointers are intact.
	require.Equal(t, int64(0), records[0].key)
	require.Equal(t, int64(2), records[2].key)

	capacity, _, alloc, _ := pool.Info()
	require.Equal(t, int64(3*48), capacity)
	require.Equal(t, int64(3*48), alloc)
	pool.Release()
}

func TestTypedPoolBlocks(t *testing.T) {
	// three 64-byte blocks, the pool is exhausted by the fourth
	// allocation, freeing the second block hands its address back.
	pool := NewTypedPool[[64]byte](3, Defaultsettings())
	require.Equal(t, int64(64), pool.Slabsize())

	blocks := make([]*[64]byte, 0, 3)
	for i := 0; i < 3; i++ {
		blk, err := pool.Alloc()
		require.NoError(t, err)
		blocks = append(blocks, blk)
	}
	_, err := pool.Alloc()
	require.ErrorIs(t, err, ErrorOutofMemory)

	pool.Free(blocks[1])
	blk, err := pool.Alloc()
	require.NoError(t, err)
	require.Equal(t, unsafe.Pointer(blocks[1]), unsafe.Pointer(blk))
	pool.Release()
}

func TestArenaNew(t *testing.T) {
	type vertex struct {
		x, y, z float64
	}

	arena := NewArena(4096, Defaultsettings())
	v, err := New[vertex](arena)
	require.NoError(t, err)
	require.Zero(t, uintptr(unsafe.Pointer(v))%unsafe.Alignof(vertex{}))
	v.x, v.y, v.z = 1, 2, 3

	vs, err := NewSlice[vertex](arena, 10)
	require.NoError(t, err)
	require.Len(t, vs, 10)
	for i := range vs {
		vs[i] = vertex{float64(i), 0, 0}
	}
	for i := range vs {
		require.Equal(t, float64(i), vs[i].x)
	}
	require.Equal(t, vertex{1, 2, 3}, *v)

	arena.Reset()
	w, err := New[vertex](arena)
	require.NoError(t, err)
	require.Equal(t, unsafe.Pointer(v), unsafe.Pointer(w))

	// a slice larger than the remaining capacity fails.
	_, err = NewSlice[vertex](arena, 4096)
	require.ErrorIs(t, err, ErrorOutofMemory)

	// n < 1 yields a nil slice and leaves the cursor alone.
	_, _, before, _ := arena.Info()
	for _, n := range []int64{0, -1} {
		vs, err = NewSlice[vertex](arena, n)
		require.NoError(t, err)
		require.Nil(t, vs)
	}
	_, _, after, _ := arena.Info()
	require.Equal(t, before, after)
	arena.Release()
}
