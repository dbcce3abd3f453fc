package malloc

import s "github.com/bnclabs/gosettings"

// Alignment chunks dispensed by pools are always aligned to this
// boundary, pool slab sizes should be multiples of Alignment.
const Alignment = int64(8)

// Maxarenasize maximum capacity of a memory arena. Can be used as
// upper bound while sizing an arena.
const Maxarenasize = int64(1024 * 1024 * 1024 * 1024) // 1TB

// Maxchunks maximum number of chunks allowed in a pool.
const Maxchunks = int64(65536)

// Defaultsettings for this package.
//
// "allocator" (string, default: "flist")
//	Pool allocator algorithm, can be "flist" or "fbit".
//
// "alignment" (int64, default: Alignment)
//	Default alignment used by Arena.Alloc, must be a power of 2.
func Defaultsettings() s.Settings {
	return s.Settings{
		"allocator": "flist",
		"alignment": Alignment,
	}
}
