//go:build debug

package malloc

import "unsafe"

var poolblkinit = make([]byte, 1024)

func init() {
	for i := 0; i < len(poolblkinit); i++ {
		poolblkinit[i] = 0xff
	}
}

// initblock fills a fresh chunk with 0xff so that reads before
// initialization stand out.
func initblock(block uintptr, size int64) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(block)), size)
	for n := int64(copy(dst, poolblkinit)); n < size; {
		n += int64(copy(dst[n:], poolblkinit))
	}
}
