package malloc

import "fmt"
import "errors"

// ErrorOutofMemory allocator's capacity is exhausted.
var ErrorOutofMemory = errors.New("malloc.outofmemory")

// alignup rounds off to the next multiple of align, align should be
// a power of 2.
func alignup(n, align int64) int64 {
	return (n + align - 1) &^ (align - 1)
}

func ispow2(n int64) bool {
	return n > 0 && (n&(n-1)) == 0
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
