// Benchmark consumer for the memalloc allocators. Churns the public
// Alloc/Free and Alloc/Reset operations in bulk and reports elapsed
// wall-clock time per round.
package main

import "flag"
import "fmt"
import "unsafe"

import "github.com/bnclabs/golog"
import "github.com/cloudfoundry/gosigar"
import "github.com/dustin/go-humanize"
import "github.com/loov/hrtime"

import "github.com/bnclabs/memalloc/malloc"

var options struct {
	allocator string
	size      int64
	nblocks   int64
	capacity  int64
	repeat    int
	loglevel  string
}

func argParse() {
	flag.StringVar(&options.allocator, "allocator", "flist",
		"pool allocator algorithm, flist or fbit")
	flag.Int64Var(&options.size, "size", 96,
		"chunk size, for the pool and for arena allocations")
	flag.Int64Var(&options.nblocks, "blocks", 4096,
		"number of chunks in the pool")
	flag.Int64Var(&options.capacity, "capacity", 0,
		"arena capacity in bytes, 0 to size it from free system memory")
	flag.IntVar(&options.repeat, "repeat", 100,
		"number of benchmark rounds")
	flag.StringVar(&options.loglevel, "log", "info",
		"log level")
	flag.Parse()
}

func main() {
	argParse()
	log.SetLogger(nil, map[string]interface{}{
		"log.level": options.loglevel,
		"log.file":  "",
	})
	total, used, free := getsysmem()
	log.Infof("sysmem: %v total, %v used, %v free\n",
		humanize.Bytes(total), humanize.Bytes(used), humanize.Bytes(free))
	if options.capacity == 0 {
		options.capacity = int64(free / 8)
	}
	benchpool()
	bencharena()
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}

// one round = allocate every chunk in the pool, then free them all
// in reverse order.
func benchpool() {
	setts := malloc.Defaultsettings().Mixin(map[string]interface{}{
		"allocator": options.allocator,
	})
	pool := malloc.NewPool(options.size, options.nblocks, setts)
	capacity, _, _, overhead := pool.Info()
	log.Infof(
		"pool: %v allocator, %v chunks of %v, %v storage, %v overhead\n",
		options.allocator, humanize.Comma(options.nblocks),
		humanize.Bytes(uint64(options.size)),
		humanize.Bytes(uint64(capacity)), humanize.Bytes(uint64(overhead)))

	ptrs := make([]unsafe.Pointer, options.nblocks)
	bench := hrtime.NewBenchmark(options.repeat)
	for bench.Next() {
		for i := range ptrs {
			ptr, err := pool.Alloc()
			if err != nil {
				log.Fatalf("pool.Alloc: %v\n", err)
			}
			ptrs[i] = ptr
		}
		for i := len(ptrs) - 1; i >= 0; i-- {
			pool.Free(ptrs[i])
		}
	}
	log.Infof("pool: %v rounds of %v alloc+free\n",
		options.repeat, humanize.Comma(options.nblocks))
	fmt.Println(bench.Histogram(10))
	pool.Release()
}

// one round = fill the arena with fixed size allocations until it
// reports out-of-memory, then reset it.
func bencharena() {
	arena := malloc.NewArena(options.capacity, malloc.Defaultsettings())
	log.Infof("arena: %v capacity, %v per allocation\n",
		humanize.Bytes(uint64(options.capacity)),
		humanize.Bytes(uint64(options.size)))

	allocs := int64(0)
	bench := hrtime.NewBenchmark(options.repeat)
	for bench.Next() {
		for {
			if _, err := arena.Alloc(options.size); err != nil {
				break
			}
			allocs++
		}
		arena.Reset()
	}
	log.Infof("arena: %v rounds, %v allocations per round\n",
		options.repeat, humanize.Comma(allocs/int64(options.repeat)))
	fmt.Println(bench.Histogram(10))
	arena.Release()
}
