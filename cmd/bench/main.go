package main

import (
	"fmt"
	"runtime"
	"time"

	arraylist "github.com/ThiefOfBagEnd/Binary-Array-List"
)

func main() {
	const N = 2_000_000

	configs := []struct {
		name string
		opts []arraylist.Option[int]
	}{
		{"Heap-base-1", nil},
		{"Heap-base-64", []arraylist.Option[int]{arraylist.WithBaseCapacity[int](64)}},
		{"Recycle-base-1", []arraylist.Option[int]{arraylist.WithRecycling[int]()}},
		{"Recycle-base-64", []arraylist.Option[int]{arraylist.WithRecycling[int](), arraylist.WithBaseCapacity[int](64)}},
	}

	fmt.Printf("Running lightweight append microbench (N=%d)\n", N)

	for _, cfg := range configs {
		runtime.GC()
		time.Sleep(50 * time.Millisecond)
		fmt.Printf("\nConfig: %s\n", cfg.name)

		l := arraylist.New[int](cfg.opts...)

		var msBefore, msAfter runtime.MemStats
		runtime.ReadMemStats(&msBefore)
		start := time.Now()

		for i := 0; i < N; i++ {
			if err := l.Append(i); err != nil {
				panic(err)
			}
		}

		report(start, &msBefore, &msAfter, N, l.Len())
	}

	// Baseline: a single-buffer slice, which relocates every element it
	// holds on each growth step.
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	fmt.Printf("\nConfig: builtin-slice\n")

	var msBefore, msAfter runtime.MemStats
	runtime.ReadMemStats(&msBefore)
	start := time.Now()

	var s []int
	for i := 0; i < N; i++ {
		s = append(s, i)
	}

	report(start, &msBefore, &msAfter, N, len(s))
}

func report(start time.Time, before, after *runtime.MemStats, n, length int) {
	dur := time.Since(start)
	runtime.ReadMemStats(after)

	nsPerOp := float64(dur.Nanoseconds()) / float64(n)
	allocDiff := int64(after.TotalAlloc) - int64(before.TotalAlloc)

	fmt.Printf("Duration: %s, ns/op: %.1f, TotalAlloc diff: %d bytes, Len: %d\n", dur, nsPerOp, allocDiff, length)
}
