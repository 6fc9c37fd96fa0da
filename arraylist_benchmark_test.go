package arraylist

import (
	"math/rand/v2"
	"testing"
)

const benchmarkSize = 100000 // Number of elements appended/read per run

func BenchmarkArrayList_Append(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := New[int]() // สร้าง list ใหม่ในแต่ละ iteration
		for j := 0; j < benchmarkSize; j++ {
			_ = l.Append(j)
		}
	}
}

func BenchmarkSlice_Append(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var s []int
		for j := 0; j < benchmarkSize; j++ {
			s = append(s, j) // the single-buffer baseline relocates on growth
		}
	}
}

func BenchmarkArrayList_Append_LargeElements(b *testing.B) {
	// Large elements are where avoided copy-on-grow pays off.
	type payload struct {
		data [128]byte
		n    int
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := New[payload]()
		for j := 0; j < benchmarkSize/10; j++ {
			_ = l.Append(payload{n: j})
		}
	}
}

func BenchmarkSlice_Append_LargeElements(b *testing.B) {
	type payload struct {
		data [128]byte
		n    int
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var s []payload
		for j := 0; j < benchmarkSize/10; j++ {
			s = append(s, payload{n: j})
		}
	}
}

func BenchmarkArrayList_Get(b *testing.B) {
	l := New[int]()
	b.StopTimer() // Stop timer for setup
	for j := 0; j < benchmarkSize; j++ {
		_ = l.Append(j)
	}
	idx := make([]int, benchmarkSize)
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	for j := range idx {
		idx[j] = r.IntN(benchmarkSize)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Get(idx[i%benchmarkSize])
	}
}

func BenchmarkSlice_Get(b *testing.B) {
	s := make([]int, benchmarkSize)
	b.StopTimer() // Stop timer for setup
	idx := make([]int, benchmarkSize)
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	for j := range idx {
		idx[j] = r.IntN(benchmarkSize)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s[idx[i%benchmarkSize]]
	}
}

func BenchmarkArrayList_Iterator(b *testing.B) {
	l := New[int]()
	b.StopTimer() // Stop timer for setup
	for j := 0; j < benchmarkSize; j++ {
		_ = l.Append(j)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		it := l.NewIterator()
		for it.Next() {
			sum += it.Value()
		}
		_ = sum
	}
}

func BenchmarkArrayList_Range(b *testing.B) {
	l := New[int]()
	b.StopTimer() // Stop timer for setup
	for j := 0; j < benchmarkSize; j++ {
		_ = l.Append(j)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		l.Range(func(_ int, v int) bool { sum += v; return true })
		_ = sum
	}
}

// BenchmarkArrayList_BoundaryChurn measures alternating push/pop exactly at
// a block boundary, the case the shrink hysteresis and the recycling
// allocator exist for.
func BenchmarkArrayList_BoundaryChurn(b *testing.B) {
	for _, cfg := range []struct {
		name string
		opts []Option[int]
	}{
		{"Heap", nil},
		{"Recycling", []Option[int]{WithRecycling[int]()}},
	} {
		b.Run(cfg.name, func(b *testing.B) {
			l := New[int](cfg.opts...)
			b.StopTimer()
			for j := 0; j < 127; j++ { // fill blocks 1..64 exactly
				_ = l.Append(j)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = l.Append(i)
				_, _ = l.Pop()
			}
		})
	}
}

func BenchmarkArrayList_InsertMiddle(b *testing.B) {
	l := New[int]()
	b.StopTimer()
	for j := 0; j < benchmarkSize; j++ {
		_ = l.Append(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Insert(l.Len()/2, i)
		_, _ = l.Remove(l.Len() / 2) // keep the size stable across iterations
	}
}
