package heap_test

import (
	"math/rand"
	"testing"

	"github.com/iCodeIN/rudac/heap"
)

// buildHeap pushes n pseudo-random values from a fixed seed so every
// benchmark run sees identical shapes.
func buildHeap(n int) *heap.FibonacciHeap[int] {
	rng := rand.New(rand.NewSource(1))
	h := heap.NewFibonacciHeap[int]()
	for i := 0; i < n; i++ {
		h.Push(rng.Int())
	}

	return h
}

// BenchmarkFibonacciHeap_Push measures the O(1) lazy insertion path.
func BenchmarkFibonacciHeap_Push(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	h := heap.NewFibonacciHeap[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Push(rng.Int())
	}
}

// benchmarkDrain builds an n-element heap per iteration and pops it dry,
// timing the full consolidation workload.
func benchmarkDrain(b *testing.B, n int) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h := buildHeap(n)
		b.StartTimer()

		for {
			if _, ok := h.Pop(); !ok {
				break
			}
		}
	}
}

// BenchmarkFibonacciHeap_DrainSmall drains 1,000 elements.
func BenchmarkFibonacciHeap_DrainSmall(b *testing.B) { benchmarkDrain(b, 1_000) }

// BenchmarkFibonacciHeap_DrainMedium drains 50,000 elements.
func BenchmarkFibonacciHeap_DrainMedium(b *testing.B) { benchmarkDrain(b, 50_000) }

// BenchmarkFibonacciHeap_Merge measures the O(1) union of two prebuilt
// 1,000-element heaps.
func BenchmarkFibonacciHeap_Merge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		x := buildHeap(1_000)
		y := buildHeap(1_000)
		b.StartTimer()

		_ = x.Merge(y)
	}
}

// BenchmarkFibonacciHeap_Mixed interleaves pushes and pops 3:1, the
// workload the amortized bounds are tuned for.
func BenchmarkFibonacciHeap_Mixed(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	h := heap.NewFibonacciHeap[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Push(rng.Int())
		if i%3 == 2 {
			h.Pop()
		}
	}
}
