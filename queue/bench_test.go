package queue_test

import (
	"testing"

	"github.com/katalvlaran/warehouse/queue"
)

// BenchmarkQueue_EnqueueDequeue measures a steady-state cycle on a warm arena.
func BenchmarkQueue_EnqueueDequeue(b *testing.B) {
	q, _ := queue.New[int](queue.WithCapacity(1024))
	for i := 0; i < 1024; i++ {
		q.Enqueue(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		_, _ = q.Dequeue()
	}
}

// BenchmarkQueue_Fill measures filling and draining N items.
func BenchmarkQueue_Fill(b *testing.B) {
	const N = 10000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q, _ := queue.New[int]()
		for j := 0; j < N; j++ {
			q.Enqueue(j)
		}
		for !q.IsEmpty() {
			_, _ = q.Dequeue()
		}
	}
}
