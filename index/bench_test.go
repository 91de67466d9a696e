package index_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/warehouse/index"
	"github.com/katalvlaran/warehouse/product"
)

// BenchmarkTree_SearchRandom measures lookups in a tree built from shuffled keys.
func BenchmarkTree_SearchRandom(b *testing.B) {
	const N = 10000
	ids := make([]string, N)
	for i := range ids {
		ids[i] = fmt.Sprintf("SKU-%06d", i)
	}
	rand.New(rand.NewSource(1)).Shuffle(N, func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	tr := index.New()
	for _, id := range ids {
		_, _ = tr.Insert(mustProduct(b, id, id))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Search(ids[i%N])
	}
}

// BenchmarkTree_InsertSorted shows the linear-height worst case.
func BenchmarkTree_InsertSorted(b *testing.B) {
	const N = 1000
	ps := make([]*product.Product, N)
	for i := range ps {
		ps[i] = mustProduct(b, fmt.Sprintf("SKU-%06d", i), "seq")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := index.New()
		for _, p := range ps {
			_, _ = tr.Insert(p)
		}
	}
}
