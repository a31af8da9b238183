package combin_test

import (
	"testing"

	"github.com/katalvlaran/rnaenum/combin"
)

// BenchmarkSubsets_20Choose5 measures raw generation over C(20,5)=15504 subsets.
func BenchmarkSubsets_20Choose5(b *testing.B) {
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range combin.Subsets(items, 5, 5, nil) {
		}
	}
}

// BenchmarkProduct_4x4x4x4 measures the odometer over 256 tuples.
func BenchmarkProduct_4x4x4x4(b *testing.B) {
	sizes := []int{4, 4, 4, 4}
	for i := 0; i < b.N; i++ {
		for range combin.Product(sizes) {
		}
	}
}
