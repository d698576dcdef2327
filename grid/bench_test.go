package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkNew measures building a 1000×1000 grid from a mapping function.
// Complexity: O(W×H)
func BenchmarkNew(b *testing.B) {
	const n = 1000
	for i := 0; i < b.N; i++ {
		_, _ = grid.New(n, n, func(x, y int) bool { return (x^y)&7 == 0 })
	}
}

// BenchmarkFindOne scans a 1000×1000 grid whose only match is the last cell.
func BenchmarkFindOne(b *testing.B) {
	const n = 1000
	g, err := grid.New(n, n, func(x, y int) bool { return x == n-1 && y == n-1 })
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.FindOne(func(v bool) bool { return v })
	}
}
