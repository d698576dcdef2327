package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkShortestPath_Open measures a corner-to-corner search on an open
// 500×500 grid with unit cost.
// Complexity: O(N log N), N = W×H
func BenchmarkShortestPath_Open(b *testing.B) {
	const n = 500
	g, err := grid.New(n, n, func(int, int) bool { return true })
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, grid.Pt(0, 0), grid.Pt(n-1, n-1), open, dijkstra.UnitCost)
	}
}

// BenchmarkShortestPath_Random measures searches on a 200×200 grid with 30% walls.
func BenchmarkShortestPath_Random(b *testing.B) {
	g := randomGrid(b, 200, 200, 0.3, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, grid.Pt(0, 0), grid.Pt(199, 199), open, dijkstra.UnitCost)
	}
}

// BenchmarkDistances measures a full single-source exploration of a 500×500 grid.
func BenchmarkDistances(b *testing.B) {
	const n = 500
	g, err := grid.New(n, n, func(int, int) bool { return true })
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Distances(g, grid.Pt(n/2, n/2), open, nil)
	}
}
