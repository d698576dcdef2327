// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleFromText parses a small map and locates its markers.
func ExampleFromText() {
	g, err := grid.FromText("#S.\n..E\n", func(r rune) rune { return r })
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	start, _ := g.FindOne(func(r rune) bool { return r == 'S' })
	end, _ := g.FindOne(func(r rune) bool { return r == 'E' })
	fmt.Printf("size=%v start=%v end=%v\n", g.Size(), start, end)
	// Output: size=3,2 start=1,0 end=2,1
}

// ExampleGrid_Render marks every cell on the diagonal.
func ExampleGrid_Render() {
	g, _ := grid.New(4, 3, func(x, y int) bool { return x == y })

	fmt.Println(g.Render(func(on bool) rune {
		if on {
			return '\\'
		}
		return '.'
	}))
	// Output:
	// \...
	// .\..
	// ..\.
}
