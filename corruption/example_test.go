package corruption_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/corruption"
)

// ExampleFirstBlocking walls off the exit of a 3×3 memory.
func ExampleFirstBlocking() {
	falling, _ := corruption.ParseBytes(strings.NewReader("1,0\n1,1\n2,1\n1,2\n"))

	g, _ := corruption.Layout(3, falling, 2)
	res, ok := corruption.ShortestExit(g, corruption.Options{})
	fmt.Println(g.Render(corruption.Cell.Rune))
	fmt.Println(ok, res.Cost)

	b, idx, ok, _ := corruption.FirstBlocking(3, falling, corruption.Options{})
	fmt.Println(b, idx, ok)
	// Output:
	// .#.
	// .#.
	// ...
	// true 4
	// 1,2 3 true
}
