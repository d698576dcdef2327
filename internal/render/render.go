// Package render draws grids for the terminal, highlighting a route.
package render

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/gridpath/grid"
)

// PathColor is the foreground used for route cells.
const PathColor = "#f472b6"

// Path draws g one row per line, replacing every cell listed in route with
// mark in PathColor. Other cells are drawn with cell. With the termenv.Ascii
// profile the output carries no escape sequences.
func Path[T any](g *grid.Grid[T], cell func(T) rune, route []grid.Point, mark rune, p termenv.Profile) string {
	onRoute := make(map[int]bool, len(route))
	for _, pt := range route {
		if g.InBounds(pt) {
			onRoute[g.Index(pt)] = true
		}
	}
	styled := p.String(string(mark)).Foreground(p.Color(PathColor)).Bold().String()

	var sb strings.Builder
	for i := 0; i < g.Len(); i++ {
		if i > 0 && i%g.Width() == 0 {
			sb.WriteByte('\n')
		}
		if onRoute[i] {
			sb.WriteString(styled)
			continue
		}
		sb.WriteRune(cell(g.At(i)))
	}

	return sb.String()
}
