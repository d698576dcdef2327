package grid

import (
	"fmt"
	"iter"
	"math"
	"strings"
	"unicode/utf8"
)

// New builds a width×height grid by calling f(x, y) for every coordinate in
// row-major order (y outer, x inner).
// Returns ErrEmptyGrid if width or height is not positive and ErrTooLarge if
// width*height overflows int.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, f func(x, y int) T) (*Grid[T], error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	cells := make([]T, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells = append(cells, f(x, y))
		}
	}

	return &Grid[T]{cells: cells, width: width, height: height}, nil
}

// FromText builds a grid from newline-separated rows, mapping every rune
// through f. Height is the number of rows and Width the rune count of the
// first row. A trailing "\r" on a row and a single trailing newline on the
// text are ignored.
//
// Ragged input is rejected, never padded: a row whose length differs from the
// first yields ErrNonRectangular wrapped with the row number.
// Empty text or an empty first row yields ErrEmptyGrid.
func FromText[T any](text string, f func(r rune) T) (*Grid[T], error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	width := utf8.RuneCountInString(strings.TrimSuffix(lines[0], "\r"))
	height := len(lines)
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	cells := make([]T, 0, width*height)
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, width)
		}
		for _, r := range line {
			cells = append(cells, f(r))
		}
	}

	return &Grid[T]{cells: cells, width: width, height: height}, nil
}

// FromRaw wraps an existing row-major slice. The grid takes ownership of
// cells; the caller must not modify the slice afterwards.
// Returns ErrEmptyGrid for an empty slice or non-positive width and
// ErrNonRectangular when len(cells) is not a multiple of width.
func FromRaw[T any](cells []T, width int) (*Grid[T], error) {
	if len(cells) == 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells)%width != 0 {
		return nil, fmt.Errorf("%w: %d cells do not divide into rows of %d", ErrNonRectangular, len(cells), width)
	}

	return &Grid[T]{cells: cells, width: width, height: len(cells) / width}, nil
}

// checkSize validates dimensions before allocation.
func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrEmptyGrid
	}
	if height > math.MaxInt/width {
		return fmt.Errorf("%w: %d×%d", ErrTooLarge, width, height)
	}

	return nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Size returns (Width, Height) as a Point.
func (g *Grid[T]) Size() Point { return Point{X: g.width, Y: g.height} }

// Len returns Width*Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether p lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index maps p to its row-major index: p.X + p.Y*Width.
// The result is meaningless for points outside the grid.
func (g *Grid[T]) Index(p Point) int {
	return p.X + p.Y*g.width
}

// Point converts a row-major index back to a coordinate. Inverse of Index.
func (g *Grid[T]) Point(i int) Point {
	return Point{X: i % g.width, Y: i / g.width}
}

// Get returns the cell at p. ok is false when p is outside the grid,
// including x == Width or y == Height.
func (g *Grid[T]) Get(p Point) (v T, ok bool) {
	if !g.InBounds(p) {
		return v, false
	}

	return g.cells[g.Index(p)], true
}

// At returns the cell at linear index i. It panics if i is out of range.
func (g *Grid[T]) At(i int) T {
	return g.cells[i]
}

// Put overwrites the cell at p. It panics if p is out of bounds.
func (g *Grid[T]) Put(p Point, v T) {
	g.mustContain(p)
	g.cells[g.Index(p)] = v
}

// Swap exchanges the cells at a and b. It panics if either is out of bounds.
func (g *Grid[T]) Swap(a, b Point) {
	g.mustContain(a)
	g.mustContain(b)
	i, j := g.Index(a), g.Index(b)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

func (g *Grid[T]) mustContain(p Point) {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v not in %d×%d", ErrOutOfBounds, p, g.width, g.height))
	}
}

// Find yields (index, cell) for every cell satisfying pred, in row-major
// order. Each call returns a fresh sequence; nothing is evaluated until the
// sequence is ranged over.
func (g *Grid[T]) Find(pred func(T) bool) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range g.cells {
			if pred(v) && !yield(i, v) {
				return
			}
		}
	}
}

// FindOne returns the coordinate of the first cell (row-major) satisfying
// pred, or false if none does.
func (g *Grid[T]) FindOne(pred func(T) bool) (Point, bool) {
	for i := range g.Find(pred) {
		return g.Point(i), true
	}

	return Point{}, false
}

// All yields every (point, cell) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Point(i), v) {
				return
			}
		}
	}
}

// Clone returns a grid with its own copy of the cell slice. Cell values are
// copied by assignment.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{cells: cells, width: g.width, height: g.height}
}

// Render draws the grid one row per line using f to pick each rune.
// Rows are joined with "\n" and there is no trailing newline.
func (g *Grid[T]) Render(f func(T) rune) string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.height)
	for i, v := range g.cells {
		if i > 0 && i%g.width == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(f(v))
	}

	return sb.String()
}
