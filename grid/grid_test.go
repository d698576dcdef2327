package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_RowMajor verifies that New calls f in row-major order and stores
// (x,y) at x + y*Width.
func TestNew_RowMajor(t *testing.T) {
	var calls []grid.Point
	g, err := grid.New(3, 2, func(x, y int) int {
		calls = append(calls, grid.Pt(x, y))
		return x*10 + y
	})
	require.NoError(t, err)

	want := []grid.Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	assert.Equal(t, want, calls)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, grid.Pt(3, 2), g.Size())
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 21, g.At(5)) // (2,1)
}

// TestNew_Errors verifies that New rejects empty and overflowing dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		err  error
	}{
		{"ZeroWidth", 0, 3, grid.ErrEmptyGrid},
		{"ZeroHeight", 3, 0, grid.ErrEmptyGrid},
		{"Negative", -1, 5, grid.ErrEmptyGrid},
		{"Overflow", math.MaxInt, 2, grid.ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h, func(int, int) byte { return 0 })
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
			}
		})
	}
}

func TestFromText(t *testing.T) {
	g, err := grid.FromText("#.#\n..#\n", func(r rune) rune { return r })
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height()) // trailing newline does not add a row

	v, ok := g.Get(grid.Pt(2, 1))
	require.True(t, ok)
	assert.Equal(t, '#', v)
	assert.Equal(t, "#.#\n..#", g.Render(func(r rune) rune { return r }))
}

func TestFromText_CRLF(t *testing.T) {
	g, err := grid.FromText("ab\r\ncd\r\n", func(r rune) rune { return r })
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(2, 2), g.Size())
	assert.Equal(t, 'd', g.At(3))
}

// TestFromText_Errors pins the ragged-input policy: reject, never pad.
func TestFromText_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewline", "\n", grid.ErrEmptyGrid},
		{"EmptyFirstRow", "\nabc", grid.ErrEmptyGrid},
		{"ShortRow", "abc\nab\nabc", grid.ErrNonRectangular},
		{"LongRow", "ab\nabc", grid.ErrNonRectangular},
		{"BlankMiddleRow", "ab\n\nab", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromText(tc.text, func(r rune) rune { return r })
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFromText_ReportsRow(t *testing.T) {
	_, err := grid.FromText("abc\nabc\nab", func(r rune) rune { return r })
	require.ErrorIs(t, err, grid.ErrNonRectangular)
	assert.Contains(t, err.Error(), "row 2")
}

func TestFromRaw(t *testing.T) {
	g, err := grid.FromRaw([]int{1, 2, 3, 4, 5, 6}, 2)
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(2, 3), g.Size())

	_, err = grid.FromRaw([]int{1, 2, 3}, 2)
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	_, err = grid.FromRaw([]int{}, 2)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.FromRaw([]int{1}, 0)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestGet_Bounds pins strict bounds: x == Width and y == Height are outside.
func TestGet_Bounds(t *testing.T) {
	g, err := grid.New(3, 2, func(x, y int) int { return x + y*3 })
	require.NoError(t, err)

	valid := []grid.Point{{0, 0}, {2, 1}, {1, 1}}
	for _, p := range valid {
		v, ok := g.Get(p)
		assert.True(t, ok, "Get(%v)", p)
		assert.Equal(t, g.Index(p), v)
		assert.True(t, g.InBounds(p))
	}

	invalid := []grid.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}, {3, 2}}
	for _, p := range invalid {
		_, ok := g.Get(p)
		assert.False(t, ok, "Get(%v) should be out of bounds", p)
		assert.False(t, g.InBounds(p))
	}
}

// TestIndexPoint_RoundTrip checks Point(Index(p)) == p for every cell.
func TestIndexPoint_RoundTrip(t *testing.T) {
	for _, size := range []grid.Point{{1, 1}, {1, 7}, {7, 1}, {5, 3}, {13, 11}} {
		g, err := grid.New(size.X, size.Y, func(int, int) struct{} { return struct{}{} })
		require.NoError(t, err)
		for p := range g.All() {
			assert.Equal(t, p, g.Point(g.Index(p)))
		}
		for i := 0; i < g.Len(); i++ {
			assert.Equal(t, i, g.Index(g.Point(i)))
		}
	}
}

func TestPutSwap(t *testing.T) {
	g, err := grid.FromText("ab\ncd", func(r rune) rune { return r })
	require.NoError(t, err)

	g.Put(grid.Pt(1, 0), 'x')
	g.Swap(grid.Pt(0, 0), grid.Pt(1, 1))
	assert.Equal(t, "dx\nca", g.Render(func(r rune) rune { return r }))
}

func TestPutSwap_PanicsOutOfBounds(t *testing.T) {
	g, err := grid.New(2, 2, func(int, int) int { return 0 })
	require.NoError(t, err)

	assert.PanicsWithError(t, "grid: point out of bounds: 2,0 not in 2×2", func() {
		g.Put(grid.Pt(2, 0), 1)
	})
	assert.Panics(t, func() { g.Swap(grid.Pt(0, 0), grid.Pt(0, -1)) })
}

//----------------------------------------------------------------------------//
// Search and iteration
//----------------------------------------------------------------------------//

func TestFind(t *testing.T) {
	g, err := grid.FromText(".#.\n#.#", func(r rune) rune { return r })
	require.NoError(t, err)

	isWall := func(r rune) bool { return r == '#' }
	var got []int
	for i, v := range g.Find(isWall) {
		assert.Equal(t, '#', v)
		got = append(got, i)
	}
	assert.Equal(t, []int{1, 3, 5}, got)

	// A fresh sequence restarts from the beginning; early break is honoured.
	var first []int
	for i := range g.Find(isWall) {
		first = append(first, i)
		break
	}
	assert.Equal(t, []int{1}, first)
}

func TestFindOne(t *testing.T) {
	g, err := grid.FromText("...\n.SE", func(r rune) rune { return r })
	require.NoError(t, err)

	p, ok := g.FindOne(func(r rune) bool { return r == 'E' })
	require.True(t, ok)
	assert.Equal(t, grid.Pt(2, 1), p)

	_, ok = g.FindOne(func(r rune) bool { return r == '#' })
	assert.False(t, ok)
}

func TestAll_RowMajor(t *testing.T) {
	g, err := grid.New(2, 2, func(x, y int) string { return grid.Pt(x, y).String() })
	require.NoError(t, err)

	var got []string
	for p, v := range g.All() {
		assert.Equal(t, p.String(), v)
		got = append(got, v)
	}
	assert.Equal(t, []string{"0,0", "1,0", "0,1", "1,1"}, got)
}

func TestClone_Independent(t *testing.T) {
	g, err := grid.New(2, 1, func(x, _ int) int { return x })
	require.NoError(t, err)

	c := g.Clone()
	c.Put(grid.Pt(0, 0), 9)
	v, _ := g.Get(grid.Pt(0, 0))
	assert.Equal(t, 0, v)
	v, _ = c.Get(grid.Pt(0, 0))
	assert.Equal(t, 9, v)
}
