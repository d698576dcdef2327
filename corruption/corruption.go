// Package corruption models a square memory space into which bytes fall one
// at a time, each corrupting the cell it lands on. It answers two questions
// with the grid search engine: how short is the walk from the top-left to the
// bottom-right corner after some bytes have fallen, and which byte is the
// first to cut that walk off entirely.
package corruption

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// ErrBadLine is wrapped with the line number for malformed "x,y" input.
var ErrBadLine = errors.New("corruption: malformed byte position")

// Cell is the state of one memory cell.
type Cell uint8

const (
	// Free cells can be walked through.
	Free Cell = iota
	// Corrupted cells block movement.
	Corrupted
)

// Rune draws c as '.' or '#'.
func (c Cell) Rune() rune {
	if c == Corrupted {
		return '#'
	}

	return '.'
}

// Options carries optional collaborators. The zero value is ready to use.
type Options struct {
	Logger   *slog.Logger
	Recorder dijkstra.Recorder
}

// ParseBytes reads one "x,y" pair per line. Blank lines are skipped.
func ParseBytes(r io.Reader) ([]grid.Point, error) {
	var out []grid.Point
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, n, line)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, n, line)
		}
		out = append(out, grid.Pt(x, y))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corruption: reading input: %w", err)
	}

	return out, nil
}

// Layout builds a size×size memory in which the first fallen bytes are
// corrupted. fallen is clamped to len(bytes); bytes outside the memory are
// ignored.
func Layout(size int, bytes []grid.Point, fallen int) (*grid.Grid[Cell], error) {
	g, err := grid.New(size, size, func(int, int) Cell { return Free })
	if err != nil {
		return nil, err
	}
	fallen = min(max(fallen, 0), len(bytes))
	for _, b := range bytes[:fallen] {
		if g.InBounds(b) {
			g.Put(b, Corrupted)
		}
	}

	return g, nil
}

// isFree is the traversable predicate for every corruption search.
func isFree(_ grid.Point, c Cell) bool { return c == Free }

// ShortestExit returns the number of steps from (0,0) to the opposite corner,
// or false when corrupted cells separate them.
func ShortestExit(g *grid.Grid[Cell], opts Options) (dijkstra.Result, bool) {
	var extra []dijkstra.Option
	done := func(bool) {}
	if opts.Recorder != nil {
		var opt dijkstra.Option
		opt, done = opts.Recorder.Probe()
		extra = append(extra, opt)
	}

	exit := g.Size().Sub(grid.Pt(1, 1))
	res, ok := dijkstra.ShortestPath(g, grid.Pt(0, 0), exit, isFree, dijkstra.UnitCost, extra...)
	done(ok)

	return res, ok
}

// FirstBlocking finds the first byte whose fall leaves no route to the exit.
// It returns the byte, its position in bytes, and false when the exit is still
// reachable after every byte has fallen. An error is returned only for an
// invalid size.
//
// Blocking is monotone in the number of fallen bytes, so the answer is found
// by binary search over that count.
func FirstBlocking(size int, bytes []grid.Point, opts Options) (grid.Point, int, bool, error) {
	if _, err := Layout(size, nil, 0); err != nil {
		return grid.Point{}, -1, false, err
	}
	log := logging.OrNop(opts.Logger)

	blocked := func(fallen int) bool {
		g, _ := Layout(size, bytes, fallen)
		_, ok := ShortestExit(g, opts)
		log.Debug("probed memory", "fallen", fallen, "reachable", ok)

		return !ok
	}

	k := sort.Search(len(bytes)+1, blocked)
	if k == 0 || k > len(bytes) {
		return grid.Point{}, -1, false, nil
	}
	log.Info("exit cut off", "byte", bytes[k-1].String(), "index", k-1)

	return bytes[k-1], k - 1, true, nil
}
