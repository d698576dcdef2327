// Package racetrack analyses single-lane race tracks drawn as text, where a
// racer may once break the rules and pass through walls.
//
// Two kinds of shortcut are counted:
//
//	– WallShortcuts removes one wall at a time and re-runs the search,
//	  counting walls whose removal saves enough steps.
//	– Cheats pairs cells of the honest route that lie within a Manhattan
//	  radius of each other and counts pairs whose jump saves enough steps.
//
// A Track is immutable after Parse and safe for concurrent use.
package racetrack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// Sentinel errors.
var (
	ErrNoStart = errors.New("racetrack: no start marker 'S'")
	ErrNoEnd   = errors.New("racetrack: no end marker 'E'")
	ErrNoRoute = errors.New("racetrack: end is unreachable from start")
)

// Cell is one square of the track.
type Cell uint8

// Cell kinds. Everything but Wall can be driven on.
const (
	Open Cell = iota
	Wall
	Start
	End
)

// Rune draws c the way Parse reads it.
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '.'
	}
}

func cellOf(r rune) Cell {
	switch r {
	case '#':
		return Wall
	case 'S':
		return Start
	case 'E':
		return End
	default:
		return Open
	}
}

// Options carries optional collaborators. The zero value is ready to use.
//
// Workers bounds concurrent wall probes; values <= 0 mean GOMAXPROCS.
type Options struct {
	Workers  int
	Logger   *slog.Logger
	Recorder dijkstra.Recorder
}

// Track is a parsed race track.
type Track struct {
	g          *grid.Grid[Cell]
	start, end grid.Point
	opts       Options
	log        *slog.Logger
}

// Parse reads a track: '#' is a wall, 'S' the start, 'E' the end and any
// other rune open track.
func Parse(text string, opts Options) (*Track, error) {
	g, err := grid.FromText(text, cellOf)
	if err != nil {
		return nil, fmt.Errorf("racetrack: %w", err)
	}
	start, ok := g.FindOne(func(c Cell) bool { return c == Start })
	if !ok {
		return nil, ErrNoStart
	}
	end, ok := g.FindOne(func(c Cell) bool { return c == End })
	if !ok {
		return nil, ErrNoEnd
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	return &Track{g: g, start: start, end: end, opts: opts, log: logging.OrNop(opts.Logger)}, nil
}

// Grid returns the underlying cells. Callers must not modify it.
func (t *Track) Grid() *grid.Grid[Cell] { return t.g }

// Start returns the start position.
func (t *Track) Start() grid.Point { return t.start }

// End returns the end position.
func (t *Track) End() grid.Point { return t.end }

func notWall(_ grid.Point, c Cell) bool { return c != Wall }

func (t *Track) search(traversable dijkstra.TraversableFunc[Cell]) (dijkstra.Result, bool) {
	var extra []dijkstra.Option
	done := func(bool) {}
	if t.opts.Recorder != nil {
		var opt dijkstra.Option
		opt, done = t.opts.Recorder.Probe()
		extra = append(extra, opt)
	}
	res, ok := dijkstra.ShortestPath(t.g, t.start, t.end, traversable, dijkstra.UnitCost, extra...)
	done(ok)

	return res, ok
}

// Reference returns the honest route from start to end.
func (t *Track) Reference() (dijkstra.Result, bool) {
	return t.search(notWall)
}

// WallShortcuts counts walls whose removal alone shortens the race by at
// least minSaving steps. Probes run concurrently, at most Options.Workers at
// a time, and stop early when ctx is cancelled.
func (t *Track) WallShortcuts(ctx context.Context, minSaving int64) (int, error) {
	ref, ok := t.Reference()
	if !ok {
		return 0, ErrNoRoute
	}

	var hits, probes atomic.Int64
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(t.opts.Workers)

	for idx := range t.g.Find(func(c Cell) bool { return c == Wall }) {
		if !t.bridges(idx) {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, ok := t.search(func(p grid.Point, c Cell) bool {
				return c != Wall || t.g.Index(p) == idx
			})
			probes.Add(1)
			if ok && ref.Cost-res.Cost >= minSaving {
				hits.Add(1)
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return int(hits.Load()), err
	}
	if err := ctx.Err(); err != nil {
		return int(hits.Load()), err
	}
	t.log.Debug("wall probes finished", "probes", probes.Load(), "hits", hits.Load(), "min_saving", minSaving)

	return int(hits.Load()), nil
}

// bridges reports whether the wall at idx has at least two non-wall
// neighbours; any other wall cannot lie on a route.
func (t *Track) bridges(idx int) bool {
	p := t.g.Point(idx)
	n := 0
	for _, d := range grid.Cardinal {
		if c, ok := t.g.Get(p.Add(d)); ok && c != Wall {
			n++
		}
	}

	return n >= 2
}

// Cheats counts pairs of cells on the honest route, start included, that
// are at most radius apart in Manhattan distance and where jumping from the
// earlier to the later cell saves at least minSaving steps. The jump itself
// costs its Manhattan distance. Each pair is counted once.
func (t *Track) Cheats(radius int, minSaving int64) (int, error) {
	ref, ok := t.Reference()
	if !ok {
		return 0, ErrNoRoute
	}

	route := make([]dijkstra.Step, 0, len(ref.Path)+1)
	route = append(route, dijkstra.Step{Index: t.g.Index(t.start), Cost: 0})
	route = append(route, ref.Path...)
	pts := dijkstra.Points(t.g, route)

	n := 0
	for i := range route {
		for j := i + 1; j < len(route); j++ {
			d := grid.Manhattan(pts[i], pts[j])
			if d > radius {
				continue
			}
			if route[j].Cost-route[i].Cost-int64(d) >= minSaving {
				n++
			}
		}
	}
	t.log.Debug("cheats counted", "route", len(route), "radius", radius, "min_saving", minSaving, "count", n)

	return n, nil
}
