// Package dijkstra defines core types and configuration options
// for shortest-path searches over a grid.Grid.
//
// A search walks the implicit 4-connected graph of grid cells. Which cells
// may be entered and what a single step costs are decided by caller-supplied
// functions, so the same grid can be searched under different rules.
//
// Options:
//
//	– MaxDistance:   optional cap on accumulated cost; relaxations beyond it are dropped.
//	– MaxExpansions: optional cap on settled cells; exceeding it aborts the search.
//	– OnSettle:      optional hook invoked once per settled cell.
//
// Errors (sentinel, raised via panic by option constructors):
//
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrBadMaxExpansions if MaxExpansions <= 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Infinity is the cost recorded for cells the search never reached.
// It is strictly greater than any reachable cost and is never added to.
const Infinity int64 = math.MaxInt64

// Sentinel errors for invalid configuration.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadMaxExpansions indicates that MaxExpansions was set to zero or a
	// negative value, which would forbid settling even the start cell.
	ErrBadMaxExpansions = errors.New("dijkstra: MaxExpansions must be positive")
)

// TraversableFunc reports whether the cell at p may be entered.
// It is evaluated lazily as the frontier grows, so it may encode per-call
// exceptions such as a single wall cell that is temporarily passable.
type TraversableFunc[T any] func(p grid.Point, cell T) bool

// CostFunc returns the cost of one step from a reached cell to an adjacent
// one. It must never return a negative value; the search does not check.
type CostFunc func(from, to grid.Point) int64

// UnitCost charges 1 for every step.
func UnitCost(_, _ grid.Point) int64 { return 1 }

// Step records one cell on a route: its row-major index and the accumulated
// cost on arrival.
type Step struct {
	Index int
	Cost  int64
}

// Result is a found route. Path holds one Step per cell entered, start
// excluded and finish included, in start-to-finish order; when non-empty,
// Path[len(Path)-1].Cost == Cost.
type Result struct {
	Cost int64
	Path []Step
}

// Points maps each Step of path to its coordinate in g.
func Points[T any](g *grid.Grid[T], path []Step) []grid.Point {
	pts := make([]grid.Point, len(path))
	for i, s := range path {
		pts[i] = g.Point(s.Index)
	}

	return pts
}

// Options configures a search.
//
// MaxDistance   – relaxations producing a cost above this value are dropped.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// MaxExpansions – the search gives up after settling this many cells.
//
//	Must be > 0. Default is math.MaxInt (no cap).
//
// OnSettle      – called with (index, cost) each time a cell is finalised.
type Options struct {
	MaxDistance   int64
	MaxExpansions int
	OnSettle      func(idx int, cost int64)
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithMaxDistance sets a maximum accumulated cost.
// Cells whose shortest cost would exceed this value are never reached.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithMaxExpansions bounds the number of cells the search may settle.
// A search that hits the bound before reaching its target reports not-found.
// Must pass a positive value; otherwise it panics with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithOnSettle registers a hook invoked once for every settled cell, in
// settle order (non-decreasing cost).
func WithOnSettle(fn func(idx int, cost int64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// Recorder instruments individual searches. Probe returns an option to pass
// to the search and a callback to invoke with the search outcome.
type Recorder interface {
	Probe() (opt Option, done func(found bool))
}

// DefaultOptions returns an Options struct with no caps and no hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance:   Infinity,
		MaxExpansions: math.MaxInt,
	}
}
