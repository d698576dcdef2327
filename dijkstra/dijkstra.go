// Package dijkstra implements Dijkstra's shortest-path algorithm on grids.
//
// The graph is implicit: every in-bounds cell is a vertex and each cell is
// joined to its four cardinal neighbours. A neighbour is only entered when the
// caller's TraversableFunc accepts it, and each step is priced by the
// caller's CostFunc.
//
// Complexity:
//
//   - Time:  O(N log N) where N = W×H (each cell has at most 4 edges).
//   - Space: O(N) for the cost and predecessor tables plus the heap.
//
// Notes on implementation choices:
//
//   - Cost and predecessor tables are flat slices indexed by row-major cell index.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap entries are ordered by (cost, index), so equal-cost ties always resolve the same way.
//   - A point-to-point search stops as soon as the finish cell is popped.
package dijkstra

import (
	"container/heap"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// ShortestPath computes the minimum-cost route from start to finish over g.
//
// Returns ok == false ("not found") when:
//
//   - g is nil, or start or finish lies outside g;
//   - start itself is not traversable;
//   - no traversable route exists;
//   - MaxDistance or MaxExpansions stops the search first.
//
// A nil traversable admits every cell and a nil cost charges UnitCost.
// When start == finish (and start is traversable) the result has Cost 0 and
// an empty Path.
//
// The grid is only read. All working state belongs to this call, so any
// number of searches may run concurrently over the same grid.
func ShortestPath[T any](
	g *grid.Grid[T],
	start, finish grid.Point,
	traversable TraversableFunc[T],
	cost CostFunc,
	opts ...Option,
) (Result, bool) {
	if g == nil || !g.InBounds(finish) {
		return Result{}, false
	}
	r, ok := newRunner(g, start, traversable, cost, opts)
	if !ok {
		return Result{}, false
	}

	target := g.Index(finish)
	if !r.process(target) {
		return Result{}, false
	}

	return Result{Cost: r.dist[target], Path: r.unwind(target)}, true
}

// Distances computes the minimum cost from start to every cell of g.
// Cells that cannot be reached (or lie beyond MaxDistance) hold Infinity.
// ok is false under the same start conditions as ShortestPath, or when
// MaxExpansions cuts the exploration short.
func Distances[T any](
	g *grid.Grid[T],
	start grid.Point,
	traversable TraversableFunc[T],
	cost CostFunc,
	opts ...Option,
) ([]int64, bool) {
	r, ok := newRunner(g, start, traversable, cost, opts)
	if !ok {
		return nil, false
	}
	if !r.process(noTarget) {
		return nil, false
	}

	return r.dist, true
}

// noTarget makes process explore every reachable cell.
const noTarget = -1

// runner holds the mutable state for a single search.
type runner[T any] struct {
	g           *grid.Grid[T]      // The input grid; read-only within the search.
	options     Options            // Configuration (caps, hook).
	traversable TraversableFunc[T] // Entry predicate.
	cost        CostFunc           // Step cost.
	dist        []int64            // Index → best-known cost from start.
	prev        []int              // Index → predecessor index, -1 for none.
	pq          stepPQ             // Min-heap of Steps for lazy priority queue.
}

// newRunner validates start, applies options and seeds the heap with start at
// cost 0.
func newRunner[T any](
	g *grid.Grid[T],
	start grid.Point,
	traversable TraversableFunc[T],
	cost CostFunc,
	opts []Option,
) (*runner[T], bool) {
	if g == nil || !g.InBounds(start) {
		return nil, false
	}
	if traversable == nil {
		traversable = func(grid.Point, T) bool { return true }
	}
	if cost == nil {
		cost = UnitCost
	}
	s := g.Index(start)
	if !traversable(start, g.At(s)) {
		return nil, false
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Len()
	r := &runner[T]{
		g:           g,
		options:     cfg,
		traversable: traversable,
		cost:        cost,
		dist:        make([]int64, n),
		prev:        make([]int, n),
		pq:          make(stepPQ, 0, 64),
	}
	for i := range r.dist {
		r.dist[i] = Infinity
		r.prev[i] = -1
	}
	r.dist[s] = 0
	heap.Push(&r.pq, Step{Index: s, Cost: 0})

	return r, true
}

// process is the core loop. It repeatedly pops the cheapest entry, skips it
// if stale, settles it and relaxes its neighbours.
//
// Returns true when target was settled, or, for noTarget, when the frontier
// was exhausted. Returns false when the heap empties before reaching target
// or the expansion cap is hit.
func (r *runner[T]) process(target int) bool {
	settled := 0
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(Step)

		// A cheaper entry for this cell was already settled.
		if item.Cost > r.dist[item.Index] {
			continue
		}

		settled++
		if settled > r.options.MaxExpansions {
			return false
		}
		if r.options.OnSettle != nil {
			r.options.OnSettle(item.Index, item.Cost)
		}
		if item.Index == target {
			return true
		}

		r.relax(item)
	}

	return target == noTarget
}

// relax tries to improve the cost of every cardinal neighbour of item.
// Neighbours that are out of bounds, already at least as cheap, or rejected
// by the traversable predicate are skipped, in that order.
func (r *runner[T]) relax(item Step) {
	u := r.g.Point(item.Index)
	for _, d := range grid.Cardinal {
		v := u.Add(d)
		if !r.g.InBounds(v) {
			continue
		}
		vi := r.g.Index(v)

		// Costs are non-negative, so a cell already at or below the current
		// cost cannot improve.
		if r.dist[vi] <= item.Cost {
			continue
		}
		if !r.traversable(v, r.g.At(vi)) {
			continue
		}

		nd := item.Cost + r.cost(u, v)
		if nd > r.options.MaxDistance || nd >= r.dist[vi] {
			continue
		}

		r.dist[vi] = nd
		r.prev[vi] = item.Index
		heap.Push(&r.pq, Step{Index: vi, Cost: nd})
	}
}

// unwind follows predecessor links back from target and returns the steps in
// start-to-finish order. The start cell itself is not included.
func (r *runner[T]) unwind(target int) []Step {
	var path []Step
	for at := target; r.prev[at] >= 0; at = r.prev[at] {
		path = append(path, Step{Index: at, Cost: r.dist[at]})
	}
	slices.Reverse(path)

	return path
}

// stepPQ is a min-heap of Steps ordered by Cost, then Index.
type stepPQ []Step

// Len returns the number of items in the heap.
func (pq stepPQ) Len() int { return len(pq) }

// Less orders by cost; equal costs fall back to the lower index.
func (pq stepPQ) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}

	return pq[i].Index < pq[j].Index
}

// Swap swaps two elements in the heap.
func (pq stepPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a Step. Called by heap.Push.
func (pq *stepPQ) Push(x any) { *pq = append(*pq, x.(Step)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *stepPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
