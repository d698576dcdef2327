// Package dijkstra provides a precise, allocation-lean implementation of Dijkstra's
// shortest-path algorithm on grid.Grid values with non-negative step costs.
//
// Overview:
//
//   - ShortestPath computes the minimum-cost route between two cells, with the
//     route reconstructed from predecessor links.
//   - Distances computes the minimum cost from one cell to every other cell.
//   - Movement is 4-connected (Up, Right, Down, Left); there are no diagonal steps.
//   - Which cells may be entered and what a step costs are supplied by the caller
//     as closures, so the same grid can be probed under many rule variations.
//
// When to use:
//
//   - Maze and map puzzles where a few cells change meaning from one query to the next
//     (a wall treated as open, a corrupted cell treated as blocked).
//   - Any dense grid where building an explicit adjacency list would be wasteful.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: aborts relaxations beyond a specified cost.
//   - MaxExpansions: bounds the work done by a single search.
//   - OnSettle: a hook observing each finalised cell (used for metrics).
//
// Failure semantics:
//
//   - An unreachable finish is not an error: ShortestPath returns ok == false.
//   - A start or finish outside the grid, or a start the predicate rejects, is treated
//     the same way. Exploratory callers can probe freely without error plumbing.
//   - Negative step costs are undefined behaviour and are not detected.
//
// Determinism:
//
//   - The heap orders entries by (cost, index) and neighbours are expanded in a fixed
//     order, so repeated calls with identical inputs return identical routes even when
//     several shortest routes exist.
//
// Thread safety:
//
//   - Searches never write to the grid. All working state is allocated per call, so
//     concurrent searches over the same (unmodified) grid are safe.
//
// API reference:
//
//	func ShortestPath[T any](
//	    g *grid.Grid[T],
//	    start, finish grid.Point,
//	    traversable TraversableFunc[T],
//	    cost CostFunc,
//	    opts ...Option,
//	) (Result, bool)
//
//	func Distances[T any](
//	    g *grid.Grid[T],
//	    start grid.Point,
//	    traversable TraversableFunc[T],
//	    cost CostFunc,
//	    opts ...Option,
//	) ([]int64, bool)
package dijkstra
