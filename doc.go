// Package gridpath is a small toolkit for shortest-path puzzles on 2D grids:
// a generic row-major grid, a Dijkstra search over its cells, and two
// ready-made analyses built on top of them.
//
// 🚀 What is gridpath?
//
//	A dependency-light library where the graph is implicit:
//		• Grid[T]: parse text into cells, index them, find and render them
//		• Dijkstra: caller decides which cells may be entered and what a step costs
//		• Corruption: shortest exit from a memory space, first byte that blocks it
//		• Racetrack: wall shortcuts and bounded-radius cheats on a single-lane track
//
// ✨ Why gridpath?
//
//   - No adjacency lists – neighbours are computed from the grid on the fly
//   - Per-search rules – a closure can open one wall for one search only
//   - Deterministic – equal-cost ties always settle in the same order
//   - Safe to share – searches only read the grid, so they run in parallel
//
// Packages:
//
//	grid/       — Point arithmetic and the generic Grid[T] container
//	dijkstra/   — ShortestPath, Distances and search options
//	corruption/ — falling-byte memory mazes
//	racetrack/  — shortcut counting on race tracks
//	cmd/gridpath — CLI wiring config, logging, metrics and rendering
//
// Quick ASCII example:
//
//	S.#
//	..#
//	#.E
//
// has a shortest route of cost 4: down, right, down, right.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
