// Package grid provides a dense, row-major 2D container over an arbitrary
// cell type, together with the integer Point used to address it.
//
// What:
//
//   - Point is a plain (X, Y) value used both as a coordinate and as a
//     displacement vector (Add, Sub, Mul).
//   - Grid[T] stores Width×Height cells in one contiguous slice. The cell at
//     (x, y) lives at linear index x + y*Width.
//   - Construction from a mapping function (New), from text (FromText) or
//     from an existing row-major slice (FromRaw).
//   - Bounds-checked reads (Get), in-place writes (Put, Swap), predicate
//     search (Find, FindOne) and coordinate iteration (All).
//
// Why:
//
//   - Maze and map puzzles: parse once, then run many searches over the same
//     cells (see package dijkstra).
//   - Keeping cells generic lets predicates read strongly typed values
//     without type assertions.
//
// Complexity:
//
//   - New, FromText, FromRaw, Clone: O(W×H) time and memory.
//   - Get, Put, Swap, InBounds, Index, Point: O(1).
//   - Find, FindOne, All: O(W×H) per full pass, lazy.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: text rows (or a raw slice) that do not form a rectangle.
//   - ErrTooLarge: Width×Height does not fit in an int.
//   - ErrOutOfBounds: wrapped in the panic raised by Put and Swap.
//
// Thread safety:
//
//   - A Grid is not synchronised. Concurrent readers are safe as long as no
//     goroutine writes; searches never write to the grid they are given.
package grid
