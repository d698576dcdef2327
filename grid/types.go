package grid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrTooLarge indicates width*height overflows int.
	ErrTooLarge = errors.New("grid: width*height overflows int")
	// ErrOutOfBounds indicates a point outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: point out of bounds")
)

// Grid is a dense row-major 2D container. The zero value is not usable;
// build one with New, FromText or FromRaw.
type Grid[T any] struct {
	cells  []T
	width  int
	height int
}
