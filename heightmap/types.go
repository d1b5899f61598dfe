// Package heightmap defines core types, rule signatures, and sentinel errors
// for the heightmap package of github.com/katalvlaran/hillclimb.
package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heightmap construction.
var (
	// ErrInvalidInput is wrapped by every construction error.
	ErrInvalidInput = errors.New("heightmap: invalid input")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidInput)
	// ErrInvalidSymbol indicates a cell outside a..z, S, E.
	ErrInvalidSymbol = fmt.Errorf("%w: unknown elevation symbol", ErrInvalidInput)
)

// Marker symbols and the elevation range they stand for.
const (
	Start  byte = 'S'
	End    byte = 'E'
	Lowest byte = 'a'
	Peak   byte = 'z'
)

// Coord is a cell position; X grows east, Y grows south.
// It is a plain value: comparable and usable as a map key.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// EdgeFunc decides whether a step from an elevation cur to an elevation next
// is admissible. Both arguments are effective elevations ('a'..'z').
type EdgeFunc func(cur, next byte) bool

// GoalFunc decides whether a raw stored symbol terminates a search.
type GoalFunc func(sym byte) bool

// Grid is an immutable elevation surface. Cells are stored row-major;
// cells[y*width+x] holds the raw symbol at (x,y).
// neighborOffsets is precomputed in north, south, west, east order.
type Grid struct {
	width, height   int
	cells           []byte
	neighborOffsets [4]Coord
}
