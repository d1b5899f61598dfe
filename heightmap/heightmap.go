// Package heightmap provides utilities to treat a 2D surface of elevation
// symbols as a graph. It supports:
//
//   - Four-connectivity in a fixed north, south, west, east order
//   - Row-major lookups and scans for marker symbols
//   - Neighbor enumeration gated by an elevation rule
//
// Symbols 'S' and 'E' are stored verbatim; rules observe them as 'a' and 'z'.
package heightmap

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular set of rows.
// It copies the input so later changes to rows cannot leak into the Grid.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrInvalidSymbol if a cell is not one of a..z, S, E.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]byte, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			if !ValidSymbol(row[x]) {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidSymbol, row[x], x, y)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{
		width:  w,
		height: h,
		cells:  cells,
		// up, down, left, right
		neighborOffsets: [4]Coord{{0, -1}, {0, 1}, {-1, 0}, {1, 0}},
	}, nil
}

// ValidSymbol reports whether b may appear in a grid cell: a..z, S or E.
func ValidSymbol(b byte) bool {
	return (b >= Lowest && b <= Peak) || b == Start || b == End
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to a row‑major index: y*Width + x.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row‑major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// Get returns the raw symbol stored at c.
// The boolean is false when c is outside the grid; Get never fails otherwise.
// Complexity: O(1).
func (g *Grid) Get(c Coord) (byte, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	return g.cells[g.Index(c)], true
}

// Find returns the first cell holding sym, scanning rows top to bottom and
// each row left to right. The boolean is false when sym does not occur.
// Complexity: O(W×H).
func (g *Grid) Find(sym byte) (Coord, bool) {
	for i, b := range g.cells {
		if b == sym {
			return g.Coordinate(i), true
		}
	}
	return Coord{}, false
}

// FindAll returns every cell holding sym in row-major order.
// Matching is on the raw symbol: FindAll('a') does not report the 'S' cell.
// Complexity: O(W×H).
func (g *Grid) FindAll(sym byte) []Coord {
	var out []Coord
	for i, b := range g.cells {
		if b == sym {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Neighbors returns the orthogonal neighbors of c, in north, south, west,
// east order, that lie inside the grid and for which
// edge(Effective(cur), Effective(next)) holds.
// An out-of-bounds c has no neighbors.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord, edge EdgeFunc) []Coord {
	cur, ok := g.Get(c)
	if !ok {
		return nil
	}
	cur = Effective(cur)

	out := make([]Coord, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		next, ok := g.Get(n)
		if !ok {
			continue
		}
		if edge(cur, Effective(next)) {
			out = append(out, n)
		}
	}
	return out
}

// Rows returns a copy of the surface, one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		rows[y] = string(g.cells[y*g.width : (y+1)*g.width])
	}
	return rows
}

// String renders the surface in its input format, each row ending in '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		sb.Write(g.cells[y*g.width : (y+1)*g.width])
		sb.WriteByte('\n')
	}
	return sb.String()
}
