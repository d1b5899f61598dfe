// Package heightmap treats a 2D elevation surface as an implicit graph,
// enabling step-constrained traversals between cells.
//
// What:
//
//   - Grid wraps a rectangular, immutable surface of elevation symbols
//     'a'..'z' plus the positional markers 'S' (start) and 'E' (end).
//   - Answers point (Get), membership (InBounds) and scan (Find, FindAll) queries.
//   - Enumerates up to four orthogonal neighbors gated by a caller-supplied EdgeFunc.
//   - Parses the plain-text surface format (one row per line).
//
// Why:
//
//   - Hill-climbing puzzles: fewest steps under an "ascend at most one" rule.
//   - Reverse queries: nearest lowest cell from the summit under "descend at most one".
//
// Effective elevation:
//
//	The markers keep their raw symbol for Get/Find/FindAll, but edge tests
//	see them substituted: 'S' counts as 'a' and 'E' counts as 'z'.
//
// Complexity:
//
//   - Get, InBounds, Index, Coordinate: O(1).
//   - Find, FindAll:                    O(W×H).
//   - Neighbors:                        O(1) (at most four candidates).
//   - New, Parse:                       O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidInput: umbrella for every construction failure.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidSymbol: a cell holds something other than a..z, S or E.
package heightmap
