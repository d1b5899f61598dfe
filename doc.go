// Package hillclimb finds fewest-step routes across an elevation surface
// where each move may climb at most one level.
//
// What is hillclimb?
//
//	A small, dependency-light toolkit that brings together:
//		• heightmap — immutable elevation grid, marker scans, rule-gated neighbors
//		• bfs       — breadth-first search with goal/edge predicates and backpointers
//		• climb     — the summit (S→E) and trailhead (E→nearest a) queries
//		• config    — HCL query files
//		• render    — PNG rendering of surfaces and routes
//		• ctxlog    — slog logger carried through context.Context
//
// Quick ASCII example:
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
// takes 31 steps from S to E, and 29 from the best 'a' cell.
//
//	go run ./cmd/hillclimb
package hillclimb
