package bfs

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// PathLength counts the parent hops from found back to the search root,
// stopping at the first cell with no entry in parent. Because BFS inserts
// each cell once, the walk always terminates, and in an unweighted search
// the count equals the shortest distance. It is 0 when found is the root.
func PathLength(parent map[heightmap.Coord]heightmap.Coord, found heightmap.Coord) int {
	steps := 0
	for cur := found; ; steps++ {
		prev, ok := parent[cur]
		if !ok {
			return steps
		}
		cur = prev
	}
}

// Walk reconstructs the path root → … → found from the parent links.
// The returned slice always holds at least found itself.
func Walk(parent map[heightmap.Coord]heightmap.Coord, found heightmap.Coord) []heightmap.Coord {
	// build reversed path
	path := []heightmap.Coord{found}
	for cur := found; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get root → found
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathLength returns the number of steps from Root to Found,
// or -1 when no goal was reached.
func (r *Result) PathLength() int {
	if !r.Reached {
		return -1
	}
	return PathLength(r.Parent, r.Found)
}

// Path returns the cells from Root to Found, both included,
// or nil when no goal was reached.
func (r *Result) Path() []heightmap.Coord {
	if !r.Reached {
		return nil
	}
	return Walk(r.Parent, r.Found)
}

// PathTo reconstructs the path from Root to any discovered cell.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest heightmap.Coord) ([]heightmap.Coord, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	return Walk(r.Parent, dest), nil
}
