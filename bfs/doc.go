// Package bfs provides breadth-first search over a heightmap.Grid,
// returning the first goal cell together with the parent links needed to
// rebuild a shortest path to it.
//
// What
//
//   - Explore cells in non-decreasing step count from a root cell.
//   - Edges are implicit: a step between orthogonal neighbors exists when
//     the caller's heightmap.EdgeFunc admits the pair of effective elevations.
//   - Termination is decided by a heightmap.GoalFunc over the raw stored
//     symbol of each dequeued cell, so goals such as "symbol is E" or
//     "symbol is S or a" are both expressible.
//   - Returns a Result containing:
//   - Found:  first dequeued goal cell
//   - Order:  dequeue sequence
//   - Depth:  map from cell → step count from the root
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a cell is discovered)
//   - OnDequeue (before the goal test)
//   - OnVisit   (after a failed goal test; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unit-cost edges make the first goal dequeued a nearest one, so the
//     number of parent hops from Found to Root is the shortest distance.
//   - Swapping the rule and the goal answers reverse, multi-target queries
//     with the same machinery.
//
// Determinism
//
//	heightmap.Grid.Neighbors yields cells in north, south, west, east order,
//	and Search enqueues them in that order, so the visit sequence, the
//	Parent map and Found are fully reproducible for identical inputs.
//
// Path reconstruction
//
//	PathLength and Walk follow Parent from a cell back to the root. A cell is
//	inserted into Parent only at first discovery, so the links form a tree
//	and no cycle detection is needed.
//
// Complexity (N = W×H cells)
//
//   - Time:   O(N)   (each cell dequeued once, at most four edges each)
//   - Memory: O(N)   (queue, visited flags, Depth and Parent maps)
//
// Usage
//
//	res, err := bfs.Search(g, start, heightmap.Symbol('E'), heightmap.Ascend)
//	if errors.Is(err, bfs.ErrUnreachable) {
//		// no path; res still describes the explored region
//	}
//	steps := res.PathLength()
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrRootOutOfBounds  if the root lies outside the grid.
//   - ErrOptionViolation  for a nil predicate or an invalid Option.
//   - ErrUnreachable      if the frontier empties before the goal is met.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// A search is synchronous and owns all of its state; a Grid may be shared
// by concurrent searches because nothing writes to it.
package bfs
