// Package bfs provides breadth-first search over a heightmap.Grid,
// returning the first goal cell, parent links, depths, and visit order.
//
// BFS explores cells in increasing step count from a root, moving only
// along edges admitted by the caller's rule, with optional hooks and
// depth limiting.
package bfs

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	c     heightmap.Coord
	depth int
}

// walker encapsulates mutable BFS state. It is owned by a single Search call.
type walker struct {
	grid    *heightmap.Grid
	goal    heightmap.GoalFunc
	edge    heightmap.EdgeFunc
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// Search runs breadth-first search on g from root. The search ends at the
// first dequeued cell whose raw symbol satisfies goal; edges are admitted
// by edge applied to effective elevations (see heightmap.Grid.Neighbors).
//
// Returns ErrGridNil or ErrRootOutOfBounds for invalid input,
// ErrOptionViolation for bad options or nil predicates, any user-supplied
// hook error, or ErrUnreachable when the frontier empties first. On
// ErrUnreachable the partial Result describing the explored region is
// returned alongside the error.
func Search(
	g *heightmap.Grid,
	root heightmap.Coord,
	goal heightmap.GoalFunc,
	edge heightmap.EdgeFunc,
	opts ...Option,
) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if goal == nil || edge == nil {
		return nil, fmt.Errorf("%w: goal and edge predicates are required", ErrOptionViolation)
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(root) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrRootOutOfBounds, root, g.Width(), g.Height())
	}

	n := g.Width() * g.Height()
	w := &walker{
		grid:    g,
		goal:    goal,
		edge:    edge,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Root:   root,
			Order:  make([]heightmap.Coord, 0, n),
			Depth:  make(map[heightmap.Coord]int, n),
			Parent: make(map[heightmap.Coord]heightmap.Coord, n),
		},
	}

	o.Logger.Debug("bfs: search started", slog.String("root", root.String()))
	// Seed queue with the root (no parent)
	w.enqueue(root, 0, nil)
	err := w.loop()
	switch {
	case err == nil:
		o.Logger.Debug("bfs: goal found",
			slog.String("found", w.res.Found.String()),
			slog.Int("depth", w.res.Depth[w.res.Found]),
			slog.Int("visited", len(w.res.Order)))
	case errors.Is(err, ErrUnreachable):
		o.Logger.Debug("bfs: frontier exhausted", slog.Int("visited", len(w.res.Order)))
		return w.res, err
	default:
		return nil, err
	}

	return w.res, nil
}

// enqueue marks c visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(c heightmap.Coord, d int, parent *heightmap.Coord) {
	w.visited[w.grid.Index(c)] = true
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{c: c, depth: d})
}

// loop processes the queue until a goal is dequeued, a hook fails,
// or the frontier is empty.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		sym, _ := w.grid.Get(item.c)
		if w.goal(sym) {
			w.res.Found = item.c
			w.res.Reached = true
			return nil
		}
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return ErrUnreachable
}

// dequeue pops the first item, records it in Order, invokes OnDequeue,
// and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Order = append(w.res.Order, item.c)
	w.opts.OnDequeue(item.c, item.depth)
	return item
}

// visit calls OnVisit for a non-goal cell.
func (w *walker) visit(item queueItem) error {
	if err := w.opts.OnVisit(item.c, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.c, err)
	}
	return nil
}

// enqueueNeighbors applies the edge rule and MaxDepth, then enqueues each
// unseen neighbor with item as its parent.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.c, w.edge) {
		// first time seen?
		if !w.visited[w.grid.Index(nbr)] {
			w.enqueue(nbr, nextDepth, &item.c)
		}
	}
}
