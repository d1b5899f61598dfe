// Package bfs provides tunable options and error definitions
// for breadth‐first search over a heightmap.Grid.
package bfs

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrRootOutOfBounds is returned when the root lies outside the grid.
	ErrRootOutOfBounds = errors.New("bfs: root outside grid")

	// ErrOptionViolation is returned when an invalid Option or a nil
	// predicate is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned when the frontier empties before any
	// cell satisfies the goal.
	ErrUnreachable = errors.New("bfs: goal unreachable")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a cell is discovered and enqueued.
	// Receives the cell and its depth from the root.
	OnEnqueue func(c heightmap.Coord, depth int)

	// OnDequeue is called immediately before a cell is tested against the goal.
	OnDequeue func(c heightmap.Coord, depth int)

	// OnVisit is called after the goal test fails for a cell, before its
	// neighbors are expanded. If it returns an error, Search aborts and
	// propagates that error.
	OnVisit func(c heightmap.Coord, depth int) error

	// MaxDepth, if > 0, stops discovering cells beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Logger receives debug records for the start and outcome of a search.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(heightmap.Coord, int) {},
		OnDequeue: func(heightmap.Coord, int) {},
		OnVisit:   func(heightmap.Coord, int) error { return nil },
		MaxDepth:  0,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c heightmap.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c heightmap.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c heightmap.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops discovery at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithLogger routes debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search:
//   - Root:    the cell the search started from.
//   - Reached: whether a goal cell was dequeued.
//   - Found:   the first dequeued cell whose raw symbol satisfied the goal;
//     zero and meaningless when Reached is false.
//   - Order:   cells in dequeue sequence.
//   - Depth:   map from every discovered cell to its distance from Root.
//   - Parent:  backpointer map; every discovered cell except Root maps to
//     the cell it was first discovered from.
type Result struct {
	Root    heightmap.Coord
	Reached bool
	Found   heightmap.Coord
	Order   []heightmap.Coord
	Depth   map[heightmap.Coord]int
	Parent  map[heightmap.Coord]heightmap.Coord
}
