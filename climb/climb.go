// Package climb answers shortest-route questions on a heightmap.Grid by
// running one breadth-first search per query.
package climb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/ctxlog"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// Summit returns the fewest steps from S to E climbing at most one level
// per step.
func Summit(g *heightmap.Grid) (Route, error) {
	return Run(context.Background(), g, SummitQuery())
}

// Trailhead returns the fewest steps from E down to the nearest S or 'a'
// cell, dropping at most one level per step.
func Trailhead(g *heightmap.Grid) (Route, error) {
	return Run(context.Background(), g, TrailheadQuery())
}

// Run executes q against g. The logger carried by ctx (see ctxlog)
// receives the search's debug records.
//
// Returns ErrInvalidQuery for a malformed q, ErrMissingMarker when q.From
// or all of q.Goals are absent, ErrNoPath (wrapping bfs.ErrUnreachable) when
// no goal can be reached, or ctx.Err() if ctx is already done.
func Run(ctx context.Context, g *heightmap.Grid, q Query) (Route, error) {
	if err := ctx.Err(); err != nil {
		return Route{}, err
	}
	if g == nil {
		return Route{}, bfs.ErrGridNil
	}
	if err := q.Validate(); err != nil {
		return Route{}, err
	}

	start, ok := g.Find(q.From)
	if !ok {
		return Route{}, fmt.Errorf("%w: %s: no %q cell", ErrMissingMarker, q.Name, q.From)
	}
	if !anyPresent(g, q.Goals) {
		return Route{}, fmt.Errorf("%w: %s: none of %q present", ErrMissingMarker, q.Name, q.Goals)
	}

	logger := ctxlog.FromContext(ctx).With(slog.String("query", q.Name))
	res, err := bfs.Search(g, start, heightmap.AnyOf(q.Goals...), q.Rule.Edge(), bfs.WithLogger(logger))
	if errors.Is(err, bfs.ErrUnreachable) {
		return Route{}, fmt.Errorf("%w: %s from %v: %w", ErrNoPath, q.Name, start, err)
	}
	if err != nil {
		return Route{}, fmt.Errorf("climb: %s: %w", q.Name, err)
	}

	route := Route{
		Query: q,
		Start: start,
		Goal:  res.Found,
		Steps: res.PathLength(),
		Path:  res.Path(),
	}
	logger.Info("route found", slog.Int("steps", route.Steps), slog.String("goal", route.Goal.String()))

	return route, nil
}

// SolveAll runs every query concurrently against the shared, read-only grid
// and returns the routes in query order. The first failure cancels queries
// that have not started yet and is returned.
func SolveAll(ctx context.Context, g *heightmap.Grid, queries []Query) ([]Route, error) {
	routes := make([]Route, len(queries))
	eg, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		eg.Go(func() error {
			r, err := Run(gctx, g, q)
			if err != nil {
				return err
			}
			routes[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return routes, nil
}

// anyPresent reports whether at least one of syms occurs in g.
func anyPresent(g *heightmap.Grid, syms []byte) bool {
	for _, s := range syms {
		if _, ok := g.Find(s); ok {
			return true
		}
	}
	return false
}
