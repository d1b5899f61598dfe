package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// canonical is the 8×5 reference surface.
var canonical = []string{
	"Sabqponm",
	"abcryxxl",
	"accszExk",
	"acctuvwj",
	"abdefghi",
}

// walled keeps E inside a ring of 'z' surrounded by 'a': nothing climbs in.
var walled = []string{
	"Saaaa",
	"aaaaa",
	"aazaa",
	"azEza",
	"aazaa",
}

func mustGrid(t testing.TB, rows []string) *heightmap.Grid {
	t.Helper()
	g, err := heightmap.New(rows)
	require.NoError(t, err)
	return g
}

func marker(t testing.TB, g *heightmap.Grid, sym byte) heightmap.Coord {
	t.Helper()
	c, ok := g.Find(sym)
	require.True(t, ok, "marker %q missing", sym)
	return c
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	g := mustGrid(t, canonical)
	root := heightmap.Coord{}
	goal := heightmap.Symbol('E')

	_, err := bfs.Search(nil, root, goal, heightmap.Ascend)
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	_, err = bfs.Search(g, heightmap.Coord{X: 8, Y: 0}, goal, heightmap.Ascend)
	assert.ErrorIs(t, err, bfs.ErrRootOutOfBounds)

	_, err = bfs.Search(g, root, nil, heightmap.Ascend)
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Search(g, root, goal, nil)
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Search(g, root, goal, heightmap.Ascend, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSearch_Forward climbs from S to E on the canonical surface.
func TestSearch_Forward(t *testing.T) {
	g := mustGrid(t, canonical)
	start := marker(t, g, 'S')

	res, err := bfs.Search(g, start, heightmap.Symbol('E'), heightmap.Ascend)
	require.NoError(t, err)

	assert.Equal(t, start, res.Root)
	assert.True(t, res.Reached)
	assert.Equal(t, heightmap.Coord{X: 5, Y: 2}, res.Found)
	assert.Equal(t, 31, res.PathLength())
	assert.Equal(t, 31, bfs.PathLength(res.Parent, res.Found))
	assert.Equal(t, 31, res.Depth[res.Found])

	path := res.Path()
	require.Len(t, path, 32)
	assert.Equal(t, start, path[0])
	assert.Equal(t, res.Found, path[len(path)-1])
}

// TestSearch_Reverse descends from E to the nearest S or a.
func TestSearch_Reverse(t *testing.T) {
	g := mustGrid(t, canonical)
	end := marker(t, g, 'E')

	res, err := bfs.Search(g, end, heightmap.AnyOf('S', 'a'), heightmap.Descend)
	require.NoError(t, err)

	assert.Equal(t, 29, res.PathLength())
	sym, _ := g.Get(res.Found)
	assert.Contains(t, []byte{'S', 'a'}, sym)
}

// TestSearch_RootIsGoal stops immediately with an empty backpointer map.
func TestSearch_RootIsGoal(t *testing.T) {
	g := mustGrid(t, canonical)
	start := marker(t, g, 'S')

	res, err := bfs.Search(g, start, heightmap.Symbol('S'), heightmap.Ascend)
	require.NoError(t, err)

	assert.Equal(t, start, res.Found)
	assert.Equal(t, 0, res.PathLength())
	assert.Equal(t, 0, bfs.PathLength(res.Parent, start))
	assert.Empty(t, res.Parent)
	assert.Equal(t, []heightmap.Coord{start}, res.Path())
}

// TestSearch_GoalSeesRawSymbol checks that the goal is tested against the
// stored symbol: the 'S' root is not an 'a' goal even though it climbs as one.
func TestSearch_GoalSeesRawSymbol(t *testing.T) {
	g := mustGrid(t, []string{"Sa"})

	res, err := bfs.Search(g, heightmap.Coord{}, heightmap.Symbol('a'), heightmap.Ascend)
	require.NoError(t, err)
	assert.Equal(t, heightmap.Coord{X: 1, Y: 0}, res.Found)
	assert.Equal(t, 1, res.PathLength())
}

// TestSearch_FirstDequeuedGoalWins shows that with several goal symbols the
// nearest one in BFS order is returned, whichever symbol it is.
func TestSearch_FirstDequeuedGoalWins(t *testing.T) {
	g := mustGrid(t, []string{"abSbE"})
	always := func(_, _ byte) bool { return true }

	res, err := bfs.Search(g, heightmap.Coord{X: 4, Y: 0}, heightmap.AnyOf('S', 'a'), always)
	require.NoError(t, err)
	assert.Equal(t, heightmap.Coord{X: 2, Y: 0}, res.Found)
	assert.Equal(t, 2, res.PathLength())
}

// TestSearch_Unreachable reports ErrUnreachable instead of looping or panicking.
func TestSearch_Unreachable(t *testing.T) {
	g := mustGrid(t, walled)
	start := marker(t, g, 'S')

	res, err := bfs.Search(g, start, heightmap.Symbol('E'), heightmap.Ascend)
	require.ErrorIs(t, err, bfs.ErrUnreachable)
	require.NotNil(t, res)

	// Every 'a' cell and S are explored; the ring and E are not.
	assert.Len(t, res.Order, 20)
	for _, c := range res.Order {
		sym, _ := g.Get(c)
		assert.Contains(t, []byte{'S', 'a'}, sym)
	}
	_, err = res.PathTo(marker(t, g, 'E'))
	assert.Error(t, err)
	assert.False(t, res.Reached)
}

// TestSearch_UnreachableResultHasNoPath guards against reading a route out
// of a failed search whose zero Found happens to be a visited cell.
func TestSearch_UnreachableResultHasNoPath(t *testing.T) {
	g := mustGrid(t, []string{
		"aaS",
		"zzz",
		"Ezz",
	})
	start := marker(t, g, 'S')

	res, err := bfs.Search(g, start, heightmap.Symbol('E'), heightmap.Ascend)
	require.ErrorIs(t, err, bfs.ErrUnreachable)
	require.Contains(t, res.Depth, heightmap.Coord{X: 0, Y: 0})

	assert.False(t, res.Reached)
	assert.Equal(t, -1, res.PathLength())
	assert.Nil(t, res.Path())
}

// TestSearch_Invariants checks the structural guarantees of a result:
// bounded visit count, one parent per cell, and admissible parent hops.
func TestSearch_Invariants(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		root byte
		goal heightmap.GoalFunc
		edge heightmap.EdgeFunc
	}{
		{"Forward", canonical, 'S', heightmap.Symbol('E'), heightmap.Ascend},
		{"Reverse", canonical, 'E', heightmap.AnyOf('S', 'a'), heightmap.Descend},
		{"Exhausted", walled, 'S', heightmap.Symbol('E'), heightmap.Ascend},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows)
			root := marker(t, g, tc.root)

			res, err := bfs.Search(g, root, tc.goal, tc.edge)
			if err != nil {
				require.ErrorIs(t, err, bfs.ErrUnreachable)
			}

			assert.LessOrEqual(t, len(res.Depth), g.Width()*g.Height())
			assert.LessOrEqual(t, len(res.Order), len(res.Depth))
			assert.Len(t, res.Parent, len(res.Depth)-1)
			_, rootHasParent := res.Parent[root]
			assert.False(t, rootHasParent, "root must have no parent")

			seen := make(map[heightmap.Coord]bool, len(res.Order))
			for _, c := range res.Order {
				assert.False(t, seen[c], "%v dequeued twice", c)
				seen[c] = true
			}

			for child, parent := range res.Parent {
				from, _ := g.Get(parent)
				to, _ := g.Get(child)
				assert.True(t,
					tc.edge(heightmap.Effective(from), heightmap.Effective(to)),
					"hop %v→%v violates the edge rule", parent, child)
				assert.Equal(t, res.Depth[parent]+1, res.Depth[child])
				assert.Equal(t, res.Depth[child], bfs.PathLength(res.Parent, child))
			}
		})
	}
}

// TestSearch_Deterministic repeats identical searches on the same grid.
func TestSearch_Deterministic(t *testing.T) {
	g := mustGrid(t, canonical)
	end := marker(t, g, 'E')

	first, err := bfs.Search(g, end, heightmap.AnyOf('S', 'a'), heightmap.Descend)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := bfs.Search(g, end, heightmap.AnyOf('S', 'a'), heightmap.Descend)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestSearch_MaxDepth limits discovery; the canonical goal lies at depth 31.
func TestSearch_MaxDepth(t *testing.T) {
	g := mustGrid(t, canonical)
	start := marker(t, g, 'S')

	res, err := bfs.Search(g, start, heightmap.Symbol('E'), heightmap.Ascend, bfs.WithMaxDepth(5))
	require.ErrorIs(t, err, bfs.ErrUnreachable)
	for c, d := range res.Depth {
		assert.LessOrEqual(t, d, 5, "cell %v", c)
	}

	res, err = bfs.Search(g, start, heightmap.Symbol('E'), heightmap.Ascend, bfs.WithMaxDepth(31))
	require.NoError(t, err)
	assert.Equal(t, 31, res.PathLength())

	res, err = bfs.Search(g, start, heightmap.Symbol('E'), heightmap.Ascend, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, 31, res.PathLength())
}

// TestSearch_Hooks verifies hook ordering and error propagation.
func TestSearch_Hooks(t *testing.T) {
	g := mustGrid(t, []string{"Sab", "edc"})
	var enq, deq, vis []heightmap.Coord

	res, err := bfs.Search(g, heightmap.Coord{}, heightmap.Symbol('e'), heightmap.Ascend,
		bfs.WithOnEnqueue(func(c heightmap.Coord, _ int) { enq = append(enq, c) }),
		bfs.WithOnDequeue(func(c heightmap.Coord, _ int) { deq = append(deq, c) }),
		bfs.WithOnVisit(func(c heightmap.Coord, _ int) error {
			vis = append(vis, c)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Order, deq)
	// The goal cell is dequeued but never visited.
	assert.Equal(t, deq[:len(deq)-1], vis)
	assert.Equal(t, heightmap.Coord{X: 0, Y: 1}, res.Found)
	assert.Equal(t, 5, res.PathLength())
	assert.Len(t, enq, 6)

	boom := errors.New("boom")
	_, err = bfs.Search(g, heightmap.Coord{}, heightmap.Symbol('e'), heightmap.Ascend,
		bfs.WithOnVisit(func(c heightmap.Coord, depth int) error {
			if depth == 2 {
				return boom
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, bfs.ErrUnreachable)
}

func TestResult_PathTo(t *testing.T) {
	g := mustGrid(t, canonical)
	res, err := bfs.Search(g, heightmap.Coord{}, heightmap.Symbol('E'), heightmap.Ascend)
	require.NoError(t, err)

	p, err := res.PathTo(heightmap.Coord{X: 2, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, heightmap.Coord{}, p[0])
	assert.Equal(t, heightmap.Coord{X: 2, Y: 2}, p[len(p)-1])
	assert.Len(t, p, res.Depth[heightmap.Coord{X: 2, Y: 2}]+1)
}
