// Package climb defines the queries, rules and sentinel errors used to ask
// shortest-route questions of a heightmap.Grid.
package climb

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for query execution.
var (
	// ErrMissingMarker is returned when the query's start symbol, or every
	// one of its goal symbols, is absent from the grid.
	ErrMissingMarker = errors.New("climb: marker not found")

	// ErrNoPath is returned when no admissible route reaches a goal.
	// It also wraps bfs.ErrUnreachable.
	ErrNoPath = errors.New("climb: no path found")

	// ErrInvalidQuery is returned for a malformed Query.
	ErrInvalidQuery = errors.New("climb: invalid query")
)

// Rule selects the edge-admissibility predicate of a query.
type Rule int

const (
	// RuleAscend allows climbing at most one level per step (heightmap.Ascend).
	RuleAscend Rule = iota
	// RuleDescend allows dropping at most one level per step (heightmap.Descend).
	RuleDescend
)

// String returns the rule name used in query files.
func (r Rule) String() string {
	switch r {
	case RuleAscend:
		return "ascend"
	case RuleDescend:
		return "descend"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// ParseRule maps "ascend" or "descend" to a Rule.
func ParseRule(s string) (Rule, error) {
	switch s {
	case "ascend":
		return RuleAscend, nil
	case "descend":
		return RuleDescend, nil
	default:
		return 0, fmt.Errorf("%w: unknown rule %q (want ascend or descend)", ErrInvalidQuery, s)
	}
}

// Edge returns the predicate implementing r.
func (r Rule) Edge() heightmap.EdgeFunc {
	if r == RuleDescend {
		return heightmap.Descend
	}
	return heightmap.Ascend
}

// Query describes one shortest-route question: start at the first cell
// holding From and stop at the nearest cell holding any of Goals,
// stepping under Rule.
type Query struct {
	Name  string
	From  byte
	Goals []byte
	Rule  Rule
}

// Validate reports whether q can be run.
func (q Query) Validate() error {
	if q.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidQuery)
	}
	if q.From == 0 {
		return fmt.Errorf("%w: %s: from symbol is empty", ErrInvalidQuery, q.Name)
	}
	if len(q.Goals) == 0 {
		return fmt.Errorf("%w: %s: no goal symbols", ErrInvalidQuery, q.Name)
	}
	if q.Rule != RuleAscend && q.Rule != RuleDescend {
		return fmt.Errorf("%w: %s: %v", ErrInvalidQuery, q.Name, q.Rule)
	}
	return nil
}

// Route is the answer to a Query.
//   - Start: the cell the search began from.
//   - Goal:  the nearest goal cell reached.
//   - Steps: the number of moves from Start to Goal.
//   - Path:  Start … Goal, Steps+1 cells.
type Route struct {
	Query Query
	Start heightmap.Coord
	Goal  heightmap.Coord
	Steps int
	Path  []heightmap.Coord
}

// SummitQuery climbs from S to E under RuleAscend.
func SummitQuery() Query {
	return Query{
		Name:  "summit",
		From:  heightmap.Start,
		Goals: []byte{heightmap.End},
		Rule:  RuleAscend,
	}
}

// TrailheadQuery walks back down from E to the nearest S or lowest cell
// under RuleDescend: the shortest climb from any lowest cell to E.
func TrailheadQuery() Query {
	return Query{
		Name:  "trailhead",
		From:  heightmap.End,
		Goals: []byte{heightmap.Start, heightmap.Lowest},
		Rule:  RuleDescend,
	}
}

// DefaultQueries returns the summit and trailhead queries, in that order.
func DefaultQueries() []Query {
	return []Query{SummitQuery(), TrailheadQuery()}
}
