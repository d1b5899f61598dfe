package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// queryFile represents the top-level structure of a query file for decoding.
type queryFile struct {
	Queries []*queryBlock `hcl:"query,block"`
}

// queryBlock is one `query "<name>" { ... }` block.
type queryBlock struct {
	Name  string   `hcl:"name,label"`
	From  string   `hcl:"from"`
	Goals []string `hcl:"goals"`
	Rule  string   `hcl:"rule,optional"`
}

// evalContext exposes the marker symbols to query expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"start":  cty.StringVal(string(heightmap.Start)),
			"end":    cty.StringVal(string(heightmap.End)),
			"lowest": cty.StringVal(string(heightmap.Lowest)),
		},
	}
}

// Load parses the HCL query file at path.
func Load(path string) ([]climb.Query, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse HCL file %s: %w", path, diags)
	}
	return decode(f, path)
}

// Parse parses HCL query source; filename is used in diagnostics only.
func Parse(src []byte, filename string) ([]climb.Query, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(f, filename)
}

// decode turns a parsed file into validated queries, in file order.
func decode(f *hcl.File, filename string) ([]climb.Query, error) {
	var parsed queryFile
	if diags := gohcl.DecodeBody(f.Body, evalContext(), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode HCL file %s: %w", filename, diags)
	}
	if len(parsed.Queries) == 0 {
		return nil, fmt.Errorf("%w: %s: no query blocks", climb.ErrInvalidQuery, filename)
	}

	seen := make(map[string]bool, len(parsed.Queries))
	queries := make([]climb.Query, 0, len(parsed.Queries))
	for _, b := range parsed.Queries {
		if seen[b.Name] {
			return nil, fmt.Errorf("%w: %s: duplicate query %q", climb.ErrInvalidQuery, filename, b.Name)
		}
		seen[b.Name] = true

		q, err := b.toQuery()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		queries = append(queries, q)
	}

	return queries, nil
}

// toQuery validates a decoded block and converts it.
func (b *queryBlock) toQuery() (climb.Query, error) {
	from, err := symbol(b.Name, "from", b.From)
	if err != nil {
		return climb.Query{}, err
	}
	goals := make([]byte, 0, len(b.Goals))
	for _, g := range b.Goals {
		s, err := symbol(b.Name, "goals", g)
		if err != nil {
			return climb.Query{}, err
		}
		goals = append(goals, s)
	}

	rule := climb.RuleAscend
	if b.Rule != "" {
		if rule, err = climb.ParseRule(b.Rule); err != nil {
			return climb.Query{}, fmt.Errorf("query %q: %w", b.Name, err)
		}
	}

	q := climb.Query{Name: b.Name, From: from, Goals: goals, Rule: rule}
	return q, q.Validate()
}

// symbol checks that v is a single grid symbol.
func symbol(query, attr, v string) (byte, error) {
	if len(v) != 1 {
		return 0, fmt.Errorf("%w: query %q: %s must be a single symbol, got %q", climb.ErrInvalidQuery, query, attr, v)
	}
	if !heightmap.ValidSymbol(v[0]) {
		return 0, fmt.Errorf("%w: query %q: %s: unknown symbol %q", climb.ErrInvalidQuery, query, attr, v)
	}
	return v[0], nil
}
