package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Parse reads a surface in the plain-text format: one row per line, every
// line the same length. A final newline is optional; CRLF endings are accepted.
// Blank lines inside the block are rows of length zero and are rejected.
// Row width is not capped.
// Returns the same errors as New, or the reader's error.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	var rows []string
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read surface: %w", err)
	}

	return New(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heightmap: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
