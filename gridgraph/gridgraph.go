package gridgraph

import (
	"fmt"
	"strings"
)

// NewCostMap constructs a CostMap from a non-empty, rectangular 2D slice of
// non-negative weights. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeWeight (wrapped with
// the offending cell).
// Algorithmic complexity: O(W×H) time and memory.
func NewCostMap(values [][]int) (*CostMap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	weights := make([][]int, h)
	for r, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) weight=%d", ErrNegativeWeight, r, c, v)
			}
		}
		weights[r] = make([]int, w)
		copy(weights[r], row)
	}

	return &CostMap{Bounds: Bounds{Rows: h, Cols: w}, weights: weights}, nil
}

// ParseCostMap parses rows of single decimal digits, one row per line.
// Surrounding blank lines and trailing carriage returns are ignored.
func ParseCostMap(text string) (*CostMap, error) {
	lines := splitLines(text)
	values := make([][]int, len(lines))
	for r, line := range lines {
		row := make([]int, len(line))
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidDigit, ch, r, c)
			}
			row[c] = int(ch - '0')
		}
		values[r] = row
	}

	return NewCostMap(values)
}

// Weight returns the cost of entering c. c must be in bounds.
// Complexity: O(1).
func (m *CostMap) Weight(c Cell) int {
	return m.weights[c.Row][c.Col]
}

// ParseGrid parses a rectangular block of tile characters.
func ParseGrid(text string) (*Grid, error) {
	lines := splitLines(text)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	tiles := make([][]byte, len(lines))
	for r, line := range lines {
		if len(line) != w {
			return nil, ErrNonRectangular
		}
		tiles[r] = []byte(line)
	}

	return &Grid{Bounds: Bounds{Rows: len(lines), Cols: w}, tiles: tiles}, nil
}

// At returns the tile at c. c must be in bounds.
func (g *Grid) At(c Cell) byte {
	return g.tiles[c.Row][c.Col]
}

// Tiles returns a fresh copy of the tiles, one slice per row.
func (g *Grid) Tiles() [][]byte {
	out := make([][]byte, len(g.tiles))
	for r, row := range g.tiles {
		out[r] = append([]byte(nil), row...)
	}
	return out
}

// splitLines trims surrounding blank lines and strips '\r'.
func splitLines(text string) []string {
	text = strings.Trim(strings.ReplaceAll(text, "\r", ""), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
