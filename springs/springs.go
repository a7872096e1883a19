// Package springs counts the ways a damaged spring record can be completed.
//
// A record has a pattern of '#' (damaged), '.' (operational) and '?'
// (unknown) cells, and the lengths of the contiguous damaged groups in order.
// Count memoises on (position in pattern, groups already placed), so unfolded
// records with thousands of unknowns stay polynomial.
package springs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Pattern symbols.
const (
	Operational = '.'
	Damaged     = '#'
	Unknown     = '?'
)

var (
	// ErrInvalidSymbol is returned for pattern bytes other than '.', '#', '?'.
	ErrInvalidSymbol = errors.New("springs: invalid pattern symbol")
	// ErrMalformedRecord is returned for lines that do not parse.
	ErrMalformedRecord = errors.New("springs: malformed record")
)

// Record is one row of the condition report.
type Record struct {
	Pattern string
	Groups  []int
}

// ParseRecord parses a line such as "???.### 1,1,3".
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	parts := strings.Split(fields[1], ",")
	groups := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return Record{}, fmt.Errorf("%w: bad group %q", ErrMalformedRecord, p)
		}
		groups[i] = n
	}
	if err := validate(fields[0]); err != nil {
		return Record{}, err
	}
	return Record{Pattern: fields[0], Groups: groups}, nil
}

// Unfold joins copies of the pattern with '?' and repeats the groups.
func (r Record) Unfold(copies int) Record {
	if copies <= 1 {
		return r
	}
	patterns := make([]string, copies)
	groups := make([]int, 0, len(r.Groups)*copies)
	for i := range patterns {
		patterns[i] = r.Pattern
		groups = append(groups, r.Groups...)
	}
	return Record{Pattern: strings.Join(patterns, string(Unknown)), Groups: groups}
}

// Count returns how many assignments of the unknown cells satisfy groups.
func Count(pattern string, groups []int) (int, error) {
	if err := validate(pattern); err != nil {
		return 0, err
	}
	c := counter{
		pattern: pattern,
		groups:  groups,
		memo:    make(map[state]int),
	}
	return c.count(0, 0), nil
}

// Count is shorthand for Count(r.Pattern, r.Groups).
func (r Record) Count() (int, error) {
	return Count(r.Pattern, r.Groups)
}

// Sum parses one record per line, unfolds each by copies and adds the counts.
func Sum(text string, copies int) (int, error) {
	total := 0
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		n, err := rec.Unfold(copies).Count()
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += n
	}
	return total, nil
}

// state is the memo key: next pattern index and next group index.
type state struct {
	pos, group int
}

// counter owns the cache for one top-level Count call.
type counter struct {
	pattern string
	groups  []int
	memo    map[state]int
}

func (c *counter) count(pos, group int) int {
	if pos >= len(c.pattern) {
		if group == len(c.groups) {
			return 1
		}
		return 0
	}
	key := state{pos, group}
	if v, ok := c.memo[key]; ok {
		return v
	}

	ways := 0
	ch := c.pattern[pos]
	if ch == Operational || ch == Unknown {
		ways += c.count(pos+1, group)
	}
	if (ch == Damaged || ch == Unknown) && c.fits(pos, group) {
		// the cell after the group is forced operational
		ways += c.count(pos+c.groups[group]+1, group+1)
	}

	c.memo[key] = ways
	return ways
}

// fits reports whether group can start at pos: enough room, no operational
// cell inside it and no damaged cell right after it.
func (c *counter) fits(pos, group int) bool {
	if group >= len(c.groups) {
		return false
	}
	end := pos + c.groups[group]
	if end > len(c.pattern) {
		return false
	}
	if strings.IndexByte(c.pattern[pos:end], Operational) >= 0 {
		return false
	}
	return end == len(c.pattern) || c.pattern[end] != Damaged
}

func validate(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case Operational, Damaged, Unknown:
		default:
			return fmt.Errorf("%w: %q at %d", ErrInvalidSymbol, pattern[i], i)
		}
	}
	return nil
}
