// Package almanac pushes seed numbers, and whole ranges of them, through a
// chain of piecewise-shift maps (seed → soil → … → location).
//
// Each map is a list of segments "destination source length". A value inside
// a segment's source range is shifted by destination-source; a value covered
// by no segment passes through unchanged. Ranges are split at segment
// boundaries so that the cost is proportional to the number of pieces, not
// the number of values.
package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlgrid/interval"
)

// Category names at the ends of the chain.
const (
	FirstCategory = "seed"
	LastCategory  = "location"
)

// ErrMalformed is returned for text that does not parse, or whose maps do
// not chain from FirstCategory to LastCategory.
var ErrMalformed = errors.New("almanac: malformed almanac")

// Segment shifts every value in Source by Delta.
type Segment struct {
	Source interval.Range[int]
	Delta  int
}

// Map converts values of category Source into category Target.
type Map struct {
	Source, Target string
	Segments       []Segment
}

// Almanac is a list of seeds and the map chain from seed to location.
type Almanac struct {
	Seeds []int
	Chain []Map
}

// Apply maps a single value. The first matching segment wins.
func (m Map) Apply(x int) int {
	for _, s := range m.Segments {
		if s.Source.Contains(x) {
			return x + s.Delta
		}
	}
	return x
}

// ApplyRange maps a range of values, returning the image pieces in no
// particular order. Their lengths sum to r.Len().
func (m Map) ApplyRange(r interval.Range[int]) []interval.Range[int] {
	pending := []interval.Range[int]{r}
	var out []interval.Range[int]
	for _, s := range m.Segments {
		var next []interval.Range[int]
		for _, p := range pending {
			if left, ok := p.LeftOf(s.Source); ok {
				next = append(next, left)
			}
			if right, ok := p.RightOf(s.Source); ok {
				next = append(next, right)
			}
			if mid, ok := p.Intersect(s.Source); ok {
				out = append(out, mid.Shift(s.Delta))
			}
		}
		pending = next
	}
	return append(out, pending...)
}

// Location maps a seed through the whole chain.
func (a *Almanac) Location(seed int) int {
	x := seed
	for _, m := range a.Chain {
		x = m.Apply(x)
	}
	return x
}

// LocationRanges maps a seed range through the whole chain.
func (a *Almanac) LocationRanges(r interval.Range[int]) []interval.Range[int] {
	rs := []interval.Range[int]{r}
	for _, m := range a.Chain {
		var next []interval.Range[int]
		for _, x := range rs {
			next = append(next, m.ApplyRange(x)...)
		}
		rs = next
	}
	return rs
}

// LowestLocation returns the smallest location of any listed seed.
func (a *Almanac) LowestLocation() (int, error) {
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("%w: no seeds", ErrMalformed)
	}
	best := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		best = min(best, a.Location(s))
	}
	return best, nil
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]interval.Range[int], error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of seed values", ErrMalformed)
	}
	out := make([]interval.Range[int], 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, interval.Span(a.Seeds[i], a.Seeds[i+1]))
	}
	return out, nil
}

// LowestLocationForRanges returns the smallest location of any seed in
// any seed range.
func (a *Almanac) LowestLocationForRanges() (int, error) {
	seedRanges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	var all []interval.Range[int]
	for _, r := range seedRanges {
		all = append(all, a.LocationRanges(r)...)
	}
	lo, ok := interval.MinLo(all)
	if !ok {
		return 0, fmt.Errorf("%w: seed ranges are empty", ErrMalformed)
	}
	return lo, nil
}

// Parse reads the seeds line followed by blank-line separated map blocks.
func Parse(text string) (*Almanac, error) {
	sc := bufio.NewScanner(strings.NewReader(strings.TrimSpace(text)))
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	seedText, ok := strings.CutPrefix(strings.TrimSpace(sc.Text()), "seeds:")
	if !ok {
		return nil, fmt.Errorf("%w: missing seeds line", ErrMalformed)
	}
	seeds, err := parseInts(seedText)
	if err != nil {
		return nil, err
	}

	bySource := make(map[string]Map)
	var cur *Map
	flush := func() {
		if cur != nil {
			bySource[cur.Source] = *cur
			cur = nil
		}
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			flush()
		case strings.HasSuffix(line, " map:"):
			flush()
			src, dst, ok := strings.Cut(strings.TrimSuffix(line, " map:"), "-to-")
			if !ok {
				return nil, fmt.Errorf("%w: bad header %q", ErrMalformed, line)
			}
			cur = &Map{Source: src, Target: dst}
		default:
			if cur == nil {
				return nil, fmt.Errorf("%w: segment outside a map: %q", ErrMalformed, line)
			}
			nums, err := parseInts(line)
			if err != nil {
				return nil, err
			}
			if len(nums) != 3 || nums[2] < 0 {
				return nil, fmt.Errorf("%w: bad segment %q", ErrMalformed, line)
			}
			cur.Segments = append(cur.Segments, Segment{
				Source: interval.Span(nums[1], nums[2]),
				Delta:  nums[0] - nums[1],
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	flush()

	chain, err := link(bySource)
	if err != nil {
		return nil, err
	}
	return &Almanac{Seeds: seeds, Chain: chain}, nil
}

// link orders the maps from FirstCategory to LastCategory.
func link(bySource map[string]Map) ([]Map, error) {
	var chain []Map
	for cat := FirstCategory; cat != LastCategory; {
		m, ok := bySource[cat]
		if !ok {
			return nil, fmt.Errorf("%w: no map from %q", ErrMalformed, cat)
		}
		if len(chain) > len(bySource) {
			return nil, fmt.Errorf("%w: maps form a loop at %q", ErrMalformed, cat)
		}
		chain = append(chain, m)
		cat = m.Target
	}
	return chain, nil
}

func parseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrMalformed, f)
		}
		out[i] = n
	}
	return out, nil
}
