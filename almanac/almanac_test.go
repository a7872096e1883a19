package almanac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/almanac"
	"github.com/katalvlaran/lvlgrid/interval"
)

const sample = `
seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func mustParse(t *testing.T) *almanac.Almanac {
	t.Helper()
	a, err := almanac.Parse(sample)
	require.NoError(t, err)
	return a
}

func TestParse_Sample(t *testing.T) {
	a := mustParse(t)
	assert.Equal(t, []int{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Chain, 7)
	assert.Equal(t, "seed", a.Chain[0].Source)
	assert.Equal(t, "soil", a.Chain[0].Target)
	assert.Equal(t, "location", a.Chain[6].Target)
	assert.Equal(t, almanac.Segment{Source: interval.New(98, 100), Delta: -48}, a.Chain[0].Segments[0])
}

func TestLocation_Sample(t *testing.T) {
	a := mustParse(t)
	want := map[int]int{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, loc := range want {
		assert.Equal(t, loc, a.Location(seed), "seed %d", seed)
	}

	lo, err := a.LowestLocation()
	require.NoError(t, err)
	assert.Equal(t, 35, lo)
}

func TestLowestLocationForRanges_Sample(t *testing.T) {
	a := mustParse(t)
	lo, err := a.LowestLocationForRanges()
	require.NoError(t, err)
	assert.Equal(t, 46, lo)
}

// TestApplyRange_MatchesPointwise checks range mapping value by value.
func TestApplyRange_MatchesPointwise(t *testing.T) {
	a := mustParse(t)
	r := interval.New(40, 110)
	for _, m := range a.Chain {
		pieces := m.ApplyRange(r)
		got := make(map[int]int)
		total := 0
		for _, p := range pieces {
			total += p.Len()
			for x := p.Lo; x < p.Hi; x++ {
				got[x]++
			}
		}
		assert.Equal(t, r.Len(), total, "%s map must preserve size", m.Source)

		want := make(map[int]int)
		for x := r.Lo; x < r.Hi; x++ {
			want[m.Apply(x)]++
		}
		assert.Equal(t, want, got, "%s map", m.Source)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"Empty":        "",
		"NoSeeds":      "seed-to-soil map:\n1 2 3",
		"BadSeed":      "seeds: 1 x",
		"BadHeader":    "seeds: 1\n\nseed-soil map:\n1 2 3",
		"BadSegment":   "seeds: 1\n\nseed-to-location map:\n1 2",
		"OrphanNumber": "seeds: 1\n\n1 2 3",
		"BrokenChain":  "seeds: 1\n\nseed-to-soil map:\n1 2 3",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := almanac.Parse(text)
			assert.ErrorIs(t, err, almanac.ErrMalformed)
		})
	}

	a, err := almanac.Parse("seeds: 1 2 3\n\nseed-to-location map:\n5 1 1")
	require.NoError(t, err)
	_, err = a.LowestLocationForRanges()
	assert.ErrorIs(t, err, almanac.ErrMalformed)
	lo, err := a.LowestLocation()
	require.NoError(t, err)
	assert.Equal(t, 2, lo)
}
