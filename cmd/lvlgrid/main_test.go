package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPuzzles(t *testing.T) {
	cases := []struct {
		puzzle       string
		input        string
		part1, part2 int
	}{
		{"beam", ".|.\n...\n.-.", 6, 6},
		{"lagoon", "R 2 (#000020)\nD 2 (#000021)\nL 2 (#000022)\nU 2 (#000023)", 9, 9},
		{"pipes", "-L|F7\n7S-7|\nL|7||\n-L-J|\nL|-JF", 4, 1},
		{"crucible", "11111\n11111\n11111\n11111\n11111", 8, 8},
		{"springs", "???.### 1,1,3\n?###???????? 3,2,1", 11, 506251},
		{"platform", "O.\n.#", 2, 1},
		{"almanac", "seeds: 1 2\n\nseed-to-location map:\n10 1 1", 2, 2},
		{"workflow", "in{x>2000:A,R}\n\n{x=2001,m=1,a=1,s=1}\n{x=1,m=1,a=1,s=1}", 2004, 2000 * 4000 * 4000 * 4000},
	}
	for _, tc := range cases {
		t.Run(tc.puzzle, func(t *testing.T) {
			p, ok := puzzles[tc.puzzle]
			require.True(t, ok)

			got, err := p.part1(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.part1, got, "part 1")

			got, err = p.part2(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.part2, got, "part 2")
		})
	}
}

func TestPuzzleNames(t *testing.T) {
	assert.Equal(t, []string{"almanac", "beam", "crucible", "lagoon", "pipes", "platform", "springs", "workflow"}, puzzleNames())
}

func TestPuzzles_BadInput(t *testing.T) {
	for name, p := range puzzles {
		_, err := p.part1("x")
		assert.Error(t, err, name)
	}
}
