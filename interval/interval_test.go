package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlgrid/interval"
)

func TestIntersect(t *testing.T) {
	cases := []struct {
		name   string
		a, b   interval.Range[int]
		want   interval.Range[int]
		wantOK bool
	}{
		{"Overlap", interval.New(1, 10), interval.New(5, 15), interval.New(5, 10), true},
		{"Nested", interval.New(1, 10), interval.New(3, 4), interval.New(3, 4), true},
		{"Touching", interval.New(1, 5), interval.New(5, 9), interval.Range[int]{}, false},
		{"Disjoint", interval.New(8, 9), interval.New(1, 3), interval.Range[int]{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Intersect(tc.b)
			assert.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
			// Intersection is symmetric.
			got2, ok2 := tc.b.Intersect(tc.a)
			assert.Equal(t, ok, ok2)
			if ok {
				assert.Equal(t, got, got2)
			}
		})
	}
}

func TestDifferences(t *testing.T) {
	r := interval.New(0, 20)
	cut := interval.New(5, 12)

	left, ok := r.LeftOf(cut)
	assert.True(t, ok)
	assert.Equal(t, interval.New(0, 5), left)

	right, ok := r.RightOf(cut)
	assert.True(t, ok)
	assert.Equal(t, interval.New(12, 20), right)

	mid, _ := r.Intersect(cut)
	assert.Equal(t, r.Len(), left.Len()+mid.Len()+right.Len(), "pieces must cover r exactly")

	_, ok = interval.New(6, 8).LeftOf(cut)
	assert.False(t, ok)
	_, ok = interval.New(6, 8).RightOf(cut)
	assert.False(t, ok)
}

func TestSplit(t *testing.T) {
	below, above := interval.New(1, 4001).Split(2006)
	assert.Equal(t, interval.New(1, 2006), below)
	assert.Equal(t, interval.New(2006, 4001), above)

	below, above = interval.New(10, 20).Split(5)
	assert.True(t, below.Empty())
	assert.Equal(t, interval.New(10, 20), above)

	below, above = interval.New(10, 20).Split(50)
	assert.Equal(t, interval.New(10, 20), below)
	assert.True(t, above.Empty())
}

func TestBasics(t *testing.T) {
	r := interval.Span[int64](79, 14)
	assert.Equal(t, int64(14), r.Len())
	assert.True(t, r.Contains(79))
	assert.False(t, r.Contains(93))
	assert.Equal(t, interval.New[int64](81, 95), r.Shift(2))
	assert.Equal(t, "[79,93)", r.String())
	assert.Equal(t, int64(0), interval.New[int64](5, 1).Len())

	lo, ok := interval.MinLo([]interval.Range[int]{interval.New(9, 9), interval.New(7, 8), interval.New(3, 20)})
	assert.True(t, ok)
	assert.Equal(t, 3, lo)
	_, ok = interval.MinLo[int](nil)
	assert.False(t, ok)
}
