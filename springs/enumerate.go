package springs

import (
	"slices"
	"strings"
)

// Enumerate lists every completed pattern consistent with groups, in
// lexicographic order. It explores all 2^k assignments of the k unknowns and
// is meant for short records and for checking Count.
func Enumerate(pattern string, groups []int) ([]string, error) {
	if err := validate(pattern); err != nil {
		return nil, err
	}
	var out []string
	buf := []byte(pattern)
	var walk func(i int)
	walk = func(i int) {
		if i == len(buf) {
			if slices.Equal(runs(buf), groups) {
				out = append(out, string(buf))
			}
			return
		}
		if pattern[i] != Unknown {
			walk(i + 1)
			return
		}
		for _, ch := range []byte{Damaged, Operational} {
			buf[i] = ch
			walk(i + 1)
		}
		buf[i] = Unknown
	}
	walk(0)
	slices.Sort(out)
	return out, nil
}

// runs returns the lengths of the damaged groups in a completed pattern.
func runs(b []byte) []int {
	var out []int
	for _, f := range strings.FieldsFunc(string(b), func(r rune) bool { return r != Damaged }) {
		out = append(out, len(f))
	}
	return out
}
