// Package interval implements half-open integer ranges [Lo, Hi) and the
// splitting operations used to push whole blocks of values through
// piecewise maps and threshold rules without enumerating them.
package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Range is the half-open interval [Lo, Hi). A Range with Hi ≤ Lo is empty.
type Range[T constraints.Integer] struct {
	Lo, Hi T
}

// New returns [lo, hi).
func New[T constraints.Integer](lo, hi T) Range[T] {
	return Range[T]{Lo: lo, Hi: hi}
}

// Span returns [start, start+length).
func Span[T constraints.Integer](start, length T) Range[T] {
	return Range[T]{Lo: start, Hi: start + length}
}

// Empty reports whether r contains no values.
func (r Range[T]) Empty() bool {
	return r.Hi <= r.Lo
}

// Len returns the number of values in r.
func (r Range[T]) Len() T {
	if r.Empty() {
		return 0
	}
	return r.Hi - r.Lo
}

// Contains reports whether x lies in r.
func (r Range[T]) Contains(x T) bool {
	return r.Lo <= x && x < r.Hi
}

// Intersect returns the overlap of r and o, and whether it is non-empty.
func (r Range[T]) Intersect(o Range[T]) (Range[T], bool) {
	out := Range[T]{Lo: max(r.Lo, o.Lo), Hi: min(r.Hi, o.Hi)}
	return out, !out.Empty()
}

// LeftOf returns the part of r below o.Lo, and whether it is non-empty.
func (r Range[T]) LeftOf(o Range[T]) (Range[T], bool) {
	out := Range[T]{Lo: r.Lo, Hi: min(r.Hi, o.Lo)}
	return out, !out.Empty()
}

// RightOf returns the part of r at or above o.Hi, and whether it is non-empty.
func (r Range[T]) RightOf(o Range[T]) (Range[T], bool) {
	out := Range[T]{Lo: max(r.Lo, o.Hi), Hi: r.Hi}
	return out, !out.Empty()
}

// Split cuts r at x into [Lo, x) and [x, Hi); either part may be empty.
func (r Range[T]) Split(x T) (below, above Range[T]) {
	cut := min(max(x, r.Lo), max(r.Hi, r.Lo))
	return Range[T]{Lo: r.Lo, Hi: cut}, Range[T]{Lo: cut, Hi: r.Hi}
}

// Shift moves r by delta.
func (r Range[T]) Shift(delta T) Range[T] {
	return Range[T]{Lo: r.Lo + delta, Hi: r.Hi + delta}
}

// String renders r as "[Lo,Hi)".
func (r Range[T]) String() string {
	return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi)
}

// MinLo returns the smallest Lo among the non-empty ranges, and false if
// there are none.
func MinLo[T constraints.Integer](rs []Range[T]) (T, bool) {
	var best T
	found := false
	for _, r := range rs {
		if r.Empty() {
			continue
		}
		if !found || r.Lo < best {
			best, found = r.Lo, true
		}
	}
	return best, found
}
