// Package cycle finds the point where a deterministic simulation starts
// repeating and uses it to jump to an arbitrary step without simulating it.
//
// The simulation is a pure step function S → S. Each state is reduced to a
// comparable key (by default a deephash.Sum of the whole value). When a key
// recurs, the states from its first occurrence onwards repeat forever with
// period Loop.Length, and any step n maps into the recorded prefix.
package cycle

import (
	"errors"
	"fmt"

	"tailscale.com/util/deephash"
)

// ErrNoCycle is returned when no state repeats within the step limit.
var ErrNoCycle = errors.New("cycle: no repetition within limit")

// Loop describes a detected cycle: states[Start] is the first state that
// recurs, and it recurs every Length steps.
type Loop struct {
	Start  int
	Length int
}

// Project maps step n to the index of an equal state among the first
// Start+Length recorded states.
func (l Loop) Project(n int) int {
	if n < l.Start+l.Length || l.Length == 0 {
		return n
	}
	return l.Start + (n-l.Start)%l.Length
}

// Hash returns the deep hash of s. It is the default key for Detect and Run.
func Hash[S any](s S) deephash.Sum {
	return deephash.Hash(&s)
}

// Detect steps from start until key yields a value seen before, or until
// limit steps have been taken (limit ≤ 0 means no limit).
//
// states[i] is the state after i steps; step must not mutate its argument
// because every state is retained.
func Detect[S any, K comparable](start S, step func(S) S, key func(S) K, limit int) (Loop, []S, error) {
	seen := make(map[K]int)
	var states []S
	cur := start
	for i := 0; limit <= 0 || i <= limit; i++ {
		k := key(cur)
		if j, ok := seen[k]; ok {
			return Loop{Start: j, Length: i - j}, states, nil
		}
		seen[k] = i
		states = append(states, cur)
		cur = step(cur)
	}
	return Loop{}, states, fmt.Errorf("%w: %d steps", ErrNoCycle, limit)
}

// Run returns the state after n steps. It simulates until either n steps are
// done or a repeat is found, then projects n onto the detected loop.
func Run[S any](start S, step func(S) S, n int) S {
	if n <= 0 {
		return start
	}
	loop, states, err := Detect(start, step, Hash[S], n)
	if err != nil {
		// No repeat within n steps: states[n] is the state after n steps.
		return states[n]
	}
	return states[loop.Project(n)]
}
