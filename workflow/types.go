// Package workflow defines the outcome variants, rules and parts of a
// part-sorting rule system.
package workflow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/interval"
)

// Sentinel errors.
var (
	// ErrMalformed is returned for text that does not parse.
	ErrMalformed = errors.New("workflow: malformed input")
	// ErrUnknownWorkflow is returned when an outcome names a missing workflow.
	ErrUnknownWorkflow = errors.New("workflow: unknown workflow")
	// ErrLoop is returned when redirects revisit a workflow.
	ErrLoop = errors.New("workflow: redirect loop")
)

// Categories lists the rating categories in Part index order.
const Categories = "xmas"

// StartWorkflow is where every part enters the system.
const StartWorkflow = "in"

// Kind tags an Outcome.
type Kind uint8

const (
	// Continue means the rule did not match; try the next one.
	Continue Kind = iota
	// Accept ends evaluation with the part accepted.
	Accept
	// Reject ends evaluation with the part rejected.
	Reject
	// Redirect sends the part to the workflow named by Outcome.Target.
	Redirect
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Continue:
		return "continue"
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case Redirect:
		return "redirect"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Outcome is a tagged variant. Target is set only for Redirect.
type Outcome struct {
	Kind   Kind
	Target string
}

// AcceptOutcome returns the Accept variant.
func AcceptOutcome() Outcome { return Outcome{Kind: Accept} }

// RejectOutcome returns the Reject variant.
func RejectOutcome() Outcome { return Outcome{Kind: Reject} }

// ContinueOutcome returns the Continue variant.
func ContinueOutcome() Outcome { return Outcome{Kind: Continue} }

// RedirectTo returns the Redirect variant for workflow name.
func RedirectTo(name string) Outcome { return Outcome{Kind: Redirect, Target: name} }

// String renders the outcome in input notation.
func (o Outcome) String() string {
	switch o.Kind {
	case Accept:
		return "A"
	case Reject:
		return "R"
	case Redirect:
		return o.Target
	}
	return "->"
}

// Part holds one rating per category, indexed like Categories.
type Part [4]int

// Total returns the sum of all ratings.
func (p Part) Total() int {
	return p[0] + p[1] + p[2] + p[3]
}

// Space is a block of parts: one rating range per category.
type Space [4]interval.Range[int]

// Volume returns how many distinct parts the block holds.
func (s Space) Volume() int {
	v := 1
	for _, r := range s {
		v *= r.Len()
	}
	return v
}

// Empty reports whether any category range is empty.
func (s Space) Empty() bool {
	for _, r := range s {
		if r.Empty() {
			return true
		}
	}
	return false
}

// Rule compares one category against Value and yields Then on a match.
type Rule struct {
	Category int  // index into Categories
	Op       byte // '<' or '>'
	Value    int
	Then     Outcome
}

// Apply returns Then if p matches, otherwise Continue.
func (r Rule) Apply(p Part) Outcome {
	v := p[r.Category]
	if (r.Op == '<' && v < r.Value) || (r.Op == '>' && v > r.Value) {
		return r.Then
	}
	return ContinueOutcome()
}

// Partition splits s into the block that matches r and the block that does not.
func (r Rule) Partition(s Space) (match, rest Space) {
	match, rest = s, s
	rg := s[r.Category]
	if r.Op == '<' {
		match[r.Category], rest[r.Category] = rg.Split(r.Value)
	} else {
		rest[r.Category], match[r.Category] = rg.Split(r.Value + 1)
	}
	return match, rest
}

// Workflow is an ordered rule list with a fallback outcome.
type Workflow struct {
	Name     string
	Rules    []Rule
	Fallback Outcome
}

// Route returns the first non-Continue outcome for p.
func (w Workflow) Route(p Part) Outcome {
	for _, r := range w.Rules {
		if o := r.Apply(p); o.Kind != Continue {
			return o
		}
	}
	return w.Fallback
}
