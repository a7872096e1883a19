// Package workflow evaluates a system of named rule workflows that sort
// parts into accepted and rejected, either one part at a time or for whole
// blocks of rating space at once.
//
// Block evaluation splits a Space at every rule threshold, so counting the
// accepted parts among 4000^4 candidates costs one visit per rule path.
package workflow

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// System is a set of workflows keyed by name.
type System struct {
	workflows map[string]Workflow
}

// NewSystem builds a System and checks that every redirect target exists
// and that StartWorkflow is present.
func NewSystem(ws ...Workflow) (*System, error) {
	s := &System{workflows: make(map[string]Workflow, len(ws))}
	for _, w := range ws {
		if _, dup := s.workflows[w.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate workflow %q", ErrMalformed, w.Name)
		}
		s.workflows[w.Name] = w
	}
	if _, ok := s.workflows[StartWorkflow]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkflow, StartWorkflow)
	}
	for _, name := range s.Names() {
		w := s.workflows[name]
		targets := []Outcome{w.Fallback}
		for _, r := range w.Rules {
			targets = append(targets, r.Then)
		}
		for _, o := range targets {
			if o.Kind != Redirect {
				continue
			}
			if _, ok := s.workflows[o.Target]; !ok {
				return nil, fmt.Errorf("%w: %q referenced from %q", ErrUnknownWorkflow, o.Target, name)
			}
		}
	}
	return s, nil
}

// Names returns the workflow names in sorted order.
func (s *System) Names() []string {
	names := maps.Keys(s.workflows)
	slices.Sort(names)
	return names
}

// Workflow returns the workflow called name.
func (s *System) Workflow(name string) (Workflow, bool) {
	w, ok := s.workflows[name]
	return w, ok
}

// Accepts runs p from StartWorkflow until it is accepted or rejected.
func (s *System) Accepts(p Part) (bool, error) {
	name := StartWorkflow
	seen := make(map[string]struct{})
	for {
		if _, ok := seen[name]; ok {
			return false, fmt.Errorf("%w: part %v revisits %q", ErrLoop, p, name)
		}
		seen[name] = struct{}{}

		o := s.workflows[name].Route(p)
		switch o.Kind {
		case Accept:
			return true, nil
		case Reject:
			return false, nil
		case Redirect:
			name = o.Target
		default:
			return false, fmt.Errorf("%w: workflow %q fell through", ErrMalformed, name)
		}
	}
}

// RatingSum adds up the ratings of every accepted part.
func (s *System) RatingSum(parts []Part) (int, error) {
	total := 0
	for _, p := range parts {
		ok, err := s.Accepts(p)
		if err != nil {
			return 0, err
		}
		if ok {
			total += p.Total()
		}
	}
	return total, nil
}

// AcceptedCombinations counts the parts with every rating in [lo, hi]
// that the system accepts.
func (s *System) AcceptedCombinations(lo, hi int) (int, error) {
	var full Space
	for i := range full {
		full[i].Lo, full[i].Hi = lo, hi+1
	}
	return s.accepted(StartWorkflow, full, make(map[string]struct{}))
}

// accepted walks one workflow for a block; path guards against loops.
func (s *System) accepted(name string, space Space, path map[string]struct{}) (int, error) {
	if _, ok := path[name]; ok {
		return 0, fmt.Errorf("%w: at %q", ErrLoop, name)
	}
	path[name] = struct{}{}
	defer delete(path, name)

	w := s.workflows[name]
	total := 0
	for _, r := range w.Rules {
		if space.Empty() {
			return total, nil
		}
		match, rest := r.Partition(space)
		n, err := s.resolve(r.Then, match, path)
		if err != nil {
			return 0, err
		}
		total += n
		space = rest
	}
	n, err := s.resolve(w.Fallback, space, path)
	if err != nil {
		return 0, err
	}
	return total + n, nil
}

func (s *System) resolve(o Outcome, space Space, path map[string]struct{}) (int, error) {
	if space.Empty() {
		return 0, nil
	}
	switch o.Kind {
	case Accept:
		return space.Volume(), nil
	case Redirect:
		return s.accepted(o.Target, space, path)
	}
	return 0, nil
}
