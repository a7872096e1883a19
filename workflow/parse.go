package workflow

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads workflow lines such as "px{a<2006:qkq,m>2090:A,rfg}", a blank
// line, then part lines such as "{x=787,m=2655,a=1222,s=2876}".
// The part section may be absent.
func Parse(text string) (*System, []Part, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\r", "")
	flows, partText, _ := strings.Cut(text, "\n\n")

	var ws []Workflow
	for _, line := range strings.Split(flows, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		w, err := ParseWorkflow(line)
		if err != nil {
			return nil, nil, err
		}
		ws = append(ws, w)
	}
	sys, err := NewSystem(ws...)
	if err != nil {
		return nil, nil, err
	}

	var parts []Part
	for _, line := range strings.Split(partText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p, err := ParsePart(line)
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts, p)
	}
	return sys, parts, nil
}

// ParseWorkflow parses one "name{rule,...,fallback}" line.
func ParseWorkflow(line string) (Workflow, error) {
	name, body, ok := strings.Cut(line, "{")
	if !ok || name == "" || !strings.HasSuffix(body, "}") {
		return Workflow{}, fmt.Errorf("%w: workflow %q", ErrMalformed, line)
	}
	items := strings.Split(strings.TrimSuffix(body, "}"), ",")
	w := Workflow{Name: name}
	for _, item := range items[:len(items)-1] {
		r, err := parseRule(item)
		if err != nil {
			return Workflow{}, fmt.Errorf("%w in %q", err, name)
		}
		w.Rules = append(w.Rules, r)
	}
	fallback := items[len(items)-1]
	if fallback == "" || strings.ContainsAny(fallback, "<>:") {
		return Workflow{}, fmt.Errorf("%w: fallback %q in %q", ErrMalformed, fallback, name)
	}
	w.Fallback = parseOutcome(fallback)
	return w, nil
}

func parseRule(s string) (Rule, error) {
	cond, then, ok := strings.Cut(s, ":")
	if !ok || len(cond) < 3 || then == "" {
		return Rule{}, fmt.Errorf("%w: rule %q", ErrMalformed, s)
	}
	cat := strings.IndexByte(Categories, cond[0])
	if cat < 0 {
		return Rule{}, fmt.Errorf("%w: category %q", ErrMalformed, cond[0])
	}
	op := cond[1]
	if op != '<' && op != '>' {
		return Rule{}, fmt.Errorf("%w: operator %q", ErrMalformed, op)
	}
	v, err := strconv.Atoi(cond[2:])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: value %q", ErrMalformed, cond[2:])
	}
	return Rule{Category: cat, Op: op, Value: v, Then: parseOutcome(then)}, nil
}

func parseOutcome(s string) Outcome {
	switch s {
	case "A":
		return AcceptOutcome()
	case "R":
		return RejectOutcome()
	}
	return RedirectTo(s)
}

// ParsePart parses "{x=787,m=2655,a=1222,s=2876}". Every category must
// appear exactly once.
func ParsePart(line string) (Part, error) {
	body, ok := strings.CutPrefix(line, "{")
	if !ok || !strings.HasSuffix(body, "}") {
		return Part{}, fmt.Errorf("%w: part %q", ErrMalformed, line)
	}
	var p Part
	var set [4]bool
	for _, kv := range strings.Split(strings.TrimSuffix(body, "}"), ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || len(k) != 1 {
			return Part{}, fmt.Errorf("%w: rating %q", ErrMalformed, kv)
		}
		i := strings.IndexByte(Categories, k[0])
		if i < 0 || set[i] {
			return Part{}, fmt.Errorf("%w: category %q", ErrMalformed, k)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Part{}, fmt.Errorf("%w: rating %q", ErrMalformed, kv)
		}
		p[i], set[i] = n, true
	}
	if set != [4]bool{true, true, true, true} {
		return Part{}, fmt.Errorf("%w: part %q lacks a category", ErrMalformed, line)
	}
	return p, nil
}
