package polygon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// Sentinel errors for dig plans.
var (
	// ErrMalformedInstruction is returned for dig-plan lines that do not parse.
	ErrMalformedInstruction = errors.New("polygon: malformed dig instruction")

	// ErrOpenTrench is returned when a plan does not lead back to its start.
	ErrOpenTrench = errors.New("polygon: trench does not close")
)

// Instruction digs Steps cells towards Dir. Color is the six hex digits
// that follow '#' in the plan, kept for the swapped decoding.
type Instruction struct {
	Dir   direction.Direction
	Steps int
	Color string
}

// ParseDigPlan parses lines of the form "R 6 (#70c710)".
func ParseDigPlan(text string) ([]Instruction, error) {
	var plan []Instruction
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		in, err := parseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		plan = append(plan, in)
	}
	return plan, nil
}

func parseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 || len(fields[0]) != 1 {
		return Instruction{}, fmt.Errorf("%w: %q", ErrMalformedInstruction, line)
	}
	d, err := direction.FromLetter(rune(fields[0][0]))
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: %v", ErrMalformedInstruction, err)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n <= 0 {
		return Instruction{}, fmt.Errorf("%w: bad step count %q", ErrMalformedInstruction, fields[1])
	}
	color := strings.TrimSuffix(strings.TrimPrefix(fields[2], "(#"), ")")
	if len(color) != 6 {
		return Instruction{}, fmt.Errorf("%w: bad colour %q", ErrMalformedInstruction, fields[2])
	}
	return Instruction{Dir: d, Steps: n, Color: color}, nil
}

// FromColor decodes the swapped instruction hidden in the colour: the first
// five hex digits are the step count and the last one the direction.
func (in Instruction) FromColor() (Instruction, error) {
	if len(in.Color) != 6 {
		return Instruction{}, fmt.Errorf("%w: bad colour %q", ErrMalformedInstruction, in.Color)
	}
	n, err := strconv.ParseInt(in.Color[:5], 16, 64)
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: %v", ErrMalformedInstruction, err)
	}
	d, err := direction.FromHexDigit(rune(in.Color[5]))
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: %v", ErrMalformedInstruction, err)
	}
	return Instruction{Dir: d, Steps: int(n), Color: in.Color}, nil
}

// Decode applies FromColor to every instruction.
func Decode(plan []Instruction) ([]Instruction, error) {
	out := make([]Instruction, len(plan))
	for i, in := range plan {
		d, err := in.FromColor()
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}

// Vertices returns the trench corners, starting at the origin.
func Vertices(plan []Instruction) []gridgraph.Cell {
	out := make([]gridgraph.Cell, 0, len(plan))
	at := gridgraph.Cell{}
	for _, in := range plan {
		out = append(out, at)
		at = at.Move(in.Dir, in.Steps)
	}
	return out
}

// End returns where the digger stands after the whole plan.
func End(plan []Instruction) gridgraph.Cell {
	at := gridgraph.Cell{}
	for _, in := range plan {
		at = at.Move(in.Dir, in.Steps)
	}
	return at
}

// LagoonVolume returns how many cells the trench and its interior cover.
// The plan must end where it started, otherwise ErrOpenTrench.
func LagoonVolume(plan []Instruction) (int, error) {
	if end := End(plan); end != (gridgraph.Cell{}) {
		return 0, fmt.Errorf("%w: plan ends at %v", ErrOpenTrench, end)
	}
	boundary := 0
	for _, in := range plan {
		boundary += in.Steps
	}
	return InteriorPoints(DoubledArea(Vertices(plan)), boundary) + boundary, nil
}
