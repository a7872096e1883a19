package main

import (
	"github.com/katalvlaran/lvlgrid/almanac"
	"github.com/katalvlaran/lvlgrid/beam"
	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
	"github.com/katalvlaran/lvlgrid/gridpath"
	"github.com/katalvlaran/lvlgrid/pipes"
	"github.com/katalvlaran/lvlgrid/platform"
	"github.com/katalvlaran/lvlgrid/polygon"
	"github.com/katalvlaran/lvlgrid/springs"
	"github.com/katalvlaran/lvlgrid/workflow"
)

type puzzle struct {
	part1, part2 func(input string) (int, error)
}

var puzzles = map[string]puzzle{
	"crucible": {crucible(1, 3), crucible(4, 10)},
	"beam":     {energizeTopLeft, maxEnergized},
	"lagoon":   {lagoon(false), lagoon(true)},
	"springs":  {arrangements(1), arrangements(5)},
	"platform": {northLoad, spunLoad},
	"almanac":  {lowestLocation, lowestLocationForRanges},
	"workflow": {ratingSum, acceptedCombinations},
	"pipes":    {farthestPipe, enclosedTiles},
}

func crucible(minRun, maxRun int) func(string) (int, error) {
	return func(input string) (int, error) {
		costs, err := gridgraph.ParseCostMap(input)
		if err != nil {
			return 0, err
		}
		pf, err := gridpath.New(costs, gridpath.WithMinRun(minRun), gridpath.WithMaxRun(maxRun))
		if err != nil {
			return 0, err
		}
		goal := gridgraph.Cell{Row: costs.Rows - 1, Col: costs.Cols - 1}
		return pf.Solve(gridgraph.Cell{}, goal)
	}
}

func energizeTopLeft(input string) (int, error) {
	g, err := gridgraph.ParseGrid(input)
	if err != nil {
		return 0, err
	}
	return beam.Energize(g, beam.Beam{Heading: direction.East})
}

func maxEnergized(input string) (int, error) {
	g, err := gridgraph.ParseGrid(input)
	if err != nil {
		return 0, err
	}
	return beam.MaxEnergized(g)
}

func lagoon(fromColor bool) func(string) (int, error) {
	return func(input string) (int, error) {
		plan, err := polygon.ParseDigPlan(input)
		if err != nil {
			return 0, err
		}
		if fromColor {
			if plan, err = polygon.Decode(plan); err != nil {
				return 0, err
			}
		}
		return polygon.LagoonVolume(plan)
	}
}

func arrangements(copies int) func(string) (int, error) {
	return func(input string) (int, error) {
		return springs.Sum(input, copies)
	}
}

func northLoad(input string) (int, error) {
	p, err := platform.Parse(input)
	if err != nil {
		return 0, err
	}
	return p.Tilt(direction.North).NorthLoad(), nil
}

func spunLoad(input string) (int, error) {
	p, err := platform.Parse(input)
	if err != nil {
		return 0, err
	}
	return p.LoadAfterSpins(1_000_000_000), nil
}

func lowestLocation(input string) (int, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}
	return a.LowestLocation()
}

func lowestLocationForRanges(input string) (int, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}
	return a.LowestLocationForRanges()
}

func ratingSum(input string) (int, error) {
	sys, parts, err := workflow.Parse(input)
	if err != nil {
		return 0, err
	}
	return sys.RatingSum(parts)
}

func acceptedCombinations(input string) (int, error) {
	sys, _, err := workflow.Parse(input)
	if err != nil {
		return 0, err
	}
	return sys.AcceptedCombinations(1, 4000)
}

func farthestPipe(input string) (int, error) {
	m, err := pipes.Parse(input)
	if err != nil {
		return 0, err
	}
	return m.Farthest()
}

func enclosedTiles(input string) (int, error) {
	m, err := pipes.Parse(input)
	if err != nil {
		return 0, err
	}
	return m.Enclosed()
}
