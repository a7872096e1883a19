// Command lvlgrid solves one puzzle input file and prints both answers.
//
// Usage:
//
//	lvlgrid -puzzle crucible -input day17.txt
//	lvlgrid -puzzle springs -input day12.txt -part 2
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

var (
	flagPuzzle = flag.String("puzzle", "", "puzzle to solve: "+strings.Join(puzzleNames(), ", "))
	flagInput  = flag.String("input", "", "path to the puzzle input")
	flagPart   = flag.String("part", "", "part to run (1 or 2); empty runs both")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvlgrid: ")
	flag.Parse()

	p, ok := puzzles[*flagPuzzle]
	if !ok {
		log.Fatalf("unknown puzzle %q; want one of %s", *flagPuzzle, strings.Join(puzzleNames(), ", "))
	}
	if *flagInput == "" {
		log.Fatal("-input is required")
	}
	raw, err := os.ReadFile(*flagInput)
	if err != nil {
		log.Fatal(err)
	}

	for i, part := range []func(string) (int, error){p.part1, p.part2} {
		name := fmt.Sprint(i + 1)
		if *flagPart != "" && *flagPart != name {
			continue
		}
		v, err := part(string(raw))
		if err != nil {
			log.Fatalf("%s part %s: %v", *flagPuzzle, name, err)
		}
		fmt.Printf("part %s: %d\n", name, v)
	}
}

func puzzleNames() []string {
	names := maps.Keys(puzzles)
	slices.Sort(names)
	return names
}
