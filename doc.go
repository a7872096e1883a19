// Package lvlgrid collects the grid and interval algorithms behind a set of
// puzzle solvers. The root package holds no code; everything lives in the
// subpackages.
//
// 🚀 What is in lvlgrid?
//
//	• Constrained shortest paths: Dijkstra over (cell, heading, run) states
//	• Beam tracing through mirror and splitter grids
//	• Pipe-maze loop tracing with per-tile adjacency rules
//	• Polygon area: shoelace formula and Pick's theorem
//	• Memoised pattern counting for damaged-spring records
//	• Cycle detection by state hashing, with projection to step N
//	• Half-open integer ranges and piecewise range remapping
//	• Rule workflows with tagged outcomes and block-wise counting
//
// Layout:
//
//	direction/   the four unit headings, reflections, letter and hex parsing
//	gridgraph/   Cell, Bounds, read-only CostMap and tile Grid parsing
//	gridpath/    minimum/maximum run-length shortest path (the crucible)
//	beam/        energised-cell counting, best edge entry
//	pipes/       pipe-maze loop tracing, farthest point, enclosed tiles
//	polygon/     doubled area, interior points, dig plans
//	springs/     arrangement counting, unfolding
//	cycle/       generic loop detection (tailscale deephash keys)
//	platform/    rolling rocks, spin cycles, north load
//	interval/    Range[T] intersect, split, shift
//	almanac/     seed-to-location map chains over points and ranges
//	workflow/    part sorting rules, accepted rating volume
//	cmd/lvlgrid/ driver that reads an input file and prints both answers
//
// Quick ASCII example of a crucible route (min run 1, max run 3):
//
//	S→→→
//	···↓
//	···↓
//	···G
//
// Every package reports failures through sentinel errors wrapped with
// fmt.Errorf("%w: ..."), so callers test them with errors.Is.
package lvlgrid
