// Package gridpath finds minimum-cost routes across a weighted 2D grid when
// movement is constrained by run lengths.
//
// Overview:
//
//   - A route is a sequence of orthogonal unit moves. Entering a cell costs
//     that cell's weight from a gridgraph.CostMap; the start cell is free.
//   - A route may never reverse. It must keep going straight for at least
//     MinRun moves before it may turn or stop, and it may not go straight for
//     more than MaxRun moves in a row.
//   - The search is Dijkstra over states (cell, heading, run length). Folding
//     heading and run length into the state is what lets the visited set be
//     pruned correctly under the run-length rules.
//
// The first move may go in any of the four directions. The synthetic start
// state carries no heading and behaves as if a full run of MaxRun had just
// finished.
//
// Complexity:
//
//   - States:  S = W·H·4·MaxRun.
//   - Time:    O(S log S); each state is finalised once and has at most three successors.
//   - Space:   O(S) for the visited set, distance map and heap.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidConfiguration: nil cost map, MinRun < 1 or MaxRun < MinRun.
//     Returned by New; no search is attempted.
//   - ErrOutOfBounds: start or goal outside the grid. Returned before searching.
//   - ErrUnreachable: the frontier emptied before the goal was entered with a
//     run of at least MinRun. This is an expected outcome for disconnected or
//     too-small grids, not a defect.
//
// API reference:
//
//	pf, err := gridpath.New(costs, gridpath.WithMinRun(4), gridpath.WithMaxRun(10))
//	cost, err := pf.Solve(start, goal)
//	res, err := pf.SolvePath(start, goal) // also returns the route
//
// Thread safety:
//
//   - A Pathfinder holds only its immutable configuration and the read-only
//     cost map. Every Solve call owns its own frontier and visited set, so
//     concurrent calls on one Pathfinder are safe.
package gridpath
