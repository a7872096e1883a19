// Package gridgraph treats a rectangular block of text as an implicit graph
// whose vertices are cells and whose edges are single orthogonal steps.
//
// What:
//
//   - Cell is a (Row, Col) pair; Step moves it one unit in a direction.
//   - CostMap is a read-only grid of non-negative integer weights, typically
//     parsed from rows of single digits with ParseCostMap.
//   - Grid is a read-only grid of bytes for puzzles whose tiles are symbols
//     (mirrors, rocks, splitters), parsed with ParseGrid.
//
// Why:
//
//   - Search algorithms (gridpath, beam) need bounds checks, weights and
//     compact row-major indices without building an explicit edge list.
//
// Complexity:
//
//   - NewCostMap, ParseCostMap, ParseGrid: O(W×H) time and memory (deep copy).
//   - InBounds, Weight, At, Index, CellAt: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeWeight: a weight below zero was supplied.
//   - ErrInvalidDigit: a cost-map character is not 0..9.
package gridgraph
