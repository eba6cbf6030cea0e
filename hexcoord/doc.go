// Package hexcoord models positions on a pointy-top hexagonal lattice using
// a doubled-y integer scheme: columns step by 1 in X, vertical neighbors step
// by 2 in Y, and the diagonal neighbors step by (±1,±1). Every valid cell has
// X+Y even.
//
// What:
//
//   - Coord is an immutable, comparable value type, safe as a map key.
//   - Neighbors enumerates the 6 adjacent cells clockwise from the top.
//   - ExtendedNeighbors enumerates the 18 two-step walk targets around a
//     cell (straight, and the two 60° bends per direction), used for mine
//     density hints.
//   - Pixel projects a cell onto the 2D display plane with correctly spaced
//     hexagon centers.
//
// Why:
//
//   - Puzzle boards: adjacency counting, line walks, density neighborhoods.
//   - Rendering: a fixed geometric embedding that the viewport layer can
//     transform without knowing lattice details.
//
// Complexity:
//
//   - Neighbors / ExtendedNeighbors: O(1) time, O(1) output size (6 / 18).
//   - Pixel / Translate: O(1).
//
// The package has no dependencies and performs no allocation beyond the
// returned neighbor slices.
package hexcoord
