// Package board owns the sparse hexagonal puzzle grid built from a parsed
// level description.
//
// What:
//
//   - Entity is a closed sum over two variants: *Cell (an occupied puzzle
//     cell, hidden or revealed, mine or empty) and *LineHint (a passive hint
//     summarizing an infinite diagonal or vertical line).
//   - Board maps hexcoord.Coord to exactly one Entity. The mapping's shape
//     is immutable after construction; the only later mutations are Cell
//     reveals and caption writes by the hint engine.
//   - Reveal implements the per-cell state machine: Hidden → Revealed fires
//     only when the caller's mine belief matches the cell; a mismatch is a
//     normal RevealMistake outcome that leaves the board untouched.
//
// Why:
//
//   - Grid slot (row i, column j) lands at lattice coordinate (j, i): a text
//     row advances the doubled-y axis by one, consistent with the adjacency
//     offsets in hexcoord.
//
// Errors:
//
//   - ErrEmptyLevel: the description contains no non-empty slot.
//   - ErrNoCell: Reveal addressed a coordinate without an occupied cell.
//   - ErrAlreadyRevealed: Reveal addressed a terminal cell; callers must
//     treat this as a bug, not ignore it.
//
// Complexity: construction O(rows·cols); Get O(1) expected; HiddenMines and
// Coords O(n) over entities.
package board
