// Package hint derives the caption of every entity on a board from the raw
// mine placement.
//
// What:
//
//   - Annotate walks a fully built board and writes each entity's Caption
//     exactly once. Captions depend only on mine placement, never on other
//     captions or on reveal state, so the computation is order-independent
//     and idempotent.
//   - Occupied cells: a hintless mine gets the "Error!" sentinel (it is
//     never displayed), a mine with a hint counts mines over the 18-step
//     extended neighborhood, a hintless empty cell shows "?", a simple
//     empty cell shows its direct-neighbor mine count, and a typed empty
//     cell brackets that count by group structure.
//   - The typed classifier makes a single non-wrapping clockwise pass over
//     the 6 neighbors and counts consecutive same-classification pairs;
//     three or more matching pairs classify the mines as one contiguous
//     arc. This is a deliberate heuristic with known blind spots for some
//     6-neighbor arrangements; it is kept exactly as is.
//   - Line hints walk their direction one stride at a time until past the
//     lowest populated row, counting mines and tracking whether they form
//     one run or several via a four-state classifier.
//
// Captions: "n" plain count, "{n}" one contiguous group, "-n-" disjoint
// groups, "?" hint withheld, "Error!" sentinel for hintless mines.
//
// Options:
//
//   - WithWorkers(n): annotate entities across n goroutines. Entities are
//     written by exactly one worker each and all reads target the immutable
//     board shape, so no locking is needed. Panics if n < 1.
//
// Errors:
//
//   - ErrInvariant: a line walk produced a nonzero mine count while its
//     group classifier never left its initial state. This cannot happen on
//     a well-formed board and is reported loudly instead of formatted away.
//
// Complexity: O(n·d) for n entities with d = 6/18 neighbor probes, plus
// O(rows) per line hint.
package hint
