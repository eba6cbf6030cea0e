// Package viewport maps board coordinates into a display frame and keeps an
// exact algebra for accumulating zoom and pan gestures.
//
// What:
//
//   - Interval accumulates a min/max range one value at a time; Length and
//     Center are defined only after the first Add.
//   - BoundingBox folds every entity's projected pixel position into an x
//     and a y Interval; line hints are nudged by a small per-direction
//     offset first so their visual margin is covered.
//   - Transform is the affine map p ↦ scale·p + offset. After composes two
//     transforms, WithFixPoint re-anchors one around an invariant point.
//   - FitIntoFrame derives the transform that centers a board's bounding
//     box inside a width×height frame with a one-hexagon margin.
//   - Camera owns the per-session transform state: the fit baseline, an
//     integer zoom level and accumulated panning. Absolute scale is always
//     recomputed as fit·base^level, never by repeated float multiplication,
//     so long gesture chains cannot drift.
//
// Why:
//
//   - The renderer consumes one Transform per frame and never needs lattice
//     details; the model never needs pixels. The algebra lives between.
//
// Errors:
//
//   - ErrEmptyBoard: bounding or fitting a board with no entities.
//   - ErrBadFrame: a non-positive frame dimension.
//
// Querying Length or Center on an Interval before any Add is a programmer
// error and panics.
//
// Complexity: BoundingBox O(n); all transform operations O(1).
package viewport
