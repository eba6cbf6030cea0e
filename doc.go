// Package hexcells is the model and geometry core of a hexagonal-grid
// minesweeper puzzle: compact level text in, captioned sparse hex boards
// and drift-free viewport transforms out.
//
// 🚀 What is hexcells?
//
//	A pure-Go puzzle core that brings together:
//		• Level grammar: the "Hexcells level v1" text format, parsed with
//		  position-bearing errors
//		• Hex lattice: doubled-y coordinates, 6-neighbor topology and the
//		  18-step extended density neighborhood
//		• Board model: a closed two-variant entity sum (occupied cell /
//		  line hint) with a strict Hidden → Revealed state machine
//		• Hint engine: contiguous-vs-disjoint group classification from a
//		  single clockwise neighbor scan, plus infinite line-hint walks
//		• Viewport: bounding-box fitting and a composable affine-transform
//		  algebra for zoom-at-cursor and drag-to-pan without float drift
//
// ✨ Why choose hexcells?
//
//   - Renderer-agnostic – the core exposes data and transforms only; color,
//     input capture and widgets live entirely outside
//   - Deterministic – captions depend on mine placement alone, annotation
//     is idempotent and parallelizable
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized per concern:
//
//	level/    — level-file grammar and parse
//	hexcoord/ — lattice coordinates, neighbors, pixel projection
//	board/    — sparse entity grid and reveal state machine
//	hint/     — caption derivation for cells and line hints
//	viewport/ — bounding boxes, transform algebra, camera session
//	game/     — one-level-at-a-time session ownership
//
// Quick ASCII example of a level file:
//
//	Hexcells level v1
//	My Level
//	Author
//
//	O+..On..
//	..x...o.
//
// Dive into the package docs for grammar details, the hint rules and the
// transform laws.
//
//	go get github.com/katalvlaran/hexcells
package hexcells
