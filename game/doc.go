// Package game ties the puzzle core together into one owned session: parse
// a level file, build the board, compute its captions, fit the camera, and
// route reveal requests while tallying player mistakes.
//
// What:
//
//   - Session holds exactly one board and one camera at a time. Loading a
//     level (or advancing to the next one in a multi-level file) replaces
//     both wholesale; there is no shared or ambient level state.
//   - Reveal forwards to the board's state machine and counts mistaken
//     beliefs for the caller's error display.
//
// The session is single-threaded by contract: the surrounding event loop
// serializes all calls.
//
// Errors:
//
//   - ErrNoLevel: a query or mutation before any level was loaded.
//   - ErrNoMoreLevels: Advance past the end of the loaded file.
//   - Parse, board and viewport errors pass through unchanged.
package game
