// Package level parses the plain-text Hexcells level format into structured
// level descriptions.
//
// What:
//
//   - Parse reads a whole file (one or more concatenated levels) and returns
//     an ordered slice of Description values.
//   - A level is the literal header "Hexcells level v1", a title line, an
//     author line, at least one blank line, then a grid block of fixed-width
//     rows built from 2-character cell tokens.
//   - Tokens: ".." empty slot; "x"/"X" hidden/revealed mine and "o"/"O"
//     hidden/revealed empty cell, each suffixed '.' (no hint), '+' (simple
//     hint) or 'c'/'n' (typed hint); "/", "|", "\" line hints pointing
//     left/down/right, suffixed '+', 'c' or 'n'.
//
// Why:
//
//   - The grid block is positional: row i, column j of the token grid maps
//     directly onto lattice coordinate (j, i) downstream. Keeping the parse
//     free of lattice knowledge lets the grammar stay a leaf package.
//
// Errors:
//
//   - ErrSyntax: any malformed input. The returned error is always a
//     *SyntaxError carrying the 1-based line and column of the offending
//     text and wrapping ErrSyntax, so callers may use errors.Is or
//     errors.As. A failed level yields no partial result: Parse returns
//     nothing on error.
//
// Complexity: O(len(src)) time, O(levels·rows·cols) memory.
package level
