package level

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Header is the literal first line of every level.
const Header = "Hexcells level v1"

// ErrSyntax indicates malformed level text. Every parse failure wraps it.
var ErrSyntax = errors.New("level: syntax error")

// SyntaxError reports the exact location of malformed level text.
// Line and Col are 1-based; Col is 0 for whole-line errors.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("level: line %d, col %d: %s", e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("level: line %d: %s", e.Line, e.Msg)
}

// Unwrap ties every SyntaxError to the ErrSyntax sentinel.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Hint classifies the hint suffix of a cell token.
type Hint uint8

const (
	// HintNone means no caption is requested ('.').
	HintNone Hint = iota
	// HintSimple requests a plain mine count ('+').
	HintSimple
	// HintTyped requests a count bracketed by group structure ('c' or 'n').
	HintTyped
)

// Dir is the direction a line hint points at.
type Dir uint8

const (
	// DirLeft walks down-left, lattice delta (-1, 1).
	DirLeft Dir = iota
	// DirDown walks straight down, lattice delta (0, 2).
	DirDown
	// DirRight walks down-right, lattice delta (1, 1).
	DirRight
)

// Kind discriminates the three slot variants of a parsed grid.
type Kind uint8

const (
	// KindEmpty is an unoccupied slot ("..").
	KindEmpty Kind = iota
	// KindCell is an occupied puzzle cell.
	KindCell
	// KindLine is a passive line hint.
	KindLine
)

// Spec is one parsed 2-character grid token. The zero value is an empty slot.
type Spec struct {
	Kind     Kind
	Mine     bool // KindCell only
	Revealed bool // KindCell only
	Hint     Hint
	Dir      Dir // KindLine only
}

// Description is one fully parsed level. Rows is rectangular; Rows[i][j]
// describes the slot at grid row i, column j.
type Description struct {
	Title  string
	Author string
	Rows   [][]Spec
}

// Parse reads the full text of a level file and returns its levels in file
// order. On any malformed input it returns (nil, *SyntaxError); no partial
// levels are exposed. Complexity: O(len(src)).
func Parse(src string) ([]Description, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	var out []Description
	i := 0
	for {
		// Skip blank lines separating (or trailing) levels.
		for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			i++
		}
		if i >= len(lines) {
			break
		}
		d, next, err := parseLevel(lines, i)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
		i = next
	}
	if len(out) == 0 {
		return nil, &SyntaxError{Line: 1, Msg: "empty input, expected header " + quote(Header)}
	}
	return out, nil
}

// ParseReader buffers r fully and delegates to Parse.
func ParseReader(r io.Reader) ([]Description, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("level: read: %w", err)
	}
	return Parse(string(b))
}

// parseLevel consumes one level starting at lines[at] (known non-blank) and
// returns the description plus the index of the first unconsumed line.
func parseLevel(lines []string, at int) (Description, int, error) {
	var d Description

	if lines[at] != Header {
		return d, 0, &SyntaxError{Line: at + 1, Msg: "expected header " + quote(Header)}
	}
	if at+2 >= len(lines) {
		return d, 0, &SyntaxError{Line: len(lines), Msg: "missing title or author line"}
	}
	d.Title = lines[at+1]
	d.Author = lines[at+2]

	i := at + 3
	if i >= len(lines) || strings.TrimSpace(lines[i]) != "" {
		return d, 0, &SyntaxError{Line: i + 1, Msg: "expected blank line before grid"}
	}
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i >= len(lines) {
		return d, 0, &SyntaxError{Line: len(lines), Msg: "missing grid block"}
	}

	width := -1
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		row, err := parseRow(lines[i], i+1)
		if err != nil {
			return d, 0, err
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return d, 0, &SyntaxError{
				Line: i + 1,
				Msg:  fmt.Sprintf("ragged grid row: %d tokens, expected %d", len(row), width),
			}
		}
		d.Rows = append(d.Rows, row)
		i++
	}
	return d, i, nil
}

// parseRow splits one grid line into 2-character tokens.
func parseRow(line string, lineNo int) ([]Spec, error) {
	if len(line)%2 != 0 {
		return nil, &SyntaxError{Line: lineNo, Col: len(line), Msg: "odd-length grid row"}
	}
	row := make([]Spec, 0, len(line)/2)
	for j := 0; j < len(line); j += 2 {
		s, err := parseToken(line[j], line[j+1], lineNo, j+1)
		if err != nil {
			return nil, err
		}
		row = append(row, s)
	}
	return row, nil
}

// parseToken decodes a single 2-character cell token at the given position.
func parseToken(a, b byte, line, col int) (Spec, error) {
	bad := func() (Spec, error) {
		return Spec{}, &SyntaxError{
			Line: line, Col: col,
			Msg: fmt.Sprintf("unrecognized cell token %q", string([]byte{a, b})),
		}
	}

	switch a {
	case '.':
		if b != '.' {
			return bad()
		}
		return Spec{Kind: KindEmpty}, nil

	case 'x', 'X', 'o', 'O':
		h, ok := hintSuffix(b, true)
		if !ok {
			return bad()
		}
		return Spec{
			Kind:     KindCell,
			Mine:     a == 'x' || a == 'X',
			Revealed: a == 'X' || a == 'O',
			Hint:     h,
		}, nil

	case '/', '|', '\\':
		h, ok := hintSuffix(b, false)
		if !ok {
			return bad()
		}
		dir := DirDown
		switch a {
		case '/':
			dir = DirLeft
		case '\\':
			dir = DirRight
		}
		return Spec{Kind: KindLine, Hint: h, Dir: dir}, nil
	}
	return bad()
}

// hintSuffix decodes the second token character. Line hints never carry '.'.
func hintSuffix(b byte, allowNone bool) (Hint, bool) {
	switch b {
	case '.':
		if !allowNone {
			return HintNone, false
		}
		return HintNone, true
	case '+':
		return HintSimple, true
	case 'c', 'n':
		return HintTyped, true
	}
	return HintNone, false
}

// quote renders a literal for error messages.
func quote(s string) string { return fmt.Sprintf("%q", s) }
