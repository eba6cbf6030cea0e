package board

import (
	"sort"

	"github.com/katalvlaran/hexcells/hexcoord"
	"github.com/katalvlaran/hexcells/level"
)

// Board is the sparse entity grid for one loaded level. The coordinate set
// never changes after New; see package docs for the mutation rules.
type Board struct {
	cells map[hexcoord.Coord]Entity
	maxY  int
}

// New builds a Board from a parsed level description. Slot (row i, column j)
// becomes an entity at coordinate (j, i); empty slots are skipped. Returns
// ErrEmptyLevel when no slot is occupied.
// Complexity: O(rows·cols) time, O(n) memory for n entities.
func New(d level.Description) (*Board, error) {
	b := &Board{cells: make(map[hexcoord.Coord]Entity)}
	for i, row := range d.Rows {
		for j, s := range row {
			e := entityFor(s)
			if e == nil {
				continue
			}
			c := hexcoord.Coord{X: j, Y: i}
			b.cells[c] = e
			if c.Y > b.maxY {
				b.maxY = c.Y
			}
		}
	}
	if len(b.cells) == 0 {
		return nil, ErrEmptyLevel
	}
	return b, nil
}

// entityFor maps one grid token onto its entity, or nil for an empty slot.
func entityFor(s level.Spec) Entity {
	switch s.Kind {
	case level.KindCell:
		return &Cell{
			Mine:     s.Mine,
			Revealed: s.Revealed,
			Hint:     hintKind(s.Hint),
		}
	case level.KindLine:
		return &LineHint{Dir: direction(s.Dir), Hint: hintKind(s.Hint)}
	default:
		return nil
	}
}

func hintKind(h level.Hint) HintKind {
	switch h {
	case level.HintSimple:
		return HintSimple
	case level.HintTyped:
		return HintTyped
	default:
		return HintNone
	}
}

func direction(d level.Dir) Direction {
	switch d {
	case level.DirLeft:
		return DirLeft
	case level.DirRight:
		return DirRight
	default:
		return DirDown
	}
}

// Get returns the entity at c, if any. Complexity: O(1) expected.
func (b *Board) Get(c hexcoord.Coord) (Entity, bool) {
	e, ok := b.cells[c]
	return e, ok
}

// Len returns the number of entities. Complexity: O(1).
func (b *Board) Len() int { return len(b.cells) }

// MaxY returns the largest populated lattice y. Line walks use it as their
// termination bound instead of a magic constant. Complexity: O(1).
func (b *Board) MaxY() int { return b.maxY }

// Coords returns every populated coordinate in deterministic (y, then x)
// order. Complexity: O(n log n).
func (b *Board) Coords() []hexcoord.Coord {
	out := make([]hexcoord.Coord, 0, len(b.cells))
	for c := range b.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// HiddenMines counts mines still hidden. Recomputed on demand, never cached.
// Complexity: O(n).
func (b *Board) HiddenMines() int {
	n := 0
	for _, e := range b.cells {
		if cell, ok := e.(*Cell); ok && cell.Mine && !cell.Revealed {
			n++
		}
	}
	return n
}

// Reveal runs the Hidden → Revealed transition at c. The caller states its
// belief about the cell being a mine; the transition fires only when the
// belief matches, otherwise the board is left untouched and the outcome is
// RevealMistake. ErrNoCell and ErrAlreadyRevealed report caller bugs.
// Complexity: O(1) expected.
func (b *Board) Reveal(c hexcoord.Coord, believedMine bool) (RevealOutcome, error) {
	e, ok := b.cells[c]
	if !ok {
		return RevealMistake, ErrNoCell
	}
	cell, ok := e.(*Cell)
	if !ok {
		return RevealMistake, ErrNoCell
	}
	if cell.Revealed {
		return RevealMistake, ErrAlreadyRevealed
	}
	if believedMine != cell.Mine {
		return RevealMistake, nil
	}
	cell.Revealed = true
	return RevealOK, nil
}
