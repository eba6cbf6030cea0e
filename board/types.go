package board

import "errors"

// Sentinel errors for board operations.
var (
	// ErrEmptyLevel indicates a level description with no occupied slot.
	ErrEmptyLevel = errors.New("board: level has no entities")

	// ErrNoCell indicates a reveal addressed at a coordinate that holds no
	// occupied cell (absent, or a line hint).
	ErrNoCell = errors.New("board: no occupied cell at coordinate")

	// ErrAlreadyRevealed indicates a reveal addressed at a cell that is
	// already in its terminal Revealed state.
	ErrAlreadyRevealed = errors.New("board: cell already revealed")
)

// HintKind selects how a cell's or line hint's caption is derived.
type HintKind uint8

const (
	// HintNone withholds the caption.
	HintNone HintKind = iota
	// HintSimple shows a raw mine count.
	HintSimple
	// HintTyped additionally brackets the count by group structure:
	// {n} for one contiguous group, -n- for disjoint groups.
	HintTyped
)

// Direction is the heading of a line hint.
type Direction uint8

const (
	// DirLeft runs down-left.
	DirLeft Direction = iota
	// DirDown runs straight down.
	DirDown
	// DirRight runs down-right.
	DirRight
)

// Step returns the lattice delta walked per stride along the direction.
func (d Direction) Step() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 1
	case DirRight:
		return 1, 1
	default:
		return 0, 2
	}
}

// Nudge returns the display-plane offset applied to a line hint's projected
// position before bounding-box folding, so the hint's visual footprint is
// covered by the computed bounds.
func (d Direction) Nudge() (fx, fy float64) {
	switch d {
	case DirLeft:
		return -0.5, 0.5
	case DirRight:
		return 0.5, 0.5
	default:
		return 0, 1
	}
}

// String renders the direction for diagnostics.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "down"
	}
}

// Entity is the closed sum of the two things a coordinate can hold.
// Only *Cell and *LineHint implement it; type-switch over both is
// exhaustive.
type Entity interface {
	isEntity()
}

// Cell is an occupied puzzle cell.
type Cell struct {
	// Mine reports whether the cell hides a mine. Fixed at construction.
	Mine bool
	// Revealed is the cell's state-machine state; Revealed is terminal.
	Revealed bool
	// Hint selects the caption rule applied by the hint engine.
	Hint HintKind
	// Caption is written exactly once by the hint engine and read by the
	// renderer. It never feeds back into hint computation.
	Caption string
}

func (*Cell) isEntity() {}

// LineHint is a passive hint summarizing the infinite line of cells that
// starts one step from it along Dir.
type LineHint struct {
	Dir Direction
	// Hint is HintSimple or HintTyped; the grammar permits no hintless
	// line token.
	Hint HintKind
	// Caption is written exactly once by the hint engine.
	Caption string
}

func (*LineHint) isEntity() {}

// RevealOutcome is the normal (non-error) result of a reveal request.
type RevealOutcome uint8

const (
	// RevealOK means the belief matched and the cell is now Revealed.
	RevealOK RevealOutcome = iota
	// RevealMistake means the belief did not match; the cell stays Hidden
	// and the board is unchanged. This is the expected player-error path.
	RevealMistake
)
