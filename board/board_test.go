package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hexcells/board"
	"github.com/katalvlaran/hexcells/hexcoord"
	"github.com/katalvlaran/hexcells/level"
)

// mustLevel parses a single level or fails the test.
func mustLevel(t *testing.T, src string) level.Description {
	t.Helper()
	levels, err := level.Parse(src)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	return levels[0]
}

const sample = "Hexcells level v1\n" +
	"Proof of Concept\n" +
	"P. Author\n" +
	"\n" +
	"O+..On..\n" +
	"..x...o.\n" +
	"o+..x...\n" +
	"..O+....\n" +
	"....x...\n" +
	"..x+....\n"

// TestNew_PlacesEntities verifies slot (row i, col j) → coordinate (j, i)
// and that empty slots stay absent.
func TestNew_PlacesEntities(t *testing.T) {
	b, err := board.New(mustLevel(t, sample))
	require.NoError(t, err)
	require.Equal(t, 9, b.Len())
	require.Equal(t, 5, b.MaxY())

	e, ok := b.Get(hexcoord.Coord{X: 0, Y: 0})
	require.True(t, ok)
	cell, ok := e.(*board.Cell)
	require.True(t, ok)
	require.False(t, cell.Mine)
	require.True(t, cell.Revealed)
	require.Equal(t, board.HintSimple, cell.Hint)

	e, ok = b.Get(hexcoord.Coord{X: 1, Y: 1})
	require.True(t, ok)
	cell = e.(*board.Cell)
	require.True(t, cell.Mine)
	require.False(t, cell.Revealed)
	require.Equal(t, board.HintNone, cell.Hint)

	_, ok = b.Get(hexcoord.Coord{X: 1, Y: 0})
	require.False(t, ok)
}

// TestNew_LineHints verifies line tokens become LineHint entities.
func TestNew_LineHints(t *testing.T) {
	b, err := board.New(mustLevel(t, "Hexcells level v1\nT\nA\n\n/+|n\\c..\n"))
	require.NoError(t, err)

	e, _ := b.Get(hexcoord.Coord{X: 0, Y: 0})
	lh, ok := e.(*board.LineHint)
	require.True(t, ok)
	require.Equal(t, board.DirLeft, lh.Dir)
	require.Equal(t, board.HintSimple, lh.Hint)

	e, _ = b.Get(hexcoord.Coord{X: 1, Y: 0})
	lh = e.(*board.LineHint)
	require.Equal(t, board.DirDown, lh.Dir)
	require.Equal(t, board.HintTyped, lh.Hint)

	e, _ = b.Get(hexcoord.Coord{X: 2, Y: 0})
	lh = e.(*board.LineHint)
	require.Equal(t, board.DirRight, lh.Dir)
	require.Equal(t, board.HintTyped, lh.Hint)
}

// TestNew_EmptyLevel rejects a description without entities.
func TestNew_EmptyLevel(t *testing.T) {
	_, err := board.New(mustLevel(t, "Hexcells level v1\nT\nA\n\n....\n"))
	require.ErrorIs(t, err, board.ErrEmptyLevel)
}

// TestHiddenMines counts only hidden mines, recomputed after reveals.
func TestHiddenMines(t *testing.T) {
	b, err := board.New(mustLevel(t, sample))
	require.NoError(t, err)
	require.Equal(t, 4, b.HiddenMines())

	out, err := b.Reveal(hexcoord.Coord{X: 1, Y: 1}, true)
	require.NoError(t, err)
	require.Equal(t, board.RevealOK, out)
	require.Equal(t, 3, b.HiddenMines())
}

// TestCoords_Deterministic verifies stable iteration order.
func TestCoords_Deterministic(t *testing.T) {
	b, err := board.New(mustLevel(t, sample))
	require.NoError(t, err)
	first := b.Coords()
	require.Len(t, first, b.Len())
	require.Equal(t, first, b.Coords())
	require.Equal(t, hexcoord.Coord{X: 0, Y: 0}, first[0])
	require.Equal(t, hexcoord.Coord{X: 1, Y: 5}, first[len(first)-1])
}

// RevealSuite exercises the Hidden → Revealed state machine.
type RevealSuite struct {
	suite.Suite
	b *board.Board
}

func (s *RevealSuite) SetupTest() {
	levels, err := level.Parse("Hexcells level v1\nT\nA\n\no.x.|+\n")
	s.Require().NoError(err)
	s.b, err = board.New(levels[0])
	s.Require().NoError(err)
}

// TestRevealEmptyCell reveals a non-mine with the matching belief.
func (s *RevealSuite) TestRevealEmptyCell() {
	out, err := s.b.Reveal(hexcoord.Coord{X: 0, Y: 0}, false)
	s.Require().NoError(err)
	s.Equal(board.RevealOK, out)

	e, _ := s.b.Get(hexcoord.Coord{X: 0, Y: 0})
	s.True(e.(*board.Cell).Revealed)
}

// TestRevealMistake leaves the board untouched on a wrong belief.
func (s *RevealSuite) TestRevealMistake() {
	out, err := s.b.Reveal(hexcoord.Coord{X: 0, Y: 0}, true)
	s.Require().NoError(err)
	s.Equal(board.RevealMistake, out)

	e, _ := s.b.Get(hexcoord.Coord{X: 0, Y: 0})
	s.False(e.(*board.Cell).Revealed, "mistake must not mutate the cell")
}

// TestRevealMine requires believedMine=true on a mine.
func (s *RevealSuite) TestRevealMine() {
	out, err := s.b.Reveal(hexcoord.Coord{X: 1, Y: 0}, false)
	s.Require().NoError(err)
	s.Equal(board.RevealMistake, out)

	out, err = s.b.Reveal(hexcoord.Coord{X: 1, Y: 0}, true)
	s.Require().NoError(err)
	s.Equal(board.RevealOK, out)
}

// TestRevealTerminal rejects a second reveal loudly.
func (s *RevealSuite) TestRevealTerminal() {
	_, err := s.b.Reveal(hexcoord.Coord{X: 0, Y: 0}, false)
	s.Require().NoError(err)

	_, err = s.b.Reveal(hexcoord.Coord{X: 0, Y: 0}, false)
	s.Require().ErrorIs(err, board.ErrAlreadyRevealed)
}

// TestRevealNoCell rejects absent coordinates and line hints.
func (s *RevealSuite) TestRevealNoCell() {
	_, err := s.b.Reveal(hexcoord.Coord{X: 9, Y: 9}, false)
	s.Require().ErrorIs(err, board.ErrNoCell)

	_, err = s.b.Reveal(hexcoord.Coord{X: 2, Y: 0}, false)
	s.Require().ErrorIs(err, board.ErrNoCell)
}

func TestRevealSuite(t *testing.T) {
	suite.Run(t, new(RevealSuite))
}
