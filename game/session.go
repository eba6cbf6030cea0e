package game

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hexcells/board"
	"github.com/katalvlaran/hexcells/hexcoord"
	"github.com/katalvlaran/hexcells/hint"
	"github.com/katalvlaran/hexcells/level"
	"github.com/katalvlaran/hexcells/viewport"
)

// Sentinel errors for session operations.
var (
	// ErrNoLevel indicates no level has been loaded yet.
	ErrNoLevel = errors.New("game: no level loaded")

	// ErrNoMoreLevels indicates Advance was called on the last level.
	ErrNoMoreLevels = errors.New("game: no more levels")
)

// Session owns one board and one camera for the currently played level.
type Session struct {
	levels   []level.Description
	idx      int
	b        *board.Board
	cam      *viewport.Camera
	w, h     float64
	mistakes int
}

// NewSession returns an empty session; load a level before playing.
func NewSession() *Session { return &Session{idx: -1} }

// LoadFile parses a level file and loads its first level into a w×h frame.
// Complexity: O(len(src)) plus one annotation pass.
func (s *Session) LoadFile(src string, w, h float64) error {
	levels, err := level.Parse(src)
	if err != nil {
		return err
	}
	s.levels = levels
	s.idx = -1
	s.b = nil
	s.w, s.h = w, h
	return s.Advance()
}

// Advance replaces the board and camera with the next level of the loaded
// file. Returns ErrNoMoreLevels past the end.
func (s *Session) Advance() error {
	if s.idx+1 >= len(s.levels) {
		return ErrNoMoreLevels
	}
	if err := s.load(s.levels[s.idx+1]); err != nil {
		return err
	}
	s.idx++
	return nil
}

// Load plays a single standalone level description in a w×h frame.
func (s *Session) Load(d level.Description, w, h float64) error {
	s.w, s.h = w, h
	if err := s.load(d); err != nil {
		return err
	}
	s.levels = []level.Description{d}
	s.idx = 0
	return nil
}

// load builds, annotates and fits one level, replacing all session state.
func (s *Session) load(d level.Description) error {
	b, err := board.New(d)
	if err != nil {
		return err
	}
	if err = hint.Annotate(b); err != nil {
		return fmt.Errorf("game: annotate: %w", err)
	}
	fit, err := viewport.FitIntoFrame(b, s.w, s.h)
	if err != nil {
		return err
	}
	s.b = b
	if s.cam == nil {
		s.cam = viewport.NewCamera(fit)
	} else {
		s.cam.Reset(fit)
	}
	s.mistakes = 0
	return nil
}

// Board exposes the current board to the renderer, or nil before a load.
func (s *Session) Board() *board.Board { return s.b }

// Camera exposes the current camera, or nil before a load.
func (s *Session) Camera() *viewport.Camera { return s.cam }

// Title returns the current level's title.
func (s *Session) Title() (string, error) {
	if s.b == nil {
		return "", ErrNoLevel
	}
	return s.levels[s.idx].Title, nil
}

// Mistakes returns the number of mistaken reveals on the current level.
func (s *Session) Mistakes() int { return s.mistakes }

// HiddenMines reports the remaining hidden mines for the counter widget.
func (s *Session) HiddenMines() (int, error) {
	if s.b == nil {
		return 0, ErrNoLevel
	}
	return s.b.HiddenMines(), nil
}

// Reveal forwards a reveal request and tallies mistakes. Board errors pass
// through; a RevealMistake outcome increments the mistake counter.
func (s *Session) Reveal(c hexcoord.Coord, believedMine bool) (board.RevealOutcome, error) {
	if s.b == nil {
		return board.RevealMistake, ErrNoLevel
	}
	out, err := s.b.Reveal(c, believedMine)
	if err != nil {
		return out, err
	}
	if out == board.RevealMistake {
		s.mistakes++
	}
	return out, nil
}

// Solved reports whether every cell on the current level is revealed.
func (s *Session) Solved() (bool, error) {
	if s.b == nil {
		return false, ErrNoLevel
	}
	for _, c := range s.b.Coords() {
		e, _ := s.b.Get(c)
		if cell, ok := e.(*board.Cell); ok && !cell.Revealed {
			return false, nil
		}
	}
	return true, nil
}
