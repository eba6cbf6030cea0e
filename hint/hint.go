package hint

import (
	"errors"
	"strconv"
	"sync"

	"github.com/katalvlaran/hexcells/board"
	"github.com/katalvlaran/hexcells/hexcoord"
)

// ErrInvariant indicates a line walk counted mines without ever entering a
// mine group. Impossible on a well-formed board; never format it away.
var ErrInvariant = errors.New("hint: nonzero mine count with no group entered")

// ErrorCaption is the sentinel written to hintless mines. Such cells are
// never displayed; the sentinel keeps the invariant observable in tests.
const ErrorCaption = "Error!"

// WithheldCaption is shown on empty cells that carry no hint.
const WithheldCaption = "?"

// contiguousPairThreshold classifies a typed cell's neighbor arrangement:
// a single contiguous mine arc among 6 clockwise-scanned positions yields
// at least this many consecutive same-classification pairs in a
// non-wrapping scan, two or more disjoint arcs yield fewer. The scan does
// not wrap, so an arc spanning the scan seam is under-counted; 3 is the
// floor that every rotation of a single arc still reaches. Heuristic, kept
// exactly as is.
const contiguousPairThreshold = 3

// line walk group states.
const (
	stInitial = iota
	stFirstGroup
	stFirstGroupOver
	stDisjoint
)

// Annotate writes the caption of every entity on b, exactly once per call.
// Captions read only the immutable mine placement, so Annotate is
// idempotent and safe to re-run. Complexity: O(n·d + lines·rows).
func Annotate(b *board.Board, opts ...Option) error {
	o := gatherOptions(opts...)
	coords := b.Coords()

	if o.workers == 1 || len(coords) < 2 {
		return annotateRange(b, coords)
	}

	chunk := (len(coords) + o.workers - 1) / o.workers
	errs := make([]error, o.workers)
	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		lo := w * chunk
		if lo >= len(coords) {
			break
		}
		hi := lo + chunk
		if hi > len(coords) {
			hi = len(coords)
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			errs[w] = annotateRange(b, coords[lo:hi])
		}(w, lo, hi)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// annotateRange captions the entities at the given coordinates.
func annotateRange(b *board.Board, coords []hexcoord.Coord) error {
	for _, c := range coords {
		e, ok := b.Get(c)
		if !ok {
			continue
		}
		switch e := e.(type) {
		case *board.Cell:
			e.Caption = cellCaption(b, c, e)
		case *board.LineHint:
			caption, err := lineCaption(b, c, e)
			if err != nil {
				return err
			}
			e.Caption = caption
		}
	}
	return nil
}

// cellCaption derives an occupied cell's caption from its neighborhood.
func cellCaption(b *board.Board, c hexcoord.Coord, cell *board.Cell) string {
	if cell.Mine {
		if cell.Hint == board.HintNone {
			return ErrorCaption
		}
		// Density hint: mines among the 18 two-step walk targets. The six
		// off-axis cells occur twice in that enumeration and weigh double.
		n := 0
		for _, p := range c.ExtendedNeighbors() {
			if mineAt(b, p) {
				n++
			}
		}
		return strconv.Itoa(n)
	}

	switch cell.Hint {
	case board.HintNone:
		return WithheldCaption
	case board.HintSimple:
		n := 0
		for _, p := range c.Neighbors() {
			if mineAt(b, p) {
				n++
			}
		}
		return strconv.Itoa(n)
	default:
		return typedCaption(b, c)
	}
}

// typedCaption counts neighbor mines and classifies their arrangement with
// a single non-wrapping clockwise pass.
func typedCaption(b *board.Board, c hexcoord.Coord) string {
	var flags [6]bool
	n := 0
	for i, p := range c.Neighbors() {
		if mineAt(b, p) {
			flags[i] = true
			n++
		}
	}
	pairs := 0
	for i := 0; i+1 < len(flags); i++ {
		if flags[i] == flags[i+1] {
			pairs++
		}
	}
	if pairs >= contiguousPairThreshold {
		return "{" + strconv.Itoa(n) + "}"
	}
	return "-" + strconv.Itoa(n) + "-"
}

// lineCaption walks the infinite line starting one stride from c and
// summarizes the mines found along it.
func lineCaption(b *board.Board, c hexcoord.Coord, lh *board.LineHint) (string, error) {
	dx, dy := lh.Dir.Step()
	maxY := b.MaxY()

	count := 0
	state := stInitial
	for p := c.Translate(dx, dy); p.Y <= maxY; p = p.Translate(dx, dy) {
		e, ok := b.Get(p)
		if !ok {
			continue
		}
		cell, ok := e.(*board.Cell)
		if !ok {
			continue
		}
		if cell.Mine {
			count++
			switch state {
			case stInitial:
				state = stFirstGroup
			case stFirstGroupOver:
				state = stDisjoint
			}
		} else if state == stFirstGroup {
			state = stFirstGroupOver
		}
	}

	if lh.Hint == board.HintSimple {
		return strconv.Itoa(count), nil
	}
	switch state {
	case stInitial:
		if count != 0 {
			return "", ErrInvariant
		}
		return "0", nil
	case stDisjoint:
		return "-" + strconv.Itoa(count) + "-", nil
	default: // stFirstGroup, stFirstGroupOver: one single run
		return "{" + strconv.Itoa(count) + "}", nil
	}
}

// mineAt reports whether an occupied mine cell sits at p.
func mineAt(b *board.Board, p hexcoord.Coord) bool {
	e, ok := b.Get(p)
	if !ok {
		return false
	}
	cell, ok := e.(*board.Cell)
	return ok && cell.Mine
}
