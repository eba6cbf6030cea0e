package viewport

import (
	"errors"
	"math"

	"github.com/katalvlaran/hexcells/board"
)

// Sentinel errors for viewport operations.
var (
	// ErrEmptyBoard indicates bounds were requested for a board without
	// entities; the bounding box is undefined.
	ErrEmptyBoard = errors.New("viewport: board has no entities to bound")

	// ErrBadFrame indicates a frame with non-positive width or height.
	ErrBadFrame = errors.New("viewport: frame dimensions must be positive")
)

// horizontalMargin and verticalMargin widen the fitted bounding box so the
// outermost hexagons are fully inside the frame: one cell width, and √3 (one
// full row pitch) vertically.
const horizontalMargin = 2.0

var verticalMargin = math.Sqrt(3)

// Vec is a point or displacement in the display plane.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns s·v.
func (v Vec) Scale(s float64) Vec { return Vec{s * v.X, s * v.Y} }

// Interval accumulates the minimum and maximum of a value stream. The zero
// value is empty; Length and Center require at least one Add.
type Interval struct {
	min, max float64
	defined  bool
}

// Add folds one value into the interval. Complexity: O(1).
func (iv *Interval) Add(v float64) {
	if !iv.defined {
		iv.min, iv.max, iv.defined = v, v, true
		return
	}
	if v < iv.min {
		iv.min = v
	}
	if v > iv.max {
		iv.max = v
	}
}

// Defined reports whether any value has been added.
func (iv Interval) Defined() bool { return iv.defined }

// Length returns max-min. Panics when the interval is empty.
func (iv Interval) Length() float64 {
	iv.mustBeDefined()
	return iv.max - iv.min
}

// Center returns (max+min)/2. Panics when the interval is empty.
func (iv Interval) Center() float64 {
	iv.mustBeDefined()
	return (iv.max + iv.min) / 2
}

func (iv Interval) mustBeDefined() {
	if !iv.defined {
		panic("viewport: Length/Center on empty Interval")
	}
}

// Transform is the affine map p ↦ Scale·p + Offset.
type Transform struct {
	Scale  float64
	Offset Vec
}

// Identity returns the neutral transform.
func Identity() Transform { return Transform{Scale: 1} }

// Apply maps a point through the transform. Complexity: O(1).
func (t Transform) Apply(p Vec) Vec {
	return p.Scale(t.Scale).Add(t.Offset)
}

// After returns the composition "first apply s, then t":
// scale = t.Scale·s.Scale, offset = t.Offset + t.Scale·s.Offset.
func (t Transform) After(s Transform) Transform {
	return Transform{
		Scale:  t.Scale * s.Scale,
		Offset: t.Offset.Add(s.Offset.Scale(t.Scale)),
	}
}

// WithFixPoint returns the transform with the same scale whose application
// leaves p unchanged: offset = p - scale·p. Used to anchor a zoom step on
// the cursor instead of the origin.
func (t Transform) WithFixPoint(p Vec) Transform {
	return Transform{Scale: t.Scale, Offset: p.Sub(p.Scale(t.Scale))}
}

// BoundingBox folds every entity's projected position into x and y
// intervals. Line hints are shifted by their per-direction nudge before
// folding. Returns ErrEmptyBoard for a board without entities.
// Complexity: O(n).
func BoundingBox(b *board.Board) (bx, by Interval, err error) {
	for _, c := range b.Coords() {
		e, ok := b.Get(c)
		if !ok {
			continue
		}
		x, y := c.Pixel()
		if lh, isLine := e.(*board.LineHint); isLine {
			fx, fy := lh.Dir.Nudge()
			x += fx
			y += fy
		}
		bx.Add(x)
		by.Add(y)
	}
	if !bx.Defined() {
		return Interval{}, Interval{}, ErrEmptyBoard
	}
	return bx, by, nil
}

// FitIntoFrame computes the transform that scales the board's bounding box
// (plus margins) to fit a w×h frame and centers it. Complexity: O(n).
func FitIntoFrame(b *board.Board, w, h float64) (Transform, error) {
	if w <= 0 || h <= 0 {
		return Transform{}, ErrBadFrame
	}
	bx, by, err := BoundingBox(b)
	if err != nil {
		return Transform{}, err
	}
	scale := math.Min(
		w/(bx.Length()+horizontalMargin),
		h/(by.Length()+verticalMargin),
	)
	center := Vec{bx.Center(), by.Center()}
	return Transform{
		Scale:  scale,
		Offset: Vec{w / 2, h / 2}.Sub(center.Scale(scale)),
	}, nil
}
