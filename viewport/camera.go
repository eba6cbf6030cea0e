package viewport

import "math"

// ZoomBase is the scale factor of a single zoom step.
const ZoomBase = 1.25

// Camera accumulates a viewport session's zoom and pan gestures on top of a
// fit baseline. The absolute scale after any number of steps is always
// fit.Scale·ZoomBase^level, recomputed from the integer level rather than
// multiplied incrementally, so repeated gestures cannot drift.
//
// Camera is not safe for concurrent use; the surrounding event loop
// serializes input.
type Camera struct {
	fit   Transform
	level int
	cur   Transform
}

// NewCamera starts a session at the given fit transform.
func NewCamera(fit Transform) *Camera {
	return &Camera{fit: fit, cur: fit}
}

// Current returns the transform the renderer should apply this frame.
func (c *Camera) Current() Transform { return c.cur }

// Level returns the integer zoom level (0 at fit).
func (c *Camera) Level() int { return c.level }

// Reset discards all accumulated gestures and restarts at a new fit, e.g.
// after a level change or frame resize.
func (c *Camera) Reset(fit Transform) {
	c.fit = fit
	c.level = 0
	c.cur = fit
}

// ZoomAt advances the zoom level by steps (negative zooms out) anchored on
// the cursor position: the point under the cursor stays put. The new
// absolute scale is recomputed from the level counter. Complexity: O(1).
func (c *Camera) ZoomAt(steps int, cursor Vec) {
	c.level += steps
	target := c.fit.Scale * math.Pow(ZoomBase, float64(c.level))
	// One exact corrective step from the current scale to the target scale,
	// fixed at the cursor.
	step := Transform{Scale: target / c.cur.Scale}.WithFixPoint(cursor)
	c.cur = step.After(c.cur)
	// Pin the scale to the recomputed absolute value.
	c.cur.Scale = target
}

// PanBy shifts the view by a display-plane delta. Complexity: O(1).
func (c *Camera) PanBy(delta Vec) {
	c.cur.Offset = c.cur.Offset.Add(delta)
}
