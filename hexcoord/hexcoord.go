package hexcoord

// PixelRowStep is the vertical distance between adjacent lattice rows in the
// display plane, √3/2 for unit-radius pointy-top hexagons.
const PixelRowStep = 0.866

// Coord is a position on the hexagonal lattice in doubled-y coordinates.
// Equality and hashing are structural; Coord is usable as a map key.
type Coord struct {
	X, Y int
}

// neighborOffsets lists the 6 adjacency deltas in clockwise order starting
// at the top. Precomputed once, shared by all traversals.
var neighborOffsets = [6]Coord{
	{0, -2},  // top
	{1, -1},  // upper right
	{1, 1},   // lower right
	{0, 2},   // bottom
	{-1, 1},  // lower left
	{-1, -1}, // upper left
}

// extendedOffsets lists the 18 two-step walk deltas: for each of the 6
// directions, the straight continuation and the two 60° bends. Every entry
// lies at lattice distance exactly 2; none coincides with a direct neighbor.
// The six bend targets are each reached by two distinct walks and therefore
// appear twice, which gives them double weight in density counts.
var extendedOffsets = buildExtendedOffsets()

func buildExtendedOffsets() [18]Coord {
	var out [18]Coord
	n := 0
	for i, d := range neighborOffsets {
		// Second steps limited to the same or an adjacent direction keep
		// every result at distance two (a ±120° turn would fall back onto
		// a direct neighbor, a 180° turn onto the origin).
		for _, j := range [3]int{i, (i + 1) % 6, (i + 5) % 6} {
			out[n] = Coord{d.X + neighborOffsets[j].X, d.Y + neighborOffsets[j].Y}
			n++
		}
	}
	return out
}

// Pixel projects the coordinate onto the 2D display plane: (1.5·X, 0.866·Y).
// Adjacent cells land exactly one hexagon apart. Complexity: O(1).
func (c Coord) Pixel() (x, y float64) {
	return 1.5 * float64(c.X), PixelRowStep * float64(c.Y)
}

// Translate returns the coordinate shifted by (dx, dy). Complexity: O(1).
func (c Coord) Translate(dx, dy int) Coord {
	return Coord{c.X + dx, c.Y + dy}
}

// Neighbors returns the 6 adjacent coordinates in clockwise order starting
// at the top. The slice is freshly allocated; callers may retain or mutate
// it freely. Complexity: O(1).
func (c Coord) Neighbors() []Coord {
	out := make([]Coord, len(neighborOffsets))
	for i, d := range neighborOffsets {
		out[i] = Coord{c.X + d.X, c.Y + d.Y}
	}
	return out
}

// ExtendedNeighbors returns the 18 coordinates reached by two-step walks
// from c, in a fixed order. All lie at lattice distance exactly 2 and none
// is a direct neighbor; the six off-axis cells occur twice (see
// extendedOffsets). The slice is freshly allocated. Complexity: O(1).
func (c Coord) ExtendedNeighbors() []Coord {
	out := make([]Coord, len(extendedOffsets))
	for i, d := range extendedOffsets {
		out[i] = Coord{c.X + d.X, c.Y + d.Y}
	}
	return out
}
