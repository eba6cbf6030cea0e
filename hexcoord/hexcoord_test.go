package hexcoord_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexcells/hexcoord"
)

// hexDistance computes lattice distance in doubled-y coordinates:
// |dx| column steps plus the extra vertical steps not covered diagonally.
func hexDistance(a, b hexcoord.Coord) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dy <= dx {
		return dx
	}
	return dx + (dy-dx)/2
}

// TestNeighbors_CountAndOrder verifies the 6 adjacency deltas and their
// clockwise-from-top order.
func TestNeighbors_CountAndOrder(t *testing.T) {
	c := hexcoord.Coord{X: 3, Y: 5}
	want := []hexcoord.Coord{
		{X: 3, Y: 3}, {X: 4, Y: 4}, {X: 4, Y: 6},
		{X: 3, Y: 7}, {X: 2, Y: 6}, {X: 2, Y: 4},
	}
	require.Equal(t, want, c.Neighbors())
}

// TestNeighbors_Symmetry checks that adjacency is symmetric: every neighbor
// of c lists c among its own neighbors, and all 6 are distinct.
func TestNeighbors_Symmetry(t *testing.T) {
	cases := []hexcoord.Coord{{}, {X: 1, Y: 1}, {X: -4, Y: 2}, {X: 7, Y: -9}}
	for _, c := range cases {
		ns := c.Neighbors()
		require.Len(t, ns, 6)

		seen := make(map[hexcoord.Coord]bool, 6)
		for _, n := range ns {
			require.False(t, seen[n], "duplicate neighbor %v of %v", n, c)
			seen[n] = true
			require.Equal(t, 1, hexDistance(c, n))

			back := false
			for _, m := range n.Neighbors() {
				if m == c {
					back = true
					break
				}
			}
			require.True(t, back, "neighbor %v of %v does not list it back", n, c)
		}
	}
}

// TestExtendedNeighbors_Properties verifies the density neighborhood: exactly
// 18 coordinates, all at lattice distance exactly 2, none a direct neighbor.
// The enumeration covers 12 distinct cells; the 6 off-axis cells appear twice.
func TestExtendedNeighbors_Properties(t *testing.T) {
	c := hexcoord.Coord{X: 2, Y: 4}
	ext := c.ExtendedNeighbors()
	require.Len(t, ext, 18)

	direct := make(map[hexcoord.Coord]bool, 6)
	for _, n := range c.Neighbors() {
		direct[n] = true
	}

	count := make(map[hexcoord.Coord]int)
	for _, e := range ext {
		require.Equal(t, 2, hexDistance(c, e), "offset %v", e)
		require.False(t, direct[e], "%v is a direct neighbor", e)
		count[e]++
	}
	require.Len(t, count, 12)

	single, double := 0, 0
	for _, n := range count {
		switch n {
		case 1:
			single++
		case 2:
			double++
		default:
			t.Fatalf("unexpected multiplicity %d", n)
		}
	}
	require.Equal(t, 6, single)
	require.Equal(t, 6, double)
}

// TestExtendedNeighbors_Restartable checks the sequence is fresh per call.
func TestExtendedNeighbors_Restartable(t *testing.T) {
	c := hexcoord.Coord{X: 1, Y: 1}
	first := c.ExtendedNeighbors()
	first[0] = hexcoord.Coord{X: 99, Y: 99}
	require.NotEqual(t, first[0], c.ExtendedNeighbors()[0])
}

// TestPixel verifies the fixed geometric embedding (1.5x, 0.866y).
func TestPixel(t *testing.T) {
	cases := []struct {
		in   hexcoord.Coord
		x, y float64
	}{
		{hexcoord.Coord{}, 0, 0},
		{hexcoord.Coord{X: 2, Y: 0}, 3, 0},
		{hexcoord.Coord{X: 0, Y: 2}, 0, 1.732},
		{hexcoord.Coord{X: -1, Y: 1}, -1.5, 0.866},
	}
	for _, tc := range cases {
		x, y := tc.in.Pixel()
		require.InDelta(t, tc.x, x, 1e-12)
		require.InDelta(t, tc.y, y, 1e-12)
	}
}

// TestTranslate verifies pure shifting.
func TestTranslate(t *testing.T) {
	c := hexcoord.Coord{X: 1, Y: -3}
	require.Equal(t, hexcoord.Coord{X: 0, Y: -1}, c.Translate(-1, 2))
	require.Equal(t, hexcoord.Coord{X: 1, Y: -3}, c, "Translate must not mutate")
}
