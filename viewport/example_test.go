// File: viewport/example_test.go
package viewport_test

import (
	"fmt"

	"github.com/katalvlaran/hexcells/board"
	"github.com/katalvlaran/hexcells/level"
	"github.com/katalvlaran/hexcells/viewport"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FitIntoFrame + Camera
////////////////////////////////////////////////////////////////////////////////

// ExampleFitIntoFrame fits a two-cell board into a 100×100 frame, then runs
// a zoom-in/zoom-out gesture pair and shows that the scale lands back on
// the fit baseline exactly.
func ExampleFitIntoFrame() {
	levels, _ := level.Parse("Hexcells level v1\nT\nA\n\no...o.\n")
	b, _ := board.New(levels[0])

	fit, err := viewport.FitIntoFrame(b, 100, 100)
	if err != nil {
		fmt.Println("fit:", err)
		return
	}
	fmt.Printf("fit scale: %.1f\n", fit.Scale)

	cam := viewport.NewCamera(fit)
	cursor := viewport.Vec{X: 50, Y: 50}
	cam.ZoomAt(2, cursor)
	cam.ZoomAt(-2, cursor)
	fmt.Printf("after round trip: %.1f (level %d)\n", cam.Current().Scale, cam.Level())
	// Output:
	// fit scale: 20.0
	// after round trip: 20.0 (level 0)
}
