package bridge_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/glasseam/bridge"
	"github.com/katalvlaran/glasseam/grid"
	"github.com/katalvlaran/glasseam/gridbuilder"
)

// ExampleBridge bridges two rooms across a 3-cell wall.
// Scenario:
//
//   - Field 13×5: two 5×5 floor rooms, wall columns 5..7 blocked
//   - Spawn in the left room, threshold 0.6 (one room alone covers 0.5)
//   - Expect one horizontal tunnel of cost 3 through the wall
//
// Complexity of the full pass on this fixture: dominated by stage 2,
// O(pairs × perimeter × line length).
func ExampleBridge() {
	g, _ := gridbuilder.WallStrip(5, 5, 3)

	res, _ := bridge.Bridge(g,
		bridge.WithSpawn(grid.Pt(2, 2)),
		bridge.WithCoverageThreshold(0.6))

	for _, seg := range res.Segments {
		fmt.Printf("tunnel %d-%d cost %d: (%d,%d)->(%d,%d)\n",
			seg.FromRegion, seg.ToRegion, seg.Cost,
			seg.FromPoint.X, seg.FromPoint.Y, seg.ToPoint.X, seg.ToPoint.Y)
	}
	fmt.Printf("coverage %.2f met %v\n", res.Coverage, res.ThresholdMet)

	// Output:
	// tunnel 0-1 cost 3: (4,2)->(8,2)
	// coverage 1.00 met true
}

// ExampleLoadOptions reads pipeline parameters from YAML and runs the same
// two-room fixture with them.
func ExampleLoadOptions() {
	doc := `
coverage_threshold: 0.6
spawn: {x: 2, y: 2}
`
	opts, _ := bridge.LoadOptions(strings.NewReader(doc))

	g, _ := gridbuilder.WallStrip(5, 5, 3)
	res, _ := bridge.Bridge(g, opts...)
	fmt.Printf("segments %d coverage %.2f\n", len(res.Segments), res.Coverage)

	// Output:
	// segments 1 coverage 1.00
}
