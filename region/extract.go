package region

import (
	"github.com/katalvlaran/glasseam/grid"
)

// conn4 is the fixed region connectivity: N, E, S, W.
var conn4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Extract labels every passable cell of g with a region index and returns
// the labeling plus the surviving regions.
//
// Behavior:
//  1. Scan cells in row-major order; each unlabeled passable cell seeds a
//     flood fill over 4-connectivity using an explicit slice queue (BFS),
//     never recursion, so arbitrarily large grids cannot blow the stack.
//  2. Compute each region's centroid as the arithmetic mean of its cells.
//  3. Drop regions with size < MinAreaRatio × totalPassable: their cells are
//     relabeled NoRegion (the grid itself is untouched) and survivors are
//     renumbered densely in discovery order.
//  4. Trace each survivor's ordered outer perimeter (Moore-neighbor walk).
//
// An all-blocked grid yields zero regions and a valid labeling — not an
// error. Side effects: none; g is only read.
//
// Complexity: O(W×H×4) time, O(W×H) memory.
func Extract(g grid.Grid, opts ...Option) (*Labeling, []Region, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if g == nil {
		return nil, nil, ErrNilGrid
	}

	w, h := g.Width(), g.Height()
	lab := &Labeling{Width: w, Height: h, Labels: make([]int, w*h)}
	for i := range lab.Labels {
		lab.Labels[i] = NoRegion
	}

	// 2) Flood fill every passable component in row-major discovery order.
	var raw []Region
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.IsPassable(x, y) || lab.Labels[y*w+x] != NoRegion {
				continue
			}
			id := len(raw)
			lab.Labels[y*w+x] = id
			queue := []grid.Point{{X: x, Y: y}}
			var cells []grid.Point
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				cells = append(cells, u)
				for _, d := range conn4 {
					vx, vy := u.X+d[0], u.Y+d[1]
					if vx < 0 || vx >= w || vy < 0 || vy >= h {
						continue
					}
					if !g.IsPassable(vx, vy) || lab.Labels[vy*w+vx] != NoRegion {
						continue
					}
					lab.Labels[vy*w+vx] = id
					queue = append(queue, grid.Point{X: vx, Y: vy})
				}
			}
			raw = append(raw, Region{ID: id, Cells: cells, Size: len(cells)})
		}
	}

	// 3) Total passable area counts every labeled cell, dropped or not.
	for _, r := range raw {
		lab.TotalPassable += r.Size
	}

	// 4) Apply the minimum-area filter and renumber survivors densely.
	minArea := cfg.MinAreaRatio * float64(lab.TotalPassable)
	remap := make([]int, len(raw)) // old ID → new ID or NoRegion
	regions := make([]Region, 0, len(raw))
	for i := range raw {
		if float64(raw[i].Size) < minArea {
			remap[i] = NoRegion
			continue
		}
		r := raw[i]
		r.ID = len(regions)
		r.Centroid = centroid(r.Cells)
		r.Weight = float64(r.Size) / float64(lab.TotalPassable)
		remap[i] = r.ID
		regions = append(regions, r)
	}
	for i, l := range lab.Labels {
		if l != NoRegion {
			lab.Labels[i] = remap[l]
		}
	}

	// 5) Trace ordered perimeters for the survivors.
	for i := range regions {
		regions[i].Perimeter = tracePerimeter(lab, regions[i].ID, regions[i].Cells)
	}

	return lab, regions, nil
}

// centroid returns the arithmetic mean coordinate of cells.
// Complexity: O(n).
func centroid(cells []grid.Point) grid.FPoint {
	var sx, sy float64
	for _, c := range cells {
		sx += float64(c.X)
		sy += float64(c.Y)
	}
	n := float64(len(cells))

	return grid.FPoint{X: sx / n, Y: sy / n}
}
