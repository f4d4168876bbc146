package grid

// Line rasterizes the straight segment from a to b (inclusive of both
// endpoints) using Bresenham's algorithm with integer error accumulation.
//
// The walk always starts at a and steps toward b, so Line(a, b) is
// deterministic for a given argument order; callers that need a canonical
// direction must order the arguments themselves.
//
// Complexity: O(max(|Δx|, |Δy|)) time and memory.
func Line(a, b Point) []Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	pts := make([]Point, 0, max(dx, -dy)+1)
	e := dx + dy
	x, y := a.X, a.Y
	for {
		pts = append(pts, Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}

	return pts
}

// Disc returns the offsets of a filled disc of the given radius around the
// origin, in row-major order. Radius 0 yields the single origin offset.
// Complexity: O(r²) time and memory.
func Disc(r int) []Point {
	if r < 0 {
		r = 0
	}
	var pts []Point
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				pts = append(pts, Point{X: dx, Y: dy})
			}
		}
	}

	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
