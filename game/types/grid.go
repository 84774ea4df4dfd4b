package types

// GridFromWindow converts a window size in pixels to a grid, clamping the
// window so the grid never drops below MinGridCells on either side.
func GridFromWindow(width, height, cellSize int) Grid {
	if cellSize <= 0 {
		cellSize = CellSize
	}
	minPixels := MinGridCells * cellSize
	if width < minPixels {
		width = minPixels
	}
	if height < minPixels {
		height = minPixels
	}
	return Grid{Width: width / cellSize, Height: height / cellSize}
}

// Clamp returns the grid with both sides raised to MinGridCells.
func (g Grid) Clamp() Grid {
	if g.Width < MinGridCells {
		g.Width = MinGridCells
	}
	if g.Height < MinGridCells {
		g.Height = MinGridCells
	}
	return g
}

// Center is the spawn cell of a fresh snake.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether p lies anywhere on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// OnBorder reports whether p belongs to the outermost ring.
func (g Grid) OnBorder(p Point) bool {
	return g.Contains(p) && (p.X == 0 || p.Y == 0 || p.X == g.Width-1 || p.Y == g.Height-1)
}

// InInterior reports whether p is on the grid and off the border ring.
func (g Grid) InInterior(p Point) bool {
	return p.X > 0 && p.X < g.Width-1 && p.Y > 0 && p.Y < g.Height-1
}

// Wrap folds p back onto the grid component-wise.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Playable reports whether the snake may occupy p under the policy,
// ignoring obstacles and its own body.
func (g Grid) Playable(p Point, policy BoundaryPolicy) bool {
	if policy == Wrapping {
		return g.Contains(p)
	}
	return g.InInterior(p)
}

// Step moves p one cell along d. Under Wrapping the result is always on
// the grid; under Bounded ok is false once the result leaves the interior.
func (g Grid) Step(p Point, d Direction, policy BoundaryPolicy) (next Point, ok bool) {
	next = p.Add(d)
	if policy == Wrapping {
		return g.Wrap(next), true
	}
	return next, g.InInterior(next)
}

// Border returns the outer ring cells in row-major order.
func (g Grid) Border() []Point {
	points := make([]Point, 0, 2*g.Width+2*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if g.OnBorder(p) {
				points = append(points, p)
			}
		}
	}
	return points
}

func mod(a, n int) int {
	if n <= 0 {
		return a
	}
	return ((a % n) + n) % n
}
