package types

import (
	"fmt"
	"sort"
	"strings"
)

// Grid represents the game grid dimensions in cells
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	CellSize        = 20 // Pixels per grid cell
	MinGridCells    = 20 // Smallest playable grid side
	DefaultGridSize = 30
	WallMargin      = 5 // Wall anchors keep this distance from every border
	MinWallLength   = 3
	MaxWallLength   = 6
	DefaultWalls    = 5 // Obstacle segments on a static bounded board
)

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// BoundaryPolicy decides what happens when the snake leaves the board.
type BoundaryPolicy int

const (
	Bounded  BoundaryPolicy = iota // Border ring and obstacles are fatal
	Wrapping                       // Edges wrap, only self collision is fatal
)

func (p BoundaryPolicy) String() string {
	switch p {
	case Bounded:
		return "bounded"
	case Wrapping:
		return "wrapping"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseBoundaryPolicy accepts the names produced by String.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded", "walls":
		return Bounded, nil
	case "wrapping", "wrap":
		return Wrapping, nil
	}
	return Bounded, fmt.Errorf("unknown boundary policy %q", s)
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision       CollisionType = iota
	BorderCollision                 // Left the interior under the bounded policy
	ObstacleCollision               // Entered a wall cell
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case BorderCollision:
		return "border"
	case ObstacleCollision:
		return "obstacle"
	case SelfCollision:
		return "self"
	default:
		return fmt.Sprintf("collision(%d)", int(c))
	}
}

// Fatal reports whether the collision ends the snake's life.
func (c CollisionType) Fatal() bool {
	return c != NoCollision
}

// CellSet is an unordered set of cells.
type CellSet map[Point]struct{}

func NewCellSet(points ...Point) CellSet {
	s := make(CellSet, len(points))
	for _, p := range points {
		s.Add(p)
	}
	return s
}

func (s CellSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s CellSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the cells ordered by row, then column.
func (s CellSet) Sorted() []Point {
	points := make([]Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}
