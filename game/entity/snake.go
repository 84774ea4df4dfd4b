package entity

import (
	"gridsnake/game/types"
)

// Snake is the player's body, head first, plus the heading it travels.
type Snake struct {
	body    []types.Point
	heading types.Direction // applied on the last advance
	pending types.Direction // applied on the next advance
	grow    bool
	cause   types.CollisionType // fatal once the snake has died
}

func NewSnake(center types.Point) *Snake {
	s := &Snake{}
	s.Reset(center)
	return s
}

// Restore builds a live snake from a body, head first, that last moved
// along heading.
func Restore(heading types.Direction, body ...types.Point) *Snake {
	s := &Snake{
		body:    append([]types.Point(nil), body...),
		heading: heading,
		pending: heading,
	}
	if len(s.body) == 0 {
		s.body = []types.Point{{}}
	}
	return s
}

// Reset brings the snake back to life as a single cell heading right.
func (s *Snake) Reset(center types.Point) {
	s.body = []types.Point{center}
	s.heading = types.Right
	s.pending = types.Right
	s.grow = false
	s.cause = types.NoCollision
}

// SetHeading queues d for the next advance. A turn straight back against
// the heading of the last advance is dropped, even if another turn has
// been queued since.
func (s *Snake) SetHeading(d types.Direction) bool {
	if !d.Valid() || d == s.heading.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// RequestGrowth keeps the tail on the next successful advance.
func (s *Snake) RequestGrowth() {
	s.grow = true
}

// Advance moves the head one cell. On a fatal collision the body is left
// untouched and the snake is marked dead. A dead snake stays put and keeps
// reporting the collision that killed it.
//
// Entering the cell the tail currently occupies is fatal even when the
// tail would be vacated by the same move.
func (s *Snake) Advance(grid types.Grid, policy types.BoundaryPolicy, obstacles Obstacles) types.CollisionType {
	if s.cause.Fatal() {
		return s.cause
	}
	s.heading = s.pending

	next, ok := grid.Step(s.Head(), s.heading, policy)
	collision := types.NoCollision
	switch {
	case !ok:
		collision = types.BorderCollision
	case policy == types.Bounded && obstacles != nil && obstacles.Contains(next):
		collision = types.ObstacleCollision
	case s.hitsBody(next):
		collision = types.SelfCollision
	}
	if collision.Fatal() {
		s.cause = collision
		return collision
	}

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = next
	if s.grow {
		s.grow = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	return types.NoCollision
}

func (s *Snake) hitsBody(p types.Point) bool {
	for _, part := range s.body[1:] {
		if part == p {
			return true
		}
	}
	return false
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Tail() types.Point {
	return s.body[len(s.body)-1]
}

// Body returns a copy of the cells, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Heading is the direction of the last advance.
func (s *Snake) Heading() types.Direction {
	return s.heading
}

// PendingHeading is the direction the next advance will take.
func (s *Snake) PendingHeading() types.Direction {
	return s.pending
}

func (s *Snake) GrowthPending() bool {
	return s.grow
}

func (s *Snake) Alive() bool {
	return !s.cause.Fatal()
}

// Cause is the collision that killed the snake, or NoCollision while it
// is alive.
func (s *Snake) Cause() types.CollisionType {
	return s.cause
}

func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}
