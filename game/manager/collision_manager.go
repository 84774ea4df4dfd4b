package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionManager owns the board geometry and the boundary policy.
type CollisionManager struct {
	grid   types.Grid
	policy types.BoundaryPolicy
}

func NewCollisionManager(grid types.Grid, policy types.BoundaryPolicy) *CollisionManager {
	return &CollisionManager{
		grid:   grid,
		policy: policy,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

func (cm *CollisionManager) SetGrid(grid types.Grid) {
	cm.grid = grid
}

func (cm *CollisionManager) Policy() types.BoundaryPolicy {
	return cm.policy
}

// HandleMovement advances the snake one step and reports what it hit.
func (cm *CollisionManager) HandleMovement(snake *entity.Snake, walls *entity.Wall) types.CollisionType {
	return snake.Advance(cm.grid, cm.policy, walls)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if pos is a free, playable cell
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, walls *entity.Wall) bool {
	if !cm.grid.Playable(pos, cm.policy) {
		return false
	}
	if walls.Contains(pos) {
		return false
	}
	return snake == nil || !snake.Contains(pos)
}

// FreeCells lists every valid spawn position, column by column.
func (cm *CollisionManager) FreeCells(snake *entity.Snake, walls *entity.Wall) []types.Point {
	free := make([]types.Point, 0, cm.grid.Width*cm.grid.Height)
	for x := 0; x < cm.grid.Width; x++ {
		for y := 0; y < cm.grid.Height; y++ {
			pos := types.Point{X: x, Y: y}
			if cm.ValidateSpawnPosition(pos, snake, walls) {
				free = append(free, pos)
			}
		}
	}
	return free
}
