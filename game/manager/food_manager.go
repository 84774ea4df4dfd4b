package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// FoodManager keeps the single active food cell.
type FoodManager struct {
	collisionMgr *CollisionManager
	rng          types.Rand
	position     types.Point
}

func NewFoodManager(collisionMgr *CollisionManager, rng types.Rand) *FoodManager {
	return &FoodManager{
		collisionMgr: collisionMgr,
		rng:          rng,
	}
}

func (fm *FoodManager) Position() types.Point {
	return fm.position
}

// Set places the food without any checks.
func (fm *FoodManager) Set(pos types.Point) {
	fm.position = pos
}

// Relocate moves the food to a uniformly chosen free cell. When the board
// is full the food stays where it is and false is returned.
func (fm *FoodManager) Relocate(snake *entity.Snake, walls *entity.Wall) bool {
	free := fm.collisionMgr.FreeCells(snake, walls)
	if len(free) == 0 {
		return false
	}
	fm.position = free[fm.rng.Intn(len(free))]
	return true
}

// IsEaten reports whether the snake's head sits on the food.
func (fm *FoodManager) IsEaten(snake *entity.Snake) bool {
	return fm.collisionMgr.IsFoodCollision(snake.Head(), fm.position)
}
