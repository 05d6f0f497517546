package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (ct CollisionType) String() string {
	switch ct {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	gridSize int
}

func NewCollisionManager(gridSize int) *CollisionManager {
	return &CollisionManager{
		gridSize: gridSize,
	}
}

// CheckCollision checks all types of collisions for a given position
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	// The tail still counts: it only moves away after the head lands.
	if snake.Occupies(pos) {
		return SelfCollision
	}
	return NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !pos.InBounds(cm.gridSize)
}

// ValidateSpawnPosition checks if a position is free for new food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, foodList []types.Point) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	if snake != nil && snake.Occupies(pos) {
		return false
	}
	_, found := cm.CheckFoodCollisions(pos, foodList)
	return !found
}

// CheckFoodCollisions returns the index of the food at pos
func (cm *CollisionManager) CheckFoodCollisions(pos types.Point, foodList []types.Point) (int, bool) {
	for i, food := range foodList {
		if pos == food {
			return i, true
		}
	}
	return -1, false
}
