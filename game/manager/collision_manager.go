package manager

import (
	"dp-effects/game/entity"
	"dp-effects/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	OutOfBounds
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) SetGrid(grid types.Grid) {
	cm.grid = grid
}

// NextHead returns the cell the head enters when moving along dir. Edges
// wrap, so a wall hit cannot happen.
func (cm *CollisionManager) NextHead(snake *entity.Snake, dir types.Direction) types.Point {
	return cm.grid.Wrap(snake.GetHead().Add(dir))
}

// CheckCollision reports what pos would hit. The whole body counts, tail
// included: the tail only moves after the head is committed.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if snake.Occupies(pos) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// CheckBounds is used after a resize: a head outside the new grid ends the game
func (cm *CollisionManager) CheckBounds(snake *entity.Snake) CollisionType {
	if snake.Len() == 0 {
		return NoCollision
	}
	if cm.isWallCollision(snake.GetHead()) {
		return OutOfBounds
	}
	return NoCollision
}

// ValidateFood reports whether food still sits on the grid
func (cm *CollisionManager) ValidateFood(food types.Point) bool {
	return !cm.isWallCollision(food)
}
