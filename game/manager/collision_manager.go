package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

type CollisionManager struct {
	grid       types.Grid
	wrapAround bool
}

func NewCollisionManager(grid types.Grid, wrapAround bool) *CollisionManager {
	return &CollisionManager{
		grid:       grid,
		wrapAround: wrapAround,
	}
}

func (cm *CollisionManager) WrapAround() bool {
	return cm.wrapAround
}

func (cm *CollisionManager) SetWrapAround(enabled bool) {
	cm.wrapAround = enabled
}

// NextHead returns the cell the head enters when moving in dir, wrapped
// onto the board when wrap-around is on.
func (cm *CollisionManager) NextHead(head types.Point, dir types.Direction) types.Point {
	next := head.Step(dir, cm.grid.CellSize)
	if cm.wrapAround {
		next = cm.grid.Wrap(next)
	}
	return next
}

// IsCollision must be called after the new head has been inserted and
// before the tail is dropped.
func (cm *CollisionManager) IsCollision(snake *entity.Snake) bool {
	if snake == nil || snake.Len() == 0 {
		return false
	}
	return cm.isWallCollision(snake.GetHead()) || cm.isSelfCollision(snake)
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	if cm.wrapAround {
		return false
	}
	return !cm.grid.Contains(pos)
}

func (cm *CollisionManager) isSelfCollision(snake *entity.Snake) bool {
	return snake.HasDuplicates()
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return snake == nil || !snake.Contains(pos)
}
