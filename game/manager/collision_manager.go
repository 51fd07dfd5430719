package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies what pos would hit. The snake must be in its pre-advance
// state, so the cell the tail is about to leave still counts as occupied.
func (cm *CollisionManager) CheckCollision(pos types.GridPosition, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if snake != nil && snake.Occupies(pos) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsCollision reports whether moving the head onto pos ends the game.
func (cm *CollisionManager) IsCollision(pos types.GridPosition, snake *entity.Snake) bool {
	return cm.CheckCollision(pos, snake) != types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.GridPosition) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if a position is on the board and clear of the snake.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.GridPosition, snake *entity.Snake) bool {
	return cm.CheckCollision(pos, snake) == types.NoCollision
}

// IsCollision is the stateless form of CollisionManager.IsCollision.
func IsCollision(pos types.GridPosition, snake *entity.Snake, grid types.Grid) bool {
	return NewCollisionManager(grid).IsCollision(pos, snake)
}
