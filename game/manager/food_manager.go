package manager

import (
	"errors"

	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// ErrNoValidPlacement is returned when no free cell is far enough from the head.
var ErrNoValidPlacement = errors.New("no valid apple placement")

// attemptsPerCell scales the default rejection-sampling budget with grid area.
const attemptsPerCell = 4

// AppleSampler picks apple cells that are off the snake and at least
// minHeadDistance away from its head.
type AppleSampler struct {
	grid            types.Grid
	collisionMgr    *CollisionManager
	rng             *rand.Rand
	minHeadDistance float64
	maxAttempts     int
}

// NewAppleSampler builds a sampler. maxAttempts <= 0 selects attemptsPerCell × grid area.
func NewAppleSampler(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand, minHeadDistance float64, maxAttempts int) *AppleSampler {
	if maxAttempts <= 0 {
		maxAttempts = attemptsPerCell * grid.Area()
	}
	return &AppleSampler{
		grid:            grid,
		collisionMgr:    collisionMgr,
		rng:             rng,
		minHeadDistance: minHeadDistance,
		maxAttempts:     maxAttempts,
	}
}

// Sample draws uniform candidates until one is valid. After maxAttempts misses it
// scans the board row by row (z, then x) and returns the first valid cell, or
// ErrNoValidPlacement when there is none. Cells in reserved are treated as
// occupied, e.g. the cell the head is about to move into.
func (as *AppleSampler) Sample(snake *entity.Snake, reserved ...types.GridPosition) (types.GridPosition, error) {
	for i := 0; i < as.maxAttempts; i++ {
		candidate := types.GridPosition{
			X: as.rng.Intn(as.grid.Width),
			Z: as.rng.Intn(as.grid.Height),
		}
		if as.IsValid(candidate, snake, reserved...) {
			return candidate, nil
		}
	}

	for z := 0; z < as.grid.Height; z++ {
		for x := 0; x < as.grid.Width; x++ {
			candidate := types.GridPosition{X: x, Z: z}
			if as.IsValid(candidate, snake, reserved...) {
				return candidate, nil
			}
		}
	}
	return types.GridPosition{}, ErrNoValidPlacement
}

// IsValid checks a candidate against occupancy, reserved cells and the head exclusion radius.
func (as *AppleSampler) IsValid(p types.GridPosition, snake *entity.Snake, reserved ...types.GridPosition) bool {
	if !as.collisionMgr.ValidateSpawnPosition(p, snake) {
		return false
	}
	for _, r := range reserved {
		if p == r {
			return false
		}
	}
	if snake.Len() > 0 && p.Distance(snake.GetHead()) < as.minHeadDistance {
		return false
	}
	return true
}
