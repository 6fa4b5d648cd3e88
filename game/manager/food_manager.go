package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

// maxFoodAttempts bounds rejection sampling before falling back to an
// explicit scan of the free cells.
const maxFoodAttempts = 64

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniformly random free cell. ok is false only when
// the snake covers the whole board.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	cols, rows := fm.grid.Columns(), fm.grid.Rows()
	if cols <= 0 || rows <= 0 {
		return types.Point{}, false
	}

	for attempt := 0; attempt < maxFoodAttempts; attempt++ {
		food = fm.grid.Cell(fm.rng.Intn(cols), fm.rng.Intn(rows))
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	var free []types.Point
	for _, cell := range fm.grid.Cells() {
		if fm.collisionMgr.ValidateSpawnPosition(cell, snake) {
			free = append(free, cell)
		}
	}
	return free
}
