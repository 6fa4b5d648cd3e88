package manager_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"
)

func newFoodManager(seed uint64) *manager.FoodManager {
	cm := manager.NewCollisionManager(testGrid, false)
	return manager.NewFoodManager(testGrid, cm, rand.New(rand.NewSource(seed)))
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	fm := newFoodManager(7)
	s := entity.NewSnake(types.Point{X: 100, Y: 40}, types.Right, 3, testGrid.CellSize)

	for i := 0; i < 500; i++ {
		food, ok := fm.GenerateFood(s)
		require.True(t, ok)
		assert.False(t, s.Contains(food), "food %v placed on snake", food)
		assert.True(t, testGrid.Contains(food))
		assert.Zero(t, food.X%testGrid.CellSize)
		assert.Zero(t, food.Y%testGrid.CellSize)
	}
}

func TestGenerateFoodFindsLastFreeCell(t *testing.T) {
	fm := newFoodManager(3)
	cells := testGrid.Cells()
	free := cells[17]

	body := make([]types.Point, 0, len(cells)-1)
	for i, c := range cells {
		if i != 17 {
			body = append(body, c)
		}
	}
	s := &entity.Snake{Body: body}

	for i := 0; i < 20; i++ {
		food, ok := fm.GenerateFood(s)
		require.True(t, ok)
		assert.Equal(t, free, food)
	}
}

func TestGenerateFoodFullBoard(t *testing.T) {
	fm := newFoodManager(1)
	s := &entity.Snake{Body: testGrid.Cells()}

	_, ok := fm.GenerateFood(s)
	assert.False(t, ok)
}

func TestGenerateFoodIsDeterministicPerSeed(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 100, Y: 40}, types.Right, 3, testGrid.CellSize)

	a, _ := newFoodManager(42).GenerateFood(s)
	b, _ := newFoodManager(42).GenerateFood(s)
	assert.Equal(t, a, b)
}
