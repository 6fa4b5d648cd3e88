package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classic-snake/game/entity"
	"classic-snake/game/types"
)

func TestNewSnakeTrailsBehindHead(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 400, Y: 300}, types.Right, 3, 20)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []types.Point{
		{X: 400, Y: 300},
		{X: 380, Y: 300},
		{X: 360, Y: 300},
	}, s.Body)
	assert.Equal(t, types.Point{X: 400, Y: 300}, s.GetHead())
	assert.False(t, s.HasDuplicates())
}

func TestMoveAndRemove(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 40, Y: 0}, types.Right, 3, 20)

	s.Move(types.Point{X: 60, Y: 0})
	require.Equal(t, 4, s.Len())
	assert.Equal(t, types.Point{X: 60, Y: 0}, s.GetHead())

	s.RemoveTail()
	assert.Equal(t, []types.Point{{X: 60, Y: 0}, {X: 40, Y: 0}, {X: 20, Y: 0}}, s.Body)

	s.Move(types.Point{X: 80, Y: 0})
	s.RemoveHead()
	assert.Equal(t, []types.Point{{X: 60, Y: 0}, {X: 40, Y: 0}, {X: 20, Y: 0}}, s.Body)
}

func TestHasDuplicates(t *testing.T) {
	s := &entity.Snake{Body: []types.Point{{X: 20, Y: 20}, {X: 20, Y: 40}, {X: 20, Y: 20}}}
	assert.True(t, s.HasDuplicates())
	assert.True(t, s.Contains(types.Point{X: 20, Y: 40}))
	assert.False(t, s.Contains(types.Point{X: 0, Y: 0}))
}

func TestCellsIsACopy(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 40, Y: 0}, types.Right, 2, 20)

	cells := s.Cells()
	cells[0] = types.Point{X: -1, Y: -1}

	assert.Equal(t, types.Point{X: 40, Y: 0}, s.GetHead())
}
