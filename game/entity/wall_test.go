package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsnake/game/types"
)

func TestWallReplaceAndClear(t *testing.T) {
	w := NewWall()
	w.Replace(types.NewCellSet(types.Point{X: 6, Y: 5}, types.Point{X: 5, Y: 5}))

	assert.Equal(t, 2, w.Len())
	assert.True(t, w.Contains(types.Point{X: 5, Y: 5}))
	assert.Equal(t, []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}}, w.Cells())

	w.Replace(types.NewCellSet(types.Point{X: 9, Y: 9}))
	assert.False(t, w.Contains(types.Point{X: 5, Y: 5}))

	w.Clear()
	assert.Zero(t, w.Len())
	w.Replace(nil)
	assert.Zero(t, w.Len())
}

func TestNilWallIsEmpty(t *testing.T) {
	var w *Wall
	assert.False(t, w.Contains(types.Point{}))
	assert.Nil(t, w.Cells())
	assert.Zero(t, w.Len())
}
