package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridFromWindowClampsToMinimum(t *testing.T) {
	assert.Equal(t, Grid{Width: 30, Height: 30}, GridFromWindow(600, 600, CellSize))
	assert.Equal(t, Grid{Width: 20, Height: 20}, GridFromWindow(100, 0, CellSize))
	assert.Equal(t, Grid{Width: 45, Height: 20}, GridFromWindow(910, 399, CellSize))
}

func TestGridClamp(t *testing.T) {
	assert.Equal(t, Grid{Width: 20, Height: 25}, Grid{Width: 3, Height: 25}.Clamp())
}

func TestWrapStep(t *testing.T) {
	g := Grid{Width: 30, Height: 30}

	next, ok := g.Step(Point{X: 29, Y: 15}, Right, Wrapping)
	require.True(t, ok)
	assert.Equal(t, Point{X: 0, Y: 15}, next)

	next, ok = g.Step(Point{X: 0, Y: 15}, Left, Wrapping)
	require.True(t, ok)
	assert.Equal(t, Point{X: 29, Y: 15}, next)

	next, ok = g.Step(Point{X: 4, Y: 0}, Up, Wrapping)
	require.True(t, ok)
	assert.Equal(t, Point{X: 4, Y: 29}, next)
}

func TestBoundedStepRejectsBorderRing(t *testing.T) {
	g := Grid{Width: 30, Height: 30}

	next, ok := g.Step(Point{X: 1, Y: 1}, Up, Bounded)
	assert.False(t, ok)
	assert.Equal(t, Point{X: 1, Y: 0}, next)

	_, ok = g.Step(Point{X: 28, Y: 5}, Right, Bounded)
	assert.False(t, ok)

	next, ok = g.Step(Point{X: 15, Y: 15}, Right, Bounded)
	assert.True(t, ok)
	assert.Equal(t, Point{X: 16, Y: 15}, next)
}

func TestBorderRing(t *testing.T) {
	g := Grid{Width: 20, Height: 20}
	border := g.Border()
	assert.Len(t, border, 4*20-4)
	for _, p := range border {
		assert.True(t, g.OnBorder(p), p)
		assert.False(t, g.InInterior(p), p)
	}
	assert.Equal(t, Point{X: 10, Y: 10}, g.Center())
}

func TestDirections(t *testing.T) {
	for _, d := range Directions {
		assert.True(t, d.Valid())
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
	}
	assert.False(t, Direction{}.Valid())
	assert.False(t, Direction{X: 1, Y: 1}.Valid())
}

func TestParseBoundaryPolicy(t *testing.T) {
	p, err := ParseBoundaryPolicy("Wrap")
	require.NoError(t, err)
	assert.Equal(t, Wrapping, p)

	p, err = ParseBoundaryPolicy(Bounded.String())
	require.NoError(t, err)
	assert.Equal(t, Bounded, p)

	_, err = ParseBoundaryPolicy("torus")
	assert.Error(t, err)
}

func TestIntRangeIsInclusive(t *testing.T) {
	r := NewRand(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := IntRange(r, MinWallLength, MaxWallLength)
		require.GreaterOrEqual(t, v, MinWallLength)
		require.LessOrEqual(t, v, MaxWallLength)
		seen[v] = true
	}
	assert.Len(t, seen, MaxWallLength-MinWallLength+1)
}

func TestCellSetSorted(t *testing.T) {
	s := NewCellSet(Point{X: 3, Y: 1}, Point{X: 1, Y: 2}, Point{X: 0, Y: 1}, Point{X: 3, Y: 1})
	assert.Equal(t, []Point{{X: 0, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 2}}, s.Sorted())
	assert.True(t, s.Has(Point{X: 1, Y: 2}))
	assert.False(t, s.Has(Point{X: 2, Y: 2}))
}
