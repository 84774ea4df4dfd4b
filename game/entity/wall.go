package entity

import "gridsnake/game/types"

// Obstacles is anything the snake may not enter.
type Obstacles interface {
	Contains(p types.Point) bool
}

// Wall holds the internal obstacle cells. The border ring is not stored
// here; it is enforced by the bounded step.
type Wall struct {
	cells types.CellSet
}

func NewWall() *Wall {
	return &Wall{cells: types.NewCellSet()}
}

// Replace swaps in a freshly generated set.
func (w *Wall) Replace(cells types.CellSet) {
	if cells == nil {
		cells = types.NewCellSet()
	}
	w.cells = cells
}

func (w *Wall) Clear() {
	w.cells = types.NewCellSet()
}

func (w *Wall) Contains(p types.Point) bool {
	if w == nil {
		return false
	}
	return w.cells.Has(p)
}

// Cells returns the wall cells in row-major order.
func (w *Wall) Cells() []types.Point {
	if w == nil {
		return nil
	}
	return w.cells.Sorted()
}

func (w *Wall) Len() int {
	if w == nil {
		return 0
	}
	return len(w.cells)
}
