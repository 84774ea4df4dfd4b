package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// WallManager lays out random obstacle segments on bounded boards.
type WallManager struct {
	collisionMgr *CollisionManager
	rng          types.Rand
	segments     int
	scaled       bool
}

// NewWallManager creates a generator placing a fixed number of segments,
// or (cols+rows)/8 of them when scaled is set.
func NewWallManager(collisionMgr *CollisionManager, rng types.Rand, segments int, scaled bool) *WallManager {
	return &WallManager{
		collisionMgr: collisionMgr,
		rng:          rng,
		segments:     segments,
		scaled:       scaled,
	}
}

// SegmentCount is the number of segments the next Generate will draw.
func (wm *WallManager) SegmentCount() int {
	if wm.collisionMgr.Policy() == types.Wrapping {
		return 0
	}
	if wm.scaled {
		grid := wm.collisionMgr.Grid()
		return (grid.Width + grid.Height) / 8
	}
	if wm.segments < 0 {
		return 0
	}
	return wm.segments
}

// Generate replaces the wall set. Reserved cells never become walls.
func (wm *WallManager) Generate(walls *entity.Wall, reserved types.CellSet) {
	walls.Replace(wm.layout(reserved))
}

func (wm *WallManager) layout(reserved types.CellSet) types.CellSet {
	cells := types.NewCellSet()
	grid := wm.collisionMgr.Grid()
	maxX := grid.Width - 1 - types.WallMargin
	maxY := grid.Height - 1 - types.WallMargin
	if maxX < types.WallMargin || maxY < types.WallMargin {
		return cells
	}

	for i := 0; i < wm.SegmentCount(); i++ {
		length := types.IntRange(wm.rng, types.MinWallLength, types.MaxWallLength)
		start := types.Point{
			X: types.IntRange(wm.rng, types.WallMargin, maxX),
			Y: types.IntRange(wm.rng, types.WallMargin, maxY),
		}
		step := types.Right
		limit := grid.Width - 1
		if wm.rng.Intn(2) == 1 {
			step = types.Down
			limit = grid.Height - 1
		}

		p := start
		for n := 0; n < length; n++ {
			if (step == types.Right && p.X >= limit) || (step == types.Down && p.Y >= limit) {
				break
			}
			if !reserved.Has(p) {
				cells.Add(p)
			}
			p = p.Add(step)
		}
	}
	return cells
}
