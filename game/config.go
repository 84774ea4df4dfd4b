package game

import (
	"errors"
	"fmt"
	"time"

	"gridsnake/game/types"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config selects one of the board variants and the tick cadence.
type Config struct {
	Width        int // Grid columns, clamped to types.MinGridCells
	Height       int // Grid rows, clamped to types.MinGridCells
	CellSize     int // Pixels per cell, used to turn window sizes into grids
	Policy       types.BoundaryPolicy
	WallSegments int  // Obstacle segments per layout on bounded boards
	ScaleWalls   bool // Derive the segment count from the grid size instead
	Resizable    bool // Honour resize commands
	TickRate     int  // Simulation steps per second
	Seed         uint64
}

// DefaultConfig is the static bounded board with five obstacle segments.
func DefaultConfig() Config {
	return Config{
		Width:        types.DefaultGridSize,
		Height:       types.DefaultGridSize,
		CellSize:     types.CellSize,
		Policy:       types.Bounded,
		WallSegments: types.DefaultWalls,
		TickRate:     10,
	}
}

// Validate rejects settings the game cannot run with. Small grids are not
// an error; they are clamped when the game is built.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	}
	if c.WallSegments < 0 {
		return fmt.Errorf("%w: wall segments must not be negative, got %d", ErrInvalidConfig, c.WallSegments)
	}
	if c.Policy != types.Bounded && c.Policy != types.Wrapping {
		return fmt.Errorf("%w: unknown boundary policy %v", ErrInvalidConfig, c.Policy)
	}
	return nil
}

// Grid is the configured board after clamping.
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}.Clamp()
}

// TickInterval is the pause between two simulation steps.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.TickRate)
}
