package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
)

// OpenWindow creates the raylib window sized for grid plus the stats panel.
func OpenWindow(grid types.Grid, cellSize int, resizable bool) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(
		int32(grid.Width*cellSize+StatsPanelWidth),
		int32(grid.Height*cellSize),
		"Snake")
	if resizable {
		rl.SetWindowState(rl.FlagWindowResizable)
		rl.SetWindowMinSize(types.MinGridCells*cellSize+StatsPanelWidth, types.MinGridCells*cellSize)
	}
	// Q and Esc are handled by Input
	rl.SetExitKey(0)
}

func CloseWindow() {
	rl.CloseWindow()
}

var headingKeys = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
}

// Input reads the raylib keyboard and window state. It must be polled from
// the goroutine that owns the window.
type Input struct {
	headings []types.Direction
	reset    bool
	quit     bool
}

var _ game.InputSource = (*Input)(nil)

func NewInput() *Input {
	return &Input{}
}

// drain empties raylib's key queue. Keys pressed between two frames are
// kept in order.
func (in *Input) drain() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if d, ok := headingKeys[key]; ok {
			in.headings = append(in.headings, d)
			continue
		}
		switch key {
		case rl.KeyR:
			in.reset = true
		case rl.KeyQ, rl.KeyEscape:
			in.quit = true
		}
	}
}

func (in *Input) Quit() bool {
	in.drain()
	return in.quit || rl.WindowShouldClose()
}

func (in *Input) PollResize() (int, int, bool) {
	if !rl.IsWindowResized() {
		return 0, 0, false
	}
	return rl.GetScreenWidth() - StatsPanelWidth, rl.GetScreenHeight(), true
}

func (in *Input) PollReset() bool {
	in.drain()
	reset := in.reset
	in.reset = false
	return reset
}

func (in *Input) PollHeading() (types.Direction, bool) {
	in.drain()
	if len(in.headings) == 0 {
		return types.Direction{}, false
	}
	d := in.headings[0]
	in.headings = in.headings[1:]
	return d, true
}
