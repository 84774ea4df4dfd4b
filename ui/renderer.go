package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

const (
	StatsPanelWidth = 200 // Right-hand panel with scores and the graph
	borderPadding   = 10
)

var palette = map[game.Color]rl.Color{
	game.Background: rl.Black,
	game.Obstacle:   rl.Gray,
	game.SnakeBody:  rl.Green,
	game.Food:       rl.Red,
	game.Border:     rl.Gray,
}

// Renderer draws frames into the raylib window.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	graphHeight  int32
	graphWidth   int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.gameWidth = r.screenWidth - StatsPanelWidth
	r.graphWidth = StatsPanelWidth - 2*borderPadding
	r.graphHeight = r.screenHeight / 5
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Render implements game.Renderer.
func (r *Renderer) Render(frame game.Frame) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(palette[game.Background])

	cellW := r.gameWidth / int32(frame.Grid.Width)
	cellH := r.screenHeight / int32(frame.Grid.Height)
	r.cellSize = min(cellW, cellH)
	if r.cellSize < 2 {
		r.cellSize = 2
	}

	for _, c := range frame.Cells {
		rl.DrawRectangle(
			int32(c.Cell.X)*r.cellSize,
			int32(c.Cell.Y)*r.cellSize,
			r.cellSize-1, r.cellSize-1, palette[c.Color])
	}
	r.drawHeading(frame.Head, frame.Heading)
	r.drawStatsPanel(frame)
	rl.EndDrawing()
}

// drawHeading marks the head cell with a triangle pointing where it moves.
func (r *Renderer) drawHeading(head types.Point, heading types.Direction) {
	headX := float32(int32(head.X) * r.cellSize)
	headY := float32(int32(head.Y) * r.cellSize)
	size := float32(r.cellSize - 1)
	half := size / 2

	var a, b, c rl.Vector2
	switch heading {
	case types.Right:
		a = rl.Vector2{X: headX + size, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY}
		c = rl.Vector2{X: headX + half, Y: headY + size}
	case types.Left:
		a = rl.Vector2{X: headX, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY + size}
		c = rl.Vector2{X: headX + half, Y: headY}
	case types.Down:
		a = rl.Vector2{X: headX + half, Y: headY + size}
		b = rl.Vector2{X: headX + size, Y: headY + half}
		c = rl.Vector2{X: headX, Y: headY + half}
	default:
		a = rl.Vector2{X: headX + half, Y: headY}
		b = rl.Vector2{X: headX, Y: headY + half}
		c = rl.Vector2{X: headX + size, Y: headY + half}
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawStatsPanel(frame game.Frame) {
	statsX := r.gameWidth + borderPadding
	statsY := int32(borderPadding)
	fontSize := min(r.screenHeight/30, 20)
	lineHeight := fontSize + 6

	rl.DrawRectangle(r.gameWidth, 0, StatsPanelWidth, r.screenHeight, rl.DarkGray)

	rl.DrawText(frame.ScoreLabel, statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(frame.HighScoreLabel, statsX, statsY, fontSize, rl.White)
	statsY += lineHeight * 2
	rl.DrawText(fmt.Sprintf("Games: %d", frame.GamesPlayed), statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Avg: %.2f", frame.AverageScore), statsX, statsY, fontSize, rl.LightGray)

	r.drawScoreGraph(statsX, frame.ScoreHistory, frame.AverageScore, fontSize)
}

// drawScoreGraph plots the scores of finished games, oldest on the left.
func (r *Renderer) drawScoreGraph(graphX int32, scores []int, average float64, fontSize int32) {
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - borderPadding

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)
	if len(scores) < 2 {
		return
	}

	maxScore := 1
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}
	for j := 1; j < len(scores); j++ {
		x1 := graphX + int32(float32(r.graphWidth)*float32(j-1)/float32(manager.MaxHistory))
		y1 := graphY + graphHeight - int32(float32(graphHeight)*float32(scores[j-1])/float32(maxScore))
		x2 := graphX + int32(float32(r.graphWidth)*float32(j)/float32(manager.MaxHistory))
		y2 := graphY + graphHeight - int32(float32(graphHeight)*float32(scores[j])/float32(maxScore))
		rl.DrawLine(x1, y1, x2, y2, rl.Green)
	}

	// Dashed average line
	avgY := graphY + graphHeight - int32(float32(graphHeight)*float32(average)/float32(maxScore))
	for x := graphX; x < graphX+r.graphWidth; x += 10 {
		rl.DrawLine(x, avgY, min(x+5, graphX+r.graphWidth), avgY, rl.Yellow)
	}
}
