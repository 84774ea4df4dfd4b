package game

import (
	"fmt"

	"gridsnake/game/types"
)

// Color is the semantic color of a drawn cell. Frontends map it to
// whatever palette they have.
type Color int

const (
	Background Color = iota
	Obstacle
	SnakeBody
	Food
	Border
)

func (c Color) String() string {
	switch c {
	case Background:
		return "background"
	case Obstacle:
		return "obstacle"
	case SnakeBody:
		return "snake"
	case Food:
		return "food"
	case Border:
		return "border"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// DrawCell asks the renderer to fill one grid cell.
type DrawCell struct {
	Cell  types.Point
	Color Color
}

// Frame is everything a renderer needs for one picture. Cells not listed
// are background.
type Frame struct {
	Grid           types.Grid
	Cells          []DrawCell
	ScoreLabel     string
	HighScoreLabel string

	Head         types.Point
	Heading      types.Direction
	GamesPlayed  int
	AverageScore float64
	ScoreHistory []int
}

// Frame draws the border ring (bounded boards), the walls, the snake and
// the food, in that order.
func (g *Game) Frame() Frame {
	grid := g.Grid()
	body := g.snake.Body()
	wallCells := g.walls.Cells()

	var border []types.Point
	if g.cfg.Policy == types.Bounded {
		border = grid.Border()
	}

	cells := make([]DrawCell, 0, len(border)+len(wallCells)+len(body)+1)
	for _, p := range border {
		cells = append(cells, DrawCell{Cell: p, Color: Border})
	}
	for _, p := range wallCells {
		cells = append(cells, DrawCell{Cell: p, Color: Obstacle})
	}
	for _, p := range body {
		cells = append(cells, DrawCell{Cell: p, Color: SnakeBody})
	}
	cells = append(cells, DrawCell{Cell: g.Food(), Color: Food})

	history := g.stateMgr.History()
	scores := make([]int, len(history))
	for i, record := range history {
		scores[i] = record.Score
	}

	return Frame{
		Grid:           grid,
		Cells:          cells,
		ScoreLabel:     fmt.Sprintf("Score: %d", g.Score()),
		HighScoreLabel: fmt.Sprintf("High Score: %d", g.HighScore()),
		Head:           g.snake.Head(),
		Heading:        g.snake.Heading(),
		GamesPlayed:    g.stateMgr.GamesPlayed(),
		AverageScore:   g.stateMgr.AverageScore(),
		ScoreHistory:   scores,
	}
}
