package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Game is one play session: the snake, the walls, the food and the
// scores, advanced one tick at a time by a single goroutine.
type Game struct {
	UUID      string
	StartTime time.Time

	cfg          Config
	snake        *entity.Snake
	walls        *entity.Wall
	collisionMgr *manager.CollisionManager
	wallMgr      *manager.WallManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	log          *log.Entry
	now          func() time.Time
	ticks        int
}

// TickResult describes what a single tick did.
type TickResult struct {
	Collision types.CollisionType
	Ate       bool
	Starved   bool                // Food had no free cell to move to
	Record    *manager.GameRecord // Set when the snake died
}

// New builds a session. A nil rng uses the seed from cfg; a nil logger
// uses the standard logrus logger.
func New(cfg Config, rng types.Rand, logger *log.Entry) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = types.NewRand(cfg.Seed)
	}
	gameUUID := uuid.New().String()
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid, cfg.Policy)
	g := &Game{
		UUID:         gameUUID,
		StartTime:    time.Now(),
		cfg:          cfg,
		snake:        entity.NewSnake(grid.Center()),
		walls:        entity.NewWall(),
		collisionMgr: collisionMgr,
		wallMgr:      manager.NewWallManager(collisionMgr, rng, cfg.WallSegments, cfg.ScaleWalls),
		foodMgr:      manager.NewFoodManager(collisionMgr, rng),
		log:          logger.WithField("session", gameUUID),
		now:          time.Now,
	}
	g.stateMgr = manager.NewStateManager(g.StartTime)
	g.respawn()

	g.log.WithFields(log.Fields{
		"grid":   fmt.Sprintf("%dx%d", grid.Width, grid.Height),
		"policy": cfg.Policy,
		"walls":  g.walls.Len(),
	}).Debug("game created")
	return g, nil
}

// Steer queues a heading change for the next tick.
func (g *Game) Steer(d types.Direction) bool {
	return g.snake.SetHeading(d)
}

// Tick advances the simulation by one step.
func (g *Game) Tick() TickResult {
	g.ticks++
	collision := g.collisionMgr.HandleMovement(g.snake, g.walls)
	if collision.Fatal() {
		record := g.stateMgr.CommitDeath(g.now())
		g.log.WithFields(log.Fields{
			"cause":      collision,
			"score":      record.Score,
			"high_score": g.stateMgr.HighScore(),
			"length":     g.snake.Len(),
			"duration":   record.Duration().Round(time.Millisecond),
		}).Info("snake died")
		g.respawn()
		return TickResult{Collision: collision, Record: &record}
	}

	result := TickResult{Collision: types.NoCollision}
	if g.foodMgr.IsEaten(g.snake) {
		g.snake.RequestGrowth()
		result.Ate = true
		result.Starved = !g.foodMgr.Relocate(g.snake, g.walls)
		g.stateMgr.Increment()
		if result.Starved {
			g.log.WithField("length", g.snake.Len()).Warn("no free cell left for food")
		}
	}
	return result
}

// Reset starts over without recording the current game.
func (g *Game) Reset() {
	g.stateMgr.ResetScore(g.now())
	g.respawn()
	g.log.Debug("game reset")
}

// Resize rebuilds the board for a window of the given pixel size. The
// snake keeps its body; walls and food are laid out again.
func (g *Game) Resize(width, height int) {
	if !g.cfg.Resizable {
		g.log.WithFields(log.Fields{"width": width, "height": height}).Debug("resize ignored")
		return
	}
	grid := types.GridFromWindow(width, height, g.cfg.CellSize)
	g.collisionMgr.SetGrid(grid)

	reserved := types.NewCellSet(g.snake.Body()...)
	reserved.Add(grid.Center())
	reserved.Add(g.snake.Head().Add(g.snake.PendingHeading()))
	g.wallMgr.Generate(g.walls, reserved)
	g.foodMgr.Relocate(g.snake, g.walls)

	g.log.WithFields(log.Fields{
		"grid":  fmt.Sprintf("%dx%d", grid.Width, grid.Height),
		"walls": g.walls.Len(),
	}).Debug("board resized")
}

// respawn keeps the spawn cell and the first cell ahead of it clear of
// walls.
func (g *Game) respawn() {
	center := g.collisionMgr.Grid().Center()
	g.snake.Reset(center)
	g.wallMgr.Generate(g.walls, types.NewCellSet(center, center.Add(g.snake.Heading())))
	g.foodMgr.Relocate(g.snake, g.walls)
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Walls() *entity.Wall {
	return g.walls
}

func (g *Game) Food() types.Point {
	return g.foodMgr.Position()
}

// PlaceFood moves the food to p without any checks.
func (g *Game) PlaceFood(p types.Point) {
	g.foodMgr.Set(p)
}

func (g *Game) Grid() types.Grid {
	return g.collisionMgr.Grid()
}

func (g *Game) Policy() types.BoundaryPolicy {
	return g.cfg.Policy
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) HighScore() int {
	return g.stateMgr.HighScore()
}

func (g *Game) Ticks() int {
	return g.ticks
}

func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}
