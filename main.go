package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"
	"gridsnake/ui/terminal"
)

func main() {
	cfg := game.DefaultConfig()
	frontend := flag.String("frontend", "window", "Frontend to play in: window or terminal")
	policy := flag.String("policy", "bounded", "Board edges: bounded (deadly border and walls) or wrapping")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Grid width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Grid height in cells")
	flag.IntVar(&cfg.WallSegments, "walls", cfg.WallSegments, "Obstacle segments on a bounded board")
	flag.BoolVar(&cfg.ScaleWalls, "scale-walls", false, "Derive the obstacle count from the grid size")
	flag.BoolVar(&cfg.Resizable, "resizable", false, "Follow window or terminal resizes")
	flag.IntVar(&cfg.TickRate, "speed", cfg.TickRate, "Game speed in ticks per second")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Random seed, 0 picks one from the clock")
	logLevel := flag.String("log-level", "info", "Log level")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	flag.Parse()

	p, err := types.ParseBoundaryPolicy(*policy)
	if err != nil {
		log.WithError(err).Fatal("bad -policy")
	}
	cfg.Policy = p
	if cfg.Policy == types.Wrapping {
		cfg.WallSegments = 0
		cfg.ScaleWalls = false
	}

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatal("bad -log-level")
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	switch {
	case *logFile != "":
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.WithError(err).Fatal("cannot open log file")
		}
		defer f.Close()
		log.SetOutput(f)
	case *frontend == "terminal":
		// stderr shares the terminal with the board
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.New(cfg, nil, nil)
	if err != nil {
		log.WithError(err).Fatal("cannot start game")
	}
	clock := game.NewTickerClock(cfg.TickInterval())
	defer clock.Stop()

	switch *frontend {
	case "window":
		err = runWindow(ctx, g, cfg, clock)
	case "terminal":
		err = runTerminal(ctx, g, cfg, clock)
	default:
		log.WithField("frontend", *frontend).Fatal("unknown frontend")
	}
	if err != nil {
		log.WithError(err).Error("game stopped")
		os.Exit(1)
	}
}

func runWindow(ctx context.Context, g *game.Game, cfg game.Config, clock game.Clock) error {
	ui.OpenWindow(g.Grid(), cfg.CellSize, cfg.Resizable)
	defer ui.CloseWindow()
	return g.Run(ctx, ui.NewInput(), ui.NewRenderer(), clock)
}

func runTerminal(ctx context.Context, g *game.Game, cfg game.Config, clock game.Clock) error {
	term, err := terminal.Open(cfg.CellSize, log.WithField("session", g.UUID))
	if err != nil {
		return err
	}
	defer term.Close()
	return g.Run(ctx, term.Input(), term, clock)
}
