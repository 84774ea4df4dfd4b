package game

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

// Renderer receives one frame per tick.
type Renderer interface {
	Render(frame Frame)
}

// Clock gates the loop to a fixed tick rate.
type Clock interface {
	// Wait blocks until the next tick or until ctx is done.
	Wait(ctx context.Context) error
}

// TickerClock is a Clock backed by a time.Ticker.
type TickerClock struct {
	ticker *time.Ticker
}

func NewTickerClock(interval time.Duration) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(interval)}
}

func (c *TickerClock) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// HandleInput applies the commands gathered since the last tick. Every
// heading is offered in order; the reversal guard keeps the latest valid one.
func (g *Game) HandleInput(in InputSource) {
	if width, height, ok := in.PollResize(); ok {
		g.Resize(width, height)
	}
	if in.PollReset() {
		g.Reset()
	}
	for {
		d, ok := in.PollHeading()
		if !ok {
			break
		}
		if !g.Steer(d) {
			g.log.WithField("heading", d).Trace("heading rejected")
		}
	}
}

// Run drives input, tick and render at the clock's pace until the input
// asks to quit or ctx is cancelled. Both end the loop without error.
func (g *Game) Run(ctx context.Context, in InputSource, out Renderer, clock Clock) error {
	g.log.WithFields(log.Fields{
		"policy":    g.cfg.Policy,
		"tick_rate": g.cfg.TickRate,
	}).Info("game loop starting")

	out.Render(g.Frame())
	for {
		if err := clock.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				g.log.Info("game loop cancelled")
				return nil
			}
			return err
		}
		if in.Quit() {
			g.log.WithFields(log.Fields{
				"ticks":      g.ticks,
				"high_score": g.HighScore(),
				"games":      g.stateMgr.GamesPlayed(),
			}).Info("quit requested")
			return nil
		}
		g.HandleInput(in)
		g.Tick()
		out.Render(g.Frame())
	}
}
