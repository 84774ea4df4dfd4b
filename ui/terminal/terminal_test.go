package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsnake/game"
	"gridsnake/game/types"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	logger, _ := test.NewNullLogger()
	term, err := New(sim, types.CellSize, log.NewEntry(logger))
	require.NoError(t, err)
	sim.SetSize(80, 40)
	t.Cleanup(term.Close)
	return term, sim
}

func TestKeysBecomeCommands(t *testing.T) {
	term, _ := newSimTerminal(t)
	in := term.Input()

	term.handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	d, ok := in.PollHeading()
	require.True(t, ok)
	assert.Equal(t, types.Up, d)

	term.handle(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
	d, ok = in.PollHeading()
	require.True(t, ok)
	assert.Equal(t, types.Left, d)

	term.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	assert.True(t, in.PollReset())

	assert.False(t, in.Quit())
	term.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	assert.True(t, in.Quit())
}

func TestCtrlCQuits(t *testing.T) {
	term, _ := newSimTerminal(t)
	term.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	assert.True(t, term.Input().Quit())
}

func TestResizeIsReportedInPixels(t *testing.T) {
	term, _ := newSimTerminal(t)
	in := term.Input()
	in.PollResize()

	term.handle(tcell.NewEventResize(60, 32))

	w, h, ok := in.PollResize()
	require.True(t, ok)
	assert.Equal(t, 30*types.CellSize, w)
	assert.Equal(t, 30*types.CellSize, h)
}

func TestInjectedKeysReachTheMailbox(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)

	assert.Eventually(t, func() bool {
		d, ok := term.Input().PollHeading()
		return ok && d == types.Down
	}, time.Second, 5*time.Millisecond)
}

func TestRenderDrawsCellsAndLabels(t *testing.T) {
	term, sim := newSimTerminal(t)
	frame := game.Frame{
		Grid: types.Grid{Width: 20, Height: 20},
		Cells: []game.DrawCell{
			{Cell: types.Point{X: 0, Y: 0}, Color: game.Border},
			{Cell: types.Point{X: 10, Y: 10}, Color: game.SnakeBody},
			{Cell: types.Point{X: 4, Y: 7}, Color: game.Food},
		},
		ScoreLabel:     "Score: 4",
		HighScoreLabel: "High Score: 9",
	}

	term.Render(frame)

	cells, width, _ := sim.GetContents()
	background := func(col, row int) tcell.Color {
		_, bg, _ := cells[row*width+col].Style.Decompose()
		return bg
	}
	assert.Equal(t, tcell.ColorRed, background(8, 7))
	assert.Equal(t, tcell.ColorRed, background(9, 7))
	assert.Equal(t, tcell.ColorGreen, background(20, 10))
	assert.Equal(t, tcell.ColorGray, background(1, 0))
	assert.Equal(t, tcell.ColorBlack, background(3, 3))

	var hud strings.Builder
	for col := 0; col < width; col++ {
		if runes := cells[20*width+col].Runes; len(runes) > 0 {
			hud.WriteRune(runes[0])
		}
	}
	assert.Contains(t, hud.String(), "Score: 4")
	assert.Contains(t, hud.String(), "High Score: 9")
}

func TestCloseIsIdempotent(t *testing.T) {
	term, _ := newSimTerminal(t)
	term.Close()
	term.Close()
}
