// Package terminal plays the game in a text terminal through tcell.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"gridsnake/game"
	"gridsnake/game/types"
)

// Each grid cell is drawn two columns wide so that it looks square.
const cellColumns = 2

// hudRows are kept below the board for the score labels.
const hudRows = 2

var palette = map[game.Color]tcell.Color{
	game.Background: tcell.ColorBlack,
	game.Obstacle:   tcell.ColorGray,
	game.SnakeBody:  tcell.ColorGreen,
	game.Food:       tcell.ColorRed,
	game.Border:     tcell.ColorGray,
}

var keyHeadings = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

var runeHeadings = map[rune]types.Direction{
	'k': types.Up, 'w': types.Up,
	'j': types.Down, 's': types.Down,
	'h': types.Left, 'a': types.Left,
	'l': types.Right, 'd': types.Right,
}

// Terminal renders frames on a tcell screen and turns its events into
// game input.
type Terminal struct {
	screen   tcell.Screen
	input    *game.Mailbox
	cellSize int
	defStyle tcell.Style
	log      *log.Entry

	events   chan tcell.Event
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

var _ game.Renderer = (*Terminal)(nil)

// Open starts a Terminal on the process's terminal.
func Open(cellSize int, logger *log.Entry) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return New(s, cellSize, logger)
}

// New initialises screen and starts reading its events. Resize events are
// reported to the game in pixels of cellSize per grid cell.
func New(screen tcell.Screen, cellSize int, logger *log.Entry) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	t := &Terminal{
		screen:   screen,
		input:    game.NewMailbox(),
		cellSize: cellSize,
		defStyle: tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorDefault),
		log:      logger.WithField("frontend", "terminal"),
		events:   make(chan tcell.Event, 100),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	screen.SetStyle(t.defStyle)
	screen.HideCursor()
	screen.Clear()

	go screen.ChannelEvents(t.events, t.quit)
	go t.pump()
	return t, nil
}

// Input is the mailbox fed by terminal events.
func (t *Terminal) Input() *game.Mailbox {
	return t.input
}

// Close stops the event reader and restores the terminal.
func (t *Terminal) Close() {
	t.stopOnce.Do(func() {
		close(t.quit)
		t.screen.Fini()
		<-t.done
	})
}

func (t *Terminal) pump() {
	defer close(t.done)
	for ev := range t.events {
		t.handle(ev)
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		width := cols / cellColumns * t.cellSize
		height := (rows - hudRows) * t.cellSize
		t.log.WithFields(log.Fields{"cols": cols, "rows": rows}).Debug("terminal resized")
		t.input.PushResize(width, height)
		t.screen.Sync()
	case *tcell.EventKey:
		if d, ok := keyHeadings[ev.Key()]; ok {
			t.input.PushHeading(d)
			return
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.input.PushQuit()
		case tcell.KeyRune:
			r := ev.Rune()
			if d, ok := runeHeadings[r]; ok {
				t.input.PushHeading(d)
				return
			}
			switch r {
			case 'r':
				t.input.PushReset()
			case 'q':
				t.input.PushQuit()
			}
		}
	}
}

// Render implements game.Renderer.
func (t *Terminal) Render(frame game.Frame) {
	s := t.screen
	s.Clear()

	bg := t.defStyle.Background(palette[game.Background])
	for y := 0; y < frame.Grid.Height; y++ {
		for x := 0; x < frame.Grid.Width; x++ {
			t.fill(types.Point{X: x, Y: y}, bg)
		}
	}
	for _, c := range frame.Cells {
		t.fill(c.Cell, t.defStyle.Background(palette[c.Color]))
	}

	labels := frame.ScoreLabel + "   " + frame.HighScoreLabel
	t.text(0, frame.Grid.Height, labels, t.defStyle)
	s.Show()
}

func (t *Terminal) fill(p types.Point, style tcell.Style) {
	for i := 0; i < cellColumns; i++ {
		t.screen.SetContent(p.X*cellColumns+i, p.Y, ' ', nil, style)
	}
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
