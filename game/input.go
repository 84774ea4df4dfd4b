package game

import (
	"sync/atomic"

	"gridsnake/game/types"
)

// InputSource is polled once per tick. Every method must return at once.
type InputSource interface {
	// PollHeading returns the next directional key press, if any.
	PollHeading() (types.Direction, bool)
	PollReset() bool
	// PollResize returns the new window size in pixels, if it changed.
	PollResize() (width, height int, ok bool)
	Quit() bool
}

// HeadingSlot hands the latest heading from an input goroutine to the
// tick goroutine. A newer heading overwrites one that was not taken yet,
// even when the newer one will be rejected as a reversal: Up then Left
// within one tick while heading Right keeps the snake going Right. The
// raylib Input queues key presses instead and would turn Up.
type HeadingSlot struct {
	ch chan types.Direction
}

func NewHeadingSlot() *HeadingSlot {
	return &HeadingSlot{ch: make(chan types.Direction, 1)}
}

func (s *HeadingSlot) Offer(d types.Direction) {
	for {
		select {
		case s.ch <- d:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

func (s *HeadingSlot) Take() (types.Direction, bool) {
	select {
	case d := <-s.ch:
		return d, true
	default:
		return types.Direction{}, false
	}
}

type windowSize struct {
	width, height int
}

// Mailbox is an InputSource fed from another goroutine. Only the latest
// heading and the latest size survive until the next poll; see HeadingSlot.
type Mailbox struct {
	heading *HeadingSlot
	resize  chan windowSize
	reset   atomic.Bool
	quit    atomic.Bool
}

func NewMailbox() *Mailbox {
	return &Mailbox{
		heading: NewHeadingSlot(),
		resize:  make(chan windowSize, 1),
	}
}

func (m *Mailbox) PushHeading(d types.Direction) {
	m.heading.Offer(d)
}

func (m *Mailbox) PushReset() {
	m.reset.Store(true)
}

func (m *Mailbox) PushResize(width, height int) {
	size := windowSize{width: width, height: height}
	for {
		select {
		case m.resize <- size:
			return
		default:
		}
		select {
		case <-m.resize:
		default:
		}
	}
}

func (m *Mailbox) PushQuit() {
	m.quit.Store(true)
}

func (m *Mailbox) PollHeading() (types.Direction, bool) {
	return m.heading.Take()
}

func (m *Mailbox) PollReset() bool {
	return m.reset.Swap(false)
}

func (m *Mailbox) PollResize() (int, int, bool) {
	select {
	case size := <-m.resize:
		return size.width, size.height, true
	default:
		return 0, 0, false
	}
}

func (m *Mailbox) Quit() bool {
	return m.quit.Load()
}
