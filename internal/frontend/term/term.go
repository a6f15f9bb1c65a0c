// Package term provides a frontend that renders the display in a terminal.
//
// Two display rows are combined into one terminal row using half block
// characters. Terminals do not report key releases, a pressed key is
// therefore held down for a fixed number of frames.
package term

import (
	"fmt"

	"github.com/nsf/termbox-go"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend/keymap"
	"github.com/retroenv/retrochip8/internal/runner"
)

// Compile-time check to ensure Frontend implements runner.Frontend.
var _ runner.Frontend = (*Frontend)(nil)

const (
	// holdFrames is the number of frames a key stays pressed after a key event.
	holdFrames = 6

	eventBufferSize = 32

	statusRow = chip8.DisplayHeight / 2
)

// Frontend is a termbox terminal frontend.
type Frontend struct {
	events chan termbox.Event
	done   chan struct{}
	held   [chip8.KeyCount]int // remaining frames per pressed key

	beeping bool

	fg, bg termbox.Attribute
}

// New initializes the terminal and starts reading key events.
func New() (*Frontend, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)

	f := newFrontend()
	go f.readEvents()
	return f, nil
}

func newFrontend() *Frontend {
	return &Frontend{
		events: make(chan termbox.Event, eventBufferSize),
		done:   make(chan struct{}),
		fg:     termbox.ColorDefault,
		bg:     termbox.ColorDefault,
	}
}

// readEvents forwards terminal events until the frontend is closed.
func (f *Frontend) readEvents() {
	defer close(f.done)

	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case f.events <- ev:
		default: // drop events if the emulation does not keep up
		}
	}
}

// Render draws the display using half block characters.
func (f *Frontend) Render(display chip8.Display) error {
	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := range chip8.DisplayWidth {
			ch := halfBlock(display.Pixel(x, y), display.Pixel(x, y+1))
			termbox.SetCell(x, y/2, ch, f.fg, f.bg)
		}
	}
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("flushing terminal: %w", err)
	}
	return nil
}

// halfBlock returns the character that shows the upper and lower pixel of a cell.
func halfBlock(upper, lower bool) rune {
	switch {
	case upper && lower:
		return '█'
	case upper:
		return '▀'
	case lower:
		return '▄'
	default:
		return ' '
	}
}

// Poll releases expired keys and processes all pending terminal events.
func (f *Frontend) Poll(keys chip8.KeySetter) runner.Action {
	f.releaseKeys(keys)

	action := runner.ActionNone
	for {
		select {
		case ev := <-f.events:
			if a := f.handleEvent(ev, keys); a != runner.ActionNone {
				action = a
			}
			if action == runner.ActionQuit {
				return action
			}
		default:
			return action
		}
	}
}

func (f *Frontend) releaseKeys(keys chip8.KeySetter) {
	for key, frames := range f.held {
		if frames == 0 {
			continue
		}
		f.held[key] = frames - 1
		if frames == 1 {
			keys.SetKey(byte(key), false)
		}
	}
}

// handleEvent applies a single terminal event and returns the requested action.
func (f *Frontend) handleEvent(ev termbox.Event, keys chip8.KeySetter) runner.Action {
	if ev.Type != termbox.EventKey {
		return runner.ActionNone
	}

	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return runner.ActionQuit
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return runner.ActionReset
	}

	if key, ok := keymap.Key(ev.Ch); ok {
		keys.SetKey(key, true)
		f.held[key] = holdFrames
	}
	return runner.ActionNone
}

// Beep shows a sound indicator below the display.
func (f *Frontend) Beep(active bool) {
	if active == f.beeping {
		return
	}
	f.beeping = active

	ch := ' '
	if active {
		ch = '♪'
	}
	termbox.SetCell(0, statusRow, ch, f.fg, f.bg)
	_ = termbox.Flush()
}

// Close stops reading events and restores the terminal.
func (f *Frontend) Close() error {
	termbox.Interrupt()
	<-f.done
	termbox.Close()
	return nil
}
