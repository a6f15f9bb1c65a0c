// Package headless provides a frontend without any output device. It records
// the rendered frames and replays scripted input, for tests and batch runs.
package headless

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/runner"
)

// Compile-time check to ensure Frontend implements runner.Frontend.
var _ runner.Frontend = (*Frontend)(nil)

// Input is a scripted input event that is applied at a poll.
type Input struct {
	Key    byte
	Down   bool
	Action runner.Action // if set, the key is ignored
}

// Frontend records all rendered frames.
type Frontend struct {
	frames     []chip8.Display
	inputs     []Input
	polls      int
	beepFrames int
	beeping    bool
	closed     bool
}

// New returns a new headless frontend.
func New() *Frontend {
	return &Frontend{}
}

// Queue adds input events, each poll applies the next event.
func (f *Frontend) Queue(inputs ...Input) {
	f.inputs = append(f.inputs, inputs...)
}

// Render records a copy of the display.
func (f *Frontend) Render(display chip8.Display) error {
	f.frames = append(f.frames, display)
	return nil
}

// Poll applies the next queued input event.
func (f *Frontend) Poll(keys chip8.KeySetter) runner.Action {
	f.polls++
	if len(f.inputs) == 0 {
		return runner.ActionNone
	}

	input := f.inputs[0]
	f.inputs = f.inputs[1:]
	if input.Action != runner.ActionNone {
		return input.Action
	}
	keys.SetKey(input.Key, input.Down)
	return runner.ActionNone
}

// Beep records the sound state.
func (f *Frontend) Beep(active bool) {
	f.beeping = active
	if active {
		f.beepFrames++
	}
}

// Close marks the frontend as closed.
func (f *Frontend) Close() error {
	f.closed = true
	return nil
}

// Frames returns the number of rendered frames.
func (f *Frontend) Frames() int {
	return len(f.frames)
}

// LastFrame returns the last rendered display, or an empty display if nothing was rendered.
func (f *Frontend) LastFrame() chip8.Display {
	if len(f.frames) == 0 {
		return chip8.Display{}
	}
	return f.frames[len(f.frames)-1]
}

// Polls returns the number of input polls.
func (f *Frontend) Polls() int {
	return f.polls
}

// BeepFrames returns the number of frames during which the sound was active.
func (f *Frontend) BeepFrames() int {
	return f.beepFrames
}

// Beeping returns the last sound state.
func (f *Frontend) Beeping() bool {
	return f.beeping
}

// Closed returns whether Close was called.
func (f *Frontend) Closed() bool {
	return f.closed
}
