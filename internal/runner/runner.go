// Package runner drives the interpreter in real time and connects it to a frontend.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Action is a request of the user that is returned by a frontend poll.
type Action int

const (
	ActionNone  Action = iota
	ActionQuit         // stop the emulation
	ActionReset        // restart the loaded program
)

// Frontend displays the interpreter output and reads the user input.
type Frontend interface {
	// Render draws the display.
	Render(display chip8.Display) error
	// Poll processes pending input events, passes key changes to keys and
	// returns the requested user action.
	Poll(keys chip8.KeySetter) Action
	// Beep starts or stops the sound output.
	Beep(active bool)
	// Close releases all frontend resources.
	Close() error
}

// Runner executes instructions and timer ticks at their configured rates.
type Runner struct {
	logger   *log.Logger
	vm       *chip8.Interpreter
	frontend Frontend
	options  options.Runner

	steps int // executed instructions
}

// New returns a new runner for the interpreter and frontend.
func New(logger *log.Logger, vm *chip8.Interpreter, frontend Frontend, opts options.Runner) *Runner {
	r := &Runner{
		logger:   logger,
		vm:       vm,
		frontend: frontend,
		options:  opts,
	}
	if opts.Trace {
		vm.SetTracer(r.trace)
	}
	return r
}

// Steps returns the number of executed instructions.
func (r *Runner) Steps() int {
	return r.steps
}

// Run executes the program until the context is cancelled, the frontend
// requests to quit, the step limit is reached or an instruction fails.
// Timers, input and display are processed at the timer interval.
func (r *Runner) Run(ctx context.Context) error {
	cpu := time.NewTicker(r.options.InstructionInterval)
	defer cpu.Stop()
	frame := time.NewTicker(r.options.TimerInterval)
	defer frame.Stop()

	if err := r.render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("running program: %w", ctx.Err())

		case <-cpu.C:
			if err := r.step(); err != nil {
				return err
			}
			if r.limitReached() {
				return r.render()
			}

		case <-frame.C:
			quit, err := r.frame()
			if err != nil || quit {
				return err
			}
		}
	}
}

// RunSteps executes up to n instructions without waiting for the clock.
// A frame is processed after every instruction batch that corresponds to one
// timer interval, so timers advance at the same rate relative to the program
// as in a real time run. The context is checked before every batch.
func (r *Runner) RunSteps(ctx context.Context, n int) error {
	perFrame := r.stepsPerFrame()

	for i := 1; i <= n; i++ {
		if (i-1)%perFrame == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("running program: %w", err)
			}
		}

		if err := r.step(); err != nil {
			return err
		}
		if i%perFrame != 0 {
			continue
		}

		quit, err := r.frame()
		if err != nil || quit {
			return err
		}
	}
	return r.render()
}

func (r *Runner) stepsPerFrame() int {
	if r.options.InstructionInterval <= 0 {
		return 1
	}
	perFrame := int(r.options.TimerInterval / r.options.InstructionInterval)
	return max(perFrame, 1)
}

func (r *Runner) limitReached() bool {
	return r.options.MaxSteps > 0 && r.steps >= r.options.MaxSteps
}

func (r *Runner) step() error {
	if err := r.vm.Step(); err != nil {
		return fmt.Errorf("step %d: %w", r.steps+1, err)
	}
	r.steps++
	return nil
}

// frame ticks the timers, processes the input and updates display and sound.
// It returns whether the frontend requested to quit.
func (r *Runner) frame() (bool, error) {
	r.vm.TickTimers()

	switch r.frontend.Poll(r.vm) {
	case ActionQuit:
		r.logger.Debug("Quit requested", log.Int("steps", r.steps))
		return true, nil
	case ActionReset:
		r.logger.Info("Resetting program")
		r.vm.Reset()
	case ActionNone:
	}

	if err := r.render(); err != nil {
		return false, err
	}
	r.frontend.Beep(r.vm.SoundActive())
	return false, nil
}

// render draws the display if it changed since the last frame.
func (r *Runner) render() error {
	if !r.vm.Redraw() {
		return nil
	}
	if err := r.frontend.Render(r.vm.Display()); err != nil {
		return fmt.Errorf("rendering display: %w", err)
	}
	return nil
}

func (r *Runner) trace(address uint16, ins chip8.Instruction) {
	regs := r.vm.Registers()
	r.logger.Debug("Executing",
		log.Hex("address", address),
		log.Hex("opcode", ins.Opcode),
		log.String("instruction", disasm.Mnemonic(ins.Opcode)),
		log.Hex("I", regs.I),
	)
}
