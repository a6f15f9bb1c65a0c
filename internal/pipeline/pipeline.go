// Package pipeline orchestrates the workflow from loading a ROM to running or listing it.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// FrontendConstructor creates the frontend for a run of the ROM at path.
type FrontendConstructor func(logger *log.Logger, opts options.Program, path string) (runner.Frontend, error)

// Pipeline orchestrates the complete workflow.
type Pipeline struct {
	logger      *log.Logger
	loader      *loader.Loader
	newFrontend FrontendConstructor
}

// New creates a new pipeline that uses newFrontend to create the frontend of a run.
func New(logger *log.Logger, newFrontend FrontendConstructor) *Pipeline {
	return &Pipeline{
		logger:      logger,
		loader:      loader.New(),
		newFrontend: newFrontend,
	}
}

// Execute loads the ROM and either writes its listing to writer or runs it.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, runnerOpts options.Runner, writer io.Writer) error {
	rom, path, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	if opts.Disasm {
		if err := disasm.WriteListing(writer, rom); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
		return nil
	}

	return p.ExecuteWithROM(ctx, rom, path, opts, runnerOpts, writer)
}

// ExecuteWithROM runs an already loaded ROM. The headless frontend writes the
// final display to writer.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, path string, opts options.Program,
	runnerOpts options.Runner, writer io.Writer) error {

	vm := chip8.New(p.logger, chip8.NewRandom(opts.Seed))
	if err := vm.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	frontend, err := p.newFrontend(p.logger, opts, path)
	if err != nil {
		return fmt.Errorf("creating frontend: %w", err)
	}
	defer func() {
		if err := frontend.Close(); err != nil {
			p.logger.Error("Closing frontend failed", log.Err(err))
		}
	}()

	p.printInfo(opts, path, len(rom))

	r := runner.New(p.logger, vm, frontend, runnerOpts)
	if err := p.run(ctx, r, opts, runnerOpts); err != nil {
		return err
	}

	p.logger.Debug("Program stopped", log.Int("steps", r.Steps()))

	if opts.Frontend == options.FrontendHeadless {
		display := vm.Display()
		if _, err := io.WriteString(writer, display.String()); err != nil {
			return fmt.Errorf("writing display: %w", err)
		}
	}
	return nil
}

// run executes the program. A headless run with a step limit does not wait
// for the clock.
func (p *Pipeline) run(ctx context.Context, r *runner.Runner, opts options.Program, runnerOpts options.Runner) error {
	if opts.Frontend == options.FrontendHeadless && runnerOpts.MaxSteps > 0 {
		return r.RunSteps(ctx, runnerOpts.MaxSteps)
	}
	return r.Run(ctx)
}

// printInfo prints information about the ROM being run.
func (p *Pipeline) printInfo(opts options.Program, path string, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", path),
		log.Int("size", size),
		log.String("frontend", opts.Frontend),
		log.Int("cpu", opts.CPU),
	)
}
