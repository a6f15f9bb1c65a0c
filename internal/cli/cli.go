// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns program and runner options
func ParseFlags() (options.Program, options.Runner, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil {
		return opts, options.Runner{}, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, options.Runner{}, err
	}
	if len(args) > 0 {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Runner{}, err
	}

	// only the sdl frontend can ask for a file interactively
	if opts.Input == "" && (opts.Frontend != options.FrontendSDL || opts.Disasm) {
		return opts, options.Runner{}, &UsageError{flags: flags, msg: "No ROM file given"}
	}

	runnerOptions := createRunnerOptions(opts)
	return opts, runnerOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the error message, if any, followed by the usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("Unexpected argument %s, only one ROM file can be run", args[1]),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	frontend, ok := options.NormalizeFrontend(opts.Frontend)
	if !ok {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(options.Frontends, ", "))
	}
	opts.Frontend = frontend

	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d, must be at least 1", opts.Scale)
	}
	if opts.CPU < 1 {
		return fmt.Errorf("invalid instruction rate %d, must be at least 1", opts.CPU)
	}
	if opts.Steps < 0 {
		return fmt.Errorf("invalid step count %d, must not be negative", opts.Steps)
	}
	return nil
}

// createRunnerOptions creates runner options based on program options
func createRunnerOptions(opts options.Program) options.Runner {
	runnerOptions := options.NewRunner(opts.CPU)
	runnerOptions.MaxSteps = opts.Steps
	runnerOptions.Trace = opts.Trace
	return runnerOptions
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Frontend, "frontend", options.FrontendSDL, "frontend to use for display and input (sdl/term/headless)")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "size in screen pixels of a display pixel for the sdl frontend")
	flags.IntVar(&opts.CPU, "cpu", options.DefaultInstructionsPerSecond, "number of instructions to execute per second")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 selects a time based seed")
	flags.IntVar(&opts.Steps, "steps", 0, "stop after executing the given number of instructions, 0 runs until quit")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the ROM file and exit")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction at debug level")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
