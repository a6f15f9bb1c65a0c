// Package options contains the program options.
package options

import (
	"strings"
	"time"
)

// Supported frontends.
const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "term"
	FrontendHeadless = "headless"
)

// Frontends lists all supported frontend names.
var Frontends = []string{FrontendSDL, FrontendTerminal, FrontendHeadless}

// Default option values.
const (
	DefaultScale                 = 20
	DefaultInstructionsPerSecond = 700
	DefaultTimerFrequency        = 60
)

// Parameters contains emulation parameters.
type Parameters struct {
	Input    string `flag:"i" usage:"input ROM file"`
	Frontend string `flag:"frontend" usage:"frontend: sdl, term, headless" default:"sdl"`
	Scale    int    `flag:"scale" usage:"pixel scale of the sdl window" default:"20"`
	CPU      int    `flag:"cpu" usage:"instructions per second" default:"700"`
	Seed     int64  `flag:"seed" usage:"random seed, 0 selects a time based seed"`
	Steps    int    `flag:"steps" usage:"stop after this many instructions, 0 runs until quit"`
}

// Flags contains behavior options.
type Flags struct {
	Disasm bool `flag:"disasm" usage:"print a disassembly listing of the ROM and exit"`
	Trace  bool `flag:"trace" usage:"log every executed instruction"`
	Debug  bool `flag:"debug" usage:"enable debug logging"`
	Quiet  bool `flag:"q" usage:"quiet mode"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}

// Runner defines options to control the execution loop.
type Runner struct {
	InstructionInterval time.Duration // time between two executed instructions
	TimerInterval       time.Duration // time between two timer ticks and frames
	MaxSteps            int           // 0 runs until the frontend quits
	Trace               bool
}

// NewRunner returns a new runner options instance for the given instruction
// rate, timers run at DefaultTimerFrequency.
func NewRunner(instructionsPerSecond int) Runner {
	if instructionsPerSecond < 1 {
		instructionsPerSecond = DefaultInstructionsPerSecond
	}
	return Runner{
		InstructionInterval: time.Second / time.Duration(instructionsPerSecond),
		TimerInterval:       time.Second / DefaultTimerFrequency,
	}
}

// NormalizeFrontend returns the lower case frontend name and whether it is supported.
func NormalizeFrontend(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, frontend := range Frontends {
		if name == frontend {
			return name, true
		}
	}
	return name, false
}
