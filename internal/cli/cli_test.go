package cli

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, options.Runner, error) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = append([]string{"prog"}, args...)
	return ParseFlags()
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, runnerOpts, err := parseArgs(t, "pong.ch8")
	assert.NoError(t, err)

	assert.Equal(t, "pong.ch8", opts.Input)
	assert.Equal(t, options.FrontendSDL, opts.Frontend)
	assert.Equal(t, options.DefaultScale, opts.Scale)
	assert.Equal(t, options.DefaultInstructionsPerSecond, opts.CPU)
	assert.Equal(t, int64(0), opts.Seed)
	assert.False(t, opts.Disasm)

	assert.Equal(t, time.Second/700, runnerOpts.InstructionInterval)
	assert.Equal(t, time.Second/60, runnerOpts.TimerInterval)
	assert.Equal(t, 0, runnerOpts.MaxSteps)
	assert.False(t, runnerOpts.Trace)
}

func TestParseFlags_Options(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, opts options.Program, runnerOpts options.Runner)
	}{
		{
			name: "frontend is case insensitive",
			args: []string{"-frontend", "TERM", "pong.ch8"},
			check: func(t *testing.T, opts options.Program, _ options.Runner) {
				assert.Equal(t, options.FrontendTerminal, opts.Frontend)
			},
		},
		{
			name: "headless steps",
			args: []string{"-frontend", "headless", "-steps", "500", "pong.ch8"},
			check: func(t *testing.T, _ options.Program, runnerOpts options.Runner) {
				assert.Equal(t, 500, runnerOpts.MaxSteps)
			},
		},
		{
			name: "cpu rate",
			args: []string{"-cpu", "1000", "pong.ch8"},
			check: func(t *testing.T, _ options.Program, runnerOpts options.Runner) {
				assert.Equal(t, time.Millisecond, runnerOpts.InstructionInterval)
			},
		},
		{
			name: "trace and seed",
			args: []string{"-trace", "-seed", "42", "pong.ch8"},
			check: func(t *testing.T, opts options.Program, runnerOpts options.Runner) {
				assert.True(t, runnerOpts.Trace)
				assert.Equal(t, int64(42), opts.Seed)
			},
		},
		{
			name: "input flag",
			args: []string{"-i", "pong.ch8", "-disasm"},
			check: func(t *testing.T, opts options.Program, _ options.Runner) {
				assert.Equal(t, "pong.ch8", opts.Input)
				assert.True(t, opts.Disasm)
			},
		},
		{
			name: "sdl without file",
			args: []string{},
			check: func(t *testing.T, opts options.Program, _ options.Runner) {
				assert.Equal(t, "", opts.Input)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, runnerOpts, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			tt.check(t, opts, runnerOpts)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"unknown frontend", []string{"-frontend", "vga", "pong.ch8"}, false},
		{"zero scale", []string{"-scale", "0", "pong.ch8"}, false},
		{"zero cpu", []string{"-cpu", "0", "pong.ch8"}, false},
		{"negative steps", []string{"-steps", "-1", "pong.ch8"}, false},
		{"flag after file", []string{"pong.ch8", "-debug"}, true},
		{"two files", []string{"pong.ch8", "tetris.ch8"}, true},
		{"terminal without file", []string{"-frontend", "term"}, true},
		{"disasm without file", []string{"-disasm"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseArgs(t, tt.args...)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}
