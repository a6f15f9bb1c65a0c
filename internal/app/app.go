// Package app provides the main application helpers for the interpreter.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/sdl"
	"github.com/retroenv/retrochip8/internal/frontend/term"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints the program name and version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}

// NewFrontend creates the frontend selected by the options.
func NewFrontend(logger *log.Logger, opts options.Program, path string) (runner.Frontend, error) {
	switch opts.Frontend {
	case options.FrontendSDL:
		title := "retrochip8 - " + filepath.Base(path)
		frontend, err := sdl.New(logger, title, opts.Scale)
		if err != nil {
			return nil, fmt.Errorf("creating sdl frontend: %w", err)
		}
		return frontend, nil

	case options.FrontendTerminal:
		frontend, err := term.New()
		if err != nil {
			return nil, fmt.Errorf("creating terminal frontend: %w", err)
		}
		return frontend, nil

	case options.FrontendHeadless:
		return headless.New(), nil

	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}
