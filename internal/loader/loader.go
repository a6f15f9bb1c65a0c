// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/sqweek/dialog"
)

// ErrNoFile is returned when no ROM file was passed and the file selection was cancelled.
var ErrNoFile = errors.New("no ROM file selected")

// Loader handles loading ROM files from disk.
type Loader struct {
	selectFile func() (string, error)
}

// New creates a new ROM loader that opens a native file dialog if no file name is given.
func New() *Loader {
	return &Loader{
		selectFile: selectFileDialog,
	}
}

// Load reads the ROM file at path. If path is empty, the user is asked to
// select a file. The returned path is the name of the loaded file.
func (l *Loader) Load(path string) ([]byte, string, error) {
	if path == "" {
		var err error
		path, err = l.selectFile()
		if err != nil {
			return nil, "", err
		}
	}

	rom, err := readFile(path)
	if err != nil {
		return nil, path, err
	}
	return rom, path, nil
}

// readFile reads a ROM file and rejects files that do not fit into the program area.
func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening file %s: %w", chip8.ErrRomLoad, path, err)
	}
	defer func() { _ = file.Close() }()

	rom, err := io.ReadAll(io.LimitReader(file, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading file %s: %w", chip8.ErrRomLoad, path, err)
	}
	if len(rom) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("%w: file %s exceeds %d bytes", chip8.ErrRomTooLarge, path, chip8.MaxProgramSize)
	}
	return rom, nil
}

func selectFileDialog() (string, error) {
	path, err := dialog.File().
		Filter("CHIP-8 ROM", "ch8", "c8").
		Filter("All files", "*").
		Title("Load CHIP-8 ROM").
		Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", ErrNoFile
		}
		return "", fmt.Errorf("selecting ROM file: %w", err)
	}
	return path, nil
}
