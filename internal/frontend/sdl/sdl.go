// Package sdl provides a frontend that renders the display into an SDL window
// and plays the sound timer tone through an SDL audio device.
package sdl

import (
	"fmt"
	"runtime"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend/keymap"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// Compile-time check to ensure Frontend implements runner.Frontend.
var _ runner.Frontend = (*Frontend)(nil)

func init() {
	// SDL has to be called from the main thread
	runtime.LockOSThread()
}

// newKeyMap returns the scancodes of the keyboard layout keys. scancode
// resolves a key code with the current keyboard layout of the system.
func newKeyMap(scancode func(sdl.Keycode) sdl.Scancode) map[sdl.Scancode]byte {
	keys := make(map[sdl.Scancode]byte, chip8.KeyCount)
	for key := range byte(chip8.KeyCount) {
		// key codes of printable keys are their lower case characters
		keys[scancode(sdl.Keycode(keymap.Rune(key)))] = key
	}
	return keys
}

// Display colors.
var (
	background = sdl.Color{R: 143, G: 145, B: 133, A: 255}
	foreground = sdl.Color{R: 17, G: 29, B: 43, A: 255}
)

// Frontend is an SDL window frontend.
type Frontend struct {
	logger   *log.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	keys     map[sdl.Scancode]byte
	scale    int32
	audio    *tone
}

// New opens a window with the given title that shows every display pixel as
// a square of scale by scale screen pixels.
func New(logger *log.Logger, title string, scale int) (*Frontend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	f := &Frontend{
		logger: logger,
		keys:   newKeyMap(sdl.GetScancodeFromKey),
		scale:  int32(scale),
	}
	width := int32(chip8.DisplayWidth) * f.scale
	height := int32(chip8.DisplayHeight) * f.scale

	var err error
	f.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	f.renderer, err = sdl.CreateRenderer(f.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = f.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	f.audio, err = openTone(logger)
	if err != nil {
		logger.Warn("Sound is disabled", log.Err(err))
	}
	return f, nil
}

// Render draws every set pixel of the display as a filled rectangle.
func (f *Frontend) Render(display chip8.Display) error {
	if err := f.setDrawColor(background); err != nil {
		return err
	}
	if err := f.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := f.setDrawColor(foreground); err != nil {
		return err
	}

	rect := sdl.Rect{W: f.scale, H: f.scale}
	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			if !display.Pixel(x, y) {
				continue
			}
			rect.X = int32(x) * f.scale
			rect.Y = int32(y) * f.scale
			if err := f.renderer.FillRect(&rect); err != nil {
				return fmt.Errorf("drawing pixel %d,%d: %w", x, y, err)
			}
		}
	}

	f.renderer.Present()
	return nil
}

func (f *Frontend) setDrawColor(c sdl.Color) error {
	if err := f.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}
	return nil
}

// Poll processes all pending SDL events. Escape or closing the window quits,
// backspace resets the program.
func (f *Frontend) Poll(keys chip8.KeySetter) runner.Action {
	action := runner.ActionNone

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return runner.ActionQuit

		case *sdl.KeyboardEvent:
			down := ev.Type == sdl.KEYDOWN
			if key, ok := f.keys[ev.Keysym.Scancode]; ok {
				keys.SetKey(key, down)
				continue
			}
			if !down {
				continue
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				return runner.ActionQuit
			case sdl.SCANCODE_BACKSPACE:
				action = runner.ActionReset
			}
		}
	}
	return action
}

// Beep plays a tone while the sound timer is active.
func (f *Frontend) Beep(active bool) {
	if f.audio != nil {
		f.audio.play(active)
	}
}

// Close destroys the window and shuts down SDL.
func (f *Frontend) Close() error {
	if f.audio != nil {
		f.audio.close()
	}
	if err := f.renderer.Destroy(); err != nil {
		return fmt.Errorf("destroying renderer: %w", err)
	}
	if err := f.window.Destroy(); err != nil {
		return fmt.Errorf("destroying window: %w", err)
	}
	sdl.Quit()
	return nil
}
