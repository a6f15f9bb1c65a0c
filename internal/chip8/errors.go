package chip8

import "errors"

var (
	// ErrRomLoad is returned when the ROM source can not be read.
	ErrRomLoad = errors.New("rom not loadable")
	// ErrRomTooLarge is returned when a program does not fit between ProgramStart and the end of memory.
	ErrRomTooLarge = errors.New("rom too large")
	// ErrStackOverflow is returned when a call is nested deeper than StackSize.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned on a return without a matching call.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrOutOfBounds is returned for memory accesses outside of 0x000-0xFFF.
	ErrOutOfBounds = errors.New("address out of bounds")
	// ErrProtected is returned when an instruction would write into the glyph table.
	ErrProtected = errors.New("write to protected glyph table")
)
