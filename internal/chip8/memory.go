package chip8

import "fmt"

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: Hexadecimal glyph table (80 bytes)
//	0x050-0x1FF: Unused interpreter area
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// MemorySize is the number of addressable bytes.
	MemorySize = 0x1000

	// ProgramStart is the memory address where programs are loaded and start executing.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in memory.
	MaxAddress = MemorySize - 1

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart
)

// Memory is the flat 4KB address space of the machine.
type Memory struct {
	data [MemorySize]byte
}

// LoadFont copies the glyph table to the start of memory.
func (m *Memory) LoadFont() {
	copy(m.data[FontStart:], font[:])
}

// LoadProgram copies a program into memory starting at ProgramStart.
func (m *Memory) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrRomTooLarge, len(program), MaxProgramSize)
	}
	copy(m.data[ProgramStart:], program)
	return nil
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if address > MaxAddress {
		return 0, fmt.Errorf("%w: read at $%04X", ErrOutOfBounds, address)
	}
	return m.data[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if address > MaxAddress {
		return fmt.Errorf("%w: write at $%04X", ErrOutOfBounds, address)
	}
	m.data[address] = value
	return nil
}

// checkRange verifies that count bytes starting at address are addressable.
func checkRange(address uint16, count int) error {
	if int(address)+count > MemorySize {
		return fmt.Errorf("%w: %d bytes at $%04X", ErrOutOfBounds, count, address)
	}
	return nil
}

// checkWritable verifies that count bytes starting at address are addressable
// and outside of the glyph table.
func checkWritable(address uint16, count int) error {
	if err := checkRange(address, count); err != nil {
		return err
	}
	if int(address) < FontStart+len(font) {
		return fmt.Errorf("%w: %d bytes at $%04X", ErrProtected, count, address)
	}
	return nil
}

// clear zeroes the whole address space.
func (m *Memory) clear() {
	m.data = [MemorySize]byte{}
}
