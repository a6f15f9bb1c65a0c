package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestInterpreter_BCD(t *testing.T) {
	tests := []struct {
		value  byte
		digits [3]byte
	}{
		{0, [3]byte{0, 0, 0}},
		{7, [3]byte{0, 0, 7}},
		{42, [3]byte{0, 4, 2}},
		{255, [3]byte{2, 5, 5}},
	}

	for _, tt := range tests {
		c := newTestInterpreter(t)
		c.registers.V[4] = tt.value
		execute(t, c, 0xA400, 0xF433)

		for n, expected := range tt.digits {
			b, err := c.ReadMemory(0x400 + uint16(n))
			assert.NoError(t, err)
			assert.Equal(t, expected, b)
		}
		assert.Equal(t, uint16(0x400), c.Registers().I)
	}
}

func TestInterpreter_BCDOutOfBounds(t *testing.T) {
	c := newTestInterpreter(t)
	c.registers.V[0] = 123
	execute(t, c, 0xAFFE)

	err := c.Execute(0xF033)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	b, err := c.ReadMemory(0xFFE)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)
}

func TestInterpreter_StoreLoadRegisters(t *testing.T) {
	c := newTestInterpreter(t)
	for i := range RegisterCount {
		c.registers.V[i] = byte(0x10 + i)
	}
	execute(t, c, 0xA500, 0xF555)

	for i := 0; i <= 5; i++ {
		b, err := c.ReadMemory(0x500 + uint16(i))
		assert.NoError(t, err)
		assert.Equal(t, byte(0x10+i), b)
	}
	b, err := c.ReadMemory(0x506)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)

	c.registers.V = [RegisterCount]byte{}
	execute(t, c, 0xF365)
	for i := 0; i <= 3; i++ {
		assert.Equal(t, byte(0x10+i), c.Registers().V[i])
	}
	assert.Equal(t, byte(0), c.Registers().V[4])
	assert.Equal(t, uint16(0x500), c.Registers().I)
}

func TestInterpreter_StoreLoadOutOfBounds(t *testing.T) {
	c := newTestInterpreter(t)
	c.registers.V[0] = 0xAA
	execute(t, c, 0xAFFD)

	err := c.Execute(0xF355)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	b, err := c.ReadMemory(0xFFD)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)

	c.registers.V[1] = 0x33
	err = c.Execute(0xF365)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	assert.Equal(t, byte(0x33), c.Registers().V[1])

	// three bytes fit exactly
	assert.NoError(t, c.Execute(0xF255))
}

func TestInterpreter_GlyphTableProtected(t *testing.T) {
	c := newTestInterpreter(t)
	c.registers.V[0] = 0xAA
	c.registers.V[1] = 0xBB

	execute(t, c, 0xA04E)
	before, err := c.ReadMemory(0x04E)
	assert.NoError(t, err)

	err = c.Execute(0xF155)
	assert.True(t, errors.Is(err, ErrProtected))
	err = c.Execute(0xF033)
	assert.True(t, errors.Is(err, ErrProtected))

	after, err := c.ReadMemory(0x04E)
	assert.NoError(t, err)
	assert.Equal(t, before, after)

	// reading glyphs into registers is allowed
	execute(t, c, 0xA000, 0xF065)
	assert.Equal(t, byte(0xF0), c.Registers().V[0])

	// the first byte after the glyph table is writable
	execute(t, c, 0xA050, 0xF033)
}

func TestInterpreter_Glyph(t *testing.T) {
	c := newTestInterpreter(t)
	execute(t, c, 0x6A0B, 0xFA29)
	assert.Equal(t, uint16(0x037), c.Registers().I)

	b, err := c.ReadMemory(c.Registers().I)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xE0), b)

	// only the low nibble selects the glyph
	execute(t, c, 0x6AF1, 0xFA29)
	assert.Equal(t, uint16(0x005), c.Registers().I)
}

func TestInterpreter_AddIndex(t *testing.T) {
	c := newTestInterpreter(t)
	c.registers.V[FlagRegister] = 0x07
	execute(t, c, 0xA100, 0x6220, 0xF21E)
	assert.Equal(t, uint16(0x120), c.Registers().I)
	assert.Equal(t, byte(0x07), c.Registers().V[FlagRegister])

	execute(t, c, 0xAFFF, 0x6202, 0xF21E)
	assert.Equal(t, uint16(0x001), c.Registers().I)
}

func TestInterpreter_KeySkip(t *testing.T) {
	c := newTestInterpreter(t)
	execute(t, c, 0x6305)

	execute(t, c, 0xE39E)
	assert.Equal(t, uint16(ProgramStart), c.Registers().PC)
	execute(t, c, 0xE3A1)
	assert.Equal(t, uint16(ProgramStart+2), c.Registers().PC)

	c.SetKey(5, true)
	execute(t, c, 0xE39E)
	assert.Equal(t, uint16(ProgramStart+4), c.Registers().PC)
	execute(t, c, 0xE3A1)
	assert.Equal(t, uint16(ProgramStart+4), c.Registers().PC)

	c.SetKey(5, false)
	c.SetKey(0x10, true)
	execute(t, c, 0xE39E)
	assert.Equal(t, uint16(ProgramStart+4), c.Registers().PC)
}

func TestInterpreter_WaitForKey(t *testing.T) {
	c := newTestInterpreter(t, 0xF2, 0x0A, 0x12, 0x00)

	for range 3 {
		assert.NoError(t, c.Step())
		assert.Equal(t, uint16(ProgramStart), c.Registers().PC)
	}

	c.SetKey(0xC, true)
	c.SetKey(0x9, true)
	assert.NoError(t, c.Step())
	assert.Equal(t, uint16(ProgramStart+2), c.Registers().PC)
	assert.Equal(t, byte(0x9), c.Registers().V[2])
}

func TestInterpreter_Timers(t *testing.T) {
	c := newTestInterpreter(t)
	execute(t, c, 0x6003, 0xF015, 0x6101, 0xF118)
	assert.Equal(t, byte(3), c.Registers().DT)
	assert.Equal(t, byte(1), c.Registers().ST)
	assert.True(t, c.SoundActive())

	c.TickTimers()
	assert.False(t, c.SoundActive())
	execute(t, c, 0xF507)
	assert.Equal(t, byte(2), c.Registers().V[5])

	c.TickTimers()
	c.TickTimers()
	c.TickTimers()
	assert.Equal(t, byte(0), c.Registers().DT)
	assert.Equal(t, byte(0), c.Registers().ST)
}

func TestNewRandom(t *testing.T) {
	a := NewRandom(1234)
	b := NewRandom(1234)
	for range 32 {
		assert.Equal(t, a.Byte(), b.Byte())
	}

	assert.NotNil(t, NewRandom(0))
}
