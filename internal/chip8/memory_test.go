package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemory_LoadFont(t *testing.T) {
	var m Memory
	m.LoadFont()

	zero := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}
	for i, expected := range zero {
		b, err := m.Read(uint16(i))
		assert.NoError(t, err)
		assert.Equal(t, expected, b)
	}

	last, err := m.Read(0x04F)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x80), last)
}

func TestMemory_LoadProgram(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"small", 4, false},
		{"exact fit", MaxProgramSize, false},
		{"one byte too large", MaxProgramSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Memory
			program := make([]byte, tt.size)
			for i := range program {
				program[i] = byte(i) | 1
			}

			err := m.LoadProgram(program)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrRomTooLarge))
				return
			}
			assert.NoError(t, err)
			if tt.size > 0 {
				b, err := m.Read(ProgramStart)
				assert.NoError(t, err)
				assert.Equal(t, program[0], b)

				b, err = m.Read(uint16(ProgramStart + tt.size - 1))
				assert.NoError(t, err)
				assert.Equal(t, program[tt.size-1], b)
			}
		})
	}
}

func TestMemory_Bounds(t *testing.T) {
	var m Memory

	assert.NoError(t, m.Write(MaxAddress, 0xAB))
	b, err := m.Read(MaxAddress)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)

	_, err = m.Read(MemorySize)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	err = m.Write(0xFFFF, 1)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestCheckRange(t *testing.T) {
	assert.NoError(t, checkRange(0xFFD, 3))
	assert.True(t, errors.Is(checkRange(0xFFE, 3), ErrOutOfBounds))
}

func TestGlyphAddress(t *testing.T) {
	assert.Equal(t, uint16(0x000), GlyphAddress(0x0))
	assert.Equal(t, uint16(0x04B), GlyphAddress(0xF))
	assert.Equal(t, uint16(0x005), GlyphAddress(0x21))
}
