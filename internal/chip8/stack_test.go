package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStack_RoundTrip(t *testing.T) {
	var s Stack
	assert.NoError(t, s.Push(0x100))

	for _, address := range []uint16{0x000, 0x202, 0x7FE, 0xFFF} {
		depth := s.Depth()
		assert.NoError(t, s.Push(address))

		got, err := s.Pop()
		assert.NoError(t, err)
		assert.Equal(t, address, got)
		assert.Equal(t, depth, s.Depth())
	}
}

func TestStack_Bounds(t *testing.T) {
	var s Stack
	for i := range StackSize {
		assert.NoError(t, s.Push(uint16(0x200+2*i)))
	}
	assert.Equal(t, StackSize, s.Depth())

	err := s.Push(0x400)
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, StackSize, s.Depth())

	for i := StackSize - 1; i >= 0; i-- {
		address, err := s.Pop()
		assert.NoError(t, err)
		assert.Equal(t, uint16(0x200+2*i), address)
	}

	_, err = s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, 0, s.Depth())
}
