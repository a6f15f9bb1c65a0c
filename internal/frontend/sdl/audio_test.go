package sdl

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestSquareWave(t *testing.T) {
	samples := squareWave(8, 4)
	assert.Len(t, samples, 8)
	for i, expected := range []byte{0xA0, 0xA0, 0x60, 0x60, 0xA0, 0xA0, 0x60, 0x60} {
		assert.Equal(t, expected, samples[i])
	}
}

func TestNewKeyMap(t *testing.T) {
	keys := newKeyMap(func(code sdl.Keycode) sdl.Scancode {
		return sdl.Scancode(code)
	})
	assert.Len(t, keys, 16)

	expected := map[rune]byte{
		'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
		'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
		'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
		'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
	}
	for r, key := range expected {
		k, ok := keys[sdl.Scancode(r)]
		assert.True(t, ok, string(r))
		assert.Equal(t, key, k)
	}
}
