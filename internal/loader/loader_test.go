package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})

		rom, path, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, tmpFile, path)
		assert.Len(t, rom, 4)
		assert.Equal(t, byte(0x12), rom[0])
		assert.Equal(t, byte(0x78), rom[3])
	})

	t.Run("load maximum size", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize))

		rom, _, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, rom, chip8.MaxProgramSize)
	})

	t.Run("file too large", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize+1))

		_, _, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, chip8.ErrRomTooLarge))
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.ch8")

		_, _, err := New().Load(path)
		assert.True(t, errors.Is(err, chip8.ErrRomLoad))
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.ErrorContains(t, err, "missing.ch8")
	})
}

func TestLoad_SelectFile(t *testing.T) {
	tmpFile := createTempFile(t, []byte{0x00, 0xE0})

	l := &Loader{selectFile: func() (string, error) { return tmpFile, nil }}
	rom, path, err := l.Load("")
	assert.NoError(t, err)
	assert.Equal(t, tmpFile, path)
	assert.Len(t, rom, 2)

	l = &Loader{selectFile: func() (string, error) { return "", ErrNoFile }}
	_, _, err = l.Load("")
	assert.True(t, errors.Is(err, ErrNoFile))
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
