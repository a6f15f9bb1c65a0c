package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// sequenceRandom returns the given bytes in order and repeats them.
type sequenceRandom struct {
	values []byte
	pos    int
}

func (r *sequenceRandom) Byte() byte {
	b := r.values[r.pos%len(r.values)]
	r.pos++
	return b
}

func newTestInterpreter(t *testing.T, program ...byte) *Interpreter {
	t.Helper()
	c := New(log.NewTestLogger(t), &sequenceRandom{values: []byte{0xFF}})
	assert.NoError(t, c.LoadProgram(program))
	return c
}

// execute runs opcodes directly without fetching them from memory.
func execute(t *testing.T, c *Interpreter, opcodes ...uint16) {
	t.Helper()
	for _, opcode := range opcodes {
		assert.NoError(t, c.Execute(opcode))
	}
}

func countPixels(d Display) int {
	n := 0
	for _, set := range d {
		if set {
			n++
		}
	}
	return n
}
