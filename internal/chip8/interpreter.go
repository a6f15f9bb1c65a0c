package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Tracer is called for every instruction before it is executed.
type Tracer func(address uint16, ins Instruction)

// Interpreter is the CHIP-8 virtual machine. It is not safe for concurrent use,
// the owning driver decides when to step and when to read the display.
type Interpreter struct {
	logger *log.Logger
	random RandomSource
	tracer Tracer

	memory    Memory
	registers Registers
	stack     Stack
	display   Display
	keys      Keypad

	program []byte // last loaded program, restored on reset
	redraw  bool   // display changed since the last Redraw call
}

// Compile-time check to ensure Interpreter accepts key input.
var _ KeySetter = (*Interpreter)(nil)

// New returns a new interpreter that consults random for the RND instruction.
func New(logger *log.Logger, random RandomSource) *Interpreter {
	c := &Interpreter{
		logger: logger,
		random: random,
	}
	c.Reset()
	return c
}

// SetTracer installs a function that is called before each executed instruction.
func (c *Interpreter) SetTracer(tracer Tracer) {
	c.tracer = tracer
}

// Reset restores the machine to its power-on state: memory is cleared and
// re-seeded with the glyph table and the last loaded program, registers are
// zeroed, the stack is emptied and the display and keys are cleared.
func (c *Interpreter) Reset() {
	c.memory.clear()
	c.memory.LoadFont()
	// the program was validated when it was loaded
	_ = c.memory.LoadProgram(c.program)

	c.registers.reset()
	c.stack.reset()
	c.display.Clear()
	c.keys = Keypad{}
	c.redraw = true
}

// LoadProgram resets the machine and copies the program into memory at ProgramStart.
func (c *Interpreter) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrRomTooLarge, len(program), MaxProgramSize)
	}

	c.program = make([]byte, len(program))
	copy(c.program, program)
	c.Reset()
	return nil
}

// Fetch reads the big-endian opcode at the program counter and advances the program counter by 2.
func (c *Interpreter) Fetch() (uint16, error) {
	pc := c.registers.PC
	high, err := c.memory.Read(pc)
	if err != nil {
		return 0, fmt.Errorf("fetching opcode: %w", err)
	}
	low, err := c.memory.Read(pc + 1)
	if err != nil {
		return 0, fmt.Errorf("fetching opcode: %w", err)
	}

	c.registers.PC += 2
	return uint16(high)<<8 | uint16(low), nil
}

// Execute decodes and executes a single opcode that was fetched from the
// instruction before the program counter. Unknown opcodes are logged and
// ignored, all other failures stop the instruction before it changes any state.
func (c *Interpreter) Execute(opcode uint16) error {
	return c.execute(c.registers.PC-2, opcode)
}

// execute runs the opcode that was fetched from the address.
func (c *Interpreter) execute(address, opcode uint16) error {
	ins := Decode(opcode)
	if c.tracer != nil {
		c.tracer(address, ins)
	}

	if ins.Op == OpUnknown {
		c.logger.Debug("Ignoring unknown opcode",
			log.Hex("opcode", opcode),
			log.Hex("address", address))
		return nil
	}
	return handlers[ins.Op](c, ins)
}

// Step fetches and executes the next instruction.
func (c *Interpreter) Step() error {
	address := c.registers.PC
	opcode, err := c.Fetch()
	if err != nil {
		return fmt.Errorf("at $%04X: %w", address, err)
	}
	if err := c.execute(address, opcode); err != nil {
		return fmt.Errorf("executing opcode $%04X at $%04X: %w", opcode, address, err)
	}
	return nil
}

// SetKey sets the pressed state of a key. Keys outside of 0-F are ignored.
func (c *Interpreter) SetKey(key byte, down bool) {
	if int(key) < KeyCount {
		c.keys[key] = down
	}
}

// TickTimers decrements the delay and sound timers. The caller is responsible
// for calling it at the timer frequency, usually 60 Hz.
func (c *Interpreter) TickTimers() {
	if c.registers.DT > 0 {
		c.registers.DT--
	}
	if c.registers.ST > 0 {
		c.registers.ST--
	}
}

// SoundActive returns whether the sound timer is running.
func (c *Interpreter) SoundActive() bool {
	return c.registers.ST > 0
}

// Display returns a copy of the current display.
func (c *Interpreter) Display() Display {
	return c.display
}

// Redraw returns whether the display changed since the last call.
func (c *Interpreter) Redraw() bool {
	redraw := c.redraw
	c.redraw = false
	return redraw
}

// Registers returns a copy of the register file.
func (c *Interpreter) Registers() Registers {
	return c.registers
}

// StackDepth returns the current call nesting depth.
func (c *Interpreter) StackDepth() int {
	return c.stack.Depth()
}

// ReadMemory returns the byte at the given address.
func (c *Interpreter) ReadMemory(address uint16) (byte, error) {
	return c.memory.Read(address)
}
