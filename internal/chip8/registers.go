package chip8

// RegisterCount is the number of general purpose registers.
const RegisterCount = 16

// FlagRegister is the index of VF, written by arithmetic, shift and draw instructions.
const FlagRegister = 0xF

// Registers contains the register file of the machine.
type Registers struct {
	V  [RegisterCount]byte // general purpose registers V0-VF
	I  uint16              // index register
	PC uint16              // program counter
	DT byte                // delay timer
	ST byte                // sound timer
}

// reset zeroes all registers and points the program counter at the program start.
func (r *Registers) reset() {
	*r = Registers{PC: ProgramStart}
}

// setFlag sets VF to 1 if the condition holds, otherwise to 0.
func (r *Registers) setFlag(condition bool) {
	if condition {
		r.V[FlagRegister] = 1
	} else {
		r.V[FlagRegister] = 0
	}
}
