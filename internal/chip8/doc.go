// Package chip8 implements the CHIP-8 virtual machine interpreter.
//
// # Machine Overview
//
// CHIP-8 is an interpreted programming language developed in the 1970s for
// simple games on early microcomputers. The virtual machine consists of:
//   - 4KB of memory (0x000-MaxAddress), programs are loaded at ProgramStart
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as flag register
//   - a 16-bit index register I and the program counter PC
//   - delay and sound timer registers
//   - a call stack of StackSize return addresses
//   - a 64x32 monochrome display and a 16 key hexadecimal keypad
//
// # Memory Layout
//
//   - FontStart-0x04F: glyph table for the hexadecimal digits 0-F
//   - ProgramStart-MaxAddress: user program and data area
//
// # Execution
//
// The interpreter advances one instruction per Step: Fetch reads the
// big-endian opcode at PC and advances PC by 2, Execute decodes the opcode
// into an Instruction and dispatches it to its handler. Instructions that
// change the control flow override the already advanced PC.
//
// The interpreter has no clock. The driver decides how many instructions to
// execute per second and calls TickTimers at the timer frequency.
//
// # Errors
//
// Stack and memory bounds violations return ErrStackOverflow,
// ErrStackUnderflow or ErrOutOfBounds and leave the machine state unchanged
// apart from the program counter advance of the fetch. Unknown opcodes are
// logged at debug level and treated as no-op.
//
// # Usage Example
//
//	vm := chip8.New(logger, chip8.NewRandom(0))
//	if err := vm.LoadProgram(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if err := vm.Step(); err != nil {
//			return err
//		}
//		display := vm.Display()
//		// render display
//	}
package chip8
