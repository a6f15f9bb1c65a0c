// Package disasm formats CHIP-8 opcodes as assembly and writes program listings.
package disasm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// lookup returns the instruction of the opcode table entry matching the opcode,
// or nil if the opcode is not a known instruction.
func lookup(opcode uint16) *chip8cpu.Instruction {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8cpu.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

// Mnemonic returns the assembly representation of an opcode, for example
// "ld V1, $0A". Opcodes that do not decode are returned as a data word.
func Mnemonic(opcode uint16) string {
	ins := lookup(opcode)
	if ins == nil {
		return dataWord(opcode)
	}

	if params := operands(chip8.Decode(opcode)); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

func dataWord(opcode uint16) string {
	return fmt.Sprintf(".word $%04X", opcode)
}

// operands formats the parameters of a decoded instruction.
func operands(ins chip8.Instruction) string {
	switch ins.Op {
	case chip8.OpJp, chip8.OpCall:
		return fmt.Sprintf("$%03X", ins.NNN)
	case chip8.OpJpV0:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case chip8.OpLdI:
		return fmt.Sprintf("I, $%03X", ins.NNN)

	case chip8.OpSeByte, chip8.OpSneByte, chip8.OpLdByte, chip8.OpAddByte, chip8.OpRnd:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)

	case chip8.OpSeReg, chip8.OpSneReg, chip8.OpLdReg, chip8.OpOr, chip8.OpAnd,
		chip8.OpXor, chip8.OpAddReg, chip8.OpSub, chip8.OpSubn:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)

	case chip8.OpShr, chip8.OpShl, chip8.OpSkp, chip8.OpSknp:
		return fmt.Sprintf("V%X", ins.X)

	case chip8.OpDrw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)

	case chip8.OpLdVxDT:
		return fmt.Sprintf("V%X, DT", ins.X)
	case chip8.OpLdKey:
		return fmt.Sprintf("V%X, K", ins.X)
	case chip8.OpLdDTVx:
		return fmt.Sprintf("DT, V%X", ins.X)
	case chip8.OpLdSTVx:
		return fmt.Sprintf("ST, V%X", ins.X)
	case chip8.OpAddI:
		return fmt.Sprintf("I, V%X", ins.X)
	case chip8.OpLdF:
		return fmt.Sprintf("F, V%X", ins.X)
	case chip8.OpLdB:
		return fmt.Sprintf("B, V%X", ins.X)
	case chip8.OpLdIVx:
		return fmt.Sprintf("[I], V%X", ins.X)
	case chip8.OpLdVxI:
		return fmt.Sprintf("V%X, [I]", ins.X)
	}
	return "" // cls, ret and instructions without parameters
}
