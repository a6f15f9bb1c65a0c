package chip8

// Op identifies a decoded instruction kind.
type Op uint8

// Decoded instruction kinds. The naming follows the operand pattern of the opcode:
// Byte takes an immediate byte, Reg takes a second register.
const (
	OpUnknown Op = iota
	OpNop        // 0000
	OpCls        // 00E0
	OpRet        // 00EE
	OpJp         // 1NNN
	OpCall       // 2NNN
	OpSeByte     // 3XNN
	OpSneByte    // 4XNN
	OpSeReg      // 5XY0
	OpLdByte     // 6XNN
	OpAddByte    // 7XNN
	OpLdReg      // 8XY0
	OpOr         // 8XY1
	OpAnd        // 8XY2
	OpXor        // 8XY3
	OpAddReg     // 8XY4
	OpSub        // 8XY5
	OpShr        // 8XY6
	OpSubn       // 8XY7
	OpShl        // 8XYE
	OpSneReg     // 9XY0
	OpLdI        // ANNN
	OpJpV0       // BNNN
	OpRnd        // CXNN
	OpDrw        // DXYN
	OpSkp        // EX9E
	OpSknp       // EXA1
	OpLdVxDT     // FX07
	OpLdKey      // FX0A
	OpLdDTVx     // FX15
	OpLdSTVx     // FX18
	OpAddI       // FX1E
	OpLdF        // FX29
	OpLdB        // FX33
	OpLdIVx      // FX55
	OpLdVxI      // FX65

	opCount
)

var opNames = [opCount]string{
	OpUnknown: "unknown",
	OpNop:     "nop",
	OpCls:     "cls",
	OpRet:     "ret",
	OpJp:      "jp",
	OpCall:    "call",
	OpSeByte:  "se byte",
	OpSneByte: "sne byte",
	OpSeReg:   "se reg",
	OpLdByte:  "ld byte",
	OpAddByte: "add byte",
	OpLdReg:   "ld reg",
	OpOr:      "or",
	OpAnd:     "and",
	OpXor:     "xor",
	OpAddReg:  "add reg",
	OpSub:     "sub",
	OpShr:     "shr",
	OpSubn:    "subn",
	OpShl:     "shl",
	OpSneReg:  "sne reg",
	OpLdI:     "ld i",
	OpJpV0:    "jp v0",
	OpRnd:     "rnd",
	OpDrw:     "drw",
	OpSkp:     "skp",
	OpSknp:    "sknp",
	OpLdVxDT:  "ld vx, dt",
	OpLdKey:   "ld vx, k",
	OpLdDTVx:  "ld dt, vx",
	OpLdSTVx:  "ld st, vx",
	OpAddI:    "add i, vx",
	OpLdF:     "ld f, vx",
	OpLdB:     "ld b, vx",
	OpLdIVx:   "ld [i], vx",
	OpLdVxI:   "ld vx, [i]",
}

// String returns a short name of the instruction kind.
func (o Op) String() string {
	if o >= opCount {
		return opNames[OpUnknown]
	}
	return opNames[o]
}

// Instruction is a decoded opcode with its operand fields extracted.
type Instruction struct {
	Op     Op
	Opcode uint16

	X   int    // second nibble, register index
	Y   int    // third nibble, register index
	N   byte   // lowest nibble
	NN  byte   // low byte
	NNN uint16 // low 12 bits, address
}

// Decode splits an opcode into its nibbles and identifies the instruction.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		X:      int(opcode>>8) & 0xF,
		Y:      int(opcode>>4) & 0xF,
		N:      byte(opcode & 0xF),
		NN:     byte(opcode),
		NNN:    opcode & 0x0FFF,
	}
	ins.Op = decodeOp(opcode, ins.N, ins.NN)
	return ins
}

func decodeOp(opcode uint16, n, nn byte) Op {
	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x0000:
			return OpNop
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		}
	case 0x1:
		return OpJp
	case 0x2:
		return OpCall
	case 0x3:
		return OpSeByte
	case 0x4:
		return OpSneByte
	case 0x5:
		if n == 0 {
			return OpSeReg
		}
	case 0x6:
		return OpLdByte
	case 0x7:
		return OpAddByte
	case 0x8:
		return aluOps[n]
	case 0x9:
		if n == 0 {
			return OpSneReg
		}
	case 0xA:
		return OpLdI
	case 0xB:
		return OpJpV0
	case 0xC:
		return OpRnd
	case 0xD:
		return OpDrw
	case 0xE:
		switch nn {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF:
		return miscOps[nn]
	}
	return OpUnknown
}

// aluOps maps the lowest nibble of 8XYN opcodes to the instruction kind.
var aluOps = [16]Op{
	0x0: OpLdReg,
	0x1: OpOr,
	0x2: OpAnd,
	0x3: OpXor,
	0x4: OpAddReg,
	0x5: OpSub,
	0x6: OpShr,
	0x7: OpSubn,
	0xE: OpShl,
}

// miscOps maps the low byte of FXNN opcodes to the instruction kind.
var miscOps = map[byte]Op{
	0x07: OpLdVxDT,
	0x0A: OpLdKey,
	0x15: OpLdDTVx,
	0x18: OpLdSTVx,
	0x1E: OpAddI,
	0x29: OpLdF,
	0x33: OpLdB,
	0x55: OpLdIVx,
	0x65: OpLdVxI,
}
