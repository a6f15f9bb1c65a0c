package chip8

type handler func(c *Interpreter, ins Instruction) error

// handlers maps every known instruction kind to its implementation.
var handlers = [opCount]handler{
	OpNop:     (*Interpreter).nop,
	OpCls:     (*Interpreter).cls,
	OpRet:     (*Interpreter).ret,
	OpJp:      (*Interpreter).jp,
	OpCall:    (*Interpreter).call,
	OpSeByte:  (*Interpreter).seByte,
	OpSneByte: (*Interpreter).sneByte,
	OpSeReg:   (*Interpreter).seReg,
	OpLdByte:  (*Interpreter).ldByte,
	OpAddByte: (*Interpreter).addByte,
	OpLdReg:   (*Interpreter).ldReg,
	OpOr:      (*Interpreter).or,
	OpAnd:     (*Interpreter).and,
	OpXor:     (*Interpreter).xor,
	OpAddReg:  (*Interpreter).addReg,
	OpSub:     (*Interpreter).sub,
	OpShr:     (*Interpreter).shr,
	OpSubn:    (*Interpreter).subn,
	OpShl:     (*Interpreter).shl,
	OpSneReg:  (*Interpreter).sneReg,
	OpLdI:     (*Interpreter).ldI,
	OpJpV0:    (*Interpreter).jpV0,
	OpRnd:     (*Interpreter).rnd,
	OpDrw:     (*Interpreter).drw,
	OpSkp:     (*Interpreter).skp,
	OpSknp:    (*Interpreter).sknp,
	OpLdVxDT:  (*Interpreter).ldVxDT,
	OpLdKey:   (*Interpreter).ldKey,
	OpLdDTVx:  (*Interpreter).ldDTVx,
	OpLdSTVx:  (*Interpreter).ldSTVx,
	OpAddI:    (*Interpreter).addI,
	OpLdF:     (*Interpreter).ldF,
	OpLdB:     (*Interpreter).ldB,
	OpLdIVx:   (*Interpreter).ldIVx,
	OpLdVxI:   (*Interpreter).ldVxI,
}

func (c *Interpreter) nop(_ Instruction) error {
	return nil
}

// cls clears the display.
func (c *Interpreter) cls(_ Instruction) error {
	c.display.Clear()
	c.redraw = true
	return nil
}

// ret returns from a subroutine.
func (c *Interpreter) ret(_ Instruction) error {
	address, err := c.stack.Pop()
	if err != nil {
		return err
	}
	c.registers.PC = address
	return nil
}

// jp jumps to address NNN.
func (c *Interpreter) jp(ins Instruction) error {
	c.registers.PC = ins.NNN
	return nil
}

// call pushes the address of the next instruction and jumps to NNN.
func (c *Interpreter) call(ins Instruction) error {
	if err := c.stack.Push(c.registers.PC); err != nil {
		return err
	}
	c.registers.PC = ins.NNN
	return nil
}

// skipIf skips the next instruction if the condition holds.
func (c *Interpreter) skipIf(condition bool) {
	if condition {
		c.registers.PC += 2
	}
}

func (c *Interpreter) seByte(ins Instruction) error {
	c.skipIf(c.registers.V[ins.X] == ins.NN)
	return nil
}

func (c *Interpreter) sneByte(ins Instruction) error {
	c.skipIf(c.registers.V[ins.X] != ins.NN)
	return nil
}

func (c *Interpreter) seReg(ins Instruction) error {
	c.skipIf(c.registers.V[ins.X] == c.registers.V[ins.Y])
	return nil
}

func (c *Interpreter) sneReg(ins Instruction) error {
	c.skipIf(c.registers.V[ins.X] != c.registers.V[ins.Y])
	return nil
}

func (c *Interpreter) ldByte(ins Instruction) error {
	c.registers.V[ins.X] = ins.NN
	return nil
}

// addByte adds NN to VX without touching the carry flag.
func (c *Interpreter) addByte(ins Instruction) error {
	c.registers.V[ins.X] += ins.NN
	return nil
}

func (c *Interpreter) ldReg(ins Instruction) error {
	c.registers.V[ins.X] = c.registers.V[ins.Y]
	return nil
}

func (c *Interpreter) or(ins Instruction) error {
	c.registers.V[ins.X] |= c.registers.V[ins.Y]
	return nil
}

func (c *Interpreter) and(ins Instruction) error {
	c.registers.V[ins.X] &= c.registers.V[ins.Y]
	return nil
}

func (c *Interpreter) xor(ins Instruction) error {
	c.registers.V[ins.X] ^= c.registers.V[ins.Y]
	return nil
}

// The flag producing instructions below compute the operands first and write
// VF last, so that VF holds the flag if it is also the destination register.

// addReg adds VY to VX, VF is set on carry.
func (c *Interpreter) addReg(ins Instruction) error {
	x, y := c.registers.V[ins.X], c.registers.V[ins.Y]
	sum := uint16(x) + uint16(y)
	c.registers.V[ins.X] = byte(sum)
	c.registers.setFlag(sum > 0xFF)
	return nil
}

// sub subtracts VY from VX, VF is set if no borrow occurred.
func (c *Interpreter) sub(ins Instruction) error {
	x, y := c.registers.V[ins.X], c.registers.V[ins.Y]
	c.registers.V[ins.X] = x - y
	c.registers.setFlag(x >= y)
	return nil
}

// subn sets VX to VY minus VX, VF is set if no borrow occurred.
func (c *Interpreter) subn(ins Instruction) error {
	x, y := c.registers.V[ins.X], c.registers.V[ins.Y]
	c.registers.V[ins.X] = y - x
	c.registers.setFlag(y >= x)
	return nil
}

// shr shifts VX right by one, VF receives the shifted out bit.
func (c *Interpreter) shr(ins Instruction) error {
	x := c.registers.V[ins.X]
	c.registers.V[ins.X] = x >> 1
	c.registers.V[FlagRegister] = x & 1
	return nil
}

// shl shifts VX left by one, VF receives the shifted out bit.
func (c *Interpreter) shl(ins Instruction) error {
	x := c.registers.V[ins.X]
	c.registers.V[ins.X] = x << 1
	c.registers.V[FlagRegister] = x >> 7
	return nil
}

func (c *Interpreter) ldI(ins Instruction) error {
	c.registers.I = ins.NNN
	return nil
}

// jpV0 jumps to NNN plus V0.
func (c *Interpreter) jpV0(ins Instruction) error {
	c.registers.PC = uint16(c.registers.V[0]) + ins.NNN
	return nil
}

// rnd sets VX to a random byte masked with NN.
func (c *Interpreter) rnd(ins Instruction) error {
	c.registers.V[ins.X] = c.random.Byte() & ins.NN
	return nil
}

// drw XORs an N rows high sprite read from I onto the display at VX, VY.
// Coordinates wrap around the display edges. VF is set if any pixel was
// turned off. The sprite is read completely before the display is changed.
func (c *Interpreter) drw(ins Instruction) error {
	var rows [16]byte
	sprite := rows[:ins.N]
	for r := range sprite {
		b, err := c.memory.Read(c.registers.I + uint16(r))
		if err != nil {
			return err
		}
		sprite[r] = b
	}

	x0 := int(c.registers.V[ins.X])
	y0 := int(c.registers.V[ins.Y])
	collision := false

	for r, pixels := range sprite {
		for col := range 8 {
			if pixels&(0x80>>col) == 0 {
				continue
			}
			if c.display.flip(x0+col, y0+r) {
				collision = true
			}
		}
	}

	c.registers.setFlag(collision)
	c.redraw = true
	return nil
}

// skp skips the next instruction if the key in VX is pressed.
func (c *Interpreter) skp(ins Instruction) error {
	c.skipIf(c.keys[c.registers.V[ins.X]&0xF])
	return nil
}

// sknp skips the next instruction if the key in VX is not pressed.
func (c *Interpreter) sknp(ins Instruction) error {
	c.skipIf(!c.keys[c.registers.V[ins.X]&0xF])
	return nil
}

func (c *Interpreter) ldVxDT(ins Instruction) error {
	c.registers.V[ins.X] = c.registers.DT
	return nil
}

// ldKey waits for a key press by executing itself again until a key is down.
func (c *Interpreter) ldKey(ins Instruction) error {
	key, ok := c.keys.Pressed()
	if !ok {
		c.registers.PC -= 2
		return nil
	}
	c.registers.V[ins.X] = key
	return nil
}

func (c *Interpreter) ldDTVx(ins Instruction) error {
	c.registers.DT = c.registers.V[ins.X]
	return nil
}

func (c *Interpreter) ldSTVx(ins Instruction) error {
	c.registers.ST = c.registers.V[ins.X]
	return nil
}

// addI adds VX to I, the result stays within the address space.
func (c *Interpreter) addI(ins Instruction) error {
	c.registers.I = (c.registers.I + uint16(c.registers.V[ins.X])) & MaxAddress
	return nil
}

// ldF points I at the glyph for the digit in VX.
func (c *Interpreter) ldF(ins Instruction) error {
	c.registers.I = GlyphAddress(c.registers.V[ins.X])
	return nil
}

// ldB stores the binary-coded decimal digits of VX at I, I+1 and I+2.
func (c *Interpreter) ldB(ins Instruction) error {
	i := c.registers.I
	if err := checkWritable(i, 3); err != nil {
		return err
	}

	v := c.registers.V[ins.X]
	digits := [3]byte{v / 100, v / 10 % 10, v % 10}
	for n, d := range digits {
		_ = c.memory.Write(i+uint16(n), d)
	}
	return nil
}

// ldIVx stores V0 through VX in memory starting at I.
func (c *Interpreter) ldIVx(ins Instruction) error {
	i := c.registers.I
	if err := checkWritable(i, ins.X+1); err != nil {
		return err
	}

	for n := 0; n <= ins.X; n++ {
		_ = c.memory.Write(i+uint16(n), c.registers.V[n])
	}
	return nil
}

// ldVxI fills V0 through VX from memory starting at I.
func (c *Interpreter) ldVxI(ins Instruction) error {
	i := c.registers.I
	if err := checkRange(i, ins.X+1); err != nil {
		return err
	}

	for n := 0; n <= ins.X; n++ {
		c.registers.V[n], _ = c.memory.Read(i + uint16(n))
	}
	return nil
}
