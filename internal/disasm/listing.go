package disasm

import (
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/set"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
	dataNaming  = "_data_%04x"

	bytesPerDataLine = 8
)

// listing contains the result of following the execution flow of a program.
type listing struct {
	rom []byte
	end uint16 // first address after the program

	code     set.Set[uint16] // addresses of decoded instructions
	dataRefs set.Set[uint16] // addresses loaded into I
	labels   map[uint16]string

	offsetsToParse      []uint16
	offsetsToParseAdded set.Set[uint16]
}

// WriteListing disassembles a program as it is loaded at chip8.ProgramStart
// and writes the assembly listing to w. Code is found by following jumps,
// calls and skips from the program start, everything else is written as data.
func WriteListing(w io.Writer, rom []byte) error {
	if len(rom) > chip8.MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", chip8.ErrRomTooLarge, len(rom), chip8.MaxProgramSize)
	}

	l := newListing(rom)
	l.followExecutionFlow()
	l.processDataReferences()
	return l.write(w)
}

func newListing(rom []byte) *listing {
	return &listing{
		rom:                 rom,
		end:                 chip8.ProgramStart + uint16(len(rom)),
		code:                set.New[uint16](),
		dataRefs:            set.New[uint16](),
		labels:              map[uint16]string{},
		offsetsToParseAdded: set.New[uint16](),
	}
}

// inProgram returns whether a full instruction can be read at the address.
func (l *listing) inProgram(address uint16) bool {
	return address >= chip8.ProgramStart && int(address)+1 < int(l.end)
}

func (l *listing) byteAt(address uint16) byte {
	return l.rom[address-chip8.ProgramStart]
}

func (l *listing) wordAt(address uint16) uint16 {
	return uint16(l.byteAt(address))<<8 | uint16(l.byteAt(address+1))
}

func (l *listing) addAddressToParse(address uint16) {
	if !l.inProgram(address) || l.offsetsToParseAdded.Contains(address) {
		return
	}
	l.offsetsToParseAdded.Add(address)
	l.offsetsToParse = append(l.offsetsToParse, address)
}

func (l *listing) addLabel(address uint16, naming string) {
	if !l.inProgram(address) {
		return
	}
	// a function name takes precedence over a jump label
	if current, ok := l.labels[address]; ok && (naming != funcNaming || strings.HasPrefix(current, "_func_")) {
		return
	}
	l.labels[address] = fmt.Sprintf(naming, address)
}

func (l *listing) followExecutionFlow() {
	l.addAddressToParse(chip8.ProgramStart)

	for len(l.offsetsToParse) > 0 {
		address := l.offsetsToParse[0]
		l.offsetsToParse = l.offsetsToParse[1:]

		opcode := l.wordAt(address)
		ins := lookup(opcode)
		if ins == nil {
			continue // unknown instructions are considered data
		}
		l.code.Add(address)

		decoded := chip8.Decode(opcode)
		next := address + 2

		switch {
		case ins == chip8cpu.Jp:
			// the target of jp V0 is only known at runtime
			if decoded.Op == chip8.OpJp {
				l.addLabel(decoded.NNN, labelNaming)
				l.addAddressToParse(decoded.NNN)
			}

		case ins == chip8cpu.Call:
			l.addLabel(decoded.NNN, funcNaming)
			l.addAddressToParse(decoded.NNN)
			l.addAddressToParse(next)

		case ins == chip8cpu.Ret:

		case chip8cpu.SkipInstructions.Contains(ins.Name):
			l.addAddressToParse(next)
			l.addAddressToParse(next + 2)

		default:
			if decoded.Op == chip8.OpLdI {
				l.dataRefs.Add(decoded.NNN)
			}
			l.addAddressToParse(next)
		}
	}
}

// processDataReferences names all addresses in the program that are loaded into I.
func (l *listing) processDataReferences() {
	for address := range l.dataRefs {
		if int(address) < int(l.end) && address >= chip8.ProgramStart {
			if _, ok := l.labels[address]; !ok {
				l.labels[address] = fmt.Sprintf(dataNaming, address)
			}
		}
	}
}

// lastAddress returns the address after the last meaningful byte, trailing
// zero bytes that are neither code nor referenced are not written.
func (l *listing) lastAddress() uint16 {
	for address := l.end; address > chip8.ProgramStart; address-- {
		a := address - 1
		if l.byteAt(a) != 0 || l.code.Contains(a) || l.labels[a] != "" {
			return address
		}
		if a > chip8.ProgramStart && l.code.Contains(a-1) {
			return address
		}
	}
	return chip8.ProgramStart
}

func (l *listing) write(w io.Writer) error {
	checksum := crc32.Checksum(l.rom, crc32.MakeTable(crc32.IEEE))
	header := fmt.Sprintf("; CHIP-8 ROM Disassembly\n; Size: %d bytes, CRC32: $%08X\n; Program starts at $%03X in CHIP-8 memory space\n\n.org $%03X\n\n",
		len(l.rom), checksum, chip8.ProgramStart, chip8.ProgramStart)
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	end := l.lastAddress()
	for address := uint16(chip8.ProgramStart); address < end; {
		if label, ok := l.labels[address]; ok {
			if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
				return fmt.Errorf("writing label %s: %w", label, err)
			}
		}

		if l.code.Contains(address) && !l.overlapsNext(address) {
			if err := l.writeCode(w, address); err != nil {
				return err
			}
			address += 2
			continue
		}

		n, err := l.writeData(w, address, end)
		if err != nil {
			return err
		}
		address += n
	}
	return nil
}

// overlapsNext returns whether the second byte of the instruction at the
// address is the start of another instruction or a label. Such an instruction
// is written as data so that the following address keeps its own line.
func (l *listing) overlapsNext(address uint16) bool {
	next := address + 1
	return l.code.Contains(next) || l.labels[next] != ""
}

// writeCode writes the instruction at the address, referenced addresses are
// replaced by their label.
func (l *listing) writeCode(w io.Writer, address uint16) error {
	opcode := l.wordAt(address)
	code := Mnemonic(opcode)

	decoded := chip8.Decode(opcode)
	if label, ok := l.labels[decoded.NNN]; ok {
		name := lookup(opcode).Name
		switch decoded.Op {
		case chip8.OpJp, chip8.OpCall:
			code = fmt.Sprintf("%s %s", name, label)
		case chip8.OpLdI:
			code = fmt.Sprintf("%s I, %s", name, label)
		}
	}

	comment := fmt.Sprintf("$%04X: %02X %02X", address, opcode>>8, opcode&0xFF)
	if _, err := fmt.Fprintf(w, "%-32s ; %s\n", "    "+code, comment); err != nil {
		return fmt.Errorf("writing code at $%04X: %w", address, err)
	}
	return nil
}

// writeData writes the data bytes starting at the address up to the next
// instruction or label and returns the number of bytes written.
func (l *listing) writeData(w io.Writer, address, end uint16) (uint16, error) {
	data := make([]string, 0, bytesPerDataLine)
	for a := address; a < end && len(data) < bytesPerDataLine; a++ {
		if a != address && (l.code.Contains(a) || l.labels[a] != "") {
			break
		}
		data = append(data, fmt.Sprintf("$%02X", l.byteAt(a)))
	}

	line := "    .byte " + strings.Join(data, ", ")
	if _, err := fmt.Fprintf(w, "%-32s ; $%04X\n", line, address); err != nil {
		return 0, fmt.Errorf("writing data at $%04X: %w", address, err)
	}
	return uint16(len(data)), nil
}
