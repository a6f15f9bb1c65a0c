package chip8

import "fmt"

// StackSize is the maximum call nesting depth.
const StackSize = 16

// Stack is the bounded call stack of return addresses.
type Stack struct {
	entries [StackSize]uint16
	sp      int
}

// Push stores a return address on the stack.
func (s *Stack) Push(address uint16) error {
	if s.sp == StackSize {
		return fmt.Errorf("%w: pushing $%04X at depth %d", ErrStackOverflow, address, s.sp)
	}
	s.entries[s.sp] = address
	s.sp++
	return nil
}

// Pop removes and returns the most recently pushed return address.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.entries[s.sp], nil
}

// Depth returns the number of addresses on the stack.
func (s *Stack) Depth() int {
	return s.sp
}

func (s *Stack) reset() {
	*s = Stack{}
}
