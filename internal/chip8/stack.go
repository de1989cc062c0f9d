package chip8

// Stack holds the return addresses of subroutine calls.
type Stack struct {
	entries [StackSize]uint16
	pointer uint8
}

// Push stores a return address, it fails if all entries are in use.
func (s *Stack) Push(address uint16) error {
	if int(s.pointer) >= len(s.entries) {
		return ErrStackOverflow
	}
	s.entries[s.pointer] = address
	s.pointer++
	return nil
}

// Pop removes and returns the most recent return address.
func (s *Stack) Pop() (uint16, error) {
	if s.pointer == 0 {
		return 0, ErrStackUnderflow
	}
	s.pointer--
	return s.entries[s.pointer], nil
}

// Pointer returns the number of used stack entries.
func (s *Stack) Pointer() uint8 {
	return s.pointer
}

// Entries returns a copy of all stack entries, including unused ones.
func (s *Stack) Entries() [StackSize]uint16 {
	return s.entries
}

func (s *Stack) reset() {
	*s = Stack{}
}
