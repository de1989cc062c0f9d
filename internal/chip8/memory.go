package chip8

import "fmt"

// Memory is the bounds checked 4KB address space of the machine.
type Memory [MemorySize]byte

// Word returns the big-endian 16-bit value stored at address and address+1.
func (m *Memory) Word(address uint16) (uint16, error) {
	if err := m.checkRange(address, opcodeSize); err != nil {
		return 0, err
	}
	return uint16(m[address])<<8 | uint16(m[address+1]), nil
}

// checkRange returns an error if any of the length bytes starting at address
// is outside of the address space.
func (m *Memory) checkRange(address uint16, length int) error {
	if int(address)+length > len(m) {
		return fmt.Errorf("%w: $%04X+%d", ErrMemoryOutOfBounds, address, length)
	}
	return nil
}

func (m *Memory) clear() {
	*m = Memory{}
}
