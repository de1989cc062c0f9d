package chip8

// Instruction holds the fields decoded from a single opcode. It is
// recomputed for every cycle and not part of the machine state.
type Instruction struct {
	Opcode  uint16
	Address uint16 // NNN, lowest 12 bits
	Byte    byte   // NN, lowest 8 bits
	Family  byte   // highest 4 bits, selects the instruction family
	Nibble  byte   // N, lowest 4 bits
	X       byte   // register selector in bits 8-11
	Y       byte   // register selector in bits 4-7
}

// Decode extracts all instruction fields from an opcode.
func Decode(opcode uint16) Instruction {
	return Instruction{
		Opcode:  opcode,
		Address: opcode & 0x0FFF,
		Byte:    byte(opcode & 0x00FF),
		Family:  byte(opcode >> 12),
		Nibble:  byte(opcode & 0x000F),
		X:       byte((opcode & 0x0F00) >> 8),
		Y:       byte((opcode & 0x00F0) >> 4),
	}
}
