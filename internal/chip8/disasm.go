package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Mnemonics that have no instruction definition in the CPU package.
const (
	sysName     = "sys"
	unknownName = "unknown"
)

// Disassemble renders the instruction stored at the given address as
// mnemonic text. It does not modify any state. Addresses that can not hold
// a complete opcode are rendered as unknown.
func (c *Chip8) Disassemble(address uint16) string {
	opcode, err := c.state.Memory.Word(address)
	if err != nil {
		return unknownName
	}
	return DisassembleOpcode(opcode)
}

// DisassembleOpcode renders an opcode as mnemonic text. Opcodes that match no
// instruction are rendered using a generic unknown label.
func DisassembleOpcode(opcode uint16) string {
	ins := Decode(opcode)

	name, params := formatInstruction(ins)
	if name == "" {
		return fmt.Sprintf("%s $%04X", unknownName, opcode)
	}
	if params == "" {
		return name
	}
	return fmt.Sprintf("%s %s", name, params)
}

// formatInstruction returns the mnemonic and formatted parameters of an
// instruction, or an empty name if the opcode is not a valid instruction.
func formatInstruction(ins Instruction) (string, string) {
	switch ins.Family {
	case 0x0:
		return formatSystemInstruction(ins)
	case 0x1:
		return chip8.Jp.Name, formatAddress(ins)
	case 0x2:
		return chip8.Call.Name, formatAddress(ins)
	case 0x3:
		return chip8.Se.Name, formatRegisterByte(ins)
	case 0x4:
		return chip8.Sne.Name, formatRegisterByte(ins)
	case 0x5:
		return chip8.Se.Name, formatRegisterPair(ins)
	case 0x6:
		return chip8.Ld.Name, formatRegisterByte(ins)
	case 0x7:
		return chip8.Add.Name, formatRegisterByte(ins)
	case 0x8:
		return formatArithmeticInstruction(ins)
	case 0x9:
		return chip8.Sne.Name, formatRegisterPair(ins)
	case 0xA:
		return chip8.Ld.Name, fmt.Sprintf("I, $%03X", ins.Address)
	case 0xB:
		return chip8.Jp.Name, fmt.Sprintf("V0, $%03X", ins.Address)
	case 0xC:
		return chip8.Rnd.Name, formatRegisterByte(ins)
	case 0xD:
		return chip8.Drw.Name, fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.Nibble)
	case 0xE:
		return formatKeyInstruction(ins)
	case 0xF:
		return formatMiscInstruction(ins)
	}
	return "", ""
}

// formatSystemInstruction formats CLS, RET and the legacy SYS addr.
func formatSystemInstruction(ins Instruction) (string, string) {
	switch ins.Opcode {
	case 0x00E0:
		return chip8.Cls.Name, ""
	case 0x00EE:
		return chip8.Ret.Name, ""
	default:
		return sysName, formatAddress(ins)
	}
}

// formatArithmeticInstruction formats the register to register operations of the 8XYN family.
func formatArithmeticInstruction(ins Instruction) (string, string) {
	switch ins.Nibble {
	case 0x0:
		return chip8.Ld.Name, formatRegisterPair(ins)
	case 0x1:
		return chip8.Or.Name, formatRegisterPair(ins)
	case 0x2:
		return chip8.And.Name, formatRegisterPair(ins)
	case 0x3:
		return chip8.Xor.Name, formatRegisterPair(ins)
	case 0x4:
		return chip8.Add.Name, formatRegisterPair(ins)
	case 0x5:
		return chip8.Sub.Name, formatRegisterPair(ins)
	case 0x6:
		return chip8.Shr.Name, fmt.Sprintf("V%X", ins.X)
	case 0x7:
		return chip8.Subn.Name, formatRegisterPair(ins)
	case 0xE:
		return chip8.Shl.Name, fmt.Sprintf("V%X", ins.X)
	}
	return "", ""
}

// formatKeyInstruction formats the skip on key instructions (SKP, SKNP).
func formatKeyInstruction(ins Instruction) (string, string) {
	switch ins.Byte {
	case 0x9E:
		return chip8.Skp.Name, fmt.Sprintf("V%X", ins.X)
	case 0xA1:
		return chip8.Sknp.Name, fmt.Sprintf("V%X", ins.X)
	}
	return "", ""
}

// formatMiscInstruction formats the timer, input, font and memory transfer instructions.
func formatMiscInstruction(ins Instruction) (string, string) {
	var params string
	name := chip8.Ld.Name

	switch ins.Byte {
	case 0x07:
		params = fmt.Sprintf("V%X, DT", ins.X)
	case 0x0A:
		params = fmt.Sprintf("V%X, K", ins.X)
	case 0x15:
		params = fmt.Sprintf("DT, V%X", ins.X)
	case 0x18:
		params = fmt.Sprintf("ST, V%X", ins.X)
	case 0x1E:
		name = chip8.Add.Name
		params = fmt.Sprintf("I, V%X", ins.X)
	case 0x29:
		params = fmt.Sprintf("F, V%X", ins.X)
	case 0x33:
		params = fmt.Sprintf("B, V%X", ins.X)
	case 0x55:
		params = fmt.Sprintf("[I], V%X", ins.X)
	case 0x65:
		params = fmt.Sprintf("V%X, [I]", ins.X)
	default:
		return "", ""
	}
	return name, params
}

func formatAddress(ins Instruction) string {
	return fmt.Sprintf("$%03X", ins.Address)
}

func formatRegisterByte(ins Instruction) string {
	return fmt.Sprintf("V%X, $%02X", ins.X, ins.Byte)
}

func formatRegisterPair(ins Instruction) string {
	return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
}
