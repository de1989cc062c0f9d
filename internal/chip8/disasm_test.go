package chip8

import (
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDisassembleOpcode(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected string
	}{
		{0x00E0, chip8cpu.Cls.Name},
		{0x00EE, chip8cpu.Ret.Name},
		{0x0123, "sys $123"},
		{0x1234, chip8cpu.Jp.Name + " $234"},
		{0x2300, chip8cpu.Call.Name + " $300"},
		{0x3234, chip8cpu.Se.Name + " V2, $34"},
		{0x4234, chip8cpu.Sne.Name + " V2, $34"},
		{0x5230, chip8cpu.Se.Name + " V2, V3"},
		{0x6A3F, chip8cpu.Ld.Name + " VA, $3F"},
		{0x7A01, chip8cpu.Add.Name + " VA, $01"},
		{0x8120, chip8cpu.Ld.Name + " V1, V2"},
		{0x8121, chip8cpu.Or.Name + " V1, V2"},
		{0x8122, chip8cpu.And.Name + " V1, V2"},
		{0x8123, chip8cpu.Xor.Name + " V1, V2"},
		{0x8124, chip8cpu.Add.Name + " V1, V2"},
		{0x8125, chip8cpu.Sub.Name + " V1, V2"},
		{0x8126, chip8cpu.Shr.Name + " V1"},
		{0x8127, chip8cpu.Subn.Name + " V1, V2"},
		{0x812E, chip8cpu.Shl.Name + " V1"},
		{0x9230, chip8cpu.Sne.Name + " V2, V3"},
		{0xA234, chip8cpu.Ld.Name + " I, $234"},
		{0xB234, chip8cpu.Jp.Name + " V0, $234"},
		{0xC1FF, chip8cpu.Rnd.Name + " V1, $FF"},
		{0xD235, chip8cpu.Drw.Name + " V2, V3, $5"},
		{0xE29E, chip8cpu.Skp.Name + " V2"},
		{0xE2A1, chip8cpu.Sknp.Name + " V2"},
		{0xF207, chip8cpu.Ld.Name + " V2, DT"},
		{0xF20A, chip8cpu.Ld.Name + " V2, K"},
		{0xF215, chip8cpu.Ld.Name + " DT, V2"},
		{0xF218, chip8cpu.Ld.Name + " ST, V2"},
		{0xF21E, chip8cpu.Add.Name + " I, V2"},
		{0xF229, chip8cpu.Ld.Name + " F, V2"},
		{0xF233, chip8cpu.Ld.Name + " B, V2"},
		{0xF255, chip8cpu.Ld.Name + " [I], V2"},
		{0xF265, chip8cpu.Ld.Name + " V2, [I]"},
		{0x8128, "unknown $8128"},
		{0xE200, "unknown $E200"},
		{0xF2FF, "unknown $F2FF"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisassembleOpcode(tt.opcode))
		})
	}
}

func TestChip8_Disassemble(t *testing.T) {
	vm := newTestMachine(t, 0x6A3F, 0xF0FF)
	before := vm.Memory()

	assert.Equal(t, chip8cpu.Ld.Name+" VA, $3F", vm.Disassemble(ProgramStart))
	assert.Equal(t, "unknown $F0FF", vm.Disassemble(ProgramStart+2))
	assert.Equal(t, unknownName, vm.Disassemble(MaxAddress))

	assert.Equal(t, uint16(ProgramStart), vm.ProgramCounter())
	assert.Equal(t, before, vm.Memory())
}

func TestChip8_PeekOpcode(t *testing.T) {
	vm := newTestMachine(t, 0x6A3F)

	assert.Equal(t, uint16(0x6A3F), vm.PeekOpcode(ProgramStart))
	assert.Equal(t, uint16(0xF090), vm.PeekOpcode(FontStart))
	assert.Equal(t, uint16(0), vm.PeekOpcode(MaxAddress))
	assert.Equal(t, uint16(0), vm.PeekOpcode(0xFFFF))
	assert.Equal(t, uint16(ProgramStart), vm.ProgramCounter())
}
