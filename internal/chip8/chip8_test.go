package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	vm := New()

	assert.Equal(t, uint16(ProgramStart), vm.ProgramCounter())
	assert.Equal(t, 0, vm.ProgramSize())
	mem := vm.Memory()
	assert.Equal(t, byte(0xF0), mem[FontStart])
	assert.Equal(t, byte(0), mem[ProgramStart])
}

func TestChip8_LoadProgram(t *testing.T) {
	vm := New()
	rom := make([]byte, MaxProgramSize)
	rom[0] = 0x12
	rom[len(rom)-1] = 0x34

	assert.NoError(t, vm.LoadProgram(rom))
	assert.Equal(t, MaxProgramSize, vm.ProgramSize())

	mem := vm.Memory()
	assert.Equal(t, byte(0x12), mem[ProgramStart])
	assert.Equal(t, byte(0x34), mem[MaxAddress])

	rom[0] = 0xFF
	vm.Reset()
	mem = vm.Memory()
	assert.Equal(t, byte(0x12), mem[ProgramStart])
}

func TestChip8_LoadProgramInvalid(t *testing.T) {
	vm := newTestMachine(t, 0x6042)
	runCycles(t, vm, 1)

	err := vm.LoadProgram(nil)
	assert.True(t, errors.Is(err, ErrProgramEmpty))

	err = vm.LoadProgram(make([]byte, MaxProgramSize+1))
	assert.True(t, errors.Is(err, ErrProgramTooLarge))

	assert.Equal(t, byte(0x42), vm.Register(0))
	assert.Equal(t, uint16(ProgramStart+2), vm.ProgramCounter())
	assert.Equal(t, 2, vm.ProgramSize())
}

func TestChip8_Reset(t *testing.T) {
	vm := newTestMachine(t, 0x6042, 0xA300, 0xF055, 0x2208)
	vm.SetKey(3, true)
	vm.SetSoundTimer(9)
	runCycles(t, vm, 4)

	vm.Reset()
	assert.Equal(t, uint16(ProgramStart), vm.ProgramCounter())
	assert.Equal(t, byte(0), vm.Register(0))
	assert.Equal(t, uint16(0), vm.Index())
	assert.Equal(t, uint8(0), vm.StackPointer())
	assert.Equal(t, byte(0), vm.SoundTimer())
	assert.False(t, vm.IsKeyDown(3))
	assert.Equal(t, uint16(0), vm.Opcode())

	mem := vm.Memory()
	assert.Equal(t, byte(0), mem[0x300])
	assert.Equal(t, byte(0x60), mem[ProgramStart])

	first := vm.state
	vm.Reset()
	assert.Equal(t, first, vm.state)
}

func TestChip8_RegisterInvalidIndex(t *testing.T) {
	vm := newTestMachine(t, 0x6F01)
	runCycles(t, vm, 1)

	assert.Equal(t, byte(1), vm.Register(FlagRegister))
	assert.Equal(t, byte(0), vm.Register(RegisterCount))
}

func TestFault_Error(t *testing.T) {
	err := error(&Fault{Address: 0x200, Opcode: 0x00EE, Err: ErrStackUnderflow})

	assert.Equal(t, "opcode $00EE at address $0200: stack underflow", err.Error())
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.False(t, errors.Is(err, ErrStackOverflow))
}
