package chip8

import (
	"math/rand/v2"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// program converts opcodes to the big-endian byte layout of a ROM.
func program(opcodes ...uint16) []byte {
	data := make([]byte, 0, len(opcodes)*opcodeSize)
	for _, opcode := range opcodes {
		data = append(data, byte(opcode>>8), byte(opcode))
	}
	return data
}

// newTestMachine returns a machine with a fixed random seed and the given
// opcodes loaded.
func newTestMachine(t *testing.T, opcodes ...uint16) *Chip8 {
	t.Helper()

	vm := New(WithRandomSource(rand.NewPCG(1, 2)))
	assert.NoError(t, vm.LoadProgram(program(opcodes...)))
	return vm
}

// runCycles executes count cycles and fails the test on any fault.
func runCycles(t *testing.T, vm *Chip8, count int) {
	t.Helper()

	for range count {
		assert.NoError(t, vm.Cycle())
	}
}
