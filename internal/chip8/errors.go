package chip8

import (
	"errors"
	"fmt"
)

// Errors returned when loading a program.
var (
	ErrProgramEmpty    = errors.New("program is empty")
	ErrProgramTooLarge = errors.New("program does not fit into memory")
)

// Errors wrapped in a Fault when a cycle could not complete an instruction.
var (
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")
	ErrFetchOutOfBounds  = errors.New("instruction fetch out of bounds")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrUnknownOpcode     = errors.New("unknown opcode")
)

// Fault describes a non-fatal failure of a single cycle. The machine state
// stays consistent, the faulting instruction was treated as a no-op.
type Fault struct {
	Address uint16 // address the instruction was fetched from
	Opcode  uint16 // 0 if the fetch itself failed
	Err     error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("opcode $%04X at address $%04X: %s", f.Opcode, f.Address, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
