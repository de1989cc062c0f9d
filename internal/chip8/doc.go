// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Architecture Overview
//
// CHIP-8 is an interpreted programming language developed in the 1970s for simple games
// on early microcomputers. This package interprets its 35 instructions bit exact so that
// existing ROMs run unmodified.
//
// # Machine State
//
//   - 4KB of memory (0x000-MaxAddress), the font is stored at FontStart and programs
//     are loaded to ProgramStart
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as carry, borrow and
//     collision flag
//   - 16-bit index register I and program counter PC
//   - 16 entry call stack
//   - 64x32 monochrome framebuffer, 16 key keypad, delay and sound timer
//
// # Execution
//
// The caller drives the machine by calling Cycle, every call fetches, decodes and
// executes one instruction and then updates the timers once. There is no notion of
// frames or wall clock time, the caller decides how many cycles make up a frame.
//
// Waiting for a key press (LD VX, K) rewinds the program counter while no key is
// pressed, the next cycle fetches the same instruction again.
//
// # Error Handling
//
// Cycle never panics. Malformed programs result in a *Fault being returned that wraps
// one of the sentinel errors:
//   - ErrFetchOutOfBounds: the program counter points at the last memory byte or beyond,
//     the program counter is not advanced
//   - ErrStackOverflow, ErrStackUnderflow: CALL with a full stack or RET with an empty one
//   - ErrMemoryOutOfBounds: DRW, LD B, LD [I] or LD VX, [I] would access memory beyond
//     MaxAddress
//   - ErrUnknownOpcode: the opcode matches no instruction
//
// In all cases the instruction is a no-op and the machine can continue to be cycled.
//
// # Usage Example
//
//	vm := chip8.New()
//	if err := vm.LoadProgram(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for range cyclesPerFrame {
//		if err := vm.Cycle(); err != nil {
//			logger.Warn("Cycle failed", log.Err(err))
//		}
//	}
//	screen := vm.Framebuffer()
package chip8
