package runner

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Control flow classes of instructions shown in the trace.
const (
	flowNext   = "next"
	flowCall   = "call"
	flowJump   = "jump"
	flowReturn = "return"
	flowSkip   = "skip"
)

// traceInstruction logs the instruction that the next cycle executes.
func (r *Runner) traceInstruction(address uint16) {
	opcode := r.machine.PeekOpcode(address)
	r.logger.Debug("Executing",
		log.Hex("address", address),
		log.Hex("opcode", opcode),
		log.String("instruction", r.machine.Disassemble(address)),
		log.String("flow", controlFlow(opcode)))
}

// controlFlow returns the control flow class of an opcode.
func controlFlow(opcode uint16) string {
	ins := lookupInstruction(opcode)
	switch {
	case ins == nil:
		return flowNext
	case ins == chip8cpu.Call:
		return flowCall
	case ins == chip8cpu.Ret:
		return flowReturn
	case ins == chip8cpu.Jp:
		return flowJump
	case chip8cpu.SkipInstructions.Contains(ins.Name):
		return flowSkip
	}
	return flowNext
}

// lookupInstruction returns the instruction definition matching the opcode.
func lookupInstruction(opcode uint16) *chip8cpu.Instruction {
	nibble := int(opcode >> 12)
	for _, op := range chip8cpu.Opcodes[nibble] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}
