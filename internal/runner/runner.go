// Package runner drives a virtual machine frame by frame. It adds the
// interactive controls of a front end: pausing, single stepping,
// breakpoints and the number of cycles executed per frame.
package runner

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// DefaultCyclesPerFrame is used when no cycles per frame are configured.
const DefaultCyclesPerFrame = 10

// Machine defines the virtual machine functions used by the runner.
type Machine interface {
	Cycle() error
	ProgramCounter() uint16
	PeekOpcode(address uint16) uint16
	Disassemble(address uint16) string
	ToneRequested() bool
}

// Beeper plays the tone requested by an expiring sound timer.
type Beeper interface {
	Beep()
}

// Options of the runner.
type Options struct {
	Beeper         Beeper   // optional
	Breakpoints    []uint16 // addresses to pause at before executing them
	CyclesPerFrame int
	Paused         bool // start in paused state
	Trace          bool // log every executed instruction at debug level
}

// Runner executes cycles of a machine in frames.
type Runner struct {
	logger  *log.Logger
	machine Machine
	beeper  Beeper
	trace   bool

	cyclesPerFrame int
	paused         bool
	stepPending    bool
	skipBreakpoint bool // resume at a breakpoint without hitting it again

	breakpoints    set.Set[uint16]
	reportedFaults set.Set[uint16] // addresses that already logged a fault warning

	cycles int
	faults int
}

// New returns a new runner for the given machine.
func New(logger *log.Logger, machine Machine, opts Options) *Runner {
	r := &Runner{
		logger:         logger,
		machine:        machine,
		beeper:         opts.Beeper,
		trace:          opts.Trace,
		paused:         opts.Paused,
		breakpoints:    set.New[uint16](),
		reportedFaults: set.New[uint16](),
	}
	for _, address := range opts.Breakpoints {
		r.breakpoints.Add(address)
	}
	r.SetCyclesPerFrame(opts.CyclesPerFrame)
	return r
}

// Frame executes one frame. A running machine executes the configured
// number of cycles unless a breakpoint is hit, a paused machine executes a
// single cycle if a step was requested. The context is checked between
// cycles, a cycle itself always runs to completion.
func (r *Runner) Frame(ctx context.Context) error {
	if r.paused {
		if r.stepPending {
			r.stepPending = false
			r.cycle()
		}
		return nil
	}

	for range r.cyclesPerFrame {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.breakpointHit() {
			return nil
		}
		r.cycle()
	}
	return nil
}

// Run executes the given number of frames.
func (r *Runner) Run(ctx context.Context, frames int) error {
	for range frames {
		if err := r.Frame(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step requests a single cycle to be executed by the next frame while paused.
func (r *Runner) Step() {
	r.stepPending = true
}

// Paused returns whether the runner is paused.
func (r *Runner) Paused() bool {
	return r.paused
}

// SetPaused pauses or resumes execution.
func (r *Runner) SetPaused(paused bool) {
	r.paused = paused
}

// CyclesPerFrame returns the number of cycles executed per frame.
func (r *Runner) CyclesPerFrame() int {
	return r.cyclesPerFrame
}

// SetCyclesPerFrame sets the number of cycles executed per frame, values
// below 1 select DefaultCyclesPerFrame.
func (r *Runner) SetCyclesPerFrame(cycles int) {
	if cycles < 1 {
		cycles = DefaultCyclesPerFrame
	}
	r.cyclesPerFrame = cycles
}

// Cycles returns the number of executed cycles.
func (r *Runner) Cycles() int {
	return r.cycles
}

// Faults returns the number of cycles that returned a fault.
func (r *Runner) Faults() int {
	return r.faults
}

// breakpointHit pauses the runner if the next instruction is at a
// breakpoint. Resuming executes that instruction without pausing again.
func (r *Runner) breakpointHit() bool {
	if r.skipBreakpoint {
		r.skipBreakpoint = false
		return false
	}

	address := r.machine.ProgramCounter()
	if !r.breakpoints.Contains(address) {
		return false
	}

	r.paused = true
	r.skipBreakpoint = true
	r.logger.Info("Breakpoint hit",
		log.Hex("address", address),
		log.String("instruction", r.machine.Disassemble(address)))
	return true
}

func (r *Runner) cycle() {
	address := r.machine.ProgramCounter()
	if r.trace {
		r.traceInstruction(address)
	}

	err := r.machine.Cycle()
	r.cycles++
	r.skipBreakpoint = false

	if err != nil {
		r.faults++
		r.reportFault(address, err)
	}

	if r.machine.ToneRequested() {
		r.logger.Debug("Tone requested", log.Int("cycle", r.cycles))
		if r.beeper != nil {
			r.beeper.Beep()
		}
	}
}

// reportFault logs a fault as warning the first time it occurs at an
// address, repeated faults at the same address are logged at debug level.
func (r *Runner) reportFault(address uint16, err error) {
	var opcode uint16
	var fault *chip8.Fault
	if errors.As(err, &fault) {
		address = fault.Address
		opcode = fault.Opcode
	}

	if r.reportedFaults.Contains(address) {
		r.logger.Debug("Instruction fault",
			log.Hex("address", address),
			log.Hex("opcode", opcode),
			log.Err(err))
		return
	}

	r.reportedFaults.Add(address)
	r.logger.Warn("Instruction fault",
		log.Hex("address", address),
		log.Hex("opcode", opcode),
		log.Err(err))
}
