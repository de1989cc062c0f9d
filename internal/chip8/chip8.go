package chip8

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Chip8 is the virtual machine. It owns the machine state and advances it
// one instruction per Cycle call. It is not safe for concurrent use, the
// caller drives it from a single goroutine and decides how many cycles
// make up a frame.
type Chip8 struct {
	state   State
	program []byte // last successfully loaded program, used for resets
	random  *rand.Rand

	opcode uint16 // last fetched opcode
	tone   bool   // sound timer reached 0 in the last cycle
}

// Option configures a Chip8 instance.
type Option func(*Chip8)

// WithRandomSource sets the source used by the random number instruction,
// a seeded source makes complete runs reproducible.
func WithRandomSource(src rand.Source) Option {
	return func(c *Chip8) {
		c.random = rand.New(src)
	}
}

// New returns a new machine in reset state with an empty program.
func New(options ...Option) *Chip8 {
	c := &Chip8{
		random: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, option := range options {
		option(c)
	}
	c.Reset()
	return c
}

// LoadProgram stores a copy of the program and resets the machine with it.
// The machine state is not modified if the program is empty or does not
// fit into memory.
func (c *Chip8) LoadProgram(program []byte) error {
	if len(program) == 0 {
		return ErrProgramEmpty
	}
	if ProgramStart+len(program) > MemorySize {
		return fmt.Errorf("%w: size %d exceeds maximum of %d bytes",
			ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	c.program = slices.Clone(program)
	c.Reset()
	return nil
}

// Reset restores the state after loading the last program again.
func (c *Chip8) Reset() {
	c.state.Reset(c.program)
	c.opcode = 0
	c.tone = false
}

// Cycle executes exactly one fetch, decode, execute and timer update pass.
// A returned error is a *Fault, the instruction has then been treated as a
// no-op and the machine can continue to be cycled.
func (c *Chip8) Cycle() error {
	c.tone = false
	address := c.state.PC

	err := c.fetch()
	if err == nil {
		err = c.execute(Decode(c.opcode))
	}
	c.updateTimers()

	if err != nil {
		return &Fault{
			Address: address,
			Opcode:  c.opcode,
			Err:     err,
		}
	}
	return nil
}

// fetch reads the opcode at the program counter and advances it. If the
// opcode is not fully inside of memory the program counter is kept.
func (c *Chip8) fetch() error {
	opcode, err := c.state.Memory.Word(c.state.PC)
	if err != nil {
		c.opcode = 0
		return ErrFetchOutOfBounds
	}
	c.opcode = opcode
	c.state.PC += opcodeSize
	return nil
}

// updateTimers decrements both timers and requests a tone when the sound
// timer expires.
func (c *Chip8) updateTimers() {
	if c.state.DelayTimer > 0 {
		c.state.DelayTimer--
	}
	if c.state.SoundTimer > 0 {
		c.state.SoundTimer--
		if c.state.SoundTimer == 0 {
			c.tone = true
		}
	}
}

// ToneRequested returns whether the sound timer expired during the last cycle.
func (c *Chip8) ToneRequested() bool {
	return c.tone
}

// Framebuffer returns a copy of the display.
func (c *Chip8) Framebuffer() Framebuffer {
	return c.state.Screen
}

// SetKey presses or releases a key, codes of 16 and above are ignored.
func (c *Chip8) SetKey(code uint8, pressed bool) {
	c.state.SetKey(code, pressed)
}

// IsKeyDown returns whether a key is pressed.
func (c *Chip8) IsKeyDown(code uint8) bool {
	return c.state.Keypad.IsDown(code)
}

// Register returns the value of register V0-VF, 0 for invalid indexes.
func (c *Chip8) Register(index uint8) byte {
	if int(index) >= RegisterCount {
		return 0
	}
	return c.state.Registers[index]
}

// ProgramCounter returns the address of the next instruction to fetch.
func (c *Chip8) ProgramCounter() uint16 {
	return c.state.PC
}

// Index returns the index register.
func (c *Chip8) Index() uint16 {
	return c.state.Index
}

// StackPointer returns the number of used stack entries.
func (c *Chip8) StackPointer() uint8 {
	return c.state.Stack.Pointer()
}

// Stack returns a copy of all stack entries.
func (c *Chip8) Stack() [StackSize]uint16 {
	return c.state.Stack.Entries()
}

// DelayTimer returns the delay timer.
func (c *Chip8) DelayTimer() byte {
	return c.state.DelayTimer
}

// SetDelayTimer sets the delay timer, it must not be called during a cycle.
func (c *Chip8) SetDelayTimer(value byte) {
	c.state.DelayTimer = value
}

// SoundTimer returns the sound timer.
func (c *Chip8) SoundTimer() byte {
	return c.state.SoundTimer
}

// SetSoundTimer sets the sound timer, it must not be called during a cycle.
func (c *Chip8) SetSoundTimer(value byte) {
	c.state.SoundTimer = value
}

// Memory returns a copy of the complete memory.
func (c *Chip8) Memory() Memory {
	return c.state.Memory
}

// Opcode returns the opcode fetched by the last cycle.
func (c *Chip8) Opcode() uint16 {
	return c.opcode
}

// ProgramSize returns the size of the loaded program in bytes.
func (c *Chip8) ProgramSize() int {
	return len(c.program)
}

// PeekOpcode returns the opcode stored at the given address without
// modifying any state. It returns 0 if the opcode is not fully in memory.
func (c *Chip8) PeekOpcode(address uint16) uint16 {
	opcode, err := c.state.Memory.Word(address)
	if err != nil {
		return 0
	}
	return opcode
}
