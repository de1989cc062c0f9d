package chip8

// State contains all mutable state of the machine. It maintains the
// structural invariants of its parts but holds no instruction semantics.
type State struct {
	Memory    Memory
	Registers [RegisterCount]byte
	Index     uint16
	PC        uint16
	Stack     Stack
	Keypad    Keypad
	Screen    Framebuffer

	DelayTimer byte
	SoundTimer byte
}

// Reset clears the complete state, loads the font and copies the program
// to ProgramStart. Programs larger than MaxProgramSize are truncated.
func (s *State) Reset(program []byte) {
	s.Memory.clear()
	s.Registers = [RegisterCount]byte{}
	s.Stack.reset()
	s.Keypad = Keypad{}
	s.Screen.Clear()

	copy(s.Memory[FontStart:], fontSet[:])
	if len(program) > 0 {
		copy(s.Memory[ProgramStart:], program)
	}

	s.PC = ProgramStart
	s.Index = 0
	s.DelayTimer = 0
	s.SoundTimer = 0
}

// SetKey presses or releases a key. Codes of 16 and above are ignored.
func (s *State) SetKey(code uint8, pressed bool) {
	s.Keypad.Set(code, pressed)
}
