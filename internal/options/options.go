// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output file for the display or listing (default: stdout)"`
}

// Flags contains behavior options.
type Flags struct {
	Disasm         bool   `flag:"disasm" usage:"write a disassembly listing of the ROM instead of running it"`
	Frames         int    `flag:"frames" usage:"number of frames to run" default:"60"`
	CyclesPerFrame int    `flag:"cpf" usage:"cycles executed per frame" default:"10"`
	Seed           uint64 `flag:"seed" usage:"seed for the random number instruction (default: random)"`
	Keys           string `flag:"keys" usage:"comma separated hex key codes held down while running, e.g. 1,a"`
	Breakpoints    string `flag:"break" usage:"comma separated hex addresses to pause at, e.g. 0x21a"`
	Paused         bool   `flag:"paused" usage:"start paused, frames only execute requested steps"`
	Step           int    `flag:"step" usage:"number of single steps to execute, implies -paused"`
	Bell           bool   `flag:"bell" usage:"ring the terminal bell when the sound timer expires"`
	Trace          bool   `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Debug          bool   `flag:"debug" usage:"enable debug logging"`
	Quiet          bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoHexComments bool `flag:"nohexcomments" usage:"omit hex opcode bytes in listing comments"`
	NoOffsets     bool `flag:"nooffsets" usage:"omit addresses in listing comments"`
	ASCII         bool `flag:"ascii" usage:"render the display using ASCII characters only"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	OutputFlags

	// Parsed values of the string options.
	KeyCodes       []uint8
	BreakAddresses []uint16
}
