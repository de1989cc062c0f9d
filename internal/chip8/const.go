package chip8

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter area, the font glyphs are stored at FontStart
//	0x200-0xFFF: User program space (3584 bytes)
//
// The display buffer (64x32 pixels) and stack are maintained separately
// from the 4KB main memory address space.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = MemorySize - 1

	// ProgramStart is the memory address where CHIP-8 programs are loaded
	// and where execution begins after a reset.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontStart is the memory address of the built-in hexadecimal font.
	FontStart = 0x50
)

// Register file, stack and input dimensions.
const (
	RegisterCount = 16
	// FlagRegister is VF, overwritten by arithmetic and drawing instructions
	// as carry, borrow or collision flag.
	FlagRegister = 0xF
	StackSize    = 16
	KeyCount     = 16
)

// Display dimensions and pixel values.
const (
	ScreenWidth  = 64
	ScreenHeight = 32

	PixelOn  uint32 = 0xFFFFFFFF
	PixelOff uint32 = 0
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2
