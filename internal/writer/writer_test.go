package writer

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func newTestMachine(t *testing.T) *chip8.Chip8 {
	t.Helper()

	vm := chip8.New()
	assert.NoError(t, vm.LoadProgram([]byte{0x00, 0xE0, 0x12, 0x00}))
	return vm
}

func TestWriter_WriteRange(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		expected string
	}{
		{
			name:     "no comments",
			options:  Options{},
			expected: "  " + chip8.DisassembleOpcode(0x00E0) + "\n  " + chip8.DisassembleOpcode(0x1200) + "\n",
		},
		{
			name:    "all comments",
			options: Options{HexComments: true, OffsetComments: true},
			expected: "  " + pad(chip8.DisassembleOpcode(0x00E0)) + " ; $0200  00 E0\n" +
				"  " + pad(chip8.DisassembleOpcode(0x1200)) + " ; $0202  12 00\n",
		},
		{
			name:    "hex comments",
			options: Options{HexComments: true},
			expected: "  " + pad(chip8.DisassembleOpcode(0x00E0)) + " ; 00 E0\n" +
				"  " + pad(chip8.DisassembleOpcode(0x1200)) + " ; 12 00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := New(newTestMachine(t), &buf, tt.options)

			assert.NoError(t, w.WriteRange(chip8.ProgramStart, chip8.ProgramStart+4))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriter_WriteRangeEndOfMemory(t *testing.T) {
	var buf bytes.Buffer
	w := New(newTestMachine(t), &buf, Options{OffsetComments: true})

	assert.NoError(t, w.WriteRange(0xFFE, chip8.MemorySize))
	assert.Equal(t, "  "+pad(chip8.DisassembleOpcode(0))+" ; $0FFE\n", buf.String())
}

func TestWriter_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := New(newTestMachine(t), &buf, Options{})

	assert.NoError(t, w.WriteHeader(chip8.ProgramStart))
	assert.Equal(t, "; CHIP-8 ROM Disassembly\n.org $200\n\n", buf.String())
}

func pad(code string) string {
	for len(code) < codeColumnWidth {
		code += " "
	}
	return code
}
