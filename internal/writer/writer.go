// Package writer implements the disassembly listing output.
package writer

import (
	"fmt"
	"io"
	"strings"
)

// codeColumnWidth is the width of the code column when comments follow it.
const codeColumnWidth = 24

// Disassembler defines the machine functions needed to write a listing.
type Disassembler interface {
	PeekOpcode(address uint16) uint16
	Disassemble(address uint16) string
}

// Writer writes a disassembly listing of a memory range.
type Writer struct {
	dis     Disassembler
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	HexComments    bool // output opcode bytes as hex values in comments
	OffsetComments bool // output addresses in comments
}

// New creates a new writer.
func New(dis Disassembler, writer io.Writer, options Options) *Writer {
	return &Writer{
		dis:     dis,
		options: options,
		writer:  writer,
	}
}

// WriteHeader writes the listing header with the origin directive for the
// address of the first listed instruction.
func (w Writer) WriteHeader(origin uint16) error {
	if _, err := fmt.Fprintf(w.writer, "; CHIP-8 ROM Disassembly\n.org $%03X\n\n", origin); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// WriteRange writes one line per instruction word for the addresses from
// start up to but not including end.
func (w Writer) WriteRange(start, end uint16) error {
	for address := uint32(start); address < uint32(end); address += 2 {
		if err := w.writeLine(uint16(address)); err != nil {
			return err
		}
	}
	return nil
}

func (w Writer) writeLine(address uint16) error {
	code := w.dis.Disassemble(address)
	comment := w.comment(address)

	var line string
	if comment == "" {
		line = "  " + code
	} else {
		line = fmt.Sprintf("  %-*s ; %s", codeColumnWidth, code, comment)
	}

	if _, err := fmt.Fprintln(w.writer, line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// comment returns the comment for the instruction at the address based on
// the enabled comment options.
func (w Writer) comment(address uint16) string {
	var parts []string
	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("$%04X", address))
	}
	if w.options.HexComments {
		opcode := w.dis.PeekOpcode(address)
		parts = append(parts, fmt.Sprintf("%02X %02X", byte(opcode>>8), byte(opcode)))
	}
	return strings.Join(parts, "  ")
}
