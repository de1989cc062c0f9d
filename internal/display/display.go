// Package display renders the framebuffer of the virtual machine as text.
package display

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"golang.org/x/term"
)

// ErrTerminalTooSmall is returned if the terminal can not show a full display row.
var ErrTerminalTooSmall = errors.New("terminal too small")

// Renderer writes framebuffers as text. Block mode combines two display
// rows into one text line using half block glyphs, ASCII mode writes one
// line per display row.
type Renderer struct {
	blocks bool
}

// New returns a renderer, blocks selects half block glyph output.
func New(blocks bool) *Renderer {
	return &Renderer{blocks: blocks}
}

// NewForFile returns a renderer that uses block glyphs if the file is a terminal.
func NewForFile(file *os.File) *Renderer {
	return New(term.IsTerminal(int(file.Fd())))
}

// CheckTerminalSize returns an error if the file is a terminal that is too
// narrow or too short to show the rendered display. Files that are not a
// terminal are always accepted.
func (r *Renderer) CheckTerminalSize(file *os.File) error {
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("getting terminal size: %w", err)
	}
	if width < chip8.ScreenWidth || height < r.lines() {
		return fmt.Errorf("%w: %dx%d, need %dx%d",
			ErrTerminalTooSmall, width, height, chip8.ScreenWidth, r.lines())
	}
	return nil
}

// Render writes the framebuffer to the writer.
func (r *Renderer) Render(w io.Writer, screen *chip8.Framebuffer) error {
	var sb strings.Builder
	sb.Grow((chip8.ScreenWidth*3 + 1) * r.lines())

	if r.blocks {
		for y := 0; y < chip8.ScreenHeight; y += 2 {
			for x := range chip8.ScreenWidth {
				sb.WriteString(halfBlock(screen.IsSet(x, y), screen.IsSet(x, y+1)))
			}
			sb.WriteByte('\n')
		}
	} else {
		for y := range chip8.ScreenHeight {
			for x := range chip8.ScreenWidth {
				if screen.IsSet(x, y) {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			}
			sb.WriteByte('\n')
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return nil
}

// lines returns the number of text lines of a rendered display.
func (r *Renderer) lines() int {
	if r.blocks {
		return chip8.ScreenHeight / 2
	}
	return chip8.ScreenHeight
}

func halfBlock(top, bottom bool) string {
	switch {
	case top && bottom:
		return "█"
	case top:
		return "▀"
	case bottom:
		return "▄"
	default:
		return " "
	}
}

// Bell rings the terminal bell by writing the BEL control character.
type Bell struct {
	writer io.Writer
}

// NewBell returns a bell that writes to the writer.
func NewBell(writer io.Writer) *Bell {
	return &Bell{writer: writer}
}

// Beep rings the bell.
func (b *Bell) Beep() {
	_, _ = io.WriteString(b.writer, "\a")
}
