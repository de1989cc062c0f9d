package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func testScreen(t *testing.T) chip8.Framebuffer {
	t.Helper()

	// draw glyph 0 at the top left corner
	vm := chip8.New()
	assert.NoError(t, vm.LoadProgram([]byte{0xA0, 0x50, 0xD0, 0x05}))
	assert.NoError(t, vm.Cycle())
	assert.NoError(t, vm.Cycle())
	return vm.Framebuffer()
}

func TestRenderer_RenderASCII(t *testing.T) {
	screen := testScreen(t)
	var buf bytes.Buffer

	assert.NoError(t, New(false).Render(&buf, &screen))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, chip8.ScreenHeight)
	assert.Equal(t, chip8.ScreenWidth, len(lines[0]))
	assert.Equal(t, "####....", lines[0][:8])
	assert.Equal(t, "#..#....", lines[1][:8])
	assert.Equal(t, "####....", lines[4][:8])
	assert.Equal(t, strings.Repeat(".", chip8.ScreenWidth), lines[5])
}

func TestRenderer_RenderBlocks(t *testing.T) {
	screen := testScreen(t)
	var buf bytes.Buffer

	assert.NoError(t, New(true).Render(&buf, &screen))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, chip8.ScreenHeight/2)
	assert.True(t, strings.HasPrefix(lines[0], "█▀▀█ "))
	assert.True(t, strings.HasPrefix(lines[1], "█  █ "))
	assert.True(t, strings.HasPrefix(lines[2], "▀▀▀▀ "))
	assert.Equal(t, strings.Repeat(" ", chip8.ScreenWidth), lines[3])
}

func TestHalfBlock(t *testing.T) {
	assert.Equal(t, "█", halfBlock(true, true))
	assert.Equal(t, "▀", halfBlock(true, false))
	assert.Equal(t, "▄", halfBlock(false, true))
	assert.Equal(t, " ", halfBlock(false, false))
}

func TestBell_Beep(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf)

	bell.Beep()
	bell.Beep()
	assert.Equal(t, "\a\a", buf.String())
}
