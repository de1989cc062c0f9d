package chip8

// Framebuffer is the 64x32 display, stored row by row with one element per
// pixel that is either PixelOn or PixelOff.
type Framebuffer [ScreenWidth * ScreenHeight]uint32

// Clear turns all pixels off.
func (f *Framebuffer) Clear() {
	*f = Framebuffer{}
}

// IsSet returns whether the pixel at the given position is on.
// Positions outside of the display are reported as off.
func (f *Framebuffer) IsSet(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	return f[y*ScreenWidth+x] == PixelOn
}

// flip XORs the pixel at the given position and returns whether it was
// turned off by it. The position has to be inside the display.
func (f *Framebuffer) flip(x, y int) bool {
	i := y*ScreenWidth + x
	collision := f[i] == PixelOn
	f[i] ^= PixelOn
	return collision
}
