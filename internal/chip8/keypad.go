package chip8

// Keypad holds the pressed state of the 16 hexadecimal keys.
type Keypad [KeyCount]bool

// Set presses or releases a key. Codes outside of the keypad are ignored.
func (k *Keypad) Set(code uint8, pressed bool) {
	if int(code) >= len(k) {
		return
	}
	k[code] = pressed
}

// IsDown returns whether a key is pressed. Codes outside of the keypad are
// never pressed.
func (k *Keypad) IsDown(code uint8) bool {
	if int(code) >= len(k) {
		return false
	}
	return k[code]
}

// firstPressed returns the lowest pressed key code.
func (k *Keypad) firstPressed() (uint8, bool) {
	for code, pressed := range k {
		if pressed {
			return uint8(code), true
		}
	}
	return 0, false
}
