package chip8

// execute dispatches a decoded instruction on its family and, for the
// system, arithmetic, key and misc families, on its low nibble or byte.
func (c *Chip8) execute(ins Instruction) error {
	switch ins.Family {
	case 0x0:
		return c.executeSystem(ins)
	case 0x1:
		c.state.PC = ins.Address
	case 0x2:
		return c.opCall(ins)
	case 0x3:
		c.skipIf(c.state.Registers[ins.X] == ins.Byte)
	case 0x4:
		c.skipIf(c.state.Registers[ins.X] != ins.Byte)
	case 0x5:
		c.skipIf(c.state.Registers[ins.X] == c.state.Registers[ins.Y])
	case 0x6:
		c.state.Registers[ins.X] = ins.Byte
	case 0x7:
		c.state.Registers[ins.X] += ins.Byte
	case 0x8:
		return c.executeArithmetic(ins)
	case 0x9:
		c.skipIf(c.state.Registers[ins.X] != c.state.Registers[ins.Y])
	case 0xA:
		c.state.Index = ins.Address
	case 0xB:
		c.state.PC = ins.Address + uint16(c.state.Registers[0])
	case 0xC:
		c.state.Registers[ins.X] = byte(c.random.UintN(256)) & ins.Byte
	case 0xD:
		return c.opDraw(ins)
	case 0xE:
		return c.executeKey(ins)
	case 0xF:
		return c.executeMisc(ins)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

// executeSystem handles 00E0, 00EE and the legacy 0NNN machine code call,
// which is ignored.
func (c *Chip8) executeSystem(ins Instruction) error {
	switch ins.Opcode {
	case 0x00E0:
		c.state.Screen.Clear()
	case 0x00EE:
		return c.opReturn()
	}
	return nil
}

func (c *Chip8) executeArithmetic(ins Instruction) error {
	r := &c.state.Registers

	switch ins.Nibble {
	case 0x0:
		r[ins.X] = r[ins.Y]
	case 0x1:
		r[ins.X] |= r[ins.Y]
	case 0x2:
		r[ins.X] &= r[ins.Y]
	case 0x3:
		r[ins.X] ^= r[ins.Y]
	case 0x4:
		sum := uint16(r[ins.X]) + uint16(r[ins.Y])
		r[FlagRegister] = flag(sum > 0xFF)
		r[ins.X] = byte(sum)
	case 0x5:
		r[FlagRegister] = flag(r[ins.X] > r[ins.Y])
		r[ins.X] -= r[ins.Y]
	case 0x6:
		r[FlagRegister] = r[ins.X] & 0x01
		r[ins.X] >>= 1
	case 0x7:
		r[FlagRegister] = flag(r[ins.Y] > r[ins.X])
		r[ins.X] = r[ins.Y] - r[ins.X]
	case 0xE:
		r[FlagRegister] = r[ins.X] >> 7
		r[ins.X] <<= 1
	default:
		return ErrUnknownOpcode
	}
	return nil
}

func (c *Chip8) executeKey(ins Instruction) error {
	pressed := c.state.Keypad.IsDown(c.state.Registers[ins.X])

	switch ins.Byte {
	case 0x9E:
		c.skipIf(pressed)
	case 0xA1:
		c.skipIf(!pressed)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

func (c *Chip8) executeMisc(ins Instruction) error {
	switch ins.Byte {
	case 0x07:
		c.state.Registers[ins.X] = c.state.DelayTimer
	case 0x0A:
		c.opWaitKey(ins)
	case 0x15:
		c.state.DelayTimer = c.state.Registers[ins.X]
	case 0x18:
		c.state.SoundTimer = c.state.Registers[ins.X]
	case 0x1E:
		c.state.Index += uint16(c.state.Registers[ins.X])
	case 0x29:
		c.state.Index = glyphAddress(c.state.Registers[ins.X])
	case 0x33:
		return c.opStoreBCD(ins)
	case 0x55:
		return c.opStoreRegisters(ins)
	case 0x65:
		return c.opLoadRegisters(ins)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

// skipIf skips the next instruction if the condition is met.
func (c *Chip8) skipIf(condition bool) {
	if condition {
		c.state.PC += opcodeSize
	}
}

func (c *Chip8) opCall(ins Instruction) error {
	if err := c.state.Stack.Push(c.state.PC); err != nil {
		return err
	}
	c.state.PC = ins.Address
	return nil
}

func (c *Chip8) opReturn() error {
	address, err := c.state.Stack.Pop()
	if err != nil {
		return err
	}
	c.state.PC = address
	return nil
}

// opDraw XORs an N row sprite read from the index register into the
// display. The sprite origin wraps around the display size and every
// pixel wraps individually. VF is set if any pixel was turned off.
func (c *Chip8) opDraw(ins Instruction) error {
	height := int(ins.Nibble)
	if err := c.state.Memory.checkRange(c.state.Index, height); err != nil {
		return err
	}

	originX := int(c.state.Registers[ins.X]) % ScreenWidth
	originY := int(c.state.Registers[ins.Y]) % ScreenHeight
	c.state.Registers[FlagRegister] = 0

	for row := range height {
		sprite := c.state.Memory[int(c.state.Index)+row]
		y := (originY + row) % ScreenHeight

		for col := range 8 {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			x := (originX + col) % ScreenWidth
			if c.state.Screen.flip(x, y) {
				c.state.Registers[FlagRegister] = 1
			}
		}
	}
	return nil
}

// opWaitKey stores the lowest pressed key in VX. Without a pressed key the
// program counter is rewound so that the instruction is fetched again by
// the next cycle.
func (c *Chip8) opWaitKey(ins Instruction) {
	code, ok := c.state.Keypad.firstPressed()
	if !ok {
		c.state.PC -= opcodeSize
		return
	}
	c.state.Registers[ins.X] = code
}

// opStoreBCD stores the hundreds, tens and units digits of VX at I, I+1 and I+2.
func (c *Chip8) opStoreBCD(ins Instruction) error {
	if err := c.state.Memory.checkRange(c.state.Index, 3); err != nil {
		return err
	}

	value := c.state.Registers[ins.X]
	c.state.Memory[c.state.Index] = value / 100
	c.state.Memory[c.state.Index+1] = value / 10 % 10
	c.state.Memory[c.state.Index+2] = value % 10
	return nil
}

// opStoreRegisters stores V0 to VX inclusive to memory starting at I.
func (c *Chip8) opStoreRegisters(ins Instruction) error {
	count := int(ins.X) + 1
	if err := c.state.Memory.checkRange(c.state.Index, count); err != nil {
		return err
	}
	copy(c.state.Memory[c.state.Index:], c.state.Registers[:count])
	return nil
}

// opLoadRegisters loads V0 to VX inclusive from memory starting at I.
func (c *Chip8) opLoadRegisters(ins Instruction) error {
	count := int(ins.X) + 1
	if err := c.state.Memory.checkRange(c.state.Index, count); err != nil {
		return err
	}
	copy(c.state.Registers[:count], c.state.Memory[c.state.Index:])
	return nil
}

func flag(set bool) byte {
	if set {
		return 1
	}
	return 0
}
