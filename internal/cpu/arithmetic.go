package cpu

// addA computes A + x + carryIn, writes the result to A, and sets flags per
// §4.5.3. carryIn is the value fed into ADC's addend; ADD always passes
// false.
func (c *CPU) addA(x uint8, carryIn bool) {
	var cin uint16
	if carryIn {
		cin = 1
	}
	sum := uint16(c.A) + uint16(x) + cin
	halfCarry := (c.A&0x0F)+(x&0x0F)+uint8(cin) > 0x0F
	result := uint8(sum)
	c.setFlags(result == 0, false, halfCarry, sum > 0xFF)
	c.A = result
}

// subA computes A - x - carryIn per §4.5.3. If store is true the result is
// written back to A (SUB/SBC); CP evaluates the same flags without
// writing.
func (c *CPU) subA(x uint8, carryIn bool, store bool) {
	var cin int16
	if carryIn {
		cin = 1
	}
	diff := int16(c.A) - int16(x) - cin
	halfCarry := int16(c.A&0x0F)-int16(x&0x0F)-cin < 0
	result := uint8(diff)
	c.setFlags(result == 0, true, halfCarry, diff < 0)
	if store {
		c.A = result
	}
}

func (c *CPU) andA(x uint8) {
	c.A &= x
	c.setFlags(c.A == 0, false, true, false)
}

func (c *CPU) orA(x uint8) {
	c.A |= x
	c.setFlags(c.A == 0, false, false, false)
}

func (c *CPU) xorA(x uint8) {
	c.A ^= x
	c.setFlags(c.A == 0, false, false, false)
}

func init() {
	type aluOp struct {
		name string
		fn   func(c *CPU, x uint8)
	}
	ops := [8]aluOp{
		{"ADD A,", func(c *CPU, x uint8) { c.addA(x, false) }},
		{"ADC A,", func(c *CPU, x uint8) { c.addA(x, c.isFlagSet(FlagCarry)) }},
		{"SUB A,", func(c *CPU, x uint8) { c.subA(x, false, true) }},
		{"SBC A,", func(c *CPU, x uint8) { c.subA(x, c.isFlagSet(FlagCarry), true) }},
		{"AND A,", func(c *CPU, x uint8) { c.andA(x) }},
		{"XOR A,", func(c *CPU, x uint8) { c.xorA(x) }},
		{"OR A,", func(c *CPU, x uint8) { c.orA(x) }},
		{"CP A,", func(c *CPU, x uint8) { c.subA(x, false, false) }},
	}

	// ALU A, r — the 64-entry grid at 0x80-0xBF.
	for opcode := 0x80; opcode <= 0xBF; opcode++ {
		group := (opcode >> 3) & 7
		reg := opcode & 7
		op := ops[group]
		src := r8Table[reg]
		cycles := uint8(1)
		if reg == 6 {
			cycles = 2
		}
		define(&primaryTable, uint8(opcode), op.name+" "+regNames[reg], 1, cycles, func(c *CPU) {
			op.fn(c, src.Load(c))
		})
	}

	// ALU A, d8 — one immediate form per operation, at columns 6 and E of
	// rows 0xC0-0xF0.
	for group := uint8(0); group < 8; group++ {
		opcode := 0xC6 + group<<3
		op := ops[group]
		define(&primaryTable, opcode, op.name+" n8", 2, 2, func(c *CPU) {
			op.fn(c, immediate8{}.Load(c))
		})
	}

	// INC r / DEC r — the 8-bit forms at columns 4/5 and C/D of rows
	// 0x00-0x30.
	for row := uint8(0); row < 8; row++ {
		reg := r8Table[row]
		incOpcode, decOpcode := row<<3|0x04, row<<3|0x05
		cycles := uint8(1)
		if row == 6 {
			cycles = 3
		}
		define(&primaryTable, incOpcode, "INC "+regNames[row], 1, cycles, func(c *CPU) {
			v := reg.Load(c)
			result := v + 1
			reg.Store(c, result)
			c.conditionalFlagToggle(FlagZero, result == 0)
			c.clearFlag(FlagSubtract)
			c.conditionalFlagToggle(FlagHalfCarry, v&0x0F == 0x0F)
		})
		define(&primaryTable, decOpcode, "DEC "+regNames[row], 1, cycles, func(c *CPU) {
			v := reg.Load(c)
			result := v - 1
			reg.Store(c, result)
			c.conditionalFlagToggle(FlagZero, result == 0)
			c.setFlag(FlagSubtract)
			c.conditionalFlagToggle(FlagHalfCarry, v&0x0F == 0x00)
		})
	}

	// 16-bit INC rr / DEC rr / ADD HL,rr — BC, DE, HL, SP.
	rp16Names := [4]string{"BC", "DE", "HL", "SP"}
	for i := uint8(0); i < 4; i++ {
		pair := rp16TableSP[i]
		incOpcode, decOpcode, addOpcode := i<<4|0x03, i<<4|0x0B, i<<4|0x09
		define(&primaryTable, incOpcode, "INC "+rp16Names[i], 1, 2, func(c *CPU) {
			pair.Store16(c, pair.Load16(c)+1)
		})
		define(&primaryTable, decOpcode, "DEC "+rp16Names[i], 1, 2, func(c *CPU) {
			pair.Store16(c, pair.Load16(c)-1)
		})
		define(&primaryTable, addOpcode, "ADD HL, "+rp16Names[i], 1, 2, func(c *CPU) {
			hl, rr := c.HL.Uint16(), pair.Load16(c)
			sum := uint32(hl) + uint32(rr)
			halfCarry := (hl&0x0FFF)+(rr&0x0FFF) > 0x0FFF
			c.HL.SetUint16(uint16(sum))
			c.conditionalFlagToggle(FlagHalfCarry, halfCarry)
			c.clearFlag(FlagSubtract)
			c.conditionalFlagToggle(FlagCarry, sum > 0xFFFF)
		})
	}
}
