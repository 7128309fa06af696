package cpu

func init() {
	define(&primaryTable, 0x00, "NOP", 1, 1, func(c *CPU) {})

	define(&primaryTable, 0x76, "HALT", 1, 1, func(c *CPU) {
		if !c.IRQ.IME && c.IRQ.HasPending() {
			c.haltBug = true
			return
		}
		c.mode = ModeHalted
	})

	define(&primaryTable, 0x10, "STOP", 2, 1, func(c *CPU) {
		_ = c.bus.ReadByte(c.PC)
		c.PC++
		c.mode = ModeStopped
	})

	define(&primaryTable, 0xF3, "DI", 1, 1, func(c *CPU) { c.IRQ.IME = false })
	define(&primaryTable, 0xFB, "EI", 1, 1, func(c *CPU) { c.IRQ.IME = true })

	define(&primaryTable, 0x2F, "CPL", 1, 1, func(c *CPU) {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})

	define(&primaryTable, 0x37, "SCF", 1, 1, func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	define(&primaryTable, 0x3F, "CCF", 1, 1, func(c *CPU) {
		c.conditionalFlagToggle(FlagCarry, !c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})

	// DAA per §4.5.6: the two branches are kept fully separate, each
	// checking C and H independently, rather than merging them into one
	// "N==0 || A>0x99"-style condition.
	define(&primaryTable, 0x27, "DAA", 1, 1, func(c *CPU) {
		n := c.isFlagSet(FlagSubtract)
		carry := c.isFlagSet(FlagCarry)
		halfCarry := c.isFlagSet(FlagHalfCarry)

		if !n {
			if carry || c.A > 0x99 {
				c.A += 0x60
				carry = true
			}
			if halfCarry || c.A&0x0F > 0x09 {
				c.A += 0x06
			}
		} else {
			if carry {
				c.A -= 0x60
			}
			if halfCarry {
				c.A -= 0x06
			}
		}

		c.setFlags(c.A == 0, n, false, carry)
	})
}
