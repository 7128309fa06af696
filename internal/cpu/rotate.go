package cpu

func init() {
	// Primary-page rotates act only on A and always clear Z, per §4.5.7.
	define(&primaryTable, 0x07, "RLCA", 1, 1, func(c *CPU) {
		carry := c.A&0x80 != 0
		c.A = c.A<<1 | c.A>>7
		c.setFlags(false, false, false, carry)
	})
	define(&primaryTable, 0x0F, "RRCA", 1, 1, func(c *CPU) {
		carry := c.A&0x01 != 0
		c.A = c.A>>1 | c.A<<7
		c.setFlags(false, false, false, carry)
	})
	define(&primaryTable, 0x17, "RLA", 1, 1, func(c *CPU) {
		carryIn := uint8(0)
		if c.isFlagSet(FlagCarry) {
			carryIn = 1
		}
		carryOut := c.A&0x80 != 0
		c.A = c.A<<1 | carryIn
		c.setFlags(false, false, false, carryOut)
	})
	define(&primaryTable, 0x1F, "RRA", 1, 1, func(c *CPU) {
		carryIn := uint8(0)
		if c.isFlagSet(FlagCarry) {
			carryIn = 0x80
		}
		carryOut := c.A&0x01 != 0
		c.A = c.A>>1 | carryIn
		c.setFlags(false, false, false, carryOut)
	})
}

// cbShift computes the result and carry-out of one of the eight CB-page
// rotate/shift/swap operations, identified by group (0=RLC, 1=RRC, 2=RL,
// 3=RR, 4=SLA, 5=SRA, 6=SWAP, 7=SRL), against v and the incoming carry
// flag.
func cbShift(group uint8, v uint8, carryIn bool) (result uint8, carryOut bool) {
	switch group {
	case 0: // RLC
		carryOut = v&0x80 != 0
		result = v<<1 | v>>7
	case 1: // RRC
		carryOut = v&0x01 != 0
		result = v>>1 | v<<7
	case 2: // RL
		carryOut = v&0x80 != 0
		in := uint8(0)
		if carryIn {
			in = 1
		}
		result = v<<1 | in
	case 3: // RR
		carryOut = v&0x01 != 0
		in := uint8(0)
		if carryIn {
			in = 0x80
		}
		result = v>>1 | in
	case 4: // SLA
		carryOut = v&0x80 != 0
		result = v << 1
	case 5: // SRA
		carryOut = v&0x01 != 0
		result = v>>1 | v&0x80
	case 6: // SWAP
		result = v>>4 | v<<4
	case 7: // SRL
		carryOut = v&0x01 != 0
		result = v >> 1
	}
	return result, carryOut
}

var cbShiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func init() {
	for group := uint8(0); group < 8; group++ {
		for reg := uint8(0); reg < 8; reg++ {
			opcode := group<<3 | reg
			operand := r8Table[reg]
			cycles := uint8(2)
			if reg == 6 {
				cycles = 4
			}
			g := group
			define(&cbTable, opcode, cbShiftNames[g]+" "+regNames[reg], 2, cycles, func(c *CPU) {
				v := operand.Load(c)
				result, carryOut := cbShift(g, v, c.isFlagSet(FlagCarry))
				operand.Store(c, result)
				c.setFlags(result == 0, false, false, carryOut)
			})
		}
	}
}
