package cpu

// regNames gives the canonical Pan-Docs-style text for the 3-bit register
// encoding shared by the LD r,r' and ALU-r groups; index 6 is rendered in
// bracket notation since it addresses memory through HL rather than a
// register.
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "[HL]", "A"}

func init() {
	// LD r, r' — the 64-entry grid at 0x40-0x7F. 0x76 (dst=(HL), src=(HL))
	// is HALT instead and is defined in misc.go.
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dst := (opcode >> 3) & 7
		src := opcode & 7
		cycles := uint8(1)
		if dst == 6 || src == 6 {
			cycles = 2
		}
		mnemonic := "LD " + regNames[dst] + ", " + regNames[src]
		d, s := r8Table[dst], r8Table[src]
		define(&primaryTable, uint8(opcode), mnemonic, 1, cycles, func(c *CPU) {
			d.Store(c, s.Load(c))
		})
	}

	// LD r, d8 and LD (HL), d8 — the 8 slots at columns 6 and E of rows
	// 0x00-0x30.
	for row := uint8(0); row < 8; row++ {
		dst := r8Table[row]
		opcode := row<<3 | 0x06
		cycles := uint8(2)
		if row == 6 {
			cycles = 3
		}
		define(&primaryTable, opcode, "LD "+regNames[row]+", n8", 2, cycles, func(c *CPU) {
			dst.Store(c, immediate8{}.Load(c))
		})
	}

	define(&primaryTable, 0x02, "LD [BC], A", 1, 2, func(c *CPU) { opIndirBC.Store(c, c.A) })
	define(&primaryTable, 0x12, "LD [DE], A", 1, 2, func(c *CPU) { opIndirDE.Store(c, c.A) })
	define(&primaryTable, 0x0A, "LD A, [BC]", 1, 2, func(c *CPU) { c.A = opIndirBC.Load(c) })
	define(&primaryTable, 0x1A, "LD A, [DE]", 1, 2, func(c *CPU) { c.A = opIndirDE.Load(c) })

	define(&primaryTable, 0x22, "LD [HL+], A", 1, 2, func(c *CPU) { opIndirHLInc.Store(c, c.A) })
	define(&primaryTable, 0x32, "LD [HL-], A", 1, 2, func(c *CPU) { opIndirHLDec.Store(c, c.A) })
	define(&primaryTable, 0x2A, "LD A, [HL+]", 1, 2, func(c *CPU) { c.A = opIndirHLInc.Load(c) })
	define(&primaryTable, 0x3A, "LD A, [HL-]", 1, 2, func(c *CPU) { c.A = opIndirHLDec.Load(c) })

	define(&primaryTable, 0xE0, "LDH [n8], A", 2, 3, func(c *CPU) { (immediate8IndirHram{}).Store(c, c.A) })
	define(&primaryTable, 0xF0, "LDH A, [n8]", 2, 3, func(c *CPU) { c.A = (immediate8IndirHram{}).Load(c) })
	define(&primaryTable, 0xE2, "LD [C], A", 1, 2, func(c *CPU) { (indirHramC{}).Store(c, c.A) })
	define(&primaryTable, 0xF2, "LD A, [C]", 1, 2, func(c *CPU) { c.A = (indirHramC{}).Load(c) })

	define(&primaryTable, 0xEA, "LD [a16], A", 3, 4, func(c *CPU) { (immediate8IndirAbsolute{}).Store(c, c.A) })
	define(&primaryTable, 0xFA, "LD A, [a16]", 3, 4, func(c *CPU) { c.A = (immediate8IndirAbsolute{}).Load(c) })

	// LD rr, d16 — BC, DE, HL, SP.
	rp16Names := [4]string{"BC", "DE", "HL", "SP"}
	for i := uint8(0); i < 4; i++ {
		opcode := i<<4 | 0x01
		dst := rp16TableSP[i]
		define(&primaryTable, opcode, "LD "+rp16Names[i]+", n16", 3, 3, func(c *CPU) {
			dst.Store16(c, (immediate16{}).Load16(c))
		})
	}

	define(&primaryTable, 0x08, "LD [a16], SP", 3, 5, func(c *CPU) {
		(immediate16IndirAbsolute{}).Store16(c, c.SP)
	})
	define(&primaryTable, 0xF9, "LD SP, HL", 1, 2, func(c *CPU) { c.SP = c.HL.Uint16() })

	// PUSH rr / POP rr — BC, DE, HL, AF.
	pushPopNames := [4]string{"BC", "DE", "HL", "AF"}
	for i := uint8(0); i < 4; i++ {
		pair := rp16TableAF[i]
		isAF := i == 3
		pushOp, popOp := 0xC5+i<<4, 0xC1+i<<4
		define(&primaryTable, pushOp, "PUSH "+pushPopNames[i], 1, 4, func(c *CPU) {
			c.push(pair.Load16(c))
		})
		define(&primaryTable, popOp, "POP "+pushPopNames[i], 1, 3, func(c *CPU) {
			v := c.pop()
			if isAF {
				v &= 0xFFF0
			}
			pair.Store16(c, v)
		})
	}

	define(&primaryTable, 0xF8, "LD HL, SP+e8", 2, 3, func(c *CPU) {
		e8 := int8(immediate8{}.Load(c))
		result, h, cy := addSPOffset(c.SP, e8)
		c.HL.SetUint16(result)
		c.setFlags(false, false, h, cy)
	})
	define(&primaryTable, 0xE8, "ADD SP, e8", 2, 4, func(c *CPU) {
		e8 := int8(immediate8{}.Load(c))
		result, h, cy := addSPOffset(c.SP, e8)
		c.SP = result
		c.setFlags(false, false, h, cy)
	})
}

// addSPOffset computes SP + sign-extended e8 per §4.5.2/§4.5.5: H and C are
// carries out of bit 3 and bit 7 of the *unsigned* addition of SP's low
// byte with e8's unsigned byte representation, not of the full 16-bit sum.
func addSPOffset(sp uint16, e8 int8) (result uint16, halfCarry, carry bool) {
	low := uint8(sp)
	operand := uint8(e8)
	halfCarry = (low&0x0F)+(operand&0x0F) > 0x0F
	carry = uint16(low)+uint16(operand) > 0xFF
	result = uint16(int32(sp) + int32(e8))
	return result, halfCarry, carry
}
