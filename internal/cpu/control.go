package cpu

import "fmt"

var condNames = [4]string{"NZ", "Z", "NC", "C"}

func init() {
	define(&primaryTable, 0xC3, "JP a16", 3, 4, func(c *CPU) {
		c.PC = (immediate16{}).Load16(c)
	})
	define(&primaryTable, 0xE9, "JP HL", 1, 1, func(c *CPU) {
		c.PC = c.HL.Uint16()
	})
	define(&primaryTable, 0x18, "JR e8", 2, 3, func(c *CPU) {
		offset := int8(immediate8{}.Load(c))
		c.PC = uint16(int32(c.PC) + int32(offset))
	})
	define(&primaryTable, 0xCD, "CALL a16", 3, 6, func(c *CPU) {
		target := (immediate16{}).Load16(c)
		c.push(c.PC)
		c.PC = target
	})
	define(&primaryTable, 0xC9, "RET", 1, 4, func(c *CPU) {
		c.PC = c.pop()
	})
	define(&primaryTable, 0xD9, "RETI", 1, 4, func(c *CPU) {
		c.PC = c.pop()
		c.IRQ.IME = true
	})

	for row := uint8(0); row < 4; row++ {
		cond := Condition(row)
		name := condNames[row]

		jpOpcode := 0xC2 + row<<3
		define(&primaryTable, jpOpcode, "JP "+name+", a16", 3, 3, func(c *CPU) {
			target := (immediate16{}).Load16(c)
			if c.test(cond) {
				c.PC = target
				c.addExtraCycles(1)
			}
		})

		jrOpcode := 0x20 + row<<3
		define(&primaryTable, jrOpcode, "JR "+name+", e8", 2, 2, func(c *CPU) {
			offset := int8(immediate8{}.Load(c))
			if c.test(cond) {
				c.PC = uint16(int32(c.PC) + int32(offset))
				c.addExtraCycles(1)
			}
		})

		callOpcode := 0xC4 + row<<3
		define(&primaryTable, callOpcode, "CALL "+name+", a16", 3, 3, func(c *CPU) {
			target := (immediate16{}).Load16(c)
			if c.test(cond) {
				c.push(c.PC)
				c.PC = target
				c.addExtraCycles(3)
			}
		})

		retOpcode := 0xC0 + row<<3
		define(&primaryTable, retOpcode, "RET "+name, 1, 2, func(c *CPU) {
			if c.test(cond) {
				c.PC = c.pop()
				c.addExtraCycles(3)
			}
		})
	}

	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 0x08
		opcode := 0xC7 | i<<3
		define(&primaryTable, opcode, fmt.Sprintf("RST %02XH", vector), 1, 4, func(c *CPU) {
			c.push(c.PC)
			c.PC = vector
		})
	}
}
