package cpu

import (
	"fmt"

	"github.com/awkless/chocboy/internal/bits"
)

func init() {
	for bit := uint8(0); bit < 8; bit++ {
		for reg := uint8(0); reg < 8; reg++ {
			b, operand := bit, r8Table[reg]

			bitOpcode := 0x40 | b<<3 | reg
			bitCycles := uint8(2)
			if reg == 6 {
				bitCycles = 3
			}
			define(&cbTable, bitOpcode, fmt.Sprintf("BIT %d, %s", b, regNames[reg]), 2, bitCycles, func(c *CPU) {
				c.conditionalFlagToggle(FlagZero, !bits.IsBitSet(operand.Load(c), b))
				c.clearFlag(FlagSubtract)
				c.setFlag(FlagHalfCarry)
			})

			resCycles := uint8(2)
			if reg == 6 {
				resCycles = 4
			}
			resOpcode := 0x80 | b<<3 | reg
			define(&cbTable, resOpcode, fmt.Sprintf("RES %d, %s", b, regNames[reg]), 2, resCycles, func(c *CPU) {
				operand.Store(c, bits.ClearBit(operand.Load(c), b))
			})

			setOpcode := 0xC0 | b<<3 | reg
			define(&cbTable, setOpcode, fmt.Sprintf("SET %d, %s", b, regNames[reg]), 2, resCycles, func(c *CPU) {
				operand.Store(c, bits.SetBit(operand.Load(c), b))
			})
		}
	}
}
