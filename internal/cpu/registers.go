package cpu

import "github.com/awkless/chocboy/internal/bits"

// Register is an 8-bit CPU register cell.
type Register = uint8

// RegisterPair overlays two Register cells as a single 16-bit logical view,
// High occupying the upper byte, matching the SM83's AF/BC/DE/HL naming
// convention (the first-named register is always the high byte).
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the pair's value as a single 16-bit word.
func (p *RegisterPair) Uint16() uint16 {
	return bits.FromPair(*p.High, *p.Low)
}

// SetUint16 decomposes v into the pair's two underlying registers.
func (p *RegisterPair) SetUint16(v uint16) {
	*p.High = bits.FromHigh(v)
	*p.Low = bits.FromLow(v)
}

// Flag identifies one of the four defined bits of the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Registers holds the eight 8-bit SM83 registers plus the four logical
// 16-bit pair views over them. SP and PC are not part of Registers: they
// are true 16-bit cells with no overlapping 8-bit view, and live directly
// on CPU.
type Registers struct {
	A, F Register
	B, C Register
	D, E Register
	H, L Register

	AF, BC, DE, HL *RegisterPair
}

// wireRegisterPairs points AF/BC/DE/HL at c's own register cells. It must
// be called on the CPU's final, addressable storage: building the pairs
// against a Registers value that is later copied (by embedding it in CPU,
// or returning it by value) would leave them pointing at the copy's source,
// not at the copy itself, since a RegisterPair stores raw *Register
// pointers rather than a back-reference it can re-resolve after a move.
func (c *CPU) wireRegisterPairs() {
	c.AF = &RegisterPair{&c.A, &c.F}
	c.BC = &RegisterPair{&c.B, &c.C}
	c.DE = &RegisterPair{&c.D, &c.E}
	c.HL = &RegisterPair{&c.H, &c.L}
}

// setF writes v to F, masking the low nibble to zero per spec invariant 1:
// F's low nibble is always zero on read.
func (r *Registers) setF(v uint8) {
	r.F = v & 0xF0
}

// setFlag sets flag in F.
func (c *CPU) setFlag(flag Flag) {
	c.setF(bits.SetBit(c.F, flag))
}

// clearFlag clears flag in F.
func (c *CPU) clearFlag(flag Flag) {
	c.setF(bits.ClearBit(c.F, flag))
}

// toggleFlag flips flag in F.
func (c *CPU) toggleFlag(flag Flag) {
	c.setF(bits.ToggleBit(c.F, flag))
}

// conditionalFlagToggle sets flag if cond is true, clears it otherwise.
func (c *CPU) conditionalFlagToggle(flag Flag, cond bool) {
	c.setF(bits.ConditionalBitToggle(c.F, flag, cond))
}

// isFlagSet reports whether flag is set in F.
func (c *CPU) isFlagSet(flag Flag) bool {
	return bits.IsBitSet(c.F, flag)
}

// setFlags writes all four flags in one call; the add/sub/and/or/xor ALU
// helpers and the rotate/shift/DAA actions use this rather than four
// separate calls, matching the teacher's
// add/sub/and/or/xor helpers which compute all four post-conditions at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.conditionalFlagToggle(FlagZero, zero)
	c.conditionalFlagToggle(FlagSubtract, subtract)
	c.conditionalFlagToggle(FlagHalfCarry, halfCarry)
	c.conditionalFlagToggle(FlagCarry, carry)
}

// shouldZeroFlag sets FlagZero iff value is zero, leaving the other flags
// untouched.
func (c *CPU) shouldZeroFlag(value uint8) {
	c.conditionalFlagToggle(FlagZero, value == 0)
}

// Condition identifies one of the four branch conditions tested by
// conditional jump/call/return instructions.
type Condition uint8

const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
)

// test evaluates cond against the current flags.
func (c *CPU) test(cond Condition) bool {
	switch cond {
	case CondNZ:
		return !c.isFlagSet(FlagZero)
	case CondZ:
		return c.isFlagSet(FlagZero)
	case CondNC:
		return !c.isFlagSet(FlagCarry)
	case CondC:
		return c.isFlagSet(FlagCarry)
	}
	panic("cpu: invalid condition")
}

// reset restores the DMG post-boot-ROM register state described in spec §3.
func (c *CPU) reset() {
	c.A = 0x01
	c.setF(0x80)
	c.B, c.C = 0x00, 0x13
	c.D, c.E = 0x00, 0xD8
	c.H, c.L = 0x01, 0x4D
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.IRQ.IME = true
	c.mode = ModeRunning
}
