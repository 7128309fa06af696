package cpu

// Operand8Reader is implemented by every 8-bit addressing mode: it can
// produce a value, whether that value comes from a register, memory, or an
// immediate byte fetched from the instruction stream.
type Operand8Reader interface {
	Load(c *CPU) uint8
}

// Operand8 is implemented by the 8-bit addressing modes that can also be
// written back to. Immediate operands (the "n" in "ADD A,n") implement only
// Operand8Reader: there is no memory cell or register behind an immediate
// to write into, so the compiler rejects any attempt to use one as a Store
// target. This is the sum-type replacement for what the source expressed
// with template instantiation over an addressing-mode tag.
type Operand8 interface {
	Operand8Reader
	Store(c *CPU, v uint8)
}

// Operand16Reader is the 16-bit analogue of Operand8Reader.
type Operand16Reader interface {
	Load16(c *CPU) uint16
}

// Operand16 is the 16-bit analogue of Operand8.
type Operand16 interface {
	Operand16Reader
	Store16(c *CPU, v uint16)
}

// reg8 addresses one of the eight 8-bit registers directly.
type reg8 struct {
	get func(c *CPU) *uint8
}

func (o reg8) Load(c *CPU) uint8     { return *o.get(c) }
func (o reg8) Store(c *CPU, v uint8) { *o.get(c) = v }

var (
	regA = reg8{func(c *CPU) *uint8 { return &c.A }}
	regB = reg8{func(c *CPU) *uint8 { return &c.B }}
	regC = reg8{func(c *CPU) *uint8 { return &c.C }}
	regD = reg8{func(c *CPU) *uint8 { return &c.D }}
	regE = reg8{func(c *CPU) *uint8 { return &c.E }}
	regH = reg8{func(c *CPU) *uint8 { return &c.H }}
	regL = reg8{func(c *CPU) *uint8 { return &c.L }}
)

// indirReg16 addresses the byte in memory pointed to by a 16-bit register
// pair, optionally incrementing or decrementing the pair after the access
// (for the HL+/HL- forms used by LDI/LDD). The pair is resolved through an
// accessor rather than captured directly, so values of this type can be
// declared as package-level constants shared by every CPU instance.
type indirReg16 struct {
	pair func(c *CPU) *RegisterPair
	step int
}

func (o indirReg16) Load(c *CPU) uint8 {
	p := o.pair(c)
	v := c.bus.ReadByte(p.Uint16())
	o.applyStep(p)
	return v
}

func (o indirReg16) Store(c *CPU, v uint8) {
	p := o.pair(c)
	c.bus.WriteByte(p.Uint16(), v)
	o.applyStep(p)
}

func (o indirReg16) applyStep(p *RegisterPair) {
	if o.step != 0 {
		p.SetUint16(uint16(int(p.Uint16()) + o.step))
	}
}

var (
	opIndirBC    = indirReg16{pair: func(c *CPU) *RegisterPair { return c.BC }}
	opIndirDE    = indirReg16{pair: func(c *CPU) *RegisterPair { return c.DE }}
	opIndirHL    = indirReg16{pair: func(c *CPU) *RegisterPair { return c.HL }}
	opIndirHLInc = indirReg16{pair: func(c *CPU) *RegisterPair { return c.HL }, step: 1}
	opIndirHLDec = indirReg16{pair: func(c *CPU) *RegisterPair { return c.HL }, step: -1}
)

// indirHramC addresses the high-RAM byte at 0xFF00+C, used by LD A,(C) and
// LD (C),A.
type indirHramC struct{}

func (indirHramC) Load(c *CPU) uint8 {
	return c.bus.ReadByte(0xFF00 + uint16(c.C))
}

func (indirHramC) Store(c *CPU, v uint8) {
	c.bus.WriteByte(0xFF00+uint16(c.C), v)
}

// immediate8 fetches the byte at PC and advances PC by one. It is
// Operand8Reader only: an immediate has no address of its own to store
// into.
type immediate8 struct{}

func (immediate8) Load(c *CPU) uint8 {
	v := c.bus.ReadByte(c.PC)
	c.PC++
	return v
}

// immediate8IndirHram addresses the high-RAM byte at 0xFF00+n, where n is
// the immediate byte fetched from the instruction stream (LDH forms).
type immediate8IndirHram struct{}

func (immediate8IndirHram) Load(c *CPU) uint8 {
	n := immediate8{}.Load(c)
	return c.bus.ReadByte(0xFF00 + uint16(n))
}

func (immediate8IndirHram) Store(c *CPU, v uint8) {
	n := immediate8{}.Load(c)
	c.bus.WriteByte(0xFF00+uint16(n), v)
}

// immediate16 fetches the little-endian 16-bit word at PC and advances PC
// by two.
type immediate16 struct{}

func (immediate16) Load16(c *CPU) uint16 {
	lo := c.bus.ReadByte(c.PC)
	hi := c.bus.ReadByte(c.PC + 1)
	c.PC += 2
	return uint16(hi)<<8 | uint16(lo)
}

// immediate8IndirAbsolute addresses the byte at the 16-bit absolute address
// given by the immediate word fetched from the instruction stream
// (LD A,(nn) / LD (nn),A).
type immediate8IndirAbsolute struct{}

func (immediate8IndirAbsolute) Load(c *CPU) uint8 {
	addr := immediate16{}.Load16(c)
	return c.bus.ReadByte(addr)
}

func (immediate8IndirAbsolute) Store(c *CPU, v uint8) {
	addr := immediate16{}.Load16(c)
	c.bus.WriteByte(addr, v)
}

// regPair16 addresses one of the four 16-bit register-pair views directly.
type regPair16 struct {
	pair func(c *CPU) *RegisterPair
}

func (o regPair16) Load16(c *CPU) uint16      { return o.pair(c).Uint16() }
func (o regPair16) Store16(c *CPU, v uint16)  { o.pair(c).SetUint16(v) }

var (
	pairBC = regPair16{func(c *CPU) *RegisterPair { return c.BC }}
	pairDE = regPair16{func(c *CPU) *RegisterPair { return c.DE }}
	pairHL = regPair16{func(c *CPU) *RegisterPair { return c.HL }}
	pairAF = regPair16{func(c *CPU) *RegisterPair { return c.AF }}
)

// spOperand addresses the stack pointer directly.
type spOperand struct{}

func (spOperand) Load16(c *CPU) uint16     { return c.SP }
func (spOperand) Store16(c *CPU, v uint16) { c.SP = v }

// immediate16IndirAbsolute addresses the word in memory at the 16-bit
// absolute address given by the immediate word fetched from the
// instruction stream. Its only use in the instruction set is LD (nn),SP,
// but it is given a Load16 for symmetry and because a future disassembler
// can read back what it wrote.
type immediate16IndirAbsolute struct{}

func (immediate16IndirAbsolute) Load16(c *CPU) uint16 {
	addr := immediate16{}.Load16(c)
	return c.bus.ReadWord(addr)
}

func (immediate16IndirAbsolute) Store16(c *CPU, v uint16) {
	addr := immediate16{}.Load16(c)
	c.bus.WriteWord(addr, v)
}

// r8Table maps the standard 3-bit register encoding shared by the LD r,r',
// ALU-r, and CB-prefixed instruction groups to its Operand8. Index 6,
// (HL), is the only entry that touches memory rather than a register.
var r8Table = [8]Operand8{regB, regC, regD, regE, regH, regL, opIndirHL, regA}

// rp16TableSP maps the 2-bit register-pair encoding used by 16-bit LD and
// arithmetic instructions (BC, DE, HL, SP) to its Operand16.
var rp16TableSP = [4]Operand16{pairBC, pairDE, pairHL, spOperand{}}

// rp16TableAF maps the 2-bit register-pair encoding used by PUSH/POP
// (BC, DE, HL, AF) to its Operand16.
var rp16TableAF = [4]Operand16{pairBC, pairDE, pairHL, pairAF}
