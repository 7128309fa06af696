// Package cpu implements the Sharp SM83 execution core: register file,
// addressing-mode layer, the primary and 0xCB-prefixed decode tables,
// instruction semantics, and the step primitive that drives them.
package cpu

import (
	"github.com/awkless/chocboy/internal/bus"
	"github.com/awkless/chocboy/internal/interrupts"
	"github.com/awkless/chocboy/internal/log"
	"github.com/awkless/chocboy/internal/state"
)

// mode is the CPU's run state.
type mode uint8

const (
	ModeRunning mode = iota
	ModeHalted
	ModeStopped
)

// CPU is the SM83 execution core. It holds no peripheral knowledge: the
// bus it was constructed with is the only way it observes or affects
// anything outside its own register file.
type CPU struct {
	Registers
	SP uint16
	PC uint16

	bus bus.Bus
	IRQ *interrupts.Service

	mode mode

	// haltBug is set by HALT when IME is false and an interrupt is
	// already pending at entry. The next fetch executes normally but
	// fails to advance PC, so the following byte is fetched again.
	haltBug bool

	// branchExtra accumulates the extra m-cycles a conditional
	// control-flow action adds when its branch is taken. Step resets it
	// to zero before invoking the action and folds it into the base
	// m-cycles afterward.
	branchExtra uint8

	mcycles uint64
	tstates uint64

	log log.Logger
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithLogger overrides the default no-op logger.
func WithLogger(l log.Logger) Option {
	return func(c *CPU) { c.log = l }
}

// NewCPU constructs a CPU wired to bus and irq, initialized to the DMG
// post-boot-ROM register state.
func NewCPU(b bus.Bus, irq *interrupts.Service, opts ...Option) *CPU {
	c := &CPU{
		bus: b,
		IRQ: irq,
		log: log.NewNullLogger(),
	}
	c.wireRegisterPairs()
	for _, opt := range opts {
		opt(c)
	}
	c.reset()
	return c
}

// MCycles returns the cumulative m-cycle count since construction.
func (c *CPU) MCycles() uint64 { return c.mcycles }

// TStates returns the cumulative T-state count since construction.
// TStates is always 4*MCycles.
func (c *CPU) TStates() uint64 { return c.tstates }

// tick folds m m-cycles into both counters.
func (c *CPU) tick(m uint8) {
	c.mcycles += uint64(m)
	c.tstates += uint64(m) * 4
}

// addExtraCycles is called by control-flow actions when the branch they
// just evaluated was taken, to add to the descriptor's not-taken base.
func (c *CPU) addExtraCycles(m uint8) {
	c.branchExtra += m
}

// push writes v onto the stack, decrementing SP by two first and storing
// the high byte at the resulting SP and the low byte at SP+1.
func (c *CPU) push(v uint16) {
	c.SP -= 2
	c.bus.WriteWord(c.SP, v)
}

// pop reads a 16-bit value off the stack and increments SP by two.
func (c *CPU) pop() uint16 {
	v := c.bus.ReadWord(c.SP)
	c.SP += 2
	return v
}

// dispatchInterrupt services src per spec §4.5.11: disable IME, clear the
// source's IF bit, push PC, jump to the source's vector, and account the
// fixed 5 m-cycle dispatch cost.
func (c *CPU) dispatchInterrupt(src interrupts.Source) {
	c.IRQ.IME = false
	c.IRQ.Clear(src)
	c.push(c.PC)
	c.PC = interrupts.Vector(src)
	c.mode = ModeRunning
	c.tick(5)
}

// Step executes one instruction, or one step of interrupt dispatch / halt
// idling, per §4.5.12.
func (c *CPU) Step() error {
	if c.mode == ModeStopped {
		return nil
	}

	if c.IRQ.IME {
		if src, ok := c.IRQ.Next(); ok {
			c.dispatchInterrupt(src)
			return nil
		}
	} else if c.mode == ModeHalted && c.IRQ.HasPending() {
		c.mode = ModeRunning
	}

	if c.mode == ModeHalted {
		c.tick(1)
		return nil
	}

	pcAtFetch := c.PC
	opcode := c.bus.ReadByte(c.PC)
	c.PC++
	if c.haltBug {
		c.PC--
		c.haltBug = false
	}

	var desc *Instruction
	prefixed := opcode == 0xCB
	var cbOpcode uint8
	if prefixed {
		cbOpcode = c.bus.ReadByte(c.PC)
		c.PC++
		desc = &cbTable[cbOpcode]
	} else {
		desc = &primaryTable[opcode]
	}

	if desc.Action == nil {
		return &IllegalOpcodeError{PC: pcAtFetch, Opcode: opcode, Prefixed: prefixed, CBOpcode: cbOpcode}
	}

	c.log.Debugf("%s\tlen=%d", desc.Mnemonic, desc.Length)

	c.branchExtra = 0
	desc.Action(c)
	c.tick(desc.BaseMCycles + c.branchExtra)
	return nil
}

var _ state.Stater = (*CPU)(nil)

// Save writes the register file, SP, PC, and run mode. The bus and
// interrupt service are owned and persisted externally.
func (c *CPU) Save(w *state.Writer) {
	w.Write8(c.A)
	w.Write8(c.F)
	w.Write8(c.B)
	w.Write8(c.C)
	w.Write8(c.D)
	w.Write8(c.E)
	w.Write8(c.H)
	w.Write8(c.L)
	w.Write16(c.SP)
	w.Write16(c.PC)
	w.Write8(uint8(c.mode))
	w.WriteBool(c.haltBug)
}

// Load restores state written by Save.
func (c *CPU) Load(r *state.Reader) {
	c.A = r.Read8()
	c.setF(r.Read8())
	c.B = r.Read8()
	c.C = r.Read8()
	c.D = r.Read8()
	c.E = r.Read8()
	c.H = r.Read8()
	c.L = r.Read8()
	c.SP = r.Read16()
	c.PC = r.Read16()
	c.mode = mode(r.Read8())
	c.haltBug = r.ReadBool()
}
