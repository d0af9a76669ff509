package hw

import (
	"fmt"
	"io"

	"nescore/emu/log"
	"nescore/hw/hwdefs"
	"nescore/hw/hwio"
)

// Locations reserved for vector pointers.
const (
	NMIVector   = uint16(0xFFFA) // Non-Maskable Interrupt
	ResetVector = uint16(0xFFFC) // Reset
	IRQVector   = uint16(0xFFFE) // Interrupt Request
)

// Number of cycles taken by an interrupt sequence (NMI, IRQ or reset).
const interruptCycles = 7

// CPU is the NES 2A03 CPU core, a 6502 without decimal mode.
//
// The CPU executes one instruction per Step. Every bus access costs a cycle,
// and internal cycles are counted without touching the bus, so registers with
// read side effects are only read when the instruction architecturally reads
// them.
type CPU struct {
	Bus *hwio.Table

	// Non-nil when execution tracing is enabled.
	tracer *tracer
	dbg    Debugger
	clock  Ticker

	Cycles int64 // CPU cycles since power up

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P

	// interrupt lines
	nmiPending bool
	irqLines   hwdefs.IRQSource

	// set when an undocumented opcode has been fetched, until reset.
	halted *IllegalOpcodeError
}

// NewCPU creates a CPU reading and writing through bus. Reset must be called
// before Step.
func NewCPU(bus *hwio.Table) *CPU {
	return &CPU{
		Bus: bus,
		SP:  0xFD,
		P:   Reserved | Interrupt,
		dbg: nopDebugger{},
	}
}

// Reset performs the reset sequence. A soft reset, like the console reset
// button, only decrements SP and sets I; a hard reset brings registers back
// to their power-up state.
func (c *CPU) Reset(soft bool) {
	if soft {
		c.SP -= 0x03
		c.P.setFlags(Interrupt)
	} else {
		c.A = 0x00
		c.X = 0x00
		c.Y = 0x00
		c.SP = 0xFD
		c.P = Reserved | Interrupt
		c.Cycles = 0
	}

	c.nmiPending = false
	c.irqLines = 0
	c.halted = nil

	// Vector read from the bus without side effects.
	c.PC = hwio.Peek16(c.Bus, ResetVector)
	c.Stall(interruptCycles)
	c.dbg.Reset()

	log.ModCPU.InfoZ("reset").
		Bool("soft", soft).
		Hex16("pc", c.PC).
		End()
}

// RequestNMI latches an NMI edge. The NMI is serviced at the next
// instruction boundary.
func (c *CPU) RequestNMI() { c.nmiPending = true }

// RequestIRQ asserts the IRQ line for src. The line stays asserted until
// ClearIRQ is called for every asserted source.
func (c *CPU) RequestIRQ(src hwdefs.IRQSource) { c.irqLines |= src }

// ClearIRQ releases the IRQ line for src.
func (c *CPU) ClearIRQ(src hwdefs.IRQSource) { c.irqLines &^= src }

// NMIPending reports whether an NMI is waiting to be serviced.
func (c *CPU) NMIPending() bool { return c.nmiPending }

// IRQLines returns the sources currently asserting the IRQ line.
func (c *CPU) IRQLines() hwdefs.IRQSource { return c.irqLines }

// Halted returns the error that halted the CPU, or nil.
func (c *CPU) Halted() error {
	if c.halted == nil {
		return nil
	}
	return c.halted
}

// Step services a pending interrupt or executes one instruction and returns
// the number of CPU cycles it took. Fetching an undocumented opcode halts the
// CPU with an *IllegalOpcodeError; PC is left on the opcode and no other
// state is modified.
func (c *CPU) Step() (int, error) {
	if c.halted != nil {
		return 0, c.halted
	}

	start := c.Cycles
	switch {
	case c.nmiPending:
		c.nmiPending = false
		c.interrupt(NMIVector, true)
	case c.irqLines != 0 && !c.P.hasFlag(Interrupt):
		c.interrupt(IRQVector, false)
	default:
		opcode := c.Bus.Peek8(c.PC)
		op := ops[opcode]
		if op == nil {
			c.halted = &IllegalOpcodeError{PC: c.PC, Opcode: opcode}
			log.ModCPU.WarnZ("CPU halted").
				Hex16("pc", c.PC).
				Hex8("opcode", opcode).
				End()
			return 0, c.halted
		}

		c.traceOp()
		c.fetch8()
		op(c)
	}
	return int(c.Cycles - start), nil
}

// Stall burns n cycles, for instance while a DMA owns the bus.
func (c *CPU) Stall(n int) {
	for range n {
		c.tick()
	}
}

func (c *CPU) traceOp() {
	if c.tracer != nil {
		c.tracer.write(c)
	}
	c.dbg.Trace(c.PC)
}

// interrupt runs the 7-cycle NMI/IRQ sequence.
func (c *CPU) interrupt(vector uint16, isNMI bool) {
	c.tick() // dummy reads
	c.tick()

	prevpc := c.PC
	c.push16(c.PC)

	p := (c.P | Reserved) &^ Break
	c.push8(uint8(p))
	c.P.setFlags(Interrupt)
	c.PC = c.Read16(vector)
	c.dbg.Interrupt(prevpc, c.PC, isNMI)

	log.ModCPU.DebugZ("interrupt").
		Bool("nmi", isNMI).
		Hex16("from", prevpc).
		Hex16("to", c.PC).
		End()
}

/* bus access */

// A Ticker is clocked once per CPU cycle, before the bus access of that
// cycle, if any.
type Ticker interface {
	Tick()
}

func (c *CPU) tick() {
	c.Cycles++
	if c.clock != nil {
		c.clock.Tick()
	}
}

func (c *CPU) Read8(addr uint16) uint8 {
	c.tick()
	c.dbg.WatchRead(addr)
	return c.Bus.Read8(addr)
}

func (c *CPU) Write8(addr uint16, val uint8) {
	c.tick()
	c.dbg.WatchWrite(addr, val)
	c.Bus.Write8(addr, val)
}

func (c *CPU) Read16(addr uint16) uint16 {
	lo := c.Read8(addr)
	hi := c.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) fetch8() uint8 {
	val := c.Read8(c.PC)
	c.PC++
	return val
}

func (c *CPU) fetch16() uint16 {
	val := c.Read16(c.PC)
	c.PC += 2
	return val
}

/* stack operations */

func (c *CPU) push8(val uint8) {
	c.Write8(0x0100|uint16(c.SP), val)
	c.SP--
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val & 0xff))
}

func (c *CPU) pull8() uint8 {
	c.SP++
	return c.Read8(0x0100 | uint16(c.SP))
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

/* tracing / debugging */

// SetTraceOutput enables the execution trace. clock, if not nil, provides
// the PPU position printed on each line.
func (c *CPU) SetTraceOutput(w io.Writer, clock PPUClock) {
	if w == nil {
		c.tracer = nil
		return
	}
	c.tracer = &tracer{w: w, clock: clock}
}

// SetClock sets the device clocked along the CPU, usually the PPU
// stepping three dots per cycle.
func (c *CPU) SetClock(t Ticker) { c.clock = t }

func (c *CPU) SetDebugger(dbg Debugger) {
	if dbg == nil {
		dbg = nopDebugger{}
	}
	c.dbg = dbg
}

// Disasm disassembles the instruction at pc, without side effects.
func (c *CPU) Disasm(pc uint16) DisasmOp {
	opcode := c.Bus.Peek8(pc)
	return disasmOps[opcode](c, pc)
}

// IllegalOpcodeError is returned when the CPU fetches an undocumented opcode.
type IllegalOpcodeError struct {
	PC     uint16
	Opcode uint8
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode $%02X at $%04X", e.Opcode, e.PC)
}

func (e *IllegalOpcodeError) Unwrap() error { return hwdefs.ErrIllegalOpcode }
