// Package hwio provides address decoding for 16-bit buses. A Table maps every
// address to a BankIO8 (register, linear memory or device) and forwards
// reads and writes to it.
package hwio

import (
	"fmt"

	"nescore/emu/log"
	"nescore/hw/hwdefs"
)

// BankIO8 is implemented by anything that can be mapped on a Table.
type BankIO8 interface {
	Read8(addr uint16) uint8
	// Peek8 reads without side effects (debuggers, tracers).
	Peek8(addr uint16) uint8
	Write8(addr uint16, val uint8)
}

const busSize = 0x10000

// Table is a 64K address decoding table. Every address resolves in constant
// time; addresses with no mapping are forwarded to Unmapped, or read as zero
// if Unmapped is nil.
type Table struct {
	Name     string
	Unmapped BankIO8

	slots []BankIO8
}

func NewTable(name string) *Table {
	return &Table{
		Name:  name,
		slots: make([]BankIO8, busSize),
	}
}

// Reset removes every mapping.
func (t *Table) Reset() {
	clear(t.slots)
}

func (t *Table) mapRange(addr uint16, size int, io BankIO8) {
	end := int(addr) + size
	if size <= 0 || end > busSize {
		panic(hwdefs.OutOfRangeError{What: fmt.Sprintf("%s: map %s at $%04X", t.Name, describe(io), addr), Index: end - 1, Limit: busSize})
	}
	for i := int(addr); i < end; i++ {
		t.slots[i] = io
	}
}

// MapBank maps a register bank, that is a struct whose fields are hwio types
// carrying a "hwio" struct tag, at the given base address. Fields are
// selected by bank number; see InitRegs for the supported tag options.
func (t *Table) MapBank(addr uint16, bank any, bankNum int) {
	regs, err := bankGetRegs(bank, bankNum)
	if err != nil {
		panic(err)
	}

	for _, reg := range regs {
		switch r := reg.regPtr.(type) {
		case *Mem:
			t.MapMem(addr+reg.offset, r)
		case *Reg8:
			t.MapReg8(addr+reg.offset, r)
		case *Device:
			t.MapDevice(addr+reg.offset, r)
		default:
			panic(fmt.Errorf("invalid reg type: %T", r))
		}
	}
}

// UnmapBank undoes MapBank.
func (t *Table) UnmapBank(addr uint16, bank any, bankNum int) {
	regs, err := bankGetRegs(bank, bankNum)
	if err != nil {
		panic(err)
	}

	for _, reg := range regs {
		begin := addr + reg.offset
		switch r := reg.regPtr.(type) {
		case *Mem:
			t.Unmap(begin, begin+uint16(r.VSize-1))
		case *Reg8:
			t.Unmap(begin, begin)
		case *Device:
			t.Unmap(begin, begin+uint16(r.Size-1))
		default:
			panic(fmt.Errorf("invalid reg type: %T", r))
		}
	}
}

func (t *Table) MapReg8(addr uint16, reg *Reg8) {
	t.mapRange(addr, 1, reg)
}

func (t *Table) MapDevice(addr uint16, dev *Device) {
	log.ModHwIo.DebugZ("mapping device").
		Hex16("addr", addr).
		Int("size", dev.Size).
		String("dev", dev.Name).
		String("bus", t.Name).
		End()

	t.mapRange(addr, dev.Size, dev)
}

func (t *Table) MapMem(addr uint16, mem *Mem) {
	log.ModHwIo.DebugZ("mapping mem").
		Hex16("addr", addr).
		Int("size", mem.VSize).
		String("area", mem.Name).
		String("bus", t.Name).
		End()

	t.mapRange(addr, mem.VSize, mem.BankIO8())
}

// MapMemorySlice maps buf over the inclusive range [addr, end]. The range
// can be larger than buf, in which case buf is mirrored.
func (t *Table) MapMemorySlice(addr, end uint16, buf []uint8, readonly bool) {
	var flags MemFlags
	if readonly {
		flags |= MemFlag8ReadOnly
	}
	t.MapMem(addr, &Mem{
		Data:  buf,
		Flags: flags,
		VSize: int(end) - int(addr) + 1,
	})
}

// Unmap removes mappings over the inclusive range [begin, end].
func (t *Table) Unmap(begin, end uint16) {
	clear(t.slots[begin : int(end)+1])
}

// Mapped returns the BankIO8 at addr, or nil.
func (t *Table) Mapped(addr uint16) BankIO8 {
	return t.slots[addr]
}

func (t *Table) Read8(addr uint16) uint8 {
	if io := t.slots[addr]; io != nil {
		return io.Read8(addr)
	}
	if t.Unmapped != nil {
		return t.Unmapped.Read8(addr)
	}
	return 0
}

func (t *Table) Peek8(addr uint16) uint8 {
	if io := t.slots[addr]; io != nil {
		return io.Peek8(addr)
	}
	if t.Unmapped != nil {
		return t.Unmapped.Peek8(addr)
	}
	return 0
}

func (t *Table) Write8(addr uint16, val uint8) {
	if io := t.slots[addr]; io != nil {
		io.Write8(addr, val)
		return
	}
	if t.Unmapped != nil {
		t.Unmapped.Write8(addr, val)
	}
}

// Read16 reads a little-endian word.
func Read16(b BankIO8, addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Peek16 reads a little-endian word without side effects.
func Peek16(b BankIO8, addr uint16) uint16 {
	lo := b.Peek8(addr)
	hi := b.Peek8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func describe(io BankIO8) string {
	switch io := io.(type) {
	case *Reg8:
		return io.Name
	case *Device:
		return io.Name
	case *memio:
		return io.name
	}
	return fmt.Sprintf("%T", io)
}
