package mappers

import (
	"nescore/ines"
)

const (
	prgPageSize = 0x2000 // 8KB
	chrPageSize = 0x0400 // 1KB
)

// base holds the state common to all boards. PRG ROM at $8000-$FFFF is
// seen through four 8KB windows, CHR through eight 1KB windows; boards
// implement bank switching by pointing windows at bank offsets.
type base struct {
	desc MapperDesc
	rom  *ines.Rom

	prgram []byte
	chr    []byte // CHR ROM or CHR RAM
	chrRAM bool

	prgPages [4]int
	chrPages [8]int

	ntm ines.NTMirroring

	// called on writes to $8000-$FFFF
	writeROM func(addr uint16, val uint8)
}

func newbase(desc MapperDesc, rom *ines.Rom) *base {
	b := &base{
		desc: desc,
		rom:  rom,
		ntm:  rom.Mirroring(),
	}
	if sz := rom.PRGRAMSize(); sz > 0 {
		b.prgram = make([]byte, sz)
	}
	if len(rom.CHRROM) > 0 {
		b.chr = rom.CHRROM
	} else {
		b.chr = make([]byte, rom.CHRRAMSize())
		b.chrRAM = true
	}

	// Power-up: first 16KB at $8000, last 16KB at $C000.
	b.selectPRGPage16KB(0, 0)
	b.selectPRGPage16KB(1, -1)
	b.selectCHRPage8KB(0)
	return b
}

func (b *base) init(writeROM func(addr uint16, val uint8)) {
	b.writeROM = writeROM
}

func (b *base) Name() string   { return b.desc.Name }
func (b *base) PRGROM() []byte { return b.rom.PRGROM }
func (b *base) PRGRAM() []byte { return b.prgram }
func (b *base) CHR() []byte    { return b.chr }

func (b *base) Mirroring() ines.NTMirroring { return b.ntm }

func (b *base) setNTMirroring(m ines.NTMirroring) {
	if b.ntm == ines.FourScreen {
		// Four screen boards have their own VRAM, mirroring can't change.
		return
	}
	if b.ntm != m {
		modMapper.DebugZ("select NT mirroring").String("mapper", b.desc.Name).Stringer("prev", b.ntm).Stringer("new", m).End()
	}
	b.ntm = m
}

func (b *base) ReadPRG(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		page := (addr - 0x8000) / prgPageSize
		return b.rom.PRGROM[b.prgPages[page]+int(addr&(prgPageSize-1))]
	case addr >= 0x6000 && len(b.prgram) > 0:
		return b.prgram[int(addr-0x6000)%len(b.prgram)]
	}
	// Open bus: the high byte of the address is still on the data bus.
	return uint8(addr >> 8)
}

// PeekPRG is ReadPRG: no board has read side effects.
func (b *base) PeekPRG(addr uint16) uint8 {
	return b.ReadPRG(addr)
}

func (b *base) WritePRG(addr uint16, val uint8) {
	switch {
	case addr >= 0x8000:
		if b.writeROM != nil {
			b.writeROM(addr, val)
		}
	case addr >= 0x6000 && len(b.prgram) > 0:
		b.prgram[int(addr-0x6000)%len(b.prgram)] = val
	}
}

func (b *base) ReadCHR(addr uint16) uint8 {
	addr &= 0x1FFF
	return b.chr[b.chrPages[addr/chrPageSize]+int(addr&(chrPageSize-1))]
}

func (b *base) WriteCHR(addr uint16, val uint8) {
	if !b.chrRAM {
		return
	}
	addr &= 0x1FFF
	b.chr[b.chrPages[addr/chrPageSize]+int(addr&(chrPageSize-1))] = val
}

// bankOffset returns the offset of the bank of size sz in a memory of
// length n. Negative banks count from the end, and bank numbers wrap.
func bankOffset(n, sz, bank int) int {
	count := n / sz
	if count == 0 {
		return 0
	}
	if bank < 0 {
		bank += count
	}
	bank %= count
	if bank < 0 {
		bank += count
	}
	return bank * sz
}

func (b *base) selectPRGPage8KB(slot, bank int) {
	b.prgPages[slot] = bankOffset(len(b.rom.PRGROM), prgPageSize, bank)
}

func (b *base) selectPRGPage16KB(slot, bank int) {
	off := bankOffset(len(b.rom.PRGROM), 2*prgPageSize, bank)
	b.prgPages[2*slot] = off
	b.prgPages[2*slot+1] = off + prgPageSize
}

func (b *base) selectPRGPage32KB(bank int) {
	off := bankOffset(len(b.rom.PRGROM), 4*prgPageSize, bank)
	for i := range b.prgPages {
		b.prgPages[i] = off + i*prgPageSize
	}
}

func (b *base) selectCHRPage1KB(slot, bank int) {
	b.chrPages[slot] = bankOffset(len(b.chr), chrPageSize, bank)
}

func (b *base) selectCHRPage2KB(slot, bank int) {
	off := bankOffset(len(b.chr), 2*chrPageSize, bank)
	b.chrPages[2*slot] = off
	b.chrPages[2*slot+1] = off + chrPageSize
}

func (b *base) selectCHRPage4KB(slot, bank int) {
	off := bankOffset(len(b.chr), 4*chrPageSize, bank)
	for i := range 4 {
		b.chrPages[4*slot+i] = off + i*chrPageSize
	}
}

func (b *base) selectCHRPage8KB(bank int) {
	off := bankOffset(len(b.chr), 8*chrPageSize, bank)
	for i := range b.chrPages {
		b.chrPages[i] = off + i*chrPageSize
	}
}

// busConflict returns the value actually latched by boards without bus
// conflict protection: the ROM drives the bus at the same time as the CPU.
func (b *base) busConflict(addr uint16, val uint8) uint8 {
	return val & b.PeekPRG(addr)
}

func u8tob(v uint8) bool {
	return v != 0
}
