package mappers

import (
	"nescore/ines"
)

var MMC1 = MapperDesc{
	Name: "MMC1",
	Load: loadMMC1,
}

type mmc1 struct {
	*base

	now       func() int64
	prevCycle int64

	serial  shiftReg // shift register
	counter uint8    // count of bits shifted

	// CTRL reg bits
	chrmode uint8
	prgmode uint8
	ntm     uint8

	// CHR regs (4KB bank numbers)
	chrbank0 int
	chrbank1 int

	// PRG reg bits
	disableWRAM bool
	prgbank     int
}

type shiftReg uint8

func (sr shiftReg) push(val uint8) shiftReg {
	sr >>= 1
	sr |= shiftReg((val << 4) & 0x10)
	return sr
}

func (m *mmc1) SetCPUClock(now func() int64) {
	m.now = now
}

func (m *mmc1) cycle() int64 {
	if m.now == nil {
		// Without a clock, writes are never considered consecutive.
		return m.prevCycle + 2
	}
	return m.now()
}

func (m *mmc1) WritePRGROM(addr uint16, val uint8) {
	curCycle := m.cycle()
	// Ignore consecutive cycle writes (read-modify-write instructions).
	resetbit := u8tob(val & 0x80)
	if resetbit || curCycle-m.prevCycle >= 2 {
		if resetbit {
			// if the resetbit is set.
			//	- ignore databit
			//	- reset shift register (so that the next write is the "first" write)
			//	- bits 2,3 of control reg are set (16k PRG mode, $8000 swappable)
			//	- other bits of $8000 (and other regs) are unchanged
			m.serial = 0
			m.counter = 0
			m.prgmode = 0b11
			m.remap()
		} else {
			m.serial = m.serial.push(val)
			m.counter++
			if m.counter == 5 {
				m.writeREG(addr, uint8(m.serial))
				m.remap()
				m.serial = 0
				m.counter = 0
			}
		}
	}
	m.prevCycle = curCycle
}

func (m *mmc1) writeREG(addr uint16, val uint8) {
	switch (addr & 0x6000) >> 13 {
	case 0:
		m.writeCTRL(val)
	case 1:
		m.writeCHR0(val)
	case 2:
		m.writeCHR1(val)
	case 3:
		m.writePRG(val)
	}
}

func (m *mmc1) writeCTRL(val uint8) {
	m.chrmode = (val & 0x10) >> 4
	m.prgmode = (val & 0x0C) >> 2

	m.ntm = val & 0x03
	switch m.ntm {
	case 0:
		m.setNTMirroring(ines.OnlyAScreen)
	case 1:
		m.setNTMirroring(ines.OnlyBScreen)
	case 2:
		m.setNTMirroring(ines.VertMirroring)
	case 3:
		m.setNTMirroring(ines.HorzMirroring)
	}

	modMapper.DebugZ("Write CTRL reg").String("mapper", m.desc.Name).
		Uint8("val", val).
		Uint8("prgmode", m.prgmode).
		Uint8("chrmode", m.chrmode).
		End()
}

func (m *mmc1) writeCHR0(val uint8) {
	modMapper.DebugZ("Write CHR0 reg").String("mapper", m.desc.Name).Uint8("val", val).End()
	m.chrbank0 = int(val & 0b11111)
}

func (m *mmc1) writeCHR1(val uint8) {
	modMapper.DebugZ("Write CHR1 reg").String("mapper", m.desc.Name).Uint8("val", val).End()
	m.chrbank1 = int(val & 0b11111)
}

func (m *mmc1) writePRG(val uint8) {
	modMapper.DebugZ("Write PRG reg").String("mapper", m.desc.Name).Uint8("val", val).End()

	// $E000-FFFF:  [...W PPPP]
	// W = WRAM Disable (0=enabled, 1=disabled)
	// P = PRG Reg
	m.disableWRAM = u8tob(val & 0b1_0000)
	m.prgbank = int(val & 0b1111)
}

func (m *mmc1) remap() {
	switch m.prgmode {
	case 0, 1:
		// ignore low bit of bank number
		m.selectPRGPage32KB(m.prgbank >> 1)
	case 2:
		m.selectPRGPage16KB(0, 0)
		m.selectPRGPage16KB(1, m.prgbank)
	case 3:
		m.selectPRGPage16KB(0, m.prgbank)
		m.selectPRGPage16KB(1, -1)
	}

	switch m.chrmode {
	case 0:
		m.selectCHRPage8KB(m.chrbank0 >> 1)
	case 1:
		m.selectCHRPage4KB(0, m.chrbank0)
		m.selectCHRPage4KB(1, m.chrbank1)
	}
}

func (m *mmc1) wramAccess(addr uint16) bool {
	return addr >= 0x6000 && addr < 0x8000 && m.disableWRAM
}

func (m *mmc1) ReadPRG(addr uint16) uint8 {
	if m.wramAccess(addr) {
		return uint8(addr >> 8)
	}
	return m.base.ReadPRG(addr)
}

func (m *mmc1) PeekPRG(addr uint16) uint8 {
	return m.ReadPRG(addr)
}

func (m *mmc1) WritePRG(addr uint16, val uint8) {
	if m.wramAccess(addr) {
		return
	}
	m.base.WritePRG(addr, val)
}

func loadMMC1(b *base) (Cartridge, error) {
	mmc1 := &mmc1{base: b, prevCycle: -2}
	b.init(mmc1.WritePRGROM)

	// Mapper initialization.
	// On powerup: bits 2,3 of $8000 are set (this ensures the $8000 is bank 0,
	// and $C000 is the last bank - needed for SEROM/SHROM/SH1ROM which do no
	// support banking)
	mmc1.writeREG(0x8000, 0x0C)
	mmc1.writeREG(0xA000, 0)
	mmc1.writeREG(0xC000, 0)
	mmc1.writeREG(0xE000, 0) // WRAM enabled, as on MMC1B
	mmc1.remap()
	return mmc1, nil
}
