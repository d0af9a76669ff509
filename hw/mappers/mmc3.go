package mappers

import (
	"nescore/ines"
)

var MMC3 = MapperDesc{
	Name: "MMC3",
	Load: loadMMC3,
}

type mmc3 struct {
	*base

	regs    [8]int // R0-R7 bank registers
	regsel  uint8  // register updated by the next bank data write
	prgmode uint8
	chrinv  uint8

	wramEnabled bool
	wramRO      bool

	irqLatch   uint8
	irqCounter uint8
	irqReload  bool
	irqEnabled bool
	irqLine    bool
}

func (m *mmc3) WritePRGROM(addr uint16, val uint8) {
	even := addr&1 == 0
	switch {
	case addr < 0xA000 && even:
		// Bank select
		// 7  bit  0
		// ---- ----
		// CPMx xRRR
		// |||   |||
		// |||   +++- Specify which bank register to update on next write to Bank Data register
		// ||+------- Nothing on the MMC3
		// |+-------- PRG ROM bank mode (0: $8000 swappable, 1: $C000 swappable)
		// +--------- CHR A12 inversion
		m.regsel = val & 0x07
		m.prgmode = (val >> 6) & 1
		m.chrinv = (val >> 7) & 1
		m.remap()
	case addr < 0xA000:
		// Bank data
		m.regs[m.regsel] = int(val)
		m.remap()
	case addr < 0xC000 && even:
		if val&1 == 0 {
			m.setNTMirroring(ines.VertMirroring)
		} else {
			m.setNTMirroring(ines.HorzMirroring)
		}
	case addr < 0xC000:
		m.wramEnabled = val&0x80 != 0
		m.wramRO = val&0x40 != 0
	case addr < 0xE000 && even:
		m.irqLatch = val
	case addr < 0xE000:
		m.irqCounter = 0
		m.irqReload = true
	case even:
		m.irqEnabled = false
		m.irqLine = false
	default:
		m.irqEnabled = true
	}
}

func (m *mmc3) remap() {
	// PRG: R6 and R7 are 8KB banks, the other windows are fixed to the
	// second to last and last banks.
	if m.prgmode == 0 {
		m.selectPRGPage8KB(0, m.regs[6])
		m.selectPRGPage8KB(2, -2)
	} else {
		m.selectPRGPage8KB(0, -2)
		m.selectPRGPage8KB(2, m.regs[6])
	}
	m.selectPRGPage8KB(1, m.regs[7])
	m.selectPRGPage8KB(3, -1)

	// CHR: R0 and R1 select 2KB banks (low bit ignored), R2-R5 1KB banks.
	// With A12 inversion, the two halves are swapped.
	lo, hi := 0, 4
	if m.chrinv != 0 {
		lo, hi = 4, 0
	}
	m.selectCHRPage1KB(lo+0, m.regs[0]&0xFE)
	m.selectCHRPage1KB(lo+1, m.regs[0]|1)
	m.selectCHRPage1KB(lo+2, m.regs[1]&0xFE)
	m.selectCHRPage1KB(lo+3, m.regs[1]|1)
	for i := range 4 {
		m.selectCHRPage1KB(hi+i, m.regs[2+i])
	}
}

// Scanline clocks the IRQ counter, once per rendered scanline.
func (m *mmc3) Scanline() {
	if m.irqCounter == 0 || m.irqReload {
		m.irqCounter = m.irqLatch
		m.irqReload = false
	} else {
		m.irqCounter--
	}
	if m.irqCounter == 0 && m.irqEnabled {
		m.irqLine = true
		modMapper.DebugZ("IRQ").String("mapper", m.desc.Name).End()
	}
}

func (m *mmc3) IRQ() bool {
	return m.irqLine
}

func (m *mmc3) wramAccess(addr uint16) bool {
	return addr >= 0x6000 && addr < 0x8000
}

func (m *mmc3) ReadPRG(addr uint16) uint8 {
	if m.wramAccess(addr) && !m.wramEnabled {
		return uint8(addr >> 8)
	}
	return m.base.ReadPRG(addr)
}

func (m *mmc3) PeekPRG(addr uint16) uint8 {
	return m.ReadPRG(addr)
}

func (m *mmc3) WritePRG(addr uint16, val uint8) {
	if m.wramAccess(addr) && (!m.wramEnabled || m.wramRO) {
		return
	}
	m.base.WritePRG(addr, val)
}

func loadMMC3(b *base) (Cartridge, error) {
	mmc3 := &mmc3{
		base:        b,
		regs:        [8]int{0, 2, 4, 5, 6, 7, 0, 1},
		wramEnabled: true,
	}
	b.init(mmc3.WritePRGROM)
	mmc3.remap()
	return mmc3, nil
}
