package hw

import (
	"nescore/emu/log"
	"nescore/hw/hwio"
	"nescore/hw/mappers"
	"nescore/ines"
)

const (
	NumScanlines = 262 // Number of scanlines per frame.
	NumCycles    = 341 // Number of PPU cycles per scanline.
)

// PPU is the 2C02 picture processing unit.
//
// The PPU has its own 14-bit bus: pattern tables come from the cartridge,
// nametables live in the console VRAM (mirrored as the cartridge says) and
// palette RAM is internal. The CPU sees the PPU through 8 registers mirrored
// from $2000 to $3FFF (bank 1).
type PPU struct {
	Bus  *hwio.Table // PPU bus
	cart mappers.Cartridge
	// non-nil if the cartridge counts scanlines.
	scanlineCounter mappers.ScanlineCounter

	Cycle    int   // Current cycle/pixel in scanline
	Scanline int   // Current scanline being drawn
	Frame    int64 // Frame counter, incremented at the start of vblank
	oddFrame bool

	//	$0000-$0FFF	$1000	Pattern table 0
	//	$1000-$1FFF	$1000	Pattern table 1
	PatternTables hwio.Device `hwio:"offset=0x0000,size=0x2000,rcb,wcb,pcb"`

	// $2000-$23FF	$0400	Nametable 0
	// $2400-$27FF	$0400	Nametable 1
	// $2800-$2BFF	$0400	Nametable 2
	// $2C00-$2FFF	$0400	Nametable 3
	// $3000-$3EFF	$0F00	Mirrors of $2000-$2EFF
	NameTables hwio.Device `hwio:"offset=0x2000,size=0x1F00,rcb,wcb,pcb"`

	// $3F00-$3F1F	$0020	Palette RAM indexes
	// $3F20-$3FFF	$00E0	Mirrors of $3F00-$3F1F
	Palettes hwio.Device `hwio:"offset=0x3F00,size=0x100,rcb,wcb,pcb"`

	// CPU-exposed memory-mapped PPU registers
	// mapped from $2000 to $2007, mirrored up to $3fff
	PPUCTRL   hwio.Reg8 `hwio:"bank=1,offset=0x0,writeonly,wcb"`
	PPUMASK   hwio.Reg8 `hwio:"bank=1,offset=0x1,writeonly,wcb"`
	PPUSTATUS hwio.Reg8 `hwio:"bank=1,offset=0x2,readonly,rcb,pcb"`
	OAMADDR   hwio.Reg8 `hwio:"bank=1,offset=0x3,writeonly,wcb"`
	OAMDATA   hwio.Reg8 `hwio:"bank=1,offset=0x4,rcb,wcb,pcb"`
	PPUSCROLL hwio.Reg8 `hwio:"bank=1,offset=0x5,writeonly,wcb"`
	PPUADDR   hwio.Reg8 `hwio:"bank=1,offset=0x6,writeonly,wcb"`
	PPUDATA   hwio.Reg8 `hwio:"bank=1,offset=0x7,rcb,wcb,pcb"`

	// 2KB of console VRAM, plus 2KB of cartridge VRAM for four-screen
	// boards.
	VRAM    [0x1000]byte
	Palette [32]byte
	OAM     [256]byte

	// VRAM read/write
	vramAddr    loopy // v
	vramTmp     loopy // t
	finex       uint8 // x
	writeLatch  bool  // w
	ppuDataRbuf uint8
	openbus     uint8 // last value written to a register

	// NMI output
	nmiLine bool
	nmiEdge bool

	bg      bgState
	sprites spriteState

	frames [2]Frame
	back   int // frame being drawn
}

// NewPPU creates a PPU reading pattern data from cart.
func NewPPU(cart mappers.Cartridge) *PPU {
	p := &PPU{
		Bus:  hwio.NewTable("ppu"),
		cart: cart,
	}
	p.scanlineCounter, _ = cart.(mappers.ScanlineCounter)
	hwio.MustInitRegs(p)
	p.Bus.MapBank(0x0000, p, 0)
	return p
}

// MapRegs maps the CPU visible registers, and their mirrors, on the CPU bus.
func (p *PPU) MapRegs(cpubus *hwio.Table) {
	for off := uint16(0x2000); off < 0x4000; off += 8 {
		cpubus.MapBank(off, p, 1)
	}
}

// Reset puts the PPU back in its power-up state. Memories (VRAM, OAM and
// palette) are left untouched.
func (p *PPU) Reset() {
	p.Scanline = 0
	p.Cycle = 0
	p.oddFrame = false
	p.PPUCTRL.Value = 0
	p.PPUMASK.Value = 0
	p.PPUSTATUS.Value = 0
	p.OAMADDR.Value = 0
	p.writeLatch = false
	p.vramAddr = 0
	p.vramTmp = 0
	p.finex = 0
	p.ppuDataRbuf = 0
	p.nmiLine = false
	p.nmiEdge = false
	p.sprites.count = 0
}

// Position returns the current scanline and dot.
func (p *PPU) Position() (scanline, dot int) {
	return p.Scanline, p.Cycle
}

// NMI reports the state of the NMI output: vblank flag and NMI enabled.
func (p *PPU) NMI() bool {
	return p.nmiLine
}

// TakeNMI reports whether the NMI output went high since the last call.
func (p *PPU) TakeNMI() bool {
	edge := p.nmiEdge
	p.nmiEdge = false
	return edge
}

func (p *PPU) updateNMI() {
	line := p.PPUCTRL.Value&nmiEnable != 0 && p.PPUSTATUS.Value&vblank != 0
	if line && !p.nmiLine {
		p.nmiEdge = true
	}
	p.nmiLine = line
}

// FrontFrame returns the last completed frame. It only changes when a new
// frame is completed.
func (p *PPU) FrontFrame() *Frame {
	return &p.frames[p.back^1]
}

func (p *PPU) renderingEnabled() bool {
	return p.PPUMASK.Value&(showBg|showSprites) != 0
}

// Tick runs one PPU cycle (dot).
func (p *PPU) Tick() {
	p.step()

	p.Cycle++
	if p.Scanline == 261 && p.Cycle == 340 && p.oddFrame && p.renderingEnabled() {
		// Odd frames skip the last dot of the pre-render line.
		p.Cycle++
	}
	if p.Cycle >= NumCycles {
		p.Cycle = 0
		p.Scanline++
		if p.Scanline >= NumScanlines {
			p.Scanline = 0
			p.oddFrame = !p.oddFrame
		}
	}
}

func (p *PPU) step() {
	const (
		postRender = 240
		vblankLine = 241
		preRender  = 261
	)

	visibleLine := p.Scanline < postRender
	preLine := p.Scanline == preRender
	renderLine := visibleLine || preLine
	visibleCycle := p.Cycle >= 1 && p.Cycle <= 256
	prefetchCycle := p.Cycle >= 321 && p.Cycle <= 336
	fetchCycle := visibleCycle || prefetchCycle

	if visibleLine && visibleCycle {
		p.renderPixel()
	}

	if p.renderingEnabled() {
		if renderLine && fetchCycle {
			p.bg.tileData <<= 4
			switch p.Cycle % 8 {
			case 1:
				p.fetchNametableByte()
			case 3:
				p.fetchAttributeByte()
			case 5:
				p.fetchPatternLow()
			case 7:
				p.fetchPatternHigh()
			case 0:
				p.bg.store()
			}
		}
		if preLine && p.Cycle >= 280 && p.Cycle <= 304 {
			p.vramAddr.copyY(p.vramTmp)
		}
		if renderLine {
			if fetchCycle && p.Cycle%8 == 0 {
				p.vramAddr.incrementX()
			}
			switch p.Cycle {
			case 256:
				p.vramAddr.incrementY()
			case 257:
				p.vramAddr.copyX(p.vramTmp)
			case 260:
				if p.scanlineCounter != nil {
					p.scanlineCounter.Scanline()
				}
			}
		}
		if p.Cycle == 257 {
			if visibleLine {
				p.evaluateSprites()
			} else {
				p.sprites.count = 0
			}
		}
	}

	switch {
	case p.Scanline == vblankLine && p.Cycle == 1:
		p.startVBlank()
	case preLine && p.Cycle == 1:
		// Clear vblank, sprite0Hit and spriteOverflow
		p.PPUSTATUS.Value &^= vblank | sprite0Hit | spriteOverflow
		p.updateNMI()
	}
}

func (p *PPU) startVBlank() {
	p.back ^= 1
	p.Frame++

	p.PPUSTATUS.Value |= vblank
	p.updateNMI()

	log.ModPPU.DebugZ("vblank").
		Int64("frame", p.Frame).
		Bool("nmi", p.nmiLine).
		End()
}

/* PPU bus */

func (p *PPU) ReadPATTERNTABLES(addr uint16) uint8 {
	return p.cart.ReadCHR(addr)
}

func (p *PPU) PeekPATTERNTABLES(addr uint16) uint8 {
	return p.cart.ReadCHR(addr)
}

func (p *PPU) WritePATTERNTABLES(addr uint16, val uint8) {
	p.cart.WriteCHR(addr, val)
}

// ntAddr returns the VRAM offset of a nametable address, following the
// cartridge mirroring.
func (p *PPU) ntAddr(addr uint16) uint16 {
	addr = (addr - 0x2000) & 0x0FFF
	table := addr / 0x400
	switch p.cart.Mirroring() {
	case ines.HorzMirroring:
		table >>= 1
	case ines.VertMirroring:
		table &= 1
	case ines.OnlyAScreen:
		table = 0
	case ines.OnlyBScreen:
		table = 1
	}
	return table*0x400 | addr&0x3FF
}

func (p *PPU) ReadNAMETABLES(addr uint16) uint8 {
	return p.VRAM[p.ntAddr(addr)]
}

func (p *PPU) PeekNAMETABLES(addr uint16) uint8 {
	return p.VRAM[p.ntAddr(addr)]
}

func (p *PPU) WriteNAMETABLES(addr uint16, val uint8) {
	p.VRAM[p.ntAddr(addr)] = val
}

// paletteAddr returns the palette RAM index of addr. Entries 0 of the
// sprite palettes mirror the background ones.
func paletteAddr(addr uint16) uint16 {
	addr &= 0x1F
	if addr >= 0x10 && addr&0x03 == 0 {
		addr -= 0x10
	}
	return addr
}

func (p *PPU) ReadPALETTES(addr uint16) uint8 {
	return p.Palette[paletteAddr(addr)]
}

func (p *PPU) PeekPALETTES(addr uint16) uint8 {
	return p.Palette[paletteAddr(addr)]
}

func (p *PPU) WritePALETTES(addr uint16, val uint8) {
	p.Palette[paletteAddr(addr)] = val & 0x3F
}
