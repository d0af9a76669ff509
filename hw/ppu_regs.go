package hw

import "nescore/emu/log"

// loopy is the PPU internal VRAM address (v) and temporary address (t)
// register layout:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy uint16

func (l loopy) coarsex() uint8   { return uint8(l & 0x1F) }
func (l loopy) coarsey() uint8   { return uint8(l>>5) & 0x1F }
func (l loopy) nametable() uint8 { return uint8(l>>10) & 0x3 }
func (l loopy) finey() uint16    { return uint16(l>>12) & 0x7 }
func (l loopy) high() uint8      { return uint8(l>>8) & 0x3F }
func (l loopy) low() uint8       { return uint8(l) }
func (l loopy) addr() uint16     { return uint16(l) & 0x3FFF }
func (l loopy) val() uint16      { return uint16(l) & 0x7FFF }

func (l *loopy) setNametable(nt uint8) {
	*l = *l&^(0x3<<10) | loopy(nt&0x3)<<10
}

// incrementX increments coarse X, switching horizontal nametable on
// overflow.
func (l *loopy) incrementX() {
	if *l&0x001F == 31 {
		*l &^= 0x001F
		*l ^= 0x0400
	} else {
		*l++
	}
}

// incrementY increments fine Y, overflowing into coarse Y. Coarse Y wraps
// at 30 with a vertical nametable switch, and at 32 without (attribute rows
// used as tiles).
func (l *loopy) incrementY() {
	if *l&0x7000 != 0x7000 {
		*l += 0x1000
		return
	}
	*l &^= 0x7000
	y := l.coarsey()
	switch y {
	case 29:
		y = 0
		*l ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	*l = *l&^0x03E0 | loopy(y)<<5
}

// copyX copies the horizontal bits from t.
func (l *loopy) copyX(t loopy) {
	*l = *l&0xFBE0 | t&0x041F
}

// copyY copies the vertical bits from t.
func (l *loopy) copyY(t loopy) {
	*l = *l&0x841F | t&0x7BE0
}

const (
	// PPUCTRL bits
	// $2000

	// Nametable selection mask
	// (0 = $2000; 1 = $2400; 2 = $2800; 3 = $2C00)
	ntselect = 0b11

	// VRAM address increment per CPU read/write of PPUDATA
	// (0: +1 i.e. horizontal; 1: +32 i.e. vertical)
	vramIncr = 1 << 2

	// Sprite pattern table address for 8x8 sprites
	// (0: $0000; 1: $1000; ignored in 8x16 mode)
	spriteAddr = 1 << 3

	// Background pattern table address (0: $0000; 1: $1000)
	backgroundAddr = 1 << 4

	// Sprite size (0: 8x8 pixels; 1: 8x16 pixels)
	spriteSize = 1 << 5

	// Generate an NMI at the start of the
	// vertical blanking interval (0: off; 1: on)
	nmiEnable = 1 << 7
)

const (
	// PPUMASK bits
	// $2001

	// Greyscale
	// (0: normal color, 1: produce a greyscale display)
	greyscale = 1 << 0

	// Show background in leftmost 8 pixels of screen
	leftmostBg = 1 << 1

	// Show sprites in leftmost 8 pixels of screen
	leftmostSprites = 1 << 2

	showBg      = 1 << 3
	showSprites = 1 << 4
)

const (
	// PPUSTATUS bits
	// $2002

	// Returns stale PPU bus contents.
	openbusMask = 0b11111

	// Sprite overflow. Set during sprite evaluation when more than eight
	// sprites are found on a scanline; cleared at dot 1 of the pre-render
	// line.
	spriteOverflow = 1 << 5

	// Sprite 0 Hit. Set when a nonzero pixel of sprite 0 overlaps a nonzero
	// background pixel; cleared at dot 1 of the pre-render line.
	sprite0Hit = 1 << 6

	// Vertical blank has started (0: not in vblank; 1: in vblank).
	// Set at dot 1 of line 241 (the line *after* the post-render
	// line); cleared after reading $2002 and at dot 1 of the
	// pre-render line.
	vblank = 1 << 7
)

// PPUCTRL: $2000
func (p *PPU) WritePPUCTRL(old, val uint8) {
	log.ModPPU.DebugZ("Write to PPUCTRL").Hex8("val", val).End()
	p.openbus = val

	// Transfer the nametable bits.
	p.vramTmp.setNametable(val & ntselect)

	// By toggling the nmi bit during vblank without reading PPUSTATUS, a
	// program can cause /NMI to be pulled low multiple times, causing
	// multiple NMIs to be generated.
	p.updateNMI()
}

// PPUMASK: $2001
func (p *PPU) WritePPUMASK(old, val uint8) {
	log.ModPPU.DebugZ("Write to PPUMASK").Hex8("val", val).End()
	p.openbus = val
}

// PPUSTATUS: $2002
func (p *PPU) ReadPPUSTATUS(val uint8) uint8 {
	ret := p.PeekPPUSTATUS(val)

	p.writeLatch = false
	p.PPUSTATUS.Value &^= vblank
	p.updateNMI()
	return ret
}

func (p *PPU) PeekPPUSTATUS(val uint8) uint8 {
	return val&^openbusMask | p.openbus&openbusMask
}

// OAMADDR: $2003
func (p *PPU) WriteOAMADDR(old, val uint8) {
	p.openbus = val
}

// OAMDATA: $2004
func (p *PPU) ReadOAMDATA(_ uint8) uint8 {
	return p.OAM[p.OAMADDR.Value]
}

func (p *PPU) PeekOAMDATA(_ uint8) uint8 {
	return p.OAM[p.OAMADDR.Value]
}

func (p *PPU) WriteOAMDATA(old, val uint8) {
	p.openbus = val
	p.OAM[p.OAMADDR.Value] = val
	p.OAMADDR.Value++
}

// PPUSCROLL: $2005
func (p *PPU) WritePPUSCROLL(old, val uint8) {
	log.ModPPU.DebugZ("Write to PPUSCROLL").Hex8("val", val).Bool("latch", p.writeLatch).End()
	p.openbus = val

	if !p.writeLatch { // first write
		p.finex = val & 0b111
		p.vramTmp &^= 0b1_1111
		p.vramTmp |= loopy(val >> 3)
	} else { // second write
		p.vramTmp &^= 0b0111_0011_1110_0000
		p.vramTmp |= loopy(val&0b111) << 12
		p.vramTmp |= loopy(val&0b1111_1000) << 2
	}

	p.writeLatch = !p.writeLatch
}

// To read/write VRAM from CPU, PPUADDR is set to the address of the operation.
// It's a 16-bit register so 2 writes are necessary.
// PPUADDR: $2006
func (p *PPU) WritePPUADDR(old, val uint8) {
	p.openbus = val

	if !p.writeLatch { // first write
		p.vramTmp &^= 0b0111_1111_0000_0000
		p.vramTmp |= loopy(val&0b11_1111) << 8 // z bit (14) is cleared
	} else { // second write
		p.vramTmp &^= 0xff
		p.vramTmp |= loopy(val)
		p.vramAddr = p.vramTmp
	}

	p.writeLatch = !p.writeLatch
}

// PPUDATA: $2007
func (p *PPU) ReadPPUDATA(_ uint8) uint8 {
	addr := p.vramAddr.addr()

	var val uint8
	if addr < 0x3F00 {
		// Reading VRAM is too slow so the actual data
		// will be returned at the next read.
		val = p.ppuDataRbuf
		p.ppuDataRbuf = p.Bus.Read8(addr)
	} else {
		// Reading palette data is immediate, the buffer gets the
		// nametable byte 'under' the palette.
		val = p.Bus.Read8(addr)
		p.ppuDataRbuf = p.Bus.Read8(addr - 0x1000)
	}

	p.incVRAMaddr()
	log.ModPPU.DebugZ("VRAM read").
		Hex16("addr", addr).
		Hex8("val", val).
		End()
	return val
}

func (p *PPU) PeekPPUDATA(_ uint8) uint8 {
	addr := p.vramAddr.addr()
	if addr < 0x3F00 {
		return p.ppuDataRbuf
	}
	return p.Bus.Peek8(addr)
}

// PPUDATA: $2007
func (p *PPU) WritePPUDATA(old, val uint8) {
	p.openbus = val
	addr := p.vramAddr.addr()
	p.Bus.Write8(addr, val)
	p.incVRAMaddr()

	log.ModPPU.DebugZ("VRAM write").
		Hex16("addr", addr).
		Hex8("val", val).
		End()
}

// After each i/o on PPUDATA, PPUADDR is incremented.
func (p *PPU) incVRAMaddr() {
	incr := loopy(1)
	if p.PPUCTRL.Value&vramIncr != 0 {
		incr = 32
	}
	p.vramAddr = (p.vramAddr + incr) & 0x7fff
}
