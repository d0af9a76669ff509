package hw

// bgState holds the background fetch latches and the pixel shift data: 16
// pixels of 4 bits (2 bits of attribute, 2 bits of pattern), the current
// tile in the high 32 bits.
type bgState struct {
	nametableByte uint8
	attributeByte uint8
	lowTileByte   uint8
	highTileByte  uint8
	tileData      uint64
}

func (bg *bgState) store() {
	var data uint32
	for range 8 {
		a := bg.attributeByte
		p1 := (bg.lowTileByte & 0x80) >> 7
		p2 := (bg.highTileByte & 0x80) >> 6
		bg.lowTileByte <<= 1
		bg.highTileByte <<= 1
		data <<= 4
		data |= uint32(a | p1 | p2)
	}
	bg.tileData |= uint64(data)
}

const maxSprites = 8

// spriteState is the secondary OAM: sprites selected for the next line.
type spriteState struct {
	count      int
	patterns   [maxSprites]uint32
	positions  [maxSprites]uint8
	priorities [maxSprites]uint8
	indexes    [maxSprites]uint8
}

func (p *PPU) fetchNametableByte() {
	addr := 0x2000 | p.vramAddr.val()&0x0FFF
	p.bg.nametableByte = p.Bus.Read8(addr)
}

func (p *PPU) fetchAttributeByte() {
	v := p.vramAddr.val()
	addr := 0x23C0 | v&0x0C00 | (v>>4)&0x38 | (v>>2)&0x07
	shift := (v>>4)&4 | v&2
	p.bg.attributeByte = ((p.Bus.Read8(addr) >> shift) & 3) << 2
}

func (p *PPU) bgTileAddr() uint16 {
	var table uint16
	if p.PPUCTRL.Value&backgroundAddr != 0 {
		table = 0x1000
	}
	return table + 16*uint16(p.bg.nametableByte) + p.vramAddr.finey()
}

func (p *PPU) fetchPatternLow() {
	p.bg.lowTileByte = p.Bus.Read8(p.bgTileAddr())
}

func (p *PPU) fetchPatternHigh() {
	p.bg.highTileByte = p.Bus.Read8(p.bgTileAddr() + 8)
}

func (p *PPU) backgroundPixel() uint8 {
	if p.PPUMASK.Value&showBg == 0 {
		return 0
	}
	data := uint32(p.bg.tileData>>32) >> ((7 - p.finex) * 4)
	return uint8(data & 0x0F)
}

// spritePixel returns the secondary OAM slot and the color of the first
// opaque sprite pixel at the current dot.
func (p *PPU) spritePixel() (int, uint8) {
	if p.PPUMASK.Value&showSprites == 0 {
		return 0, 0
	}
	for i := range p.sprites.count {
		offset := (p.Cycle - 1) - int(p.sprites.positions[i])
		if offset < 0 || offset > 7 {
			continue
		}
		offset = 7 - offset
		color := uint8((p.sprites.patterns[i] >> uint8(offset*4)) & 0x0F)
		if color%4 == 0 {
			continue
		}
		return i, color
	}
	return 0, 0
}

func (p *PPU) renderPixel() {
	x := p.Cycle - 1
	y := p.Scanline

	var color uint8
	if p.renderingEnabled() {
		bg := p.backgroundPixel()
		i, sprite := p.spritePixel()
		if x < 8 && p.PPUMASK.Value&leftmostBg == 0 {
			bg = 0
		}
		if x < 8 && p.PPUMASK.Value&leftmostSprites == 0 {
			sprite = 0
		}

		opaqueBg := bg%4 != 0
		opaqueSprite := sprite%4 != 0
		switch {
		case !opaqueBg && !opaqueSprite:
			color = 0
		case !opaqueBg && opaqueSprite:
			color = sprite | 0x10
		case opaqueBg && !opaqueSprite:
			color = bg
		default:
			if p.sprites.indexes[i] == 0 && x < 255 {
				p.PPUSTATUS.Value |= sprite0Hit
			}
			if p.sprites.priorities[i] == 0 {
				color = sprite | 0x10
			} else {
				color = bg
			}
		}
	}

	idx := p.Palette[paletteAddr(uint16(color))]
	if p.PPUMASK.Value&greyscale != 0 {
		idx &= 0x30
	}
	p.frames[p.back].Pix[y*frameWidth+x] = idx
}

// evaluateSprites selects the first 8 sprites, in OAM order, covering the
// current line. They are displayed on the next line, which is why a sprite
// appears one line below its OAM Y coordinate. Finding a 9th sprite sets
// the overflow flag.
func (p *PPU) evaluateSprites() {
	h := 8
	if p.PPUCTRL.Value&spriteSize != 0 {
		h = 16
	}

	count := 0
	for i := range 64 {
		y := p.OAM[i*4+0]
		a := p.OAM[i*4+2]
		x := p.OAM[i*4+3]
		row := p.Scanline - int(y)
		if row < 0 || row >= h {
			continue
		}
		if count < maxSprites {
			p.sprites.patterns[count] = p.fetchSpritePattern(i, row)
			p.sprites.positions[count] = x
			p.sprites.priorities[count] = (a >> 5) & 1
			p.sprites.indexes[count] = uint8(i)
		}
		count++
	}
	if count > maxSprites {
		count = maxSprites
		p.PPUSTATUS.Value |= spriteOverflow
	}
	p.sprites.count = count
}

func (p *PPU) fetchSpritePattern(i, row int) uint32 {
	tile := p.OAM[i*4+1]
	attributes := p.OAM[i*4+2]

	var addr uint16
	if p.PPUCTRL.Value&spriteSize == 0 {
		if attributes&0x80 == 0x80 {
			row = 7 - row
		}
		var table uint16
		if p.PPUCTRL.Value&spriteAddr != 0 {
			table = 0x1000
		}
		addr = table + uint16(tile)*16 + uint16(row)
	} else {
		if attributes&0x80 == 0x80 {
			row = 15 - row
		}
		table := uint16(tile & 1)
		tile &= 0xFE
		if row > 7 {
			tile++
			row -= 8
		}
		addr = 0x1000*table + uint16(tile)*16 + uint16(row)
	}

	a := (attributes & 3) << 2
	lo := p.Bus.Read8(addr)
	hi := p.Bus.Read8(addr + 8)

	var data uint32
	for range 8 {
		var p1, p2 uint8
		if attributes&0x40 == 0x40 {
			p1 = lo & 1
			p2 = (hi & 1) << 1
			lo >>= 1
			hi >>= 1
		} else {
			p1 = (lo & 0x80) >> 7
			p2 = (hi & 0x80) >> 6
			lo <<= 1
			hi <<= 1
		}
		data <<= 4
		data |= uint32(a | p1 | p2)
	}
	return data
}
