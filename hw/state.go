package hw

import "nescore/hw/snapshot"

// State returns a copy of the CPU registers and interrupt lines.
func (c *CPU) State() *snapshot.CPU {
	return &snapshot.CPU{
		PC:         c.PC,
		SP:         c.SP,
		P:          uint8(c.P),
		A:          c.A,
		X:          c.X,
		Y:          c.Y,
		Cycles:     c.Cycles,
		NMIPending: c.nmiPending,
		IRQLines:   uint8(c.irqLines),
		Halted:     c.halted != nil,
	}
}

// State returns a copy of the PPU memories, registers and position.
func (p *PPU) State() *snapshot.PPU {
	state := snapshot.PPU{
		Palette:    p.Palette,
		OAM:        p.OAM,
		VRAM:       p.VRAM,
		OAMAddr:    p.OAMADDR.Value,
		VRAMAddr:   p.vramAddr.val(),
		VRAMTemp:   p.vramTmp.val(),
		FineX:      p.finex,
		WriteLatch: p.writeLatch,
		PPUDataBuf: p.ppuDataRbuf,
		OpenBus:    p.openbus,
		PPUCTRL:    p.PPUCTRL.Value,
		PPUMASK:    p.PPUMASK.Value,
		PPUSTATUS:  p.PPUSTATUS.Value,
		Cycle:      p.Cycle,
		Scanline:   p.Scanline,
		Frame:      p.Frame,
		OddFrame:   p.oddFrame,
	}
	return &state
}
