package hw

import (
	"testing"

	"nescore/hw/hwdefs"
	"nescore/hw/mappers"
	"nescore/ines"
)

// testConsole wires the hardware the way the system does, around an NROM
// cartridge with 32KB of PRG and CHR RAM.
type testConsole struct {
	cpu   *CPU
	ppu   *PPU
	bus   *Bus
	dma   *OAMDMA
	ports *ControllerPorts
	cart  mappers.Cartridge
}

// ppuClock runs 3 PPU dots per CPU cycle and forwards NMIs.
type ppuClock struct {
	cpu *CPU
	ppu *PPU
}

func (c ppuClock) Tick() {
	for range 3 {
		c.ppu.Tick()
		if c.ppu.TakeNMI() {
			c.cpu.RequestNMI()
		}
	}
}

// newTestConsole creates a console running prog, a memory dump of the
// $8000-$FFFF area. The reset vector defaults to $8000.
func newTestConsole(tb testing.TB, mirroring ines.NTMirroring, prog string) *testConsole {
	tb.Helper()

	prg := make([]byte, 0x8000)
	prg[0x7FFC], prg[0x7FFD] = 0x00, 0x80
	for _, line := range loadDump(tb, prog) {
		if line.off < 0x8000 {
			tb.Fatalf("program line at $%04X is not in PRG ROM", line.off)
		}
		copy(prg[line.off-0x8000:], line.bytes)
	}

	rom, err := ines.Decode(ines.Encode(0, mirroring, prg, nil))
	tcheck(tb, err)
	cart, err := mappers.New(rom)
	tcheck(tb, err)

	tc := &testConsole{
		ppu:   NewPPU(cart),
		bus:   NewBus(cart),
		dma:   NewOAMDMA(),
		ports: NewControllerPorts(),
		cart:  cart,
	}
	tc.bus.Connect(tc.ppu, tc.dma, tc.ports)
	tc.cpu = NewCPU(tc.bus.Table)
	tc.cpu.SetClock(ppuClock{cpu: tc.cpu, ppu: tc.ppu})
	tc.cpu.Reset(hwdefs.HardReset)
	return tc
}

// step executes one instruction, and the OAM DMA it may have started.
func (tc *testConsole) step(tb testing.TB) int {
	tb.Helper()
	n, err := tc.cpu.Step()
	tcheck(tb, err)
	return n + tc.dma.Run(tc.cpu)
}

// tickTo runs the PPU alone until it reaches the given position.
func tickTo(ppu *PPU, scanline, dot int) {
	for ppu.Scanline != scanline || ppu.Cycle != dot {
		ppu.Tick()
	}
}

// writeVRAM writes buf at addr through PPUADDR/PPUDATA.
func (tc *testConsole) writeVRAM(addr uint16, buf ...uint8) {
	tc.bus.Read8(0x2002)
	tc.bus.Write8(0x2006, uint8(addr>>8))
	tc.bus.Write8(0x2006, uint8(addr))
	for _, b := range buf {
		tc.bus.Write8(0x2007, b)
	}
}

// readVRAM reads n bytes at addr through PPUADDR/PPUDATA, discarding the
// stale read buffer for addresses below the palette.
func (tc *testConsole) readVRAM(addr uint16, n int) []uint8 {
	tc.bus.Read8(0x2002)
	tc.bus.Write8(0x2006, uint8(addr>>8))
	tc.bus.Write8(0x2006, uint8(addr))
	if addr < 0x3F00 {
		tc.bus.Read8(0x2007)
	}
	buf := make([]uint8, n)
	for i := range buf {
		buf[i] = tc.bus.Read8(0x2007)
	}
	return buf
}
