package hw

import (
	"nescore/emu/log"
	"nescore/hw/hwio"
)

// OAMDMA handles the DMA transfer of OAM (sprites attributes) to the PPU,
// started by writing the source page to $4014.
type OAMDMA struct {
	OAMDMA hwio.Reg8 `hwio:"offset=0x14,writeonly,wcb"`

	page    uint8
	pending bool
}

func NewOAMDMA() *OAMDMA {
	dma := &OAMDMA{}
	hwio.MustInitRegs(dma)
	return dma
}

func (dma *OAMDMA) WriteOAMDMA(_, val uint8) {
	log.ModPPU.DebugZ("Write to OAMDMA reg").Hex8("val", val).End()
	dma.page = val
	dma.pending = true
}

// Reset cancels a requested transfer.
func (dma *OAMDMA) Reset() {
	dma.pending = false
}

// Pending reports whether a transfer has been requested.
func (dma *OAMDMA) Pending() bool {
	return dma.pending
}

// Run performs the pending transfer, if any, while the CPU is halted. The
// 256 bytes are read from the CPU bus and written to OAMDATA. It returns the
// number of CPU cycles the transfer took: 513, plus one if it started on an
// odd cycle.
func (dma *OAMDMA) Run(cpu *CPU) int {
	if !dma.pending {
		return 0
	}
	dma.pending = false
	start := cpu.Cycles

	// The first cycle is always idle. Starting on an odd cycle adds another
	// one so that reads happen on even cycles.
	odd := cpu.Cycles%2 == 1
	cpu.Stall(1)
	if odd {
		cpu.Stall(1)
	}

	base := uint16(dma.page) << 8
	for i := range uint16(256) {
		cpu.tick()
		val := cpu.Bus.Read8(base | i)
		cpu.tick()
		cpu.Bus.Write8(0x2004, val)
	}

	log.ModPPU.DebugZ("OAM DMA transfer").
		Hex8("page", dma.page).
		Int64("start", start).
		Int64("cycles", cpu.Cycles-start).
		End()
	return int(cpu.Cycles - start)
}
