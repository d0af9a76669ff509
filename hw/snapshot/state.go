// Package snapshot holds value copies of the console state, for debuggers
// and tools. A snapshot never aliases emulator memory.
package snapshot

// Version of the snapshot layout.
const Version = 1

type NES struct {
	Version int
	Mapper  string
	CPU     CPU
	PPU     PPU
	RAM     [0x800]uint8

	// Buttons currently pressed on each controller.
	Pads [2]uint8
}

type CPU struct {
	PC uint16
	SP uint8
	P  uint8
	A  uint8
	X  uint8
	Y  uint8

	Cycles int64

	NMIPending bool
	IRQLines   uint8
	Halted     bool
}

type PPU struct {
	Palette [0x20]uint8
	OAM     [0x100]uint8
	VRAM    [0x1000]uint8

	OAMAddr    uint8
	VRAMAddr   uint16
	VRAMTemp   uint16
	FineX      uint8
	WriteLatch bool
	PPUDataBuf uint8
	OpenBus    uint8

	PPUCTRL   uint8
	PPUMASK   uint8
	PPUSTATUS uint8

	Cycle    int
	Scanline int
	Frame    int64
	OddFrame bool
}
