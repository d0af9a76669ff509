// Package mappers implements the cartridge boards: PRG and CHR bank
// switching, PRG RAM, nametable mirroring control and scanline IRQs.
package mappers

import (
	"github.com/go-faster/errors"

	"nescore/emu/log"
	"nescore/hw/hwdefs"
	"nescore/ines"
)

var modMapper = log.ModMapper

// Cartridge is the cartridge as seen by the CPU bus ($4020-$FFFF) and the
// PPU bus ($0000-$1FFF).
type Cartridge interface {
	ReadPRG(addr uint16) uint8
	PeekPRG(addr uint16) uint8
	WritePRG(addr uint16, val uint8)
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, val uint8)
	Mirroring() ines.NTMirroring
}

// A ScanlineCounter is clocked once per rendered scanline (MMC3).
type ScanlineCounter interface {
	Scanline()
}

// An IRQLine drives the CPU IRQ line.
type IRQLine interface {
	IRQ() bool
}

// A CPUClocked mapper needs the CPU cycle counter (MMC1 ignores writes on
// consecutive cycles).
type CPUClocked interface {
	SetCPUClock(now func() int64)
}

// Board gives access to the cartridge memories, for debugging.
type Board interface {
	Name() string
	PRGROM() []byte
	PRGRAM() []byte
	CHR() []byte
}

// New builds the cartridge board for rom.
func New(rom *ines.Rom) (Cartridge, error) {
	desc, ok := All[rom.Mapper()]
	if !ok {
		return nil, errors.Wrapf(hwdefs.ErrUnsupportedMapper, "mapper %d", rom.Mapper())
	}
	b := newbase(desc, rom)
	cart, err := desc.Load(b)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load mapper %s", desc.Name)
	}

	modMapper.InfoZ("cartridge loaded").
		String("mapper", desc.Name).
		Int("prgrom", len(rom.PRGROM)).
		Int("chr", len(b.chr)).
		Bool("chrram", b.chrRAM).
		Int("prgram", len(b.prgram)).
		Stringer("mirroring", b.ntm).
		End()
	return cart, nil
}

type MapperDesc struct {
	Name string
	Load func(*base) (Cartridge, error)
}

var All = map[uint16]MapperDesc{
	0:  NROM,
	1:  MMC1,
	2:  UxROM,
	3:  CNROM,
	4:  MMC3,
	7:  AxROM,
	66: GxROM,
}
