package emu

import (
	"nescore/hw/hwdefs"
	"nescore/hw/mappers"
	"nescore/hw/snapshot"
)

// Snapshot returns a copy of the console state. Taking a snapshot has no
// side effect on the emulated hardware.
func (nes *NES) Snapshot() *snapshot.NES {
	state := &snapshot.NES{
		Version: snapshot.Version,
		CPU:     *nes.CPU.State(),
		PPU:     *nes.PPU.State(),
	}
	if b, ok := nes.cart.(mappers.Board); ok {
		state.Mapper = b.Name()
	}
	copy(state.RAM[:], nes.Bus.RAM.Data)
	for i := range state.Pads {
		state.Pads[i] = uint8(nes.Ports.Pads[i].Buttons())
	}
	return state
}

// memory returns the live memory backing region r, nil if the cartridge has
// none (no PRG RAM for example).
func (nes *NES) memory(r snapshot.Region) []byte {
	board, _ := nes.cart.(mappers.Board)
	switch r {
	case snapshot.RegionRAM:
		return nes.Bus.RAM.Data
	case snapshot.RegionVRAM:
		return nes.PPU.VRAM[:]
	case snapshot.RegionOAM:
		return nes.PPU.OAM[:]
	case snapshot.RegionPalette:
		return nes.PPU.Palette[:]
	case snapshot.RegionPRGROM:
		if board != nil {
			return board.PRGROM()
		}
	case snapshot.RegionPRGRAM:
		if board != nil {
			return board.PRGRAM()
		}
	case snapshot.RegionCHR:
		if board != nil {
			return board.CHR()
		}
	}
	return nil
}

// Region returns a copy of the memory region r.
func (nes *NES) Region(r snapshot.Region) []byte {
	return append([]byte(nil), nes.memory(r)...)
}

// Poke writes val at offset off of the memory region r, bypassing the buses.
// Writes to ROM regions are allowed, for debugging.
func (nes *NES) Poke(r snapshot.Region, off int, val uint8) error {
	mem := nes.memory(r)
	if off < 0 || off >= len(mem) {
		return hwdefs.OutOfRangeError{What: r.String(), Index: off, Limit: len(mem)}
	}
	mem[off] = val
	return nil
}
