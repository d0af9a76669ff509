package hw

import (
	"fmt"

	"nescore/hw/hwio"
	"nescore/hw/mappers"
)

// Bus is the CPU address space.
//
//	$0000-$07FF  2KB internal RAM
//	$0800-$1FFF  mirrors of $0000-$07FF
//	$2000-$2007  PPU registers
//	$2008-$3FFF  mirrors of $2000-$2007 (every 8 bytes)
//	$4000-$4013  APU registers (not emulated, open bus)
//	$4014        OAM DMA
//	$4015        APU status (open bus)
//	$4016-$4017  controller ports
//	$4018-$401F  test mode registers (open bus)
//	$4020-$FFFF  cartridge
type Bus struct {
	*hwio.Table

	RAM  hwio.Mem    `hwio:"offset=0x0000,size=0x800,vsize=0x2000"`
	IO   hwio.Device `hwio:"offset=0x4000,size=0x20,rcb,pcb"`
	Cart hwio.Device `hwio:"offset=0x4020,size=0xBFE0,rcb,wcb,pcb"`

	cart mappers.Cartridge
}

// NewBus creates the CPU bus, with RAM, I/O stubs and cartridge mapped.
// Devices are mapped with Connect.
func NewBus(cart mappers.Cartridge) *Bus {
	bus := &Bus{
		Table: hwio.NewTable("cpu"),
		cart:  cart,
	}
	hwio.MustInitRegs(bus)
	bus.MapBank(0x0000, bus, 0)
	return bus
}

// Connect maps the PPU registers, the OAM DMA register and the controller
// ports.
func (b *Bus) Connect(ppu *PPU, dma *OAMDMA, ports *ControllerPorts) {
	ppu.MapRegs(b.Table)
	b.MapBank(0x4000, dma, 0)
	b.MapBank(0x4000, ports, 0)
}

func (b *Bus) ReadIO(addr uint16) uint8 { return uint8(addr >> 8) }
func (b *Bus) PeekIO(addr uint16) uint8 { return uint8(addr >> 8) }

func (b *Bus) ReadCART(addr uint16) uint8 { return b.cart.ReadPRG(addr) }
func (b *Bus) PeekCART(addr uint16) uint8 { return b.cart.PeekPRG(addr) }

func (b *Bus) WriteCART(addr uint16, val uint8) { b.cart.WritePRG(addr, val) }

// LocKind identifies the device decoding a CPU address.
type LocKind uint8

const (
	LocRAM LocKind = iota
	LocPPU
	LocIO
	LocOAMDMA
	LocController
	LocCartridge
)

var locNames = [...]string{"RAM", "PPU", "IO", "OAMDMA", "Controller", "Cartridge"}

func (k LocKind) String() string {
	if int(k) < len(locNames) {
		return locNames[k]
	}
	return fmt.Sprintf("LocKind(%d)", k)
}

// Location is a decoded CPU address. Offset is relative to the device:
// RAM offset, PPU register index, I/O register, controller port index, or
// the address itself for the cartridge.
type Location struct {
	Kind   LocKind
	Offset uint16
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%04X", l.Kind, l.Offset)
}

// DecodeAddr returns where addr is routed. Every address decodes.
func DecodeAddr(addr uint16) Location {
	switch {
	case addr < 0x2000:
		return Location{LocRAM, addr & 0x07FF}
	case addr < 0x4000:
		return Location{LocPPU, addr & 0x0007}
	case addr == 0x4014:
		return Location{LocOAMDMA, 0}
	case addr == 0x4016 || addr == 0x4017:
		return Location{LocController, addr - 0x4016}
	case addr < 0x4020:
		return Location{LocIO, addr - 0x4000}
	}
	return Location{LocCartridge, addr}
}
