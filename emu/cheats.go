package emu

import (
	"slices"

	"github.com/go-faster/errors"

	"nescore/emu/debugger"
	"nescore/emu/log"
	"nescore/hw/mappers"
)

// cheatCart is the cartridge as seen by the CPU bus. ROM cheats patch PRG
// reads; the PPU accesses the board directly.
type cheatCart struct {
	mappers.Cartridge

	rom  map[uint16][]debugger.Cheat
	ram  []debugger.Cheat
	list []debugger.Cheat
}

func newCheatCart(cart mappers.Cartridge) *cheatCart {
	return &cheatCart{Cartridge: cart}
}

func (cc *cheatCart) ReadPRG(addr uint16) uint8 {
	val := cc.Cartridge.ReadPRG(addr)
	if cc.rom == nil {
		return val
	}
	return cc.patch(addr, val)
}

func (cc *cheatCart) PeekPRG(addr uint16) uint8 {
	val := cc.Cartridge.PeekPRG(addr)
	if cc.rom == nil {
		return val
	}
	return cc.patch(addr, val)
}

func (cc *cheatCart) patch(addr uint16, val uint8) uint8 {
	for _, c := range cc.rom[addr] {
		if v := c.Apply(val); v != val {
			return v
		}
	}
	return val
}

func (cc *cheatCart) add(c debugger.Cheat) {
	cc.list = append(cc.list, c)
	if c.ROM() {
		if cc.rom == nil {
			cc.rom = make(map[uint16][]debugger.Cheat)
		}
		cc.rom[c.Addr] = append(cc.rom[c.Addr], c)
	} else {
		cc.ram = append(cc.ram, c)
	}
	log.ModEmu.InfoZ("cheat added").String("code", c.Code).Stringer("cheat", c).End()
}

func (cc *cheatCart) clear() {
	cc.rom = nil
	cc.ram = nil
	cc.list = nil
}

// AddCheat parses and enables a cheat code (Game Genie or AAAA:VV).
func (nes *NES) AddCheat(code string) error {
	c, err := debugger.ParseCheat(code)
	if err != nil {
		return err
	}
	if c.Addr >= 0x2000 && c.Addr < 0x6000 {
		return errors.Wrapf(debugger.ErrBadCheat, "%q: $%04X is not RAM nor ROM", code, c.Addr)
	}
	nes.cheats.add(c)
	nes.freezeRAM()
	return nil
}

// Cheats returns the enabled cheats.
func (nes *NES) Cheats() []debugger.Cheat {
	return slices.Clone(nes.cheats.list)
}

// ClearCheats disables all cheats.
func (nes *NES) ClearCheats() {
	nes.cheats.clear()
}

// freezeRAM writes the value of RAM cheats. It runs at the end of each frame.
func (nes *NES) freezeRAM() {
	for _, c := range nes.cheats.ram {
		nes.Bus.Write8(c.Addr, c.Val)
	}
}
