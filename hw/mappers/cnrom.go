package mappers

var CNROM = MapperDesc{
	Name: "CNROM",
	Load: loadCNROM,
}

type cnrom struct {
	*base

	chrbank      int
	busConflicts bool
}

func (m *cnrom) WritePRGROM(addr uint16, val uint8) {
	if m.busConflicts {
		val = m.busConflict(addr, val)
	}

	// 7  bit  0
	// ---- ----
	// cccc ccCC
	// |||| ||||
	// ++++-++++- Select 8 KB CHR ROM bank for PPU $0000-$1FFF
	// CNROM only uses lowest 2 bits
	prev := m.chrbank
	m.chrbank = int(val & 0b11)
	if prev != m.chrbank {
		m.selectCHRPage8KB(m.chrbank)
		modMapper.DebugZ("CHRROM bank switch").String("mapper", m.desc.Name).Int("prev", prev).Int("new", m.chrbank).End()
	}
}

func loadCNROM(b *base) (Cartridge, error) {
	cnrom := &cnrom{
		base:         b,
		busConflicts: b.rom.SubMapper() == 2,
	}
	b.init(cnrom.WritePRGROM)
	b.selectPRGPage32KB(0)
	return cnrom, nil
}
