package mappers

var UxROM = MapperDesc{
	Name: "UxROM",
	Load: loadUxROM,
}

type uxrom struct {
	*base

	prgbank      int
	busConflicts bool
}

func (m *uxrom) WritePRGROM(addr uint16, val uint8) {
	if m.busConflicts {
		val = m.busConflict(addr, val)
	}

	// 7  bit  0
	// ---- ----
	// xxxx pPPP
	//      ||||
	//      ++++- Select 16 KB PRG ROM bank for CPU $8000-$BFFF
	//            (UNROM uses bits 2-0; UOROM uses bits 3-0)
	prev := m.prgbank
	m.prgbank = int(val & 0x0F)
	if prev != m.prgbank {
		m.selectPRGPage16KB(0, m.prgbank)
		modMapper.DebugZ("PRGROM bank switch").String("mapper", m.desc.Name).Int("prev", prev).Int("new", m.prgbank).End()
	}
}

func loadUxROM(b *base) (Cartridge, error) {
	uxrom := &uxrom{
		base:         b,
		busConflicts: b.rom.SubMapper() == 2,
	}
	b.init(uxrom.WritePRGROM)
	return uxrom, nil
}
