package hwio

import "nescore/emu/log"

type MemFlags int

const (
	MemFlagReadWrite MemFlags = 0
	MemFlag8ReadOnly MemFlags = (1 << iota) // writes are dropped and logged
	MemFlagNoROLog                          // with MemFlag8ReadOnly, drop writes silently
)

// Mem is a linear memory area. Data length must be a power of 2; VSize can
// be larger than Data, in which case the area is mirrored.
//
// Mem does not implement BankIO8 itself; BankIO8 returns an adaptor
// specialized for the configured flags.
type Mem struct {
	Name    string              // for debugging
	Data    []byte              // backing buffer
	VSize   int                 // mapped size, defaults to len(Data)
	Flags   MemFlags            // access flags
	WriteCb func(uint16, uint8) // if set, called instead of storing the value
}

func (m *Mem) BankIO8() BankIO8 {
	return newMemio(m.Name, m.Data, m.WriteCb, m.Flags)
}

type memio struct {
	name string
	buf  []byte
	mask uint16
	wcb  func(uint16, uint8)
	ro   MemFlags
}

func newMemio(name string, buf []byte, wcb func(uint16, uint8), flags MemFlags) *memio {
	if len(buf) == 0 || len(buf)&(len(buf)-1) != 0 {
		panic("hwio: memory buffer size is not pow2: " + name)
	}
	return &memio{
		name: name,
		buf:  buf,
		mask: uint16(len(buf) - 1),
		wcb:  wcb,
		ro:   flags,
	}
}

func (m *memio) Read8(addr uint16) uint8 {
	return m.buf[addr&m.mask]
}

func (m *memio) Peek8(addr uint16) uint8 {
	return m.buf[addr&m.mask]
}

func (m *memio) Write8(addr uint16, val uint8) {
	if m.wcb != nil {
		m.wcb(addr, val)
		return
	}

	switch {
	case m.ro&MemFlagNoROLog != 0:
		return
	case m.ro&MemFlag8ReadOnly != 0:
		log.ModHwIo.WarnZ("Write8 to readonly memory").
			String("area", m.name).
			Hex8("val", val).
			Hex16("addr", addr).
			End()
	default:
		m.buf[addr&m.mask] = val
	}
}
