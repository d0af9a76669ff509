package snapshot

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Memory areas are encoded as base64 strings.

func (s *NES) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.Field("version", func(e *jx.Encoder) { e.Int(s.Version) })
	e.Field("mapper", func(e *jx.Encoder) { e.Str(s.Mapper) })
	e.Field("cpu", s.CPU.Encode)
	e.Field("ppu", s.PPU.Encode)
	e.Field("ram", func(e *jx.Encoder) { e.Base64(s.RAM[:]) })
	e.Field("pads", func(e *jx.Encoder) {
		e.ArrStart()
		for _, p := range s.Pads {
			e.UInt8(p)
		}
		e.ArrEnd()
	})
	e.ObjEnd()
}

func (s *NES) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "version":
			v, err := d.Int()
			s.Version = v
			return err
		case "mapper":
			v, err := d.Str()
			s.Mapper = v
			return err
		case "cpu":
			return s.CPU.Decode(d)
		case "ppu":
			return s.PPU.Decode(d)
		case "ram":
			return decodeMem(d, key, s.RAM[:])
		case "pads":
			i := 0
			return d.Arr(func(d *jx.Decoder) error {
				v, err := d.UInt8()
				if i < len(s.Pads) {
					s.Pads[i] = v
				}
				i++
				return err
			})
		}
		return d.Skip()
	})
}

func (s *NES) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	s.Encode(&e)
	return e.Bytes(), nil
}

func (s *NES) UnmarshalJSON(buf []byte) error {
	return s.Decode(jx.DecodeBytes(buf))
}

func (c *CPU) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.Field("pc", func(e *jx.Encoder) { e.UInt16(c.PC) })
	e.Field("sp", func(e *jx.Encoder) { e.UInt8(c.SP) })
	e.Field("p", func(e *jx.Encoder) { e.UInt8(c.P) })
	e.Field("a", func(e *jx.Encoder) { e.UInt8(c.A) })
	e.Field("x", func(e *jx.Encoder) { e.UInt8(c.X) })
	e.Field("y", func(e *jx.Encoder) { e.UInt8(c.Y) })
	e.Field("cycles", func(e *jx.Encoder) { e.Int64(c.Cycles) })
	e.Field("nmi_pending", func(e *jx.Encoder) { e.Bool(c.NMIPending) })
	e.Field("irq_lines", func(e *jx.Encoder) { e.UInt8(c.IRQLines) })
	e.Field("halted", func(e *jx.Encoder) { e.Bool(c.Halted) })
	e.ObjEnd()
}

func (c *CPU) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "pc":
			c.PC, err = d.UInt16()
		case "sp":
			c.SP, err = d.UInt8()
		case "p":
			c.P, err = d.UInt8()
		case "a":
			c.A, err = d.UInt8()
		case "x":
			c.X, err = d.UInt8()
		case "y":
			c.Y, err = d.UInt8()
		case "cycles":
			c.Cycles, err = d.Int64()
		case "nmi_pending":
			c.NMIPending, err = d.Bool()
		case "irq_lines":
			c.IRQLines, err = d.UInt8()
		case "halted":
			c.Halted, err = d.Bool()
		default:
			err = d.Skip()
		}
		return err
	})
}

func (p *PPU) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.Field("palette", func(e *jx.Encoder) { e.Base64(p.Palette[:]) })
	e.Field("oam", func(e *jx.Encoder) { e.Base64(p.OAM[:]) })
	e.Field("vram", func(e *jx.Encoder) { e.Base64(p.VRAM[:]) })
	e.Field("oam_addr", func(e *jx.Encoder) { e.UInt8(p.OAMAddr) })
	e.Field("v", func(e *jx.Encoder) { e.UInt16(p.VRAMAddr) })
	e.Field("t", func(e *jx.Encoder) { e.UInt16(p.VRAMTemp) })
	e.Field("x", func(e *jx.Encoder) { e.UInt8(p.FineX) })
	e.Field("w", func(e *jx.Encoder) { e.Bool(p.WriteLatch) })
	e.Field("data_buf", func(e *jx.Encoder) { e.UInt8(p.PPUDataBuf) })
	e.Field("open_bus", func(e *jx.Encoder) { e.UInt8(p.OpenBus) })
	e.Field("ctrl", func(e *jx.Encoder) { e.UInt8(p.PPUCTRL) })
	e.Field("mask", func(e *jx.Encoder) { e.UInt8(p.PPUMASK) })
	e.Field("status", func(e *jx.Encoder) { e.UInt8(p.PPUSTATUS) })
	e.Field("cycle", func(e *jx.Encoder) { e.Int(p.Cycle) })
	e.Field("scanline", func(e *jx.Encoder) { e.Int(p.Scanline) })
	e.Field("frame", func(e *jx.Encoder) { e.Int64(p.Frame) })
	e.Field("odd_frame", func(e *jx.Encoder) { e.Bool(p.OddFrame) })
	e.ObjEnd()
}

func (p *PPU) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "palette":
			err = decodeMem(d, key, p.Palette[:])
		case "oam":
			err = decodeMem(d, key, p.OAM[:])
		case "vram":
			err = decodeMem(d, key, p.VRAM[:])
		case "oam_addr":
			p.OAMAddr, err = d.UInt8()
		case "v":
			p.VRAMAddr, err = d.UInt16()
		case "t":
			p.VRAMTemp, err = d.UInt16()
		case "x":
			p.FineX, err = d.UInt8()
		case "w":
			p.WriteLatch, err = d.Bool()
		case "data_buf":
			p.PPUDataBuf, err = d.UInt8()
		case "open_bus":
			p.OpenBus, err = d.UInt8()
		case "ctrl":
			p.PPUCTRL, err = d.UInt8()
		case "mask":
			p.PPUMASK, err = d.UInt8()
		case "status":
			p.PPUSTATUS, err = d.UInt8()
		case "cycle":
			p.Cycle, err = d.Int()
		case "scanline":
			p.Scanline, err = d.Int()
		case "frame":
			p.Frame, err = d.Int64()
		case "odd_frame":
			p.OddFrame, err = d.Bool()
		default:
			err = d.Skip()
		}
		return err
	})
}

func decodeMem(d *jx.Decoder, name string, dst []byte) error {
	buf, err := d.Base64()
	if err != nil {
		return errors.Wrap(err, name)
	}
	if len(buf) != len(dst) {
		return errors.Errorf("%s: got %d bytes, want %d", name, len(buf), len(dst))
	}
	copy(dst, buf)
	return nil
}
