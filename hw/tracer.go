package hw

import (
	"fmt"
	"io"
)

// PPUClock gives the PPU position for the execution trace.
type PPUClock interface {
	Position() (scanline, dot int)
}

type tracer struct {
	w     io.Writer
	clock PPUClock
	buf   []byte
}

// write the execution trace line for the instruction at c.PC, before it
// executes.
func (t *tracer) write(c *CPU) {
	buf := append(t.buf[:0], c.Disasm(c.PC).Bytes()...)
	for len(buf) < 48 {
		buf = append(buf, ' ')
	}

	buf = append(buf, "A:"...)
	buf = appendHex8(buf, c.A)
	buf = append(buf, " X:"...)
	buf = appendHex8(buf, c.X)
	buf = append(buf, " Y:"...)
	buf = appendHex8(buf, c.Y)
	buf = append(buf, " P:"...)
	buf = appendHex8(buf, uint8(c.P))
	buf = append(buf, " SP:"...)
	buf = appendHex8(buf, c.SP)

	var scanline, dot int
	if t.clock != nil {
		scanline, dot = t.clock.Position()
	}
	buf = fmt.Appendf(buf, " PPU:%3d,%3d CYC:%d\n", scanline, dot, c.Cycles)
	t.buf = buf
	t.w.Write(buf)
}
