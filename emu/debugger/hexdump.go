package debugger

import (
	"fmt"
	"io"
)

// HexDump writes mem in the classic hexdump format, 16 bytes per line, with
// the ASCII column. Addresses start at base.
func HexDump(w io.Writer, mem []byte, base int) error {
	var line [16]byte
	for off := 0; off < len(mem); off += 16 {
		n := copy(line[:], mem[off:])

		buf := fmt.Appendf(nil, "%04X: ", base+off)
		for i := range 16 {
			if i < n {
				buf = fmt.Appendf(buf, "%02X ", line[i])
			} else {
				buf = append(buf, "   "...)
			}
			if i == 7 {
				buf = append(buf, ' ')
			}
		}

		buf = append(buf, " |"...)
		for _, b := range line[:n] {
			if b < 0x20 || b > 0x7E {
				b = '.'
			}
			buf = append(buf, b)
		}
		buf = append(buf, "|\n"...)

		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
