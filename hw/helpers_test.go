package hw

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"nescore/hw/hwdefs"
	"nescore/hw/hwio"
)

func hasPanicked(f func()) (yes bool, msg any) {
	defer func() {
		msg = recover()
		if msg != nil {
			yes = true
		}
	}()
	f()
	return yes, msg
}

func tcheck(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatal(err)
	}
}

func tcheckf(tb testing.TB, err error, format string, args ...any) {
	tb.Helper()
	if err != nil {
		tb.Fatalf(format+": %s", append(args, err)...)
	}
}

/* cpu specific testing helpers */

type dumpline struct {
	off   uint16
	bytes []byte
}

// loadDump parses a memory dump made of "ADDR: hex bytes" lines. Blank lines
// and lines starting with '#' are ignored.
func loadDump(tb testing.TB, dump string) []dumpline {
	tb.Helper()

	var lines []dumpline
	scan := bufio.NewScanner(strings.NewReader(dump))
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		off, octets, ok := strings.Cut(line, ":")
		if !ok {
			tb.Fatalf("malformed line: %s", line)
		}

		ioff, err := strconv.ParseUint(strings.TrimSpace(off), 16, 16)
		tcheckf(tb, err, "malformed offset %s", off)

		buf, err := hex.DecodeString(strings.ReplaceAll(octets, " ", ""))
		tcheckf(tb, err, "hex decode %q", octets)
		lines = append(lines, dumpline{off: uint16(ioff), bytes: buf})
	}
	tcheck(tb, scan.Err())
	return lines
}

// loadCPUWith creates a CPU over 64K of flat RAM loaded with the memory dump.
// The reset vector points at $0600 unless the dump overrides it. The cycle
// counter is zeroed after the reset sequence.
func loadCPUWith(tb testing.TB, dump string) (*CPU, []byte) {
	tb.Helper()

	ram := make([]byte, 0x10000)
	ram[0xFFFC], ram[0xFFFD] = 0x00, 0x06
	for _, line := range loadDump(tb, dump) {
		copy(ram[line.off:], line.bytes)
	}

	bus := hwio.NewTable("cputest")
	bus.MapMemorySlice(0x0000, 0xFFFF, ram, false)

	cpu := NewCPU(bus)
	cpu.Reset(hwdefs.HardReset)
	cpu.Cycles = 0
	if testing.Verbose() {
		cpu.SetTraceOutput(tbwriter{tb}, nil)
	}
	return cpu, ram
}

type tbwriter struct {
	testing.TB
}

func (t tbwriter) Write(p []byte) (int, error) {
	t.TB.Helper()
	t.TB.Log(string(bytes.TrimSpace(p)))
	return len(p), nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func asInt(v any) int {
	switch v := v.(type) {
	case int:
		return v
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case int64:
		return int(v)
	case bool:
		return b2i(v)
	}
	panic("unsupported state value type")
}

// runAndCheckState steps the CPU until at least ncycles cycles have elapsed,
// then checks the given name/value pairs. Names are registers (A, X, Y, PC,
// SP, P) or a single status flag (Pn, Pv, Pd, Pi, Pz, Pc).
func runAndCheckState(tb testing.TB, cpu *CPU, ncycles int64, states ...any) {
	tb.Helper()

	if len(states)%2 != 0 {
		panic("odd number of states")
	}

	for cpu.Cycles < ncycles {
		if _, err := cpu.Step(); err != nil {
			tb.Fatalf("step at cycle %d: %s", cpu.Cycles, err)
		}
	}

	check := func(name string, got, want int, digits int) {
		tb.Helper()
		if got != want {
			tb.Errorf("got %s=$%0*X, want $%0*X", name, digits, got, digits, want)
		}
	}
	flags := map[byte]P{'n': Negative, 'v': Overflow, 'd': Decimal, 'i': Interrupt, 'z': Zero, 'c': Carry}

	for i := 0; i < len(states); i += 2 {
		s := states[i].(string)
		want := asInt(states[i+1])
		switch {
		case s == "A":
			check("A", int(cpu.A), want, 2)
		case s == "X":
			check("X", int(cpu.X), want, 2)
		case s == "Y":
			check("Y", int(cpu.Y), want, 2)
		case s == "SP":
			check("SP", int(cpu.SP), want, 2)
		case s == "PC":
			check("PC", int(cpu.PC), want, 4)
		case s == "P":
			if got := uint8(cpu.P); int(got) != want {
				tb.Errorf("got P=$%02X(%s), want $%02X(%s)", got, cpu.P, want, P(want))
			}
		case len(s) == 2 && s[0] == 'P':
			flag, ok := flags[s[1]]
			if !ok {
				panic("unknown P bit: " + s)
			}
			if got := b2i(cpu.P.Has(flag)); got != want {
				tb.Errorf("got %s=%d, want %d (P=%s)", s, got, want, cpu.P)
			}
		default:
			panic("unknown state: " + s)
		}
	}

	if tb.Failed() {
		tb.FailNow()
	}
}

func TestLoadDump(t *testing.T) {
	lines := loadDump(t, `
# comment
01f0: 0f 0e 0d
0210: 0102 03
`)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].off != 0x01f0 || !bytes.Equal(lines[0].bytes, []byte{0x0f, 0x0e, 0x0d}) {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].off != 0x0210 || !bytes.Equal(lines[1].bytes, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("line 1 = %+v", lines[1])
	}
}
