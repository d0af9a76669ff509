package hw

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/hw/hwdefs"
	"nescore/hw/hwio"
)

func TestPString(t *testing.T) {
	p := P(0b00110100)
	if got := p.String(); got != "nvUBdIzc" {
		t.Errorf("got P = %s, want %s", got, "nvUBdIzc")
	}
	p = P(0b00000100)
	if p.String() != "nvubdIzc" {
		t.Errorf("got P = %s, want %s", p.String(), "nvubdIzc")
	}
}

func TestZeroNegativeFlags(t *testing.T) {
	tests := []struct {
		val  uint8
		z, n int
	}{
		{0x00, 1, 0},
		{0x01, 0, 0},
		{0x7F, 0, 0},
		{0x80, 0, 1},
		{0xFF, 0, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%02X", tt.val), func(t *testing.T) {
			// LDA #val
			// TAX
			// DEX
			// INX
			cpu, _ := loadCPUWith(t, fmt.Sprintf(`0600: a9 %02x aa ca e8`, tt.val))
			runAndCheckState(t, cpu, 2,
				"A", tt.val,
				"Pz", tt.z,
				"Pn", tt.n,
			)
			runAndCheckState(t, cpu, 8,
				"X", tt.val,
				"Pz", tt.z,
				"Pn", tt.n,
			)
		})
	}
}

func TestPHPPLP(t *testing.T) {
	t.Run("php sets B and U", func(t *testing.T) {
		// SEC
		// SED
		// PHP
		// PLA
		cpu, ram := loadCPUWith(t, `0600: 38 f8 08 68`)
		runAndCheckState(t, cpu, 4,
			"P", 0x2D,
		)
		runAndCheckState(t, cpu, 11,
			"A", 0x3D,
			"SP", 0xFD,
		)
		if ram[0x01FD] != 0x3D {
			t.Errorf("stacked P = $%02X, want $3D", ram[0x01FD])
		}
	})
	t.Run("plp ignores B and U", func(t *testing.T) {
		// LDA #$FF
		// PHA
		// PLP
		cpu, _ := loadCPUWith(t, `0600: a9 ff 48 28`)
		runAndCheckState(t, cpu, 9,
			"P", 0xEF,
		)
	})
	t.Run("round trip", func(t *testing.T) {
		for _, p := range []uint8{0x20, 0x24, 0xE7, 0xEF, 0x6A} {
			// PHP
			// PLP
			cpu, _ := loadCPUWith(t, `0600: 08 28`)
			cpu.P = P(p)
			n, err := cpu.Step()
			tcheck(t, err)
			if n != 3 {
				t.Errorf("PHP took %d cycles, want 3", n)
			}
			n, err = cpu.Step()
			tcheck(t, err)
			if n != 4 {
				t.Errorf("PLP took %d cycles, want 4", n)
			}
			if uint8(cpu.P) != p {
				t.Errorf("P=$%02X after PHP/PLP, want $%02X", uint8(cpu.P), p)
			}
		}
	})
}

const interruptDump = `
# CLI, then NOPs
0600: 58 ea ea ea
# NMI handler: RTI
0700: 40
# IRQ handler: LDX #$42
0800: a2 42
fffa: 00 07 00 06 00 08
`

func TestNMIBeforeIRQ(t *testing.T) {
	cpu, ram := loadCPUWith(t, interruptDump)
	runAndCheckState(t, cpu, 2, "Pi", 0, "PC", 0x0601)

	cpu.RequestIRQ(hwdefs.External)
	cpu.RequestNMI()

	n, err := cpu.Step()
	tcheck(t, err)
	if n != interruptCycles {
		t.Errorf("NMI took %d cycles, want %d", n, interruptCycles)
	}
	if cpu.PC != 0x0700 {
		t.Fatalf("PC=$%04X, want NMI handler $0700", cpu.PC)
	}
	if cpu.NMIPending() {
		t.Errorf("NMI still pending after being serviced")
	}
	if cpu.IRQLines() != hwdefs.External {
		t.Errorf("IRQ lines = %v, want %v", cpu.IRQLines(), hwdefs.External)
	}
	if !cpu.P.Has(Interrupt) {
		t.Errorf("I should be set in handler")
	}
	// stacked P has B clear, U set.
	if got := ram[0x0100|uint16(cpu.SP+1)]; got != 0x20 {
		t.Errorf("stacked P = $%02X, want $20", got)
	}

	// RTI, IRQ is serviced right after.
	n, err = cpu.Step()
	tcheck(t, err)
	if n != 6 {
		t.Errorf("RTI took %d cycles, want 6", n)
	}
	if cpu.PC != 0x0601 {
		t.Fatalf("PC=$%04X after RTI, want $0601", cpu.PC)
	}

	_, err = cpu.Step()
	tcheck(t, err)
	if cpu.PC != 0x0800 {
		t.Fatalf("PC=$%04X, want IRQ handler $0800", cpu.PC)
	}

	cpu.ClearIRQ(hwdefs.External)
	_, err = cpu.Step()
	tcheck(t, err)
	if cpu.X != 0x42 {
		t.Errorf("X=$%02X, want $42", cpu.X)
	}
}

func TestIRQMasked(t *testing.T) {
	cpu, _ := loadCPUWith(t, `0600: ea ea`)
	cpu.RequestIRQ(hwdefs.Mapper)

	n, err := cpu.Step()
	tcheck(t, err)
	if n != 2 || cpu.PC != 0x0601 {
		t.Errorf("IRQ serviced with I set: PC=$%04X cycles=%d", cpu.PC, n)
	}
	if cpu.IRQLines() != hwdefs.Mapper {
		t.Errorf("IRQ line released")
	}
}

func TestInstructionCycles(t *testing.T) {
	tests := []struct {
		name  string
		dump  string
		setup func(*CPU)
		want  int
	}{
		{"LDA abs,X", `0600: bd 00 02`, func(c *CPU) { c.X = 1 }, 4},
		{"LDA abs,X page cross", `0600: bd 01 02`, func(c *CPU) { c.X = 0xFF }, 5},
		{"STA abs,X", `0600: 9d 00 02`, nil, 5},
		{"LDA (zp),Y", "0600: b1 10\n0010: 00 02", func(c *CPU) { c.Y = 1 }, 5},
		{"LDA (zp),Y page cross", "0600: b1 10\n0010: ff 02", func(c *CPU) { c.Y = 1 }, 6},
		{"INC zp", `0600: e6 10`, nil, 5},
		{"INC abs,X", `0600: fe 00 02`, nil, 7},
		{"BNE not taken", `0600: d0 02`, func(c *CPU) { c.P.setFlags(Zero) }, 2},
		{"BNE taken", `0600: d0 02`, nil, 3},
		{"BNE taken page cross", `0600: d0 80`, nil, 4},
		{"JSR", `0600: 20 00 07`, nil, 6},
		{"RTS", `0600: 60`, func(c *CPU) { c.SP = 0xFB }, 6},
		{"JMP ind", `0600: 6c 00 02`, nil, 5},
		{"BRK", `0600: 00`, nil, 7},
		{"PHA", `0600: 48`, nil, 3},
		{"PLA", `0600: 68`, nil, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, _ := loadCPUWith(t, tt.dump)
			if tt.setup != nil {
				tt.setup(cpu)
			}
			n, err := cpu.Step()
			tcheck(t, err)
			if n != tt.want {
				t.Errorf("took %d cycles, want %d", n, tt.want)
			}
			if cpu.Cycles != int64(n) {
				t.Errorf("Cycles=%d, want %d", cpu.Cycles, n)
			}
		})
	}
}

// cycleClock derives the PPU position from the CPU cycle counter, as if the
// PPU had been running since power up.
type cycleClock struct{ cpu *CPU }

func (c cycleClock) Position() (scanline, dot int) {
	dots := int(c.cpu.Cycles * 3)
	return dots / NumCycles, dots % NumCycles
}

func TestTraceGolden(t *testing.T) {
	cpu, _ := loadCPUWith(t, `
0600: a2 05 86 10 8d 00 02 20 0d 06 4c 00 07
060d: 60
0700: 02
`)
	cpu.Cycles = interruptCycles

	var buf bytes.Buffer
	cpu.SetTraceOutput(&buf, cycleClock{cpu})

	for {
		if _, err := cpu.Step(); err != nil {
			if !errors.Is(err, hwdefs.ErrIllegalOpcode) {
				t.Fatal(err)
			}
			break
		}
	}

	line := func(disasm, regs string) string {
		return fmt.Sprintf("%-48s%s", disasm, regs)
	}
	want := []string{
		line("0600  A2 05     LDX #$05", "A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7"),
		line("0602  86 10     STX $10", "A:00 X:05 Y:00 P:24 SP:FD PPU:  0, 27 CYC:9"),
		line("0604  8D 00 02  STA $0200", "A:00 X:05 Y:00 P:24 SP:FD PPU:  0, 36 CYC:12"),
		line("0607  20 0D 06  JSR $060D", "A:00 X:05 Y:00 P:24 SP:FD PPU:  0, 48 CYC:16"),
		line("060D  60        RTS", "A:00 X:05 Y:00 P:24 SP:FB PPU:  0, 66 CYC:22"),
		line("060A  4C 00 07  JMP $0700", "A:00 X:05 Y:00 P:24 SP:FD PPU:  0, 84 CYC:28"),
	}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestIllegalOpcode(t *testing.T) {
	cpu, _ := loadCPUWith(t, `0600: ea 02`)
	_, err := cpu.Step()
	tcheck(t, err)

	a, x, y, sp, p := cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.P
	cycles := cpu.Cycles
	for range 2 {
		n, err := cpu.Step()
		if !errors.Is(err, hwdefs.ErrIllegalOpcode) {
			t.Fatalf("got err %v, want ErrIllegalOpcode", err)
		}
		var ierr *IllegalOpcodeError
		if !errors.As(err, &ierr) {
			t.Fatalf("got err %T, want *IllegalOpcodeError", err)
		}
		if ierr.PC != 0x0601 || ierr.Opcode != 0x02 {
			t.Errorf("got PC=$%04X opcode=$%02X, want $0601 and $02", ierr.PC, ierr.Opcode)
		}
		if n != 0 {
			t.Errorf("halted step took %d cycles", n)
		}
	}
	if cpu.PC != 0x0601 || cpu.A != a || cpu.X != x || cpu.Y != y || cpu.SP != sp || cpu.P != p || cpu.Cycles != cycles {
		t.Errorf("CPU state modified by illegal opcode")
	}
	if cpu.Halted() == nil {
		t.Errorf("CPU should be halted")
	}

	cpu.Reset(hwdefs.SoftReset)
	if cpu.Halted() != nil {
		t.Errorf("reset should clear the halted state")
	}
}

func TestReset(t *testing.T) {
	cpu, _ := loadCPUWith(t, `fffc: 34 12`)
	if cpu.PC != 0x1234 {
		t.Fatalf("PC=$%04X, want $1234", cpu.PC)
	}

	cpu.A, cpu.SP, cpu.P = 0x11, 0xF0, Carry|Reserved
	cpu.RequestNMI()
	cpu.Reset(hwdefs.SoftReset)
	runAndCheckState(t, cpu, 0,
		"A", 0x11,
		"SP", 0xED,
		"P", 0x25,
		"PC", 0x1234,
	)
	if cpu.NMIPending() {
		t.Errorf("NMI pending after reset")
	}

	cpu.Reset(hwdefs.HardReset)
	runAndCheckState(t, cpu, 0,
		"A", 0x00,
		"SP", 0xFD,
		"P", 0x24,
	)
	if cpu.Cycles != interruptCycles {
		t.Errorf("Cycles=%d after reset, want %d", cpu.Cycles, interruptCycles)
	}
}

func TestJMPIndirectPageWrap(t *testing.T) {
	cpu, _ := loadCPUWith(t, `
0600: 6c ff 02
02ff: 00
0200: 07
0300: 08
`)
	runAndCheckState(t, cpu, 5, "PC", 0x0700)
}

func TestADCSBC(t *testing.T) {
	tests := []struct {
		op         uint8
		a, val     uint8
		carry      bool
		want       uint8
		c, v, z, n int
	}{
		{0x69, 0x50, 0x10, false, 0x60, 0, 0, 0, 0},
		{0x69, 0x50, 0x50, false, 0xA0, 0, 1, 0, 1},
		{0x69, 0xFF, 0x01, false, 0x00, 1, 0, 1, 0},
		{0x69, 0x80, 0xFF, false, 0x7F, 1, 1, 0, 0},
		{0x69, 0x01, 0x01, true, 0x03, 0, 0, 0, 0},
		{0xE9, 0x50, 0xF0, true, 0x60, 0, 0, 0, 0},
		{0xE9, 0xD0, 0x70, true, 0x60, 1, 1, 0, 0},
		{0xE9, 0x50, 0x50, true, 0x00, 1, 0, 1, 0},
		{0xE9, 0x50, 0x50, false, 0xFF, 0, 0, 0, 1},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("%02X %02X,%02X,c=%v", tt.op, tt.a, tt.val, tt.carry)
		t.Run(name, func(t *testing.T) {
			cpu, _ := loadCPUWith(t, fmt.Sprintf(`0600: %02x %02x`, tt.op, tt.val))
			cpu.A = tt.a
			// decimal mode has no effect.
			cpu.P.setFlags(Decimal)
			if tt.carry {
				cpu.P.setFlags(Carry)
			}
			runAndCheckState(t, cpu, 2,
				"A", tt.want,
				"Pc", tt.c,
				"Pv", tt.v,
				"Pz", tt.z,
				"Pn", tt.n,
			)
		})
	}
}

// accessCounter counts the bus accesses to a register window.
type accessCounter struct {
	dev    hwio.Device
	reads  [0x20]int
	writes [0x20]int
}

func newAccessCounter(bus *hwio.Table, addr uint16) *accessCounter {
	ac := &accessCounter{}
	ac.dev = hwio.Device{
		Name:    "counter",
		Size:    len(ac.reads),
		ReadCb:  func(addr uint16) uint8 { ac.reads[addr&0x1F]++; return 0 },
		PeekCb:  func(addr uint16) uint8 { return 0 },
		WriteCb: func(addr uint16, _ uint8) { ac.writes[addr&0x1F]++ },
	}
	bus.MapDevice(addr, &ac.dev)
	return ac
}

func TestSideEffectAccesses(t *testing.T) {
	tests := []struct {
		name          string
		dump          string
		reads, writes int
	}{
		{"LDA abs", `0600: ad 02 20`, 1, 0},
		{"LDA abs,X no page cross", `0600: bd 00 20`, 1, 0},
		{"LDA abs,X page cross", `0600: bd f2 1f`, 1, 0},
		{"LDA (zp),Y page cross", "0600: b1 10\n0010: f2 1f", 1, 0},
		{"BIT abs", `0600: 2c 02 20`, 1, 0},
		{"STA abs,X", `0600: 9d 00 20`, 0, 1},
		{"STA (zp),Y", "0600: 91 10\n0010: 00 20", 0, 1},
		// Read-modify-write: unmodified value written back, then the result.
		{"INC abs", `0600: ee 02 20`, 1, 2},
		{"ASL abs,X", `0600: 1e 00 20`, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, _ := loadCPUWith(t, tt.dump)
			cpu.X, cpu.Y = 0x10, 0x10
			ac := newAccessCounter(cpu.Bus, 0x2000)

			_, err := cpu.Step()
			tcheck(t, err)

			var reads, writes int
			for i := range ac.reads {
				reads += ac.reads[i]
				writes += ac.writes[i]
			}
			if reads != tt.reads || writes != tt.writes {
				t.Errorf("got %d reads, %d writes, want %d and %d", reads, writes, tt.reads, tt.writes)
			}
		})
	}
}

func TestStackWrap(t *testing.T) {
	// PHA with SP=0 wraps to $01FF.
	cpu, ram := loadCPUWith(t, `0600: a9 77 48`)
	cpu.SP = 0x00
	runAndCheckState(t, cpu, 5, "SP", 0xFF)
	if ram[0x0100] != 0x77 {
		t.Errorf("$0100 = $%02X, want $77", ram[0x0100])
	}
}

func TestDisassemble(t *testing.T) {
	cpu, _ := loadCPUWith(t, `0600: a9 10 8d 02 20 b1 10 02`)
	ops := cpu.Disassemble(0x0600, 4)
	var got []string
	for _, op := range ops {
		got = append(got, op.String())
	}
	want := []string{
		"0600  A9 10     LDA #$10",
		"0602  8D 02 20  STA PpuStatus_2002",
		"0605  B1 10     LDA ($10),Y",
		"0607  02        ???",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("disassembly mismatch (-want +got):\n%s", diff)
	}
}
