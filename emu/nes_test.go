package emu

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/emu/debugger"
	"nescore/hw"
	"nescore/hw/hwdefs"
	"nescore/hw/input"
	"nescore/hw/snapshot"
	"nescore/ines"
)

// Idle loop with NMI enabled; the NMI handler counts frames at $10.
const nmiCounter = `
8000: a9 80       # LDA #$80
8002: 8d 00 20    # STA $2000
8005: 4c 05 80    # JMP $8005
ff00: e6 10 40    # INC $10; RTI
`

func TestPowerUpUnsupportedMapper(t *testing.T) {
	rom, err := ines.Decode(ines.Encode(5, ines.HorzMirroring, make([]byte, 0x8000), make([]byte, 0x2000)))
	tcheck(t, err)

	_, err = PowerUp(rom)
	if !errors.Is(err, hwdefs.ErrUnsupportedMapper) {
		t.Fatalf("PowerUp err = %v, want ErrUnsupportedMapper", err)
	}
}

func TestPowerUpState(t *testing.T) {
	nes := testNES(t, `8000: 4c 00 80`)

	s := nes.Snapshot()
	if s.CPU.PC != 0x8000 || s.CPU.SP != 0xFD || s.CPU.Cycles != 7 {
		t.Errorf("cpu after power up: pc=$%04X sp=$%02X cycles=%d, want pc=$8000 sp=$FD cycles=7",
			s.CPU.PC, s.CPU.SP, s.CPU.Cycles)
	}
	if s.PPU.Scanline != 0 || s.PPU.Cycle != 21 {
		t.Errorf("ppu at %d,%d after power up, want 0,21", s.PPU.Scanline, s.PPU.Cycle)
	}
	if s.Mapper != "NROM" {
		t.Errorf("mapper = %q, want NROM", s.Mapper)
	}
}

func TestNMIEveryFrame(t *testing.T) {
	nes := testNES(t, nmiCounter)
	runFrames(t, nes, 5)

	// RunFrame returns as soon as vblank starts, the NMI of the last frame
	// hasn't been serviced yet.
	if got := nes.Peek(0x10); got != 4 {
		t.Errorf("NMI count = %d after 5 frames, want 4", got)
	}
	if !nes.CPU.NMIPending() {
		t.Errorf("NMI of the last frame should be pending")
	}
}

func TestNoNMIWhenDisabled(t *testing.T) {
	nes := testNES(t, `
8000: 4c 00 80
ff00: e6 10 40
`)
	runFrames(t, nes, 5)
	if got := nes.Peek(0x10); got != 0 {
		t.Errorf("NMI count = %d with NMI disabled, want 0", got)
	}
}

func TestFrameDuration(t *testing.T) {
	nes := testNES(t, `8000: 4c 00 80`)
	runFrames(t, nes, 1)

	// With rendering disabled, all frames are 341*262 dots long.
	start := nes.CPU.Cycles
	const nframes = 30
	runFrames(t, nes, nframes)

	want := int64(nframes * hw.NumScanlines * hw.NumCycles / 3)
	got := nes.CPU.Cycles - start
	// Frames end in the middle of an instruction.
	if d := got - want; d < -3 || d > 3 {
		t.Errorf("%d frames took %d cpu cycles, want %d±3", nframes, got, want)
	}
}

func TestVBlankStatusIdempotentPeek(t *testing.T) {
	nes := testNES(t, `8000: 4c 00 80`)
	runFrames(t, nes, 1)

	for range 3 {
		if got := nes.Peek(0x2002); got&0x80 == 0 {
			t.Fatalf("peek $2002 = $%02X, want vblank set", got)
		}
		if s := nes.Snapshot(); s.PPU.PPUSTATUS&0x80 == 0 {
			t.Fatalf("snapshot status = $%02X, want vblank set", s.PPU.PPUSTATUS)
		}
	}

	// A real read clears the flag.
	if got := nes.Bus.Read8(0x2002); got&0x80 == 0 {
		t.Fatalf("read $2002 = $%02X, want vblank set", got)
	}
	if got := nes.Peek(0x2002); got&0x80 != 0 {
		t.Errorf("vblank still set after a read of $2002")
	}
}

func TestReset(t *testing.T) {
	nes := testNES(t, `
8000: a9 42 8d 00 60   # LDA #$42; STA $6000
8005: a9 55 8d 00 02   # LDA #$55; STA $0200
800a: 4c 0a 80
`)
	runFrames(t, nes, 1)
	if nes.Peek(0x6000) != 0x42 || nes.Peek(0x0200) != 0x55 {
		t.Fatalf("program didn't run")
	}

	tcheck(t, nes.Poke(snapshot.RegionPRGRAM, 0, 0x99))
	sp := nes.CPU.SP

	nes.Reset(hwdefs.SoftReset)
	if nes.CPU.PC != 0x8000 {
		t.Errorf("pc = $%04X after soft reset, want $8000", nes.CPU.PC)
	}
	if nes.CPU.SP != sp-3 {
		t.Errorf("sp = $%02X after soft reset, want $%02X", nes.CPU.SP, sp-3)
	}
	if nes.Peek(0x6000) != 0x99 || nes.Peek(0x0200) != 0x55 {
		t.Errorf("soft reset lost memory: prgram=$%02X ram=$%02X", nes.Peek(0x6000), nes.Peek(0x0200))
	}

	nes.Reset(hwdefs.HardReset)
	if nes.Peek(0x6000) != 0x99 {
		t.Errorf("hard reset lost cartridge RAM")
	}
	if nes.Peek(0x0200) != 0 {
		t.Errorf("ram = $%02X after hard reset, want 0", nes.Peek(0x0200))
	}
	if nes.CPU.SP != 0xFD || nes.CPU.Cycles != 7 {
		t.Errorf("cpu after hard reset: sp=$%02X cycles=%d", nes.CPU.SP, nes.CPU.Cycles)
	}
}

func TestIllegalOpcode(t *testing.T) {
	nes := testNES(t, `
8000: ea ea      # NOP; NOP
8002: 02         # KIL
`)
	err := nes.RunFrame()

	var ierr *hw.IllegalOpcodeError
	if !errors.As(err, &ierr) || !errors.Is(err, hwdefs.ErrIllegalOpcode) {
		t.Fatalf("RunFrame err = %v, want an *IllegalOpcodeError", err)
	}
	if ierr.PC != 0x8002 || ierr.Opcode != 0x02 {
		t.Errorf("illegal opcode $%02X at $%04X, want $02 at $8002", ierr.Opcode, ierr.PC)
	}

	// The CPU stays halted until reset.
	if _, err := nes.Step(); !errors.Is(err, hwdefs.ErrIllegalOpcode) {
		t.Errorf("Step after halt: err = %v", err)
	}
	nes.Reset(hwdefs.SoftReset)
	if _, err := nes.Step(); err != nil {
		t.Errorf("Step after reset: %v", err)
	}
}

// Reads pad 1 into $10, one bit per read.
const readPad = `
8000: a9 01 8d 16 40     # LDA #1; STA $4016
8005: a9 00 8d 16 40     # LDA #0; STA $4016
800a: a2 00              # LDX #0
800c: ad 16 40           # LDA $4016
800f: 4a                 # LSR
8010: 66 10              # ROR $10
8012: e8 e0 08 d0 f5     # INX; CPX #8; BNE $800C
8017: a5 10 85 11        # LDA $10; STA $11
801b: 4c 00 80
`

// The dummy write of an INC on a ROM byte holding $FF resets the MMC1 shift
// register, and the following write, one cycle later, is ignored.
const mmc1Reset = `
c000: ee f0 ff    # INC $FFF0
c003: a9 01       # LDA #1
c005: 8d 00 e0    # STA $E000 (PRG bank 1, shifted in lsb first)
c008: 4a          # LSR A
c009: 8d 00 e0    # STA $E000
c00c: 8d 00 e0    # STA $E000
c00f: 8d 00 e0    # STA $E000
c012: 8d 00 e0    # STA $E000
c015: ad 00 81    # LDA $8100
c018: 85 10       # STA $10
c01a: 4c 1a c0    # JMP $C01A
fff0: ff
`

func TestMMC1ReadModifyWriteReset(t *testing.T) {
	// 4 PRG banks: $8100 holds $AA in bank 0 and $BB in bank 1, the code
	// sits in the last bank, fixed at $C000.
	prg := make([]byte, 0x8000, 0x10000)
	prg[0x0100] = 0xAA
	prg[0x4100] = 0xBB
	last := buildPRG(t, mmc1Reset)
	setVector(last, 0xFFFC, 0xC000)
	prg = append(prg, last...)

	rom, err := ines.Decode(ines.Encode(1, ines.HorzMirroring, prg, nil))
	tcheck(t, err)
	nes, err := PowerUp(rom)
	tcheck(t, err)
	runFrames(t, nes, 1)

	if got := nes.Peek(0x10); got != 0xBB {
		t.Errorf("$8100 = $%02X, want $BB (PRG bank 1)", got)
	}
}

func TestControllerThroughBus(t *testing.T) {
	nes := testNES(t, readPad)

	b := input.Buttons(0).Press(input.PadA).Press(input.PadStart).Press(input.PadLeft)
	nes.Controller(0).SetButtons(b)
	runFrames(t, nes, 2)

	// ROR shifts the first button read (A) down to bit 0.
	if got := input.Buttons(nes.Peek(0x11)); got != b {
		t.Errorf("program read %v, want %v", got, b)
	}
}

func TestSnapshot(t *testing.T) {
	nes := testNES(t, nmiCounter)
	nes.Controller(1).SetButtons(input.Buttons(0).Press(input.PadB))
	runFrames(t, nes, 2)

	s := nes.Snapshot()
	want := snapshot.CPU{
		PC:         nes.CPU.PC,
		SP:         nes.CPU.SP,
		P:          uint8(nes.CPU.P),
		A:          nes.CPU.A,
		X:          nes.CPU.X,
		Y:          nes.CPU.Y,
		Cycles:     nes.CPU.Cycles,
		NMIPending: true,
	}
	if diff := cmp.Diff(want, s.CPU); diff != "" {
		t.Errorf("cpu snapshot mismatch (-want +got):\n%s", diff)
	}
	if s.PPU.Scanline != 241 || s.PPU.Frame != 2 || s.PPU.PPUCTRL != 0x80 {
		t.Errorf("ppu snapshot: scanline=%d frame=%d ctrl=$%02X", s.PPU.Scanline, s.PPU.Frame, s.PPU.PPUCTRL)
	}
	if s.RAM[0x10] != 1 {
		t.Errorf("ram[$10] = %d, want 1", s.RAM[0x10])
	}
	if s.Pads != [2]uint8{0, 0x02} {
		t.Errorf("pads = %v", s.Pads)
	}

	// Snapshots are copies.
	s.RAM[0x10] = 0xFF
	s.PPU.OAM[0] = 0xFF
	if nes.Peek(0x10) != 1 || nes.PPU.OAM[0] == 0xFF {
		t.Errorf("snapshot aliases console memory")
	}
}

func TestRegions(t *testing.T) {
	nes := testNES(t, `8000: 4c 00 80`)

	sizes := map[snapshot.Region]int{
		snapshot.RegionRAM:     0x800,
		snapshot.RegionVRAM:    0x1000,
		snapshot.RegionOAM:     0x100,
		snapshot.RegionPalette: 0x20,
		snapshot.RegionPRGROM:  0x8000,
		snapshot.RegionPRGRAM:  0x2000,
		snapshot.RegionCHR:     0x2000,
	}
	for r := range snapshot.NumRegions {
		if got := len(nes.Region(r)); got != sizes[r] {
			t.Errorf("region %s: %d bytes, want %d", r, got, sizes[r])
		}
	}

	tcheck(t, nes.Poke(snapshot.RegionRAM, 0x123, 0xAB))
	// RAM is mirrored every 2KB.
	if got := nes.Peek(0x1923); got != 0xAB {
		t.Errorf("peek $1923 = $%02X, want $AB", got)
	}
	if got := nes.Region(snapshot.RegionPRGROM)[0]; got != 0x4C {
		t.Errorf("prg rom[0] = $%02X, want $4C", got)
	}

	err := nes.Poke(snapshot.RegionPalette, 0x20, 0)
	if !errors.Is(err, hwdefs.ErrOutOfRangeAccess) {
		t.Errorf("out of range poke: err = %v", err)
	}
}

func TestCheats(t *testing.T) {
	nes := testNES(t, `
8000: ad 00 90 85 10   # LDA $9000; STA $10
8005: ad 01 90 85 11   # LDA $9001; STA $11
800a: 4c 00 80
9000: 11 22
`)
	tcheck(t, nes.AddCheat("9000:77"))
	tcheck(t, nes.AddCheat("0020:05"))

	tcheck(t, nes.Poke(snapshot.RegionRAM, 0x20, 0x09))
	runFrames(t, nes, 1)

	if got := nes.Peek(0x10); got != 0x77 {
		t.Errorf("patched read = $%02X, want $77", got)
	}
	if got := nes.Peek(0x11); got != 0x22 {
		t.Errorf("unpatched read = $%02X, want $22", got)
	}
	if got := nes.Peek(0x20); got != 0x05 {
		t.Errorf("frozen ram = $%02X, want $05", got)
	}
	if got := len(nes.Cheats()); got != 2 {
		t.Errorf("%d cheats, want 2", got)
	}

	if err := nes.AddCheat("2000:80"); !errors.Is(err, debugger.ErrBadCheat) {
		t.Errorf("cheat on PPU registers: err = %v", err)
	}

	nes.ClearCheats()
	runFrames(t, nes, 1)
	if got := nes.Peek(0x10); got != 0x11 {
		t.Errorf("read = $%02X after ClearCheats, want $11", got)
	}
}

func TestDebuggerBreak(t *testing.T) {
	nes := testNES(t, `
8000: a9 01 85 10     # LDA #1; STA $10
8004: 4c 00 80
`)
	dbg := nes.Debugger()
	dbg.Breakpoints.Set(0x8002)

	err := nes.RunFrame()
	var berr *debugger.BreakError
	if !errors.As(err, &berr) || berr.Reason != debugger.ReasonBreakpoint {
		t.Fatalf("RunFrame err = %v, want a breakpoint", err)
	}
	if nes.CPU.PC != 0x8002 || nes.Peek(0x10) != 0 {
		t.Fatalf("stopped at $%04X with $10=%d, want $8002 before the store", nes.CPU.PC, nes.Peek(0x10))
	}

	// Resume: the breakpoint is hit again on the next loop iteration.
	err = nes.RunFrame()
	if !errors.As(err, &berr) || nes.Peek(0x10) != 1 {
		t.Fatalf("RunFrame err = %v, $10 = %d", err, nes.Peek(0x10))
	}

	dbg.Breakpoints.Clear(0x8002)
	dbg.WriteWatch.Set(0x0010)
	err = nes.RunFrame()
	if !errors.As(err, &berr) || berr.Reason != debugger.ReasonWrite || berr.PC != 0x8002 {
		t.Fatalf("RunFrame err = %v, want a write watchpoint at $8002", err)
	}
}
