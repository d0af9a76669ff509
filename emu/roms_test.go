package emu

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"nescore/emu/log"
	"nescore/hw"
	"nescore/hw/hwdefs"
	"nescore/hw/snapshot"
	"nescore/ines"
	"nescore/tests"
)

func powerUpFile(t *testing.T, path string) *NES {
	t.Helper()
	rom, err := ines.Open(path)
	tcheck(t, err)
	nes, err := PowerUp(rom)
	tcheck(t, err)
	return nes
}

var traceRx = regexp.MustCompile(`^([0-9A-F]{4}) .*A:([0-9A-F]{2}) X:([0-9A-F]{2}) Y:([0-9A-F]{2}) P:([0-9A-F]{2}) SP:([0-9A-F]{2}).* CYC:(\d+)`)

// traceState extracts PC, registers and cycle count from a nestest.log
// formatted line.
func traceState(line string) (string, bool) {
	m := traceRx.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("PC:%s A:%s X:%s Y:%s P:%s SP:%s CYC:%s", m[1], m[2], m[3], m[4], m[5], m[6], m[7]), true
}

func TestNestest(t *testing.T) {
	log.SetOutput(io.Discard)

	dir := filepath.Join(tests.RomsPath(t), "other")
	nes := powerUpFile(t, filepath.Join(dir, "nestest.nes"))

	// nestest.nes has an 'automation' mode. To enable it, PC must be set to
	// C000 (instead of C004 for graphic mode).
	nes.CPU.PC = 0xC000
	var trace bytes.Buffer
	nes.SetTraceOutput(&trace)

	// Official opcodes are tested first, the run stops at the first
	// unofficial one.
	var err error
	for range 60 {
		if err = nes.RunFrame(); err != nil {
			break
		}
	}
	var ierr *hw.IllegalOpcodeError
	if !errors.As(err, &ierr) {
		t.Fatalf("nestest should stop at an unofficial opcode, err = %v", err)
	}
	if res := nes.Peek(0x02); res != 0 {
		t.Fatalf("nestest official opcodes failed with result $%02X (see nestest.txt)", res)
	}

	want, err := os.Open(filepath.Join(dir, "nestest.log"))
	tcheck(t, err)
	defer want.Close()

	got := bufio.NewScanner(&trace)
	ref := bufio.NewScanner(want)
	lineno := 0
	for got.Scan() {
		lineno++
		if !ref.Scan() {
			t.Fatalf("line %d: trace is longer than nestest.log", lineno)
		}
		gs, ok := traceState(got.Text())
		if !ok {
			t.Fatalf("line %d: can't parse trace line %q", lineno, got.Text())
		}
		ws, _ := traceState(ref.Text())
		if gs != ws {
			t.Fatalf("line %d: trace mismatch\ngot  %s\nwant %s", lineno, gs, ws)
		}
	}
	if lineno < 5000 {
		t.Errorf("only %d instructions traced", lineno)
	}
}

func TestInstructionsV5(t *testing.T) {
	dir := filepath.Join(tests.RomsPath(t), "instr_test-v5", "rom_singles")
	files := []string{
		"01-basics.nes",
		"02-implied.nes",
		// 03-immediate.nes, uses unofficial 0xAB (LXA)
		"04-zero_page.nes",
		"05-zp_xy.nes",
		"06-absolute.nes",
		// 07-abs_xy.nes, uses unofficial 0x9C (SHY)
		"08-ind_x.nes",
		"09-ind_y.nes",
		"10-branches.nes",
		"11-stack.nes",
		"12-jmp_jsr.nes",
		"13-rts.nes",
		"14-rti.nes",
		"15-brk.nes",
		"16-special.nes",
	}

	log.SetOutput(io.Discard)
	for _, path := range files {
		t.Run(path, runTestRom(filepath.Join(dir, path)))
	}
}

func TestOAMRead(t *testing.T) {
	t.Run("read", runTestRom(filepath.Join(tests.RomsPath(t), "oam_read", "oam_read.nes")))
}

func runTestRom(path string) func(t *testing.T) {
	// The test status is written to $6000. $80 means the test is running, $81
	// means the test needs the reset button pressed, but delayed by at least
	// 100 msec from now. $00-$7F means the test has completed and given that
	// result code.
	//
	// All text output is written starting at $6004, with a zero-byte
	// terminator at the end.
	//
	// $DE $B0 $61 is written to $6001-$6003 once the data at $6000 is valid.
	return func(t *testing.T) {
		if !testing.Verbose() {
			log.SetOutput(io.Discard)
		}
		nes := powerUpFile(t, path)

		magic := []byte{0xde, 0xb0, 0x61}
		running := false
		resetAt := -1

		const maxFrames = 60 * 60
		for frame := 0; ; frame++ {
			if frame == maxFrames {
				t.Fatalf("test still running after %d frames", maxFrames)
			}
			tcheck(t, nes.RunFrame())

			prgram := nes.Region(snapshot.RegionPRGRAM)
			if !bytes.Equal(prgram[1:4], magic) {
				if running {
					t.Fatalf("corrupted memory")
				}
				continue
			}
			running = true

			switch result := prgram[0]; {
			case result <= 0x7F:
				if result != 0 {
					t.Fatalf("test failed:\ncode $%02X\ntext %s", result, cString(prgram[4:]))
				}
				return
			case result == 0x81 && resetAt < 0:
				// 6 frames is about 100ms.
				resetAt = frame + 6
			}
			if frame == resetAt {
				nes.Reset(hwdefs.SoftReset)
				resetAt = -1
			}
		}
	}
}

func cString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

func TestNametableMirroring(t *testing.T) {
	nes := powerUpFile(t, filepath.Join(tests.RomsPath(t), "other", "snow.nes"))
	if nes.Rom.Mirroring() != ines.HorzMirroring {
		t.Errorf("incorrect nt mirroring %s", nes.Rom.Mirroring())
	}

	nes.PPU.Bus.Write8(0x2000, 'A')
	nes.PPU.Bus.Write8(0x2800, 'B')

	addrs := []uint16{
		0x2000, // A
		0x2400, // A
		0x2800, // B
		0x2C00, // B
		0x3000, // A
		0x3400, // A
		0x3800, // B
		0x3C00, // B (up to $3EFF)
	}
	var nts []byte
	for _, a := range addrs {
		nts = append(nts, nes.PPU.Bus.Read8(a))
	}
	if string(nts) != "AABBAABB" {
		t.Errorf("mirrors = %s", nts)
	}
}
