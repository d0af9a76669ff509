package emu

import (
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"nescore/ines"
)

func tcheck(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatal(err)
	}
}

// Interrupt vectors default to these handlers. The reset handler is at
// $8000. Both default handlers just return.
const (
	testNMIHandler = 0xFF00
	testIRQHandler = 0xFF10
)

// buildPRG returns 32KB of PRG ROM holding the program described by dump,
// one line per memory area:
//
//	8000: a9 80 8d 00 20
//
// '#' starts a comment.
func buildPRG(tb testing.TB, dump string) []byte {
	tb.Helper()

	prg := make([]byte, 0x8000)
	prg[testNMIHandler-0x8000] = 0x40 // RTI
	prg[testIRQHandler-0x8000] = 0x40 // RTI
	setVector(prg, 0xFFFA, testNMIHandler)
	setVector(prg, 0xFFFC, 0x8000)
	setVector(prg, 0xFFFE, testIRQHandler)

	for lineno, line := range strings.Split(dump, "\n") {
		line, _, _ = strings.Cut(line, "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		saddr, sbytes, ok := strings.Cut(line, ":")
		if !ok {
			tb.Fatalf("line %d: missing ':' in %q", lineno+1, line)
		}
		addr, err := strconv.ParseUint(strings.TrimSpace(saddr), 16, 16)
		if err != nil || addr < 0x8000 {
			tb.Fatalf("line %d: bad address %q", lineno+1, saddr)
		}
		buf, err := hex.DecodeString(strings.Join(strings.Fields(sbytes), ""))
		if err != nil {
			tb.Fatalf("line %d: %v", lineno+1, err)
		}
		copy(prg[addr-0x8000:], buf)
	}
	return prg
}

func setVector(prg []byte, vector, addr uint16) {
	prg[vector-0x8000] = uint8(addr)
	prg[vector-0x8000+1] = uint8(addr >> 8)
}

// testROM builds an NROM cartridge with CHR RAM running dump.
func testROM(tb testing.TB, dump string) *ines.Rom {
	tb.Helper()
	rom, err := ines.Decode(ines.Encode(0, ines.VertMirroring, buildPRG(tb, dump), nil))
	tcheck(tb, err)
	return rom
}

// testNES powers up a console running dump.
func testNES(tb testing.TB, dump string) *NES {
	tb.Helper()
	nes, err := PowerUp(testROM(tb, dump))
	tcheck(tb, err)
	return nes
}

func runFrames(tb testing.TB, nes *NES, n int) {
	tb.Helper()
	for range n {
		tcheck(tb, nes.RunFrame())
	}
}
