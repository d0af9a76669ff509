package ines

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/hw/hwdefs"
)

type romInfo struct {
	Mapper     uint16
	SubMapper  uint8
	Mirroring  NTMirroring
	PRG, CHR   int
	PRGRAM     int
	CHRRAM     int
	Battery    bool
	HasTrainer bool
	NES20      bool
}

func infoOf(rom *Rom) romInfo {
	return romInfo{
		Mapper:     rom.Mapper(),
		SubMapper:  rom.SubMapper(),
		Mirroring:  rom.Mirroring(),
		PRG:        len(rom.PRGROM),
		CHR:        len(rom.CHRROM),
		PRGRAM:     rom.PRGRAMSize(),
		CHRRAM:     rom.CHRRAMSize(),
		Battery:    rom.HasPersistent(),
		HasTrainer: rom.HasTrainer(),
		NES20:      rom.IsNES20(),
	}
}

func TestDecode(t *testing.T) {
	prg := make([]byte, 2*prgBankSize)
	chr := make([]byte, chrBankSize)

	withTrainer := Encode(1, VertMirroring, prg, chr)
	withTrainer[6] |= 0x04 | 0x02
	withTrainer = append(withTrainer[:16:16], append(make([]byte, trainerSize), withTrainer[16:]...)...)

	nes2 := Encode(4, HorzMirroring, prg, nil)
	nes2[7] |= 0x08
	nes2[8] = 0x31 // submapper 3, mapper high bits 1
	nes2[10] = 0x07

	dirty := Encode(2, HorzMirroring, prg, nil)
	dirty[7] = 0x40
	copy(dirty[12:], "Disk")

	tests := []struct {
		name string
		buf  []byte
		want romInfo
	}{
		{
			name: "nrom",
			buf:  Encode(0, HorzMirroring, prg[:prgBankSize], chr),
			want: romInfo{Mirroring: HorzMirroring, PRG: prgBankSize, CHR: chrBankSize, PRGRAM: 0x2000},
		},
		{
			name: "mmc1 trainer",
			buf:  withTrainer,
			want: romInfo{Mapper: 1, Mirroring: VertMirroring, PRG: 2 * prgBankSize, CHR: chrBankSize, PRGRAM: 0x2000, Battery: true, HasTrainer: true},
		},
		{
			name: "four screen",
			buf:  Encode(66, FourScreen, prg, chr),
			want: romInfo{Mapper: 66, Mirroring: FourScreen, PRG: 2 * prgBankSize, CHR: chrBankSize, PRGRAM: 0x2000},
		},
		{
			name: "nes2",
			buf:  nes2,
			want: romInfo{Mapper: 0x104, SubMapper: 3, Mirroring: HorzMirroring, PRG: 2 * prgBankSize, PRGRAM: 64 << 7, CHRRAM: chrBankSize, NES20: true},
		},
		{
			name: "dirty header",
			buf:  dirty,
			want: romInfo{Mapper: 2, Mirroring: HorzMirroring, PRG: 2 * prgBankSize, PRGRAM: 0x2000, CHRRAM: chrBankSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom, err := Decode(tt.buf)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, infoOf(rom)); diff != "" {
				t.Errorf("rom info mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	prg := make([]byte, prgBankSize)
	good := Encode(0, HorzMirroring, prg, make([]byte, chrBankSize))

	badMagic := append([]byte{}, good...)
	badMagic[3] = 0

	noPRG := append([]byte{}, good...)
	noPRG[4] = 0

	trainer := append([]byte{}, good[:16]...)
	trainer[6] |= 0x04

	tests := []struct {
		name string
		buf  []byte
		msg  string
	}{
		{"empty", nil, "header too small, needs 16 bytes, got 0"},
		{"short header", good[:10], "got 10"},
		{"bad magic", badMagic, `invalid magic number "NES\x00"`},
		{"no prg", noPRG, "no PRG ROM"},
		{"truncated prg", good[:16+prgBankSize-1], "incomplete PRG section: 16383 bytes, want 16384"},
		{"truncated chr", good[:len(good)-1], "incomplete CHR section: 8191 bytes, want 8192"},
		{"truncated trainer", trainer, "incomplete TRAINER section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.buf)
			if !errors.Is(err, hwdefs.ErrMalformedCartridge) {
				t.Fatalf("Decode() error = %v, want ErrMalformedCartridge", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("Decode() error = %q, want it to contain %q", err, tt.msg)
			}
		})
	}
}

func TestMirroringString(t *testing.T) {
	if got := VertMirroring.String(); got != "VertMirroring" {
		t.Errorf("VertMirroring.String() = %q", got)
	}
	if got := NTMirroring(9).String(); got != "NTMirroring(9)" {
		t.Errorf("NTMirroring(9).String() = %q", got)
	}
}
