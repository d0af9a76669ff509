package snapshot

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	want := NES{
		Version: Version,
		Mapper:  "MMC1",
		CPU:     CPU{PC: 0xC000, SP: 0xFD, P: 0x24, A: 1, X: 2, Y: 3, Cycles: 1 << 40, IRQLines: 2},
		PPU:     PPU{VRAMAddr: 0x2345, Scanline: 241, Cycle: 1, Frame: 12, WriteLatch: true},
		Pads:    [2]uint8{0x09, 0},
	}
	want.RAM[0x7FF] = 0xAA
	want.PPU.VRAM[0xFFF] = 0x55
	want.PPU.Palette[0x1F] = 0x3F

	buf, err := want.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(buf), `"scanline":241`) {
		t.Errorf("unexpected encoding: %s", buf)
	}

	var got NES
	if err := got.UnmarshalJSON(buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBadMemory(t *testing.T) {
	var s NES
	err := s.UnmarshalJSON([]byte(`{"ram":"AAAA"}`))
	if err == nil || !strings.Contains(err.Error(), "ram") {
		t.Errorf("got err %v, want a ram size error", err)
	}
}

func TestParseRegion(t *testing.T) {
	for r := range NumRegions {
		got, err := ParseRegion(strings.ToLower(r.String()))
		if err != nil {
			t.Fatal(err)
		}
		if got != r {
			t.Errorf("ParseRegion(%q) = %v, want %v", r.String(), got, r)
		}
	}

	if _, err := ParseRegion("sram"); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("got err %v, want ErrUnknownRegion", err)
	}
	if got := len(Regions()); got != int(NumRegions) {
		t.Errorf("%d region names, want %d", got, NumRegions)
	}
}
