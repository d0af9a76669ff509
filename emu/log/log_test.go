package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseModuleMask(t *testing.T) {
	tests := []struct {
		in      string
		want    ModuleMask
		wantErr bool
	}{
		{in: "no", want: 0},
		{in: "", want: 0},
		{in: "all", want: ModuleMaskAll},
		{in: "cpu", want: ModCPU.Mask()},
		{in: "cpu,ppu", want: ModCPU.Mask() | ModPPU.Mask()},
		{in: "cpu, mapper", want: ModCPU.Mask() | ModMapper.Mask()},
		{in: "cpu,bogus", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseModuleMask(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseModuleMask(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseModuleMask(%q) = %x, want %x", tt.in, got, tt.want)
			}
		})
	}
}

func TestEntryZNilSafe(t *testing.T) {
	var z *EntryZ
	z.Hex8("a", 1).Hex16("b", 2).String("c", "d").Bool("e", true).Error("f", errors.New("x")).End()
}

func TestEntryZOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	mod := NewModule("logtest")
	EnableDebugModules(mod.Mask())
	defer DisableDebugModules(mod.Mask())

	mod.DebugZ("hello").Hex16("pc", 0xC000).Uint8("n", 3).End()
	out := buf.String()
	for _, want := range []string{"hello", "pc=C000", "n=3", "_mod=logtest"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}

	buf.Reset()
	DisableDebugModules(mod.Mask())
	if mod.DebugZ("quiet") != nil {
		t.Errorf("DebugZ on disabled module returned non-nil entry")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
