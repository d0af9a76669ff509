package debugger

import (
	"errors"
	"testing"
)

func TestParseCheat(t *testing.T) {
	tests := []struct {
		code string
		want Cheat
	}{
		{
			// Super Mario Bros. infinite lives.
			code: "SXIOPO",
			want: Cheat{Code: "SXIOPO", Addr: 0x91D9, Val: 0xAD},
		},
		{
			code: "sxi-opo",
			want: Cheat{Code: "sxi-opo", Addr: 0x91D9, Val: 0xAD},
		},
		{
			code: "AAAAAAAA",
			want: Cheat{Code: "AAAAAAAA", Addr: 0x8000, HasCompare: true},
		},
		{
			code: "SXIOPOAA",
			want: Cheat{Code: "SXIOPOAA", Addr: 0x91D9, Val: 0xA5, Compare: 0x08, HasCompare: true},
		},
		{
			code: "0075:09",
			want: Cheat{Code: "0075:09", Addr: 0x0075, Val: 0x09},
		},
		{
			code: "$C123:$FF",
			want: Cheat{Code: "$C123:$FF", Addr: 0xC123, Val: 0xFF},
		},
	}
	for _, tt := range tests {
		got, err := ParseCheat(tt.code)
		if err != nil {
			t.Errorf("ParseCheat(%q): %v", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCheat(%q) = %+v, want %+v", tt.code, got, tt.want)
		}
	}
}

func TestParseCheatErrors(t *testing.T) {
	for _, code := range []string{"", "SXIOP", "SXIOPOA", "SXIOPB", "12345:00", "0075:100", "zz:01"} {
		if _, err := ParseCheat(code); !errors.Is(err, ErrBadCheat) {
			t.Errorf("ParseCheat(%q) = %v, want ErrBadCheat", code, err)
		}
	}
}

func TestCheatApply(t *testing.T) {
	c := Cheat{Addr: 0x8000, Val: 0x42}
	if got := c.Apply(0x10); got != 0x42 {
		t.Errorf("Apply = $%02X, want $42", got)
	}

	c = Cheat{Addr: 0x8000, Val: 0x42, Compare: 0x10, HasCompare: true}
	if got := c.Apply(0x10); got != 0x42 {
		t.Errorf("Apply(compare match) = $%02X, want $42", got)
	}
	if got := c.Apply(0x11); got != 0x11 {
		t.Errorf("Apply(compare mismatch) = $%02X, want $11", got)
	}

	if !c.ROM() || (Cheat{Addr: 0x0075}).ROM() {
		t.Errorf("ROM() misclassifies addresses")
	}
	if got := c.String(); got != "$8000=$42?$10" {
		t.Errorf("String() = %q", got)
	}
}
