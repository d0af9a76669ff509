package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestButtonsString(t *testing.T) {
	tests := []struct {
		bs   Buttons
		want string
	}{
		{0, "-"},
		{Buttons(0).Press(PadA), "A"},
		{Buttons(0).Press(PadStart).Press(PadA), "A+Start"},
		{0xFF, "A+B+Select+Start+Up+Down+Left+Right"},
	}
	for _, tt := range tests {
		if got := tt.bs.String(); got != tt.want {
			t.Errorf("Buttons(%08b).String() = %q, want %q", uint8(tt.bs), got, tt.want)
		}

		parsed, err := ParseButtons(tt.want)
		if err != nil {
			t.Fatal(err)
		}
		if parsed != tt.bs {
			t.Errorf("ParseButtons(%q) = %08b, want %08b", tt.want, parsed, tt.bs)
		}
	}
}

func TestParseButtons(t *testing.T) {
	bs, err := ParseButtons(" start + a ")
	if err != nil {
		t.Fatal(err)
	}
	if !bs.Pressed(PadStart) || !bs.Pressed(PadA) || bs.Pressed(PadB) {
		t.Errorf("ParseButtons() = %s", bs)
	}

	if _, err := ParseButtons("A+Turbo"); !errors.Is(err, ErrUnknownButton) {
		t.Errorf("ParseButtons(A+Turbo) error = %v, want ErrUnknownButton", err)
	}
}

func TestScript(t *testing.T) {
	const text = `
# press start after boot
120 Start
10 - A
125 -
300 Right+A Left
`
	s, err := ParseScript(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}

	a := Buttons(0).Press(PadA)
	start := Buttons(0).Press(PadStart)
	tests := []struct {
		frame int64
		want  [2]Buttons
	}{
		{0, [2]Buttons{}},
		{10, [2]Buttons{0, a}},
		{119, [2]Buttons{0, a}},
		{120, [2]Buttons{start, 0}},
		{200, [2]Buttons{}},
		{1000, [2]Buttons{a.Press(PadRight), Buttons(0).Press(PadLeft)}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, s.At(tt.frame)); diff != "" {
			t.Errorf("At(%d) mismatch (-want +got):\n%s", tt.frame, diff)
		}
	}
}

func TestScriptErrors(t *testing.T) {
	for _, text := range []string{
		"abc A",
		"10",
		"10 A B C",
		"10 Turbo",
		"-1 A",
	} {
		if _, err := ParseScript(strings.NewReader(text)); err == nil {
			t.Errorf("ParseScript(%q) succeeded", text)
		}
	}
}
