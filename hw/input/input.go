// Package input defines the state of the standard NES controller and a text
// format for scripted input sequences.
package input

import (
	"strings"

	"github.com/go-faster/errors"
)

// A Button is a button of a standard NES controller.
type Button uint8

const (
	PadA Button = iota
	PadB
	PadSelect
	PadStart
	PadUp
	PadDown
	PadLeft
	PadRight

	PadButtonCount
)

var buttonNames = [PadButtonCount]string{
	"A", "B",
	"Select", "Start",
	"Up", "Down", "Left", "Right",
}

func (b Button) String() string {
	if b >= PadButtonCount {
		return "?"
	}
	return buttonNames[b]
}

// Buttons is the set of pressed buttons. Bit i is Button i, which is also
// the order in which the controller shift register reports them.
type Buttons uint8

// Pressed reports whether b is pressed.
func (bs Buttons) Pressed(b Button) bool {
	return bs&(1<<b) != 0
}

// Press returns bs with b pressed.
func (bs Buttons) Press(b Button) Buttons {
	return bs | 1<<b
}

// String returns the pressed buttons joined by '+', for example "A+Start".
// No pressed button gives "-".
func (bs Buttons) String() string {
	if bs == 0 {
		return "-"
	}
	var sb strings.Builder
	for b := range PadButtonCount {
		if !bs.Pressed(b) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(buttonNames[b])
	}
	return sb.String()
}

func (bs Buttons) MarshalText() ([]byte, error) {
	return []byte(bs.String()), nil
}

func (bs *Buttons) UnmarshalText(text []byte) error {
	v, err := ParseButtons(string(text))
	if err != nil {
		return err
	}
	*bs = v
	return nil
}

// ErrUnknownButton is returned when parsing an unknown button name.
var ErrUnknownButton = errors.New("unknown button")

// ParseButtons parses the String format. Names are case insensitive.
func ParseButtons(s string) (Buttons, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, nil
	}

	var bs Buttons
	for name := range strings.SplitSeq(s, "+") {
		name = strings.TrimSpace(name)
		found := false
		for b := range PadButtonCount {
			if strings.EqualFold(name, buttonNames[b]) {
				bs = bs.Press(b)
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Wrapf(ErrUnknownButton, "%q", name)
		}
	}
	return bs, nil
}
