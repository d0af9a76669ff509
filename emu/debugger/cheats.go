package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// ErrBadCheat is returned for codes that are neither Game Genie codes nor raw
// AAAA:VV codes.
var ErrBadCheat = errors.New("invalid cheat code")

// A Cheat replaces the value read at Addr. Codes for cartridge space
// ($8000-$FFFF) patch PRG reads, the patch only applies if the ROM holds
// Compare when HasCompare is set. Codes for RAM freeze the value.
type Cheat struct {
	Code       string
	Addr       uint16
	Val        uint8
	Compare    uint8
	HasCompare bool
}

func (c Cheat) String() string {
	s := fmt.Sprintf("$%04X=$%02X", c.Addr, c.Val)
	if c.HasCompare {
		s += fmt.Sprintf("?$%02X", c.Compare)
	}
	return s
}

// ROM reports whether the cheat patches cartridge space.
func (c Cheat) ROM() bool { return c.Addr >= 0x8000 }

// Apply returns the value seen by the CPU when reading orig at c.Addr.
func (c Cheat) Apply(orig uint8) uint8 {
	if c.HasCompare && orig != c.Compare {
		return orig
	}
	return c.Val
}

// ParseCheat decodes a 6 or 8 letters Game Genie code (dashes are ignored)
// or a raw code in the AAAA:VV hexadecimal form.
func ParseCheat(code string) (Cheat, error) {
	code = strings.TrimSpace(code)
	if strings.Contains(code, ":") {
		return parseRaw(code)
	}
	return DecodeGameGenie(code)
}

func parseRaw(code string) (Cheat, error) {
	saddr, sval, _ := strings.Cut(code, ":")
	addr, err := strconv.ParseUint(strings.TrimPrefix(saddr, "$"), 16, 16)
	if err != nil {
		return Cheat{}, errors.Wrapf(ErrBadCheat, "%q: bad address", code)
	}
	val, err := strconv.ParseUint(strings.TrimPrefix(sval, "$"), 16, 8)
	if err != nil {
		return Cheat{}, errors.Wrapf(ErrBadCheat, "%q: bad value", code)
	}
	return Cheat{Code: code, Addr: uint16(addr), Val: uint8(val)}, nil
}

const ggLetters = "APZLGITYEOXUKSVN"

// DecodeGameGenie decodes a Game Genie code. Each letter is a 4-bit nibble,
// scrambled into a 15-bit address, a value and an optional compare value.
func DecodeGameGenie(code string) (Cheat, error) {
	s := strings.ToUpper(strings.ReplaceAll(code, "-", ""))
	if len(s) != 6 && len(s) != 8 {
		return Cheat{}, errors.Wrapf(ErrBadCheat, "%q: want 6 or 8 letters", code)
	}

	var n [8]uint16
	for i := range len(s) {
		idx := strings.IndexByte(ggLetters, s[i])
		if idx < 0 {
			return Cheat{}, errors.Wrapf(ErrBadCheat, "%q: bad letter %q", code, s[i])
		}
		n[i] = uint16(idx)
	}

	c := Cheat{Code: code}
	c.Addr = 0x8000 |
		(n[3]&7)<<12 |
		(n[5]&7)<<8 | (n[4]&8)<<8 |
		(n[2]&7)<<4 | (n[1]&8)<<4 |
		(n[4] & 7) | (n[3] & 8)

	if len(s) == 6 {
		c.Val = uint8((n[1]&7)<<4 | (n[0]&8)<<4 | (n[0] & 7) | (n[5] & 8))
		return c, nil
	}

	c.Val = uint8((n[1]&7)<<4 | (n[0]&8)<<4 | (n[0] & 7) | (n[7] & 8))
	c.Compare = uint8((n[7]&7)<<4 | (n[6]&8)<<4 | (n[6] & 7) | (n[5] & 8))
	c.HasCompare = true
	return c, nil
}
