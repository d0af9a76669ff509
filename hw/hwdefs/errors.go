package hwdefs

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Error taxonomy of the emulator core. Callers match with errors.Is.
var (
	// ErrMalformedCartridge reports a cartridge image with a bad header or
	// truncated sections.
	ErrMalformedCartridge = errors.New("malformed cartridge")

	// ErrUnsupportedMapper reports a cartridge using a mapper that has no
	// implementation.
	ErrUnsupportedMapper = errors.New("unsupported mapper")

	// ErrIllegalOpcode reports the CPU fetching an undocumented opcode.
	ErrIllegalOpcode = errors.New("illegal opcode")

	// ErrOutOfRangeAccess reports an internal invariant violation, such as
	// mapping a device past the end of the address space. It is raised as
	// a panic carrying an OutOfRangeError.
	ErrOutOfRangeAccess = errors.New("out of range access")
)

// OutOfRangeError is the panic value of an internal out of range access.
type OutOfRangeError struct {
	What  string
	Index int
	Limit int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.What, e.Index, e.Limit)
}

func (e OutOfRangeError) Unwrap() error { return ErrOutOfRangeAccess }

// PanicOutOfRange panics with an OutOfRangeError if idx is not in [0, limit).
func PanicOutOfRange(what string, idx, limit int) {
	if idx < 0 || idx >= limit {
		panic(OutOfRangeError{What: what, Index: idx, Limit: limit})
	}
}
