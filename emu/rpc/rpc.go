// Package rpc exposes a running emulator over net/rpc, for scripting and
// external debugging tools.
package rpc

import (
	"nescore/emu"
	"nescore/emu/log"
)

var modRPC = log.NewModule("rpc")

// Emu is the emulator controlled by the server.
type Emu interface {
	Reset()
	Restart()
	SetPause(pause bool)
	Stop()

	// Do runs fn with exclusive access to the console.
	Do(fn func(*emu.NES)) error
}

type ButtonsArgs struct {
	Pad     int
	Buttons string // input.Buttons format, e.g. "A+Start"
}

type MemArgs struct {
	Addr  uint16
	Count int
}

type RegionArgs struct {
	Region string
}

type PokeArgs struct {
	Region string
	Offset int
	Val    uint8
}

type BreakpointArgs struct {
	Addr uint16
	Set  bool
}
