// Package debugger implements a CPU debugger: breakpoints, memory
// watchpoints, call stack tracking, memory search and cheats.
package debugger

import (
	"fmt"

	"github.com/go-faster/errors"

	"nescore/emu/log"
	"nescore/hw"
	"nescore/hw/hwio"
)

var modDbg = log.NewModule("debugger")

// ErrBreak is matched by every *BreakError.
var ErrBreak = errors.New("debugger break")

// Reason tells why the debugger stopped execution.
type Reason uint8

const (
	ReasonBreakpoint Reason = iota
	ReasonRead
	ReasonWrite
)

func (r Reason) String() string {
	switch r {
	case ReasonBreakpoint:
		return "breakpoint"
	case ReasonRead:
		return "read watchpoint"
	case ReasonWrite:
		return "write watchpoint"
	}
	return fmt.Sprintf("Reason(%d)", r)
}

// BreakError is returned when execution hits a breakpoint or a watchpoint.
type BreakError struct {
	Reason Reason
	PC     uint16 // instruction address
	Addr   uint16 // watched address
	Val    uint8  // written value
}

func (e *BreakError) Error() string {
	switch e.Reason {
	case ReasonRead:
		return fmt.Sprintf("%s: $%04X read at $%04X", e.Reason, e.Addr, e.PC)
	case ReasonWrite:
		return fmt.Sprintf("%s: $%04X <- $%02X at $%04X", e.Reason, e.Addr, e.Val, e.PC)
	}
	return fmt.Sprintf("%s at $%04X", e.Reason, e.PC)
}

func (e *BreakError) Unwrap() error { return ErrBreak }

// A Debugger monitors a CPU. It keeps track of the call stack even when no
// breakpoint or watchpoint is set, so a backtrace is available at any time.
//
// Breakpoints are checked before an instruction executes, watchpoints stop
// execution once the accessing instruction is complete.
type Debugger struct {
	cpu *hw.CPU

	Breakpoints hwio.Bitset
	ReadWatch   hwio.Bitset
	WriteWatch  hwio.Bitset

	cstack  callStack
	curPC   uint16
	resetPC uint16
	frames  int64

	// set after a breakpoint stops execution, so that resuming executes
	// the instruction at stopPC.
	stopped bool
	stopPC  uint16

	pending *BreakError
}

// New creates a debugger and attaches it to cpu.
func New(cpu *hw.CPU) *Debugger {
	d := &Debugger{cpu: cpu}
	cpu.SetDebugger(d)
	return d
}

func (d *Debugger) Reset() {
	// PC has been loaded from the reset vector.
	d.resetPC = d.cpu.PC
	d.cstack.reset()
	d.stopped = false
	d.pending = nil
}

// ResetPC returns the address execution started at after the last reset.
func (d *Debugger) ResetPC() uint16 { return d.resetPC }

// Frames returns the number of frames seen.
func (d *Debugger) Frames() int64 { return d.frames }

func (d *Debugger) Trace(pc uint16) {
	d.curPC = pc
}

func (d *Debugger) Interrupt(prevpc, curpc uint16, isNMI bool) {
	kind := FrameIRQ
	if isNMI {
		kind = FrameNMI
	}
	d.cstack.push(kind, prevpc, curpc, prevpc)
}

func (d *Debugger) Call(from, to uint16) {
	d.cstack.push(FrameCall, from, to, from+3)
}

func (d *Debugger) Return(uint16) {
	d.cstack.pop()
}

func (d *Debugger) WatchRead(addr uint16) {
	if d.pending == nil && d.ReadWatch.Test(addr) {
		d.pending = &BreakError{Reason: ReasonRead, PC: d.curPC, Addr: addr}
	}
}

func (d *Debugger) WatchWrite(addr uint16, val uint8) {
	// Read-modify-write instructions write twice, report the final value.
	if p := d.pending; p != nil && p.Reason == ReasonWrite && p.Addr == addr && p.PC == d.curPC {
		p.Val = val
		return
	}
	if d.pending == nil && d.WriteWatch.Test(addr) {
		d.pending = &BreakError{Reason: ReasonWrite, PC: d.curPC, Addr: addr, Val: val}
	}
}

func (d *Debugger) FrameEnd() {
	d.frames++
	if d.cstack.len() > maxStackDepth {
		modDbg.DebugZ("call stack trimmed").Int("depth", d.cstack.len()).End()
		d.cstack.trim(maxStackDepth)
	}
}

// Breakpoint must be called before executing the instruction at pc. It
// returns a *BreakError if a breakpoint is set at pc. The next call with the
// same pc returns nil, so execution can be resumed.
func (d *Debugger) Breakpoint(pc uint16) error {
	skip := d.stopped && d.stopPC == pc
	d.stopped = false
	if skip || !d.Breakpoints.Test(pc) {
		return nil
	}

	d.stopped, d.stopPC = true, pc
	modDbg.InfoZ("breakpoint hit").Hex16("pc", pc).End()
	return &BreakError{Reason: ReasonBreakpoint, PC: pc}
}

// Watchpoint returns the watchpoint hit by the last instruction, if any.
func (d *Debugger) Watchpoint() error {
	if d.pending == nil {
		return nil
	}
	err := d.pending
	d.pending = nil
	modDbg.InfoZ("watchpoint hit").Stringer("reason", err.Reason).Hex16("addr", err.Addr).Hex16("pc", err.PC).End()
	return err
}

// Backtrace returns the call stack, innermost frame first.
func (d *Debugger) Backtrace() []FrameInfo {
	return d.cstack.build(d.cpu.PC)
}

// Stack returns a copy of the call stack, outermost frame first.
func (d *Debugger) Stack() []StackFrame {
	return append([]StackFrame(nil), d.cstack...)
}
