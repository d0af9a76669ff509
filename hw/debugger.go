package hw

// A Debugger monitors a CPU.
type Debugger interface {
	// Reset is called after the CPU reset sequence.
	Reset()

	// Trace is called before each opcode is executed.
	Trace(pc uint16)

	// Interrupt is called when an interrupt handler (or BRK) is entered.
	// prevpc is the address the handler returns to.
	Interrupt(prevpc, curpc uint16, isNMI bool)

	// Call and Return track JSR and RTS/RTI.
	Call(from, to uint16)
	Return(pc uint16)

	// WatchRead and WatchWrite are called before each CPU bus access.
	WatchRead(addr uint16)
	WatchWrite(addr uint16, val uint8)

	// FrameEnd signals the end of the current frame.
	FrameEnd()
}

type nopDebugger struct{}

func (nopDebugger) Reset() {}
func (nopDebugger) Trace(uint16) {}
func (nopDebugger) Interrupt(uint16, uint16, bool) {}
func (nopDebugger) Call(uint16, uint16) {}
func (nopDebugger) Return(uint16) {}
func (nopDebugger) WatchRead(uint16) {}
func (nopDebugger) WatchWrite(uint16, uint8) {}
func (nopDebugger) FrameEnd() {}
