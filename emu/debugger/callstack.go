package debugger

import (
	"fmt"
	"slices"
)

// FrameKind tells how a stack frame was entered.
type FrameKind uint8

const (
	FrameCall FrameKind = iota // JSR
	FrameNMI
	FrameIRQ // IRQ line or BRK
)

// A StackFrame is an entry of the call stack.
type StackFrame struct {
	Kind   FrameKind
	Src    uint16 // address of the JSR, or of the interrupted instruction
	Target uint16 // entry point
	Ret    uint16 // return address
}

// Deeper stacks are trimmed at the end of a frame. Games sometimes drop
// return addresses from the stack, leaving frames that are never popped.
const maxStackDepth = 256

type callStack []StackFrame

func (cs *callStack) push(kind FrameKind, src, target, ret uint16) {
	*cs = append(*cs, StackFrame{
		Kind:   kind,
		Src:    src,
		Target: target,
		Ret:    ret,
	})
}

func (cs *callStack) len() int {
	return len(*cs)
}

func (cs *callStack) pop() {
	if cs.len() == 0 {
		return
	}
	*cs = (*cs)[:cs.len()-1]
}

func (cs *callStack) reset() {
	*cs = (*cs)[:0]
}

func (cs *callStack) trim(depth int) {
	if n := cs.len(); n > depth {
		*cs = slices.Delete(*cs, 0, n-depth)
	}
}

// FrameInfo describes a call stack entry: the entry point of the routine and
// the current location inside it.
type FrameInfo struct {
	Entry    string
	Location string
}

// build returns the backtrace, innermost frame first.
func (cs *callStack) build(pc uint16) []FrameInfo {
	nfos := make([]FrameInfo, 0, cs.len()+1)
	var curf *StackFrame
	for i, f := range *cs {
		if i > 0 {
			curf = &((*cs)[i-1])
		}
		nfos = slices.Insert(nfos, 0, FrameInfo{
			Entry:    cs.entryPoint(curf),
			Location: fmt.Sprintf("$%04X", f.Src),
		})
	}

	// Current frame
	curf = nil
	if cs.len() > 0 {
		curf = &((*cs)[cs.len()-1])
	}

	return slices.Insert(nfos, 0, FrameInfo{
		Entry:    cs.entryPoint(curf),
		Location: fmt.Sprintf("$%04X", pc),
	})
}

func (callStack) entryPoint(f *StackFrame) string {
	if f == nil {
		return "[bottom of stack]"
	}

	str := fmt.Sprintf("%04X", f.Target)
	switch f.Kind {
	case FrameNMI:
		return "[nmi] $" + str
	case FrameIRQ:
		return "[irq] $" + str
	default:
		return str
	}
}
