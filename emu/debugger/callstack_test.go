package debugger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCallStack(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		var cstack callStack
		cstack.push(FrameCall, 0xC7C2, 0xC7E7, 0xC7C5)
		cstack.push(FrameCall, 0xC801, 0xCBAE, 0xC804)

		fi := cstack.build(0xF099)
		want := []FrameInfo{
			{"CBAE", "$F099"},
			{"C7E7", "$C801"},
			{"[bottom of stack]", "$C7C2"},
		}
		if diff := cmp.Diff(want, fi); diff != "" {
			t.Fatalf("callstack differs (-want +got):\n%s", diff)
		}
	})

	t.Run("interrupts", func(t *testing.T) {
		var cstack callStack
		cstack.push(FrameCall, 0xC7C2, 0xC7E7, 0xC7C5)
		cstack.push(FrameNMI, 0xC7EA, 0xE000, 0xC7EA)
		cstack.push(FrameIRQ, 0xE004, 0xF000, 0xE006)

		fi := cstack.build(0xF001)
		want := []FrameInfo{
			{"[irq] $F000", "$F001"},
			{"[nmi] $E000", "$E004"},
			{"C7E7", "$C7EA"},
			{"[bottom of stack]", "$C7C2"},
		}
		if diff := cmp.Diff(want, fi); diff != "" {
			t.Fatalf("callstack differs (-want +got):\n%s", diff)
		}
	})

	t.Run("empty", func(t *testing.T) {
		var cstack callStack
		cstack.pop()
		fi := cstack.build(0xF099)
		want := []FrameInfo{
			{"[bottom of stack]", "$F099"},
		}
		if diff := cmp.Diff(want, fi); diff != "" {
			t.Fatalf("callstack differs (-want +got):\n%s", diff)
		}
	})

	t.Run("trim", func(t *testing.T) {
		var cstack callStack
		for i := range uint16(10) {
			cstack.push(FrameCall, i, 0x100+i, i+3)
		}
		cstack.trim(4)
		if cstack.len() != 4 {
			t.Fatalf("len = %d after trim, want 4", cstack.len())
		}
		// Outermost frames are dropped.
		if cstack[0].Src != 6 || cstack[3].Src != 9 {
			t.Errorf("trim kept frames %04X..%04X, want 0006..0009", cstack[0].Src, cstack[3].Src)
		}
	})
}
