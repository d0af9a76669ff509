package hw

import (
	"nescore/emu/log"
	"nescore/hw/hwio"
	"nescore/hw/input"
)

// Controller is a standard NES controller: an 8-bit parallel-in serial-out
// shift register. While strobe is high the register continuously reloads the
// buttons state; reads return A. Once strobe is low, each read shifts one
// button out, in A, B, Select, Start, Up, Down, Left, Right order, then 1s.
type Controller struct {
	buttons input.Buttons
	shift   uint8
	strobe  bool
}

// SetButtons sets the live state of the buttons.
func (c *Controller) SetButtons(b input.Buttons) {
	c.buttons = b
	if c.strobe {
		c.shift = uint8(b)
	}
}

func (c *Controller) Buttons() input.Buttons {
	return c.buttons
}

// WriteStrobe sets the strobe line from bit 0 of val.
func (c *Controller) WriteStrobe(val uint8) {
	c.strobe = val&1 != 0
	if c.strobe {
		c.shift = uint8(c.buttons)
	}
}

// Read returns the next button bit.
func (c *Controller) Read() uint8 {
	if c.strobe {
		return uint8(c.buttons) & 1
	}
	bit := c.shift & 1
	c.shift = c.shift>>1 | 0x80
	return bit
}

// Peek returns the next button bit, without shifting.
func (c *Controller) Peek() uint8 {
	if c.strobe {
		return uint8(c.buttons) & 1
	}
	return c.shift & 1
}

// ControllerPorts are the $4016/$4017 registers. The upper bits of the
// reads come from the open bus ($40, high byte of the address).
type ControllerPorts struct {
	Pads [2]Controller

	JOY1 hwio.Reg8 `hwio:"offset=0x16,rcb,wcb,pcb"`
	JOY2 hwio.Reg8 `hwio:"offset=0x17,rcb,pcb"`
}

const portOpenBus = 0x40

func NewControllerPorts() *ControllerPorts {
	ports := &ControllerPorts{}
	hwio.MustInitRegs(ports)
	return ports
}

func (cp *ControllerPorts) ReadJOY1(_ uint8) uint8 { return portOpenBus | cp.Pads[0].Read() }
func (cp *ControllerPorts) PeekJOY1(_ uint8) uint8 { return portOpenBus | cp.Pads[0].Peek() }
func (cp *ControllerPorts) ReadJOY2(_ uint8) uint8 { return portOpenBus | cp.Pads[1].Read() }
func (cp *ControllerPorts) PeekJOY2(_ uint8) uint8 { return portOpenBus | cp.Pads[1].Peek() }

// WriteJOY1 strobes both controllers. Writes to $4017 go to the APU frame
// counter.
func (cp *ControllerPorts) WriteJOY1(old, val uint8) {
	if old&1 != val&1 {
		log.ModInput.DebugZ("strobe").Uint8("val", val&1).End()
	}
	cp.Pads[0].WriteStrobe(val)
	cp.Pads[1].WriteStrobe(val)
}
