// Package hwdefs holds definitions shared by the hardware packages.
package hwdefs

import "strings"

// IRQSource identifies a device driving the CPU IRQ line. The line is level
// triggered: it stays asserted while at least one source is set.
type IRQSource uint8

const (
	External IRQSource = 1 << iota
	Mapper

	numSources = 2
)

var irqSrcNames = [numSources]string{
	"ext",
	"mapper",
}

func (irq IRQSource) String() string {
	var names []string
	for i := range numSources {
		if irq&(1<<i) != 0 {
			names = append(names, irqSrcNames[i])
		}
	}
	return strings.Join(names, "|")
}

const (
	SoftReset = true
	HardReset = false
)

// Screen dimensions.
const (
	NTSCWidth  = 256
	NTSCHeight = 240
)
