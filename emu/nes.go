package emu

import (
	"io"

	"nescore/emu/debugger"
	"nescore/emu/log"
	"nescore/hw"
	"nescore/hw/hwdefs"
	"nescore/hw/mappers"
	"nescore/ines"
)

// NES is the whole console: CPU, PPU, buses, controllers and cartridge.
// It is not safe for concurrent use.
type NES struct {
	CPU   *hw.CPU
	PPU   *hw.PPU
	Bus   *hw.Bus
	DMA   *hw.OAMDMA
	Ports *hw.ControllerPorts
	Rom   *ines.Rom

	cart   mappers.Cartridge
	cheats *cheatCart
	irq    mappers.IRQLine // nil if the board never raises IRQs
	dbg    *debugger.Debugger
}

// PowerUp builds a console with rom inserted and performs the power-up
// sequence. It fails if the cartridge uses an unsupported mapper.
func PowerUp(rom *ines.Rom) (*NES, error) {
	cart, err := mappers.New(rom)
	if err != nil {
		return nil, err
	}

	cheats := newCheatCart(cart)
	ppu := hw.NewPPU(cart)
	bus := hw.NewBus(cheats)
	dma := hw.NewOAMDMA()
	ports := hw.NewControllerPorts()
	bus.Connect(ppu, dma, ports)
	cpu := hw.NewCPU(bus.Table)

	nes := &NES{
		CPU:    cpu,
		PPU:    ppu,
		Bus:    bus,
		DMA:    dma,
		Ports:  ports,
		Rom:    rom,
		cart:   cart,
		cheats: cheats,
	}
	nes.irq, _ = cart.(mappers.IRQLine)
	if cc, ok := cart.(mappers.CPUClocked); ok {
		cc.SetCPUClock(func() int64 { return cpu.Cycles })
	}
	cpu.SetClock(nes)

	nes.Reset(hwdefs.HardReset)
	return nes, nil
}

// Reset performs a soft reset (reset button) or a hard reset (power cycle).
// Both keep the cartridge RAM. A hard reset also clears the console RAM.
func (nes *NES) Reset(soft bool) {
	if !soft {
		clear(nes.Bus.RAM.Data)
	}
	nes.DMA.Reset()
	nes.PPU.Reset()
	nes.CPU.Reset(soft)
}

// Tick runs the PPU for one CPU cycle, 3 dots, and forwards the PPU NMI and
// the cartridge IRQ to the CPU.
func (nes *NES) Tick() {
	for range 3 {
		nes.PPU.Tick()
		if nes.PPU.TakeNMI() {
			nes.CPU.RequestNMI()
		}
	}

	if nes.irq != nil {
		if nes.irq.IRQ() {
			nes.CPU.RequestIRQ(hwdefs.Mapper)
		} else {
			nes.CPU.ClearIRQ(hwdefs.Mapper)
		}
	}
}

// Step executes one CPU instruction (or interrupt sequence), followed by the
// OAM DMA transfer it may have started. It returns the number of CPU cycles
// elapsed.
func (nes *NES) Step() (int, error) {
	if nes.dbg != nil {
		if err := nes.dbg.Breakpoint(nes.CPU.PC); err != nil {
			return 0, err
		}
	}

	ncycles, err := nes.CPU.Step()
	if err != nil {
		return ncycles, err
	}
	ncycles += nes.DMA.Run(nes.CPU)

	if nes.dbg != nil {
		if err := nes.dbg.Watchpoint(); err != nil {
			return ncycles, err
		}
	}
	return ncycles, nil
}

// RunFrame runs the console until the PPU completes the current frame, that
// is until the start of the next vertical blank.
func (nes *NES) RunFrame() error {
	frame := nes.PPU.Frame
	for nes.PPU.Frame == frame {
		if _, err := nes.Step(); err != nil {
			return err
		}
	}

	nes.freezeRAM()
	if nes.dbg != nil {
		nes.dbg.FrameEnd()
	}
	return nil
}

// Frame returns the last completed frame. The returned frame is overwritten
// by the frame after next.
func (nes *NES) Frame() *hw.Frame {
	return nes.PPU.FrontFrame()
}

// Controller returns controller i (0 or 1).
func (nes *NES) Controller(i int) *hw.Controller {
	return &nes.Ports.Pads[i]
}

// SetTraceOutput writes the CPU execution trace to w, nil disables it.
func (nes *NES) SetTraceOutput(w io.Writer) {
	if w == nil {
		nes.CPU.SetTraceOutput(nil, nil)
		return
	}
	nes.CPU.SetTraceOutput(w, nes.PPU)
}

// Debugger returns the console debugger, attaching one on first use.
func (nes *NES) Debugger() *debugger.Debugger {
	if nes.dbg == nil {
		nes.dbg = debugger.New(nes.CPU)
		nes.dbg.Reset()
		log.ModEmu.InfoZ("debugger attached").End()
	}
	return nes.dbg
}

// Peek reads the CPU address space without side effects.
func (nes *NES) Peek(addr uint16) uint8 {
	return nes.Bus.Peek8(addr)
}

// Disassemble disassembles count instructions starting at pc.
func (nes *NES) Disassemble(pc uint16, count int) []hw.DisasmOp {
	return nes.CPU.Disassemble(pc, count)
}
