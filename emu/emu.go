package emu

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/go-faster/errors"

	"nescore/emu/debugger"
	"nescore/emu/log"
	"nescore/hw/input"
	"nescore/ines"
)

// ErrStopped is returned by Emulator.Do once the emulation loop has exited.
var ErrStopped = errors.New("emulator stopped")

// Emulator runs a NES frame after frame, sending frames to an Output.
type Emulator struct {
	NES *NES
	out Output
	cfg EmulationConfig

	// These are accessed concurrently by the emulator loop and the
	// controlling goroutines (rpc server, signal handlers).
	quit    atomic.Bool
	paused  atomic.Bool
	reset   atomic.Bool
	restart atomic.Bool

	cmds chan func(*NES)
	done chan struct{}

	events    []input.Event
	nextEvent int
	nframes   atomic.Int64
}

// Launch powers up a console with rom inserted and configures it according
// to cfg. It doesn't start the emulation loop, call Run for that.
func Launch(rom *ines.Rom, cfg Config, out Output) (*Emulator, error) {
	nes, err := PowerUp(rom)
	if err != nil {
		return nil, errors.Wrap(err, "power up failed")
	}

	if cfg.Emulation.StartPC != 0 {
		nes.CPU.PC = cfg.Emulation.StartPC
		log.ModEmu.InfoZ("start pc override").Hex16("pc", cfg.Emulation.StartPC).End()
	}
	if cfg.TraceOut != nil {
		nes.SetTraceOutput(cfg.TraceOut)
	}
	for _, code := range cfg.Emulation.Cheats {
		if err := nes.AddCheat(code); err != nil {
			return nil, err
		}
	}

	e := &Emulator{
		NES:  nes,
		out:  out,
		cfg:  cfg.Emulation,
		cmds: make(chan func(*NES)),
		done: make(chan struct{}),
	}

	if cfg.Input.Script != "" {
		f, err := os.Open(cfg.Input.Script)
		if err != nil {
			return nil, errors.Wrap(err, "input script")
		}
		defer f.Close()

		script, err := input.ParseScript(f)
		if err != nil {
			return nil, errors.Wrapf(err, "input script %s", cfg.Input.Script)
		}
		e.SetScript(script)
	}
	return e, nil
}

// SetScript sets the input sequence applied to the controllers. Frame
// numbers count from the start of the emulation loop.
func (e *Emulator) SetScript(script *input.Script) {
	e.events = script.Events()
	e.nextEvent = 0
}

// RunOneFrame applies scripted input and runs the console for one frame.
func (e *Emulator) RunOneFrame() error {
	for e.nextEvent < len(e.events) && e.events[e.nextEvent].Frame <= e.nframes.Load() {
		ev := e.events[e.nextEvent]
		for i, pad := range ev.Pads {
			e.NES.Controller(i).SetButtons(pad)
		}
		log.ModInput.DebugZ("scripted input").
			Int64("frame", ev.Frame).
			Stringer("pad1", ev.Pads[0]).
			Stringer("pad2", ev.Pads[1]).
			End()
		e.nextEvent++
	}

	if err := e.NES.RunFrame(); err != nil {
		return err
	}
	e.nframes.Add(1)
	e.out.EndFrame(e.NES.Frame())

	if e.cfg.Frames > 0 && e.nframes.Load() >= e.cfg.Frames {
		e.Stop()
	}
	return nil
}

func (e *Emulator) loop() error {
	for e.out.Poll() {
		// Handle pause.
		if e.isPaused() {
			// Don't burn cpu while paused.
			select {
			case fn := <-e.cmds:
				fn(e.NES)
			case <-time.After(100 * time.Millisecond):
			}
		} else {
			e.runCommands()
			if err := e.RunOneFrame(); err != nil {
				if !errors.Is(err, debugger.ErrBreak) {
					return err
				}
				log.ModEmu.InfoZ("emulation paused by debugger").Error("reason", err).End()
				e.SetPause(true)
			}
		}
		if e.shouldStop() {
			break
		}
		e.handleReset()
	}
	return nil
}

func (e *Emulator) runCommands() {
	for {
		select {
		case fn := <-e.cmds:
			fn(e.NES)
		default:
			return
		}
	}
}

// Run runs the emulation loop until Stop is called, the output stops
// polling, the configured number of frames is reached or the CPU halts. A
// halted CPU is reported as an error.
func (e *Emulator) Run() error {
	defer close(e.done)

	err := e.loop()
	if cerr := e.out.Close(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "output")
	}

	log.ModEmu.InfoZ("Emulation loop exited").
		Int64("frames", e.nframes.Load()).
		Int64("cycles", e.NES.CPU.Cycles).
		End()
	return err
}

// Frames returns the number of frames run by the emulation loop.
func (e *Emulator) Frames() int64 { return e.nframes.Load() }

// Do runs fn on the emulation goroutine, between two frames, and waits for
// it to complete. This is the only safe way to access the NES while the
// emulation loop is running.
func (e *Emulator) Do(fn func(*NES)) error {
	done := make(chan struct{})
	wrapped := func(nes *NES) {
		defer close(done)
		fn(nes)
	}

	select {
	case e.cmds <- wrapped:
		<-done
		return nil
	case <-e.done:
		return ErrStopped
	}
}

// SetPause, Stop, Reset and Restart allows to control
// the emulator loop in a concurrent-safe way.

func (e *Emulator) SetPause(pause bool) { e.paused.CompareAndSwap(!pause, pause) }
func (e *Emulator) Reset()              { e.reset.Store(true) }
func (e *Emulator) Restart()            { e.restart.Store(true) }
func (e *Emulator) Stop() {
	e.quit.Store(true)
}

func (e *Emulator) IsPaused() bool { return e.isPaused() }

func (e *Emulator) isPaused() bool {
	return e.paused.Load()
}

func (e *Emulator) shouldStop() bool {
	return e.quit.Load()
}

func (e *Emulator) handleReset() {
	if e.reset.CompareAndSwap(true, false) {
		log.ModEmu.InfoZ("Performing soft reset").End()
		e.NES.Reset(true)
	} else if e.restart.CompareAndSwap(true, false) {
		log.ModEmu.InfoZ("Performing hard reset").End()
		e.NES.Reset(false)
	}
}
