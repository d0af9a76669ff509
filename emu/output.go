package emu

import (
	"fmt"
	"path/filepath"

	"nescore/emu/log"
	"nescore/hw"
)

// Output receives the frames produced by the emulator.
type Output interface {
	// EndFrame is called once per completed frame. frame is only valid
	// during the call.
	EndFrame(frame *hw.Frame)
	// Poll reports whether the emulation should go on.
	Poll() bool
	Close() error
}

// HeadlessOutput is an Output saving frames as PNG files.
type HeadlessOutput struct {
	// Directory where frames are saved, none are saved if empty.
	Dir string
	// Frame files are named <Name>-<frame number>.png, the last frame
	// <Name>-last.png.
	Name string
	// Save one frame every Every frames. With 0 only the last frame is
	// saved, on Close.
	Every int64

	last   hw.Frame
	nframe int64
}

func (ho *HeadlessOutput) EndFrame(frame *hw.Frame) {
	ho.last = *frame
	ho.nframe++
	if ho.Dir == "" || ho.Every <= 0 || ho.nframe%ho.Every != 0 {
		return
	}
	ho.save(fmt.Sprintf("%s-%06d.png", ho.Name, ho.nframe))
}

func (ho *HeadlessOutput) Poll() bool { return true }

// Frames returns the number of frames received.
func (ho *HeadlessOutput) Frames() int64 { return ho.nframe }

// Last returns the last frame received.
func (ho *HeadlessOutput) Last() *hw.Frame { return &ho.last }

func (ho *HeadlessOutput) Close() error {
	if ho.Dir == "" || ho.nframe == 0 {
		return nil
	}
	return ho.save(ho.Name + "-last.png")
}

func (ho *HeadlessOutput) save(fn string) error {
	path := filepath.Join(ho.Dir, fn)
	if err := hw.SaveAsPNG(&ho.last, path); err != nil {
		log.ModEmu.WarnZ("failed to save frame").String("path", path).Error("err", err).End()
		return err
	}
	log.ModEmu.DebugZ("frame saved").String("path", path).End()
	return nil
}

// ChanOutput is an Output sending a copy of each frame on a channel. The
// emulation stops after Max frames, if not zero.
type ChanOutput struct {
	C   chan hw.Frame
	Max int64

	nframe int64
}

func NewChanOutput(bufsize int, max int64) *ChanOutput {
	return &ChanOutput{
		C:   make(chan hw.Frame, bufsize),
		Max: max,
	}
}

func (co *ChanOutput) EndFrame(frame *hw.Frame) {
	co.C <- *frame
	co.nframe++
}

func (co *ChanOutput) Poll() bool {
	return co.Max == 0 || co.nframe < co.Max
}

func (co *ChanOutput) Close() error {
	close(co.C)
	return nil
}
