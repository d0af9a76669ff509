// Package ines implements a reader for roms in the iNES file format, used for
// the distribution of NES binary programs.
package ines

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"

	"nescore/hw/hwdefs"
)

//go:generate go tool stringer -type NTMirroring -output ntmirroring_string.go

// NTMirroring is the nametable mirroring arrangement of a cartridge.
type NTMirroring uint8

const (
	HorzMirroring NTMirroring = iota
	VertMirroring
	OnlyAScreen
	OnlyBScreen
	FourScreen
)

const (
	prgBankSize = 0x4000
	chrBankSize = 0x2000
	trainerSize = 0x200
)

type Rom struct {
	header
	Trainer []byte // Trainer, 512 bytes if present, or empty.
	PRGROM  []byte // PRG ROM data (multiple of 16KB)
	CHRROM  []byte // CHR ROM data (multiple of 8KB), empty if the board has CHR RAM
}

// Open loads a rom from file.
func Open(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rom := new(Rom)
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return rom, nil
}

// Decode parses an in-memory iNES image.
func Decode(buf []byte) (*Rom, error) {
	rom := new(Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(buf)); err != nil {
		return nil, err
	}
	return rom, nil
}

func malformed(format string, args ...any) error {
	return errors.Wrapf(hwdefs.ErrMalformedCartridge, format, args...)
}

// ReadFrom implements io.ReaderFrom interface. Every structural error wraps
// hwdefs.ErrMalformedCartridge.
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	// header
	var off int
	if err := rom.decode(buf); err != nil {
		return 0, err
	}
	off += 16

	// trainer
	if rom.HasTrainer() {
		if len(buf) < off+trainerSize {
			return 0, malformed("incomplete TRAINER section")
		}
		rom.Trainer = buf[off : off+trainerSize]
		off += trainerSize
	}

	// PRG rom data
	if len(buf) < off+rom.prgsz {
		return 0, malformed("incomplete PRG section: %d bytes, want %d", len(buf)-off, rom.prgsz)
	}
	rom.PRGROM = buf[off : off+rom.prgsz]
	off += rom.prgsz

	// CHR rom data
	if len(buf) < off+rom.chrsz {
		return 0, malformed("incomplete CHR section: %d bytes, want %d", len(buf)-off, rom.chrsz)
	}
	rom.CHRROM = buf[off : off+rom.chrsz]
	off += rom.chrsz

	return int64(len(buf)), nil
}

const Magic = "NES\x1a"

func (hdr *header) decode(p []byte) error {
	if len(p) < 16 {
		return malformed("header too small, needs 16 bytes, got %d", len(p))
	}
	if string(p[:4]) != Magic {
		return malformed("invalid magic number %q", p[:4])
	}
	copy(hdr.raw[:], p[:16])

	hdr.prgsz = int(hdr.raw[4]) * prgBankSize
	hdr.chrsz = int(hdr.raw[5]) * chrBankSize
	if hdr.IsNES20() {
		hdr.prgsz += int(hdr.raw[9]&0x0F) << 8 * prgBankSize
		hdr.chrsz += int(hdr.raw[9]>>4) << 8 * chrBankSize
	}
	if hdr.prgsz == 0 {
		return malformed("no PRG ROM")
	}
	return nil
}

type header struct {
	raw   [16]byte
	prgsz int
	chrsz int
}

// IsNES20 reports whether the header uses the NES 2.0 extensions.
func (hdr *header) IsNES20() bool {
	return hdr.raw[7]&0x0C == 0x08
}

// Has Trainer indicates the presence of a trainer section in the rom.
func (hdr *header) HasTrainer() bool {
	return hdr.raw[6]&0x04 != 0
}

// HasPersistent indicates the presence of battery-backed PRG RAM.
func (hdr *header) HasPersistent() bool {
	return hdr.raw[6]&0x02 != 0
}

// dirty reports whether bytes 12-15 hold garbage, as written by some old
// rippers. The high mapper nibble is unreliable in that case.
func (hdr *header) dirty() bool {
	return !hdr.IsNES20() && (hdr.raw[12] != 0 || hdr.raw[13] != 0 || hdr.raw[14] != 0 || hdr.raw[15] != 0)
}

// Mapper returns the mapper number.
func (hdr *header) Mapper() uint16 {
	num := uint16(hdr.raw[6] >> 4)
	if !hdr.dirty() {
		num |= uint16(hdr.raw[7] & 0xF0)
	}
	if hdr.IsNES20() {
		num |= uint16(hdr.raw[8]&0x0F) << 8
	}
	return num
}

// SubMapper returns the NES 2.0 submapper number, 0 for iNES roms.
func (hdr *header) SubMapper() uint8 {
	if !hdr.IsNES20() {
		return 0
	}
	return hdr.raw[8] >> 4
}

// Mirroring returns the nametable arrangement soldered on the board.
func (hdr *header) Mirroring() NTMirroring {
	switch {
	case hdr.raw[6]&0x08 != 0:
		return FourScreen
	case hdr.raw[6]&0x01 != 0:
		return VertMirroring
	}
	return HorzMirroring
}

// PRGRAMSize returns the size of the PRG RAM at $6000. iNES roms that don't
// specify it get 8KB for compatibility.
func (hdr *header) PRGRAMSize() int {
	if hdr.IsNES20() {
		shift := hdr.raw[10] & 0x0F
		if hdr.HasPersistent() {
			shift = hdr.raw[10] >> 4
		}
		if shift == 0 {
			return 0
		}
		return 64 << shift
	}
	if hdr.raw[8] == 0 {
		return 0x2000
	}
	return int(hdr.raw[8]) * 0x2000
}

// CHRRAMSize returns the size of the CHR RAM, 0 if the board has CHR ROM.
func (hdr *header) CHRRAMSize() int {
	if hdr.chrsz != 0 {
		return 0
	}
	if hdr.IsNES20() && hdr.raw[11]&0x0F != 0 {
		return 64 << (hdr.raw[11] & 0x0F)
	}
	return chrBankSize
}

// Info summarizes the rom header.
func (rom *Rom) Info() string {
	return fmt.Sprintf("mapper=%d submapper=%d prg=%dKB chr=%dKB mirroring=%s battery=%t trainer=%t nes2=%t",
		rom.Mapper(), rom.SubMapper(), len(rom.PRGROM)/1024, len(rom.CHRROM)/1024,
		rom.Mirroring(), rom.HasPersistent(), rom.HasTrainer(), rom.IsNES20())
}

// Encode builds an iNES image. Used by tests and tools to craft roms.
func Encode(mapper uint8, mirroring NTMirroring, prg, chr []byte) []byte {
	hdr := [16]byte{'N', 'E', 'S', 0x1a}
	hdr[4] = uint8(len(prg) / prgBankSize)
	hdr[5] = uint8(len(chr) / chrBankSize)
	hdr[6] = mapper << 4
	hdr[7] = mapper & 0xF0
	switch mirroring {
	case VertMirroring:
		hdr[6] |= 0x01
	case FourScreen:
		hdr[6] |= 0x08
	}

	buf := append([]byte{}, hdr[:]...)
	buf = append(buf, prg...)
	return append(buf, chr...)
}
