package snapshot

import (
	"strings"

	"github.com/go-faster/errors"
)

// Region is a console memory area that can be dumped or patched.
type Region uint8

//go:generate go tool stringer -type=Region -trimprefix=Region

const (
	RegionRAM     Region = iota // 2KB internal RAM
	RegionVRAM                  // nametables
	RegionOAM                   // sprite attributes
	RegionPalette               // palette RAM
	RegionPRGROM                // cartridge program ROM
	RegionPRGRAM                // cartridge work RAM
	RegionCHR                   // cartridge pattern tables (ROM or RAM)

	NumRegions
)

// ErrUnknownRegion is returned by ParseRegion.
var ErrUnknownRegion = errors.New("unknown memory region")

// ParseRegion returns the region named s, case insensitive.
func ParseRegion(s string) (Region, error) {
	for r := range NumRegions {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownRegion, "%q", s)
}

// Regions returns the names of all regions.
func Regions() []string {
	names := make([]string, 0, NumRegions)
	for r := range NumRegions {
		names = append(names, r.String())
	}
	return names
}
