package mappers

var NROM = MapperDesc{
	Name: "NROM",
	Load: loadNROM,
}

// NROM has no bank switching. A 16KB PRG ROM is mirrored at $C000.
func loadNROM(b *base) (Cartridge, error) {
	return b, nil
}
