package hw

//go:generate go run ./cpugen -out opcodes.go

/* addressing modes */

func pagecrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

func (c *CPU) zpg() uint16 {
	return uint16(c.fetch8())
}

func (c *CPU) zpx() uint16 {
	base := c.fetch8()
	c.tick() // dummy read of base
	return uint16(base + c.X)
}

func (c *CPU) zpy() uint16 {
	base := c.fetch8()
	c.tick() // dummy read of base
	return uint16(base + c.Y)
}

func (c *CPU) abs() uint16 {
	return c.fetch16()
}

// abx returns the absolute,X address. The extra cycle for the page crossing
// is always taken by stores and read-modify-write instructions (dummy=true).
func (c *CPU) abx(dummy bool) uint16 {
	base := c.fetch16()
	addr := base + uint16(c.X)
	if dummy || pagecrossed(base, addr) {
		c.tick()
	}
	return addr
}

func (c *CPU) aby(dummy bool) uint16 {
	base := c.fetch16()
	addr := base + uint16(c.Y)
	if dummy || pagecrossed(base, addr) {
		c.tick()
	}
	return addr
}

// ind is only used by JMP and reproduces the 6502 page wrap bug: the pointer
// high byte is read from the start of the same page.
func (c *CPU) ind() uint16 {
	ptr := c.fetch16()
	lo := c.Read8(ptr)
	hi := c.Read8(ptr&0xFF00 | uint16(uint8(ptr)+1))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) izx() uint16 {
	zp := c.fetch8()
	c.tick() // dummy read of zp
	zp += c.X
	lo := c.Read8(uint16(zp))
	hi := c.Read8(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) izy(dummy bool) uint16 {
	zp := c.fetch8()
	lo := c.Read8(uint16(zp))
	hi := c.Read8(uint16(zp + 1))
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(c.Y)
	if dummy || pagecrossed(base, addr) {
		c.tick()
	}
	return addr
}

func (c *CPU) rel() uint16 {
	off := int8(c.fetch8())
	return uint16(int32(c.PC) + int32(off))
}

/* opcode helpers */

func (c *CPU) setreg(reg *uint8, val uint8) {
	*reg = val
	c.P.clearFlags(Zero | Negative)
	c.P.setNZ(val)
}

// add adds val and the carry to A. Decimal mode is not implemented on the
// 2A03, so SBC is add(^val).
func (c *CPU) add(val uint8) {
	carry := uint16(c.P & Carry)
	sum := uint16(c.A) + uint16(val) + carry

	c.P.clearFlags(Carry | Zero | Overflow | Negative)
	if sum > 0xFF {
		c.P.setFlags(Carry)
	}
	// signed overflow: both operands have the same sign, which differs from
	// the sign of the result.
	if (uint16(c.A)^sum)&(uint16(val)^sum)&0x80 != 0 {
		c.P.setFlags(Overflow)
	}
	c.A = uint8(sum)
	c.P.setNZ(c.A)
}

// branch jumps to target if taken. A taken branch costs one more cycle, and
// another one if the target is on a different page.
func (c *CPU) branch(target uint16, taken bool) {
	if !taken {
		return
	}
	c.tick()
	if pagecrossed(c.PC, target) {
		c.tick()
	}
	c.PC = target
}

// BRK - implied addressing.
func BRK(cpu *CPU) {
	cpu.tick() // dummy read of the padding byte
	cpu.PC++

	cpu.push16(cpu.PC)
	p := cpu.P | Break | Reserved
	cpu.push8(uint8(p))
	cpu.P.setFlags(Interrupt)

	prevpc := cpu.PC
	cpu.PC = cpu.Read16(IRQVector)
	cpu.dbg.Interrupt(prevpc, cpu.PC, false)
}

// JSR - absolute addressing.
func JSR(cpu *CPU) {
	lo := cpu.fetch8()
	cpu.tick() // internal operation

	// push the address of the last byte of the instruction.
	cpu.push16(cpu.PC)
	hi := cpu.Read8(cpu.PC)

	from := cpu.PC - 2
	cpu.PC = uint16(hi)<<8 | uint16(lo)
	cpu.dbg.Call(from, cpu.PC)
}
