package hw

import (
	"fmt"
	"strings"
)

// DisasmOp is the disassembly of one instruction.
type DisasmOp struct {
	PC     uint16
	Buf    []byte // instruction bytes
	Opcode string // mnemonic
	Oper   string // formatted operand, may be empty
}

func (d DisasmOp) String() string {
	return strings.TrimRight(string(d.Bytes()), " ")
}

// Bytes returns the instruction formatted in the nestest log layout: PC,
// raw bytes and mnemonic, padded to 48 columns.
func (d DisasmOp) Bytes() []byte {
	const totalLen = 48
	buf := make([]byte, 0, totalLen+8)

	buf = appendHex16(buf, d.PC)
	buf = append(buf, ' ', ' ')
	for _, b := range d.Buf {
		buf = appendHex8(buf, b)
		buf = append(buf, ' ')
	}
	for len(buf) < 16 {
		buf = append(buf, ' ')
	}
	buf = append(buf, d.Opcode...)
	if d.Oper != "" {
		buf = append(buf, ' ')
		buf = append(buf, d.Oper...)
	}
	for len(buf) < totalLen {
		buf = append(buf, ' ')
	}
	return buf
}

const hextable = "0123456789ABCDEF"

func appendHex8(dst []byte, v uint8) []byte {
	return append(dst, hextable[v>>4], hextable[v&0x0f])
}

func appendHex16(dst []byte, v uint16) []byte {
	return appendHex8(appendHex8(dst, uint8(v>>8)), uint8(v))
}

var addressLabels = map[uint16]string{
	0x2000: "PpuControl_2000",
	0x2001: "PpuMask_2001",
	0x2002: "PpuStatus_2002",
	0x2003: "OamAddr_2003",
	0x2004: "OamData_2004",
	0x2005: "PpuScroll_2005",
	0x2006: "PpuAddr_2006",
	0x2007: "PpuData_2007",
	0x4014: "SpriteDma_4014",
	0x4015: "ApuStatus_4015",
	0x4016: "Ctrl1_4016",
	0x4017: "Ctrl2_FrameCtr_4017",
}

func formatAddr(addr uint16) string {
	if label, ok := addressLabels[addr]; ok {
		return label
	}
	return fmt.Sprintf("$%04X", addr)
}

func disasmN(c *CPU, pc uint16, n int, oper string) DisasmOp {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = c.Bus.Peek8(pc + uint16(i))
	}
	return DisasmOp{
		PC:     pc,
		Buf:    buf,
		Opcode: opcodeNames[buf[0]],
		Oper:   oper,
	}
}

func peekOper8(c *CPU, pc uint16) uint8   { return c.Bus.Peek8(pc + 1) }
func peekOper16(c *CPU, pc uint16) uint16 { return uint16(c.Bus.Peek8(pc+2))<<8 | uint16(c.Bus.Peek8(pc+1)) }

func disasmImp(c *CPU, pc uint16) DisasmOp { return disasmN(c, pc, 1, "") }
func disasmAcc(c *CPU, pc uint16) DisasmOp { return disasmN(c, pc, 1, "A") }

func disasmImm(c *CPU, pc uint16) DisasmOp {
	return disasmN(c, pc, 2, fmt.Sprintf("#$%02X", peekOper8(c, pc)))
}

func disasmZpg(c *CPU, pc uint16) DisasmOp {
	return disasmN(c, pc, 2, fmt.Sprintf("$%02X", peekOper8(c, pc)))
}

func disasmZpx(c *CPU, pc uint16) DisasmOp {
	return disasmN(c, pc, 2, fmt.Sprintf("$%02X,X", peekOper8(c, pc)))
}

func disasmZpy(c *CPU, pc uint16) DisasmOp {
	return disasmN(c, pc, 2, fmt.Sprintf("$%02X,Y", peekOper8(c, pc)))
}

func disasmAbs(c *CPU, pc uint16) DisasmOp {
	return disasmN(c, pc, 3, formatAddr(peekOper16(c, pc)))
}

func disasmAbx(c *CPU, pc uint16) DisasmOp {
	return disasmN(c, pc, 3, formatAddr(peekOper16(c, pc))+",X")
}

func disasmAby(c *CPU, pc uint16) DisasmOp {
	return disasmN(c, pc, 3, formatAddr(peekOper16(c, pc))+",Y")
}

func disasmInd(c *CPU, pc uint16) DisasmOp {
	return disasmN(c, pc, 3, fmt.Sprintf("($%04X)", peekOper16(c, pc)))
}

func disasmIzx(c *CPU, pc uint16) DisasmOp {
	return disasmN(c, pc, 2, fmt.Sprintf("($%02X,X)", peekOper8(c, pc)))
}

func disasmIzy(c *CPU, pc uint16) DisasmOp {
	return disasmN(c, pc, 2, fmt.Sprintf("($%02X),Y", peekOper8(c, pc)))
}

func disasmRel(c *CPU, pc uint16) DisasmOp {
	off := int8(peekOper8(c, pc))
	target := uint16(int32(pc) + 2 + int32(off))
	return disasmN(c, pc, 2, fmt.Sprintf("$%04X", target))
}

func disasmIll(c *CPU, pc uint16) DisasmOp {
	op := disasmN(c, pc, 1, "")
	op.Opcode = "???"
	return op
}

// Disassemble writes count instructions starting at pc, one per line. It
// only peeks at memory.
func (c *CPU) Disassemble(pc uint16, count int) []DisasmOp {
	ops := make([]DisasmOp, 0, count)
	for range count {
		op := c.Disasm(pc)
		ops = append(ops, op)
		pc += uint16(len(op.Buf))
	}
	return ops
}
