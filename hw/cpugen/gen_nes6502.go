// Command cpugen generates the 6502 opcode tables of package hw.
//
// Only documented opcodes are generated; the remaining table entries are nil
// and make the CPU report an illegal opcode.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

const pkgname = "hw"

type opdef struct {
	n string // name
	m string // addressing mode
	f func() // if nil, opcode is manually written in package hw
	d rwType
}

type rwType int

const (
	no rwType = 1 << iota
	rd        // read operand into 'val'
	rw        // read operand into 'val' and write 'val' back into operand after opcode
)

var defs = [256]opdef{
	0x00: {n: "BRK", d: no, m: "imp"},
	0x01: {n: "ORA", d: rd, m: "izx", f: ORA},
	0x05: {n: "ORA", d: rd, m: "zpg", f: ORA},
	0x06: {n: "ASL", d: rw, m: "zpg", f: ASL_mem},
	0x08: {n: "PHP", d: no, m: "imp", f: PHP},
	0x09: {n: "ORA", d: rd, m: "imm", f: ORA},
	0x0A: {n: "ASL", d: no, m: "acc", f: ASL},
	0x0D: {n: "ORA", d: rd, m: "abs", f: ORA},
	0x0E: {n: "ASL", d: rw, m: "abs", f: ASL_mem},
	0x10: {n: "BPL", d: no, m: "rel", f: branch(Negative, false)},
	0x11: {n: "ORA", d: rd, m: "izy", f: ORA},
	0x15: {n: "ORA", d: rd, m: "zpx", f: ORA},
	0x16: {n: "ASL", d: rw, m: "zpx", f: ASL_mem},
	0x18: {n: "CLC", d: no, m: "imp", f: clear(Carry)},
	0x19: {n: "ORA", d: rd, m: "aby", f: ORA},
	0x1D: {n: "ORA", d: rd, m: "abx", f: ORA},
	0x1E: {n: "ASL", d: rw, m: "abxd", f: ASL_mem},
	0x20: {n: "JSR", d: no, m: "abs"},
	0x21: {n: "AND", d: rd, m: "izx", f: AND},
	0x24: {n: "BIT", d: rd, m: "zpg", f: BIT},
	0x25: {n: "AND", d: rd, m: "zpg", f: AND},
	0x26: {n: "ROL", d: rw, m: "zpg", f: ROL_mem},
	0x28: {n: "PLP", d: no, m: "imp", f: PLP},
	0x29: {n: "AND", d: rd, m: "imm", f: AND},
	0x2A: {n: "ROL", d: no, m: "acc", f: ROL},
	0x2C: {n: "BIT", d: rd, m: "abs", f: BIT},
	0x2D: {n: "AND", d: rd, m: "abs", f: AND},
	0x2E: {n: "ROL", d: rw, m: "abs", f: ROL_mem},
	0x30: {n: "BMI", d: no, m: "rel", f: branch(Negative, true)},
	0x31: {n: "AND", d: rd, m: "izy", f: AND},
	0x35: {n: "AND", d: rd, m: "zpx", f: AND},
	0x36: {n: "ROL", d: rw, m: "zpx", f: ROL_mem},
	0x38: {n: "SEC", d: no, m: "imp", f: set(Carry)},
	0x39: {n: "AND", d: rd, m: "aby", f: AND},
	0x3D: {n: "AND", d: rd, m: "abx", f: AND},
	0x3E: {n: "ROL", d: rw, m: "abxd", f: ROL_mem},
	0x40: {n: "RTI", d: no, m: "imp", f: RTI},
	0x41: {n: "EOR", d: rd, m: "izx", f: EOR},
	0x45: {n: "EOR", d: rd, m: "zpg", f: EOR},
	0x46: {n: "LSR", d: rw, m: "zpg", f: LSR_mem},
	0x48: {n: "PHA", d: no, m: "imp", f: PHA},
	0x49: {n: "EOR", d: rd, m: "imm", f: EOR},
	0x4A: {n: "LSR", d: no, m: "acc", f: LSR},
	0x4C: {n: "JMP", d: no, m: "abs", f: JMP},
	0x4D: {n: "EOR", d: rd, m: "abs", f: EOR},
	0x4E: {n: "LSR", d: rw, m: "abs", f: LSR_mem},
	0x50: {n: "BVC", d: no, m: "rel", f: branch(Overflow, false)},
	0x51: {n: "EOR", d: rd, m: "izy", f: EOR},
	0x55: {n: "EOR", d: rd, m: "zpx", f: EOR},
	0x56: {n: "LSR", d: rw, m: "zpx", f: LSR_mem},
	0x58: {n: "CLI", d: no, m: "imp", f: clear(Interrupt)},
	0x59: {n: "EOR", d: rd, m: "aby", f: EOR},
	0x5D: {n: "EOR", d: rd, m: "abx", f: EOR},
	0x5E: {n: "LSR", d: rw, m: "abxd", f: LSR_mem},
	0x60: {n: "RTS", d: no, m: "imp", f: RTS},
	0x61: {n: "ADC", d: rd, m: "izx", f: ADC},
	0x65: {n: "ADC", d: rd, m: "zpg", f: ADC},
	0x66: {n: "ROR", d: rw, m: "zpg", f: ROR_mem},
	0x68: {n: "PLA", d: no, m: "imp", f: PLA},
	0x69: {n: "ADC", d: rd, m: "imm", f: ADC},
	0x6A: {n: "ROR", d: no, m: "acc", f: ROR},
	0x6C: {n: "JMP", d: no, m: "ind", f: JMP},
	0x6D: {n: "ADC", d: rd, m: "abs", f: ADC},
	0x6E: {n: "ROR", d: rw, m: "abs", f: ROR_mem},
	0x70: {n: "BVS", d: no, m: "rel", f: branch(Overflow, true)},
	0x71: {n: "ADC", d: rd, m: "izy", f: ADC},
	0x75: {n: "ADC", d: rd, m: "zpx", f: ADC},
	0x76: {n: "ROR", d: rw, m: "zpx", f: ROR_mem},
	0x78: {n: "SEI", d: no, m: "imp", f: set(Interrupt)},
	0x79: {n: "ADC", d: rd, m: "aby", f: ADC},
	0x7D: {n: "ADC", d: rd, m: "abx", f: ADC},
	0x7E: {n: "ROR", d: rw, m: "abxd", f: ROR_mem},
	0x81: {n: "STA", d: no, m: "izx", f: ST("A")},
	0x84: {n: "STY", d: no, m: "zpg", f: ST("Y")},
	0x85: {n: "STA", d: no, m: "zpg", f: ST("A")},
	0x86: {n: "STX", d: no, m: "zpg", f: ST("X")},
	0x88: {n: "DEY", d: no, m: "imp", f: dey},
	0x8A: {n: "TXA", d: no, m: "imp", f: T("X", "A")},
	0x8C: {n: "STY", d: no, m: "abs", f: ST("Y")},
	0x8D: {n: "STA", d: no, m: "abs", f: ST("A")},
	0x8E: {n: "STX", d: no, m: "abs", f: ST("X")},
	0x90: {n: "BCC", d: no, m: "rel", f: branch(Carry, false)},
	0x91: {n: "STA", d: no, m: "izyd", f: ST("A")},
	0x94: {n: "STY", d: no, m: "zpx", f: ST("Y")},
	0x95: {n: "STA", d: no, m: "zpx", f: ST("A")},
	0x96: {n: "STX", d: no, m: "zpy", f: ST("X")},
	0x98: {n: "TYA", d: no, m: "imp", f: T("Y", "A")},
	0x99: {n: "STA", d: no, m: "abyd", f: ST("A")},
	0x9A: {n: "TXS", d: no, m: "imp", f: T("X", "SP")},
	0x9D: {n: "STA", d: no, m: "abxd", f: ST("A")},
	0xA0: {n: "LDY", d: rd, m: "imm", f: LD("Y")},
	0xA1: {n: "LDA", d: rd, m: "izx", f: LD("A")},
	0xA2: {n: "LDX", d: rd, m: "imm", f: LD("X")},
	0xA4: {n: "LDY", d: rd, m: "zpg", f: LD("Y")},
	0xA5: {n: "LDA", d: rd, m: "zpg", f: LD("A")},
	0xA6: {n: "LDX", d: rd, m: "zpg", f: LD("X")},
	0xA8: {n: "TAY", d: no, m: "imp", f: T("A", "Y")},
	0xA9: {n: "LDA", d: rd, m: "imm", f: LD("A")},
	0xAA: {n: "TAX", d: no, m: "imp", f: T("A", "X")},
	0xAC: {n: "LDY", d: rd, m: "abs", f: LD("Y")},
	0xAD: {n: "LDA", d: rd, m: "abs", f: LD("A")},
	0xAE: {n: "LDX", d: rd, m: "abs", f: LD("X")},
	0xB0: {n: "BCS", d: no, m: "rel", f: branch(Carry, true)},
	0xB1: {n: "LDA", d: rd, m: "izy", f: LD("A")},
	0xB4: {n: "LDY", d: rd, m: "zpx", f: LD("Y")},
	0xB5: {n: "LDA", d: rd, m: "zpx", f: LD("A")},
	0xB6: {n: "LDX", d: rd, m: "zpy", f: LD("X")},
	0xB8: {n: "CLV", d: no, m: "imp", f: clear(Overflow)},
	0xB9: {n: "LDA", d: rd, m: "aby", f: LD("A")},
	0xBA: {n: "TSX", d: no, m: "imp", f: T("SP", "X")},
	0xBC: {n: "LDY", d: rd, m: "abx", f: LD("Y")},
	0xBD: {n: "LDA", d: rd, m: "abx", f: LD("A")},
	0xBE: {n: "LDX", d: rd, m: "aby", f: LD("X")},
	0xC0: {n: "CPY", d: rd, m: "imm", f: cmp("Y")},
	0xC1: {n: "CMP", d: rd, m: "izx", f: cmp("A")},
	0xC4: {n: "CPY", d: rd, m: "zpg", f: cmp("Y")},
	0xC5: {n: "CMP", d: rd, m: "zpg", f: cmp("A")},
	0xC6: {n: "DEC", d: rd, m: "zpg", f: DEC},
	0xC8: {n: "INY", d: no, m: "imp", f: iny},
	0xC9: {n: "CMP", d: rd, m: "imm", f: cmp("A")},
	0xCA: {n: "DEX", d: no, m: "imp", f: dex},
	0xCC: {n: "CPY", d: rd, m: "abs", f: cmp("Y")},
	0xCD: {n: "CMP", d: rd, m: "abs", f: cmp("A")},
	0xCE: {n: "DEC", d: rd, m: "abs", f: DEC},
	0xD0: {n: "BNE", d: no, m: "rel", f: branch(Zero, false)},
	0xD1: {n: "CMP", d: rd, m: "izy", f: cmp("A")},
	0xD5: {n: "CMP", d: rd, m: "zpx", f: cmp("A")},
	0xD6: {n: "DEC", d: rd, m: "zpx", f: DEC},
	0xD8: {n: "CLD", d: no, m: "imp", f: clear(Decimal)},
	0xD9: {n: "CMP", d: rd, m: "aby", f: cmp("A")},
	0xDD: {n: "CMP", d: rd, m: "abx", f: cmp("A")},
	0xDE: {n: "DEC", d: rd, m: "abxd", f: DEC},
	0xE0: {n: "CPX", d: rd, m: "imm", f: cmp("X")},
	0xE1: {n: "SBC", d: rd, m: "izx", f: SBC},
	0xE4: {n: "CPX", d: rd, m: "zpg", f: cmp("X")},
	0xE5: {n: "SBC", d: rd, m: "zpg", f: SBC},
	0xE6: {n: "INC", d: rd, m: "zpg", f: INC},
	0xE8: {n: "INX", d: no, m: "imp", f: inx},
	0xE9: {n: "SBC", d: rd, m: "imm", f: SBC},
	0xEA: {n: "NOP", d: no, m: "imp", f: NOP},
	0xEC: {n: "CPX", d: rd, m: "abs", f: cmp("X")},
	0xED: {n: "SBC", d: rd, m: "abs", f: SBC},
	0xEE: {n: "INC", d: rd, m: "abs", f: INC},
	0xF0: {n: "BEQ", d: no, m: "rel", f: branch(Zero, true)},
	0xF1: {n: "SBC", d: rd, m: "izy", f: SBC},
	0xF5: {n: "SBC", d: rd, m: "zpx", f: SBC},
	0xF6: {n: "INC", d: rd, m: "zpx", f: INC},
	0xF8: {n: "SED", d: no, m: "imp", f: set(Decimal)},
	0xF9: {n: "SBC", d: rd, m: "aby", f: SBC},
	0xFD: {n: "SBC", d: rd, m: "abx", f: SBC},
	0xFE: {n: "INC", d: rd, m: "abxd", f: INC},
}

type addrmode struct {
	human string // human readable name
	f     func()
}

var addrModes = map[string]addrmode{
	"imp":  {f: imp, human: `implied addressing.`},
	"acc":  {f: acc, human: `adressing accumulator.`},
	"rel":  {f: rel, human: `relative addressing.`},
	"abs":  {f: abs, human: `absolute addressing.`},
	"abx":  {f: abx(false), human: `absolute indexed X.`},
	"abxd": {f: abx(true), human: `absolute indexed X.`},
	"aby":  {f: aby(false), human: `absolute indexed Y.`},
	"abyd": {f: aby(true), human: `absolute indexed Y.`},
	"imm":  {f: imm, human: `immediate addressing.`},
	"ind":  {f: ind, human: `indirect addressing.`},
	"izx":  {f: izx, human: `indexed indirect addressing (zp,X).`},
	"izy":  {f: izy(false), human: `indirect indexed addressing (zp),Y.`},
	"izyd": {f: izy(true), human: `indirect indexed addressing (zp),Y.`},
	"zpg":  {f: zpg, human: `zero page addressing.`},
	"zpx":  {f: zpx, human: `indexed addressing: zeropage,X.`},
	"zpy":  {f: zpy, human: `indexed addressing: zeropage,Y.`},
}

type cpuFlag int

const (
	Carry cpuFlag = 1 << iota
	Zero
	Interrupt
	Decimal
	Break
	Reserved
	Overflow
	Negative
)

var flagNames = map[cpuFlag]string{
	Carry:     "Carry",
	Zero:      "Zero",
	Interrupt: "Interrupt",
	Decimal:   "Decimal",
	Break:     "Break",
	Reserved:  "Reserved",
	Overflow:  "Overflow",
	Negative:  "Negative",
}

func (f cpuFlag) String() string { return flagNames[f] }

func flagList(flags []cpuFlag) string {
	var s []string
	for _, f := range flags {
		s = append(s, f.String())
	}
	return strings.Join(s, "|")
}

func setFlags(flags ...cpuFlag)   { printf(`cpu.P.setFlags(%s)`, flagList(flags)) }
func clearFlags(flags ...cpuFlag) { printf(`cpu.P.clearFlags(%s)`, flagList(flags)) }

func If(format string, args ...any) block {
	printf(`if %s {`, fmt.Sprintf(format, args...))
	return block{}
}

func IfFlag(f cpuFlag) block {
	printf(`if cpu.P.hasFlag(%s) {`, f)
	return block{}
}

type block struct{}

func (b block) setFlags(flags ...cpuFlag) block {
	setFlags(flags...)
	return b
}

func (b block) printf(format string, args ...any) block {
	printf("%s", fmt.Sprintf(format, args...))
	return b
}

func (b block) End() { printf(`}`) }

// addressing modes
func imm()                      {}
func acc()                      { printf("cpu.tick()") }
func imp()                      { printf("cpu.tick()") }
func ind()                      { printf("oper := cpu.ind()") }
func rel()                      { printf("oper := cpu.rel()") }
func zpg()                      { printf(`oper := cpu.zpg()`) }
func zpx()                      { printf(`oper := cpu.zpx()`) }
func zpy()                      { printf(`oper := cpu.zpy()`) }
func abs()                      { printf("oper := cpu.abs()") }
func abx(dummyread bool) func() { return func() { printf("oper := cpu.abx(%t)", dummyread) } }
func aby(dummyread bool) func() { return func() { printf("oper := cpu.aby(%t)", dummyread) } }
func izx()                      { printf(`oper := cpu.izx()`) }
func izy(dummyread bool) func() { return func() { printf("oper := cpu.izy(%t)", dummyread) } }

// helpers

func branch(f cpuFlag, val bool) func() {
	return func() {
		if val {
			printf(`cpu.branch(oper, cpu.P.hasFlag(%s))`, f)
		} else {
			printf(`cpu.branch(oper, !cpu.P.hasFlag(%s))`, f)
		}
	}
}

func copybits(dst, src, mask string) string {
	return fmt.Sprintf(`((%s) & (^%s)) | ((%s) & (%s))`, dst, mask, src, mask)
}

// Dummy read cycles only advance the clock, so registers with read
// side effects are read once per instruction.
func dummycycle() {
	printf(`cpu.tick() // dummy cycle`)
}

// Read-modify-write instructions write the unmodified value back before
// the modified one.
func dummywrite() {
	printf(`cpu.Write8(oper, val) // dummy write`)
}

//
// opcode generators
//

func ADC() { printf(`cpu.add(val)`) }

func AND() { printf(`cpu.setreg(&cpu.A, cpu.A&val)`) }

func ASL() {
	printf(`carry := val & 0x80`)
	printf(`val <<= 1`)
	clearFlags(Zero, Negative, Carry)
	printf(`cpu.P.setNZ(val)`)
	If(`carry != 0`).
		setFlags(Carry).
		End()
}

func ASL_mem() {
	dummywrite()
	ASL()
}

func BIT() {
	clearFlags(Zero, Overflow, Negative)
	printf(`cpu.P |= P(val & 0b11000000)`)
	If(`cpu.A&val == 0`).
		setFlags(Zero).
		End()
}

func DEC() {
	dummywrite()
	printf(`val--`)
	clearFlags(Zero, Negative)
	printf(`cpu.P.setNZ(val)`)
	printf(`cpu.Write8(oper, val)`)
}

func EOR() { printf(`cpu.setreg(&cpu.A, cpu.A^val)`) }

func INC() {
	dummywrite()
	printf(`val++`)
	clearFlags(Zero, Negative)
	printf(`cpu.P.setNZ(val)`)
	printf(`cpu.Write8(oper, val)`)
}

func JMP() { printf(`cpu.PC = oper`) }

func LSR_mem() {
	dummywrite()
	LSR()
}

func LSR() {
	printf(`carry := val & 0x01`)
	printf(`val >>= 1`)
	clearFlags(Zero, Negative, Carry)
	printf(`cpu.P.setNZ(val)`)
	If(`carry != 0`).
		setFlags(Carry).
		End()
}

func NOP() {}

func ORA() { printf(`cpu.setreg(&cpu.A, cpu.A|val)`) }

func PHA() { printf(`cpu.push8(cpu.A)`) }

func PHP() {
	printf(`p := cpu.P | Break | Reserved`)
	printf(`cpu.push8(uint8(p))`)
}

func PLA() {
	dummycycle()
	printf(`cpu.setreg(&cpu.A, cpu.pull8())`)
}

func PLP() {
	dummycycle()
	printf(`p := cpu.pull8()`)
	printf(`const mask uint8 = 0b11001111 // ignore B and U bits`)
	printf(`cpu.P = P(%s)`, copybits(`uint8(cpu.P)`, `p`, `mask`))
}

func ROL_mem() {
	dummywrite()
	ROL()
}

func ROL() {
	printf(`carry := val & 0x80`)
	printf(`val <<= 1`)
	IfFlag(Carry).
		printf(`val |= 1 << 0`).
		End()
	clearFlags(Zero, Negative, Carry)
	printf(`cpu.P.setNZ(val)`)
	If(`carry != 0`).
		setFlags(Carry).
		End()
}

func ROR_mem() {
	dummywrite()
	ROR()
}

func ROR() {
	printf(`carry := val & 0x01`)
	printf(`val >>= 1`)
	IfFlag(Carry).
		printf(`val |= 1 << 7`).
		End()
	clearFlags(Zero, Negative, Carry)
	printf(`cpu.P.setNZ(val)`)
	If(`carry != 0`).
		setFlags(Carry).
		End()
}

func RTI() {
	dummycycle()
	printf(`p := cpu.pull8()`)
	printf(`const mask uint8 = 0b11001111 // ignore B and U bits`)
	printf(`cpu.P = P(%s)`, copybits(`uint8(cpu.P)`, `p`, `mask`))
	printf(`cpu.PC = cpu.pull16()`)
	printf(`cpu.dbg.Return(cpu.PC)`)
}

func RTS() {
	dummycycle()
	printf(`cpu.PC = cpu.pull16()`)
	printf(`cpu.tick()`)
	printf(`cpu.PC++`)
	printf(`cpu.dbg.Return(cpu.PC)`)
}

func SBC() { printf(`cpu.add(val ^ 0xff)`) }

//
// opcode helpers
//

func LD(reg string) func() {
	return func() { printf(`cpu.setreg(&cpu.%s, val)`, reg) }
}

func ST(reg string) func() {
	return func() { printf(`cpu.Write8(oper, cpu.%s)`, reg) }
}

func cmp(reg string) func() {
	return func() {
		clearFlags(Zero, Negative, Carry)
		printf(`cpu.P.setNZ(cpu.%s - val)`, reg)
		If(`val <= cpu.%s`, reg).
			setFlags(Carry).
			End()
	}
}

func T(src, dst string) func() {
	return func() {
		if dst == "SP" {
			printf(`cpu.SP = cpu.%s`, src)
			return
		}
		printf(`cpu.setreg(&cpu.%s, cpu.%s)`, dst, src)
	}
}

func inx() { printf(`cpu.setreg(&cpu.X, cpu.X+1)`) }
func iny() { printf(`cpu.setreg(&cpu.Y, cpu.Y+1)`) }
func dex() { printf(`cpu.setreg(&cpu.X, cpu.X-1)`) }
func dey() { printf(`cpu.setreg(&cpu.Y, cpu.Y-1)`) }

func clear(f cpuFlag) func() { return func() { clearFlags(f) } }
func set(f cpuFlag) func()   { return func() { setFlags(f) } }

func header() {
	printf(`// Code generated by cpugen/gen_nes6502.go. DO NOT EDIT.`)
	printf(``)
	printf(`package %s`, pkgname)
	printf(``)
}

func opcodes() {
	for code, def := range defs {
		if def.f == nil {
			continue
		}

		mode := addrModes[def.m]
		printf(`// %s - %s`, def.n, mode.human)
		printf(`func opcode%02X(cpu *CPU) {`, code)
		mode.f()

		switch {
		case def.m == "acc":
			printf(`val := cpu.A`)
		case def.m == "imm":
			printf(`val := cpu.fetch8()`)
		case def.d == rd, def.d == rw:
			printf(`val := cpu.Read8(oper)`)
		}

		def.f()

		switch {
		case def.m == "acc":
			printf(`cpu.A = val`)
		case def.d == rw:
			printf(`cpu.Write8(oper, val)`)
		}

		printf(`}`)
		printf(``)
	}
}

func opcodesTable() {
	bb := &strings.Builder{}
	for i := range 16 {
		for j := range 16 {
			def := defs[i*16+j]
			switch {
			case def.n == "":
				bb.WriteString("nil, ")
			case def.f == nil:
				fmt.Fprintf(bb, "%s, ", def.n)
			default:
				fmt.Fprintf(bb, "opcode%02X, ", i*16+j)
			}
		}
		bb.WriteByte('\n')
	}
	printf(`// nes 6502 opcodes table, nil entries are undocumented opcodes.`)
	printf(`var ops = [256]func(*CPU){`)
	printf("%s", bb.String())
	printf(`}`)
	printf(``)
}

func disasmTable() {
	bb := &strings.Builder{}
	for i := range 16 {
		for j := range 16 {
			name := defs[i*16+j].m
			if name == "" {
				name = "ill"
			}
			name = strings.ToUpper(name[:1]) + name[1:3]
			fmt.Fprintf(bb, "disasm%s, ", name)
		}
		bb.WriteByte('\n')
	}
	printf(`// nes 6502 opcodes disassembly table`)
	printf(`var disasmOps = [256]func(*CPU, uint16) DisasmOp{`)
	printf("%s", bb.String())
	printf(`}`)
	printf(``)
}

func opcodeNamesTable() {
	var names [256]string
	for i, def := range defs {
		names[i] = strconv.Quote(def.n)
	}
	printf(`var opcodeNames = [256]string{`)
	for i := range 16 {
		printf("%s,", strings.Join(names[i*16:i*16+16], ", "))
	}
	printf(`}`)
}

func printf(format string, args ...any) {
	fmt.Fprintf(g, "%s\n", fmt.Sprintf(format, args...))
}

var g io.Writer

func main() {
	log.SetFlags(0)
	outf := flag.String("out", "opcodes.go", "output file")
	flag.Parse()

	bb := &bytes.Buffer{}
	g = bb

	header()
	opcodes()
	opcodesTable()
	disasmTable()
	opcodeNamesTable()

	if *outf == "stdout" {
		os.Stdout.Write(bb.Bytes())
		return
	}

	buf, err := format.Source(bb.Bytes())
	if err != nil {
		if err := os.WriteFile(*outf, bb.Bytes(), 0644); err != nil {
			log.Fatalf("can't write to %s: %s", *outf, err)
		}
		log.Fatalf("'gofmt' failed\n%s", err)
	}

	if err := os.WriteFile(*outf, buf, 0644); err != nil {
		log.Fatalf("can't write to %s: %s", *outf, err)
	}
}
