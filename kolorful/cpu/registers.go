package cpu

import (
	"fmt"

	"github.com/valerio/go-kolorful/kolorful/bit"
)

// Register names an operand slot. The first eight values follow the 3-bit
// encoding used by opcodes, HLIndirect included, so an r8 field converts
// directly.
type Register uint8

const (
	B Register = iota
	C
	D
	E
	H
	L
	HLIndirect
	A
	BC
	DE
	HL
	SP
	AF
	PC
)

var registerNames = [...]string{"B", "C", "D", "E", "H", "L", "[HL]", "A", "BC", "DE", "HL", "SP", "AF", "PC"}

func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(%d)", uint8(r))
}

// Is8Bit reports whether r is one of the 8-bit operand slots.
func (r Register) Is8Bit() bool {
	return r <= A
}

// PairFamily selects the meaning of the 2-bit register pair field, which
// depends on the instruction: PUSH/POP address AF where the others use SP.
type PairFamily uint8

const (
	PairSP PairFamily = iota
	PairAF
)

// DecodeR8 extracts a 3-bit register field at shift (0 or 3).
func DecodeR8(b byte, shift uint8) Register {
	return Register(bit.Field(b, shift, 3))
}

// DecodeR16 extracts the register pair at bits 5-4.
func DecodeR16(b byte, family PairFamily) Register {
	switch bit.Field(b, 4, 2) {
	case 0:
		return BC
	case 1:
		return DE
	case 2:
		return HL
	default:
		if family == PairAF {
			return AF
		}
		return SP
	}
}

// Registers is the register file. The 8-bit registers are views over the
// high and low halves of the pairs, F being the low half of AF.
type Registers struct {
	AF, BC, DE, HL, SP, PC uint16
}

func (r *Registers) A() byte { return bit.High(r.AF) }
func (r *Registers) F() byte { return bit.Low(r.AF) }
func (r *Registers) B() byte { return bit.High(r.BC) }
func (r *Registers) C() byte { return bit.Low(r.BC) }
func (r *Registers) D() byte { return bit.High(r.DE) }
func (r *Registers) E() byte { return bit.Low(r.DE) }
func (r *Registers) H() byte { return bit.High(r.HL) }
func (r *Registers) L() byte { return bit.Low(r.HL) }

func (r *Registers) SetA(v byte) { r.AF = bit.Combine(v, bit.Low(r.AF)) }
func (r *Registers) SetF(v byte) { r.AF = bit.Combine(bit.High(r.AF), v) }
func (r *Registers) SetB(v byte) { r.BC = bit.Combine(v, bit.Low(r.BC)) }
func (r *Registers) SetC(v byte) { r.BC = bit.Combine(bit.High(r.BC), v) }
func (r *Registers) SetD(v byte) { r.DE = bit.Combine(v, bit.Low(r.DE)) }
func (r *Registers) SetE(v byte) { r.DE = bit.Combine(bit.High(r.DE), v) }
func (r *Registers) SetH(v byte) { r.HL = bit.Combine(v, bit.Low(r.HL)) }
func (r *Registers) SetL(v byte) { r.HL = bit.Combine(bit.High(r.HL), v) }

// ReadR8 reads an 8-bit register. HLIndirect is a memory operand and is
// handled by the CPU, never here.
func (r *Registers) ReadR8(reg Register) byte {
	switch reg {
	case B:
		return r.B()
	case C:
		return r.C()
	case D:
		return r.D()
	case E:
		return r.E()
	case H:
		return r.H()
	case L:
		return r.L()
	case A:
		return r.A()
	default:
		panic(fmt.Sprintf("cpu: %v is not an 8-bit register", reg))
	}
}

func (r *Registers) WriteR8(reg Register, v byte) {
	switch reg {
	case B:
		r.SetB(v)
	case C:
		r.SetC(v)
	case D:
		r.SetD(v)
	case E:
		r.SetE(v)
	case H:
		r.SetH(v)
	case L:
		r.SetL(v)
	case A:
		r.SetA(v)
	default:
		panic(fmt.Sprintf("cpu: %v is not an 8-bit register", reg))
	}
}

func (r *Registers) ReadR16(reg Register) uint16 {
	switch reg {
	case AF:
		return r.AF
	case BC:
		return r.BC
	case DE:
		return r.DE
	case HL:
		return r.HL
	case SP:
		return r.SP
	case PC:
		return r.PC
	default:
		panic(fmt.Sprintf("cpu: %v is not a 16-bit register", reg))
	}
}

func (r *Registers) WriteR16(reg Register, v uint16) {
	switch reg {
	case AF:
		r.AF = v
	case BC:
		r.BC = v
	case DE:
		r.DE = v
	case HL:
		r.HL = v
	case SP:
		r.SP = v
	case PC:
		r.PC = v
	default:
		panic(fmt.Sprintf("cpu: %v is not a 16-bit register", reg))
	}
}
