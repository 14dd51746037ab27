package cpu

import (
	"fmt"

	"github.com/valerio/go-kolorful/kolorful/bit"
)

// extra T-cycles spent by a conditional branch when it is taken
const (
	takenJR   = 4
	takenJP   = 4
	takenCall = 12
	takenRet  = 12
)

// execute runs a decoded instruction and returns the cycles it took.
// Bus faults do not come back as errors here: they unwind to Step.
func (c *CPU) execute(instr Instruction) (int, error) {
	cycles := instr.Info().Cycles

	switch i := instr.(type) {
	case Nop:
	case Halt:
		c.halted = true
	case Stop:
		return cycles, ErrNotImplemented
	case EI:
		c.ime = true
	case DI:
		c.ime = false

	// 8-bit arithmetic
	case AddAR8:
		c.add(c.reg.ReadR8(i.R), false)
	case AddAN8:
		c.add(i.N, false)
	case AddAHL:
		c.add(c.read(c.reg.HL), false)
	case AdcAR8:
		c.add(c.reg.ReadR8(i.R), true)
	case AdcAN8:
		c.add(i.N, true)
	case AdcAHL:
		c.add(c.read(c.reg.HL), true)
	case SubAR8:
		c.sub(c.reg.ReadR8(i.R), false, true)
	case SubAN8:
		c.sub(i.N, false, true)
	case SubAHL:
		c.sub(c.read(c.reg.HL), false, true)
	case SbcAR8:
		c.sub(c.reg.ReadR8(i.R), true, true)
	case SbcAN8:
		c.sub(i.N, true, true)
	case SbcAHL:
		c.sub(c.read(c.reg.HL), true, true)
	case CpAR8:
		c.sub(c.reg.ReadR8(i.R), false, false)
	case CpAN8:
		c.sub(i.N, false, false)
	case CpAHL:
		c.sub(c.read(c.reg.HL), false, false)
	case AndAR8:
		c.and(c.reg.ReadR8(i.R))
	case AndAN8:
		c.and(i.N)
	case AndAHL:
		c.and(c.read(c.reg.HL))
	case OrAR8:
		c.or(c.reg.ReadR8(i.R))
	case OrAN8:
		c.or(i.N)
	case OrAHL:
		c.or(c.read(c.reg.HL))
	case XorAR8:
		c.xor(c.reg.ReadR8(i.R))
	case XorAN8:
		c.xor(i.N)
	case XorAHL:
		c.xor(c.read(c.reg.HL))

	case IncR8:
		c.reg.WriteR8(i.R, c.inc8(c.reg.ReadR8(i.R)))
	case DecR8:
		c.reg.WriteR8(i.R, c.dec8(c.reg.ReadR8(i.R)))
	case IncHLInd:
		c.write(c.reg.HL, c.inc8(c.read(c.reg.HL)))
	case DecHLInd:
		c.write(c.reg.HL, c.dec8(c.read(c.reg.HL)))

	// 16-bit arithmetic
	case IncR16:
		c.reg.WriteR16(i.R, c.reg.ReadR16(i.R)+1)
	case DecR16:
		c.reg.WriteR16(i.R, c.reg.ReadR16(i.R)-1)
	case IncSP:
		c.reg.SP++
	case DecSP:
		c.reg.SP--
	case AddHLR16:
		c.addHL(c.reg.ReadR16(i.R))
	case AddHLSP:
		c.addHL(c.reg.SP)
	case AddSPE8:
		c.reg.SP = c.spOffset(i.E)

	// jumps and calls
	case JpN16:
		c.reg.PC = i.Addr
	case JpHL:
		c.reg.PC = c.reg.HL
	case JpCCN16:
		if c.condition(i.Cond) {
			c.reg.PC = i.Addr
			cycles += takenJP
		}
	case JrE8:
		c.reg.PC = bit.AddSigned(c.reg.PC, i.E)
	case JrCCE8:
		if c.condition(i.Cond) {
			c.reg.PC = bit.AddSigned(c.reg.PC, i.E)
			cycles += takenJR
		}
	case CallN16:
		c.call(i.Addr)
	case CallCCN16:
		if c.condition(i.Cond) {
			c.call(i.Addr)
			cycles += takenCall
		}
	case Ret:
		c.reg.PC = c.pop()
	case RetCC:
		if c.condition(i.Cond) {
			c.reg.PC = c.pop()
			cycles += takenRet
		}
	case RetI:
		c.reg.PC = c.pop()
		c.ime = true
	case Rst:
		c.call(i.Vector)

	// loads
	case LdR8R8:
		c.reg.WriteR8(i.Dst, c.reg.ReadR8(i.Src))
	case LdR8N8:
		c.reg.WriteR8(i.R, i.N)
	case LdR8HL:
		c.reg.WriteR8(i.R, c.read(c.reg.HL))
	case LdHLR8:
		c.write(c.reg.HL, c.reg.ReadR8(i.R))
	case LdHLN8:
		c.write(c.reg.HL, i.N)
	case LdR16N16:
		c.reg.WriteR16(i.R, i.N)
	case LdSPN16:
		c.reg.SP = i.N
	case LdR16A:
		c.write(c.reg.ReadR16(i.R), c.reg.A())
	case LdAR16:
		c.reg.SetA(c.read(c.reg.ReadR16(i.R)))
	case LdiHLA:
		c.write(c.reg.HL, c.reg.A())
		c.reg.HL++
	case LdiAHL:
		c.reg.SetA(c.read(c.reg.HL))
		c.reg.HL++
	case LddHLA:
		c.write(c.reg.HL, c.reg.A())
		c.reg.HL--
	case LddAHL:
		c.reg.SetA(c.read(c.reg.HL))
		c.reg.HL--
	case LdA16A:
		c.write(i.Addr, c.reg.A())
	case LdAA16:
		c.reg.SetA(c.read(i.Addr))
	case LdN16SP:
		c.write(i.Addr, bit.Low(c.reg.SP))
		c.write(i.Addr+1, bit.High(c.reg.SP))
	case LdHLSPE8:
		c.reg.HL = c.spOffset(i.E)
	case LdSPHL:
		c.reg.SP = c.reg.HL
	case LdhCA:
		c.write(0xFF00|uint16(c.reg.C()), c.reg.A())
	case LdhAC:
		c.reg.SetA(c.read(0xFF00 | uint16(c.reg.C())))
	case LdhN8A:
		c.write(0xFF00|uint16(i.N), c.reg.A())
	case LdhAN8:
		c.reg.SetA(c.read(0xFF00 | uint16(i.N)))

	// stack
	case PushR16:
		c.push(c.reg.ReadR16(i.R))
	case PopR16:
		v := c.pop()
		if i.R == AF {
			v &= 0xFFF0
		}
		c.reg.WriteR16(i.R, v)

	// accumulator and flag ops
	case Rlca:
		c.reg.SetA(c.rlc(c.reg.A()))
		c.reg.SetZero(false)
	case Rrca:
		c.reg.SetA(c.rrc(c.reg.A()))
		c.reg.SetZero(false)
	case Rla:
		c.reg.SetA(c.rl(c.reg.A()))
		c.reg.SetZero(false)
	case Rra:
		c.reg.SetA(c.rr(c.reg.A()))
		c.reg.SetZero(false)
	case Daa:
		c.daa()
	case Cpl:
		c.reg.SetA(^c.reg.A())
		c.reg.SetSubtract(true)
		c.reg.SetHalfCarry(true)
	case Scf:
		c.reg.SetSubtract(false)
		c.reg.SetHalfCarry(false)
		c.reg.SetCarry(true)
	case Ccf:
		c.reg.SetSubtract(false)
		c.reg.SetHalfCarry(false)
		c.reg.SetCarry(!c.reg.Carry())

	default:
		if !c.executePrefixed(instr) {
			panic(fmt.Sprintf("cpu: no execute rule for %T", instr))
		}
	}

	return cycles, nil
}

func (c *CPU) condition(cc Condition) bool {
	switch cc {
	case CondNZ:
		return !c.reg.Zero()
	case CondZ:
		return c.reg.Zero()
	case CondNC:
		return !c.reg.Carry()
	case CondC:
		return c.reg.Carry()
	}
	return false
}

// push stores the high byte at SP-1 and the low byte at SP-2.
func (c *CPU) push(v uint16) {
	c.reg.SP--
	c.write(c.reg.SP, bit.High(v))
	c.reg.SP--
	c.write(c.reg.SP, bit.Low(v))
}

func (c *CPU) pop() uint16 {
	low := c.read(c.reg.SP)
	c.reg.SP++
	high := c.read(c.reg.SP)
	c.reg.SP++
	return bit.Combine(high, low)
}

// call pushes the address of the next instruction and jumps.
func (c *CPU) call(target uint16) {
	c.push(c.reg.PC)
	c.reg.PC = target
}

// add sets A to A+v (+carry for ADC).
func (c *CPU) add(v byte, withCarry bool) {
	var carry uint32
	if withCarry {
		carry = c.reg.carryBit()
	}
	a := uint32(c.reg.A())
	result := a + uint32(v) + carry
	half := a&0xF + uint32(v)&0xF + carry

	c.reg.setFlags(result, half, ADD8)
	c.reg.SetA(byte(result))
}

// sub computes A-v (-carry for SBC). CP runs it without storing.
func (c *CPU) sub(v byte, withCarry, store bool) {
	var carry uint32
	if withCarry {
		carry = c.reg.carryBit()
	}
	a := uint32(c.reg.A())
	result := a - uint32(v) - carry
	half := a&0xF - uint32(v)&0xF - carry

	c.reg.setFlags(result, half, SUB8)
	if store {
		c.reg.SetA(byte(result))
	}
}

func (c *CPU) and(v byte) {
	c.reg.SetA(c.reg.A() & v)
	c.logicFlags(true)
}

func (c *CPU) or(v byte) {
	c.reg.SetA(c.reg.A() | v)
	c.logicFlags(false)
}

func (c *CPU) xor(v byte) {
	c.reg.SetA(c.reg.A() ^ v)
	c.logicFlags(false)
}

func (c *CPU) logicFlags(half bool) {
	c.reg.SetZero(c.reg.A() == 0)
	c.reg.SetSubtract(false)
	c.reg.SetHalfCarry(half)
	c.reg.SetCarry(false)
}

// inc8 and dec8 leave Carry alone.
func (c *CPU) inc8(v byte) byte {
	r := v + 1
	c.reg.SetZero(r == 0)
	c.reg.SetSubtract(false)
	c.reg.SetHalfCarry(v&0xF == 0xF)
	return r
}

func (c *CPU) dec8(v byte) byte {
	r := v - 1
	c.reg.SetZero(r == 0)
	c.reg.SetSubtract(true)
	c.reg.SetHalfCarry(v&0xF == 0)
	return r
}

func (c *CPU) addHL(v uint16) {
	hl := uint32(c.reg.HL)
	result := hl + uint32(v)
	half := hl&0xFFF + uint32(v)&0xFFF

	c.reg.setFlags(result, half, ADD16)
	c.reg.HL = uint16(result)
}

// spOffset returns SP+e for ADD SP,e8 and LD HL,SP+e8. The flags come from
// the unsigned add of e to the low byte of SP.
func (c *CPU) spOffset(e int8) uint16 {
	sp := c.reg.SP
	u := uint16(uint8(e))

	c.reg.SetZero(false)
	c.reg.SetSubtract(false)
	c.reg.SetHalfCarry(sp&0xF+u&0xF > 0xF)
	c.reg.SetCarry(sp&0xFF+u > 0xFF)
	return bit.AddSigned(sp, e)
}

// daa adjusts A to packed BCD after an add or a subtract.
func (c *CPU) daa() {
	a := c.reg.A()
	carry := c.reg.Carry()

	if c.reg.Subtract() {
		if c.reg.HalfCarry() {
			a -= 0x06
		}
		if carry {
			a -= 0x60
		}
	} else {
		var adjust byte
		if c.reg.HalfCarry() || a&0x0F > 0x09 {
			adjust |= 0x06
		}
		if carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		a += adjust
	}

	c.reg.SetA(a)
	c.reg.SetZero(a == 0)
	c.reg.SetHalfCarry(false)
	c.reg.SetCarry(carry)
}
