package cpu

import "github.com/valerio/go-kolorful/kolorful/bit"

// executePrefixed runs the 0xCB instructions. Returns false if instr is
// not one of them.
func (c *CPU) executePrefixed(instr Instruction) bool {
	switch i := instr.(type) {
	case RlcR8:
		c.modifyR8(i.R, c.rlc)
	case RlcHL:
		c.modifyHL(c.rlc)
	case RrcR8:
		c.modifyR8(i.R, c.rrc)
	case RrcHL:
		c.modifyHL(c.rrc)
	case RlR8:
		c.modifyR8(i.R, c.rl)
	case RlHL:
		c.modifyHL(c.rl)
	case RrR8:
		c.modifyR8(i.R, c.rr)
	case RrHL:
		c.modifyHL(c.rr)
	case SlaR8:
		c.modifyR8(i.R, c.sla)
	case SlaHL:
		c.modifyHL(c.sla)
	case SraR8:
		c.modifyR8(i.R, c.sra)
	case SraHL:
		c.modifyHL(c.sra)
	case SwapR8:
		c.modifyR8(i.R, c.swap)
	case SwapHL:
		c.modifyHL(c.swap)
	case SrlR8:
		c.modifyR8(i.R, c.srl)
	case SrlHL:
		c.modifyHL(c.srl)

	case BitR8:
		c.testBit(i.Bit, c.reg.ReadR8(i.R))
	case BitHL:
		c.testBit(i.Bit, c.read(c.reg.HL))
	case ResR8:
		c.modifyR8(i.R, func(v byte) byte { return bit.Reset(i.Bit, v) })
	case ResHL:
		c.modifyHL(func(v byte) byte { return bit.Reset(i.Bit, v) })
	case SetR8:
		c.modifyR8(i.R, func(v byte) byte { return bit.Set(i.Bit, v) })
	case SetHL:
		c.modifyHL(func(v byte) byte { return bit.Set(i.Bit, v) })

	default:
		return false
	}
	return true
}

func (c *CPU) modifyR8(r Register, f func(byte) byte) {
	c.reg.WriteR8(r, f(c.reg.ReadR8(r)))
}

// modifyHL is a read-modify-write of the byte at HL.
func (c *CPU) modifyHL(f func(byte) byte) {
	c.write(c.reg.HL, f(c.read(c.reg.HL)))
}

func (c *CPU) shiftFlags(result byte, carry bool) {
	c.reg.SetZero(result == 0)
	c.reg.SetSubtract(false)
	c.reg.SetHalfCarry(false)
	c.reg.SetCarry(carry)
}

func (c *CPU) rlc(v byte) byte {
	r := v<<1 | v>>7
	c.shiftFlags(r, v&0x80 != 0)
	return r
}

func (c *CPU) rrc(v byte) byte {
	r := v>>1 | v<<7
	c.shiftFlags(r, v&0x01 != 0)
	return r
}

// rl rotates left through carry.
func (c *CPU) rl(v byte) byte {
	r := v<<1 | byte(c.reg.carryBit())
	c.shiftFlags(r, v&0x80 != 0)
	return r
}

// rr rotates right through carry.
func (c *CPU) rr(v byte) byte {
	r := v>>1 | byte(c.reg.carryBit())<<7
	c.shiftFlags(r, v&0x01 != 0)
	return r
}

func (c *CPU) sla(v byte) byte {
	r := v << 1
	c.shiftFlags(r, v&0x80 != 0)
	return r
}

// sra keeps bit 7.
func (c *CPU) sra(v byte) byte {
	r := v>>1 | v&0x80
	c.shiftFlags(r, v&0x01 != 0)
	return r
}

func (c *CPU) srl(v byte) byte {
	r := v >> 1
	c.shiftFlags(r, v&0x01 != 0)
	return r
}

func (c *CPU) swap(v byte) byte {
	r := bit.SwapNibbles(v)
	c.shiftFlags(r, false)
	return r
}

// testBit sets Zero when bit n of v is clear. Carry is kept.
func (c *CPU) testBit(n, v byte) {
	c.reg.SetZero(!bit.IsSet(n, v))
	c.reg.SetSubtract(false)
	c.reg.SetHalfCarry(true)
}
