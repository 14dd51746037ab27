package cpu

// Flag is one of the 4 flags kept in the low byte of AF.
type Flag uint8

const (
	ZeroFlag      Flag = 0x80
	SubtractFlag  Flag = 0x40
	HalfCarryFlag Flag = 0x20
	CarryFlag     Flag = 0x10
)

// AluOp selects how setFlags interprets its wide intermediates.
type AluOp uint8

const (
	ADD8 AluOp = iota
	SUB8
	ADD16
)

func (r *Registers) Flag(f Flag) bool {
	return r.AF&uint16(f) != 0
}

func (r *Registers) SetFlag(f Flag, on bool) {
	if on {
		r.AF |= uint16(f)
		return
	}
	r.AF &^= uint16(f)
}

func (r *Registers) Zero() bool      { return r.Flag(ZeroFlag) }
func (r *Registers) Subtract() bool  { return r.Flag(SubtractFlag) }
func (r *Registers) HalfCarry() bool { return r.Flag(HalfCarryFlag) }
func (r *Registers) Carry() bool     { return r.Flag(CarryFlag) }

func (r *Registers) SetZero(on bool)      { r.SetFlag(ZeroFlag, on) }
func (r *Registers) SetSubtract(on bool)  { r.SetFlag(SubtractFlag, on) }
func (r *Registers) SetHalfCarry(on bool) { r.SetFlag(HalfCarryFlag, on) }
func (r *Registers) SetCarry(on bool)     { r.SetFlag(CarryFlag, on) }

// carryBit returns the carry flag as 0 or 1.
func (r *Registers) carryBit() uint32 {
	if r.Carry() {
		return 1
	}
	return 0
}

// setFlags derives the flags of an add or subtract from its unmasked
// intermediates. result is the full-width result and half the same
// operation restricted to the low nibble (8-bit) or low 12 bits (16-bit).
// Subtractions are computed in uint32, so a borrow wraps around and shows
// up as a value past the limit, the same way a carry does.
// ADD16 leaves Zero untouched.
func (r *Registers) setFlags(result, half uint32, op AluOp) {
	switch op {
	case ADD8, SUB8:
		r.SetZero(result&0xFF == 0)
		r.SetSubtract(op == SUB8)
		r.SetHalfCarry(half > 0x0F)
		r.SetCarry(result > 0xFF)
	case ADD16:
		r.SetSubtract(false)
		r.SetHalfCarry(half > 0x0FFF)
		r.SetCarry(result > 0xFFFF)
	}
}

// FlagString renders the flags as ZNHC, with '-' for cleared ones.
func (r *Registers) FlagString() string {
	out := []byte("----")
	for i, f := range []struct {
		flag Flag
		name byte
	}{{ZeroFlag, 'Z'}, {SubtractFlag, 'N'}, {HalfCarryFlag, 'H'}, {CarryFlag, 'C'}} {
		if r.Flag(f.flag) {
			out[i] = f.name
		}
	}
	return string(out)
}
