package cpu

import (
	"errors"
	"fmt"

	"github.com/valerio/go-kolorful/kolorful/bit"
)

var (
	// ErrInvalidOpcode is returned when a byte does not encode an instruction.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrNotImplemented is returned by instructions the core recognises but
	// does not emulate (STOP).
	ErrNotImplemented = errors.New("instruction not implemented")
	// ErrBootROMWrite is returned on writes into the boot ROM while it is mapped.
	ErrBootROMWrite = errors.New("write to boot rom")
)

// DecodeCondition extracts the branch condition at bits 4-3.
func DecodeCondition(b byte) Condition {
	return Condition(bit.Field(b, 3, 2))
}

// DecodeBitIndex extracts the bit index of BIT/RES/SET at bits 5-3.
func DecodeBitIndex(b byte) uint8 {
	return bit.Field(b, 3, 3)
}

// DecodeVector returns the RST target encoded at bits 5-3.
func DecodeVector(b byte) uint16 {
	return uint16(bit.Field(b, 3, 3)) * 8
}

// Decode reads one instruction through fetch. fetch is called once per
// encoded byte, the caller advancing its program counter on each call, so
// on return the counter sits past the whole instruction (also on error).
func Decode(fetch func() byte) (Instruction, error) {
	b := fetch()
	e8 := func() int8 { return int8(fetch()) }
	n16 := func() uint16 {
		low := fetch()
		high := fetch()
		return bit.Combine(high, low)
	}

	switch op := DecodeOpcode(b); op {
	case OpPrefix:
		return decodePrefixed(fetch())
	case OpNop:
		return Nop{}, nil
	case OpHalt:
		return Halt{}, nil
	case OpStop:
		return Stop{N: fetch()}, nil
	case OpEI:
		return EI{}, nil
	case OpDI:
		return DI{}, nil

	case OpAdcAHL:
		return AdcAHL{}, nil
	case OpAdcAN8:
		return AdcAN8{N: fetch()}, nil
	case OpAdcAR8:
		return AdcAR8{R: DecodeR8(b, 0)}, nil
	case OpAddAHL:
		return AddAHL{}, nil
	case OpAddAR8:
		return AddAR8{R: DecodeR8(b, 0)}, nil
	case OpAddAN8:
		return AddAN8{N: fetch()}, nil
	case OpAddHLSP:
		return AddHLSP{}, nil
	case OpAddHLR16:
		return AddHLR16{R: DecodeR16(b, PairSP)}, nil
	case OpAddSPE8:
		return AddSPE8{E: e8()}, nil
	case OpAndAHL:
		return AndAHL{}, nil
	case OpAndAN8:
		return AndAN8{N: fetch()}, nil
	case OpAndAR8:
		return AndAR8{R: DecodeR8(b, 0)}, nil
	case OpCpAHL:
		return CpAHL{}, nil
	case OpCpAN8:
		return CpAN8{N: fetch()}, nil
	case OpCpAR8:
		return CpAR8{R: DecodeR8(b, 0)}, nil
	case OpOrAHL:
		return OrAHL{}, nil
	case OpOrAN8:
		return OrAN8{N: fetch()}, nil
	case OpOrAR8:
		return OrAR8{R: DecodeR8(b, 0)}, nil
	case OpSbcAHL:
		return SbcAHL{}, nil
	case OpSbcAN8:
		return SbcAN8{N: fetch()}, nil
	case OpSbcAR8:
		return SbcAR8{R: DecodeR8(b, 0)}, nil
	case OpSubAHL:
		return SubAHL{}, nil
	case OpSubAN8:
		return SubAN8{N: fetch()}, nil
	case OpSubAR8:
		return SubAR8{R: DecodeR8(b, 0)}, nil
	case OpXorAHL:
		return XorAHL{}, nil
	case OpXorAN8:
		return XorAN8{N: fetch()}, nil
	case OpXorAR8:
		return XorAR8{R: DecodeR8(b, 0)}, nil

	case OpCallN16:
		return CallN16{Addr: n16()}, nil
	case OpCallCCN16:
		return CallCCN16{Cond: DecodeCondition(b), Addr: n16()}, nil
	case OpJpN16:
		return JpN16{Addr: n16()}, nil
	case OpJpHL:
		return JpHL{}, nil
	case OpJpCCN16:
		return JpCCN16{Cond: DecodeCondition(b), Addr: n16()}, nil
	case OpJrE8:
		return JrE8{E: e8()}, nil
	case OpJrCCE8:
		return JrCCE8{Cond: DecodeCondition(b), E: e8()}, nil
	case OpRet:
		return Ret{}, nil
	case OpRetCC:
		return RetCC{Cond: DecodeCondition(b)}, nil
	case OpRetI:
		return RetI{}, nil
	case OpRst:
		return Rst{Vector: DecodeVector(b)}, nil

	case OpCcf:
		return Ccf{}, nil
	case OpCpl:
		return Cpl{}, nil
	case OpDaa:
		return Daa{}, nil
	case OpScf:
		return Scf{}, nil
	case OpRlca:
		return Rlca{}, nil
	case OpRrca:
		return Rrca{}, nil
	case OpRla:
		return Rla{}, nil
	case OpRra:
		return Rra{}, nil

	case OpDecHLInd:
		return DecHLInd{}, nil
	case OpDecSP:
		return DecSP{}, nil
	case OpDecR8:
		return DecR8{R: DecodeR8(b, 3)}, nil
	case OpDecR16:
		return DecR16{R: DecodeR16(b, PairSP)}, nil
	case OpIncHLInd:
		return IncHLInd{}, nil
	case OpIncSP:
		return IncSP{}, nil
	case OpIncR8:
		return IncR8{R: DecodeR8(b, 3)}, nil
	case OpIncR16:
		return IncR16{R: DecodeR16(b, PairSP)}, nil

	case OpLdiHLA:
		return LdiHLA{}, nil
	case OpLdiAHL:
		return LdiAHL{}, nil
	case OpLddHLA:
		return LddHLA{}, nil
	case OpLddAHL:
		return LddAHL{}, nil
	case OpLdHLN8:
		return LdHLN8{N: fetch()}, nil
	case OpLdR8HL:
		return LdR8HL{R: DecodeR8(b, 3)}, nil
	case OpLdSPN16:
		return LdSPN16{N: n16()}, nil
	case OpLdHLR8:
		return LdHLR8{R: DecodeR8(b, 0)}, nil
	case OpLdR8R8:
		return LdR8R8{Dst: DecodeR8(b, 3), Src: DecodeR8(b, 0)}, nil
	case OpLdR8N8:
		return LdR8N8{R: DecodeR8(b, 3), N: fetch()}, nil
	case OpLdR16N16:
		return LdR16N16{R: DecodeR16(b, PairSP), N: n16()}, nil
	case OpLdR16A:
		return LdR16A{R: DecodeR16(b, PairSP)}, nil
	case OpLdAR16:
		return LdAR16{R: DecodeR16(b, PairSP)}, nil
	case OpLdA16A:
		return LdA16A{Addr: n16()}, nil
	case OpLdAA16:
		return LdAA16{Addr: n16()}, nil
	case OpLdN16SP:
		return LdN16SP{Addr: n16()}, nil
	case OpLdHLSPE8:
		return LdHLSPE8{E: e8()}, nil
	case OpLdSPHL:
		return LdSPHL{}, nil
	case OpLdhCA:
		return LdhCA{}, nil
	case OpLdhAC:
		return LdhAC{}, nil
	case OpLdhN8A:
		return LdhN8A{N: fetch()}, nil
	case OpLdhAN8:
		return LdhAN8{N: fetch()}, nil

	case OpPopR16:
		return PopR16{R: DecodeR16(b, PairAF)}, nil
	case OpPushR16:
		return PushR16{R: DecodeR16(b, PairAF)}, nil

	default:
		return nil, fmt.Errorf("%w: 0x%02X", ErrInvalidOpcode, b)
	}
}

func decodePrefixed(b byte) (Instruction, error) {
	r := DecodeR8(b, 0)
	n := DecodeBitIndex(b)

	switch DecodePrefixedOpcode(b) {
	case OpRlcHL:
		return RlcHL{}, nil
	case OpRlcR8:
		return RlcR8{R: r}, nil
	case OpRrcHL:
		return RrcHL{}, nil
	case OpRrcR8:
		return RrcR8{R: r}, nil
	case OpRlHL:
		return RlHL{}, nil
	case OpRlR8:
		return RlR8{R: r}, nil
	case OpRrHL:
		return RrHL{}, nil
	case OpRrR8:
		return RrR8{R: r}, nil
	case OpSlaHL:
		return SlaHL{}, nil
	case OpSlaR8:
		return SlaR8{R: r}, nil
	case OpSraHL:
		return SraHL{}, nil
	case OpSraR8:
		return SraR8{R: r}, nil
	case OpSwapHL:
		return SwapHL{}, nil
	case OpSwapR8:
		return SwapR8{R: r}, nil
	case OpSrlHL:
		return SrlHL{}, nil
	case OpSrlR8:
		return SrlR8{R: r}, nil
	case OpBitHL:
		return BitHL{Bit: n}, nil
	case OpBitR8:
		return BitR8{Bit: n, R: r}, nil
	case OpResHL:
		return ResHL{Bit: n}, nil
	case OpResR8:
		return ResR8{Bit: n, R: r}, nil
	case OpSetHL:
		return SetHL{Bit: n}, nil
	case OpSetR8:
		return SetR8{Bit: n, R: r}, nil
	default:
		return nil, fmt.Errorf("%w: 0xCB 0x%02X", ErrInvalidOpcode, b)
	}
}
