package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var wantOpcodes = [256]Opcode{
	OpNop, OpLdR16N16, OpLdR16A, OpIncR16, OpIncR8, OpDecR8, OpLdR8N8, OpRlca, OpLdN16SP, OpAddHLR16, OpLdAR16, OpDecR16, OpIncR8, OpDecR8, OpLdR8N8, OpRrca,
	OpStop, OpLdR16N16, OpLdR16A, OpIncR16, OpIncR8, OpDecR8, OpLdR8N8, OpRla, OpJrE8, OpAddHLR16, OpLdAR16, OpDecR16, OpIncR8, OpDecR8, OpLdR8N8, OpRra,
	OpJrCCE8, OpLdR16N16, OpLdiHLA, OpIncR16, OpIncR8, OpDecR8, OpLdR8N8, OpDaa, OpJrCCE8, OpAddHLR16, OpLdiAHL, OpDecR16, OpIncR8, OpDecR8, OpLdR8N8, OpCpl,
	OpJrCCE8, OpLdSPN16, OpLddHLA, OpIncSP, OpIncHLInd, OpDecHLInd, OpLdHLN8, OpScf, OpJrCCE8, OpAddHLSP, OpLddAHL, OpDecSP, OpIncR8, OpDecR8, OpLdR8N8, OpCcf,
	OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8HL, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8HL, OpLdR8R8,
	OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8HL, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8HL, OpLdR8R8,
	OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8HL, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8HL, OpLdR8R8,
	OpLdHLR8, OpLdHLR8, OpLdHLR8, OpLdHLR8, OpLdHLR8, OpLdHLR8, OpHalt, OpLdHLR8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8R8, OpLdR8HL, OpLdR8R8,
	OpAddAR8, OpAddAR8, OpAddAR8, OpAddAR8, OpAddAR8, OpAddAR8, OpAddAHL, OpAddAR8, OpAdcAR8, OpAdcAR8, OpAdcAR8, OpAdcAR8, OpAdcAR8, OpAdcAR8, OpAdcAHL, OpAdcAR8,
	OpSubAR8, OpSubAR8, OpSubAR8, OpSubAR8, OpSubAR8, OpSubAR8, OpSubAHL, OpSubAR8, OpSbcAR8, OpSbcAR8, OpSbcAR8, OpSbcAR8, OpSbcAR8, OpSbcAR8, OpSbcAHL, OpSbcAR8,
	OpAndAR8, OpAndAR8, OpAndAR8, OpAndAR8, OpAndAR8, OpAndAR8, OpAndAHL, OpAndAR8, OpXorAR8, OpXorAR8, OpXorAR8, OpXorAR8, OpXorAR8, OpXorAR8, OpXorAHL, OpXorAR8,
	OpOrAR8, OpOrAR8, OpOrAR8, OpOrAR8, OpOrAR8, OpOrAR8, OpOrAHL, OpOrAR8, OpCpAR8, OpCpAR8, OpCpAR8, OpCpAR8, OpCpAR8, OpCpAR8, OpCpAHL, OpCpAR8,
	OpRetCC, OpPopR16, OpJpCCN16, OpJpN16, OpCallCCN16, OpPushR16, OpAddAN8, OpRst, OpRetCC, OpRet, OpJpCCN16, OpPrefix, OpCallCCN16, OpCallN16, OpAdcAN8, OpRst,
	OpRetCC, OpPopR16, OpJpCCN16, OpInvalid, OpCallCCN16, OpPushR16, OpSubAN8, OpRst, OpRetCC, OpRetI, OpJpCCN16, OpInvalid, OpCallCCN16, OpInvalid, OpSbcAN8, OpRst,
	OpLdhN8A, OpPopR16, OpLdhCA, OpInvalid, OpInvalid, OpPushR16, OpAndAN8, OpRst, OpAddSPE8, OpJpHL, OpLdA16A, OpInvalid, OpInvalid, OpInvalid, OpXorAN8, OpRst,
	OpLdhAN8, OpPopR16, OpLdhAC, OpDI, OpInvalid, OpPushR16, OpOrAN8, OpRst, OpLdHLSPE8, OpLdSPHL, OpLdAA16, OpEI, OpInvalid, OpInvalid, OpCpAN8, OpRst,
}

var wantPrefixed = [256]PrefixedOpcode{
	OpRlcR8, OpRlcR8, OpRlcR8, OpRlcR8, OpRlcR8, OpRlcR8, OpRlcHL, OpRlcR8, OpRrcR8, OpRrcR8, OpRrcR8, OpRrcR8, OpRrcR8, OpRrcR8, OpRrcHL, OpRrcR8,
	OpRlR8, OpRlR8, OpRlR8, OpRlR8, OpRlR8, OpRlR8, OpRlHL, OpRlR8, OpRrR8, OpRrR8, OpRrR8, OpRrR8, OpRrR8, OpRrR8, OpRrHL, OpRrR8,
	OpSlaR8, OpSlaR8, OpSlaR8, OpSlaR8, OpSlaR8, OpSlaR8, OpSlaHL, OpSlaR8, OpSraR8, OpSraR8, OpSraR8, OpSraR8, OpSraR8, OpSraR8, OpSraHL, OpSraR8,
	OpSwapR8, OpSwapR8, OpSwapR8, OpSwapR8, OpSwapR8, OpSwapR8, OpSwapHL, OpSwapR8, OpSrlR8, OpSrlR8, OpSrlR8, OpSrlR8, OpSrlR8, OpSrlR8, OpSrlHL, OpSrlR8,
	OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitHL, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitHL, OpBitR8,
	OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitHL, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitHL, OpBitR8,
	OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitHL, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitHL, OpBitR8,
	OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitHL, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitR8, OpBitHL, OpBitR8,
	OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResHL, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResHL, OpResR8,
	OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResHL, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResHL, OpResR8,
	OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResHL, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResHL, OpResR8,
	OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResHL, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResR8, OpResHL, OpResR8,
	OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetHL, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetHL, OpSetR8,
	OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetHL, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetHL, OpSetR8,
	OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetHL, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetHL, OpSetR8,
	OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetHL, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetR8, OpSetHL, OpSetR8,
}

func TestDecodeOpcodeTable(t *testing.T) {
	for b := 0; b < 256; b++ {
		t.Run(fmt.Sprintf("0x%02X", b), func(t *testing.T) {
			assert.Equal(t, wantOpcodes[b], DecodeOpcode(byte(b)))
		})
	}
}

func TestDecodePrefixedOpcodeTable(t *testing.T) {
	for b := 0; b < 256; b++ {
		t.Run(fmt.Sprintf("0xCB%02X", b), func(t *testing.T) {
			assert.Equal(t, wantPrefixed[b], DecodePrefixedOpcode(byte(b)))
		})
	}
}

func TestInvalidOpcodes(t *testing.T) {
	invalid := []byte{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}
	count := 0
	for b := 0; b < 256; b++ {
		if DecodeOpcode(byte(b)) == OpInvalid {
			count++
		}
	}
	assert.Equal(t, len(invalid), count)
	for _, b := range invalid {
		assert.Equal(t, OpInvalid, DecodeOpcode(b), "0x%02X", b)
	}

	for b := 0; b < 256; b++ {
		assert.NotEqual(t, OpPrefixedInvalid, DecodePrefixedOpcode(byte(b)), "0xCB%02X", b)
	}
}

func TestOpcodeInfo(t *testing.T) {
	tests := []struct {
		op     Opcode
		name   string
		length int
		cycles int
	}{
		{OpNop, "NOP", 1, 4},
		{OpLdR16N16, "LD r16,n16", 3, 12},
		{OpCallN16, "CALL n16", 3, 24},
		{OpCallCCN16, "CALL cc,n16", 3, 12},
		{OpJrE8, "JR e8", 2, 12},
		{OpLdN16SP, "LD [n16],SP", 3, 20},
		{OpAddSPE8, "ADD SP,e8", 2, 16},
		{OpPushR16, "PUSH r16", 1, 16},
		{OpRst, "RST vec", 1, 16},
		{OpInvalid, "INVALID", 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.op.Info()
			assert.Equal(t, tt.name, info.Name)
			assert.Equal(t, tt.name, tt.op.String())
			assert.Equal(t, tt.length, info.Length)
			assert.Equal(t, tt.cycles, info.Cycles)
		})
	}

	assert.Equal(t, OpcodeInfo{"BIT u3,[HL]", 2, 12}, OpBitHL.Info())
	assert.Equal(t, OpcodeInfo{"SRL [HL]", 2, 16}, OpSrlHL.Info())
	assert.Equal(t, OpcodeInfo{"SET u3,r8", 2, 8}, OpSetR8.Info())
	assert.Equal(t, "Opcode(250)", Opcode(250).String())
}
