package cpu

import "fmt"

// Opcode is the decoded family of a one-byte instruction.
type Opcode uint8

const (
	OpPrefix Opcode = iota
	OpNop
	OpHalt
	OpStop
	OpEI
	OpDI
	OpAdcAHL
	OpAdcAN8
	OpAdcAR8
	OpAddAHL
	OpAddAR8
	OpAddAN8
	OpAddHLSP
	OpAddHLR16
	OpAddSPE8
	OpAndAHL
	OpAndAN8
	OpAndAR8
	OpCallN16
	OpCallCCN16
	OpCcf
	OpCpAHL
	OpCpAN8
	OpCpl
	OpCpAR8
	OpDaa
	OpDecHLInd
	OpDecSP
	OpDecR8
	OpDecR16
	OpIncHLInd
	OpIncSP
	OpIncR8
	OpIncR16
	OpJpN16
	OpJpHL
	OpJpCCN16
	OpJrE8
	OpJrCCE8
	OpLdiHLA
	OpLdiAHL
	OpLddHLA
	OpLddAHL
	OpLdHLN8
	OpLdR8HL
	OpLdSPN16
	OpLdHLR8
	OpLdR8R8
	OpLdR8N8
	OpLdR16N16
	OpLdR16A
	OpLdAR16
	OpLdA16A
	OpLdAA16
	OpLdN16SP
	OpLdHLSPE8
	OpLdSPHL
	OpLdhCA
	OpLdhAC
	OpLdhN8A
	OpLdhAN8
	OpOrAHL
	OpOrAN8
	OpOrAR8
	OpPopR16
	OpPushR16
	OpRet
	OpRetCC
	OpRetI
	OpRst
	OpSbcAHL
	OpSbcAN8
	OpSbcAR8
	OpScf
	OpSubAHL
	OpSubAN8
	OpSubAR8
	OpXorAHL
	OpXorAN8
	OpXorAR8
	OpRlca
	OpRrca
	OpRla
	OpRra
	OpInvalid
)

// PrefixedOpcode is the decoded family of the byte following 0xCB.
type PrefixedOpcode uint8

const (
	OpRlcHL PrefixedOpcode = iota
	OpRlcR8
	OpRrcHL
	OpRrcR8
	OpRlHL
	OpRlR8
	OpRrHL
	OpRrR8
	OpSlaHL
	OpSlaR8
	OpSraHL
	OpSraR8
	OpSwapHL
	OpSwapR8
	OpSrlHL
	OpSrlR8
	OpBitHL
	OpBitR8
	OpResHL
	OpResR8
	OpSetHL
	OpSetR8
	OpPrefixedInvalid
)

// OpcodeInfo describes an opcode family. Cycles are T-cycles; for
// conditional branches they are the cost of the branch not taken.
type OpcodeInfo struct {
	Name   string
	Length int
	Cycles int
}

type opcodeEntry struct {
	op         Opcode
	code, mask byte
	info       OpcodeInfo
}

type prefixedEntry struct {
	op         PrefixedOpcode
	code, mask byte
	info       OpcodeInfo
}

// opcodeTable is scanned in order; the first entry with b&mask == code
// wins. Specific encodings therefore precede the families that would also
// match them (HALT before LD [HL],r8, LD SP,n16 before LD r16,n16, ...).
var opcodeTable = []opcodeEntry{
	{OpPrefix, 0xCB, 0xFF, OpcodeInfo{"PREFIX", 1, 4}},

	{OpNop, 0x00, 0xFF, OpcodeInfo{"NOP", 1, 4}},
	{OpHalt, 0x76, 0xFF, OpcodeInfo{"HALT", 1, 4}},
	{OpStop, 0x10, 0xFF, OpcodeInfo{"STOP", 2, 4}},

	{OpEI, 0xFB, 0xFF, OpcodeInfo{"EI", 1, 4}},
	{OpDI, 0xF3, 0xFF, OpcodeInfo{"DI", 1, 4}},

	{OpAdcAHL, 0x8E, 0xFF, OpcodeInfo{"ADC A,[HL]", 1, 8}},
	{OpAdcAN8, 0xCE, 0xFF, OpcodeInfo{"ADC A,n8", 2, 8}},
	{OpAdcAR8, 0x88, 0xF8, OpcodeInfo{"ADC A,r8", 1, 4}},

	{OpAddAHL, 0x86, 0xFF, OpcodeInfo{"ADD A,[HL]", 1, 8}},
	{OpAddAR8, 0x80, 0xF8, OpcodeInfo{"ADD A,r8", 1, 4}},
	{OpAddAN8, 0xC6, 0xFF, OpcodeInfo{"ADD A,n8", 2, 8}},
	{OpAddHLSP, 0x39, 0xFF, OpcodeInfo{"ADD HL,SP", 1, 8}},
	{OpAddHLR16, 0x09, 0xCF, OpcodeInfo{"ADD HL,r16", 1, 8}},
	{OpAddSPE8, 0xE8, 0xFF, OpcodeInfo{"ADD SP,e8", 2, 16}},

	{OpAndAHL, 0xA6, 0xFF, OpcodeInfo{"AND A,[HL]", 1, 8}},
	{OpAndAN8, 0xE6, 0xFF, OpcodeInfo{"AND A,n8", 2, 8}},
	{OpAndAR8, 0xA0, 0xF8, OpcodeInfo{"AND A,r8", 1, 4}},

	{OpCallN16, 0xCD, 0xFF, OpcodeInfo{"CALL n16", 3, 24}},
	{OpCallCCN16, 0xC4, 0xE7, OpcodeInfo{"CALL cc,n16", 3, 12}},

	{OpCcf, 0x3F, 0xFF, OpcodeInfo{"CCF", 1, 4}},
	{OpCpAHL, 0xBE, 0xFF, OpcodeInfo{"CP A,[HL]", 1, 8}},
	{OpCpAN8, 0xFE, 0xFF, OpcodeInfo{"CP A,n8", 2, 8}},
	{OpCpl, 0x2F, 0xFF, OpcodeInfo{"CPL", 1, 4}},
	{OpCpAR8, 0xB8, 0xF8, OpcodeInfo{"CP A,r8", 1, 4}},

	{OpDaa, 0x27, 0xFF, OpcodeInfo{"DAA", 1, 4}},
	{OpDecHLInd, 0x35, 0xFF, OpcodeInfo{"DEC [HL]", 1, 12}},
	{OpDecSP, 0x3B, 0xFF, OpcodeInfo{"DEC SP", 1, 8}},
	{OpDecR8, 0x05, 0xC7, OpcodeInfo{"DEC r8", 1, 4}},
	{OpDecR16, 0x0B, 0xCF, OpcodeInfo{"DEC r16", 1, 8}},

	{OpIncHLInd, 0x34, 0xFF, OpcodeInfo{"INC [HL]", 1, 12}},
	{OpIncSP, 0x33, 0xFF, OpcodeInfo{"INC SP", 1, 8}},
	{OpIncR8, 0x04, 0xC7, OpcodeInfo{"INC r8", 1, 4}},
	{OpIncR16, 0x03, 0xCF, OpcodeInfo{"INC r16", 1, 8}},

	{OpJpN16, 0xC3, 0xFF, OpcodeInfo{"JP n16", 3, 16}},
	{OpJpHL, 0xE9, 0xFF, OpcodeInfo{"JP HL", 1, 4}},
	{OpJpCCN16, 0xC2, 0xE7, OpcodeInfo{"JP cc,n16", 3, 12}},

	{OpJrE8, 0x18, 0xFF, OpcodeInfo{"JR e8", 2, 12}},
	{OpJrCCE8, 0x20, 0xE7, OpcodeInfo{"JR cc,e8", 2, 8}},

	{OpLdiHLA, 0x22, 0xFF, OpcodeInfo{"LD [HLI],A", 1, 8}},
	{OpLdiAHL, 0x2A, 0xFF, OpcodeInfo{"LD A,[HLI]", 1, 8}},
	{OpLddHLA, 0x32, 0xFF, OpcodeInfo{"LD [HLD],A", 1, 8}},
	{OpLddAHL, 0x3A, 0xFF, OpcodeInfo{"LD A,[HLD]", 1, 8}},

	{OpLdHLN8, 0x36, 0xFF, OpcodeInfo{"LD [HL],n8", 2, 12}},
	{OpLdR8HL, 0x46, 0xC7, OpcodeInfo{"LD r8,[HL]", 1, 8}},
	{OpLdSPN16, 0x31, 0xFF, OpcodeInfo{"LD SP,n16", 3, 12}},
	{OpLdHLR8, 0x70, 0xF8, OpcodeInfo{"LD [HL],r8", 1, 8}},
	{OpLdR8R8, 0x40, 0xC0, OpcodeInfo{"LD r8,r8", 1, 4}},
	{OpLdR8N8, 0x06, 0xC7, OpcodeInfo{"LD r8,n8", 2, 8}},
	{OpLdR16N16, 0x01, 0xCF, OpcodeInfo{"LD r16,n16", 3, 12}},

	{OpLdR16A, 0x02, 0xCF, OpcodeInfo{"LD [r16],A", 1, 8}},
	{OpLdAR16, 0x0A, 0xCF, OpcodeInfo{"LD A,[r16]", 1, 8}},

	{OpLdA16A, 0xEA, 0xFF, OpcodeInfo{"LD [n16],A", 3, 16}},
	{OpLdAA16, 0xFA, 0xFF, OpcodeInfo{"LD A,[n16]", 3, 16}},
	{OpLdN16SP, 0x08, 0xFF, OpcodeInfo{"LD [n16],SP", 3, 20}},

	{OpLdHLSPE8, 0xF8, 0xFF, OpcodeInfo{"LD HL,SP+e8", 2, 12}},
	{OpLdSPHL, 0xF9, 0xFF, OpcodeInfo{"LD SP,HL", 1, 8}},

	{OpLdhCA, 0xE2, 0xFF, OpcodeInfo{"LDH [C],A", 1, 8}},
	{OpLdhAC, 0xF2, 0xFF, OpcodeInfo{"LDH A,[C]", 1, 8}},
	{OpLdhN8A, 0xE0, 0xFF, OpcodeInfo{"LDH [n8],A", 2, 12}},
	{OpLdhAN8, 0xF0, 0xFF, OpcodeInfo{"LDH A,[n8]", 2, 12}},

	{OpOrAHL, 0xB6, 0xFF, OpcodeInfo{"OR A,[HL]", 1, 8}},
	{OpOrAN8, 0xF6, 0xFF, OpcodeInfo{"OR A,n8", 2, 8}},
	{OpOrAR8, 0xB0, 0xF8, OpcodeInfo{"OR A,r8", 1, 4}},

	{OpPopR16, 0xC1, 0xCF, OpcodeInfo{"POP r16", 1, 12}},
	{OpPushR16, 0xC5, 0xCF, OpcodeInfo{"PUSH r16", 1, 16}},

	{OpRet, 0xC9, 0xFF, OpcodeInfo{"RET", 1, 16}},
	{OpRetCC, 0xC0, 0xE7, OpcodeInfo{"RET cc", 1, 8}},
	{OpRetI, 0xD9, 0xFF, OpcodeInfo{"RETI", 1, 16}},
	{OpRst, 0xC7, 0xC7, OpcodeInfo{"RST vec", 1, 16}},

	{OpSbcAHL, 0x9E, 0xFF, OpcodeInfo{"SBC A,[HL]", 1, 8}},
	{OpSbcAN8, 0xDE, 0xFF, OpcodeInfo{"SBC A,n8", 2, 8}},
	{OpSbcAR8, 0x98, 0xF8, OpcodeInfo{"SBC A,r8", 1, 4}},

	{OpScf, 0x37, 0xFF, OpcodeInfo{"SCF", 1, 4}},

	{OpSubAHL, 0x96, 0xFF, OpcodeInfo{"SUB A,[HL]", 1, 8}},
	{OpSubAN8, 0xD6, 0xFF, OpcodeInfo{"SUB A,n8", 2, 8}},
	{OpSubAR8, 0x90, 0xF8, OpcodeInfo{"SUB A,r8", 1, 4}},

	{OpXorAHL, 0xAE, 0xFF, OpcodeInfo{"XOR A,[HL]", 1, 8}},
	{OpXorAN8, 0xEE, 0xFF, OpcodeInfo{"XOR A,n8", 2, 8}},
	{OpXorAR8, 0xA8, 0xF8, OpcodeInfo{"XOR A,r8", 1, 4}},

	{OpRlca, 0x07, 0xFF, OpcodeInfo{"RLCA", 1, 4}},
	{OpRrca, 0x0F, 0xFF, OpcodeInfo{"RRCA", 1, 4}},
	{OpRla, 0x17, 0xFF, OpcodeInfo{"RLA", 1, 4}},
	{OpRra, 0x1F, 0xFF, OpcodeInfo{"RRA", 1, 4}},

	// matches anything, keep last
	{OpInvalid, 0x00, 0x00, OpcodeInfo{"INVALID", 1, 4}},
}

var prefixedTable = []prefixedEntry{
	{OpRlcHL, 0x06, 0xFF, OpcodeInfo{"RLC [HL]", 2, 16}},
	{OpRlcR8, 0x00, 0xF8, OpcodeInfo{"RLC r8", 2, 8}},
	{OpRrcHL, 0x0E, 0xFF, OpcodeInfo{"RRC [HL]", 2, 16}},
	{OpRrcR8, 0x08, 0xF8, OpcodeInfo{"RRC r8", 2, 8}},
	{OpRlHL, 0x16, 0xFF, OpcodeInfo{"RL [HL]", 2, 16}},
	{OpRlR8, 0x10, 0xF8, OpcodeInfo{"RL r8", 2, 8}},
	{OpRrHL, 0x1E, 0xFF, OpcodeInfo{"RR [HL]", 2, 16}},
	{OpRrR8, 0x18, 0xF8, OpcodeInfo{"RR r8", 2, 8}},
	{OpSlaHL, 0x26, 0xFF, OpcodeInfo{"SLA [HL]", 2, 16}},
	{OpSlaR8, 0x20, 0xF8, OpcodeInfo{"SLA r8", 2, 8}},
	{OpSraHL, 0x2E, 0xFF, OpcodeInfo{"SRA [HL]", 2, 16}},
	{OpSraR8, 0x28, 0xF8, OpcodeInfo{"SRA r8", 2, 8}},
	{OpSwapHL, 0x36, 0xFF, OpcodeInfo{"SWAP [HL]", 2, 16}},
	{OpSwapR8, 0x30, 0xF8, OpcodeInfo{"SWAP r8", 2, 8}},
	{OpSrlHL, 0x3E, 0xFF, OpcodeInfo{"SRL [HL]", 2, 16}},
	{OpSrlR8, 0x38, 0xF8, OpcodeInfo{"SRL r8", 2, 8}},
	{OpBitHL, 0x46, 0xC7, OpcodeInfo{"BIT u3,[HL]", 2, 12}},
	{OpBitR8, 0x40, 0xC0, OpcodeInfo{"BIT u3,r8", 2, 8}},
	{OpResHL, 0x86, 0xC7, OpcodeInfo{"RES u3,[HL]", 2, 16}},
	{OpResR8, 0x80, 0xC0, OpcodeInfo{"RES u3,r8", 2, 8}},
	{OpSetHL, 0xC6, 0xC7, OpcodeInfo{"SET u3,[HL]", 2, 16}},
	{OpSetR8, 0xC0, 0xC0, OpcodeInfo{"SET u3,r8", 2, 8}},

	{OpPrefixedInvalid, 0x00, 0x00, OpcodeInfo{"INVALID", 2, 8}},
}

var (
	opcodeInfo   [OpInvalid + 1]OpcodeInfo
	prefixedInfo [OpPrefixedInvalid + 1]OpcodeInfo

	// decode caches, filled from the ordered scans above
	opcodeByByte   [256]Opcode
	prefixedByByte [256]PrefixedOpcode
)

func init() {
	for _, e := range opcodeTable {
		opcodeInfo[e.op] = e.info
	}
	for _, e := range prefixedTable {
		prefixedInfo[e.op] = e.info
	}
	for b := 0; b < 256; b++ {
		opcodeByByte[b] = scanOpcode(byte(b))
		prefixedByByte[b] = scanPrefixed(byte(b))
	}
}

func scanOpcode(b byte) Opcode {
	for _, e := range opcodeTable {
		if b&e.mask == e.code {
			return e.op
		}
	}
	return OpInvalid
}

func scanPrefixed(b byte) PrefixedOpcode {
	for _, e := range prefixedTable {
		if b&e.mask == e.code {
			return e.op
		}
	}
	return OpPrefixedInvalid
}

// DecodeOpcode classifies the first byte of an instruction. It is total:
// bytes that encode nothing decode to OpInvalid.
func DecodeOpcode(b byte) Opcode {
	return opcodeByByte[b]
}

// DecodePrefixedOpcode classifies the byte following a 0xCB prefix.
func DecodePrefixedOpcode(b byte) PrefixedOpcode {
	return prefixedByByte[b]
}

func (o Opcode) Info() OpcodeInfo {
	if o > OpInvalid {
		return opcodeInfo[OpInvalid]
	}
	return opcodeInfo[o]
}

func (o Opcode) String() string {
	if o > OpInvalid {
		return fmt.Sprintf("Opcode(%d)", uint8(o))
	}
	return opcodeInfo[o].Name
}

func (o PrefixedOpcode) Info() OpcodeInfo {
	if o > OpPrefixedInvalid {
		return prefixedInfo[OpPrefixedInvalid]
	}
	return prefixedInfo[o]
}

func (o PrefixedOpcode) String() string {
	if o > OpPrefixedInvalid {
		return fmt.Sprintf("PrefixedOpcode(%d)", uint8(o))
	}
	return prefixedInfo[o].Name
}
