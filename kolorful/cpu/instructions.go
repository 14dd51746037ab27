package cpu

import "fmt"

// Condition is a branch condition, encoded in bits 4-3.
type Condition uint8

const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
)

func (c Condition) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	default:
		return fmt.Sprintf("Condition(%d)", uint8(c))
	}
}

// Instruction is one decoded instruction with its operands. The set of
// implementations is closed: one struct per encoding shape, each carrying
// exactly the operands that shape has.
type Instruction interface {
	fmt.Stringer
	// Info describes the opcode family: name, encoded length and base cost.
	Info() OpcodeInfo
	isInstruction()
}

func hex8(v byte) string    { return fmt.Sprintf("$%02X", v) }
func hex16(v uint16) string { return fmt.Sprintf("$%04X", v) }
func signed(e int8) string  { return fmt.Sprintf("%+d", e) }

// control

type Nop struct{}
type Halt struct{}
type Stop struct{ N byte }
type EI struct{}
type DI struct{}

func (Nop) Info() OpcodeInfo  { return OpNop.Info() }
func (Halt) Info() OpcodeInfo { return OpHalt.Info() }
func (Stop) Info() OpcodeInfo { return OpStop.Info() }
func (EI) Info() OpcodeInfo   { return OpEI.Info() }
func (DI) Info() OpcodeInfo   { return OpDI.Info() }
func (Nop) String() string    { return "NOP" }
func (Halt) String() string   { return "HALT" }
func (i Stop) String() string { return "STOP " + hex8(i.N) }
func (EI) String() string     { return "EI" }
func (DI) String() string     { return "DI" }
func (Nop) isInstruction()    {}
func (Halt) isInstruction()   {}
func (Stop) isInstruction()   {}
func (EI) isInstruction()     {}
func (DI) isInstruction()     {}

// 8-bit arithmetic and logic

type AdcAHL struct{}
type AdcAN8 struct{ N byte }
type AdcAR8 struct{ R Register }
type AddAHL struct{}
type AddAN8 struct{ N byte }
type AddAR8 struct{ R Register }
type SubAHL struct{}
type SubAN8 struct{ N byte }
type SubAR8 struct{ R Register }
type SbcAHL struct{}
type SbcAN8 struct{ N byte }
type SbcAR8 struct{ R Register }
type AndAHL struct{}
type AndAN8 struct{ N byte }
type AndAR8 struct{ R Register }
type OrAHL struct{}
type OrAN8 struct{ N byte }
type OrAR8 struct{ R Register }
type XorAHL struct{}
type XorAN8 struct{ N byte }
type XorAR8 struct{ R Register }
type CpAHL struct{}
type CpAN8 struct{ N byte }
type CpAR8 struct{ R Register }

func (AdcAHL) Info() OpcodeInfo { return OpAdcAHL.Info() }
func (AdcAN8) Info() OpcodeInfo { return OpAdcAN8.Info() }
func (AdcAR8) Info() OpcodeInfo { return OpAdcAR8.Info() }
func (AddAHL) Info() OpcodeInfo { return OpAddAHL.Info() }
func (AddAN8) Info() OpcodeInfo { return OpAddAN8.Info() }
func (AddAR8) Info() OpcodeInfo { return OpAddAR8.Info() }
func (SubAHL) Info() OpcodeInfo { return OpSubAHL.Info() }
func (SubAN8) Info() OpcodeInfo { return OpSubAN8.Info() }
func (SubAR8) Info() OpcodeInfo { return OpSubAR8.Info() }
func (SbcAHL) Info() OpcodeInfo { return OpSbcAHL.Info() }
func (SbcAN8) Info() OpcodeInfo { return OpSbcAN8.Info() }
func (SbcAR8) Info() OpcodeInfo { return OpSbcAR8.Info() }
func (AndAHL) Info() OpcodeInfo { return OpAndAHL.Info() }
func (AndAN8) Info() OpcodeInfo { return OpAndAN8.Info() }
func (AndAR8) Info() OpcodeInfo { return OpAndAR8.Info() }
func (OrAHL) Info() OpcodeInfo  { return OpOrAHL.Info() }
func (OrAN8) Info() OpcodeInfo  { return OpOrAN8.Info() }
func (OrAR8) Info() OpcodeInfo  { return OpOrAR8.Info() }
func (XorAHL) Info() OpcodeInfo { return OpXorAHL.Info() }
func (XorAN8) Info() OpcodeInfo { return OpXorAN8.Info() }
func (XorAR8) Info() OpcodeInfo { return OpXorAR8.Info() }
func (CpAHL) Info() OpcodeInfo  { return OpCpAHL.Info() }
func (CpAN8) Info() OpcodeInfo  { return OpCpAN8.Info() }
func (CpAR8) Info() OpcodeInfo  { return OpCpAR8.Info() }

func (AdcAHL) String() string   { return "ADC A,[HL]" }
func (i AdcAN8) String() string { return "ADC A," + hex8(i.N) }
func (i AdcAR8) String() string { return "ADC A," + i.R.String() }
func (AddAHL) String() string   { return "ADD A,[HL]" }
func (i AddAN8) String() string { return "ADD A," + hex8(i.N) }
func (i AddAR8) String() string { return "ADD A," + i.R.String() }
func (SubAHL) String() string   { return "SUB A,[HL]" }
func (i SubAN8) String() string { return "SUB A," + hex8(i.N) }
func (i SubAR8) String() string { return "SUB A," + i.R.String() }
func (SbcAHL) String() string   { return "SBC A,[HL]" }
func (i SbcAN8) String() string { return "SBC A," + hex8(i.N) }
func (i SbcAR8) String() string { return "SBC A," + i.R.String() }
func (AndAHL) String() string   { return "AND A,[HL]" }
func (i AndAN8) String() string { return "AND A," + hex8(i.N) }
func (i AndAR8) String() string { return "AND A," + i.R.String() }
func (OrAHL) String() string    { return "OR A,[HL]" }
func (i OrAN8) String() string  { return "OR A," + hex8(i.N) }
func (i OrAR8) String() string  { return "OR A," + i.R.String() }
func (XorAHL) String() string   { return "XOR A,[HL]" }
func (i XorAN8) String() string { return "XOR A," + hex8(i.N) }
func (i XorAR8) String() string { return "XOR A," + i.R.String() }
func (CpAHL) String() string    { return "CP A,[HL]" }
func (i CpAN8) String() string  { return "CP A," + hex8(i.N) }
func (i CpAR8) String() string  { return "CP A," + i.R.String() }

func (AdcAHL) isInstruction() {}
func (AdcAN8) isInstruction() {}
func (AdcAR8) isInstruction() {}
func (AddAHL) isInstruction() {}
func (AddAN8) isInstruction() {}
func (AddAR8) isInstruction() {}
func (SubAHL) isInstruction() {}
func (SubAN8) isInstruction() {}
func (SubAR8) isInstruction() {}
func (SbcAHL) isInstruction() {}
func (SbcAN8) isInstruction() {}
func (SbcAR8) isInstruction() {}
func (AndAHL) isInstruction() {}
func (AndAN8) isInstruction() {}
func (AndAR8) isInstruction() {}
func (OrAHL) isInstruction()  {}
func (OrAN8) isInstruction()  {}
func (OrAR8) isInstruction()  {}
func (XorAHL) isInstruction() {}
func (XorAN8) isInstruction() {}
func (XorAR8) isInstruction() {}
func (CpAHL) isInstruction()  {}
func (CpAN8) isInstruction()  {}
func (CpAR8) isInstruction()  {}

// increments, decrements and 16-bit arithmetic

type IncR8 struct{ R Register }
type DecR8 struct{ R Register }
type IncHLInd struct{}
type DecHLInd struct{}
type IncR16 struct{ R Register }
type DecR16 struct{ R Register }
type IncSP struct{}
type DecSP struct{}
type AddHLR16 struct{ R Register }
type AddHLSP struct{}
type AddSPE8 struct{ E int8 }

func (IncR8) Info() OpcodeInfo    { return OpIncR8.Info() }
func (DecR8) Info() OpcodeInfo    { return OpDecR8.Info() }
func (IncHLInd) Info() OpcodeInfo { return OpIncHLInd.Info() }
func (DecHLInd) Info() OpcodeInfo { return OpDecHLInd.Info() }
func (IncR16) Info() OpcodeInfo   { return OpIncR16.Info() }
func (DecR16) Info() OpcodeInfo   { return OpDecR16.Info() }
func (IncSP) Info() OpcodeInfo    { return OpIncSP.Info() }
func (DecSP) Info() OpcodeInfo    { return OpDecSP.Info() }
func (AddHLR16) Info() OpcodeInfo { return OpAddHLR16.Info() }
func (AddHLSP) Info() OpcodeInfo  { return OpAddHLSP.Info() }
func (AddSPE8) Info() OpcodeInfo  { return OpAddSPE8.Info() }

func (i IncR8) String() string    { return "INC " + i.R.String() }
func (i DecR8) String() string    { return "DEC " + i.R.String() }
func (IncHLInd) String() string   { return "INC [HL]" }
func (DecHLInd) String() string   { return "DEC [HL]" }
func (i IncR16) String() string   { return "INC " + i.R.String() }
func (i DecR16) String() string   { return "DEC " + i.R.String() }
func (IncSP) String() string      { return "INC SP" }
func (DecSP) String() string      { return "DEC SP" }
func (i AddHLR16) String() string { return "ADD HL," + i.R.String() }
func (AddHLSP) String() string    { return "ADD HL,SP" }
func (i AddSPE8) String() string  { return "ADD SP," + signed(i.E) }

func (IncR8) isInstruction()    {}
func (DecR8) isInstruction()    {}
func (IncHLInd) isInstruction() {}
func (DecHLInd) isInstruction() {}
func (IncR16) isInstruction()   {}
func (DecR16) isInstruction()   {}
func (IncSP) isInstruction()    {}
func (DecSP) isInstruction()    {}
func (AddHLR16) isInstruction() {}
func (AddHLSP) isInstruction()  {}
func (AddSPE8) isInstruction()  {}

// jumps, calls and returns

type JpN16 struct{ Addr uint16 }
type JpHL struct{}
type JpCCN16 struct {
	Cond Condition
	Addr uint16
}
type JrE8 struct{ E int8 }
type JrCCE8 struct {
	Cond Condition
	E    int8
}
type CallN16 struct{ Addr uint16 }
type CallCCN16 struct {
	Cond Condition
	Addr uint16
}
type Ret struct{}
type RetCC struct{ Cond Condition }
type RetI struct{}
type Rst struct{ Vector uint16 }

func (JpN16) Info() OpcodeInfo     { return OpJpN16.Info() }
func (JpHL) Info() OpcodeInfo      { return OpJpHL.Info() }
func (JpCCN16) Info() OpcodeInfo   { return OpJpCCN16.Info() }
func (JrE8) Info() OpcodeInfo      { return OpJrE8.Info() }
func (JrCCE8) Info() OpcodeInfo    { return OpJrCCE8.Info() }
func (CallN16) Info() OpcodeInfo   { return OpCallN16.Info() }
func (CallCCN16) Info() OpcodeInfo { return OpCallCCN16.Info() }
func (Ret) Info() OpcodeInfo       { return OpRet.Info() }
func (RetCC) Info() OpcodeInfo     { return OpRetCC.Info() }
func (RetI) Info() OpcodeInfo      { return OpRetI.Info() }
func (Rst) Info() OpcodeInfo       { return OpRst.Info() }

func (i JpN16) String() string     { return "JP " + hex16(i.Addr) }
func (JpHL) String() string        { return "JP HL" }
func (i JpCCN16) String() string   { return "JP " + i.Cond.String() + "," + hex16(i.Addr) }
func (i JrE8) String() string      { return "JR " + signed(i.E) }
func (i JrCCE8) String() string    { return "JR " + i.Cond.String() + "," + signed(i.E) }
func (i CallN16) String() string   { return "CALL " + hex16(i.Addr) }
func (i CallCCN16) String() string { return "CALL " + i.Cond.String() + "," + hex16(i.Addr) }
func (Ret) String() string         { return "RET" }
func (i RetCC) String() string     { return "RET " + i.Cond.String() }
func (RetI) String() string        { return "RETI" }
func (i Rst) String() string       { return "RST " + fmt.Sprintf("$%02X", i.Vector) }

func (JpN16) isInstruction()     {}
func (JpHL) isInstruction()      {}
func (JpCCN16) isInstruction()   {}
func (JrE8) isInstruction()      {}
func (JrCCE8) isInstruction()    {}
func (CallN16) isInstruction()   {}
func (CallCCN16) isInstruction() {}
func (Ret) isInstruction()       {}
func (RetCC) isInstruction()     {}
func (RetI) isInstruction()      {}
func (Rst) isInstruction()       {}

// loads

type LdR8R8 struct{ Dst, Src Register }
type LdR8N8 struct {
	R Register
	N byte
}
type LdR8HL struct{ R Register }
type LdHLR8 struct{ R Register }
type LdHLN8 struct{ N byte }
type LdR16N16 struct {
	R Register
	N uint16
}
type LdSPN16 struct{ N uint16 }
type LdR16A struct{ R Register }
type LdAR16 struct{ R Register }
type LdiHLA struct{}
type LdiAHL struct{}
type LddHLA struct{}
type LddAHL struct{}
type LdA16A struct{ Addr uint16 }
type LdAA16 struct{ Addr uint16 }
type LdN16SP struct{ Addr uint16 }
type LdHLSPE8 struct{ E int8 }
type LdSPHL struct{}
type LdhCA struct{}
type LdhAC struct{}
type LdhN8A struct{ N byte }
type LdhAN8 struct{ N byte }

func (LdR8R8) Info() OpcodeInfo   { return OpLdR8R8.Info() }
func (LdR8N8) Info() OpcodeInfo   { return OpLdR8N8.Info() }
func (LdR8HL) Info() OpcodeInfo   { return OpLdR8HL.Info() }
func (LdHLR8) Info() OpcodeInfo   { return OpLdHLR8.Info() }
func (LdHLN8) Info() OpcodeInfo   { return OpLdHLN8.Info() }
func (LdR16N16) Info() OpcodeInfo { return OpLdR16N16.Info() }
func (LdSPN16) Info() OpcodeInfo  { return OpLdSPN16.Info() }
func (LdR16A) Info() OpcodeInfo   { return OpLdR16A.Info() }
func (LdAR16) Info() OpcodeInfo   { return OpLdAR16.Info() }
func (LdiHLA) Info() OpcodeInfo   { return OpLdiHLA.Info() }
func (LdiAHL) Info() OpcodeInfo   { return OpLdiAHL.Info() }
func (LddHLA) Info() OpcodeInfo   { return OpLddHLA.Info() }
func (LddAHL) Info() OpcodeInfo   { return OpLddAHL.Info() }
func (LdA16A) Info() OpcodeInfo   { return OpLdA16A.Info() }
func (LdAA16) Info() OpcodeInfo   { return OpLdAA16.Info() }
func (LdN16SP) Info() OpcodeInfo  { return OpLdN16SP.Info() }
func (LdHLSPE8) Info() OpcodeInfo { return OpLdHLSPE8.Info() }
func (LdSPHL) Info() OpcodeInfo   { return OpLdSPHL.Info() }
func (LdhCA) Info() OpcodeInfo    { return OpLdhCA.Info() }
func (LdhAC) Info() OpcodeInfo    { return OpLdhAC.Info() }
func (LdhN8A) Info() OpcodeInfo   { return OpLdhN8A.Info() }
func (LdhAN8) Info() OpcodeInfo   { return OpLdhAN8.Info() }

func (i LdR8R8) String() string   { return "LD " + i.Dst.String() + "," + i.Src.String() }
func (i LdR8N8) String() string   { return "LD " + i.R.String() + "," + hex8(i.N) }
func (i LdR8HL) String() string   { return "LD " + i.R.String() + ",[HL]" }
func (i LdHLR8) String() string   { return "LD [HL]," + i.R.String() }
func (i LdHLN8) String() string   { return "LD [HL]," + hex8(i.N) }
func (i LdR16N16) String() string { return "LD " + i.R.String() + "," + hex16(i.N) }
func (i LdSPN16) String() string  { return "LD SP," + hex16(i.N) }
func (i LdR16A) String() string   { return "LD [" + i.R.String() + "],A" }
func (i LdAR16) String() string   { return "LD A,[" + i.R.String() + "]" }
func (LdiHLA) String() string     { return "LD [HLI],A" }
func (LdiAHL) String() string     { return "LD A,[HLI]" }
func (LddHLA) String() string     { return "LD [HLD],A" }
func (LddAHL) String() string     { return "LD A,[HLD]" }
func (i LdA16A) String() string   { return "LD [" + hex16(i.Addr) + "],A" }
func (i LdAA16) String() string   { return "LD A,[" + hex16(i.Addr) + "]" }
func (i LdN16SP) String() string  { return "LD [" + hex16(i.Addr) + "],SP" }
func (i LdHLSPE8) String() string { return "LD HL,SP" + signed(i.E) }
func (LdSPHL) String() string     { return "LD SP,HL" }
func (LdhCA) String() string      { return "LDH [C],A" }
func (LdhAC) String() string      { return "LDH A,[C]" }
func (i LdhN8A) String() string   { return "LDH [" + hex16(0xFF00|uint16(i.N)) + "],A" }
func (i LdhAN8) String() string   { return "LDH A,[" + hex16(0xFF00|uint16(i.N)) + "]" }

func (LdR8R8) isInstruction()   {}
func (LdR8N8) isInstruction()   {}
func (LdR8HL) isInstruction()   {}
func (LdHLR8) isInstruction()   {}
func (LdHLN8) isInstruction()   {}
func (LdR16N16) isInstruction() {}
func (LdSPN16) isInstruction()  {}
func (LdR16A) isInstruction()   {}
func (LdAR16) isInstruction()   {}
func (LdiHLA) isInstruction()   {}
func (LdiAHL) isInstruction()   {}
func (LddHLA) isInstruction()   {}
func (LddAHL) isInstruction()   {}
func (LdA16A) isInstruction()   {}
func (LdAA16) isInstruction()   {}
func (LdN16SP) isInstruction()  {}
func (LdHLSPE8) isInstruction() {}
func (LdSPHL) isInstruction()   {}
func (LdhCA) isInstruction()    {}
func (LdhAC) isInstruction()    {}
func (LdhN8A) isInstruction()   {}
func (LdhAN8) isInstruction()   {}

// stack

type PushR16 struct{ R Register }
type PopR16 struct{ R Register }

func (PushR16) Info() OpcodeInfo { return OpPushR16.Info() }
func (PopR16) Info() OpcodeInfo  { return OpPopR16.Info() }
func (i PushR16) String() string { return "PUSH " + i.R.String() }
func (i PopR16) String() string  { return "POP " + i.R.String() }
func (PushR16) isInstruction()   {}
func (PopR16) isInstruction()    {}

// accumulator and flag operations

type Rlca struct{}
type Rrca struct{}
type Rla struct{}
type Rra struct{}
type Daa struct{}
type Cpl struct{}
type Scf struct{}
type Ccf struct{}

func (Rlca) Info() OpcodeInfo { return OpRlca.Info() }
func (Rrca) Info() OpcodeInfo { return OpRrca.Info() }
func (Rla) Info() OpcodeInfo  { return OpRla.Info() }
func (Rra) Info() OpcodeInfo  { return OpRra.Info() }
func (Daa) Info() OpcodeInfo  { return OpDaa.Info() }
func (Cpl) Info() OpcodeInfo  { return OpCpl.Info() }
func (Scf) Info() OpcodeInfo  { return OpScf.Info() }
func (Ccf) Info() OpcodeInfo  { return OpCcf.Info() }
func (Rlca) String() string   { return "RLCA" }
func (Rrca) String() string   { return "RRCA" }
func (Rla) String() string    { return "RLA" }
func (Rra) String() string    { return "RRA" }
func (Daa) String() string    { return "DAA" }
func (Cpl) String() string    { return "CPL" }
func (Scf) String() string    { return "SCF" }
func (Ccf) String() string    { return "CCF" }
func (Rlca) isInstruction()   {}
func (Rrca) isInstruction()   {}
func (Rla) isInstruction()    {}
func (Rra) isInstruction()    {}
func (Daa) isInstruction()    {}
func (Cpl) isInstruction()    {}
func (Scf) isInstruction()    {}
func (Ccf) isInstruction()    {}
