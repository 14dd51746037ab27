package cpu

import "fmt"

// Instructions behind the 0xCB prefix. Bit is the bit index, 0-7.

type RlcHL struct{}
type RlcR8 struct{ R Register }
type RrcHL struct{}
type RrcR8 struct{ R Register }
type RlHL struct{}
type RlR8 struct{ R Register }
type RrHL struct{}
type RrR8 struct{ R Register }
type SlaHL struct{}
type SlaR8 struct{ R Register }
type SraHL struct{}
type SraR8 struct{ R Register }
type SwapHL struct{}
type SwapR8 struct{ R Register }
type SrlHL struct{}
type SrlR8 struct{ R Register }
type BitHL struct{ Bit uint8 }
type BitR8 struct {
	Bit uint8
	R   Register
}
type ResHL struct{ Bit uint8 }
type ResR8 struct {
	Bit uint8
	R   Register
}
type SetHL struct{ Bit uint8 }
type SetR8 struct {
	Bit uint8
	R   Register
}

func (RlcHL) Info() OpcodeInfo  { return OpRlcHL.Info() }
func (RlcR8) Info() OpcodeInfo  { return OpRlcR8.Info() }
func (RrcHL) Info() OpcodeInfo  { return OpRrcHL.Info() }
func (RrcR8) Info() OpcodeInfo  { return OpRrcR8.Info() }
func (RlHL) Info() OpcodeInfo   { return OpRlHL.Info() }
func (RlR8) Info() OpcodeInfo   { return OpRlR8.Info() }
func (RrHL) Info() OpcodeInfo   { return OpRrHL.Info() }
func (RrR8) Info() OpcodeInfo   { return OpRrR8.Info() }
func (SlaHL) Info() OpcodeInfo  { return OpSlaHL.Info() }
func (SlaR8) Info() OpcodeInfo  { return OpSlaR8.Info() }
func (SraHL) Info() OpcodeInfo  { return OpSraHL.Info() }
func (SraR8) Info() OpcodeInfo  { return OpSraR8.Info() }
func (SwapHL) Info() OpcodeInfo { return OpSwapHL.Info() }
func (SwapR8) Info() OpcodeInfo { return OpSwapR8.Info() }
func (SrlHL) Info() OpcodeInfo  { return OpSrlHL.Info() }
func (SrlR8) Info() OpcodeInfo  { return OpSrlR8.Info() }
func (BitHL) Info() OpcodeInfo  { return OpBitHL.Info() }
func (BitR8) Info() OpcodeInfo  { return OpBitR8.Info() }
func (ResHL) Info() OpcodeInfo  { return OpResHL.Info() }
func (ResR8) Info() OpcodeInfo  { return OpResR8.Info() }
func (SetHL) Info() OpcodeInfo  { return OpSetHL.Info() }
func (SetR8) Info() OpcodeInfo  { return OpSetR8.Info() }

func (RlcHL) String() string    { return "RLC [HL]" }
func (i RlcR8) String() string  { return "RLC " + i.R.String() }
func (RrcHL) String() string    { return "RRC [HL]" }
func (i RrcR8) String() string  { return "RRC " + i.R.String() }
func (RlHL) String() string     { return "RL [HL]" }
func (i RlR8) String() string   { return "RL " + i.R.String() }
func (RrHL) String() string     { return "RR [HL]" }
func (i RrR8) String() string   { return "RR " + i.R.String() }
func (SlaHL) String() string    { return "SLA [HL]" }
func (i SlaR8) String() string  { return "SLA " + i.R.String() }
func (SraHL) String() string    { return "SRA [HL]" }
func (i SraR8) String() string  { return "SRA " + i.R.String() }
func (SwapHL) String() string   { return "SWAP [HL]" }
func (i SwapR8) String() string { return "SWAP " + i.R.String() }
func (SrlHL) String() string    { return "SRL [HL]" }
func (i SrlR8) String() string  { return "SRL " + i.R.String() }
func (i BitHL) String() string  { return fmt.Sprintf("BIT %d,[HL]", i.Bit) }
func (i BitR8) String() string  { return fmt.Sprintf("BIT %d,%s", i.Bit, i.R) }
func (i ResHL) String() string  { return fmt.Sprintf("RES %d,[HL]", i.Bit) }
func (i ResR8) String() string  { return fmt.Sprintf("RES %d,%s", i.Bit, i.R) }
func (i SetHL) String() string  { return fmt.Sprintf("SET %d,[HL]", i.Bit) }
func (i SetR8) String() string  { return fmt.Sprintf("SET %d,%s", i.Bit, i.R) }

func (RlcHL) isInstruction()  {}
func (RlcR8) isInstruction()  {}
func (RrcHL) isInstruction()  {}
func (RrcR8) isInstruction()  {}
func (RlHL) isInstruction()   {}
func (RlR8) isInstruction()   {}
func (RrHL) isInstruction()   {}
func (RrR8) isInstruction()   {}
func (SlaHL) isInstruction()  {}
func (SlaR8) isInstruction()  {}
func (SraHL) isInstruction()  {}
func (SraR8) isInstruction()  {}
func (SwapHL) isInstruction() {}
func (SwapR8) isInstruction() {}
func (SrlHL) isInstruction()  {}
func (SrlR8) isInstruction()  {}
func (BitHL) isInstruction()  {}
func (BitR8) isInstruction()  {}
func (ResHL) isInstruction()  {}
func (ResR8) isInstruction()  {}
func (SetHL) isInstruction()  {}
func (SetR8) isInstruction()  {}
