package cpu

import "github.com/valerio/go-kolorful/kolorful/addr"

// stackWindow is the number of bytes a State shows above SP.
const stackWindow = 32

// State is a copy of the CPU taken between steps, for display.
type State struct {
	Registers Registers
	Flags     string

	A, F, B, C, D, E, H, L byte

	IME    bool
	IE, IF uint8
	Halted bool
	Boot   bool
	Cycles uint64

	// Stack holds the bytes from SP upwards, stopping at the stack top.
	Stack []byte

	// Next is the instruction at PC, nil when it cannot be decoded.
	Next    Instruction
	NextErr error
}

// Snapshot captures the current state. It performs reads through the CPU's
// address view but never changes anything.
func (c *CPU) Snapshot() State {
	r := c.reg
	s := State{
		Registers: r,
		Flags:     r.FlagString(),
		A:         r.A(),
		F:         r.F(),
		B:         r.B(),
		C:         r.C(),
		D:         r.D(),
		E:         r.E(),
		H:         r.H(),
		L:         r.L(),
		IME:       c.ime,
		IE:        c.ie,
		IF:        c.iflag,
		Halted:    c.halted,
		Boot:      c.isBoot,
		Cycles:    c.cycles,
	}

	for a := uint32(r.SP); a < uint32(addr.StackTop) && len(s.Stack) < stackWindow; a++ {
		v, err := c.ReadByte(uint16(a))
		if err != nil {
			break
		}
		s.Stack = append(s.Stack, v)
	}

	s.Next, s.NextErr = c.Peek(r.PC)
	return s
}

// Peek decodes the instruction at address without executing it.
func (c *CPU) Peek(address uint16) (Instruction, error) {
	var readErr error
	instr, err := Decode(func() byte {
		v, err := c.ReadByte(address)
		if err != nil && readErr == nil {
			readErr = err
		}
		address++
		return v
	})
	if readErr != nil {
		return nil, readErr
	}
	return instr, err
}
