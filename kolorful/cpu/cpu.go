package cpu

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/valerio/go-kolorful/kolorful/addr"
)

// Bus is what the CPU needs from the memory system. memory.Bus implements it.
type Bus interface {
	Read(address uint16) (byte, error)
	Write(address uint16, value byte) error
}

const (
	// interruptCycles is the cost of an interrupt dispatch.
	interruptCycles = 20
	// idleCycles is the cost of a step spent halted.
	idleCycles = 4
)

// Option configures a CPU at construction.
type Option func(*CPU)

// WithBootROM maps rom over the low address space until 0xFF50 is written,
// and starts execution at 0x0000.
func WithBootROM(rom []byte) Option {
	return func(c *CPU) {
		c.boot = append([]byte(nil), rom...)
		c.isBoot = len(rom) > 0
	}
}

// WithTrace logs every executed instruction at debug level.
func WithTrace() Option {
	return func(c *CPU) {
		c.trace = true
	}
}

// CPU holds the processor state. It is not safe for concurrent use: all
// calls must come from the goroutine driving Step.
type CPU struct {
	reg Registers

	// interrupts
	ime   bool
	ie    uint8
	iflag uint8

	halted bool
	isBoot bool
	boot   []byte
	hram   [addr.HRAMEnd - addr.HRAMStart + 1]byte

	trace  bool
	cycles uint64

	bus Bus
}

// New returns a CPU attached to bus. Without a boot ROM the registers hold
// the values the CGB boot ROM leaves behind and execution starts at 0x0100.
func New(bus Bus, opts ...Option) *CPU {
	c := &CPU{bus: bus}
	for _, opt := range opts {
		opt(c)
	}

	if c.isBoot {
		return c
	}

	c.reg = Registers{
		AF: 0x1180,
		BC: 0x0000,
		DE: 0xFF56,
		HL: 0x000D,
		SP: addr.StackTop,
		PC: 0x0100,
	}
	return c
}

// fault carries a bus or protection error out of an instruction. It is
// raised by read and write and recovered in Step.
type fault struct {
	err error
}

// Step runs one unit of work: an interrupt dispatch, an idle HALT cycle or a
// single instruction. It returns the T-cycles it took.
func (c *CPU) Step() (cycles int, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fault)
			if !ok {
				panic(r)
			}
			cycles, err = 0, f.err
		}
	}()

	if c.handleInterrupts() {
		c.cycles += interruptCycles
		return interruptCycles, nil
	}

	if c.halted {
		c.cycles += idleCycles
		return idleCycles, nil
	}

	pc := c.reg.PC
	instr, err := Decode(c.fetch)
	if err != nil {
		return 0, fmt.Errorf("decode at 0x%04X: %w", pc, err)
	}

	if c.trace {
		slog.Debug("exec", "pc", fmt.Sprintf("0x%04X", pc), "instr", instr.String(), "flags", c.reg.FlagString())
	}

	cycles, err = c.execute(instr)
	if err != nil {
		return 0, fmt.Errorf("%v at 0x%04X: %w", instr, pc, err)
	}
	c.cycles += uint64(cycles)
	return cycles, nil
}

// Run steps until an error occurs or ctx is cancelled.
func (c *CPU) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := c.Step(); err != nil {
			return err
		}
	}
}

// fetch reads the byte at PC and advances it.
func (c *CPU) fetch() byte {
	v := c.read(c.reg.PC)
	c.reg.PC++
	return v
}

func (c *CPU) read(address uint16) byte {
	v, err := c.ReadByte(address)
	if err != nil {
		panic(fault{err})
	}
	return v
}

func (c *CPU) write(address uint16, value byte) {
	if err := c.writeByte(address, value); err != nil {
		panic(fault{err})
	}
}

// ReadByte reads address the way the running program sees it: high RAM,
// IF and IE are CPU-local, and the boot ROM shadows the cartridge while
// mapped. Everything else goes to the bus.
func (c *CPU) ReadByte(address uint16) (byte, error) {
	switch {
	case address >= addr.HRAMStart && address <= addr.HRAMEnd:
		return c.hram[address-addr.HRAMStart], nil
	case address == addr.IF:
		return c.iflag | 0xE0, nil
	case address == addr.IE:
		return c.ie, nil
	case c.shadowed(address):
		return c.boot[address], nil
	}
	return c.bus.Read(address)
}

func (c *CPU) writeByte(address uint16, value byte) error {
	switch {
	case address >= addr.HRAMStart && address <= addr.HRAMEnd:
		c.hram[address-addr.HRAMStart] = value
		return nil
	case address == addr.IF:
		c.iflag = value & addr.InterruptMask
		return nil
	case address == addr.IE:
		c.ie = value
		return nil
	case address == addr.BootROMDisable:
		if c.isBoot {
			slog.Info("boot rom unmapped", "pc", fmt.Sprintf("0x%04X", c.reg.PC), "value", fmt.Sprintf("0x%02X", value))
		}
		c.isBoot = false
		return nil
	case c.shadowed(address):
		return fmt.Errorf("%w: 0x%04X (value 0x%02X)", ErrBootROMWrite, address, value)
	}
	return c.bus.Write(address, value)
}

// shadowed reports whether the boot ROM serves address. A CGB boot image
// is 2304 bytes and leaves the cartridge header at 0x0100-0x01FF visible.
func (c *CPU) shadowed(address uint16) bool {
	if !c.isBoot || int(address) >= len(c.boot) {
		return false
	}
	return len(c.boot) <= 0x100 || address < 0x100 || address > 0x1FF
}

// ActiveROMSize is the size of the code image currently mapped at 0x0000:
// the boot ROM while it is mapped, the fixed cartridge window otherwise.
func (c *CPU) ActiveROMSize() int {
	if c.isBoot {
		return len(c.boot)
	}
	return addr.ROMSize
}

func (c *CPU) Registers() Registers      { return c.reg }
func (c *CPU) SetRegisters(r Registers)  { c.reg = r }
func (c *CPU) PC() uint16                { return c.reg.PC }
func (c *CPU) IME() bool                 { return c.ime }
func (c *CPU) Halted() bool              { return c.halted }
func (c *CPU) Booting() bool             { return c.isBoot }
func (c *CPU) Cycles() uint64            { return c.cycles }
func (c *CPU) SetIME(on bool)            { c.ime = on }
func (c *CPU) InterruptEnable() uint8    { return c.ie }
func (c *CPU) InterruptFlag() uint8      { return c.iflag }
func (c *CPU) SetInterruptEnable(v byte) { c.ie = v }
