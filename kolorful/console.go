package kolorful

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/valerio/go-kolorful/kolorful/addr"
	"github.com/valerio/go-kolorful/kolorful/cpu"
	"github.com/valerio/go-kolorful/kolorful/memory"
	"github.com/valerio/go-kolorful/kolorful/serial"
)

// ErrBreakpoint is returned by Step and Run when the next instruction sits
// on a breakpoint. The instruction has not been executed.
var ErrBreakpoint = errors.New("breakpoint")

const (
	oamStart uint16 = 0xFE00
	oamEnd   uint16 = 0xFE9F
)

type config struct {
	cpuOpts   []cpu.Option
	sink      serial.Sink
	out       io.Writer
	debugSink bool
}

// Option configures a Console at construction.
type Option func(*config)

// WithBootROM runs the given boot image before the cartridge.
func WithBootROM(rom []byte) Option {
	return func(c *config) { c.cpuOpts = append(c.cpuOpts, cpu.WithBootROM(rom)) }
}

// WithTrace logs every executed instruction at debug level.
func WithTrace() Option {
	return func(c *config) { c.cpuOpts = append(c.cpuOpts, cpu.WithTrace()) }
}

// WithSerialSink receives every byte sent over the serial port, in addition
// to the console's line sink.
func WithSerialSink(sink serial.Sink) Option {
	return func(c *config) { c.sink = sink }
}

// WithSerialWriter mirrors completed serial lines to w.
func WithSerialWriter(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithDebugSink maps a stub under every address no device claims, so
// accesses to unemulated hardware are logged instead of faulting.
func WithDebugSink() Option {
	return func(c *config) { c.debugSink = true }
}

// Console wires the devices of the machine to a bus and drives the CPU.
type Console struct {
	cpu         *cpu.CPU
	bus         *memory.Bus
	cart        *memory.Cartridge
	vram        *memory.VRAM
	wram        *memory.WRAM
	port        *serial.Port
	lines       *serial.LineSink
	breakpoints *cpu.Breakpoints
}

// New builds a console around a cartridge image.
func New(rom []byte, opts ...Option) *Console {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Console{
		cart:        memory.NewCartridge(rom),
		vram:        memory.NewVRAM(),
		wram:        memory.NewWRAM(),
		breakpoints: cpu.NewBreakpoints(),
	}

	var lineOpts []serial.LineSinkOption
	if cfg.out != nil {
		lineOpts = append(lineOpts, serial.WithWriter(cfg.out))
	}
	c.lines = serial.NewLineSink(lineOpts...)

	sink := c.lines.Put
	if cfg.sink != nil {
		sink = func(b byte) {
			c.lines.Put(b)
			cfg.sink(b)
		}
	}
	c.port = serial.NewPort(sink, serial.WithInterrupt(func() {
		c.cpu.RequestInterrupt(addr.SerialInterrupt)
	}))

	c.bus = memory.NewBus(
		c.cart,
		c.vram,
		c.wram,
		memory.NewWRAMBankSelect(c.wram),
		c.port,
		memory.NewRAM(oamStart, oamEnd),
		memory.NewStub("audio", 0xFF, memory.Span(addr.AudioStart, addr.AudioEnd)),
		memory.NewStub("wave", 0xFF, memory.Span(addr.WaveRAMStart, addr.WaveRAMEnd)),
	)
	if cfg.debugSink {
		c.bus.Attach(memory.NewStub("debug", 0xFF, memory.Span(0x0000, 0xFFFF)))
	}

	c.cpu = cpu.New(c.bus, cfg.cpuOpts...)

	slog.Debug("console ready", "rom", len(rom), "boot", c.cpu.Booting(), "devices", len(c.bus.Devices()))
	return c
}

func (c *Console) CPU() *cpu.CPU                 { return c.cpu }
func (c *Console) Bus() *memory.Bus              { return c.bus }
func (c *Console) Breakpoints() *cpu.Breakpoints { return c.breakpoints }
func (c *Console) Serial() *serial.LineSink      { return c.lines }
func (c *Console) VRAM() *memory.VRAM            { return c.vram }
func (c *Console) WRAM() *memory.WRAM            { return c.wram }

// Step executes one instruction unless the PC sits on a breakpoint.
func (c *Console) Step() (int, error) {
	if pc := c.cpu.PC(); c.breakpoints.Has(pc) {
		return 0, fmt.Errorf("%w at 0x%04X", ErrBreakpoint, pc)
	}
	return c.cpu.Step()
}

// Continue executes one instruction, ignoring a breakpoint at the PC. It is
// how a debugger resumes after a hit.
func (c *Console) Continue() (int, error) {
	return c.cpu.Step()
}

// Run steps until an error, a breakpoint or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	_, err := c.RunFor(ctx, 0)
	return err
}

// RunFor steps at most n instructions, or without limit when n <= 0, and
// returns how many were executed.
func (c *Console) RunFor(ctx context.Context, n int) (int, error) {
	steps := 0
	for n <= 0 || steps < n {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if _, err := c.Step(); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}
