package kolorful

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-kolorful/kolorful/memory"
)

const entry = 0x0100

// cartridge returns a 32 KiB image with program placed at the entry point.
func cartridge(program ...byte) []byte {
	img := make([]byte, 0x8000)
	copy(img[entry:], program)
	return img
}

func TestConsoleSerialOutput(t *testing.T) {
	var out bytes.Buffer
	var raw []byte

	var program []byte
	for _, ch := range []byte("hi\n") {
		program = append(program,
			0x3E, ch,   // LD A,ch
			0xE0, 0x01, // LDH [$FF01],A
			0x3E, 0x81, // LD A,$81
			0xE0, 0x02, // LDH [$FF02],A
		)
	}

	c := New(cartridge(program...),
		WithSerialWriter(&out),
		WithSerialSink(func(b byte) { raw = append(raw, b) }),
	)

	n, err := c.RunFor(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	assert.Equal(t, "hi\n", out.String())
	assert.Equal(t, []byte("hi\n"), raw)
	assert.Equal(t, []string{"hi"}, c.Serial().Lines())
	assert.NotZero(t, c.CPU().InterruptFlag()&0x08, "serial interrupt requested")
}

func TestConsoleBreakpoints(t *testing.T) {
	c := New(cartridge())
	c.Breakpoints().Add(entry + 2)

	err := c.Run(context.Background())
	require.ErrorIs(t, err, ErrBreakpoint)
	assert.Contains(t, err.Error(), "0x0102")
	assert.Equal(t, uint16(entry+2), c.CPU().PC())

	// hitting it again does not move
	_, err = c.Step()
	assert.ErrorIs(t, err, ErrBreakpoint)
	assert.Equal(t, uint16(entry+2), c.CPU().PC())

	cycles, err := c.Continue()
	require.NoError(t, err)
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(entry+3), c.CPU().PC())

	_, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(entry+4), c.CPU().PC())
}

func TestConsoleRunCancelled(t *testing.T) {
	c := New(cartridge())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := c.RunFor(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	assert.Equal(t, uint16(entry), c.CPU().PC())
}

func TestConsoleUnmappedIO(t *testing.T) {
	program := []byte{
		0xF0, 0x00, // LDH A,[$FF00]
	}

	t.Run("faults without debug sink", func(t *testing.T) {
		c := New(cartridge(program...))
		_, err := c.Step()
		assert.ErrorIs(t, err, memory.ErrUnmappedAddress)
	})

	t.Run("debug sink answers", func(t *testing.T) {
		c := New(cartridge(program...), WithDebugSink())
		_, err := c.Step()
		require.NoError(t, err)
		regs := c.CPU().Registers()
		assert.Equal(t, byte(0xFF), regs.A())
	})
}

func TestConsoleBankRegisters(t *testing.T) {
	c := New(cartridge(
		0x3E, 0x03,       // LD A,3
		0xE0, 0x70,       // LDH [$FF70],A
		0x3E, 0x01,       // LD A,1
		0xE0, 0x4F,       // LDH [$FF4F],A
		0x3E, 0x42,       // LD A,$42
		0xEA, 0x00, 0xFE, // LD [$FE00],A
		0xE0, 0x26,       // LDH [$FF26],A
	))

	_, err := c.RunFor(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, uint8(3), c.WRAM().Bank())
	assert.Equal(t, uint8(1), c.VRAM().Bank())

	oam, err := c.Bus().Read(0xFE00)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), oam)

	audio, err := c.Bus().Read(0xFF26)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), audio, "audio is stubbed")
}

func TestConsoleBootROM(t *testing.T) {
	boot := make([]byte, 0x100)
	copy(boot, []byte{
		0x3E, 0x01, // LD A,1
		0xE0, 0x50, // LDH [$FF50],A
	})
	rom := cartridge()
	rom[0x0004] = 0x3C // INC A, only reachable from the cartridge

	c := New(rom, WithBootROM(boot))
	assert.True(t, c.CPU().Booting())
	assert.Equal(t, uint16(0x0000), c.CPU().PC())

	_, err := c.RunFor(context.Background(), 3)
	require.NoError(t, err)

	assert.False(t, c.CPU().Booting())
	regs := c.CPU().Registers()
	assert.Equal(t, byte(0x02), regs.A())
}

func TestConsoleLogsToCurrentDefault(t *testing.T) {
	var program []byte
	for _, ch := range []byte("hi\n") {
		program = append(program,
			0x3E, ch,   // LD A,ch
			0xE0, 0x01, // LDH [$FF01],A
			0x3E, 0x81, // LD A,$81
			0xE0, 0x02, // LDH [$FF02],A
		)
	}
	program = append(program, 0xF0, 0x00) // LDH A,[$FF00]

	c := New(cartridge(program...), WithDebugSink())

	// installed after construction, the way the debugger does it
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	_, err := c.RunFor(context.Background(), 13)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "line=hi")
	assert.Contains(t, logs.String(), "msg=\"stub read\" device=debug addr=0xFF00")
}
