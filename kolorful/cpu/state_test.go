package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-kolorful/kolorful/memory"
)

func TestSnapshot(t *testing.T) {
	c, _ := newTestCPU(t, 0xC5, 0xD5, 0xCD, 0x00, 0xD0) // PUSH BC; PUSH DE; CALL $D000
	c.reg.BC = 0x1234
	c.reg.DE = 0x5678
	c.reg.SetA(0x9A)
	c.reg.SetZero(true)
	c.SetInterruptEnable(0x05)

	steps(t, c, 2)
	s := c.Snapshot()

	assert.Equal(t, c.Registers(), s.Registers)
	assert.Equal(t, byte(0x9A), s.A)
	assert.Equal(t, byte(0x12), s.B)
	assert.Equal(t, byte(0x78), s.E)
	assert.Equal(t, "Z---", s.Flags)
	assert.Equal(t, uint8(0x05), s.IE)
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, s.Stack)
	assert.Equal(t, CallN16{Addr: 0xD000}, s.Next)
	assert.NoError(t, s.NextErr)
	assert.Equal(t, uint64(32), s.Cycles)

	assert.Equal(t, programStart+2, c.PC(), "snapshot does not move PC")
}

func TestSnapshotStackWindow(t *testing.T) {
	c, _ := newTestCPU(t)

	c.reg.SP = 0xFFFE
	assert.Empty(t, c.Snapshot().Stack)

	c.reg.SP = 0xD000
	assert.Len(t, c.Snapshot().Stack, stackWindow)

	c.reg.SP = 0xFFF0
	assert.Len(t, c.Snapshot().Stack, 14)
}

func TestSnapshotNextErrors(t *testing.T) {
	c, _ := newTestCPU(t, 0xDD)
	s := c.Snapshot()
	assert.Nil(t, s.Next)
	assert.ErrorIs(t, s.NextErr, ErrInvalidOpcode)

	bus := memory.NewBus(memory.NewRAM(0xC000, 0xC000))
	c = New(bus)
	c.SetRegisters(Registers{PC: 0xC000, SP: 0xFFFE})
	require.NoError(t, bus.Write(0xC000, 0xC3)) // JP n16, operands unmapped

	s = c.Snapshot()
	assert.Nil(t, s.Next)
	assert.ErrorIs(t, s.NextErr, memory.ErrUnmappedAddress)
}

func TestBreakpoints(t *testing.T) {
	b := NewBreakpoints(0x0150, 0x0100)
	assert.Equal(t, 2, b.Len())
	v := b.Version()

	assert.True(t, b.Has(0x0100))
	assert.False(t, b.Has(0x0101))

	assert.False(t, b.Add(0x0100), "already set")
	assert.Equal(t, v, b.Version(), "no-op does not bump the version")

	assert.True(t, b.Add(0x0000))
	assert.Equal(t, []uint16{0x0000, 0x0100, 0x0150}, b.List())
	assert.Greater(t, b.Version(), v)

	assert.True(t, b.Remove(0x0150))
	assert.False(t, b.Remove(0x0150))
	assert.Equal(t, []uint16{0x0000, 0x0100}, b.List())

	assert.False(t, b.Toggle(0x0000))
	assert.True(t, b.Toggle(0x0000))
	assert.True(t, b.Has(0x0000))

	v = b.Version()
	b.Clear()
	assert.Empty(t, b.List())
	assert.Equal(t, v+1, b.Version())
	b.Clear()
	assert.Equal(t, v+1, b.Version())
}
