package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-kolorful/kolorful/cpu"
	"github.com/valerio/go-kolorful/kolorful/memory"
)

// image is a Source over a byte slice mapped at 0x0000.
type image []byte

func (m image) ReadByte(address uint16) (byte, error) {
	if int(address) >= len(m) {
		return 0, &memory.AddressError{Op: memory.OpRead, Address: address, Err: memory.ErrUnmappedAddress}
	}
	return m[address], nil
}

func (m image) ActiveROMSize() int { return len(m) }

var program = image{
	0x31, 0xFE, 0xFF, // LD SP,$FFFE
	0xAF,             // XOR A,A
	0xCB, 0x7C,       // BIT 7,H
	0xD3,             // invalid
	0x20, 0xFB,       // JR NZ,-5
	0xE0, 0x50,       // LDH [$FF50],A
}

func TestListing(t *testing.T) {
	lines := Listing(program)

	want := []struct {
		address uint16
		text    string
		length  int
	}{
		{0x0000, "LD SP,$FFFE", 3},
		{0x0003, "XOR A,A", 1},
		{0x0004, "BIT 7,H", 2},
		{0x0006, "DB $D3", 1},
		{0x0007, "JR NZ,-5", 2},
		{0x0009, "LDH [$FF50],A", 2},
	}

	require.Len(t, lines, len(want))
	for i, w := range want {
		assert.Equal(t, w.address, lines[i].Address)
		assert.Equal(t, w.text, lines[i].Text)
		assert.Len(t, lines[i].Bytes, w.length)
	}

	assert.Nil(t, lines[3].Instruction)
	assert.Equal(t, cpu.BitR8{Bit: 7, R: cpu.H}, lines[2].Instruction)
	assert.Equal(t, "0000  31 FE FF  LD SP,$FFFE", lines[0].String())
}

func TestListingTruncatedInstruction(t *testing.T) {
	lines := Listing(image{0x00, 0xC3, 0x00})

	require.Len(t, lines, 2)
	assert.Equal(t, "??", lines[1].Text)
	assert.Nil(t, lines[1].Instruction)
	assert.Len(t, lines[1].Bytes, 3)
	assert.ErrorIs(t, lines[1].Err, memory.ErrUnmappedAddress)
}

func TestAround(t *testing.T) {
	tests := []struct {
		name   string
		pc     uint16
		before int
		after  int
		want   []uint16
	}{
		{"aligned", 0x0006, 2, 1, []uint16{0x0003, 0x0004, 0x0006, 0x0007}},
		{"at start", 0x0000, 3, 1, []uint16{0x0000, 0x0003}},
		{"near end", 0x0009, 1, 5, []uint16{0x0007, 0x0009}},
		{"inside an instruction", 0x0005, 1, 0, []uint16{0x0004, 0x0005}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []uint16
			for _, l := range Around(program, tt.pc, tt.before, tt.after) {
				got = append(got, l.Address)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAroundOutsideROM(t *testing.T) {
	bus := memory.NewBus(memory.NewRAM(0x0000, 0xFF7F))
	c := cpu.New(bus)
	for i, b := range []byte{0x3C, 0x18, 0xFD} { // INC A; JR -3
		require.NoError(t, bus.Write(0xC000+uint16(i), b))
	}

	lines := Around(c, 0xC000, 4, 1)
	require.Len(t, lines, 2)
	assert.Equal(t, "INC A", lines[0].Text)
	assert.Equal(t, "JR -3", lines[1].Text)
}

func TestListingFollowsBootROM(t *testing.T) {
	boot := []byte{0x31, 0xFE, 0xFF, 0x00}
	rom := make([]byte, 0x8000)
	bus := memory.NewBus(memory.NewCartridge(rom), memory.NewRAM(0x8000, 0xFF7F))
	c := cpu.New(bus, cpu.WithBootROM(boot))

	lines := Listing(c)
	require.Len(t, lines, 2)
	assert.Equal(t, "LD SP,$FFFE", lines[0].Text)
	assert.Equal(t, "NOP", lines[1].Text)

	// unmapping the boot ROM switches the listing to the cartridge
	c.SetRegisters(cpu.Registers{PC: 0xC000, SP: 0xFFFE, AF: 0x0100})
	require.NoError(t, bus.Write(0xC000, 0xE0))
	require.NoError(t, bus.Write(0xC001, 0x50))
	_, err := c.Step()
	require.NoError(t, err)

	assert.Len(t, Listing(c), 0x8000, "all zero bytes: one NOP per address")
}
