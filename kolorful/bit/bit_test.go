package bit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineSplit(t *testing.T) {
	tests := []struct {
		high, low uint8
		word      uint16
	}{
		{0xAB, 0xCD, 0xABCD},
		{0x00, 0x00, 0x0000},
		{0xFF, 0xFF, 0xFFFF},
		{0x12, 0x34, 0x1234},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.word, Combine(tt.high, tt.low))

		high, low := Split(tt.word)
		assert.Equal(t, tt.high, high)
		assert.Equal(t, tt.low, low)
		assert.Equal(t, tt.high, High(tt.word))
		assert.Equal(t, tt.low, Low(tt.word))
	}
}

func TestIsSet(t *testing.T) {
	tests := []struct {
		value    uint8
		index    uint8
		expected bool
	}{
		{0b10101010, 0, false},
		{0b10101010, 1, true},
		{0b10101010, 7, true},
		{0b10101010, 8, false},
		{0b10101010, 255, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsSet(tt.index, tt.value), "IsSet(%d, %08b)", tt.index, tt.value)
	}
}

func TestSetReset(t *testing.T) {
	tests := []struct {
		value     uint8
		index     uint8
		set, rest uint8
	}{
		{0b10101010, 0, 0b10101011, 0b10101010},
		{0b10101010, 1, 0b10101010, 0b10101000},
		{0b10101010, 7, 0b10101010, 0b00101010},
		{0b10101010, 8, 0b10101010, 0b10101010},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.set, Set(tt.index, tt.value), "Set(%d, %08b)", tt.index, tt.value)
		assert.Equal(t, tt.rest, Reset(tt.index, tt.value), "Reset(%d, %08b)", tt.index, tt.value)
	}
}

func TestValue(t *testing.T) {
	assert.Equal(t, uint8(0), Value(0, 0b10))
	assert.Equal(t, uint8(1), Value(1, 0b10))
	assert.Equal(t, uint8(1), Value(7, 0x80))
	assert.Equal(t, uint8(0), Value(8, 0xFF))
}

func TestField(t *testing.T) {
	tests := []struct {
		name         string
		value        uint8
		shift, width uint8
		expected     uint8
	}{
		{"low register slot", 0b0111_1010, 0, 3, 0b010},
		{"high register slot", 0b0111_1010, 3, 3, 0b111},
		{"register pair", 0b0011_0001, 4, 2, 0b11},
		{"condition", 0b0001_1000, 3, 2, 0b11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Field(tt.value, tt.shift, tt.width))
		})
	}
}

func TestAddSigned(t *testing.T) {
	assert.Equal(t, uint16(0x0105), AddSigned(0x0100, 5))
	assert.Equal(t, uint16(0x00FE), AddSigned(0x0100, -2))
	assert.Equal(t, uint16(0xFFFF), AddSigned(0x0000, -1))
	assert.Equal(t, uint16(0x0000), AddSigned(0xFFFF, 1))
}

func TestSwapNibbles(t *testing.T) {
	assert.Equal(t, uint8(0x21), SwapNibbles(0x12))
	assert.Equal(t, uint8(0x0F), SwapNibbles(0xF0))
	assert.Equal(t, uint8(0x00), SwapNibbles(0x00))
}
