package bit

// Combine joins two bytes into a word, high byte first.
func Combine(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split breaks a word into its high and low bytes.
func Split(value uint16) (high, low uint8) {
	return High(value), Low(value)
}

// Low returns the least significant byte of a word.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the most significant byte of a word.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// IsSet reports whether the bit at index is 1. Indexes past 7 are never set.
func IsSet(index, value uint8) bool {
	return (value>>index)&1 == 1
}

// Set returns value with the bit at index forced to 1.
func Set(index, value uint8) uint8 {
	return value | (1 << index)
}

// Reset returns value with the bit at index forced to 0.
func Reset(index, value uint8) uint8 {
	return value &^ (1 << index)
}

// Value returns 1 when the bit at index is set, 0 otherwise.
func Value(index, value uint8) uint8 {
	return (value >> index) & 1
}

// Field extracts width bits starting at shift.
// Example: Field(0b0011_1000, 3, 3) -> 0b111
func Field(value, shift, width uint8) uint8 {
	mask := uint8(1<<width) - 1
	return (value >> shift) & mask
}

// AddSigned offsets a word by a signed byte, wrapping around 16 bits.
func AddSigned(base uint16, offset int8) uint16 {
	return uint16(int32(base) + int32(offset))
}

// SwapNibbles exchanges the high and low nibble of a byte.
func SwapNibbles(value uint8) uint8 {
	return value<<4 | value>>4
}
