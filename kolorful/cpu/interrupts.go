package cpu

import (
	"github.com/valerio/go-kolorful/kolorful/addr"
	"github.com/valerio/go-kolorful/kolorful/bit"
)

// RequestInterrupt raises a line in IF. Devices call this when they fire.
func (c *CPU) RequestInterrupt(i addr.Interrupt) {
	c.iflag |= uint8(i) & addr.InterruptMask
}

// pendingInterrupts returns the lines that are both requested and enabled.
func (c *CPU) pendingInterrupts() uint8 {
	return c.ie & c.iflag & addr.InterruptMask
}

// handleInterrupts wakes the CPU from HALT when a line is pending and, if
// IME is set, dispatches the highest priority one (bit 0 first).
// Returns true if a dispatch happened.
func (c *CPU) handleInterrupts() bool {
	pending := c.pendingInterrupts()
	if pending == 0 {
		return false
	}

	// a pending line ends HALT even when it cannot be serviced
	c.halted = false

	if !c.ime {
		return false
	}

	for i := uint8(0); i < 5; i++ {
		if !bit.IsSet(i, pending) {
			continue
		}
		line := addr.Interrupt(1 << i)

		c.ime = false
		c.iflag = bit.Reset(i, c.iflag)
		c.push(c.reg.PC)
		c.reg.PC = line.Vector()
		return true
	}
	return false
}
