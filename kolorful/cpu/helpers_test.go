package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valerio/go-kolorful/kolorful/memory"
)

const programStart uint16 = 0xC000

// newTestCPU returns a CPU over flat RAM with program loaded at 0xC000,
// PC pointing at it and all other registers cleared.
func newTestCPU(t *testing.T, program ...byte) (*CPU, *memory.Bus) {
	t.Helper()
	bus := memory.NewBus(memory.NewRAM(0x0000, 0xFF7F))
	c := New(bus)
	c.SetRegisters(Registers{SP: 0xFFFE, PC: programStart})
	load(t, bus, programStart, program...)
	return c, bus
}

func load(t *testing.T, bus *memory.Bus, at uint16, data ...byte) {
	t.Helper()
	for i, b := range data {
		require.NoError(t, bus.Write(at+uint16(i), b))
	}
}

// steps runs n steps and returns the cycles of the last one.
func steps(t *testing.T, c *CPU, n int) int {
	t.Helper()
	var cycles int
	for i := 0; i < n; i++ {
		var err error
		cycles, err = c.Step()
		require.NoError(t, err)
	}
	return cycles
}
