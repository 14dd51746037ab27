package memory

import (
	"log/slog"

	"github.com/valerio/go-kolorful/kolorful/addr"
)

const (
	wramBankSize  = 0x1000
	wramBankCount = 8
)

// WRAM is the CGB work RAM: a fixed 4 KiB bank at 0xC000-0xCFFF and one of
// banks 1-7 at 0xD000-0xDFFF. The echo area 0xE000-0xFDFF mirrors
// 0xC000-0xDDFF onto the same storage.
type WRAM struct {
	bank0 [wramBankSize]byte
	banks [wramBankCount][wramBankSize]byte
	bank  uint8
}

func NewWRAM() *WRAM {
	return &WRAM{bank: 1}
}

// Bank returns the bank mapped at 0xD000, always in [1, 7].
func (w *WRAM) Bank() uint8 {
	return w.bank
}

// SelectBank applies an SVBK write. Values with bits above bit 2 set do not
// name a bank and are rejected without changing state; bank 0 selects bank 1.
func (w *WRAM) SelectBank(value byte) error {
	if value >= wramBankCount {
		return writeError(addr.SVBK, value, ErrInvalidBank)
	}
	bank := value & 0x07
	if bank == 0 {
		bank = 1
	}
	if bank != w.bank {
		slog.Debug("WRAM bank switch", "from", w.bank, "to", bank)
	}
	w.bank = bank
	return nil
}

func (w *WRAM) Ranges() []AddressRange {
	return []AddressRange{
		Span(addr.WRAM0Start, addr.WRAMXEnd),
		Span(addr.EchoStart, addr.EchoEnd),
	}
}

// cell resolves an address, echo included, to its backing byte.
func (w *WRAM) cell(address uint16) *byte {
	if address >= addr.EchoStart && address <= addr.EchoEnd {
		address -= addr.EchoStart - addr.WRAM0Start
	}
	switch {
	case address >= addr.WRAM0Start && address <= addr.WRAM0End:
		return &w.bank0[address-addr.WRAM0Start]
	case address >= addr.WRAMXStart && address <= addr.WRAMXEnd:
		return &w.banks[w.bank][address-addr.WRAMXStart]
	default:
		return nil
	}
}

func (w *WRAM) Read(address uint16) (byte, error) {
	p := w.cell(address)
	if p == nil {
		return 0, readError(address, ErrUnmappedAddress)
	}
	return *p, nil
}

func (w *WRAM) Write(address uint16, value byte) error {
	p := w.cell(address)
	if p == nil {
		return writeError(address, value, ErrUnmappedAddress)
	}
	*p = value
	return nil
}

// WRAMBankSelect is the SVBK register (0xFF70) driving a WRAM.
type WRAMBankSelect struct {
	wram *WRAM
}

func NewWRAMBankSelect(wram *WRAM) *WRAMBankSelect {
	return &WRAMBankSelect{wram: wram}
}

func (s *WRAMBankSelect) Ranges() []AddressRange {
	return []AddressRange{Single(addr.SVBK)}
}

func (s *WRAMBankSelect) Read(address uint16) (byte, error) {
	if address != addr.SVBK {
		return 0, readError(address, ErrUnmappedAddress)
	}
	return 0xF8 | s.wram.Bank(), nil
}

func (s *WRAMBankSelect) Write(address uint16, value byte) error {
	if address != addr.SVBK {
		return writeError(address, value, ErrUnmappedAddress)
	}
	return s.wram.SelectBank(value)
}
