package memory

import "github.com/valerio/go-kolorful/kolorful/addr"

const vramBankSize = 0x2000

// VRAM is the CGB video RAM: two 8 KiB banks at 0x8000-0x9FFF, selected
// through VBK (0xFF4F).
type VRAM struct {
	banks [2][vramBankSize]byte
	bank  uint8
}

func NewVRAM() *VRAM {
	return &VRAM{}
}

// Bank returns the selected bank, 0 or 1.
func (v *VRAM) Bank() uint8 {
	return v.bank
}

func (v *VRAM) Ranges() []AddressRange {
	return []AddressRange{
		Span(addr.VRAMStart, addr.VRAMEnd),
		Single(addr.VBK),
	}
}

func (v *VRAM) Read(address uint16) (byte, error) {
	switch {
	case address == addr.VBK:
		// unused bits read back as 1
		return 0xFE | v.bank, nil
	case address >= addr.VRAMStart && address <= addr.VRAMEnd:
		return v.banks[v.bank][address-addr.VRAMStart], nil
	default:
		return 0, readError(address, ErrUnmappedAddress)
	}
}

func (v *VRAM) Write(address uint16, value byte) error {
	switch {
	case address == addr.VBK:
		if value > 1 {
			return writeError(address, value, ErrInvalidBank)
		}
		v.bank = value
		return nil
	case address >= addr.VRAMStart && address <= addr.VRAMEnd:
		v.banks[v.bank][address-addr.VRAMStart] = value
		return nil
	default:
		return writeError(address, value, ErrUnmappedAddress)
	}
}
