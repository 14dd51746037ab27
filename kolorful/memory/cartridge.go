package memory

import "github.com/valerio/go-kolorful/kolorful/addr"

const externalRAMSize = 0x2000

// Cartridge maps a ROM-only cartridge: 32 KiB of ROM at 0x0000-0x7FFF and
// 8 KiB of external RAM at 0xA000-0xBFFF. Bank controllers are not
// emulated.
type Cartridge struct {
	rom []byte
	ram [externalRAMSize]byte
}

// NewCartridge creates a cartridge over a copy of the ROM image. Images
// shorter than 32 KiB read as 0xFF past their end; anything past 32 KiB is
// not addressable.
func NewCartridge(rom []byte) *Cartridge {
	data := make([]byte, len(rom))
	copy(data, rom)
	return &Cartridge{rom: data}
}

func (c *Cartridge) Ranges() []AddressRange {
	return []AddressRange{
		Span(addr.ROMStart, addr.ROMEnd),
		Span(addr.ExternalRAMStart, addr.ExternalRAMEnd),
	}
}

func (c *Cartridge) Read(address uint16) (byte, error) {
	switch {
	case address <= addr.ROMEnd:
		offset := int(address - addr.ROMStart)
		if offset >= len(c.rom) {
			// open bus
			return 0xFF, nil
		}
		return c.rom[offset], nil
	case address >= addr.ExternalRAMStart && address <= addr.ExternalRAMEnd:
		return c.ram[address-addr.ExternalRAMStart], nil
	default:
		return 0, readError(address, ErrUnmappedAddress)
	}
}

func (c *Cartridge) Write(address uint16, value byte) error {
	switch {
	case address <= addr.ROMEnd:
		return writeError(address, value, ErrROMWrite)
	case address >= addr.ExternalRAMStart && address <= addr.ExternalRAMEnd:
		c.ram[address-addr.ExternalRAMStart] = value
		return nil
	default:
		return writeError(address, value, ErrUnmappedAddress)
	}
}
