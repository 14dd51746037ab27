package addr

// memory map
const (
	// ROMStart is the first address of the cartridge ROM window.
	ROMStart uint16 = 0x0000
	// ROMEnd is the last address of the fixed 32 KiB cartridge ROM window.
	ROMEnd uint16 = 0x7FFF
	// ROMSize is the size of the unbanked cartridge ROM window.
	ROMSize = 32 * 1024

	// VRAMStart and VRAMEnd bound the banked video RAM window.
	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF

	// ExternalRAMStart and ExternalRAMEnd bound the cartridge RAM window.
	ExternalRAMStart uint16 = 0xA000
	ExternalRAMEnd   uint16 = 0xBFFF

	// WRAM0Start and WRAM0End bound the fixed work RAM bank.
	WRAM0Start uint16 = 0xC000
	WRAM0End   uint16 = 0xCFFF
	// WRAMXStart and WRAMXEnd bound the switchable work RAM bank.
	WRAMXStart uint16 = 0xD000
	WRAMXEnd   uint16 = 0xDFFF

	// EchoStart and EchoEnd bound the mirror of 0xC000-0xDDFF.
	EchoStart uint16 = 0xE000
	EchoEnd   uint16 = 0xFDFF

	// HRAMStart and HRAMEnd bound the CPU-local high RAM.
	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE

	// StackTop is the initial stack pointer after boot.
	StackTop uint16 = 0xFFFE
)

// serial
const (
	// SB holds the byte to send; after a transfer it contains the received byte.
	SB uint16 = 0xFF01
	// SC is the serial control register.
	//  - Bit 7 (Start): writing 1 requests a transfer, cleared when done.
	//  - Bit 0 (Clock): 1=internal clock. Only internal-clock transfers are performed.
	SC uint16 = 0xFF02
)

// Audio registers. The core only stubs them.
const (
	AudioStart uint16 = 0xFF10
	AudioEnd   uint16 = 0xFF26

	// Wave pattern RAM (32 samples, 4-bit each)
	WaveRAMStart uint16 = 0xFF30
	WaveRAMEnd   uint16 = 0xFF3F
)

// CGB registers
const (
	// VBK selects the visible VRAM bank (bit 0).
	VBK uint16 = 0xFF4F
	// BootROMDisable unmaps the boot ROM once written.
	BootROMDisable uint16 = 0xFF50
	// SVBK selects the WRAM bank mapped at 0xD000-0xDFFF (bits 0-2).
	SVBK uint16 = 0xFF70
)

// interrupts
const (
	// IF is the address for the Interrupt Flags register.
	IF uint16 = 0xFF0F
	// IE is the address for the Interrupt Enable register.
	IE uint16 = 0xFFFF
)

// Interrupt is a bitmask that represents one of the possible interrupts.
type Interrupt uint8

const (
	// VBlankInterrupt is fired when the PPU has completed a frame.
	VBlankInterrupt Interrupt = 1
	// LCDSTATInterrupt is fired based on one of the conditions in the STAT register.
	LCDSTATInterrupt Interrupt = 1 << 1
	// TimerInterrupt is fired when TIMA overflows.
	TimerInterrupt Interrupt = 1 << 2
	// SerialInterrupt is fired when a serial transfer has completed.
	SerialInterrupt Interrupt = 1 << 3
	// JoypadInterrupt is fired when any of the keypad inputs goes from high to low.
	JoypadInterrupt Interrupt = 1 << 4

	// InterruptMask covers the five implemented interrupt lines.
	InterruptMask uint8 = 0x1F
)

// Vector returns the handler address for a single interrupt bit:
// 0x40, 0x48, 0x50, 0x58 or 0x60.
func (i Interrupt) Vector() uint16 {
	for n := uint16(0); n < 5; n++ {
		if uint8(i)&(1<<n) != 0 {
			return 0x40 + n*8
		}
	}
	return 0
}

func (i Interrupt) String() string {
	switch i {
	case VBlankInterrupt:
		return "VBlank"
	case LCDSTATInterrupt:
		return "LCD"
	case TimerInterrupt:
		return "Timer"
	case SerialInterrupt:
		return "Serial"
	case JoypadInterrupt:
		return "Joypad"
	default:
		return "Unknown"
	}
}
