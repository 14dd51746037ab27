package rom

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	titleAddress          = 0x134
	titleEnd              = 0x143
	cgbFlagAddress        = 0x143
	newLicenseeAddress    = 0x144
	sgbFlagAddress        = 0x146
	cartridgeTypeAddress  = 0x147
	romSizeAddress        = 0x148
	ramSizeAddress        = 0x149
	destinationAddress    = 0x14A
	oldLicenseeAddress    = 0x14B
	versionAddress        = 0x14C
	headerChecksumAddress = 0x14D
	globalChecksumAddress = 0x14E

	headerEnd = 0x14F
)

var (
	// ErrShortImage is returned when an image is too small to hold a header.
	ErrShortImage = errors.New("image too small for a cartridge header")
	// ErrHeaderChecksum is returned when the header checksum does not match.
	ErrHeaderChecksum = errors.New("header checksum mismatch")
)

// CGB compatibility flag values.
const (
	CGBCompatible byte = 0x80
	CGBOnly       byte = 0xC0
)

// Header is the cartridge header at 0x0100-0x014F.
type Header struct {
	Title          string
	CGBFlag        byte
	NewLicensee    string
	SGBFlag        byte
	CartridgeType  byte
	ROMSizeCode    byte
	RAMSizeCode    byte
	Destination    byte
	OldLicensee    byte
	Version        byte
	HeaderChecksum byte
	GlobalChecksum uint16
}

// ParseHeader decodes the header of a cartridge image. It does not check
// the checksum; see Verify.
func ParseHeader(image []byte) (Header, error) {
	if len(image) <= headerEnd {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrShortImage, len(image))
	}

	h := Header{
		CGBFlag:        image[cgbFlagAddress],
		NewLicensee:    string(image[newLicenseeAddress : newLicenseeAddress+2]),
		SGBFlag:        image[sgbFlagAddress],
		CartridgeType:  image[cartridgeTypeAddress],
		ROMSizeCode:    image[romSizeAddress],
		RAMSizeCode:    image[ramSizeAddress],
		Destination:    image[destinationAddress],
		OldLicensee:    image[oldLicenseeAddress],
		Version:        image[versionAddress],
		HeaderChecksum: image[headerChecksumAddress],
		GlobalChecksum: binary.BigEndian.Uint16(image[globalChecksumAddress:]),
	}

	// on CGB carts the last title byte is the CGB flag
	title := image[titleAddress : titleEnd+1]
	if h.CGB() {
		title = title[:len(title)-1]
	}
	h.Title = cleanTitle(title)

	return h, nil
}

// CGB reports whether the cartridge declares CGB support.
func (h Header) CGB() bool {
	return h.CGBFlag&0x80 != 0
}

// ROMSize decodes the ROM size code: 32 KiB shifted left by the code.
func (h Header) ROMSize() int {
	if h.ROMSizeCode > 0x08 {
		return 0
	}
	return 32 * 1024 << h.ROMSizeCode
}

// RAMSize decodes the external RAM size code.
func (h Header) RAMSize() int {
	switch h.RAMSizeCode {
	case 0x02:
		return 8 * 1024
	case 0x03:
		return 32 * 1024
	case 0x04:
		return 128 * 1024
	case 0x05:
		return 64 * 1024
	default:
		return 0
	}
}

// CartridgeTypeName names the mapper family of the cartridge type byte.
func (h Header) CartridgeTypeName() string {
	switch h.CartridgeType {
	case 0x00:
		return "ROM ONLY"
	case 0x01, 0x02, 0x03:
		return "MBC1"
	case 0x05, 0x06:
		return "MBC2"
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		return "MBC3"
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		return "MBC5"
	default:
		return fmt.Sprintf("unknown (0x%02X)", h.CartridgeType)
	}
}

// HeaderChecksum computes the checksum of 0x0134-0x014C the way the boot
// ROM does.
func HeaderChecksum(image []byte) byte {
	var sum byte
	for _, b := range image[titleAddress:headerChecksumAddress] {
		sum = sum - b - 1
	}
	return sum
}

// Verify checks the stored header checksum against image.
func Verify(image []byte) error {
	if len(image) <= headerEnd {
		return fmt.Errorf("%w: %d bytes", ErrShortImage, len(image))
	}
	if got, want := HeaderChecksum(image), image[headerChecksumAddress]; got != want {
		return fmt.Errorf("%w: computed 0x%02X, stored 0x%02X", ErrHeaderChecksum, got, want)
	}
	return nil
}

// cleanTitle turns NUL padding into spaces, replaces non-printable bytes
// and trims the result.
func cleanTitle(raw []byte) string {
	runes := make([]rune, 0, len(raw))
	for _, b := range raw {
		r := rune(b)
		switch {
		case r == 0:
			r = ' '
		case r > unicode.MaxASCII || !unicode.IsPrint(r):
			r = '?'
		}
		runes = append(runes, r)
	}

	title := strings.TrimSpace(string(runes))
	if title == "" {
		return "(Untitled)"
	}
	return title
}
