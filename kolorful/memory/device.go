package memory

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmappedAddress is returned when no device claims an address.
	ErrUnmappedAddress = errors.New("unmapped address")
	// ErrROMWrite is returned on writes into read-only memory.
	ErrROMWrite = errors.New("write to read-only memory")
	// ErrInvalidBank is returned when a bank select register gets a value
	// that does not name an existing bank.
	ErrInvalidBank = errors.New("invalid bank")
)

// Op names the kind of access that failed.
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// AddressError carries the access that failed. Err is one of the package
// sentinels and can be matched with errors.Is.
type AddressError struct {
	Op      Op
	Address uint16
	Value   byte // only meaningful for writes
	Err     error
}

func (e *AddressError) Error() string {
	if e.Op == OpWrite {
		return fmt.Sprintf("%s 0x%04X (value 0x%02X): %v", e.Op, e.Address, e.Value, e.Err)
	}
	return fmt.Sprintf("%s 0x%04X: %v", e.Op, e.Address, e.Err)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}

func readError(address uint16, err error) error {
	return &AddressError{Op: OpRead, Address: address, Err: err}
}

func writeError(address uint16, value byte, err error) error {
	return &AddressError{Op: OpWrite, Address: address, Value: value, Err: err}
}

// AddressRange is an inclusive span of the 16-bit address space.
type AddressRange struct {
	Start, End uint16
}

// Span builds an inclusive range.
func Span(start, end uint16) AddressRange {
	return AddressRange{Start: start, End: end}
}

// Single builds a range holding one address, used for I/O registers.
func Single(address uint16) AddressRange {
	return AddressRange{Start: address, End: address}
}

// Contains reports whether address falls inside the range.
func (r AddressRange) Contains(address uint16) bool {
	return address >= r.Start && address <= r.End
}

// Size is the number of addresses covered.
func (r AddressRange) Size() int {
	return int(r.End) - int(r.Start) + 1
}

func (r AddressRange) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("0x%04X", r.Start)
	}
	return fmt.Sprintf("0x%04X-0x%04X", r.Start, r.End)
}

// Device is a memory mapped component. Ranges are fixed for the lifetime
// of the device; the bus only forwards addresses inside them.
type Device interface {
	Ranges() []AddressRange
	Read(address uint16) (byte, error)
	Write(address uint16, value byte) error
}

// Claims reports whether any of the device ranges contains address.
func Claims(d Device, address uint16) bool {
	for _, r := range d.Ranges() {
		if r.Contains(address) {
			return true
		}
	}
	return false
}
