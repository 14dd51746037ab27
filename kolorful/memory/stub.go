package memory

import (
	"fmt"
	"log/slog"
)

// Stub accepts every access inside its ranges, reads back a fixed value and
// logs the traffic at debug level. It stands in for hardware the core does
// not emulate (audio, wave RAM) and, mapped over the whole address space
// with the lowest priority, as a catch-all debug sink.
type Stub struct {
	name   string
	value  byte
	ranges []AddressRange
}

// NewStub creates a stub named for log output.
func NewStub(name string, value byte, ranges ...AddressRange) *Stub {
	return &Stub{
		name:   name,
		value:  value,
		ranges: ranges,
	}
}

func (s *Stub) Name() string {
	return s.name
}

func (s *Stub) Ranges() []AddressRange {
	return s.ranges
}

func (s *Stub) Read(address uint16) (byte, error) {
	slog.Debug("stub read", "device", s.name, "addr", fmt.Sprintf("0x%04X", address))
	return s.value, nil
}

func (s *Stub) Write(address uint16, value byte) error {
	slog.Debug("stub write", "device", s.name, "addr", fmt.Sprintf("0x%04X", address), "value", fmt.Sprintf("0x%02X", value))
	return nil
}

// RAM is plain read/write storage over a single range.
type RAM struct {
	span AddressRange
	data []byte
}

func NewRAM(start, end uint16) *RAM {
	span := Span(start, end)
	return &RAM{span: span, data: make([]byte, span.Size())}
}

func (r *RAM) Ranges() []AddressRange {
	return []AddressRange{r.span}
}

func (r *RAM) Read(address uint16) (byte, error) {
	if !r.span.Contains(address) {
		return 0, readError(address, ErrUnmappedAddress)
	}
	return r.data[address-r.span.Start], nil
}

func (r *RAM) Write(address uint16, value byte) error {
	if !r.span.Contains(address) {
		return writeError(address, value, ErrUnmappedAddress)
	}
	r.data[address-r.span.Start] = value
	return nil
}
