package serial

import (
	"fmt"

	"github.com/valerio/go-kolorful/kolorful/addr"
	"github.com/valerio/go-kolorful/kolorful/bit"
	"github.com/valerio/go-kolorful/kolorful/memory"
)

// Sink receives every byte shifted out of the serial port.
type Sink func(b byte)

// Port is the serial device mapped at SB/SC. There is never a peer on the
// other side of the link: transfers complete immediately and shift in 0xFF.
type Port struct {
	sb, sc byte

	sink       Sink
	irqHandler func()
	defaultRX  byte
	transfers  int
}

type PortOption func(*Port)

// WithInterrupt sets the function called when a transfer completes. It
// should request the Serial interrupt.
func WithInterrupt(irq func()) PortOption {
	return func(p *Port) { p.irqHandler = irq }
}

// WithReceived changes the byte shifted in on completion.
func WithReceived(b byte) PortOption {
	return func(p *Port) { p.defaultRX = b }
}

// NewPort creates a serial port that hands transferred bytes to sink.
// A nil sink drops them.
func NewPort(sink Sink, opts ...PortOption) *Port {
	p := &Port{
		sink:      sink,
		defaultRX: 0xFF,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Transfers returns how many transfers have completed.
func (p *Port) Transfers() int {
	return p.transfers
}

func (p *Port) Ranges() []memory.AddressRange {
	return []memory.AddressRange{memory.Span(addr.SB, addr.SC)}
}

func (p *Port) Read(address uint16) (byte, error) {
	switch address {
	case addr.SB:
		return p.sb, nil
	case addr.SC:
		return p.sc, nil
	default:
		return 0, &memory.AddressError{Op: memory.OpRead, Address: address, Err: memory.ErrUnmappedAddress}
	}
}

func (p *Port) Write(address uint16, value byte) error {
	switch address {
	case addr.SB:
		p.sb = value
	case addr.SC:
		p.sc = value
		p.maybeTransfer()
	default:
		return &memory.AddressError{Op: memory.OpWrite, Address: address, Value: value, Err: memory.ErrUnmappedAddress}
	}
	return nil
}

func (p *Port) maybeTransfer() {
	// a transfer starts when bit 7 (start) and bit 0 (internal clock) are set
	if !bit.IsSet(7, p.sc) || !bit.IsSet(0, p.sc) {
		return
	}

	if p.sink != nil {
		p.sink(p.sb)
	}

	p.sb = p.defaultRX
	p.sc = bit.Reset(7, p.sc)
	p.transfers++
	if p.irqHandler != nil {
		p.irqHandler()
	}
}

func (p *Port) String() string {
	return fmt.Sprintf("serial SB=0x%02X SC=0x%02X", p.sb, p.sc)
}
