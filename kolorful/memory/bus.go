package memory

// Bus routes accesses to the first registered device that claims the
// address. Registration order is priority order: earlier devices shadow
// later ones.
type Bus struct {
	devices []Device
}

// NewBus creates a bus over the given devices, in priority order.
func NewBus(devices ...Device) *Bus {
	b := &Bus{}
	for _, d := range devices {
		b.Attach(d)
	}
	return b
}

// Attach registers a device with the lowest priority so far.
func (b *Bus) Attach(d Device) {
	if d == nil {
		panic("memory.Bus: nil device")
	}
	b.devices = append(b.devices, d)
}

// Devices returns the registered devices in priority order.
func (b *Bus) Devices() []Device {
	out := make([]Device, len(b.devices))
	copy(out, b.devices)
	return out
}

// Find returns the device serving address, if any.
func (b *Bus) Find(address uint16) (Device, bool) {
	for _, d := range b.devices {
		if Claims(d, address) {
			return d, true
		}
	}
	return nil, false
}

func (b *Bus) Read(address uint16) (byte, error) {
	d, ok := b.Find(address)
	if !ok {
		return 0, readError(address, ErrUnmappedAddress)
	}
	return d.Read(address)
}

func (b *Bus) Write(address uint16, value byte) error {
	d, ok := b.Find(address)
	if !ok {
		return writeError(address, value, ErrUnmappedAddress)
	}
	return d.Write(address, value)
}
