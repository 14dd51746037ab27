package cpu

import "sort"

// Breakpoints is a set of addresses at which a driver stops before
// executing. Version changes on every modification so a front-end can
// poll for updates.
type Breakpoints struct {
	set     map[uint16]struct{}
	version uint64
}

func NewBreakpoints(addrs ...uint16) *Breakpoints {
	b := &Breakpoints{set: make(map[uint16]struct{})}
	for _, a := range addrs {
		b.Add(a)
	}
	return b
}

// Add inserts address; it reports false if it was already set.
func (b *Breakpoints) Add(address uint16) bool {
	if _, ok := b.set[address]; ok {
		return false
	}
	b.set[address] = struct{}{}
	b.version++
	return true
}

// Remove deletes address; it reports false if it was not set.
func (b *Breakpoints) Remove(address uint16) bool {
	if _, ok := b.set[address]; !ok {
		return false
	}
	delete(b.set, address)
	b.version++
	return true
}

// Toggle flips address and returns whether it is now set.
func (b *Breakpoints) Toggle(address uint16) bool {
	if b.Remove(address) {
		return false
	}
	return b.Add(address)
}

func (b *Breakpoints) Has(address uint16) bool {
	_, ok := b.set[address]
	return ok
}

// List returns the addresses in ascending order.
func (b *Breakpoints) List() []uint16 {
	out := make([]uint16, 0, len(b.set))
	for a := range b.set {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (b *Breakpoints) Len() int {
	return len(b.set)
}

func (b *Breakpoints) Clear() {
	if len(b.set) == 0 {
		return
	}
	b.set = make(map[uint16]struct{})
	b.version++
}

func (b *Breakpoints) Version() uint64 {
	return b.version
}
