package disasm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/valerio/go-kolorful/kolorful/cpu"
)

// Source is the memory a listing is decoded from. *cpu.CPU implements it,
// so the listing follows the boot ROM mapping.
type Source interface {
	ReadByte(address uint16) (byte, error)
	ActiveROMSize() int
}

// Line is a single disassembled instruction.
type Line struct {
	Address uint16
	Bytes   []byte
	// Instruction is nil when the bytes do not decode.
	Instruction cpu.Instruction
	Text        string
	// Err is set when part of the instruction could not be read.
	Err error
}

// String renders the line as "ADDR  BYTES  TEXT".
func (l Line) String() string {
	hex := make([]string, len(l.Bytes))
	for i, b := range l.Bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X  %-8s  %s", l.Address, strings.Join(hex, " "), l.Text)
}

// At decodes the instruction at address. It always consumes at least one
// byte, so callers can walk memory with it.
func At(src Source, address uint16) Line {
	var (
		raw     []byte
		readErr error
	)
	pc := address
	instr, err := cpu.Decode(func() byte {
		v, err := src.ReadByte(pc)
		if err != nil && readErr == nil {
			readErr = err
		}
		raw = append(raw, v)
		pc++
		return v
	})

	line := Line{Address: address, Bytes: raw}
	switch {
	case readErr != nil:
		line.Text = "??"
		line.Err = readErr
	case err != nil:
		line.Text = fmt.Sprintf("DB $%02X", raw[0])
	default:
		line.Instruction = instr
		line.Text = instr.String()
	}
	return line
}

// Forward decodes up to n consecutive instructions starting at address.
// It stops early at unreadable memory, the first line excepted.
func Forward(src Source, address uint16, n int) []Line {
	lines := make([]Line, 0, n)
	for a := int(address); a <= 0xFFFF && len(lines) < n; {
		l := At(src, uint16(a))
		if l.Err != nil && len(lines) > 0 {
			break
		}
		lines = append(lines, l)
		a += len(l.Bytes)
	}
	return lines
}

// Listing decodes the active ROM from 0x0000 to its end: the boot image
// while it is mapped, the 32 KiB cartridge window otherwise.
func Listing(src Source) []Line {
	size := src.ActiveROMSize()
	var lines []Line
	for a := 0; a < size; {
		l := At(src, uint16(a))
		lines = append(lines, l)
		a += len(l.Bytes)
	}
	return lines
}

// Around returns the instructions surrounding pc: up to before lines ahead
// of it and the line at pc followed by up to after more.
func Around(src Source, pc uint16, before, after int) []Line {
	if int(pc) >= src.ActiveROMSize() {
		return Forward(src, pc, after+1)
	}
	return Window(Listing(src), src, pc, before, after)
}

// Window is Around over a listing the caller already holds. Lines after pc
// are always decoded from pc itself, so a pc that lands inside a listed
// instruction still shows what will execute.
func Window(listing []Line, src Source, pc uint16, before, after int) []Line {
	n := sort.Search(len(listing), func(i int) bool { return listing[i].Address >= pc })
	if n == len(listing) && (n == 0 || int(pc) > int(listing[n-1].Address)+len(listing[n-1].Bytes)) {
		// pc is not next to the listing
		return Forward(src, pc, after+1)
	}

	start := max(0, n-before)
	out := make([]Line, 0, n-start+after+1)
	out = append(out, listing[start:n]...)
	return append(out, Forward(src, pc, after+1)...)
}
