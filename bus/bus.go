// Package bus implements the NES's 16-bit address decoding: CPU RAM
// mirroring, the PPU register window, the unmapped gap and the
// PRG-ROM window. It is the single thing the CPU ever reads or writes
// through.
package bus

import (
	"fmt"
	"log"

	"github.com/coredump-labs/nescore/cartridge"
	"github.com/coredump-labs/nescore/ppu"
)

const (
	ramSize      = 0x0800
	ramMask      = 0x07FF
	ppuMask      = 0x2007
	unmappedLow  = 0x4000
	unmappedHigh = 0x7FFF
	prgLow       = 0x8000
)

// AccessViolation is raised for accesses the specification treats as
// programmer errors: reading a write-only PPU register, writing a
// read-only one, or writing to PRG-ROM. It is fatal; callers are not
// expected to recover from it.
type AccessViolation struct {
	Addr   uint16
	Reason string
}

func (e *AccessViolation) Error() string {
	return fmt.Sprintf("bus: %s at $%04X", e.Reason, e.Addr)
}

// Bus composes CPU RAM, the PPU's register window and a cartridge
// into the CPU's single 16-bit address space.
type Bus struct {
	ram  [ramSize]byte
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge
}

// New builds a Bus wired to cart. It owns a fresh PPU pointed at the
// same cartridge's CHR-ROM and mirroring mode.
func New(cart *cartridge.Cartridge) *Bus {
	return &Bus{
		PPU:  ppu.New(cart),
		Cart: cart,
	}
}

// Read returns the byte at addr, following the address map in full.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr&ramMask]
	case addr < 0x4000:
		return b.readPPU(addr & ppuMask)
	case addr <= unmappedHigh:
		log.Printf("bus: soft-ignored read from unmapped address $%04X", addr)
		return 0
	default:
		return b.Cart.ReadPRG(addr)
	}
}

// Write stores val at addr, following the address map in full.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr&ramMask] = val
	case addr < 0x4000:
		b.writePPU(addr&ppuMask, val)
	case addr <= unmappedHigh:
		log.Printf("bus: soft-ignored write of $%02X to unmapped address $%04X", val, addr)
	default:
		panic(&AccessViolation{Addr: addr, Reason: "write to PRG-ROM"})
	}
}

// Read16 performs a little-endian 16-bit read. The 6502's
// indirect-addressing page-wrap bug is an addressing-mode concern of
// the interpreter, not of the bus, and is implemented there instead.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

func (b *Bus) readPPU(reg uint16) uint8 {
	switch reg {
	case 0x2000, 0x2001, 0x2003, 0x2005, 0x2006:
		panic(&AccessViolation{Addr: reg, Reason: "read of write-only PPU register"})
	case 0x2002:
		return b.PPU.ReadStatus()
	case 0x2004:
		return b.PPU.ReadOAMData()
	case 0x2007:
		return b.PPU.ReadData()
	default:
		panic(&AccessViolation{Addr: reg, Reason: "unreachable PPU register"})
	}
}

func (b *Bus) writePPU(reg uint16, val uint8) {
	switch reg {
	case 0x2000:
		b.PPU.WriteCtrl(val)
	case 0x2001:
		b.PPU.WriteMask(val)
	case 0x2002:
		panic(&AccessViolation{Addr: reg, Reason: "write to read-only PPU register"})
	case 0x2003:
		b.PPU.WriteOAMAddr(val)
	case 0x2004:
		b.PPU.WriteOAMData(val)
	case 0x2005:
		b.PPU.WriteScroll(val)
	case 0x2006:
		b.PPU.WriteAddr(val)
	case 0x2007:
		b.PPU.WriteData(val)
	default:
		panic(&AccessViolation{Addr: reg, Reason: "unreachable PPU register"})
	}
}
