// Package ppu implements the memory-bus-visible surface of the NES
// Picture Processing Unit: its control/mask/status registers, the
// two-write address latch, VRAM with nametable mirroring, OAM and the
// palette table. Rendering pixels from this state is outside this
// package's job; the bus talks to the PPU exclusively through the
// eight registers at $2000-$2007.
package ppu

import (
	"fmt"

	"github.com/coredump-labs/nescore/cartridge"
)

const (
	vramSize    = 2048
	oamSize     = 256
	paletteSize = 32
)

// PPU holds all state reachable through the $2000-$2007 register
// window, plus the CHR-ROM supplied by the cartridge.
type PPU struct {
	cart *cartridge.Cartridge

	ctrl   ctrlRegister
	mask   maskRegister
	status statusRegister
	addr   *addrRegister

	oamAddr uint8
	oam     [oamSize]byte

	vram    [vramSize]byte
	palette [paletteSize]byte

	readBuffer uint8
}

// New builds a PPU wired to cart's CHR-ROM and mirroring mode.
func New(cart *cartridge.Cartridge) *PPU {
	return &PPU{
		cart: cart,
		addr: newAddrRegister(),
	}
}

// WriteCtrl handles a write to PPUCTRL ($2000).
func (p *PPU) WriteCtrl(val uint8) {
	p.ctrl.set(val)
}

// WriteMask handles a write to PPUMASK ($2001).
func (p *PPU) WriteMask(val uint8) {
	p.mask.set(val)
}

// ReadStatus handles a read of PPUSTATUS ($2002). It returns the
// current status byte, then clears the vblank flag and resets the
// $2006 write latch.
func (p *PPU) ReadStatus() uint8 {
	val := p.status.get()
	p.status.clearVBlank()
	p.addr.resetLatch()
	return val
}

// WriteOAMAddr handles a write to OAMADDR ($2003).
func (p *PPU) WriteOAMAddr(val uint8) {
	p.oamAddr = val
}

// WriteOAMData handles a write to OAMDATA ($2004); the address
// auto-increments after every write.
func (p *PPU) WriteOAMData(val uint8) {
	p.oam[p.oamAddr] = val
	p.oamAddr++
}

// ReadOAMData handles a read of OAMDATA ($2004). Reads do not
// auto-increment OAMADDR.
func (p *PPU) ReadOAMData() uint8 {
	return p.oam[p.oamAddr]
}

// WriteScroll handles a write to PPUSCROLL ($2005). Scroll position is
// not consumed by anything in this core; the byte is discarded, and the
// method exists only so writes do not panic.
func (p *PPU) WriteScroll(val uint8) {
	_ = val
}

// WriteAddr handles a write to PPUADDR ($2006).
func (p *PPU) WriteAddr(val uint8) {
	p.addr.write(val)
}

// Addr returns the current 14-bit VRAM address latched through
// $2006. Exposed for debugging and inspection; the interpreter core
// never calls it.
func (p *PPU) Addr() uint16 {
	return p.addr.get()
}

// ReadData handles a read of PPUDATA ($2007). Pattern-table and
// nametable reads go through the internal read buffer: the call
// returns the PREVIOUS buffer contents and refills the buffer from the
// newly addressed byte. Palette reads are the documented exception:
// they bypass the buffer and return the palette byte directly (see
// the design notes on the buffered/unbuffered choice).
func (p *PPU) ReadData() uint8 {
	addr := p.addr.get()
	p.addr.increment(p.ctrl.vramIncrement())

	switch {
	case addr < 0x2000:
		val := p.readBuffer
		p.readBuffer = p.cart.ReadCHR(addr)
		return val
	case addr < 0x3F00:
		val := p.readBuffer
		p.readBuffer = p.vram[p.mirrorVRAMAddr(addr)]
		return val
	case addr <= 0x3FFF:
		return p.palette[mirrorPaletteAddr(addr)]
	default:
		panic(fmt.Sprintf("ppu: unexpected PPUDATA read address %#04x", addr))
	}
}

// WriteData handles a write to PPUDATA ($2007).
func (p *PPU) WriteData(val uint8) {
	addr := p.addr.get()
	p.addr.increment(p.ctrl.vramIncrement())

	switch {
	case addr < 0x2000:
		panic(fmt.Sprintf("ppu: write to CHR-ROM address %#04x", addr))
	case addr < 0x3F00:
		p.vram[p.mirrorVRAMAddr(addr)] = val
	case addr <= 0x3FFF:
		p.palette[mirrorPaletteAddr(addr)] = val
	default:
		panic(fmt.Sprintf("ppu: unexpected PPUDATA write address %#04x", addr))
	}
}

// mirrorVRAMAddr folds a PPU address in $2000-$3EFF onto one of the
// two physical 1 KiB nametable banks, according to cartridge
// mirroring.
func (p *PPU) mirrorVRAMAddr(addr uint16) uint16 {
	vramIndex := (addr & 0x2FFF) - 0x2000
	nametable := vramIndex / 0x400

	switch p.cart.Mirroring {
	case cartridge.Vertical:
		if nametable == 2 || nametable == 3 {
			return vramIndex - 0x800
		}
	case cartridge.Horizontal:
		switch nametable {
		case 1:
			return vramIndex - 0x400
		case 2:
			return vramIndex - 0x400
		case 3:
			return vramIndex - 0x800
		}
	}

	return vramIndex
}

// mirrorPaletteAddr masks a palette address to 5 bits and aliases the
// four background-color mirrors ($3F10/14/18/1C) onto their
// corresponding backdrop entries.
func mirrorPaletteAddr(addr uint16) uint16 {
	m := addr & 0x1F
	switch m {
	case 0x10, 0x14, 0x18, 0x1C:
		return m - 0x10
	default:
		return m
	}
}
