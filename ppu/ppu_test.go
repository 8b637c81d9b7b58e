package ppu

import (
	"testing"

	"github.com/coredump-labs/nescore/cartridge"
)

func newTestPPU(mirroring cartridge.Mirroring) *PPU {
	chr := make([]byte, 0x2000)
	for i := range chr {
		chr[i] = byte(i)
	}
	return New(cartridge.New(nil, chr, mirroring))
}

func writeAddr(p *PPU, addr uint16) {
	p.WriteAddr(uint8(addr >> 8))
	p.WriteAddr(uint8(addr))
}

func TestReadStatusResetsLatch(t *testing.T) {
	p := newTestPPU(cartridge.Horizontal)
	p.WriteAddr(0x21)
	p.ReadStatus()
	p.WriteAddr(0x05) // treated as high byte again
	p.WriteAddr(0x00)
	if got := p.addr.get(); got != 0x0500 {
		t.Errorf("addr after ReadStatus reset = %#04x, want 0x0500", got)
	}
}

func TestCHRReadIsBuffered(t *testing.T) {
	p := newTestPPU(cartridge.Horizontal)
	writeAddr(p, 0x0005)

	first := p.ReadData() // returns stale buffer (0)
	if first != 0 {
		t.Errorf("first ReadData = %#02x, want 0x00", first)
	}
	second := p.ReadData() // now returns CHR[5]
	if second != 5 {
		t.Errorf("second ReadData = %#02x, want 0x05", second)
	}
}

func TestPaletteReadIsUnbuffered(t *testing.T) {
	p := newTestPPU(cartridge.Horizontal)
	writeAddr(p, 0x3F05)
	p.palette[5] = 0x2C

	if got := p.ReadData(); got != 0x2C {
		t.Errorf("palette ReadData = %#02x, want 0x2C (unbuffered)", got)
	}
}

func TestPaletteMirroring(t *testing.T) {
	p := newTestPPU(cartridge.Horizontal)
	p.palette[0x00] = 0x0F

	writeAddr(p, 0x3F10)
	if got := p.ReadData(); got != 0x0F {
		t.Errorf("ReadData(0x3F10) = %#02x, want 0x0F (aliases 0x3F00)", got)
	}
}

func TestVerticalMirroring(t *testing.T) {
	p := newTestPPU(cartridge.Vertical)
	p.vram[0x0010] = 0x77

	writeAddr(p, 0x2810) // nametable 2 -> folds to bank 0
	p.ReadData()         // prime buffer
	if got := p.ReadData(); got != 0x77 {
		t.Errorf("vertical-mirrored read = %#02x, want 0x77", got)
	}
}

func TestHorizontalMirroring(t *testing.T) {
	p := newTestPPU(cartridge.Horizontal)
	p.vram[0x0010] = 0x55

	writeAddr(p, 0x2410) // nametable 1 -> folds to bank 0
	p.ReadData()
	if got := p.ReadData(); got != 0x55 {
		t.Errorf("horizontal-mirrored read = %#02x, want 0x55", got)
	}
}

func TestVRAMAddrIncrementStep(t *testing.T) {
	p := newTestPPU(cartridge.Horizontal)
	p.WriteCtrl(ctrlVRAMIncrement) // step by 32
	writeAddr(p, 0x2000)
	p.ReadData()
	if got := p.addr.get(); got != 0x2020 {
		t.Errorf("addr after increment = %#04x, want 0x2020", got)
	}
}

func TestOAMReadWrite(t *testing.T) {
	p := newTestPPU(cartridge.Horizontal)
	p.WriteOAMAddr(0x10)
	p.WriteOAMData(0x42)
	if got := p.oam[0x10]; got != 0x42 {
		t.Errorf("oam[0x10] = %#02x, want 0x42", got)
	}
	// OAMADDR auto-incremented by the write.
	p.WriteOAMAddr(0x10)
	if got := p.ReadOAMData(); got != 0x42 {
		t.Errorf("ReadOAMData() = %#02x, want 0x42", got)
	}
}
