package bus

import (
	"testing"

	"github.com/coredump-labs/nescore/cartridge"
)

func newTestBus() *Bus {
	prg := make([]byte, 0x4000)
	return New(cartridge.New(prg, make([]byte, 0x2000), cartridge.Horizontal))
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus()
	b.Write(0x0010, 0x42)

	for _, mirror := range []uint16{0x0010, 0x0810, 0x1010, 0x1810} {
		if got := b.Read(mirror); got != 0x42 {
			t.Errorf("Read(%#04x) = %#02x, want 0x42", mirror, got)
		}
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	b := newTestBus()
	b.Write(0x2000, 0x80) // PPUCTRL via base address
	b.Write(0x2006, 0x20) // PPUADDR high byte via base address
	b.Write(0x2006+8, 0x10) // same register, mirrored 8 bytes up

	if got := b.PPU.Addr(); got != 0x2010 {
		t.Errorf("addr register = %#04x, want 0x2010", got)
	}
}

func TestUnmappedRegionSoftIgnored(t *testing.T) {
	b := newTestBus()
	if got := b.Read(0x5000); got != 0 {
		t.Errorf("Read(0x5000) = %#02x, want 0", got)
	}
	b.Write(0x5000, 0xFF) // must not panic
}

func TestPRGROMMirrored16K(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0] = 0xEE
	b := New(cartridge.New(prg, nil, cartridge.Horizontal))

	if got := b.Read(0x8000); got != 0xEE {
		t.Errorf("Read(0x8000) = %#02x, want 0xEE", got)
	}
	if got := b.Read(0xC000); got != 0xEE {
		t.Errorf("Read(0xC000) = %#02x, want 0xEE (mirrored)", got)
	}
}

func TestWriteToPRGROMPanics(t *testing.T) {
	b := newTestBus()
	defer func() {
		if recover() == nil {
			t.Fatal("Write to PRG-ROM should panic")
		}
	}()
	b.Write(0x8000, 0x00)
}

func TestReadWriteOnlyRegisterPanics(t *testing.T) {
	b := newTestBus()
	defer func() {
		if recover() == nil {
			t.Fatal("Read of write-only PPU register should panic")
		}
	}()
	b.Read(0x2000)
}

func TestWriteReadOnlyRegisterPanics(t *testing.T) {
	b := newTestBus()
	defer func() {
		if recover() == nil {
			t.Fatal("Write to read-only PPU register should panic")
		}
	}()
	b.Write(0x2002, 0x00)
}

func TestReadStatusResetsAddrLatch(t *testing.T) {
	b := newTestBus()
	b.Write(0x2006, 0x21)
	b.Read(0x2002)
	b.Write(0x2006, 0x05) // treated as high byte again
	b.Write(0x2006, 0x00)

	if got := b.PPU.Addr(); got != 0x0500 {
		t.Errorf("addr register = %#04x, want 0x0500", got)
	}
}
