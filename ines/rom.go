package ines

import (
	"fmt"
	"io"
	"os"

	"github.com/coredump-labs/nescore/cartridge"
)

// Load reads an iNES file from path and returns the Cartridge it
// describes. A malformed file (bad magic, truncated PRG/CHR data) is
// an input error surfaced to the caller; it is never fatal to the
// process.
func Load(path string) (*cartridge.Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ines: opening %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an iNES image from r and builds a Cartridge from it.
func Parse(r io.Reader) (*cartridge.Cartridge, error) {
	raw := make([]byte, headerSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("ines: reading header: %w", err)
	}

	h, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}

	if h.hasTrainer() {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, fmt.Errorf("ines: reading trainer: %w", err)
		}
	}

	prg := make([]byte, int(h.prgSize)*prgBlockSize)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("ines: reading %d bytes of PRG-ROM: %w", len(prg), err)
	}

	chr := make([]byte, int(h.chrSize)*chrBlockSize)
	if len(chr) > 0 {
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, fmt.Errorf("ines: reading %d bytes of CHR-ROM: %w", len(chr), err)
		}
	}

	var mirroring cartridge.Mirroring
	switch h.mirroringMode() {
	case mirrorVertical:
		mirroring = cartridge.Vertical
	case mirrorFourScreen:
		mirroring = cartridge.FourScreen
	default:
		mirroring = cartridge.Horizontal
	}

	return cartridge.New(prg, chr, mirroring), nil
}
