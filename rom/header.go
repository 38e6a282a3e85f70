// Package rom implements loading of NES ROM images: the iNES container
// format, and a raw-binary fallback for hand-assembled test programs that
// carry no header at all.
//
// https://www.nesdev.org/wiki/INES
package rom

import (
	"fmt"

	"github.com/nesgo/nesgo/mask"
)

const headerSize = 16

var magic = [4]byte{'N', 'E', 'S', 0x1A}

// flags6 bit identifiers; the high nibble is the low nibble of the mapper
// number.
const (
	flags6Mirroring   = 1 << 0
	flags6BatteryRAM  = 1 << 1
	flags6Trainer     = 1 << 2
	flags6FourScreen  = 1 << 3
)

// flags7 bit identifiers; the high nibble is the high nibble of the mapper
// number.
const (
	flags7VSUnisystem = 1 << 0
	flags7PlayChoice  = 1 << 1
)

// Mirroring identifies the PPU nametable mirroring arrangement declared by
// the header. The CPU core does not consume this (no PPU is in scope) but
// it is parsed for a future PPU and for integration testing.
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

// header is the parsed 16-byte iNES header.
type header struct {
	prgBanks uint8 // 16 KiB units
	chrBanks uint8 // 8 KiB units; 0 means CHR RAM
	flags6   uint8
	flags7   uint8
	flags8   uint8
	flags9   uint8
}

func parseHeader(b []byte) (*header, error) {
	if len(b) < headerSize {
		return nil, fmt.Errorf("rom: header too short: got %d bytes, want %d", len(b), headerSize)
	}
	if b[0] != magic[0] || b[1] != magic[1] || b[2] != magic[2] || b[3] != magic[3] {
		return nil, fmt.Errorf("rom: bad iNES magic %q", b[0:4])
	}
	return &header{
		prgBanks: b[4],
		chrBanks: b[5],
		flags6:   b[6],
		flags7:   b[7],
		flags8:   b[8],
		flags9:   b[9],
	}, nil
}

func (h *header) hasTrainer() bool {
	return h.flags6&flags6Trainer != 0
}

func (h *header) hasPlayChoice() bool {
	return h.flags7&flags7PlayChoice != 0
}

func (h *header) mirroring() Mirroring {
	if h.flags6&flags6FourScreen != 0 {
		return MirrorFourScreen
	}
	if h.flags6&flags6Mirroring != 0 {
		return MirrorVertical
	}
	return MirrorHorizontal
}

// mapperNumber assembles the 8-bit mapper number from the high nibble of
// flags6 (low bits of the mapper number) and the high nibble of flags7
// (high bits), per the iNES spec.
func (h *header) mapperNumber() uint8 {
	lo := mask.Range(h.flags6, mask.I1, mask.I4)
	hi := mask.Range(h.flags7, mask.I1, mask.I4)
	return (hi << 4) | lo
}
