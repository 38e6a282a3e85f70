package rom

import (
	"fmt"
	"os"
)

// Raw is an un-headered binary image loaded directly into a fixed base
// address, for hand-assembled test programs that carry no iNES header.
// This matches the "reference loader" behavior described for the ROM
// loader component: load raw bytes starting at a configured base address.
type Raw struct {
	base uint16
	data []byte
}

// NewRaw reads path in its entirety and exposes it starting at base.
func NewRaw(path string, base uint16) (*Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rom: couldn't read raw image %q: %w", path, err)
	}
	return &Raw{base: base, data: data}, nil
}

// NewRawBytes wraps an in-memory byte slice the same way NewRaw wraps a
// file, for programmatically constructed test programs.
func NewRawBytes(data []byte, base uint16) *Raw {
	return &Raw{base: base, data: data}
}

// Read8 implements bus.Device. Bytes outside [base, base+len(data)) read
// as 0.
func (r *Raw) Read8(addr uint16) uint8 {
	if addr < r.base {
		return 0
	}
	off := int(addr - r.base)
	if off >= len(r.data) {
		return 0
	}
	return r.data[off]
}

// Write8 implements bus.Device. The raw image is read-only.
func (r *Raw) Write8(uint16, uint8) {}
