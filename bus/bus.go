// Package bus implements the NES CPU's memory map: a single, address-decoded
// 16-bit space shared by RAM, the PPU/APU register windows, and cartridge
// space. Each component (struct) is connected to a Bus by attaching a
// Device with one of the Attach* methods after New.
//
// https://www.nesdev.org/wiki/CPU_memory_map
package bus

const (
	ramSize     = 0x0800 // 2 KiB internal RAM
	ramMirror   = 0x1FFF // RAM + mirrors end here
	ramMask     = 0x07FF
	ppuEnd      = 0x3FFF // PPU registers + mirrors end here
	ppuRegMask  = 0x0007
	apuIOStart  = 0x4000
	apuIOEnd    = 0x4017
	testRegEnd  = 0x401F
	cartStart   = 0x4020
)

// A Device answers reads/writes within whatever sub-range of the address
// space its owning Bus forwards to it. Offsets passed in are already
// relative to that sub-range's base (e.g. the PPU sees 0x0000-0x0007, not
// 0x2000-0x2007).
type Device interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// nullDevice answers every read with 0 (open bus) and drops every write.
// It stands in for PPU/APU/cartridge ranges that have no attached Device.
type nullDevice struct{}

func (nullDevice) Read8(uint16) uint8    { return 0 }
func (nullDevice) Write8(uint16, uint8) {}

var null = nullDevice{}

// Bus is the NES CPU's memory map. The zero value is not usable; use New.
type Bus struct {
	ram  [ramSize]uint8
	ppu  Device // 0x2000-0x3FFF, mirrored every 8 bytes
	apu  Device // 0x4000-0x4017
	test Device // 0x4018-0x401F
	cart Device // 0x4020-0xFFFF
}

// New returns a Bus with 2 KiB of zeroed RAM and no attached devices; every
// PPU/APU/cartridge access reads as 0 and drops writes until the
// corresponding Attach* call is made.
func New() *Bus {
	return &Bus{ppu: null, apu: null, test: null, cart: null}
}

// AttachPPU wires d to receive all PPU register accesses (0x2000-0x3FFF,
// already masked to 0x0000-0x0007 before reaching d).
func (b *Bus) AttachPPU(d Device) { b.ppu = d }

// AttachAPU wires d to receive all APU/IO register accesses (0x4000-0x4017,
// already offset to 0x0000-0x0017 before reaching d).
func (b *Bus) AttachAPU(d Device) { b.apu = d }

// AttachTestRegisters wires d to receive CPU test-mode register accesses
// (0x4018-0x401F, offset to 0x0000-0x0007).
func (b *Bus) AttachTestRegisters(d Device) { b.test = d }

// AttachCartridge wires d to receive all cartridge-space accesses
// (0x4020-0xFFFF, passed through unmodified since mapper bank switching is
// the cartridge's own concern).
func (b *Bus) AttachCartridge(d Device) { b.cart = d }

// Read8 returns the byte at addr, decoded per the NES CPU memory map.
// PPU/APU register reads may have side effects in the attached Device
// (e.g. PPUSTATUS clearing vblank); the Bus itself is side-effect-free for
// RAM.
func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr <= ramMirror:
		return b.ram[addr&ramMask]
	case addr <= ppuEnd:
		return b.ppu.Read8(addr & ppuRegMask)
	case addr <= apuIOEnd:
		return b.apu.Read8(addr - apuIOStart)
	case addr <= testRegEnd:
		return b.test.Read8(addr - (apuIOEnd + 1))
	default:
		return b.cart.Read8(addr)
	}
}

// Write8 writes data to addr, decoded per the NES CPU memory map. Writes to
// unmapped or read-only regions are silently dropped by the relevant
// Device (or by the null device if none is attached).
func (b *Bus) Write8(addr uint16, data uint8) {
	switch {
	case addr <= ramMirror:
		b.ram[addr&ramMask] = data
	case addr <= ppuEnd:
		b.ppu.Write8(addr&ppuRegMask, data)
	case addr <= apuIOEnd:
		b.apu.Write8(addr-apuIOStart, data)
	case addr <= testRegEnd:
		b.test.Write8(addr-(apuIOEnd+1), data)
	default:
		b.cart.Write8(addr, data)
	}
}
