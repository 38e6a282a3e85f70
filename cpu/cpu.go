// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES (Ricoh 2A03: identical to the NMOS 6502 except decimal mode is
// wired into the status register but never honored by ADC/SBC).
//
// The core is per-instruction, not per-bus-cycle: Step decodes and
// executes one whole instruction and reports how many cycles it cost,
// rather than ticking sub-instruction bus phases. That mirrors how this
// Cpu always worked (tick ran fetch/decode/execute in one shot and just
// charged Cycles afterward) -- what changes here is that the register
// file collapses to the real hardware shape (a single P status byte
// instead of a Flags struct of bools) and every instruction's semantics
// are corrected against the datasheet.
package cpu

import "log/slog"

// Bus is the interface the Cpu drives to fetch instructions and data, and
// through which it reads/writes memory-mapped registers. The Cpu holds a
// Bus; a Bus never holds a Cpu, so the two can be constructed and torn
// down independently.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// Status flag bit positions within P.
//
// 7654 3210
// NV1B DIZC
const (
	FlagC uint8 = 1 << 0 // Carry
	FlagZ uint8 = 1 << 1 // Zero
	FlagI uint8 = 1 << 2 // Interrupt disable
	FlagD uint8 = 1 << 3 // Decimal; stored but never consulted by ADC/SBC
	FlagB uint8 = 1 << 4 // Break; only meaningful in a pushed copy of P
	FlagU uint8 = 1 << 5 // Unused; always reads back as 1 once pushed
	FlagV uint8 = 1 << 6 // Overflow
	FlagN uint8 = 1 << 7 // Negative
)

const (
	nmiVector   = 0xfffa
	resetVector = 0xfffc
	irqVector   = 0xfffe
)

// Cpu has no memory of its own beyond its small register file. It
// interfaces with a Bus that supplies both program and data memory.
type Cpu struct {
	Bus Bus

	A byte // Accumulator
	X byte
	Y byte

	// P is the status register (aka Flags), packed N V 1 B D I Z C.
	P byte

	// SP is the stack pointer; stack instructions (PHA, PLA, PHP, PLP,
	// JSR, RTS, BRK, RTI) always address page 1 (0x0100-0x01ff) at
	// 0x0100|SP.
	SP byte

	// ProgramCounter is a 2-byte address that increments (almost)
	// continuously. The byte at this address is the next opcode.
	ProgramCounter uint16

	// Cycles is the running total of cycles charged since construction
	// (Reset also charges its own 7).
	Cycles uint64

	nmiPending bool
	irqLine    bool

	// Transient per-instruction state, reset at the top of every decode.
	M          byte // the operand, after addressing-mode resolution
	AbsAddress uint16
	accMode    bool // true when the current instruction's operand is A, not memory
}

// New returns a Cpu wired to b. Call Reset before Step to bring it to a
// well-defined power-on state.
func New(b Bus) *Cpu {
	return &Cpu{Bus: b}
}

// Read reads one byte from the given addr.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read8(addr)
}

// Write passes data to the Bus, which actually performs the write.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Bus.Write8(addr, data)
}

func (c *Cpu) getFlag(f byte) bool { return c.P&f != 0 }

func (c *Cpu) setFlag(f byte, v bool) {
	if v {
		c.P |= f
	} else {
		c.P &^= f
	}
}

func (c *Cpu) setNZ(v byte) {
	c.setFlag(FlagZ, v == 0)
	c.setFlag(FlagN, v&0x80 != 0)
}

func (c *Cpu) push(v byte) {
	c.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *Cpu) pop() byte {
	c.SP++
	return c.Read(0x0100 | uint16(c.SP))
}

func (c *Cpu) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Cpu) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *Cpu) readVector(addr uint16) uint16 {
	lo := c.Read(addr)
	hi := c.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Reset loads ProgramCounter from the reset vector and brings the
// register file to its documented power-on state. SP lands on 0xfd, not
// 0x00, because real hardware performs three pseudo-pushes during reset
// without actually writing to the stack.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xfd
	c.P = FlagU | FlagI
	c.ProgramCounter = c.readVector(resetVector)

	c.M, c.AbsAddress, c.accMode = 0, 0, false
	c.nmiPending = false
	c.irqLine = false

	c.Cycles += 7

	slog.Debug("cpu reset", "pc", c.ProgramCounter, "sp", c.SP, "p", c.P)
}

// serviceInterrupt pushes ProgramCounter and P (with B cleared, unused
// set) and loads ProgramCounter from vector. Shared by IRQ and NMI, which
// differ only in triggering condition and vector; BRK pushes P
// differently (B set) and is handled in its own instruction instead.
func (c *Cpu) serviceInterrupt(vector uint16) {
	c.pushWord(c.ProgramCounter)
	c.push((c.P &^ FlagB) | FlagU)
	c.setFlag(FlagI, true)
	c.ProgramCounter = c.readVector(vector)
}

// AssertNMI latches a pending NMI, serviced at the next instruction
// boundary. NMI is edge-triggered: the latch clears as soon as Step
// services it.
func (c *Cpu) AssertNMI() { c.nmiPending = true }

// SetIRQ sets the level of the maskable interrupt line.
func (c *Cpu) SetIRQ(level bool) { c.irqLine = level }

// Step decodes and executes exactly one instruction (or services one
// pending interrupt) and returns the number of cycles it consumed.
func (c *Cpu) Step() byte {
	if c.nmiPending {
		c.nmiPending = false
		c.serviceInterrupt(nmiVector)
		c.Cycles += 8
		return 8
	}
	if c.irqLine && !c.getFlag(FlagI) {
		c.serviceInterrupt(irqVector)
		c.Cycles += 7
		return 7
	}

	opcode := c.Read(c.ProgramCounter)
	c.ProgramCounter++

	entry := dispatchTable[opcode]

	c.M, c.AbsAddress, c.accMode = 0, 0, false
	pageCrossed := entry.addrMode(c)
	extra := entry.instruction(c)

	total := entry.cycles + extra
	if entry.pageCrossAddsCycle && pageCrossed {
		total++
	}

	c.Cycles += uint64(total)
	return total
}

// Run calls Step until the cumulative cycle count has advanced by at
// least budget cycles from where it started. It stops at the next
// instruction boundary, never mid-instruction.
func (c *Cpu) Run(budget uint64) {
	start := c.Cycles
	for c.Cycles-start < budget {
		c.Step()
	}
}
