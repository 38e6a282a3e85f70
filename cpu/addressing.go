package cpu

// word concatenates a high and low byte into a little-endian 16-bit
// address, the shape every multi-byte addressing mode below needs after
// reading its operand bytes off the bus.
func word(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// An addrMode resolves the operand location for one instruction: it reads
// zero to two bytes following the opcode (advancing ProgramCounter as it
// goes), sets c.AbsAddress and, for every mode except Implied/Accumulator/
// Relative/Indirect, fetches the byte at that address into c.M. It reports whether
// the effective address landed on a different page than where indexing
// started, which only matters to the instructions whose opcode table
// entry sets pageCrossAddsCycle.
//
// Relative mode is the odd one out: it never touches memory beyond the
// one offset byte, and never fetches c.M. The branch instructions compute
// their own target from c.AbsAddress, which amRelative leaves holding the
// already-resolved destination.
type addrMode func(c *Cpu) bool

// https://www.nesdev.org/wiki/CPU_addressing_modes

func amImplied(c *Cpu) bool {
	return false
}

func amAccumulator(c *Cpu) bool {
	c.accMode = true
	c.M = c.A
	return false
}

func amImmediate(c *Cpu) bool {
	c.AbsAddress = c.ProgramCounter
	c.ProgramCounter++
	c.M = c.Read(c.AbsAddress)
	return false
}

func amZeroPage(c *Cpu) bool {
	c.AbsAddress = uint16(c.Read(c.ProgramCounter))
	c.ProgramCounter++
	c.M = c.Read(c.AbsAddress)
	return false
}

func amZeroPageX(c *Cpu) bool {
	c.AbsAddress = uint16(c.Read(c.ProgramCounter)+c.X) & 0x00ff
	c.ProgramCounter++
	c.M = c.Read(c.AbsAddress)
	return false
}

func amZeroPageY(c *Cpu) bool {
	c.AbsAddress = uint16(c.Read(c.ProgramCounter)+c.Y) & 0x00ff
	c.ProgramCounter++
	c.M = c.Read(c.AbsAddress)
	return false
}

// amRelative fetches the signed branch offset and resolves it against the
// ProgramCounter as it will read after this instruction (i.e. after the
// opcode and the offset byte have both been consumed). It does not fetch
// c.M; branch instructions only care about c.AbsAddress and their flag.
func amRelative(c *Cpu) bool {
	offset := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	c.AbsAddress = c.ProgramCounter + uint16(int16(int8(offset)))
	return false
}

func amAbsolute(c *Cpu) bool {
	col := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	page := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	c.AbsAddress = word(page, col)
	c.M = c.Read(c.AbsAddress)
	return false
}

func amAbsoluteX(c *Cpu) bool {
	col := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	page := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	base := word(page, col)
	c.AbsAddress = base + uint16(c.X)
	c.M = c.Read(c.AbsAddress)
	return c.AbsAddress&0xff00 != base&0xff00
}

func amAbsoluteY(c *Cpu) bool {
	col := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	page := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	base := word(page, col)
	c.AbsAddress = base + uint16(c.Y)
	c.M = c.Read(c.AbsAddress)
	return c.AbsAddress&0xff00 != base&0xff00
}

func amIndirectX(c *Cpu) bool {
	ptr := c.Read(c.ProgramCounter)
	c.ProgramCounter++

	col := c.Read(uint16(ptr+c.X) & 0x00ff)
	page := c.Read(uint16(ptr+c.X+1) & 0x00ff)
	c.AbsAddress = word(page, col)
	c.M = c.Read(c.AbsAddress)
	return false
}

func amIndirectY(c *Cpu) bool {
	ptr := c.Read(c.ProgramCounter)
	c.ProgramCounter++

	col := c.Read(uint16(ptr) & 0x00ff)
	page := c.Read(uint16(ptr+1) & 0x00ff)
	base := word(page, col)
	c.AbsAddress = base + uint16(c.Y)
	c.M = c.Read(c.AbsAddress)
	return c.AbsAddress&0xff00 != base&0xff00
}

// amIndirect is JMP's addressing mode. It reproduces the documented
// hardware bug: if the low byte of the pointer is 0xff, the high byte of
// the target is fetched from the start of the same page rather than the
// start of the next one, because the 6502's indirection logic increments
// only the low byte of the pointer without carrying into the high byte.
func amIndirect(c *Cpu) bool {
	ptrCol := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	ptrPage := c.Read(c.ProgramCounter)
	c.ProgramCounter++
	ptr := word(ptrPage, ptrCol)

	lo := c.Read(ptr)
	hiAddr := (ptr & 0xff00) | ((ptr + 1) & 0x00ff)
	hi := c.Read(hiAddr)
	c.AbsAddress = word(hi, lo)
	return false
}
