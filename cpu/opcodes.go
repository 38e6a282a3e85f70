package cpu

// An opcodeEntry describes one of the 256 possible byte values the Cpu
// can fetch as an opcode. It carries the addressing mode that resolves
// the operand, the instruction that acts on it, the base cycle cost, and
// whether a page boundary crossed while resolving an indexed address adds
// one more cycle on top of that base cost.
//
// Multiple opcode bytes may share one instruction, differing only in how
// the operand is found; that indirection is what addrMode captures.
type opcodeEntry struct {
	name                string
	addrMode            addrMode
	instruction         func(c *Cpu) byte
	cycles              byte
	pageCrossAddsCycle bool
}

// dispatchTable covers all 256 opcode values. The 151 documented NMOS
// 6502 opcodes occupy their real slots below; init fills the remaining
// 105 slots with a 1-byte, 2-cycle implied-mode NOP placeholder, since
// reproducing the undocumented opcodes' side effects is out of scope here.
var dispatchTable [256]opcodeEntry

func init() {
	for i := range dispatchTable {
		if dispatchTable[i].instruction == nil {
			dispatchTable[i] = opcodeEntry{name: "NOP*", addrMode: amImplied, instruction: (*Cpu).NOP, cycles: 2}
		}
	}
}

func init() {
	for opcode, entry := range map[byte]opcodeEntry{
		0x69: {name: "ADC", addrMode: amImmediate, instruction: (*Cpu).ADC, cycles: 2},
		0x65: {name: "ADC", addrMode: amZeroPage, instruction: (*Cpu).ADC, cycles: 3},
		0x75: {name: "ADC", addrMode: amZeroPageX, instruction: (*Cpu).ADC, cycles: 4},
		0x6D: {name: "ADC", addrMode: amAbsolute, instruction: (*Cpu).ADC, cycles: 4},
		0x7D: {name: "ADC", addrMode: amAbsoluteX, instruction: (*Cpu).ADC, cycles: 4, pageCrossAddsCycle: true},
		0x79: {name: "ADC", addrMode: amAbsoluteY, instruction: (*Cpu).ADC, cycles: 4, pageCrossAddsCycle: true},
		0x61: {name: "ADC", addrMode: amIndirectX, instruction: (*Cpu).ADC, cycles: 6},
		0x71: {name: "ADC", addrMode: amIndirectY, instruction: (*Cpu).ADC, cycles: 5, pageCrossAddsCycle: true},

		0x29: {name: "AND", addrMode: amImmediate, instruction: (*Cpu).AND, cycles: 2},
		0x25: {name: "AND", addrMode: amZeroPage, instruction: (*Cpu).AND, cycles: 3},
		0x35: {name: "AND", addrMode: amZeroPageX, instruction: (*Cpu).AND, cycles: 4},
		0x2D: {name: "AND", addrMode: amAbsolute, instruction: (*Cpu).AND, cycles: 4},
		0x3D: {name: "AND", addrMode: amAbsoluteX, instruction: (*Cpu).AND, cycles: 4, pageCrossAddsCycle: true},
		0x39: {name: "AND", addrMode: amAbsoluteY, instruction: (*Cpu).AND, cycles: 4, pageCrossAddsCycle: true},
		0x21: {name: "AND", addrMode: amIndirectX, instruction: (*Cpu).AND, cycles: 6},
		0x31: {name: "AND", addrMode: amIndirectY, instruction: (*Cpu).AND, cycles: 5, pageCrossAddsCycle: true},

		0x0A: {name: "ASL", addrMode: amAccumulator, instruction: (*Cpu).ASL, cycles: 2},
		0x06: {name: "ASL", addrMode: amZeroPage, instruction: (*Cpu).ASL, cycles: 5},
		0x16: {name: "ASL", addrMode: amZeroPageX, instruction: (*Cpu).ASL, cycles: 6},
		0x0E: {name: "ASL", addrMode: amAbsolute, instruction: (*Cpu).ASL, cycles: 6},
		0x1E: {name: "ASL", addrMode: amAbsoluteX, instruction: (*Cpu).ASL, cycles: 7},

		0x24: {name: "BIT", addrMode: amZeroPage, instruction: (*Cpu).BIT, cycles: 3},
		0x2C: {name: "BIT", addrMode: amAbsolute, instruction: (*Cpu).BIT, cycles: 4},

		0x00: {name: "BRK", addrMode: amImplied, instruction: (*Cpu).BRK, cycles: 7},

		0xC9: {name: "CMP", addrMode: amImmediate, instruction: (*Cpu).CMP, cycles: 2},
		0xC5: {name: "CMP", addrMode: amZeroPage, instruction: (*Cpu).CMP, cycles: 3},
		0xD5: {name: "CMP", addrMode: amZeroPageX, instruction: (*Cpu).CMP, cycles: 4},
		0xCD: {name: "CMP", addrMode: amAbsolute, instruction: (*Cpu).CMP, cycles: 4},
		0xDD: {name: "CMP", addrMode: amAbsoluteX, instruction: (*Cpu).CMP, cycles: 4, pageCrossAddsCycle: true},
		0xD9: {name: "CMP", addrMode: amAbsoluteY, instruction: (*Cpu).CMP, cycles: 4, pageCrossAddsCycle: true},
		0xC1: {name: "CMP", addrMode: amIndirectX, instruction: (*Cpu).CMP, cycles: 6},
		0xD1: {name: "CMP", addrMode: amIndirectY, instruction: (*Cpu).CMP, cycles: 5, pageCrossAddsCycle: true},

		0xE0: {name: "CPX", addrMode: amImmediate, instruction: (*Cpu).CPX, cycles: 2},
		0xE4: {name: "CPX", addrMode: amZeroPage, instruction: (*Cpu).CPX, cycles: 3},
		0xEC: {name: "CPX", addrMode: amAbsolute, instruction: (*Cpu).CPX, cycles: 4},

		0xC0: {name: "CPY", addrMode: amImmediate, instruction: (*Cpu).CPY, cycles: 2},
		0xC4: {name: "CPY", addrMode: amZeroPage, instruction: (*Cpu).CPY, cycles: 3},
		0xCC: {name: "CPY", addrMode: amAbsolute, instruction: (*Cpu).CPY, cycles: 4},

		0xC6: {name: "DEC", addrMode: amZeroPage, instruction: (*Cpu).DEC, cycles: 5},
		0xD6: {name: "DEC", addrMode: amZeroPageX, instruction: (*Cpu).DEC, cycles: 6},
		0xCE: {name: "DEC", addrMode: amAbsolute, instruction: (*Cpu).DEC, cycles: 6},
		0xDE: {name: "DEC", addrMode: amAbsoluteX, instruction: (*Cpu).DEC, cycles: 7},

		0x49: {name: "EOR", addrMode: amImmediate, instruction: (*Cpu).EOR, cycles: 2},
		0x45: {name: "EOR", addrMode: amZeroPage, instruction: (*Cpu).EOR, cycles: 3},
		0x55: {name: "EOR", addrMode: amZeroPageX, instruction: (*Cpu).EOR, cycles: 4},
		0x4D: {name: "EOR", addrMode: amAbsolute, instruction: (*Cpu).EOR, cycles: 4},
		0x5D: {name: "EOR", addrMode: amAbsoluteX, instruction: (*Cpu).EOR, cycles: 4, pageCrossAddsCycle: true},
		0x59: {name: "EOR", addrMode: amAbsoluteY, instruction: (*Cpu).EOR, cycles: 4, pageCrossAddsCycle: true},
		0x41: {name: "EOR", addrMode: amIndirectX, instruction: (*Cpu).EOR, cycles: 6},
		0x51: {name: "EOR", addrMode: amIndirectY, instruction: (*Cpu).EOR, cycles: 5, pageCrossAddsCycle: true},

		0xE6: {name: "INC", addrMode: amZeroPage, instruction: (*Cpu).INC, cycles: 5},
		0xF6: {name: "INC", addrMode: amZeroPageX, instruction: (*Cpu).INC, cycles: 6},
		0xEE: {name: "INC", addrMode: amAbsolute, instruction: (*Cpu).INC, cycles: 6},
		0xFE: {name: "INC", addrMode: amAbsoluteX, instruction: (*Cpu).INC, cycles: 7},

		0x4C: {name: "JMP", addrMode: amAbsolute, instruction: (*Cpu).JMP, cycles: 3},
		0x6C: {name: "JMP", addrMode: amIndirect, instruction: (*Cpu).JMP, cycles: 5},

		0x20: {name: "JSR", addrMode: amAbsolute, instruction: (*Cpu).JSR, cycles: 6},

		0xA9: {name: "LDA", addrMode: amImmediate, instruction: (*Cpu).LDA, cycles: 2},
		0xA5: {name: "LDA", addrMode: amZeroPage, instruction: (*Cpu).LDA, cycles: 3},
		0xB5: {name: "LDA", addrMode: amZeroPageX, instruction: (*Cpu).LDA, cycles: 4},
		0xAD: {name: "LDA", addrMode: amAbsolute, instruction: (*Cpu).LDA, cycles: 4},
		0xBD: {name: "LDA", addrMode: amAbsoluteX, instruction: (*Cpu).LDA, cycles: 4, pageCrossAddsCycle: true},
		0xB9: {name: "LDA", addrMode: amAbsoluteY, instruction: (*Cpu).LDA, cycles: 4, pageCrossAddsCycle: true},
		0xA1: {name: "LDA", addrMode: amIndirectX, instruction: (*Cpu).LDA, cycles: 6},
		0xB1: {name: "LDA", addrMode: amIndirectY, instruction: (*Cpu).LDA, cycles: 5, pageCrossAddsCycle: true},

		0xA2: {name: "LDX", addrMode: amImmediate, instruction: (*Cpu).LDX, cycles: 2},
		0xA6: {name: "LDX", addrMode: amZeroPage, instruction: (*Cpu).LDX, cycles: 3},
		0xB6: {name: "LDX", addrMode: amZeroPageY, instruction: (*Cpu).LDX, cycles: 4},
		0xAE: {name: "LDX", addrMode: amAbsolute, instruction: (*Cpu).LDX, cycles: 4},
		0xBE: {name: "LDX", addrMode: amAbsoluteY, instruction: (*Cpu).LDX, cycles: 4, pageCrossAddsCycle: true},

		0xA0: {name: "LDY", addrMode: amImmediate, instruction: (*Cpu).LDY, cycles: 2},
		0xA4: {name: "LDY", addrMode: amZeroPage, instruction: (*Cpu).LDY, cycles: 3},
		0xB4: {name: "LDY", addrMode: amZeroPageX, instruction: (*Cpu).LDY, cycles: 4},
		0xAC: {name: "LDY", addrMode: amAbsolute, instruction: (*Cpu).LDY, cycles: 4},
		0xBC: {name: "LDY", addrMode: amAbsoluteX, instruction: (*Cpu).LDY, cycles: 4, pageCrossAddsCycle: true},

		0x4A: {name: "LSR", addrMode: amAccumulator, instruction: (*Cpu).LSR, cycles: 2},
		0x46: {name: "LSR", addrMode: amZeroPage, instruction: (*Cpu).LSR, cycles: 5},
		0x56: {name: "LSR", addrMode: amZeroPageX, instruction: (*Cpu).LSR, cycles: 6},
		0x4E: {name: "LSR", addrMode: amAbsolute, instruction: (*Cpu).LSR, cycles: 6},
		0x5E: {name: "LSR", addrMode: amAbsoluteX, instruction: (*Cpu).LSR, cycles: 7},

		0xEA: {name: "NOP", addrMode: amImplied, instruction: (*Cpu).NOP, cycles: 2},

		0x09: {name: "ORA", addrMode: amImmediate, instruction: (*Cpu).ORA, cycles: 2},
		0x05: {name: "ORA", addrMode: amZeroPage, instruction: (*Cpu).ORA, cycles: 3},
		0x15: {name: "ORA", addrMode: amZeroPageX, instruction: (*Cpu).ORA, cycles: 4},
		0x0D: {name: "ORA", addrMode: amAbsolute, instruction: (*Cpu).ORA, cycles: 4},
		0x1D: {name: "ORA", addrMode: amAbsoluteX, instruction: (*Cpu).ORA, cycles: 4, pageCrossAddsCycle: true},
		0x19: {name: "ORA", addrMode: amAbsoluteY, instruction: (*Cpu).ORA, cycles: 4, pageCrossAddsCycle: true},
		0x01: {name: "ORA", addrMode: amIndirectX, instruction: (*Cpu).ORA, cycles: 6},
		0x11: {name: "ORA", addrMode: amIndirectY, instruction: (*Cpu).ORA, cycles: 5, pageCrossAddsCycle: true},

		0x2A: {name: "ROL", addrMode: amAccumulator, instruction: (*Cpu).ROL, cycles: 2},
		0x26: {name: "ROL", addrMode: amZeroPage, instruction: (*Cpu).ROL, cycles: 5},
		0x36: {name: "ROL", addrMode: amZeroPageX, instruction: (*Cpu).ROL, cycles: 6},
		0x2E: {name: "ROL", addrMode: amAbsolute, instruction: (*Cpu).ROL, cycles: 6},
		0x3E: {name: "ROL", addrMode: amAbsoluteX, instruction: (*Cpu).ROL, cycles: 7},

		0x6A: {name: "ROR", addrMode: amAccumulator, instruction: (*Cpu).ROR, cycles: 2},
		0x66: {name: "ROR", addrMode: amZeroPage, instruction: (*Cpu).ROR, cycles: 5},
		0x76: {name: "ROR", addrMode: amZeroPageX, instruction: (*Cpu).ROR, cycles: 6},
		0x6E: {name: "ROR", addrMode: amAbsolute, instruction: (*Cpu).ROR, cycles: 6},
		0x7E: {name: "ROR", addrMode: amAbsoluteX, instruction: (*Cpu).ROR, cycles: 7},

		0x40: {name: "RTI", addrMode: amImplied, instruction: (*Cpu).RTI, cycles: 6},
		0x60: {name: "RTS", addrMode: amImplied, instruction: (*Cpu).RTS, cycles: 6},

		0xE9: {name: "SBC", addrMode: amImmediate, instruction: (*Cpu).SBC, cycles: 2},
		0xE5: {name: "SBC", addrMode: amZeroPage, instruction: (*Cpu).SBC, cycles: 3},
		0xF5: {name: "SBC", addrMode: amZeroPageX, instruction: (*Cpu).SBC, cycles: 4},
		0xED: {name: "SBC", addrMode: amAbsolute, instruction: (*Cpu).SBC, cycles: 4},
		0xFD: {name: "SBC", addrMode: amAbsoluteX, instruction: (*Cpu).SBC, cycles: 4, pageCrossAddsCycle: true},
		0xF9: {name: "SBC", addrMode: amAbsoluteY, instruction: (*Cpu).SBC, cycles: 4, pageCrossAddsCycle: true},
		0xE1: {name: "SBC", addrMode: amIndirectX, instruction: (*Cpu).SBC, cycles: 6},
		0xF1: {name: "SBC", addrMode: amIndirectY, instruction: (*Cpu).SBC, cycles: 5, pageCrossAddsCycle: true},

		0x85: {name: "STA", addrMode: amZeroPage, instruction: (*Cpu).STA, cycles: 3},
		0x95: {name: "STA", addrMode: amZeroPageX, instruction: (*Cpu).STA, cycles: 4},
		0x8D: {name: "STA", addrMode: amAbsolute, instruction: (*Cpu).STA, cycles: 4},
		0x9D: {name: "STA", addrMode: amAbsoluteX, instruction: (*Cpu).STA, cycles: 5},
		0x99: {name: "STA", addrMode: amAbsoluteY, instruction: (*Cpu).STA, cycles: 5},
		0x81: {name: "STA", addrMode: amIndirectX, instruction: (*Cpu).STA, cycles: 6},
		0x91: {name: "STA", addrMode: amIndirectY, instruction: (*Cpu).STA, cycles: 6},

		0x86: {name: "STX", addrMode: amZeroPage, instruction: (*Cpu).STX, cycles: 3},
		0x96: {name: "STX", addrMode: amZeroPageY, instruction: (*Cpu).STX, cycles: 4},
		0x8E: {name: "STX", addrMode: amAbsolute, instruction: (*Cpu).STX, cycles: 4},

		0x84: {name: "STY", addrMode: amZeroPage, instruction: (*Cpu).STY, cycles: 3},
		0x94: {name: "STY", addrMode: amZeroPageX, instruction: (*Cpu).STY, cycles: 4},
		0x8C: {name: "STY", addrMode: amAbsolute, instruction: (*Cpu).STY, cycles: 4},

		0x18: {name: "CLC", addrMode: amImplied, instruction: (*Cpu).CLC, cycles: 2},
		0x38: {name: "SEC", addrMode: amImplied, instruction: (*Cpu).SEC, cycles: 2},
		0x58: {name: "CLI", addrMode: amImplied, instruction: (*Cpu).CLI, cycles: 2},
		0x78: {name: "SEI", addrMode: amImplied, instruction: (*Cpu).SEI, cycles: 2},
		0xB8: {name: "CLV", addrMode: amImplied, instruction: (*Cpu).CLV, cycles: 2},
		0xD8: {name: "CLD", addrMode: amImplied, instruction: (*Cpu).CLD, cycles: 2},
		0xF8: {name: "SED", addrMode: amImplied, instruction: (*Cpu).SED, cycles: 2},

		0xAA: {name: "TAX", addrMode: amImplied, instruction: (*Cpu).TAX, cycles: 2},
		0x8A: {name: "TXA", addrMode: amImplied, instruction: (*Cpu).TXA, cycles: 2},
		0xCA: {name: "DEX", addrMode: amImplied, instruction: (*Cpu).DEX, cycles: 2},
		0xE8: {name: "INX", addrMode: amImplied, instruction: (*Cpu).INX, cycles: 2},
		0xA8: {name: "TAY", addrMode: amImplied, instruction: (*Cpu).TAY, cycles: 2},
		0x98: {name: "TYA", addrMode: amImplied, instruction: (*Cpu).TYA, cycles: 2},
		0x88: {name: "DEY", addrMode: amImplied, instruction: (*Cpu).DEY, cycles: 2},
		0xC8: {name: "INY", addrMode: amImplied, instruction: (*Cpu).INY, cycles: 2},

		0x10: {name: "BPL", addrMode: amRelative, instruction: (*Cpu).BPL, cycles: 2},
		0x30: {name: "BMI", addrMode: amRelative, instruction: (*Cpu).BMI, cycles: 2},
		0x50: {name: "BVC", addrMode: amRelative, instruction: (*Cpu).BVC, cycles: 2},
		0x70: {name: "BVS", addrMode: amRelative, instruction: (*Cpu).BVS, cycles: 2},
		0x90: {name: "BCC", addrMode: amRelative, instruction: (*Cpu).BCC, cycles: 2},
		0xB0: {name: "BCS", addrMode: amRelative, instruction: (*Cpu).BCS, cycles: 2},
		0xD0: {name: "BNE", addrMode: amRelative, instruction: (*Cpu).BNE, cycles: 2},
		0xF0: {name: "BEQ", addrMode: amRelative, instruction: (*Cpu).BEQ, cycles: 2},

		0x9A: {name: "TXS", addrMode: amImplied, instruction: (*Cpu).TXS, cycles: 2},
		0xBA: {name: "TSX", addrMode: amImplied, instruction: (*Cpu).TSX, cycles: 2},
		0x48: {name: "PHA", addrMode: amImplied, instruction: (*Cpu).PHA, cycles: 3},
		0x68: {name: "PLA", addrMode: amImplied, instruction: (*Cpu).PLA, cycles: 4},
		0x08: {name: "PHP", addrMode: amImplied, instruction: (*Cpu).PHP, cycles: 3},
		0x28: {name: "PLP", addrMode: amImplied, instruction: (*Cpu).PLP, cycles: 4},
	} {
		dispatchTable[opcode] = entry
	}
}
