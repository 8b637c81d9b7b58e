package mos6502

// AddressingMode identifies how an opcode's operand bytes resolve to
// an effective address.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type AddressingMode uint8

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // (Indirect,X)
	IndirectY // (Indirect),Y
	Relative
)

var modeNames = map[AddressingMode]string{
	Implied:     "IMPLIED",
	Accumulator: "ACCUMULATOR",
	Immediate:   "IMMEDIATE",
	ZeroPage:    "ZERO_PAGE",
	ZeroPageX:   "ZERO_PAGE_X",
	ZeroPageY:   "ZERO_PAGE_Y",
	Absolute:    "ABSOLUTE",
	AbsoluteX:   "ABSOLUTE_X",
	AbsoluteY:   "ABSOLUTE_Y",
	Indirect:    "INDIRECT",
	IndirectX:   "INDIRECT_X",
	IndirectY:   "INDIRECT_Y",
	Relative:    "RELATIVE",
}

func (m AddressingMode) String() string {
	return modeNames[m]
}

// Opcode describes one opcode byte's shape: its mnemonic, the number
// of bytes it consumes (including the opcode byte itself), its
// nominal cycle count, and its addressing mode. Unofficial is set for
// the small documented subset of undocumented opcodes this
// interpreter supports (NOP variants, LAX and the $EB SBC alias).
type Opcode struct {
	Mnemonic   string
	Mode       AddressingMode
	Length     uint8
	Cycles     uint8
	Unofficial bool
}

// opcodeTable is the immutable, process-lifetime mapping from opcode
// byte to its shape. It is initialized once at package load and never
// mutated afterward.
var opcodeTable = map[uint8]Opcode{
	0x69: {"ADC", Immediate, 2, 2, false},
	0x65: {"ADC", ZeroPage, 2, 3, false},
	0x75: {"ADC", ZeroPageX, 2, 4, false},
	0x6D: {"ADC", Absolute, 3, 4, false},
	0x7D: {"ADC", AbsoluteX, 3, 4, false},
	0x79: {"ADC", AbsoluteY, 3, 4, false},
	0x61: {"ADC", IndirectX, 2, 6, false},
	0x71: {"ADC", IndirectY, 2, 5, false},

	0x29: {"AND", Immediate, 2, 2, false},
	0x25: {"AND", ZeroPage, 2, 3, false},
	0x35: {"AND", ZeroPageX, 2, 4, false},
	0x2D: {"AND", Absolute, 3, 4, false},
	0x3D: {"AND", AbsoluteX, 3, 4, false},
	0x39: {"AND", AbsoluteY, 3, 4, false},
	0x21: {"AND", IndirectX, 2, 6, false},
	0x31: {"AND", IndirectY, 2, 5, false},

	0x0A: {"ASL", Accumulator, 1, 2, false},
	0x06: {"ASL", ZeroPage, 2, 5, false},
	0x16: {"ASL", ZeroPageX, 2, 6, false},
	0x0E: {"ASL", Absolute, 3, 6, false},
	0x1E: {"ASL", AbsoluteX, 3, 7, false},

	0x90: {"BCC", Relative, 2, 2, false},
	0xB0: {"BCS", Relative, 2, 2, false},
	0xF0: {"BEQ", Relative, 2, 2, false},
	0x30: {"BMI", Relative, 2, 2, false},
	0xD0: {"BNE", Relative, 2, 2, false},
	0x10: {"BPL", Relative, 2, 2, false},
	0x50: {"BVC", Relative, 2, 2, false},
	0x70: {"BVS", Relative, 2, 2, false},

	0x24: {"BIT", ZeroPage, 2, 3, false},
	0x2C: {"BIT", Absolute, 3, 4, false},

	0x00: {"BRK", Implied, 1, 7, false},

	0x18: {"CLC", Implied, 1, 2, false},
	0xD8: {"CLD", Implied, 1, 2, false},
	0x58: {"CLI", Implied, 1, 2, false},
	0xB8: {"CLV", Implied, 1, 2, false},

	0xC9: {"CMP", Immediate, 2, 2, false},
	0xC5: {"CMP", ZeroPage, 2, 3, false},
	0xD5: {"CMP", ZeroPageX, 2, 4, false},
	0xCD: {"CMP", Absolute, 3, 4, false},
	0xDD: {"CMP", AbsoluteX, 3, 4, false},
	0xD9: {"CMP", AbsoluteY, 3, 4, false},
	0xC1: {"CMP", IndirectX, 2, 6, false},
	0xD1: {"CMP", IndirectY, 2, 5, false},

	0xE0: {"CPX", Immediate, 2, 2, false},
	0xE4: {"CPX", ZeroPage, 2, 3, false},
	0xEC: {"CPX", Absolute, 3, 4, false},

	0xC0: {"CPY", Immediate, 2, 2, false},
	0xC4: {"CPY", ZeroPage, 2, 3, false},
	0xCC: {"CPY", Absolute, 3, 4, false},

	0xC6: {"DEC", ZeroPage, 2, 5, false},
	0xD6: {"DEC", ZeroPageX, 2, 6, false},
	0xCE: {"DEC", Absolute, 3, 6, false},
	0xDE: {"DEC", AbsoluteX, 3, 7, false},
	0xCA: {"DEX", Implied, 1, 2, false},
	0x88: {"DEY", Implied, 1, 2, false},

	0x49: {"EOR", Immediate, 2, 2, false},
	0x45: {"EOR", ZeroPage, 2, 3, false},
	0x55: {"EOR", ZeroPageX, 2, 4, false},
	0x4D: {"EOR", Absolute, 3, 4, false},
	0x5D: {"EOR", AbsoluteX, 3, 4, false},
	0x59: {"EOR", AbsoluteY, 3, 4, false},
	0x41: {"EOR", IndirectX, 2, 6, false},
	0x51: {"EOR", IndirectY, 2, 5, false},

	0xE6: {"INC", ZeroPage, 2, 5, false},
	0xF6: {"INC", ZeroPageX, 2, 6, false},
	0xEE: {"INC", Absolute, 3, 6, false},
	0xFE: {"INC", AbsoluteX, 3, 7, false},
	0xE8: {"INX", Implied, 1, 2, false},
	0xC8: {"INY", Implied, 1, 2, false},

	0x4C: {"JMP", Absolute, 3, 3, false},
	0x6C: {"JMP", Indirect, 3, 5, false},
	0x20: {"JSR", Absolute, 3, 6, false},

	0xA9: {"LDA", Immediate, 2, 2, false},
	0xA5: {"LDA", ZeroPage, 2, 3, false},
	0xB5: {"LDA", ZeroPageX, 2, 4, false},
	0xAD: {"LDA", Absolute, 3, 4, false},
	0xBD: {"LDA", AbsoluteX, 3, 4, false},
	0xB9: {"LDA", AbsoluteY, 3, 4, false},
	0xA1: {"LDA", IndirectX, 2, 6, false},
	0xB1: {"LDA", IndirectY, 2, 5, false},

	0xA2: {"LDX", Immediate, 2, 2, false},
	0xA6: {"LDX", ZeroPage, 2, 3, false},
	0xB6: {"LDX", ZeroPageY, 2, 4, false},
	0xAE: {"LDX", Absolute, 3, 4, false},
	0xBE: {"LDX", AbsoluteY, 3, 4, false},

	0xA0: {"LDY", Immediate, 2, 2, false},
	0xA4: {"LDY", ZeroPage, 2, 3, false},
	0xB4: {"LDY", ZeroPageX, 2, 4, false},
	0xAC: {"LDY", Absolute, 3, 4, false},
	0xBC: {"LDY", AbsoluteX, 3, 4, false},

	0x4A: {"LSR", Accumulator, 1, 2, false},
	0x46: {"LSR", ZeroPage, 2, 5, false},
	0x56: {"LSR", ZeroPageX, 2, 6, false},
	0x4E: {"LSR", Absolute, 3, 6, false},
	0x5E: {"LSR", AbsoluteX, 3, 7, false},

	0xEA: {"NOP", Implied, 1, 2, false},
	// NOP variants: unofficial opcodes that consume operand bytes
	// without touching machine state.
	0x1A: {"NOP", Implied, 1, 2, true},
	0x3A: {"NOP", Implied, 1, 2, true},
	0x5A: {"NOP", Implied, 1, 2, true},
	0x7A: {"NOP", Implied, 1, 2, true},
	0xDA: {"NOP", Implied, 1, 2, true},
	0xFA: {"NOP", Implied, 1, 2, true},
	0x80: {"NOP", Immediate, 2, 2, true},
	0x04: {"NOP", ZeroPage, 2, 3, true},
	0x44: {"NOP", ZeroPage, 2, 3, true},
	0x64: {"NOP", ZeroPage, 2, 3, true},
	0x14: {"NOP", ZeroPageX, 2, 4, true},
	0x34: {"NOP", ZeroPageX, 2, 4, true},
	0x54: {"NOP", ZeroPageX, 2, 4, true},
	0x74: {"NOP", ZeroPageX, 2, 4, true},
	0xD4: {"NOP", ZeroPageX, 2, 4, true},
	0xF4: {"NOP", ZeroPageX, 2, 4, true},
	0x0C: {"NOP", Absolute, 3, 4, true},
	0x1C: {"NOP", AbsoluteX, 3, 4, true},
	0x3C: {"NOP", AbsoluteX, 3, 4, true},
	0x5C: {"NOP", AbsoluteX, 3, 4, true},
	0x7C: {"NOP", AbsoluteX, 3, 4, true},
	0xDC: {"NOP", AbsoluteX, 3, 4, true},
	0xFC: {"NOP", AbsoluteX, 3, 4, true},

	0x09: {"ORA", Immediate, 2, 2, false},
	0x05: {"ORA", ZeroPage, 2, 3, false},
	0x15: {"ORA", ZeroPageX, 2, 4, false},
	0x0D: {"ORA", Absolute, 3, 4, false},
	0x1D: {"ORA", AbsoluteX, 3, 4, false},
	0x19: {"ORA", AbsoluteY, 3, 4, false},
	0x01: {"ORA", IndirectX, 2, 6, false},
	0x11: {"ORA", IndirectY, 2, 5, false},

	0x48: {"PHA", Implied, 1, 3, false},
	0x08: {"PHP", Implied, 1, 3, false},
	0x68: {"PLA", Implied, 1, 4, false},
	0x28: {"PLP", Implied, 1, 4, false},

	0x2A: {"ROL", Accumulator, 1, 2, false},
	0x26: {"ROL", ZeroPage, 2, 5, false},
	0x36: {"ROL", ZeroPageX, 2, 6, false},
	0x2E: {"ROL", Absolute, 3, 6, false},
	0x3E: {"ROL", AbsoluteX, 3, 7, false},

	0x6A: {"ROR", Accumulator, 1, 2, false},
	0x66: {"ROR", ZeroPage, 2, 5, false},
	0x76: {"ROR", ZeroPageX, 2, 6, false},
	0x6E: {"ROR", Absolute, 3, 6, false},
	0x7E: {"ROR", AbsoluteX, 3, 7, false},

	0x40: {"RTI", Implied, 1, 6, false},
	0x60: {"RTS", Implied, 1, 6, false},

	0xE9: {"SBC", Immediate, 2, 2, false},
	0xE5: {"SBC", ZeroPage, 2, 3, false},
	0xF5: {"SBC", ZeroPageX, 2, 4, false},
	0xED: {"SBC", Absolute, 3, 4, false},
	0xFD: {"SBC", AbsoluteX, 3, 4, false},
	0xF9: {"SBC", AbsoluteY, 3, 4, false},
	0xE1: {"SBC", IndirectX, 2, 6, false},
	0xF1: {"SBC", IndirectY, 2, 5, false},
	0xEB: {"SBC", Immediate, 2, 2, true}, // unofficial SBC alias

	0x38: {"SEC", Implied, 1, 2, false},
	0xF8: {"SED", Implied, 1, 2, false},
	0x78: {"SEI", Implied, 1, 2, false},

	0x85: {"STA", ZeroPage, 2, 3, false},
	0x95: {"STA", ZeroPageX, 2, 4, false},
	0x8D: {"STA", Absolute, 3, 4, false},
	0x9D: {"STA", AbsoluteX, 3, 5, false},
	0x99: {"STA", AbsoluteY, 3, 5, false},
	0x81: {"STA", IndirectX, 2, 6, false},
	0x91: {"STA", IndirectY, 2, 6, false},

	0x86: {"STX", ZeroPage, 2, 3, false},
	0x96: {"STX", ZeroPageY, 2, 4, false},
	0x8E: {"STX", Absolute, 3, 4, false},

	0x84: {"STY", ZeroPage, 2, 3, false},
	0x94: {"STY", ZeroPageX, 2, 4, false},
	0x8C: {"STY", Absolute, 3, 4, false},

	0xAA: {"TAX", Implied, 1, 2, false},
	0xA8: {"TAY", Implied, 1, 2, false},
	0xBA: {"TSX", Implied, 1, 2, false},
	0x8A: {"TXA", Implied, 1, 2, false},
	0x9A: {"TXS", Implied, 1, 2, false},
	0x98: {"TYA", Implied, 1, 2, false},

	// LAX: the other unofficial instruction this core documents,
	// besides the NOP variants and the $EB SBC alias.
	// Equivalent to LDA followed by TAX.
	0xA7: {"LAX", ZeroPage, 2, 3, true},
	0xB7: {"LAX", ZeroPageY, 2, 4, true},
	0xAF: {"LAX", Absolute, 3, 4, true},
	0xBF: {"LAX", AbsoluteY, 3, 4, true},
	0xA3: {"LAX", IndirectX, 2, 6, true},
	0xB3: {"LAX", IndirectY, 2, 5, true},
}
