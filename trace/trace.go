// Package trace renders CPU instructions in the fixed-width format
// popularized by the nestest reference trace log: program counter,
// raw opcode bytes, disassembled mnemonic and operand, then the
// register file. It is read-only: resolving an instruction's operand
// uses the exact same CPU.OperandAddress resolver the interpreter
// itself dispatches through, so a traced line always describes what
// actually executes.
package trace

import (
	"fmt"
	"strings"

	"github.com/coredump-labs/nescore/mos6502"
)

// disasmColumn is the fixed width of the "bytes + mnemonic + operand"
// field before the register dump begins.
const disasmColumn = 48

// Format renders one trace line for the instruction about to execute.
// It is meant to be called from a CPU's Trace hook, where startPC is
// the address of the opcode byte, op is its table entry and opByte is
// the byte itself. At call time the CPU's PC has already advanced
// past the opcode, which is exactly the state OperandAddress expects.
func Format(c *mos6502.CPU, startPC uint16, op mos6502.Opcode, opByte uint8) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%04X  ", startPC)
	writeHexDump(&sb, c, startPC, opByte, op.Length)
	sb.WriteString("  ")
	sb.WriteString(op.Mnemonic)
	sb.WriteString(" ")
	sb.WriteString(operandText(c, op))

	line := sb.String()
	if pad := disasmColumn - len(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	line += fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X", c.A, c.X, c.Y, c.P, c.SP)

	return strings.ToUpper(line)
}

func writeHexDump(sb *strings.Builder, c *mos6502.CPU, startPC uint16, opByte uint8, length uint8) {
	switch length {
	case 1:
		fmt.Fprintf(sb, "%02X      ", opByte)
	case 2:
		fmt.Fprintf(sb, "%02X %02X   ", opByte, c.Bus.Read(startPC+1))
	case 3:
		fmt.Fprintf(sb, "%02X %02X %02X", opByte, c.Bus.Read(startPC+1), c.Bus.Read(startPC+2))
	}
}

// operandText renders the disassembled operand, including the
// resolved-address and stored-value annotations nestest shows for
// every indexed or indirect mode. It leans on CPU.OperandAddress for
// every effective-address computation, including the page-wrap bugs,
// so the trace can never disagree with execution about where an
// instruction actually reads or writes.
func operandText(c *mos6502.CPU, op mos6502.Opcode) string {
	b := c.Bus

	switch op.Mode {
	case mos6502.Implied:
		return ""
	case mos6502.Accumulator:
		return "A"
	case mos6502.Immediate:
		return fmt.Sprintf("#$%02X", b.Read(c.PC))
	case mos6502.ZeroPage:
		addr := c.OperandAddress(op.Mode)
		return fmt.Sprintf("$%02X = %02X", addr, b.Read(addr))
	case mos6502.ZeroPageX:
		raw := b.Read(c.PC)
		addr := c.OperandAddress(op.Mode)
		return fmt.Sprintf("$%02X,X @ %02X = %02X", raw, addr, b.Read(addr))
	case mos6502.ZeroPageY:
		raw := b.Read(c.PC)
		addr := c.OperandAddress(op.Mode)
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", raw, addr, b.Read(addr))
	case mos6502.Absolute:
		addr := c.OperandAddress(op.Mode)
		if op.Mnemonic == "JMP" || op.Mnemonic == "JSR" {
			return fmt.Sprintf("$%04X", addr)
		}
		return fmt.Sprintf("$%04X = %02X", addr, b.Read(addr))
	case mos6502.AbsoluteX:
		raw := absoluteOperand(c)
		addr := c.OperandAddress(op.Mode)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", raw, addr, b.Read(addr))
	case mos6502.AbsoluteY:
		raw := absoluteOperand(c)
		addr := c.OperandAddress(op.Mode)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", raw, addr, b.Read(addr))
	case mos6502.Indirect:
		raw := absoluteOperand(c)
		addr := c.OperandAddress(op.Mode)
		return fmt.Sprintf("($%04X) = %04X", raw, addr)
	case mos6502.IndirectX:
		rawZP := b.Read(c.PC)
		ptr := rawZP + c.X
		addr := c.OperandAddress(op.Mode)
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", rawZP, ptr, addr, b.Read(addr))
	case mos6502.IndirectY:
		rawZP := b.Read(c.PC)
		base := zeroPagePointer(b, rawZP)
		addr := c.OperandAddress(op.Mode)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", rawZP, base, addr, b.Read(addr))
	case mos6502.Relative:
		addr := c.OperandAddress(op.Mode)
		return fmt.Sprintf("$%04X", addr)
	default:
		return ""
	}
}

func absoluteOperand(c *mos6502.CPU) uint16 {
	lo := uint16(c.Bus.Read(c.PC))
	hi := uint16(c.Bus.Read(c.PC + 1))
	return hi<<8 | lo
}

// zeroPagePointer reads a little-endian pointer out of the zero page
// starting at ptr, wrapping the high-byte fetch within page 0 exactly
// as (Indirect),Y does before applying Y.
func zeroPagePointer(b mos6502.Bus, ptr uint8) uint16 {
	lo := uint16(b.Read(uint16(ptr)))
	hi := uint16(b.Read(uint16(ptr + 1)))
	return hi<<8 | lo
}
