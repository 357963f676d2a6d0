package chip8

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Disassemble returns the assembly text of the instruction word.
func Disassemble(word uint16) string {
	op, ok := Lookup(word)
	if !ok {
		return fmt.Sprintf(".word $%04X", word)
	}

	name := op.Instruction.Name
	if params := formatInstruction(name, word); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// DisassembleInstruction returns the assembly text of a decoded instruction.
func DisassembleInstruction(ins opcode.Instruction) string {
	return Disassemble(ins.Encode())
}

// formatInstruction formats a CHIP-8 instruction with its parameters.
// Returns the formatted parameter string for the given instruction.
func formatInstruction(name string, word uint16) string {
	switch name {
	case chip8.ClsName, chip8.RetName:
		return "" // No parameters
	case chip8.JpName:
		return formatJumpInstruction(word)
	case chip8.CallName:
		return fmt.Sprintf("$%03X", word&0x0FFF)
	case chip8.SeName, chip8.SneName:
		return formatCompareInstruction(word)
	case chip8.LdName:
		return formatLoadInstruction(word)
	case chip8.AddName:
		return formatAddInstruction(word)
	case chip8.OrName, chip8.AndName, chip8.XorName, chip8.SubName, chip8.SubnName:
		return formatBinaryInstruction(word)
	case chip8.ShrName, chip8.ShlName:
		return formatRegisterInstruction(word)
	case chip8.RndName:
		return fmt.Sprintf("V%X, $%02X", registerX(word), word&0x00FF)
	case chip8.DrwName:
		return formatDrawInstruction(word)
	case chip8.SkpName, chip8.SknpName:
		return formatRegisterInstruction(word)
	}
	return ""
}

// formatJumpInstruction formats jump instructions (JP addr, JP V0+addr).
func formatJumpInstruction(word uint16) string {
	switch word & 0xF000 {
	case 0x1000:
		return fmt.Sprintf("$%03X", word&0x0FFF)
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", word&0x0FFF)
	}
	return ""
}

// formatCompareInstruction formats comparison instructions (SE, SNE).
func formatCompareInstruction(word uint16) string {
	x := registerX(word)
	switch word & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, word&0x00FF)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, registerY(word))
	}
	return ""
}

// formatLoadInstruction formats all LD variants, including the timer,
// font, BCD and register transfer forms of the F family.
func formatLoadInstruction(word uint16) string {
	x := registerX(word)
	switch word & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, word&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(word))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", word&0x0FFF)
	case 0xF000:
		return formatLoadMiscInstruction(x, byte(word))
	}
	return ""
}

func formatLoadMiscInstruction(x uint16, selector byte) string {
	switch selector {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// formatAddInstruction formats add instructions (ADD Vx, byte/Vy, ADD I, Vx).
func formatAddInstruction(word uint16) string {
	x := registerX(word)
	switch word & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, word&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(word))
	case 0xF000:
		return fmt.Sprintf("I, V%X", x)
	}
	return ""
}

// formatBinaryInstruction formats binary operation instructions (OR, AND, XOR, SUB, SUBN).
func formatBinaryInstruction(word uint16) string {
	return fmt.Sprintf("V%X, V%X", registerX(word), registerY(word))
}

// formatRegisterInstruction formats instructions with a single register
// operand (SHR, SHL, SKP, SKNP).
func formatRegisterInstruction(word uint16) string {
	return fmt.Sprintf("V%X", registerX(word))
}

// formatDrawInstruction formats draw instructions (DRW).
func formatDrawInstruction(word uint16) string {
	return fmt.Sprintf("V%X, V%X, $%X", registerX(word), registerY(word), word&0x000F)
}

// registerX extracts the X register nibble from a CHIP-8 instruction word.
func registerX(word uint16) uint16 {
	return (word & 0x0F00) >> 8
}

// registerY extracts the Y register nibble from a CHIP-8 instruction word.
func registerY(word uint16) uint16 {
	return (word & 0x00F0) >> 4
}
