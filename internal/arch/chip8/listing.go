package chip8

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/opcode"
)

// WriteListing writes a linear disassembly of the program, assuming that it
// is loaded at the base address. Every line contains one instruction or,
// for words that are not instructions, a data directive, followed by the
// address and the raw bytes as comment.
func WriteListing(w io.Writer, program []byte, base uint16) error {
	for offset := 0; offset < len(program); offset += opcode.Size {
		address := int(base) + offset

		if offset+1 >= len(program) {
			line := fmt.Sprintf("    .byte $%02X", program[offset])
			if _, err := fmt.Fprintf(w, "%-32s ; $%04X %02X\n", line, address, program[offset]); err != nil {
				return fmt.Errorf("writing data: %w", err)
			}
			break
		}

		hi, lo := program[offset], program[offset+1]
		line := "    " + disassembleBytes(hi, lo)
		if _, err := fmt.Fprintf(w, "%-32s ; $%04X %02X %02X\n", line, address, hi, lo); err != nil {
			return fmt.Errorf("writing code: %w", err)
		}
	}
	return nil
}

// disassembleBytes returns the assembly text of a word that decodes to an
// instruction, or a data directive otherwise.
func disassembleBytes(hi, lo byte) string {
	ins, err := opcode.Decode(hi, lo)
	if err != nil {
		return fmt.Sprintf(".byte $%02X, $%02X", hi, lo)
	}
	return DisassembleInstruction(ins)
}
