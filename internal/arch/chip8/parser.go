package chip8

import (
	"math/bits"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Lookup returns the opcode table entry that matches the instruction word.
// If multiple entries match, the one with the most specific mask is returned.
func Lookup(word uint16) (chip8.Opcode, bool) {
	firstNibble := (word & 0xF000) >> 12
	opcodes := chip8.Opcodes[int(firstNibble)]

	var match chip8.Opcode
	matchBits := -1
	for _, op := range opcodes {
		if op.Instruction == nil || op.Info.Mask&word != op.Info.Value {
			continue
		}
		if n := bits.OnesCount16(op.Info.Mask); n > matchBits {
			match = op
			matchBits = n
		}
	}
	return match, matchBits >= 0
}
