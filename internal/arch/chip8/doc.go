// Package chip8 provides CHIP-8 disassembly of instruction words.
//
// # Instruction Set
//
// CHIP-8 has a simple instruction set with 35 opcodes:
//   - All instructions are 2 bytes (16 bits), stored big endian
//   - Instructions use direct addressing with 12-bit addresses
//   - 16 general-purpose 8-bit registers (V0-VF)
//   - Special-purpose registers: I (16-bit), PC, SP, DT, ST
//
// Mnemonics are taken from the retrogolib CHIP-8 opcode table, operands are
// formatted in the common Cowgod notation:
//
//	JP $234
//	LD I, $FA0
//	DRW V1, V2, $1
//	LD [I], VF
//
// # Usage Example
//
//	text := chip8.Disassemble(0xD121)
//
//	// write a listing of a whole program
//	err := chip8.WriteListing(os.Stdout, rom, 0x200)
//
// Words that do not match any opcode are written as data bytes in listings
// and as a .word directive by Disassemble.
package chip8
