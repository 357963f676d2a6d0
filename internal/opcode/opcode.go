// Package opcode decodes CHIP-8 instruction words into operations.
package opcode

import (
	"errors"
	"fmt"
)

// Size is the size of a CHIP-8 instruction word in bytes.
const Size = 2

// ErrInvalidOpCode is returned when no operation matches an instruction word.
var ErrInvalidOpCode = errors.New("invalid opcode")

// Op identifies one of the CHIP-8 operations.
type Op uint8

// All CHIP-8 operations. The zero value is not a valid operation.
const (
	_ Op = iota
	CallMachineCode
	ClearDisplay
	Return
	Jump
	CallSubroutine
	SkipIfRegEqConst
	SkipIfRegNeqConst
	SkipIfRegEqReg
	SetRegConst
	AddRegConst
	Copy
	Or
	And
	Xor
	Add
	Sub
	ShiftRight
	SubReverse
	ShiftLeft
	SkipIfRegNeqReg
	SetAddrRegConst
	JumpPlusOffset
	SetRegRandomMasked
	Draw
	KeyPressed
	KeyNotPressed
	GetDelayTimer
	AwaitKeyPress
	SetDelayTimer
	SetSoundTimer
	AddAddrReg
	SpriteAddrReg
	StoreBCD
	DumpRegisters
	LoadRegisters

	opCount
)

var opNames = [...]string{
	CallMachineCode:    "CallMachineCode",
	ClearDisplay:       "ClearDisplay",
	Return:             "Return",
	Jump:               "Jump",
	CallSubroutine:     "CallSubroutine",
	SkipIfRegEqConst:   "SkipIfRegEqConst",
	SkipIfRegNeqConst:  "SkipIfRegNeqConst",
	SkipIfRegEqReg:     "SkipIfRegEqReg",
	SetRegConst:        "SetRegConst",
	AddRegConst:        "AddRegConst",
	Copy:               "Copy",
	Or:                 "Or",
	And:                "And",
	Xor:                "Xor",
	Add:                "Add",
	Sub:                "Sub",
	ShiftRight:         "ShiftRight",
	SubReverse:         "SubReverse",
	ShiftLeft:          "ShiftLeft",
	SkipIfRegNeqReg:    "SkipIfRegNeqReg",
	SetAddrRegConst:    "SetAddrRegConst",
	JumpPlusOffset:     "JumpPlusOffset",
	SetRegRandomMasked: "SetRegRandomMasked",
	Draw:               "Draw",
	KeyPressed:         "KeyPressed",
	KeyNotPressed:      "KeyNotPressed",
	GetDelayTimer:      "GetDelayTimer",
	AwaitKeyPress:      "AwaitKeyPress",
	SetDelayTimer:      "SetDelayTimer",
	SetSoundTimer:      "SetSoundTimer",
	AddAddrReg:         "AddAddrReg",
	SpriteAddrReg:      "SpriteAddrReg",
	StoreBCD:           "StoreBCD",
	DumpRegisters:      "DumpRegisters",
	LoadRegisters:      "LoadRegisters",
}

// String returns the name of the operation.
func (o Op) String() string {
	if o == 0 || o >= opCount {
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
	return opNames[o]
}

// Instruction is a decoded CHIP-8 instruction. Only the operands used by
// the operation are set, the others are zero.
type Instruction struct {
	Op      Op
	X       uint8  // first register operand
	Y       uint8  // second register operand
	N       uint8  // sprite height of Draw
	Const   uint8  // 8-bit constant or mask
	Address uint16 // 12-bit address
}

// Decode converts the two bytes of an instruction word into an instruction.
func Decode(hi, lo byte) (Instruction, error) {
	n0, n1, n2, n3 := SplitNibbles(hi, lo)
	address := Word(hi, lo) & 0x0FFF

	switch n0 {
	case 0x0:
		switch Word(hi, lo) {
		case 0x00E0:
			return Instruction{Op: ClearDisplay}, nil
		case 0x00EE:
			return Instruction{Op: Return}, nil
		}
		return Instruction{Op: CallMachineCode, Address: address}, nil

	case 0x1:
		return Instruction{Op: Jump, Address: address}, nil

	case 0x2:
		return Instruction{Op: CallSubroutine, Address: address}, nil

	case 0x3:
		return Instruction{Op: SkipIfRegEqConst, X: n1, Const: lo}, nil

	case 0x4:
		return Instruction{Op: SkipIfRegNeqConst, X: n1, Const: lo}, nil

	case 0x5:
		if n3 == 0 {
			return Instruction{Op: SkipIfRegEqReg, X: n1, Y: n2}, nil
		}

	case 0x6:
		return Instruction{Op: SetRegConst, X: n1, Const: lo}, nil

	case 0x7:
		return Instruction{Op: AddRegConst, X: n1, Const: lo}, nil

	case 0x8:
		if op, ok := aluOps[n3]; ok {
			return Instruction{Op: op, X: n1, Y: n2}, nil
		}

	case 0x9:
		if n3 == 0 {
			return Instruction{Op: SkipIfRegNeqReg, X: n1, Y: n2}, nil
		}

	case 0xA:
		return Instruction{Op: SetAddrRegConst, Address: address}, nil

	case 0xB:
		return Instruction{Op: JumpPlusOffset, Address: address}, nil

	case 0xC:
		return Instruction{Op: SetRegRandomMasked, X: n1, Const: lo}, nil

	case 0xD:
		return Instruction{Op: Draw, X: n1, Y: n2, N: n3}, nil

	case 0xE:
		switch lo {
		case 0x9E:
			return Instruction{Op: KeyPressed, X: n1}, nil
		case 0xA1:
			return Instruction{Op: KeyNotPressed, X: n1}, nil
		}

	case 0xF:
		if op, ok := miscOps[lo]; ok {
			return Instruction{Op: op, X: n1}, nil
		}
	}

	return Instruction{}, fmt.Errorf("%w: %04X", ErrInvalidOpCode, Word(hi, lo))
}

// aluOps maps the last nibble of 8xyN words to the operation.
var aluOps = map[uint8]Op{
	0x0: Copy,
	0x1: Or,
	0x2: And,
	0x3: Xor,
	0x4: Add,
	0x5: Sub,
	0x6: ShiftRight,
	0x7: SubReverse,
	0xE: ShiftLeft,
}

// miscOps maps the low byte of FxKK words to the operation.
var miscOps = map[uint8]Op{
	0x07: GetDelayTimer,
	0x0A: AwaitKeyPress,
	0x15: SetDelayTimer,
	0x18: SetSoundTimer,
	0x1E: AddAddrReg,
	0x29: SpriteAddrReg,
	0x33: StoreBCD,
	0x55: DumpRegisters,
	0x65: LoadRegisters,
}

// Encode returns the instruction word of the instruction.
// Encode panics on an instruction that was not created by Decode
// or filled in with a valid operation.
func (i Instruction) Encode() uint16 {
	x := uint16(i.X&0xF) << 8
	y := uint16(i.Y&0xF) << 4
	kk := uint16(i.Const)
	nnn := i.Address & 0x0FFF

	switch i.Op {
	case CallMachineCode:
		return nnn
	case ClearDisplay:
		return 0x00E0
	case Return:
		return 0x00EE
	case Jump:
		return 0x1000 | nnn
	case CallSubroutine:
		return 0x2000 | nnn
	case SkipIfRegEqConst:
		return 0x3000 | x | kk
	case SkipIfRegNeqConst:
		return 0x4000 | x | kk
	case SkipIfRegEqReg:
		return 0x5000 | x | y
	case SetRegConst:
		return 0x6000 | x | kk
	case AddRegConst:
		return 0x7000 | x | kk
	case Copy, Or, And, Xor, Add, Sub, ShiftRight, SubReverse, ShiftLeft:
		for n, op := range aluOps {
			if op == i.Op {
				return 0x8000 | x | y | uint16(n)
			}
		}
	case SkipIfRegNeqReg:
		return 0x9000 | x | y
	case SetAddrRegConst:
		return 0xA000 | nnn
	case JumpPlusOffset:
		return 0xB000 | nnn
	case SetRegRandomMasked:
		return 0xC000 | x | kk
	case Draw:
		return 0xD000 | x | y | uint16(i.N&0xF)
	case KeyPressed:
		return 0xE09E | x
	case KeyNotPressed:
		return 0xE0A1 | x
	case GetDelayTimer, AwaitKeyPress, SetDelayTimer, SetSoundTimer, AddAddrReg,
		SpriteAddrReg, StoreBCD, DumpRegisters, LoadRegisters:
		for low, op := range miscOps {
			if op == i.Op {
				return 0xF000 | x | uint16(low)
			}
		}
	}
	panic(fmt.Sprintf("encoding unsupported operation %s", i.Op))
}

// String returns the instruction word and the operation name.
func (i Instruction) String() string {
	if i.Op == 0 || i.Op >= opCount {
		return i.Op.String()
	}
	return fmt.Sprintf("%04X %s", i.Encode(), i.Op)
}

// Word combines the two bytes of an instruction into a big endian word.
func Word(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// SplitNibbles returns the four nibbles of an instruction word,
// most significant first.
func SplitNibbles(hi, lo byte) (uint8, uint8, uint8, uint8) {
	return hi >> 4, hi & 0x0F, lo >> 4, lo & 0x0F
}
