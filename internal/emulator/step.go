package emulator

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/opcode"
)

// Fetch returns the instruction at the program counter without executing it.
func (e *Emulator) Fetch() (opcode.Instruction, error) {
	pc := e.programCounter
	hi, lo, err := e.fetchBytes()
	if err != nil {
		return opcode.Instruction{}, err
	}
	return decodeAt(hi, lo, pc)
}

// Step fetches, decodes and executes the instruction at the program counter.
// The program counter is advanced right after the two instruction bytes were
// fetched, so it also points to the next instruction when decoding or
// executing fails. A failed fetch does not modify any state.
func (e *Emulator) Step() error {
	pc := e.programCounter
	hi, lo, err := e.fetchBytes()
	if err != nil {
		return err
	}

	e.programCounter += opcode.Size

	ins, err := decodeAt(hi, lo, pc)
	if err != nil {
		return err
	}

	if err := e.execute(ins); err != nil {
		return fmt.Errorf("executing %s at %04X: %w", ins.Op, pc, err)
	}
	return nil
}

func (e *Emulator) fetchBytes() (byte, byte, error) {
	data, ok := e.readRange(int(e.programCounter), opcode.Size)
	if !ok {
		return 0, 0, fmt.Errorf("fetching instruction at %04X: %w", e.programCounter, ErrMemoryOutOfBounds)
	}
	return data[0], data[1], nil
}

func decodeAt(hi, lo byte, pc uint16) (opcode.Instruction, error) {
	ins, err := opcode.Decode(hi, lo)
	if err != nil {
		return opcode.Instruction{}, fmt.Errorf("decoding instruction at %04X: %w", pc, err)
	}
	return ins, nil
}

// execute applies the semantics of the instruction to the machine state.
//
//nolint:funlen,cyclop // one case per operation
func (e *Emulator) execute(ins opcode.Instruction) error {
	x, y := ins.X&0xF, ins.Y&0xF
	vx, vy := e.registers[x], e.registers[y]

	switch ins.Op {
	case opcode.CallMachineCode:
		return fmt.Errorf("%w: machine code routine at %03X", ErrUnsupportedOpCode, ins.Address)

	case opcode.ClearDisplay:
		e.display.Clear()

	case opcode.Return:
		if len(e.stack) == 0 {
			return ErrInvalidReturn
		}
		e.programCounter = e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

	case opcode.Jump:
		e.programCounter = ins.Address

	case opcode.CallSubroutine:
		e.stack = append(e.stack, e.programCounter)
		e.programCounter = ins.Address

	case opcode.SkipIfRegEqConst:
		e.skipIf(vx == ins.Const)

	case opcode.SkipIfRegNeqConst:
		e.skipIf(vx != ins.Const)

	case opcode.SkipIfRegEqReg:
		e.skipIf(vx == vy)

	case opcode.SkipIfRegNeqReg:
		e.skipIf(vx != vy)

	case opcode.SetRegConst:
		e.registers[x] = ins.Const

	case opcode.AddRegConst:
		e.registers[x] = vx + ins.Const

	case opcode.Copy:
		e.registers[x] = vy

	case opcode.Or:
		e.registers[x] = vx | vy

	case opcode.And:
		e.registers[x] = vx & vy

	case opcode.Xor:
		e.registers[x] = vx ^ vy

	case opcode.Add:
		sum := uint16(vx) + uint16(vy)
		e.registers[x] = uint8(sum)
		e.registers[FlagRegister] = boolToFlag(sum > 0xFF)

	case opcode.Sub:
		e.registers[x] = vx - vy
		e.registers[FlagRegister] = boolToFlag(vx >= vy)

	case opcode.SubReverse:
		e.registers[x] = vy - vx
		e.registers[FlagRegister] = boolToFlag(vy >= vx)

	case opcode.ShiftRight:
		e.registers[x] = vx >> 1
		e.registers[FlagRegister] = vx & 0x01

	case opcode.ShiftLeft:
		e.registers[x] = vx << 1
		e.registers[FlagRegister] = vx >> 7

	case opcode.SetAddrRegConst:
		e.addressRegister = ins.Address

	case opcode.JumpPlusOffset:
		e.programCounter = ins.Address + uint16(e.registers[0])

	case opcode.SetRegRandomMasked:
		e.registers[x] = uint8(e.random.Range(0, 0xFF)) & ins.Const

	case opcode.Draw:
		return e.draw(vx, vy, ins.N)

	case opcode.KeyPressed:
		e.skipIf(e.keypad.IsPressed(vx & 0xF))

	case opcode.KeyNotPressed:
		e.skipIf(!e.keypad.IsPressed(vx & 0xF))

	case opcode.AwaitKeyPress:
		key, ok := e.keypad.PressedKey()
		if !ok {
			// execute this instruction again on the next step
			e.programCounter -= opcode.Size
			return nil
		}
		e.registers[x] = key

	case opcode.GetDelayTimer:
		e.registers[x] = e.delayTimer

	case opcode.SetDelayTimer:
		e.delayTimer = vx

	case opcode.SetSoundTimer:
		e.soundTimer = vx

	case opcode.AddAddrReg:
		e.addressRegister += uint16(vx)

	case opcode.SpriteAddrReg:
		e.addressRegister = FontAddress + uint16(vx&0xF)*fontCharSize

	case opcode.StoreBCD:
		digits := []byte{vx / 100, (vx % 100) / 10, vx % 10}
		if !e.WriteMemory(digits, int(e.addressRegister)) {
			return fmt.Errorf("storing BCD at %04X: %w", e.addressRegister, ErrMemoryOutOfBounds)
		}

	case opcode.DumpRegisters:
		count := int(x) + 1
		if !e.WriteMemory(e.registers[:count], int(e.addressRegister)) {
			return fmt.Errorf("storing %d registers at %04X: %w", count, e.addressRegister, ErrMemoryOutOfBounds)
		}

	case opcode.LoadRegisters:
		count := int(x) + 1
		data, ok := e.readRange(int(e.addressRegister), count)
		if !ok {
			return fmt.Errorf("loading %d registers from %04X: %w", count, e.addressRegister, ErrMemoryOutOfBounds)
		}
		copy(e.registers[:count], data)

	default:
		return fmt.Errorf("%w: operation %s", ErrInvalidOpCode, ins.Op)
	}

	return nil
}

// draw reads a sprite of height bytes at the address register and draws it
// at the given screen position.
func (e *Emulator) draw(x, y, height uint8) error {
	sprite, ok := e.readRange(int(e.addressRegister), int(height))
	if !ok {
		return fmt.Errorf("reading sprite of %d bytes at %04X: %w", height, e.addressRegister, ErrMemoryOutOfBounds)
	}

	rows := make([]uint8, 0, len(sprite)*display.SpriteWidth)
	for _, b := range sprite {
		for bit := display.SpriteWidth - 1; bit >= 0; bit-- {
			rows = append(rows, (b>>bit)&1)
		}
	}

	collision := e.display.DrawSprite(x, y, rows)
	e.registers[FlagRegister] = boolToFlag(collision)
	return nil
}

// skipIf skips the next instruction if the condition is true.
func (e *Emulator) skipIf(condition bool) {
	if condition {
		e.programCounter += opcode.Size
	}
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
