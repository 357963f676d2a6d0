// Package emulator implements the CHIP-8 fetch-decode-execute engine.
//
// An Emulator owns all machine state: 16 general purpose registers, 4KB of
// memory, the address register I, the program counter, the call stack and
// the delay and sound timers. Each call to Step executes one instruction.
// Timers are only decremented by DecrementTimers, the program driving the
// emulator is responsible for calling it at 60 Hz.
package emulator

import (
	"github.com/retroenv/retrochip8/internal/display"
)

// Machine dimensions.
const (
	MemorySize    = 4096
	RegisterCount = 16
	// FlagRegister is the register that receives carry, borrow, shifted out
	// bits and draw collisions.
	FlagRegister = 0xF
)

// Emulator is a CHIP-8 virtual machine.
type Emulator struct {
	registers       [RegisterCount]uint8
	addressRegister uint16
	memory          [MemorySize]byte
	delayTimer      uint8
	soundTimer      uint8
	programCounter  uint16
	stack           []uint16

	random  Random
	keypad  Keypad
	display display.Surface
}

// WriteAtPC writes the bytes to memory starting at the program counter.
func (e *Emulator) WriteAtPC(bytes []byte) bool {
	return e.WriteMemory(bytes, int(e.programCounter))
}

// WriteMemory writes the bytes to memory starting at the address.
// If the bytes do not fit into memory nothing is written and false is returned.
func (e *Emulator) WriteMemory(bytes []byte, at int) bool {
	if at < 0 || at+len(bytes) > MemorySize {
		return false
	}
	copy(e.memory[at:], bytes)
	return true
}

// Memory returns the byte at the address, or false if the address is
// outside of memory.
func (e *Emulator) Memory(address int) (byte, bool) {
	if address < 0 || address >= MemorySize {
		return 0, false
	}
	return e.memory[address], true
}

// Display returns the display surface that the emulator draws on.
func (e *Emulator) Display() display.Surface {
	return e.display
}

// Register returns the value of the register 0x0-0xF.
func (e *Emulator) Register(index int) uint8 {
	return e.registers[index&0xF]
}

// Registers returns a copy of all registers.
func (e *Emulator) Registers() [RegisterCount]uint8 {
	return e.registers
}

// AddressRegister returns the value of the address register I.
func (e *Emulator) AddressRegister() uint16 {
	return e.addressRegister
}

// ProgramCounter returns the address of the next instruction.
func (e *Emulator) ProgramCounter() uint16 {
	return e.programCounter
}

// StackDepth returns the number of return addresses on the call stack.
func (e *Emulator) StackDepth() int {
	return len(e.stack)
}

// DelayTimer returns the current delay timer value.
func (e *Emulator) DelayTimer() uint8 {
	return e.delayTimer
}

// SoundTimer returns the current sound timer value.
func (e *Emulator) SoundTimer() uint8 {
	return e.soundTimer
}

// SetDelayTimer sets the delay timer.
func (e *Emulator) SetDelayTimer(value uint8) {
	e.delayTimer = value
}

// SetSoundTimer sets the sound timer.
func (e *Emulator) SetSoundTimer(value uint8) {
	e.soundTimer = value
}

// DecrementTimers decrements both timers if they are not zero.
func (e *Emulator) DecrementTimers() {
	if e.delayTimer > 0 {
		e.delayTimer--
	}
	if e.soundTimer > 0 {
		e.soundTimer--
	}
}

// readRange returns the memory slice of the given length starting at address.
func (e *Emulator) readRange(address, length int) ([]byte, bool) {
	if address < 0 || length < 0 || address+length > MemorySize {
		return nil, false
	}
	return e.memory[address : address+length], true
}
