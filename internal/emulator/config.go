package emulator

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/display"
)

// ProgramStart is the default program counter, the address that CHIP-8
// programs are loaded to and start executing at.
const ProgramStart = 0x200

// Config contains the optional construction parameters of an emulator.
type Config struct {
	MemoryFill     byte    // value of all memory bytes after construction
	ProgramCounter uint16  // initial program counter and program load address
	Seed           *uint64 // random seed, a time based seed is used if nil
	NoFont         bool    // do not load the hexadecimal font at FontAddress

	// Random overrides the seeded random source if set.
	Random Random
	// Keypad provides the key states, no key is pressed if nil.
	Keypad Keypad
}

// DefaultConfig returns the default emulator configuration.
func DefaultConfig() Config {
	return Config{
		ProgramCounter: ProgramStart,
	}
}

// WithSeed returns a copy of the config using a fixed random seed.
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = &seed
	return c
}

// New returns a new emulator for the display using the given configuration.
func New(surface display.Surface, cfg Config) *Emulator {
	random := cfg.Random
	if random == nil {
		seed := timeSeed()
		if cfg.Seed != nil {
			seed = *cfg.Seed
		}
		random = NewRandom(seed)
	}

	keypad := cfg.Keypad
	if keypad == nil {
		keypad = &KeyState{}
	}

	e := &Emulator{
		programCounter: cfg.ProgramCounter,
		random:         random,
		keypad:         keypad,
		stack:          make([]uint16, 0, 16),
		display:        surface,
	}
	for i := range e.memory {
		e.memory[i] = cfg.MemoryFill
	}
	if !cfg.NoFont {
		copy(e.memory[FontAddress:], font[:])
	}
	return e
}

// NewWithProgram returns a new emulator with the program written to memory
// at the configured program counter.
func NewWithProgram(surface display.Surface, cfg Config, program []byte) (*Emulator, error) {
	e := New(surface, cfg)
	if !e.WriteAtPC(program) {
		return nil, fmt.Errorf("%w: program of %d bytes does not fit at address %04X",
			ErrMemoryOutOfBounds, len(program), cfg.ProgramCounter)
	}
	return e, nil
}
