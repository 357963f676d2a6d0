package emulator

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/opcode"
)

// Errors returned by Step. All of them abort the current step.
var (
	// ErrMemoryOutOfBounds is returned when an instruction accesses memory
	// outside of the 4096 byte address space.
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")
	// ErrInvalidOpCode is returned when the fetched word is not an instruction.
	ErrInvalidOpCode = opcode.ErrInvalidOpCode
	// ErrInvalidReturn is returned by a return with an empty call stack.
	ErrInvalidReturn = errors.New("return with empty call stack")
	// ErrUnsupportedOpCode is returned for instructions that decode but are not
	// executed by this interpreter, like calls to native machine code.
	ErrUnsupportedOpCode = errors.New("unsupported opcode")
)
