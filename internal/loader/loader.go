// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/emulator"
)

var (
	// ErrEmptyROM is returned for ROM files without any content.
	ErrEmptyROM = errors.New("empty ROM")
	// ErrROMTooLarge is returned for ROM files that do not fit into memory
	// at the load address.
	ErrROMTooLarge = errors.New("ROM too large")
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file and checks that it fits into the emulator memory
// when loaded at the given address.
func (l *Loader) Load(path string, address uint16) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadReader(file, address)
}

// LoadReader reads a ROM image from the reader. At most the free memory
// above the load address plus one byte is read, to detect oversized images
// without reading them completely.
func (l *Loader) LoadReader(reader io.Reader, address uint16) ([]byte, error) {
	available := emulator.MemorySize - int(address)
	if available <= 0 {
		return nil, fmt.Errorf("%w: load address %04X is outside of memory", ErrROMTooLarge, address)
	}

	data, err := io.ReadAll(io.LimitReader(reader, int64(available)+1))
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}

	return l.LoadFromBytes(data, address)
}

// LoadFromBytes validates an in-memory ROM image.
func (l *Loader) LoadFromBytes(data []byte, address uint16) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyROM
	}

	available := emulator.MemorySize - int(address)
	if len(data) > available {
		return nil, fmt.Errorf("%w: %d bytes exceed the %d bytes available at %04X",
			ErrROMTooLarge, len(data), max(available, 0), address)
	}
	return data, nil
}
