package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		quiet bool
	}{
		{"default", false, false},
		{"debug", true, false},
		{"quiet", false, true},
		{"debug overrides quiet", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, CreateLogger(tt.debug, tt.quiet))
		})
	}
}

func TestEmulatorConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := options.Program{
			Machine: options.Machine{ProgramCounter: emulator.ProgramStart},
		}
		cfg := EmulatorConfig(opts)
		assert.Equal(t, uint16(emulator.ProgramStart), cfg.ProgramCounter)
		assert.Equal(t, byte(0), cfg.MemoryFill)
		assert.False(t, cfg.NoFont)
		assert.True(t, cfg.Seed == nil)
	})

	t.Run("machine options", func(t *testing.T) {
		opts := options.Program{
			Machine: options.Machine{
				Seed:           42,
				HasSeed:        true,
				MemoryFill:     0xAA,
				ProgramCounter: 0x600,
				NoFont:         true,
			},
		}
		cfg := EmulatorConfig(opts)
		assert.Equal(t, uint16(0x600), cfg.ProgramCounter)
		assert.Equal(t, byte(0xAA), cfg.MemoryFill)
		assert.True(t, cfg.NoFont)
		assert.True(t, cfg.Seed != nil)
		assert.Equal(t, uint64(42), *cfg.Seed)
	})
}
