package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, opts options.Program)
	}{
		{
			name: "default flags",
			args: []string{"game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "game.ch8", opts.Input)
				assert.Equal(t, uint(0x200), opts.ProgramCounter)
				assert.Equal(t, uint(DefaultSpeed), opts.Speed)
				assert.False(t, opts.HasSeed)
				assert.Len(t, opts.Breakpoints, 0)
			},
		},
		{
			name: "input flag",
			args: []string{"-i", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "game.ch8", opts.Input)
			},
		},
		{
			name: "machine flags",
			args: []string{"-seed", "0", "-fill", "255", "-pc", "0x300", "-nofont", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.HasSeed)
				assert.Equal(t, uint64(0), opts.Seed)
				assert.Equal(t, uint(0xFF), opts.MemoryFill)
				assert.Equal(t, uint(0x300), opts.ProgramCounter)
				assert.True(t, opts.NoFont)
			},
		},
		{
			name: "run flags",
			args: []string{"-cycles", "100", "-unthrottled", "-trace", "-break", "200,$2a4, 0x300", "game.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, uint64(100), opts.Cycles)
				assert.True(t, opts.Unthrottled)
				assert.True(t, opts.Trace)
				assert.Len(t, opts.Breakpoints, 3)
				assert.Equal(t, uint16(0x200), opts.Breakpoints[0])
				assert.Equal(t, uint16(0x2A4), opts.Breakpoints[1])
				assert.Equal(t, uint16(0x300), opts.Breakpoints[2])
			},
		},
		{
			name: "demo without file",
			args: []string{"-demo"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.Demo)
				assert.Equal(t, "", opts.Input)
			},
		},
		{
			name: "demo with machine flags",
			args: []string{"-demo", "-seed", "7", "-pc", "0x300", "-speed", "60"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.Demo)
				assert.True(t, opts.HasSeed)
				assert.Equal(t, uint64(7), opts.Seed)
				assert.Equal(t, uint(0x300), opts.ProgramCounter)
				assert.Equal(t, uint(MinSpeed), opts.Speed)
			},
		},
		{
			name: "version without file",
			args: []string{"-version"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.Version)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse("retrochip8", tt.args)
			assert.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
		errContain string
	}{
		{name: "no file", args: []string{}, usageError: true},
		{name: "unknown flag", args: []string{"-unknown", "game.ch8"}, usageError: true},
		{name: "flag after file", args: []string{"game.ch8", "-debug"}, usageError: true},
		{name: "invalid breakpoint", args: []string{"-break", "xyz", "game.ch8"}, errContain: "invalid address"},
		{name: "breakpoint out of range", args: []string{"-break", "1000", "game.ch8"}, errContain: "exceeds"},
		{name: "program counter out of range", args: []string{"-pc", "0x1000", "game.ch8"}, errContain: "program counter"},
		{name: "fill out of range", args: []string{"-fill", "256", "game.ch8"}, errContain: "fill"},
		{name: "zero speed", args: []string{"-speed", "0", "game.ch8"}, errContain: "speed"},
		{name: "speed below frame rate", args: []string{"-speed", "59", "-unthrottled", "game.ch8"}, errContain: "minimum"},
		{name: "demo program counter out of range", args: []string{"-demo", "-pc", "0x10200"}, errContain: "program counter"},
		{name: "demo fill out of range", args: []string{"-demo", "-fill", "300"}, errContain: "fill"},
		{name: "demo zero speed", args: []string{"-demo", "-speed", "0"}, errContain: "speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("retrochip8", tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
			if tt.errContain != "" {
				assert.ErrorContains(t, err, tt.errContain)
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"retrochip8", "-q", "game.ch8"}

	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.True(t, opts.Quiet)
	assert.Equal(t, "game.ch8", opts.Input)
}

func TestParseAddresses(t *testing.T) {
	addresses, err := parseAddresses("")
	assert.NoError(t, err)
	assert.Len(t, addresses, 0)

	addresses, err = parseAddresses("FFF")
	assert.NoError(t, err)
	assert.Len(t, addresses, 1)
	assert.Equal(t, uint16(0xFFF), addresses[0])
}
