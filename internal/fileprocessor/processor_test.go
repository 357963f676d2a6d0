package fileprocessor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testOptions(t *testing.T) options.Program {
	t.Helper()
	return options.Program{
		Parameters: options.Parameters{
			Output: filepath.Join(t.TempDir(), "screen.txt"),
		},
		Machine: options.Machine{
			ProgramCounter: emulator.ProgramStart,
		},
		Run: options.Run{
			Speed:       600,
			Unthrottled: true,
		},
	}
}

func TestRunDemo(t *testing.T) {
	opts := testOptions(t)
	assert.NoError(t, RunDemo(context.Background(), log.NewTestLogger(t), opts))

	data, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	assert.Equal(t, strings.Repeat(string(render.PixelOn), 8), lines[0][:8])
	assert.Equal(t, string(render.PixelOff), lines[0][8:9])
	assert.Equal(t, strings.Repeat(string(render.PixelOff), 64), lines[1])
}

func TestProcessFile(t *testing.T) {
	opts := testOptions(t)
	opts.Input = filepath.Join(t.TempDir(), "demo.ch8")
	opts.Disassemble = true
	assert.NoError(t, os.WriteFile(opts.Input, DemoProgram, 0600))

	assert.NoError(t, ProcessFile(context.Background(), log.NewTestLogger(t), opts))

	data, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "; $0200 70 FF")
}

func TestProcessFile_Error(t *testing.T) {
	opts := testOptions(t)
	opts.Input = filepath.Join(t.TempDir(), "missing.ch8")

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts)
	assert.ErrorContains(t, err, "processing file")
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, PrintVersion(&buf, "1.0.0", "", ""))
	assert.True(t, strings.HasPrefix(buf.String(), "version: "))
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{}, "1.0.0", "0123456789abcdef", "2026-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "1.0.0", "", "")
}
