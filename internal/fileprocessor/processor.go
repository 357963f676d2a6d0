// Package fileprocessor handles the input and output files of a run
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// DemoProgram adds 0xFF to V0 and V3, stores all registers at 0xFA0 and
// draws the first stored byte as an 8 pixel wide line at V1, V2.
var DemoProgram = []byte{
	0x70, 0xFF, // ADD V0, $FF
	0x73, 0xFF, // ADD V3, $FF
	0xAF, 0xA0, // LD I, $FA0
	0xFF, 0x55, // LD [I], VF
	0xD1, 0x21, // DRW V1, V2, $1
}

// demoSteps is the number of instructions of the demo program.
const demoSteps = 5

// ProcessFile runs the ROM file of the options, or writes its listing, and
// outputs the result to the configured output.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer closeWriter(writer)

	p := pipeline.New(logger)
	if _, err := p.Execute(ctx, opts, writer); err != nil {
		return fmt.Errorf("processing file: %w", err)
	}
	return nil
}

// RunDemo runs the built-in demo program and outputs the final screen.
func RunDemo(ctx context.Context, logger *log.Logger, opts options.Program) error {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer closeWriter(writer)

	opts.Cycles = demoSteps
	opts.Unthrottled = true
	opts.Breakpoints = nil

	p := pipeline.New(logger)
	if _, err := p.ExecuteWithProgram(ctx, DemoProgram, opts, writer); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// PrintVersion writes the full version information to the writer.
func PrintVersion(w io.Writer, version, commit, date string) error {
	if _, err := fmt.Fprintf(w, "version: %s\n", buildinfo.Version(version, commit, date)); err != nil {
		return fmt.Errorf("writing version: %w", err)
	}
	return nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

func closeWriter(writer io.Writer) {
	if writer == os.Stdout {
		return
	}
	if closer, ok := writer.(io.Closer); ok {
		_ = closer.Close()
	}
}
