// Package pipeline orchestrates loading and running CHIP-8 programs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// FrameRate is the frequency in Hz that the timers are decremented with.
const FrameRate = 60

// StopReason describes why the execution loop ended.
type StopReason int

const (
	// StopCycleLimit is set when the configured maximum of instructions was executed.
	StopCycleLimit StopReason = iota
	// StopBreakpoint is set when the program counter reached a breakpoint.
	StopBreakpoint
	// StopHalted is set when the program entered a jump to itself, which
	// programs use to end execution.
	StopHalted
	// StopListing is set when a disassembly listing was written instead of
	// running the program.
	StopListing
)

var stopReasonNames = [...]string{
	StopCycleLimit: "cycle limit",
	StopBreakpoint: "breakpoint",
	StopHalted:     "halted",
	StopListing:    "listing",
}

func (r StopReason) String() string {
	if int(r) < 0 || int(r) >= len(stopReasonNames) {
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
	return stopReasonNames[r]
}

// Result contains the final state of a program run.
type Result struct {
	Emulator *emulator.Emulator
	Screen   *display.Matrix
	Steps    uint64
	Reason   StopReason
}

// Pipeline orchestrates the complete load and run workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the ROM file of the options and either runs it or writes
// its disassembly listing to the writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (*Result, error) {
	address := uint16(opts.ProgramCounter)
	program, err := p.loader.Load(opts.Input, address)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	p.logger.Info("Processing Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
	)

	if opts.Disassemble {
		if err := chip8.WriteListing(writer, program, address); err != nil {
			return nil, fmt.Errorf("writing listing: %w", err)
		}
		return &Result{Reason: StopListing}, nil
	}

	return p.ExecuteWithProgram(ctx, program, opts, writer)
}

// ExecuteWithProgram runs an already loaded program and writes the final
// screen to the writer. This is useful for testing and programmatic usage
// where the program is already in memory.
func (p *Pipeline) ExecuteWithProgram(ctx context.Context, program []byte, opts options.Program,
	writer io.Writer) (*Result, error) {

	screen := display.NewMatrix()
	emu, err := emulator.NewWithProgram(screen, config.EmulatorConfig(opts), program)
	if err != nil {
		return nil, fmt.Errorf("creating emulator: %w", err)
	}

	r := newRunner(p.logger, emu, screen, opts, render.New(writer))
	result, err := r.run(ctx)
	if err != nil {
		return result, err
	}

	if err := r.renderer.Frame(screen); err != nil {
		return result, fmt.Errorf("rendering screen: %w", err)
	}
	return result, nil
}

// runner drives the emulator with the configured speed.
type runner struct {
	logger      *log.Logger
	emu         *emulator.Emulator
	screen      *display.Matrix
	renderer    *render.Renderer
	breakpoints set.Set[uint16]
	opts        options.Program

	steps uint64
}

func newRunner(logger *log.Logger, emu *emulator.Emulator, screen *display.Matrix,
	opts options.Program, renderer *render.Renderer) *runner {

	return &runner{
		logger:      logger,
		emu:         emu,
		screen:      screen,
		renderer:    renderer,
		breakpoints: set.NewFromSlice(opts.Breakpoints),
		opts:        opts,
	}
}

// errStop ends the execution loop without an error.
var errStop = errors.New("stop")

// run executes frames until the context is cancelled, a step fails or one of
// the stop conditions is reached. Without throttling, frames are executed
// back to back instead of waiting for the next tick.
func (r *runner) run(ctx context.Context) (*Result, error) {
	result := &Result{
		Emulator: r.emu,
		Screen:   r.screen,
	}

	var ticks <-chan time.Time
	if !r.opts.Unthrottled {
		ticker := time.NewTicker(time.Second / FrameRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	stepsPerFrame := max(uint64(r.opts.Speed)/FrameRate, 1)

	for {
		if err := r.waitFrame(ctx, ticks); err != nil {
			result.Steps = r.steps
			return result, err
		}

		reason, err := r.frame(stepsPerFrame)
		result.Steps = r.steps
		if errors.Is(err, errStop) {
			result.Reason = reason
			r.logger.Info("Execution stopped",
				log.Stringer("reason", reason),
				log.Hex("pc", r.emu.ProgramCounter()),
				log.Uint64("steps", r.steps),
			)
			return result, nil
		}
		if err != nil {
			r.logger.Error("Execution failed",
				log.Hex("pc", r.emu.ProgramCounter()),
				log.Err(err),
			)
			return result, fmt.Errorf("running program: %w", err)
		}
	}
}

func (r *runner) waitFrame(ctx context.Context, ticks <-chan time.Time) error {
	if ticks == nil {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("running program: %w", err)
		}
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("running program: %w", ctx.Err())
	case <-ticks:
		return nil
	}
}

// frame executes the instructions of one frame, followed by a timer
// decrement and an optional screen refresh.
func (r *runner) frame(steps uint64) (StopReason, error) {
	for range steps {
		if reason, err := r.step(); err != nil {
			return reason, err
		}
	}

	r.emu.DecrementTimers()

	if r.opts.Live {
		if err := r.renderer.Frame(r.screen); err != nil {
			return 0, fmt.Errorf("rendering frame: %w", err)
		}
	}
	return 0, nil
}

// step executes a single instruction after checking the stop conditions.
func (r *runner) step() (StopReason, error) {
	if r.opts.Cycles > 0 && r.steps >= r.opts.Cycles {
		return StopCycleLimit, errStop
	}

	pc := r.emu.ProgramCounter()
	if r.breakpoints.Contains(pc) {
		r.logger.Info("Breakpoint reached", log.Hex("pc", pc))
		return StopBreakpoint, errStop
	}

	ins, err := r.emu.Fetch()
	if err != nil {
		return 0, fmt.Errorf("fetching instruction: %w", err)
	}
	if ins.Op == opcode.Jump && ins.Address == pc {
		return StopHalted, errStop
	}

	if r.opts.Trace {
		r.logger.Debug("Executing",
			log.Hex("pc", pc),
			log.String("instruction", chip8.DisassembleInstruction(ins)),
			log.Hex("i", r.emu.AddressRegister()),
		)
	}

	if err := r.emu.Step(); err != nil {
		return 0, fmt.Errorf("executing step: %w", err)
	}
	r.steps++
	return 0, nil
}
