// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// DefaultSpeed is the default number of instructions executed per second.
const DefaultSpeed = 600

// MinSpeed is the lowest speed, one instruction per 60 Hz timer frame.
const MinSpeed = 60

const (
	maxAddress   = 0xFFF
	maxFillValue = 0xFF
)

// ParseFlags parses the command line arguments of the process.
func ParseFlags() (options.Program, error) {
	return Parse(os.Args[0], os.Args[1:])
}

// Parse parses the given command line arguments and returns the program options.
func Parse(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	var breakpoints string
	readOptionFlags(flags, &opts, &breakpoints)

	err := flags.Parse(arguments)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, &UsageError{flags: flags}
		}
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if opts.Version {
		return opts, nil
	}

	args := flags.Args()
	if len(args) == 0 && opts.Input == "" && !opts.Demo {
		return opts, &UsageError{flags: flags}
	}
	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}
	if opts.Input == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	flags.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.HasSeed = true
		}
	})

	opts.Breakpoints, err = parseAddresses(breakpoints)
	if err != nil {
		return opts, fmt.Errorf("parsing breakpoints: %w", err)
	}

	if err := validateOptions(opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text including all flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks the value ranges of the numeric options.
func validateOptions(opts options.Program) error {
	if opts.ProgramCounter > maxAddress {
		return fmt.Errorf("program counter %#x exceeds the address range", opts.ProgramCounter)
	}
	if opts.MemoryFill > maxFillValue {
		return fmt.Errorf("memory fill value %#x does not fit into a byte", opts.MemoryFill)
	}
	if opts.Speed < MinSpeed {
		return fmt.Errorf("speed %d is below the minimum of %d instructions per second", opts.Speed, MinSpeed)
	}
	return nil
}

// parseAddresses parses a comma separated list of hexadecimal addresses.
// The addresses can optionally be prefixed by $ or 0x.
func parseAddresses(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	addresses := make([]uint16, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		field = strings.TrimPrefix(field, "$")
		field = strings.TrimPrefix(strings.ToLower(field), "0x")

		address, err := strconv.ParseUint(field, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid address '%s': %w", field, err)
		}
		if address > maxAddress {
			return nil, fmt.Errorf("address %#x exceeds the address range", address)
		}
		addresses = append(addresses, uint16(address))
	}
	return addresses, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, breakpoints *string) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file for the final screen or the listing, printed on console if no name given")

	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, time based if not set")
	flags.UintVar(&opts.MemoryFill, "fill", 0, "value that all memory bytes are initialized with")
	flags.UintVar(&opts.ProgramCounter, "pc", 0x200, "address that the program is loaded to and started at")
	flags.BoolVar(&opts.NoFont, "nofont", false, "do not load the built-in hexadecimal font into memory")

	flags.Uint64Var(&opts.Cycles, "cycles", 0, "maximum number of instructions to execute, 0 for unlimited")
	flags.UintVar(&opts.Speed, "speed", DefaultSpeed, "number of instructions executed per second, at least 60")
	flags.BoolVar(&opts.Unthrottled, "unthrottled", false, "execute instructions as fast as possible")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.StringVar(breakpoints, "break", "", "comma separated list of hex addresses to stop execution at, for example 200,2A4")
	flags.BoolVar(&opts.Live, "live", false, "render the screen after every frame")

	flags.BoolVar(&opts.Disassemble, "disasm", false, "output a disassembly listing of the ROM instead of running it")
	flags.BoolVar(&opts.Demo, "demo", false, "run the built-in demo program and print the screen")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print the version and exit")
}
