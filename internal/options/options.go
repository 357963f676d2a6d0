// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output file for the final screen or listing (default: stdout)"`
}

// Machine contains options that configure the emulated machine.
type Machine struct {
	Seed           uint64 `flag:"seed" usage:"random seed (default: time based)"`
	HasSeed        bool   // set if the seed flag was passed
	MemoryFill     uint   `flag:"fill" usage:"value that all memory bytes are initialized with"`
	ProgramCounter uint   `flag:"pc" usage:"program load and start address" default:"0x200"`
	NoFont         bool   `flag:"nofont" usage:"do not load the built-in hexadecimal font"`
}

// Run contains options that control the execution loop.
type Run struct {
	Cycles      uint64   `flag:"cycles" usage:"maximum number of instructions to execute, 0 for unlimited"`
	Speed       uint     `flag:"speed" usage:"instructions executed per second, at least 60" default:"600"`
	Unthrottled bool     `flag:"unthrottled" usage:"execute instructions without waiting for the 60 Hz ticks"`
	Trace       bool     `flag:"trace" usage:"log every executed instruction at debug level"`
	Breakpoints []uint16 `flag:"break" usage:"comma separated hex addresses to stop execution at"`
	Live        bool     `flag:"live" usage:"render the screen after every frame"`
}

// Flags contains behavior options.
type Flags struct {
	Disassemble bool `flag:"disasm" usage:"write a disassembly listing of the ROM instead of running it"`
	Demo        bool `flag:"demo" usage:"run the built-in demo program"`
	Debug       bool `flag:"debug" usage:"enable debug logging"`
	Quiet       bool `flag:"q" usage:"quiet mode"`
	Version     bool `flag:"version" usage:"print the version and exit"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Machine
	Run
	Flags
}
