// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/quadcpu/cpu"
	"github.com/ezrec/quadcpu/internal"
	"github.com/ezrec/quadcpu/io"
	"github.com/ezrec/quadcpu/memory"
	"github.com/ezrec/quadcpu/quad"
)

var _emulator_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", memory.SIZE),
}

// Emulator state. CPU + memory + program ROM.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	MaxSteps int          // If non-zero, the most instructions Run will execute.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Rom io.Rom // Program image.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(&memory.Memory{}),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the machine, and load the program into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = false

	emu.Rom.Data = emu.Program.Binary()

	emu.Cpu.Reset()

	err = emu.LoadImage(&emu.Rom)
	if err != nil {
		return
	}

	emu.Cpu.Verbose = emu.Verbose

	return
}

// LoadImage copies a quad image into memory, starting at address zero.
func (emu *Emulator) LoadImage(ch io.Channel) (err error) {
	ch.Rewind()

	addr := 0
	for value := range ch.Receive() {
		if addr >= memory.SIZE {
			err = ErrProgramSize
			return
		}
		if !value.Valid() {
			err = quad.ErrOutOfDomain
			return
		}
		emu.Cpu.Memory.Write(addr, value)
		addr++
	}

	err = io.Err(ch)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d quads", addr)
	}

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Counter.Linear()
}

// Code returns the program listing's instruction at the program counter.
func (emu *Emulator) Code() cpu.Code {
	pc := emu.Pc()
	for addr, code := range emu.Program.Codes() {
		if addr == pc {
			return code
		}
	}

	return cpu.Code{}
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	debug := emu.Program.Debug(emu.Pc())
	if debug.Opcode == nil {
		return 0
	}

	return debug.LineNo
}

// runtime wraps an error with the current location.
func (emu *Emulator) runtime(err error) error {
	return &ErrRuntime{Addr: emu.Pc(), LineNo: emu.LineNo(), Err: err}
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted() {
		done = true
		return
	}

	addr, lineno := emu.Pc(), emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Addr: addr, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted()

	return
}

// Run ticks the emulator until the machine halts.
// Fails with ErrStepLimit if MaxSteps instructions run without a halt.
func (emu *Emulator) Run() (err error) {
	for steps := 0; ; steps++ {
		if emu.MaxSteps > 0 && steps >= emu.MaxSteps {
			err = emu.runtime(ErrStepLimit)
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}

// Dump sends the 16 registers, then the 16 flags, to a channel.
func (emu *Emulator) Dump(ch io.Channel) (err error) {
	registers := emu.Cpu.Register.Dump()
	flags := emu.Cpu.Flag.Dump()

	err = io.SendAll(ch, internal.IterSeqConcat(
		slices.Values(registers[:]),
		slices.Values(flags[:]),
	))

	return
}
