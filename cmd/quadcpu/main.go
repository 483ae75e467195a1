// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	goio "io"
	"log"
	"os"
	"slices"

	"github.com/ezrec/quadcpu/cpu"
	"github.com/ezrec/quadcpu/emulator"
	"github.com/ezrec/quadcpu/io"
	"github.com/ezrec/quadcpu/quad"
	"github.com/ezrec/quadcpu/translate"
)

// dump prints the registers and flags of the machine, one row per line.
func dump(emu *emulator.Emulator, w goio.Writer) (err error) {
	temp := &io.Temporary{Capacity: 2 * cpu.REGISTER_COUNT}
	temp.Rewind()

	err = emu.Dump(temp)
	if err != nil {
		return
	}

	tape := &io.Tape{Output: w, Width: quad.STATES}
	n := 0
	for value := range temp.Receive() {
		switch n {
		case 0:
			_, err = translate.Fprintf(w, "VAR_REG:\n")
		case cpu.REGISTER_COUNT:
			_, err = translate.Fprintf(w, "FLAG_REG:\n")
		}
		if err != nil {
			return
		}

		err = tape.Send(value)
		if err != nil {
			return
		}
		n++
	}

	err = tape.Flush()

	return
}

func main() {
	var compile string
	var image string
	var output string
	var steps int
	var save bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to compile")
	flag.StringVar(&image, "i", "", "Quad image to load ('-' for stdin)")
	flag.StringVar(&output, "o", "-", "Output")
	flag.IntVar(&steps, "n", 0, "Maximum instructions to execute (0 for no limit)")
	flag.BoolVar(&save, "s", false, "Print machine code, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) != 0 && len(image) != 0 {
		log.Fatalf("%v: -c and -i are exclusive", os.Args[0])
	}

	prog := &cpu.Program{}

	// Compile a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	var ouf goio.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	if save {
		tape := &io.Tape{Output: ouf, Width: cpu.INSTRUCTION_WORDS}
		err := io.SendAll(tape, slices.Values(prog.Binary()))
		if err == nil {
			err = tape.Flush()
		}
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.MaxSteps = steps

	err := emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if len(image) != 0 {
		tape := &io.Tape{Input: os.Stdin}
		if image != "-" {
			inf, err := os.Open(image)
			if err != nil {
				log.Fatalf("%v: %v", image, err)
			}
			defer inf.Close()
			tape.Input = inf
		}

		err = emu.LoadImage(tape)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	err = dump(emu, ouf)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
