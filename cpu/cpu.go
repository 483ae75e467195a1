// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/quadcpu/memory"
	"github.com/ezrec/quadcpu/quad"
)

var _cpu_defines = map[string]string{
	"HALT_ADDR0":        HALT_ADDR0.String(),
	"HALT_ADDR1":        HALT_ADDR1.String(),
	"INSTRUCTION_WORDS": fmt.Sprintf("%v", INSTRUCTION_WORDS),
	"REGISTER_COUNT":    fmt.Sprintf("%v", REGISTER_COUNT),
}

// Cpu is the simulation context for the quaternary CPU.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   *memory.Memory // Program memory.
	Register *RegisterFile  // General registers.
	Flag     *RegisterFile  // Flags, including the halt flag.
	Counter  Counter3       // Program counter.

	Ticks int // Instructions executed.
}

// NewCpu creates a new CPU attached to a memory.
func NewCpu(mem *memory.Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Memory:   mem,
		Register: &RegisterFile{},
		Flag:     &RegisterFile{},
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	addr0, addr1, addr2 := cpu.Counter.Run(quad.ZERO, quad.ZERO, quad.ZERO)
	text = fmt.Sprintf("%5s: %02d (%v.%v.%v)\n", "pc", memory.Join(addr0, addr1, addr2), addr2, addr1, addr0)

	for _, bank := range []struct {
		name string
		rf   *RegisterFile
	}{{"reg", cpu.Register}, {"flag", cpu.Flag}} {
		cells := bank.rf.Dump()
		for row := range quad.STATES {
			line := cells[row*quad.STATES : (row+1)*quad.STATES]
			words := make([]string, len(line))
			for n, q := range line {
				words[n] = q.String()
			}
			text += fmt.Sprintf("%5s: %v\n", fmt.Sprintf("%v.%v", bank.name, row), strings.Join(words, " "))
		}
	}

	return
}

// Reset the CPU state.
// - Clears the memory, registers, and flags.
// - Zeros the program counter and statistics.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Register.Reset()
	cpu.Flag.Reset()
	cpu.Counter.Reset()
	cpu.Ticks = 0
}

// Halted returns true once the halt flag is set.
func (cpu *Cpu) Halted() bool {
	return cpu.Flag.Get(HALT_ADDR0, HALT_ADDR1) != quad.ZERO
}

// Fetch reads the next instruction at the program counter, advancing the
// counter once per word read. Words not present in a short instruction are
// zero.
func (cpu *Cpu) Fetch() (code Code) {
	addr0, addr1, addr2 := cpu.Counter.Run(quad.ZERO, quad.ZERO, quad.ZERO)

	next := func() (value quad.Quad) {
		value = cpu.Memory.Run(addr0, addr1, addr2, quad.ZERO, quad.ZERO)
		addr0, addr1, addr2 = cpu.Counter.Run(quad.ONE, quad.ZERO, quad.ZERO)
		return
	}

	for n := range FETCH_WORDS {
		code[n] = next()
	}

	for n := range ExtraWords(code[0], code[1]) {
		value := next()
		if FETCH_WORDS+n < len(code) {
			code[FETCH_WORDS+n] = value
		}
	}

	return
}

// operand resolves an operand by its kind: a register, a flag, or the
// immediate value itself.
func (cpu *Cpu) operand(rnf, value quad.Quad) quad.Quad {
	reg := quad.Min(quad.Eq(rnf, quad.Quad(RNF_REG)), cpu.Register.Get(value, quad.ZERO))
	flag := quad.Min(quad.Eq(rnf, quad.Quad(RNF_FLAG)), cpu.Flag.Get(value, quad.ZERO))
	imm := quad.Min(quad.Eq(rnf, quad.Quad(RNF_IMM)), value)

	return quad.Max(quad.Max(reg, flag), imm)
}

// Execute executes a single instruction. Once the halt flag is set, no
// register or flag is modified.
func (cpu *Cpu) Execute(code Code) {
	instr0, instr1, rnf0, rnf1, a, b := code[0], code[1], code[2], code[3], code[4], code[5]

	live := quad.Eq(cpu.Flag.Get(HALT_ADDR0, HALT_ADDR1), quad.ZERO)
	class := quad.Decode4(instr0, live)

	v1 := cpu.operand(rnf0, a)
	v2 := cpu.operand(rnf1, b)

	_, value := alu(v1, v2, instr0, instr1, cpu.Flag, a, live)
	cpu.Register.Run(a, quad.ZERO, quad.Max(class[CLASS_ARITH], class[CLASS_LOGIC]), value)

	op := quad.Decode4(instr1, class[CLASS_CODE])

	// LOAD and STORE both place V2 in register A.
	cpu.Register.Run(a, quad.ZERO, quad.Max(op[OP_LOAD.Subop()], op[OP_STORE.Subop()]), v2)
	cpu.Register.Run(b, quad.ZERO, op[OP_COPY.Subop()], v1)
	cpu.Flag.Run(HALT_ADDR0, HALT_ADDR1, op[OP_HLT.Subop()], quad.THREE)

	// CLASS_FUNC decodes to no action.
}

// Tick fetches and executes a single instruction.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted() {
		err = ErrHalted
		return
	}

	pc := cpu.Counter.Linear()
	code := cpu.Fetch()

	if cpu.Verbose {
		log.Printf("%02d: %v", pc, code)
	}

	cpu.Execute(code)
	cpu.Ticks += 1

	return
}
