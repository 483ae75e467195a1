package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/quadcpu/memory"
	"github.com/ezrec/quadcpu/quad"
)

func loadCpu(codes ...Code) (cpu *Cpu) {
	cpu = NewCpu(&memory.Memory{})
	cpu.Reset()

	for n, code := range codes {
		for w, q := range code {
			cpu.Memory.Write(n*INSTRUCTION_WORDS+w, q)
		}
	}

	return
}

func runCpu(t *testing.T, cpu *Cpu) {
	for range 64 {
		err := cpu.Tick()
		if err == ErrHalted {
			return
		}
		assert.NoError(t, err)
	}

	t.Fatal("cpu did not halt")
}

func TestCpuProgram(t *testing.T) {
	assert := assert.New(t)

	cpu := loadCpu(
		Code{2, 0, 0, 2, 0, 0},
		Code{2, 0, 0, 2, 1, 2},
		Code{0, 0, 0, 0, 0, 1},
		Code{2, 3, 0, 0, 0, 0},
	)

	runCpu(t, cpu)

	assert.True(cpu.Halted())
	assert.Equal(4, cpu.Ticks)
	assert.Equal(quad.TWO, cpu.Register.Get(0, 0))
	assert.Equal(quad.TWO, cpu.Register.Get(1, 0))
	assert.Equal(quad.THREE, cpu.Flag.Get(3, 3))
	assert.Equal(quad.ZERO, cpu.Flag.Get(0, 0)) // no carry

	// HLT is two words long.
	assert.Equal(3*INSTRUCTION_WORDS+FETCH_WORDS, cpu.Counter.Linear())

	assert.ErrorIs(cpu.Tick(), ErrHalted)
	assert.Equal(4, cpu.Ticks)
}

func TestCpuFetch(t *testing.T) {
	assert := assert.New(t)

	cpu := loadCpu()
	for n, q := range []quad.Quad{
		2, 3, // HLT
		3, 1, // JMP
		1, 2, 0, 0, 3, 1, // MOD R3 R1
		2, 3,
	} {
		cpu.Memory.Write(n, q)
	}

	assert.Equal(Code{2, 3, 0, 0, 0, 0}, cpu.Fetch())
	assert.Equal(2, cpu.Counter.Linear())
	assert.Equal(Code{3, 1, 0, 0, 0, 0}, cpu.Fetch())
	assert.Equal(4, cpu.Counter.Linear())
	assert.Equal(Code{1, 2, 0, 0, 3, 1}, cpu.Fetch())
	assert.Equal(10, cpu.Counter.Linear())
	assert.Equal(Code{2, 3, 0, 0, 0, 0}, cpu.Fetch())
}

func TestCpuExecute(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		code   Code
		reg    [4]quad.Quad
		flag   [4]quad.Quad
		halted bool
	}){
		{"load", MakeCode(OP_LOAD, RNF_REG, RNF_IMM, 3, 1), [4]quad.Quad{3, 2, 1, 1}, [4]quad.Quad{2, 0, 0, 0}, false},
		{"store", MakeCode(OP_STORE, RNF_REG, RNF_REG, 0, 1), [4]quad.Quad{2, 2, 1, 0}, [4]quad.Quad{2, 0, 0, 0}, false},
		{"copy", MakeCode(OP_COPY, RNF_REG, RNF_REG, 0, 3), [4]quad.Quad{3, 2, 1, 3}, [4]quad.Quad{2, 0, 0, 0}, false},
		{"add", MakeCode(OP_ADD, RNF_REG, RNF_REG, 0, 1), [4]quad.Quad{1, 2, 1, 0}, [4]quad.Quad{1, 0, 0, 0}, false},
		{"sub", MakeCode(OP_SUB, RNF_REG, RNF_REG, 2, 1), [4]quad.Quad{3, 2, 3, 0}, [4]quad.Quad{2, 0, 1, 0}, false},
		{"mul_imm", MakeCode(OP_MUL, RNF_REG, RNF_IMM, 1, 3), [4]quad.Quad{3, 2, 1, 0}, [4]quad.Quad{2, 1, 0, 0}, false},
		{"div_flag", MakeCode(OP_DIV, RNF_REG, RNF_FLAG, 0, 0), [4]quad.Quad{3, 2, 1, 0}, [4]quad.Quad{1, 0, 0, 0}, false},
		{"min", MakeCode(OP_MIN, RNF_REG, RNF_REG, 0, 2), [4]quad.Quad{1, 2, 1, 0}, [4]quad.Quad{2, 0, 0, 0}, false},
		{"max", MakeCode(OP_MAX, RNF_IMM, RNF_REG, 3, 1), [4]quad.Quad{3, 2, 1, 3}, [4]quad.Quad{2, 0, 0, 0}, false},
		{"mod", MakeCode(OP_MOD, RNF_REG, RNF_REG, 1, 1), [4]quad.Quad{3, 0, 1, 0}, [4]quad.Quad{2, 0, 0, 0}, false},
		{"not", MakeCode(OP_NOT, RNF_REG, RNF_REG, 2, 0), [4]quad.Quad{3, 2, 0, 0}, [4]quad.Quad{2, 0, 0, 0}, false},
		{"call", MakeCode(OP_CALL, RNF_REG, RNF_REG, 0, 1), [4]quad.Quad{3, 2, 1, 0}, [4]quad.Quad{2, 0, 0, 0}, false},
		{"jcmp", MakeCode(OP_JCMP, RNF_IMM, RNF_IMM, 3, 3), [4]quad.Quad{3, 2, 1, 0}, [4]quad.Quad{2, 0, 0, 0}, false},
		{"hlt", MakeCode(OP_HLT, RNF_REG, RNF_REG, 0, 0), [4]quad.Quad{3, 2, 1, 0}, [4]quad.Quad{2, 0, 0, 0}, true},
	}

	for _, entry := range table {
		cpu := loadCpu()
		cpu.Register.Run(0, 0, 3, 3)
		cpu.Register.Run(1, 0, 3, 2)
		cpu.Register.Run(2, 0, 3, 1)
		cpu.Flag.Run(0, 0, 3, 2)

		cpu.Execute(entry.code)

		var reg, flag [4]quad.Quad
		for n := range reg {
			reg[n] = cpu.Register.Get(quad.Quad(n), 0)
			flag[n] = cpu.Flag.Get(quad.Quad(n), 0)
		}
		assert.Equal(entry.reg, reg, entry.name)
		assert.Equal(entry.flag, flag, entry.name)
		assert.Equal(entry.halted, cpu.Halted(), entry.name)
	}
}

func TestCpuHaltIdempotent(t *testing.T) {
	assert := assert.New(t)

	cpu := loadCpu()
	cpu.Register.Run(1, 0, 3, 2)
	cpu.Execute(MakeCode(OP_HLT, RNF_REG, RNF_REG, 0, 0))
	assert.True(cpu.Halted())

	regs := cpu.Register.Dump()
	flags := cpu.Flag.Dump()

	for op := OP_ADD; op <= OP_RET; op++ {
		for rnf := RNF_REG; rnf <= RNF_IMM; rnf++ {
			cpu.Execute(MakeCode(op, RNF_REG, rnf, 1, 3))
			cpu.Execute(MakeCode(op, rnf, RNF_REG, 3, 1))
			assert.Equal(regs, cpu.Register.Dump(), op.String())
			assert.Equal(flags, cpu.Flag.Dump(), op.String())
		}
	}
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := loadCpu()
	cpu.Register.Run(1, 0, 3, 2)
	cpu.Flag.Run(3, 3, 3, 3)
	cpu.Counter.Run(2, 1, 0)

	text := cpu.String()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(9, len(lines))
	assert.Equal("   pc: 06 (0.1.2)", lines[0])
	assert.Equal("reg.0: 0 2 0 0", lines[1])
	assert.Equal("flag.3: 0 0 0 3", lines[8])

	defines := map[string]string{}
	for key, value := range cpu.Defines() {
		defines[key] = value
	}
	assert.Equal("3", defines["HALT_ADDR0"])
	assert.Equal("6", defines["INSTRUCTION_WORDS"])
}
