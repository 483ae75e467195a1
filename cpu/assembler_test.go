package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/quadcpu/quad"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("64", asm.Equate["MEMORY_SIZE"])
	assert.Equal("3", asm.Equate["HALT_ADDR0"])
	assert.Equal("3", asm.Equate["HALT_ADDR1"])
	assert.Equal("6", asm.Equate["INSTRUCTION_WORDS"])
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"LOAD R0 0",
		"LOAD R1 2",
		"ADD R0 R1",
		"HLT",
	}

	codes, err := Compile(strings.Join(program, "\n"))
	assert.NoError(err)
	assert.Equal([]Code{
		{2, 0, 0, 2, 0, 0},
		{2, 0, 0, 2, 1, 2},
		{0, 0, 0, 0, 0, 1},
		{2, 3, 0, 0, 0, 0},
	}, codes)
}

func TestAssemblerOpcodes(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"-- every mnemonic",
		"add r1, r2",
		"SUB R2 R3 -- trailing comment",
		"Mul R3 R0",
		"div R0 R1",
		"",
		"   min R1 R1",
		"MAX R2,R0",
		"MOD R3 R2",
		"NOT R1",
		"load R2 3",
		"STORE R3 R1",
		"COPY R0 R3",
		"hlt",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{2, 0, []string{"add", "r1", "r2"}, Code{0, 0, 0, 0, 1, 2}},
		{3, 6, []string{"SUB", "R2", "R3"}, Code{0, 1, 0, 0, 2, 3}},
		{4, 12, []string{"Mul", "R3", "R0"}, Code{0, 2, 0, 0, 3, 0}},
		{5, 18, []string{"div", "R0", "R1"}, Code{0, 3, 0, 0, 0, 1}},
		{7, 24, []string{"min", "R1", "R1"}, Code{1, 0, 0, 0, 1, 1}},
		{8, 30, []string{"MAX", "R2", "R0"}, Code{1, 1, 0, 0, 2, 0}},
		{9, 36, []string{"MOD", "R3", "R2"}, Code{1, 2, 0, 0, 3, 2}},
		{10, 42, []string{"NOT", "R1"}, Code{1, 3, 0, 0, 1, 0}},
		{11, 48, []string{"load", "R2", "3"}, Code{2, 0, 0, 2, 2, 3}},
		{12, 54, []string{"STORE", "R3", "R1"}, Code{2, 1, 0, 0, 3, 1}},
		{13, 60, []string{"COPY", "R0", "R3"}, Code{2, 2, 0, 0, 3, 0}},
		{14, 66, []string{"hlt"}, Code{2, 3, 0, 0, 0, 0}},
	}

	assert.Equal(expected, prog.Opcodes)
}

func TestAssemblerEquate(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("ACC", "R1")

	program := []string{
		".equ TWO 2",
		".EQU TMP R3",
		"LOAD ACC TWO",
		"LOAD TMP $(TWO + 1)",
		"LOAD R$(HALT_ADDR0 - 3) $(max(1, 0))",
		"ADD ACC, TMP",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal([]Code{
		{2, 0, 0, 2, 1, 2},
		{2, 0, 0, 2, 3, 3},
		{2, 0, 0, 2, 0, 1},
		{0, 0, 0, 0, 1, 3},
	}, prog.MachineCode())
	assert.Equal("2", asm.Equate["TWO"])
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"JMP R0", ErrUnknownInstruction("JMP")},
		{"FOO", ErrUnknownInstruction("FOO")},
		{"LOAD X0 1", ErrParseRegister("X0")},
		{"LOAD R 1", ErrParseRegister("R")},
		{"LOAD Rx 1", ErrParseRegister("Rx")},
		{"LOAD R4 1", ErrOperandInvalid},
		{"ADD R0 R9", ErrOperandInvalid},
		{"LOAD R0 4", quad.ErrOutOfDomain},
		{"LOAD R0 -1", quad.ErrOutOfDomain},
		{"LOAD R0 two", ErrParseNumber("two")},
		{"LOAD R0", ErrOpcodeValueMissing},
		{"NOT", ErrOpcodeValueMissing},
		{"HLT R0", ErrOpcodeExtraArgs},
		{"ADD R0 R1 R2", ErrOpcodeExtraArgs},
		{".equ A", ErrEquateSyntax},
		{".equ LINENO 3", ErrEquateDuplicate},
		{"LOAD R0 $(\"x\")", ErrParseExpression(`"x"`)},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader("HLT\n" + entry.line))
		assert.Nil(prog, entry.line)
		assert.ErrorIs(err, entry.err, entry.line)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.line) {
			assert.Equal(2, syntax.LineNo, entry.line)
			assert.Equal(entry.line, syntax.Line, entry.line)
		}
	}
}

func TestAssemblerExpressionError(t *testing.T) {
	assert := assert.New(t)

	_, err := Compile("LOAD R0 $(UNDEFINED)")
	assert.Error(err)

	var syntax *ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal(1, syntax.LineNo)
}

func TestAssemblerDisassemble(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"ADD R1 R2",
		"NOT R3",
		"LOAD R2 3",
		"STORE R3 R1",
		"COPY R0 R3",
		"HLT",
	}

	codes, err := Compile(strings.Join(program, "\n"))
	assert.NoError(err)

	for n, code := range codes {
		assert.Equal(program[n], code.String())
	}
}
