// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/quadcpu/memory"
	"github.com/ezrec/quadcpu/quad"
)

// COMMENT starts a trailing comment.
const COMMENT = "--"

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":      "0",
	"MEMORY_SIZE": fmt.Sprintf("%v", memory.SIZE),
}

// opMap maps mnemonics to operations. The function class has no mnemonics.
var opMap = map[string]CodeOp{
	"ADD":   OP_ADD,
	"SUB":   OP_SUB,
	"MUL":   OP_MUL,
	"DIV":   OP_DIV,
	"MIN":   OP_MIN,
	"MAX":   OP_MAX,
	"MOD":   OP_MOD,
	"NOT":   OP_NOT,
	"LOAD":  OP_LOAD,
	"STORE": OP_STORE,
	"COPY":  OP_COPY,
	"HLT":   OP_HLT,
}

// Assembler is a single pass assembler for the quaternary CPU.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Compile assembles program text into machine code.
func Compile(text string) (codes []Code, err error) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(text))
	if err != nil {
		return
	}

	codes = prog.MachineCode()
	return
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// immediate parses an immediate quad.
func (asm *Assembler) immediate(word string) (value quad.Quad, err error) {
	v, err := asm.valueOf(word)
	if err != nil {
		return
	}

	return quad.FromInt(v)
}

// register parses a register name, R0 to R3.
func (asm *Assembler) register(word string) (value quad.Quad, err error) {
	if len(word) < 2 || (word[0] != 'R' && word[0] != 'r') {
		err = ErrParseRegister(word)
		return
	}

	index, err := strconv.Atoi(word[1:])
	if err != nil {
		err = ErrParseRegister(word)
		return
	}

	value, err = quad.FromInt(index)
	if err != nil {
		err = ErrOperandInvalid
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v int
		v, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine expands a single line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.EqualFold(words[0], ".equ") {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// currentAddr gets the memory address of the next opcode.
func (asm *Assembler) currentAddr() int {
	return len(asm.Opcode) * INSTRUCTION_WORDS
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, _cpu_defines)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ = strings.Cut(text, COMMENT)
		line = strings.TrimSpace(line)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// operands checks the argument count of an instruction.
func operands(args []string, count int) (err error) {
	switch {
	case len(args) < count:
		err = ErrOpcodeValueMissing
	case len(args) > count:
		err = ErrOpcodeExtraArgs
	}
	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	name := strings.ToUpper(words[0])
	op, ok := opMap[name]
	if !ok {
		err = ErrUnknownInstruction(name)
		return
	}

	args := words[1:]

	var code Code
	switch op {
	case OP_HLT:
		// HLT
		err = operands(args, 0)
		if err != nil {
			return
		}
		code = MakeCode(op, RNF_REG, RNF_REG, quad.ZERO, quad.ZERO)
	case OP_LOAD:
		// LOAD R(A) IMM
		err = operands(args, 2)
		if err != nil {
			return
		}
		var a, b quad.Quad
		a, err = asm.register(args[0])
		if err != nil {
			return
		}
		b, err = asm.immediate(args[1])
		if err != nil {
			return
		}
		code = MakeCode(op, RNF_REG, RNF_IMM, a, b)
	case OP_COPY:
		// COPY R(DST) R(SRC) => R(B) = R(A)
		err = operands(args, 2)
		if err != nil {
			return
		}
		var dst, src quad.Quad
		dst, err = asm.register(args[0])
		if err != nil {
			return
		}
		src, err = asm.register(args[1])
		if err != nil {
			return
		}
		code = MakeCode(op, RNF_REG, RNF_REG, src, dst)
	case OP_NOT:
		// NOT R(A)
		err = operands(args, 1)
		if err != nil {
			return
		}
		var a quad.Quad
		a, err = asm.register(args[0])
		if err != nil {
			return
		}
		code = MakeCode(op, RNF_REG, RNF_REG, a, quad.ZERO)
	default:
		// OP R(DST) R(SRC) => R(A) = R(A) OP R(B)
		err = operands(args, 2)
		if err != nil {
			return
		}
		var a, b quad.Quad
		a, err = asm.register(args[0])
		if err != nil {
			return
		}
		b, err = asm.register(args[1])
		if err != nil {
			return
		}
		code = MakeCode(op, RNF_REG, RNF_REG, a, b)
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo: lineno,
		Addr:   asm.currentAddr(),
		Words:  words,
		Code:   code,
	})

	return
}
