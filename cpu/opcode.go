package cpu

import (
	"fmt"
	"strings"

	"github.com/ezrec/quadcpu/quad"
)

// CodeClass is the type of opcode class.
type CodeClass int

//go:generate go tool stringer -linecomment -type=CodeClass
const (
	CLASS_ARITH = CodeClass(0) // arith
	CLASS_LOGIC = CodeClass(1) // logic
	CLASS_CODE  = CodeClass(2) // code
	CLASS_FUNC  = CodeClass(3) // func
)

// CodeOp is a class and sub-operation pair, encoded as class*4 + subop.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_ADD   = CodeOp(0x0) // ADD
	OP_SUB   = CodeOp(0x1) // SUB
	OP_MUL   = CodeOp(0x2) // MUL
	OP_DIV   = CodeOp(0x3) // DIV
	OP_MIN   = CodeOp(0x4) // MIN
	OP_MAX   = CodeOp(0x5) // MAX
	OP_MOD   = CodeOp(0x6) // MOD
	OP_NOT   = CodeOp(0x7) // NOT
	OP_LOAD  = CodeOp(0x8) // LOAD
	OP_STORE = CodeOp(0x9) // STORE
	OP_COPY  = CodeOp(0xa) // COPY
	OP_HLT   = CodeOp(0xb) // HLT
	OP_CALL  = CodeOp(0xc) // CALL
	OP_JMP   = CodeOp(0xd) // JMP
	OP_JCMP  = CodeOp(0xe) // JCMP
	OP_RET   = CodeOp(0xf) // RET
)

// Class returns the class digit of the operation.
func (op CodeOp) Class() quad.Quad {
	return quad.Quad((op >> 2) & 0x3)
}

// Subop returns the sub-operation digit of the operation.
func (op CodeOp) Subop() quad.Quad {
	return quad.Quad(op & 0x3)
}

// CodeRnf selects where an operand value comes from.
type CodeRnf int

//go:generate go tool stringer -linecomment -type=CodeRnf
const (
	RNF_REG  = CodeRnf(0) // reg
	RNF_FLAG = CodeRnf(1) // flag
	RNF_IMM  = CodeRnf(2) // imm
)

// Opcode represents a line of assembled code with its source location.
type Opcode struct {
	LineNo int
	Addr   int
	Words  []string
	Code   Code
}

// Code is a single machine instruction:
// [class, subop, rnf0, rnf1, operand A, operand B]
type Code [INSTRUCTION_WORDS]quad.Quad

// MakeCode creates an instruction.
func MakeCode(op CodeOp, rnf0, rnf1 CodeRnf, a, b quad.Quad) Code {
	return Code{op.Class(), op.Subop(), quad.Quad(rnf0), quad.Quad(rnf1), a, b}
}

// Class returns the operation class.
func (code Code) Class() CodeClass {
	return CodeClass(code[0])
}

// Op returns the combined class and sub-operation.
func (code Code) Op() CodeOp {
	return CodeOp(code[0]&0x3)<<2 | CodeOp(code[1]&0x3)
}

// Rnf returns the operand kinds of A and B.
func (code Code) Rnf() (rnf0, rnf1 CodeRnf) {
	return CodeRnf(code[2]), CodeRnf(code[3])
}

// Operands returns operands A and B.
func (code Code) Operands() (a, b quad.Quad) {
	return code[4], code[5]
}

// Valid returns true if every quad of the instruction is in domain.
func (code Code) Valid() bool {
	for _, q := range code {
		if !q.Valid() {
			return false
		}
	}
	return true
}

// operandString formats an operand by kind.
func operandString(rnf CodeRnf, value quad.Quad) string {
	switch rnf {
	case RNF_REG:
		return fmt.Sprintf("R%v", value)
	case RNF_FLAG:
		return fmt.Sprintf("F%v", value)
	case RNF_IMM:
		return value.String()
	}

	return fmt.Sprintf("%v:%v", rnf, value)
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	if !code.Valid() {
		return fmt.Sprintf("?%v", [INSTRUCTION_WORDS]quad.Quad(code))
	}

	op := code.Op()
	rnf0, rnf1 := code.Rnf()
	a, b := code.Operands()

	words := []string{op.String()}
	switch op {
	case OP_HLT, OP_CALL, OP_JMP, OP_JCMP, OP_RET:
		// no operands
	case OP_NOT:
		words = append(words, operandString(rnf0, a))
	case OP_COPY:
		words = append(words, operandString(rnf1, b), operandString(rnf0, a))
	default:
		words = append(words, operandString(rnf0, a), operandString(rnf1, b))
	}

	return strings.Join(words, " ")
}
