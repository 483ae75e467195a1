package cpu

import (
	"github.com/ezrec/quadcpu/quad"
)

// RomInstr decodes the first two instruction words into the count of
// operand words that follow them: countLow + 4*countHigh.
func RomInstr(instr0, instr1 quad.Quad) (countLow, countHigh quad.Quad) {
	class := quad.Decode4(instr0, quad.THREE)
	code := quad.Decode4(instr1, class[CLASS_CODE])

	operands := quad.Max(quad.Max(class[CLASS_ARITH], class[CLASS_LOGIC]),
		quad.Max(quad.Max(code[OP_LOAD.Subop()], code[OP_STORE.Subop()]), code[OP_COPY.Subop()]))

	countHigh = quad.Min(operands, quad.ONE)
	return
}

// ExtraWords returns the number of operand words following an instruction
// that starts with instr0 and instr1.
func ExtraWords(instr0, instr1 quad.Quad) int {
	low, high := RomInstr(instr0, instr1)
	return int(low) + 4*int(high)
}
