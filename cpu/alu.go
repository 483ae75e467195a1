package cpu

import (
	"github.com/ezrec/quadcpu/quad"
)

// HalfAdder returns the carry and sum of a + b.
func HalfAdder(a, b quad.Quad) (carry, sum quad.Quad) {
	carry = quad.Min(quad.ONE, quad.Max(quad.Com(a, quad.Not(b)), quad.Com(b, quad.Not(a))))
	sum = quad.Mod(a, b)
	return
}

// HalfSubtractor returns the borrow and difference of a - b.
func HalfSubtractor(a, b quad.Quad) (borrow, diff quad.Quad) {
	borrow = quad.Min(quad.ONE, quad.Com(b, a))
	diff = quad.Mod(quad.Mod(a, quad.Not(b)), quad.ONE)
	return
}

// HalfMultiplier returns the carry and product of a * b.
func HalfMultiplier(a, b quad.Quad) (carry, product quad.Quad) {
	high_a := quad.Min(quad.ONE, quad.Com(a, quad.ONE))
	high_b := quad.Min(quad.ONE, quad.Com(b, quad.ONE))
	carry = quad.Min(high_a, high_b)

	double := quad.Mod(a, a)
	partial := [4]quad.Quad{quad.ZERO, a, double, quad.Mod(double, a)}
	product = quad.Select4(b, partial)
	return
}

// HalfDivider returns the remainder and quotient of a / b. The multiples of
// b wrap modulo 4, so the quotient is the greatest digit whose wrapped
// multiple does not exceed a.
func HalfDivider(a, b quad.Quad) (remainder, quotient quad.Quad) {
	double := quad.Mod(b, b)
	multiple := [4]quad.Quad{quad.ZERO, b, double, quad.Mod(double, b)}

	for k := quad.ONE; k <= quad.THREE; k++ {
		fits := quad.Not(quad.Min(quad.ONE, quad.Com(multiple[k], a)))
		quotient = quad.Max(quotient, quad.Min(quad.Eq(fits, quad.THREE), k))
	}

	_, remainder = HalfSubtractor(a, quad.Select4(quotient, multiple))
	return
}

// Alu runs every arithmetic and logic unit on inA and inB and selects one
// result by instr0 and instr1. For arithmetic operations the unit's flag
// is also written to flags at (dest, 0).
func Alu(inA, inB, instr0, instr1 quad.Quad, flags *RegisterFile, dest quad.Quad) (flag, result quad.Quad) {
	return alu(inA, inB, instr0, instr1, flags, dest, quad.THREE)
}

// alu is Alu with every decoded line gated by enable.
func alu(inA, inB, instr0, instr1 quad.Quad, flags *RegisterFile, dest, enable quad.Quad) (flag, result quad.Quad) {
	class := quad.Decode4(instr0, enable)
	arith := quad.Decode4(instr1, class[CLASS_ARITH])
	logic := quad.Decode4(instr1, class[CLASS_LOGIC])

	carry, sum := HalfAdder(inA, inB)
	borrow, diff := HalfSubtractor(inA, inB)
	overflow, product := HalfMultiplier(inA, inB)
	remainder, quotient := HalfDivider(inA, inB)

	flags_out := []quad.Quad{carry, borrow, overflow, remainder}
	arith_out := []quad.Quad{sum, diff, product, quotient}
	logic_out := []quad.Quad{
		quad.Min(inA, inB),
		quad.Max(inA, inB),
		quad.Mod(inA, inB),
		quad.Not(quad.Max(inA, inB)),
	}

	flag = quad.Multiplex(flags_out, arith[:])
	flags.Run(dest, quad.ZERO, class[CLASS_ARITH], flag)

	result = quad.Max(quad.Multiplex(arith_out, arith[:]), quad.Multiplex(logic_out, logic[:]))
	return
}
