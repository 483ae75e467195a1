// Package cpu implements the quaternary microprocessor and its assembler.
//
// The CPU consists of a three digit program counter, two 16 cell register
// files (general registers and flags), and an ALU built from half adder,
// subtractor, multiplier and divider units. Instructions are fetched from
// the 64 cell memory one quad at a time; the instruction-length resolver
// decides how many operand words follow the first two.
//
// The assembler translates a small mnemonic language into 6 quad machine
// instructions, supporting equates and compile-time expression evaluation.
package cpu
