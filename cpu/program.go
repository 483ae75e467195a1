package cpu

import (
	"iter"

	"github.com/ezrec/quadcpu/quad"
)

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode, and the word within it, at a memory address.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && addr < op.Addr+INSTRUCTION_WORDS {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  addr - op.Addr,
			}
			break
		}
	}

	return
}

// MachineCode returns the instructions of the program.
func (prog *Program) MachineCode() (codes []Code) {
	for _, code := range prog.Codes() {
		codes = append(codes, code)
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []quad.Quad) {
	for _, code := range prog.Codes() {
		bins = append(bins, code[:]...)
	}

	return
}

// Codes iterates over the memory address and instruction of each opcode.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(addr int, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Addr, op.Code) {
				return
			}
		}
	}
}
