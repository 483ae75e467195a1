package cpu

import (
	"github.com/ezrec/quadcpu/quad"
)

// RegisterFile is a 4x4 grid of storage cells. The machine has two: the
// general registers and the flags.
type RegisterFile struct {
	Cell [REGISTER_COUNT]quad.Cell
}

// Run writes value to the cell at (addr0, addr1) when enable is non-zero,
// and returns the contents of that cell.
func (rf *RegisterFile) Run(addr0, addr1, enable, value quad.Quad) quad.Quad {
	sel := quad.Decode16(addr0, addr1, quad.THREE)

	var out [REGISTER_COUNT]quad.Quad
	for n := range rf.Cell {
		out[n] = rf.Cell[n].Run(value, quad.Min(sel[n], enable))
	}

	return quad.Multiplex(out[:], sel[:])
}

// Get reads the cell at (addr0, addr1).
func (rf *RegisterFile) Get(addr0, addr1 quad.Quad) quad.Quad {
	return rf.Run(addr0, addr1, quad.ZERO, quad.ZERO)
}

// Dump returns all cells row by row, where addr1 is the row and addr0 the
// column.
func (rf *RegisterFile) Dump() (cells [REGISTER_COUNT]quad.Quad) {
	for row := range quad.Quad(quad.STATES) {
		for col := range quad.Quad(quad.STATES) {
			cells[int(row)*quad.STATES+int(col)] = rf.Get(col, row)
		}
	}

	return
}

// Reset zeroes all cells.
func (rf *RegisterFile) Reset() {
	clear(rf.Cell[:])
}
