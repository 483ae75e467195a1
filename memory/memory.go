// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the 64 quad memory of the machine as three
// nested levels of four-way fan-out over storage cells.
package memory

import (
	"github.com/ezrec/quadcpu/quad"
)

const (
	WAYS = 4                  // Fan-out of every level.
	SIZE = WAYS * WAYS * WAYS // Total number of cells.
)

// Level1 is the base level: four storage cells.
type Level1 struct {
	Cell [WAYS]quad.Cell
}

// Run writes value to the cell addressed by addr0 when enable is non-zero,
// and returns the addressed cell.
func (mem *Level1) Run(addr0, enable, value quad.Quad) quad.Quad {
	sel := quad.Decode4(addr0, enable)

	var out [WAYS]quad.Quad
	for n := range mem.Cell {
		out[n] = mem.Cell[n].Run(value, sel[n])
	}

	return quad.Select4(addr0, out)
}

// Level2 wraps four Level1 blocks, selected by addr1.
type Level2 struct {
	Block [WAYS]Level1
}

// Run writes or reads the cell at (addr0, addr1).
func (mem *Level2) Run(addr0, addr1, enable, value quad.Quad) quad.Quad {
	sel := quad.Decode4(addr1, enable)

	var out [WAYS]quad.Quad
	for n := range mem.Block {
		out[n] = mem.Block[n].Run(addr0, sel[n], value)
	}

	return quad.Select4(addr1, out)
}

// Memory wraps four Level2 blocks, selected by addr2.
type Memory struct {
	Block [WAYS]Level2
}

// Run writes value to (addr0, addr1, addr2) when enable is non-zero, and
// returns the contents of that address. With enable 0 this is a pure read.
func (mem *Memory) Run(addr0, addr1, addr2, enable, value quad.Quad) quad.Quad {
	sel := quad.Decode4(addr2, enable)

	var out [WAYS]quad.Quad
	for n := range mem.Block {
		out[n] = mem.Block[n].Run(addr0, addr1, sel[n], value)
	}

	return quad.Select4(addr2, out)
}

// Split converts a linear address into its (low, mid, high) digits.
func Split(linear int) (addr0, addr1, addr2 quad.Quad) {
	addr0 = quad.Quad(linear % WAYS)
	addr1 = quad.Quad((linear / WAYS) % WAYS)
	addr2 = quad.Quad((linear / (WAYS * WAYS)) % WAYS)
	return
}

// Join converts address digits into a linear address.
func Join(addr0, addr1, addr2 quad.Quad) int {
	return int(addr0) + WAYS*int(addr1) + WAYS*WAYS*int(addr2)
}

// Read the cell at a linear address.
func (mem *Memory) Read(linear int) quad.Quad {
	addr0, addr1, addr2 := Split(linear)
	return mem.Run(addr0, addr1, addr2, quad.ZERO, quad.ZERO)
}

// Write the cell at a linear address.
func (mem *Memory) Write(linear int, value quad.Quad) {
	addr0, addr1, addr2 := Split(linear)
	mem.Run(addr0, addr1, addr2, quad.THREE, value)
}

// Reset zeroes every cell.
func (mem *Memory) Reset() {
	*mem = Memory{}
}
