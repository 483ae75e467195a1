package cpu

import (
	"github.com/ezrec/quadcpu/quad"
)

const (
	INSTRUCTION_WORDS = 6  // Quads per assembled instruction.
	FETCH_WORDS       = 2  // Quads fetched before the length resolver is consulted.
	REGISTER_COUNT    = 16 // Cells in a register file.

	HALT_ADDR0 = quad.THREE // Flag register address of the halt flag.
	HALT_ADDR1 = quad.THREE
)
