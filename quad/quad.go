// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package quad

import (
	"strconv"
)

// Quad is a single base-4 digit.
type Quad uint8

const (
	ZERO  = Quad(0)
	ONE   = Quad(1)
	TWO   = Quad(2)
	THREE = Quad(3) // Also the "true" and "always enabled" signal.

	STATES = 4 // Number of states in a Quad.
)

// FromInt converts an integer to a Quad, failing if it is outside 0..3.
func FromInt(value int) (q Quad, err error) {
	if value < 0 || value >= STATES {
		err = ErrOutOfDomain
		return
	}

	q = Quad(value)
	return
}

// Valid returns true if the quad is in 0..3.
func (q Quad) Valid() bool {
	return q < STATES
}

// String returns the digit.
func (q Quad) String() string {
	return strconv.Itoa(int(q))
}

// Min returns the lesser quad.
func Min(a, b Quad) Quad {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater quad.
func Max(a, b Quad) Quad {
	if a > b {
		return a
	}
	return b
}

// Not returns 3 - a.
func Not(a Quad) Quad {
	return THREE - a
}

// Com returns a - b when a > b, and 0 otherwise.
func Com(a, b Quad) Quad {
	if a > b {
		return a - b
	}
	return ZERO
}

// Mod returns (a + b) mod 4.
func Mod(a, b Quad) Quad {
	return (a + b) % STATES
}

// Eq returns 3 when a == b, and 0 otherwise.
func Eq(a, b Quad) Quad {
	if a == b {
		return THREE
	}
	return ZERO
}
