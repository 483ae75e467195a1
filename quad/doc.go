// Package quad implements the quaternary logic primitives of the machine.
//
// A Quad holds one of four states (0, 1, 2, 3). Every other component of the
// machine is composed from the six total functions in this package (Min, Max,
// Not, Com, Mod, Eq), a gated storage Cell, and the one-hot decoders built
// from them.
package quad
