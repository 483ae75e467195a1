// Package io provides quad channels for the quaternary emulator: a ROM
// holding a program image, a temporary FIFO buffer, and a text tape backed
// by an io.Reader and io.Writer.
package io

import (
	"iter"

	"github.com/ezrec/quadcpu/quad"
)

// Channel defines the interface for all quad I/O channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields quads from the channel.
	Receive() iter.Seq[quad.Quad]
	// Send writes a single quad to the channel.
	Send(value quad.Quad) error
}

// SendAll sends every quad of a sequence, stopping at the first error.
func SendAll(ch Channel, values iter.Seq[quad.Quad]) (err error) {
	for value := range values {
		err = ch.Send(value)
		if err != nil {
			return
		}
	}

	return
}

// Err returns the deferred receive error of a channel, if it records one.
func Err(ch Channel) error {
	if ech, ok := ch.(interface{ Err() error }); ok {
		return ech.Err()
	}

	return nil
}
