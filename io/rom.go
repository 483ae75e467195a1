package io

import (
	"iter"

	"github.com/ezrec/quadcpu/quad"
)

// Rom is a read-only channel over a quad image.
type Rom struct {
	Data []quad.Quad
}

var _ Channel = (*Rom)(nil)

// Rewind is a no-op; every Receive starts from the first quad.
func (rc *Rom) Rewind() {
}

func (rc *Rom) Receive() iter.Seq[quad.Quad] {
	return func(yield func(value quad.Quad) bool) {
		for _, data := range rc.Data {
			if !yield(data) {
				return
			}
		}
	}
}

func (rc *Rom) Send(value quad.Quad) error {
	return ErrChannelFull
}
