package io

import (
	"iter"

	"github.com/ezrec/quadcpu/quad"
)

// Temporary implements a circular buffer for temporary quad storage.
// It operates as a FIFO queue with a fixed capacity and separate read/write positions.
type Temporary struct {
	Capacity int // Capacity in quads.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []quad.Quad
}

var _ Channel = (*Temporary)(nil)

// Rewind resets the temporary storage to empty.
func (temp *Temporary) Rewind() {
	temp.ReadIndex = 0
	temp.WriteIndex = 0
	temp.Size = 0
	temp.Data = make([]quad.Quad, temp.Capacity)
}

// Receive returns an iterator that yields quads from the buffer until empty.
func (temp *Temporary) Receive() iter.Seq[quad.Quad] {
	return func(yield func(value quad.Quad) bool) {
		for temp.Size > 0 {
			value := temp.Data[temp.ReadIndex]
			temp.ReadIndex++
			if temp.ReadIndex == temp.Capacity {
				temp.ReadIndex = 0
			}
			temp.Size--
			if !yield(value) {
				return
			}
		}
	}
}

// Send appends a quad to the buffer.
// Returns ErrChannelFull if the buffer has reached capacity.
func (temp *Temporary) Send(value quad.Quad) (err error) {
	if temp.Size >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	if len(temp.Data) != temp.Capacity {
		temp.Rewind()
	}

	temp.Data[temp.WriteIndex] = value

	temp.WriteIndex++
	if temp.WriteIndex == temp.Capacity {
		temp.WriteIndex = 0
	}
	temp.Size++

	return
}
