package io

import (
	"bufio"
	"errors"
	"io"
	"iter"

	"github.com/ezrec/quadcpu/quad"
)

// TAPE_COMMENT starts a comment that runs to the end of the line.
const TAPE_COMMENT = "--"

// Tape provides sequential quad I/O over a text stream. Quads are the
// digits '0' through '3'; whitespace and comments are skipped on input.
// Output quads are space separated, with a newline after every Width
// quads (or never, if Width is zero).
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Width  int

	reader *bufio.Reader
	err    error
	column int
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Err returns the first error seen while receiving.
func (tc *Tape) Err() error {
	return tc.err
}

// Receive returns an iterator that yields quads from the input stream.
// An unknown symbol stops the iterator and is reported by Err.
func (tc *Tape) Receive() iter.Seq[quad.Quad] {
	return func(yield func(value quad.Quad) bool) {
		if tc.Input == nil {
			return
		}

		if tc.reader == nil {
			tc.reader = bufio.NewReader(tc.Input)
		}

		for tc.err == nil {
			ch, err := tc.reader.ReadByte()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					tc.err = err
				}
				return
			}

			switch ch {
			case '0', '1', '2', '3':
				if !yield(quad.Quad(ch - '0')) {
					return
				}
			case ' ', '\t', '\r', '\n':
			case TAPE_COMMENT[0]:
				next, err := tc.reader.ReadByte()
				if err != nil || next != TAPE_COMMENT[1] {
					tc.err = ErrTapeSymbol(ch)
					return
				}
				_, err = tc.reader.ReadString('\n')
				if err != nil {
					if !errors.Is(err, io.EOF) {
						tc.err = err
					}
					return
				}
			default:
				tc.err = ErrTapeSymbol(ch)
				return
			}
		}
	}
}

// Send writes a quad to the output stream.
func (tc *Tape) Send(value quad.Quad) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	if !value.Valid() {
		err = quad.ErrOutOfDomain
		return
	}

	text := value.String()
	if tc.column > 0 {
		text = " " + text
	}
	tc.column++
	if tc.Width > 0 && tc.column == tc.Width {
		text += "\n"
		tc.column = 0
	}

	_, err = io.WriteString(tc.Output, text)

	return
}

// Flush terminates a partially written line.
func (tc *Tape) Flush() (err error) {
	if tc.Output == nil || tc.column == 0 {
		return
	}

	tc.column = 0
	_, err = io.WriteString(tc.Output, "\n")

	return
}
