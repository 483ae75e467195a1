package io

import (
	"errors"

	"github.com/ezrec/quadcpu/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull   = errors.New(f("channel full"))
	ErrChannelClosed = errors.New(f("channel closed"))
)

// ErrTapeSymbol is a character on a tape that is not a quad digit.
type ErrTapeSymbol byte

func (err ErrTapeSymbol) Error() string {
	return f("tape symbol %q", rune(err))
}
