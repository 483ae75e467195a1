package emulator

import (
	"errors"

	"github.com/ezrec/quadcpu/translate"
)

var f = translate.From

var (
	ErrProgramSize = errors.New(f("program larger than memory"))
	ErrStepLimit   = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Addr   int
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("address %02d line %d %v", err.Addr, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
