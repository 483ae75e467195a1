package quad

import (
	"errors"

	"github.com/ezrec/quadcpu/translate"
)

var f = translate.From

var (
	ErrOutOfDomain = errors.New(f("out of domain"))
)
