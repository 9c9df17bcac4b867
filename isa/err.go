package isa

import (
	"errors"

	"github.com/ezrec/a32asm/translate"
)

var f = translate.From

var (
	ErrCondUnknown        = errors.New(f("condition unknown"))
	ErrRegisterRange      = errors.New(f("register out of range"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrFieldRange reports a value that does not fit a narrow bit field.
type ErrFieldRange struct {
	Field string
	Bits  int
	Value uint64
}

func (err ErrFieldRange) Error() string {
	return f("%v value %v does not fit in %v bits", err.Field, err.Value, err.Bits)
}
