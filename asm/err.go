package asm

import (
	"errors"

	"github.com/ezrec/a32asm/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrBadMnemonic      = errors.New(f("bad mnemonic"))
	ErrBadRegister      = errors.New(f("bad register"))
	ErrBadFlexOperand   = errors.New(f("bad flex operand"))
	ErrRanOutOfOperands = errors.New(f("ran out of operands"))
	ErrBadNumber        = errors.New(f("bad number"))
	ErrBadCond          = errors.New(f("bad condition"))

	// Label errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrLabelInvalid   = errors.New(f("label invalid"))

	// Configuration errors
	ErrConfigStride   = errors.New(f("stride must be non-zero"))
	ErrConfigRegister = errors.New(f("register limit out of range"))
	ErrConfigPrefix   = errors.New(f("register prefix missing"))
	ErrPolicyUnknown  = errors.New(f("policy unknown"))
)

// ErrParse tags a parse failure with one of the parse error kinds.
type ErrParse struct {
	Kind  error  // ErrBadMnemonic, ErrBadRegister, ...
	Token string // Offending text, if any.
	Err   error  // Underlying cause, if any.
}

func (err *ErrParse) Error() string {
	switch {
	case len(err.Token) == 0:
		return err.Kind.Error()
	case err.Err == nil:
		return f("%v '%v'", err.Kind, err.Token)
	}
	return f("%v '%v': %v", err.Kind, err.Token, err.Err)
}

func (err *ErrParse) Unwrap() []error {
	if err.Err == nil {
		return []error{err.Kind}
	}
	return []error{err.Kind, err.Err}
}

// ErrSyntax locates an error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrLabelMissing is a branch target that was never declared.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrParseExpression is a $(...) expression that did not evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
