package cpu

import (
	"errors"

	"github.com/ezrec/lminc/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrTooManyWords         = errors.New(f("too many words"))
	ErrTooManyInstructions  = errors.New(f("too many instructions"))
	ErrMultipleInstructions = errors.New(f("multiple instructions on one line"))
	ErrUnexpectedNumber     = errors.New(f("expected a label, not a number"))
	ErrNoInstruction        = errors.New(f("missing instruction"))
	ErrExpectedData         = errors.New(f("expected a label or number"))
	ErrUnexpectedData       = errors.New(f("unexpected label or number"))

	// Assembler errors
	ErrAddressTooLarge = errors.New(f("address too large (> 99)"))
	ErrTooManyNumbers  = errors.New(f("too many numbers"))

	// Computer I/O errors
	ErrUnexpectedInput     = errors.New(f("not awaiting an input"))
	ErrNoOutput            = errors.New(f("not awaiting an output"))
	ErrUnexpectedCharInput = errors.New(f("not awaiting a char input"))
	ErrNoCharOutput        = errors.New(f("not awaiting a char output"))
	ErrCounterOutOfRange   = errors.New(f("counter out of range (0..100)"))
)

// ErrNum is a number too large to be a three-digit number.
type ErrNum struct {
	Value uint16
}

func (err ErrNum) Error() string {
	return f("number %v is too large (> 999)", err.Value)
}

func (err ErrNum) Is(other error) (ok bool) {
	_, ok = other.(ErrNum)
	return
}

// ErrLabelDuplicate is a label defined on more than one line.
type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label %v defined more than once", string(err))
}

// ErrLabelUnknown is a reference to a label with no definition.
type ErrLabelUnknown string

func (err ErrLabelUnknown) Error() string {
	return f("label %v unknown", string(err))
}

// ErrParseNumber is a word that should have been a decimal number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression is a $(...) expression that did not evaluate.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrLine tags an error with its 1-based source line.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrLine) Unwrap() error {
	return err.Err
}

// ErrInstruction tags an error with its 1-based instruction number, for
// errors found after lines have been parsed away.
type ErrInstruction struct {
	Number int
	Err    error
}

func (err ErrInstruction) Error() string {
	return f("instruction %d %v", err.Number, err.Err)
}

func (err ErrInstruction) Unwrap() error {
	return err.Err
}
