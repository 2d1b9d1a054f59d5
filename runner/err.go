package runner

import (
	"errors"

	"github.com/ezrec/lminc/cpu"
	"github.com/ezrec/lminc/translate"
)

var f = translate.From

var (
	// Interactive runner errors
	ErrMultipleCharacters = errors.New(f("more than one character inputted"))
	ErrEndOfInput         = errors.New(f("end of input"))

	// Harness errors
	ErrOutOfCycles             = errors.New(f("ran out of cycles"))
	ErrOutOfInputs             = errors.New(f("requested more inputs than expected"))
	ErrOutOfCharInputs         = errors.New(f("requested more char inputs than expected"))
	ErrExpectedMoreInputs      = errors.New(f("expected more inputs"))
	ErrExpectedMoreOutputs     = errors.New(f("expected more outputs"))
	ErrExpectedMoreCharInputs  = errors.New(f("expected more char inputs"))
	ErrExpectedMoreCharOutputs = errors.New(f("expected more char outputs"))
)

// ErrInvalidCharacter is an input character that does not fit a three-digit
// number.
type ErrInvalidCharacter rune

func (err ErrInvalidCharacter) Error() string {
	return f("character %q does not fit a three-digit number", rune(err))
}

// ErrOutOfOutputs is an output given after every expected output was matched.
type ErrOutOfOutputs struct {
	Output cpu.Num
}

func (err ErrOutOfOutputs) Error() string {
	return f("gave more outputs than expected (output %v)", uint16(err.Output))
}

// ErrOutOfCharOutputs is a char output given after every expected char output
// was matched.
type ErrOutOfCharOutputs struct {
	Output cpu.Num
}

func (err ErrOutOfCharOutputs) Error() string {
	return f("gave more char outputs than expected (output %q)", rune(err.Output))
}

// ErrDifferentOutput is an output that did not match the expected output.
type ErrDifferentOutput struct {
	Expected cpu.Num
	Got      cpu.Num
}

func (err ErrDifferentOutput) Error() string {
	return f("different output than expected (expected %v, got %v)",
		uint16(err.Expected), uint16(err.Got))
}

// ErrDifferentCharOutput is a char output that did not match the expected
// char output.
type ErrDifferentCharOutput struct {
	Expected cpu.Num
	Got      cpu.Num
}

func (err ErrDifferentCharOutput) Error() string {
	return f("different char output than expected (expected %q, got %q)",
		rune(err.Expected), rune(err.Got))
}

// ErrComputerState is a computer that stopped in an error state.
type ErrComputerState struct {
	State cpu.State
}

func (err ErrComputerState) Error() string {
	return f("computer %v", err.State)
}

// ErrSections is a CSV line with the wrong number of sections.
type ErrSections int

func (err ErrSections) Error() string {
	return f("wrong number of sections (%v, should be 4 or 6)", int(err))
}

// ErrInvalidMaxCycles is a cycle limit that is not a positive number.
type ErrInvalidMaxCycles string

func (err ErrInvalidMaxCycles) Error() string {
	return f("'%v' is not a valid maximum number of cycles", string(err))
}

// ErrTest tags an error with the name of the failing test and the number of
// fetch-execute cycles run before the failure.
type ErrTest struct {
	Name   string
	Cycles int
	Err    error
}

func (err ErrTest) Error() string {
	name := err.Name
	if len(name) == 0 {
		name = "?"
	}
	return f("test %v after %d cycles: %v", name, err.Cycles, err.Err)
}

func (err ErrTest) Unwrap() error {
	return err.Err
}
