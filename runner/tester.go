// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package runner drives a Computer from the outside: interactively over
// line-oriented text streams, or against scripted I/O expectations.
package runner

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/lminc/cpu"
)

// Test is one scripted run of a program: the inputs to feed it, the outputs
// it must give, in order, and a bound on the fetch-execute cycles it may
// take.
type Test struct {
	Name        string
	MaxCycles   int
	Inputs      []cpu.Num
	Outputs     []cpu.Num
	CharInputs  []cpu.Num
	CharOutputs []cpu.Num
}

// numList parses a comma separated list of three-digit numbers. Empty
// entries are skipped, so an empty section is an empty list.
func numList(section string) (nums []cpu.Num, err error) {
	for _, word := range strings.Split(section, ",") {
		if len(word) == 0 {
			continue
		}

		value, perr := strconv.ParseUint(word, 10, 16)
		if perr != nil {
			err = cpu.ErrParseNumber(word)
			return
		}

		var num cpu.Num
		num, err = cpu.NumFrom(uint16(value))
		if err != nil {
			return
		}

		nums = append(nums, num)
	}

	return
}

// charList converts a section of characters into their three-digit codes,
// one per character.
func charList(section string) (nums []cpu.Num, err error) {
	for _, char := range section {
		if char >= cpu.NumLimit {
			err = ErrInvalidCharacter(char)
			return
		}
		nums = append(nums, cpu.Num(char))
	}

	return
}

// TestFromCSVLine parses one semicolon separated test line, in the format
//
//	name;inputs;outputs;max cycles
//
// or, with char I/O expectations,
//
//	name;inputs;outputs;char inputs;char outputs;max cycles
//
// where inputs and outputs are comma separated numbers and the char sections
// are plain character sequences.
func TestFromCSVLine(text string) (test Test, err error) {
	sections := strings.Split(text, ";")

	switch len(sections) {
	case 4, 6:
	default:
		err = ErrSections(len(sections))
		return
	}

	test.Name = sections[0]

	test.Inputs, err = numList(sections[1])
	if err != nil {
		return
	}
	test.Outputs, err = numList(sections[2])
	if err != nil {
		return
	}

	if len(sections) == 6 {
		test.CharInputs, err = charList(sections[3])
		if err != nil {
			return
		}
		test.CharOutputs, err = charList(sections[4])
		if err != nil {
			return
		}
	}

	cycles := sections[len(sections)-1]
	test.MaxCycles, err = strconv.Atoi(cycles)
	if err != nil || test.MaxCycles < 0 {
		err = ErrInvalidMaxCycles(cycles)
		return
	}

	return
}

// TestsFromCSV parses a test per line from an input stream. Errors carry the
// 1-based line number.
func TestsFromCSV(input io.Reader) (tests []Test, err error) {
	scanner := bufio.NewScanner(input)

	lineno := 0
	for scanner.Scan() {
		lineno += 1
		text := scanner.Text()

		var test Test
		test, err = TestFromCSVLine(text)
		if err != nil {
			err = cpu.ErrLine{LineNo: lineno, Line: text, Err: err}
			return
		}

		tests = append(tests, test)
	}

	err = scanner.Err()
	return
}

// Run runs the test against a computer until it halts, diverges from the
// script, or exceeds the cycle bound. It returns the number of fetch-execute
// cycles run. The computer is not reset first.
func (test Test) Run(computer *cpu.Computer) (cycles int, err error) {
	defer func() {
		if err != nil {
			err = ErrTest{Name: test.Name, Cycles: cycles, Err: err}
		}
	}()

	inputs := test.Inputs
	outputs := test.Outputs
	charInputs := test.CharInputs
	charOutputs := test.CharOutputs

	done := false
	for !done {
		if cycles == test.MaxCycles {
			err = ErrOutOfCycles
			return
		}

		switch state := computer.Step(); state {
		case cpu.STATE_RUNNING:

		case cpu.STATE_AWAITING_INPUT:
			if len(inputs) == 0 {
				err = ErrOutOfInputs
				return
			}
			err = computer.Input(inputs[0])
			if err != nil {
				return
			}
			inputs = inputs[1:]

		case cpu.STATE_AWAITING_OUTPUT:
			var output cpu.Num
			output, err = computer.Output()
			if err != nil {
				return
			}
			if len(outputs) == 0 {
				err = ErrOutOfOutputs{Output: output}
				return
			}
			if output != outputs[0] {
				err = ErrDifferentOutput{Expected: outputs[0], Got: output}
				return
			}
			outputs = outputs[1:]

		case cpu.STATE_AWAITING_CHAR_INPUT:
			if len(charInputs) == 0 {
				err = ErrOutOfCharInputs
				return
			}
			err = computer.InputChar(charInputs[0])
			if err != nil {
				return
			}
			charInputs = charInputs[1:]

		case cpu.STATE_AWAITING_CHAR_OUTPUT:
			var output cpu.Num
			output, err = computer.OutputChar()
			if err != nil {
				return
			}
			if len(charOutputs) == 0 {
				err = ErrOutOfCharOutputs{Output: output}
				return
			}
			if output != charOutputs[0] {
				err = ErrDifferentCharOutput{Expected: charOutputs[0], Got: output}
				return
			}
			charOutputs = charOutputs[1:]

		case cpu.STATE_HALTED, cpu.STATE_REACHED_END:
			done = true

		default:
			err = ErrComputerState{State: state}
			return
		}

		cycles += 1
	}

	// Every scripted input and output must have been consumed.
	switch {
	case len(inputs) != 0:
		err = ErrExpectedMoreInputs
	case len(outputs) != 0:
		err = ErrExpectedMoreOutputs
	case len(charInputs) != 0:
		err = ErrExpectedMoreCharInputs
	case len(charOutputs) != 0:
		err = ErrExpectedMoreCharOutputs
	}

	return
}
