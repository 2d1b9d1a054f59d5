package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/lminc/cpu"
)

// Runner drives a Computer interactively: numeric I/O is line oriented with
// a prompt, char output streams as text.
type Runner struct {
	Computer *cpu.Computer
	Input    io.Reader // Defaults to os.Stdin.
	Output   io.Writer // Defaults to os.Stdout.

	scanner  *bufio.Scanner
	midChars bool
}

// NewRunner creates a Runner around a new Computer loaded with a memory
// image.
func NewRunner(memory cpu.Memory) (runner *Runner) {
	runner = &Runner{
		Computer: cpu.NewComputer(memory),
	}

	return
}

func (runner *Runner) readLine() (text string, err error) {
	if runner.scanner == nil {
		input := runner.Input
		if input == nil {
			input = os.Stdin
		}
		runner.scanner = bufio.NewScanner(input)
	}

	if !runner.scanner.Scan() {
		err = runner.scanner.Err()
		if err == nil {
			err = ErrEndOfInput
		}
		return
	}

	text = runner.scanner.Text()
	return
}

func (runner *Runner) output() io.Writer {
	if runner.Output == nil {
		return os.Stdout
	}
	return runner.Output
}

// breakChars ends a run of char output with a newline, so a prompt or a
// number starts on its own line.
func (runner *Runner) breakChars() {
	if runner.midChars {
		fmt.Fprintln(runner.output())
		runner.midChars = false
	}
}

// Step steps the computer once, satisfying any I/O request from the text
// streams.
func (runner *Runner) Step() (state cpu.State, err error) {
	switch state = runner.Computer.Step(); state {
	case cpu.STATE_AWAITING_INPUT:
		runner.breakChars()
		// On an extended machine the numeric prompt is marked, to tell
		// it apart from the char prompt.
		if runner.Computer.Extended {
			fmt.Fprint(runner.output(), "(i) > ")
		} else {
			fmt.Fprint(runner.output(), "> ")
		}

		var text string
		text, err = runner.readLine()
		if err != nil {
			return
		}

		value, perr := strconv.ParseUint(strings.TrimSpace(text), 10, 16)
		if perr != nil {
			err = cpu.ErrParseNumber(strings.TrimSpace(text))
			return
		}

		var num cpu.Num
		num, err = cpu.NumFrom(uint16(value))
		if err != nil {
			return
		}

		err = runner.Computer.Input(num)

	case cpu.STATE_AWAITING_OUTPUT:
		runner.breakChars()

		var output cpu.Num
		output, err = runner.Computer.Output()
		if err != nil {
			return
		}

		fmt.Fprintln(runner.output(), uint16(output))

	case cpu.STATE_AWAITING_CHAR_INPUT:
		runner.breakChars()
		fmt.Fprint(runner.output(), "(c) > ")

		var text string
		text, err = runner.readLine()
		if err != nil {
			return
		}

		// An empty line inputs a newline character.
		char := '\n'
		rest := ""
		for index, r := range text {
			char = r
			rest = text[index+len(string(r)):]
			break
		}
		if len(strings.TrimSpace(rest)) != 0 {
			err = ErrMultipleCharacters
			return
		}
		if char >= cpu.NumLimit {
			err = ErrInvalidCharacter(char)
			return
		}

		err = runner.Computer.InputChar(cpu.Num(char))

	case cpu.STATE_AWAITING_CHAR_OUTPUT:
		var output cpu.Num
		output, err = runner.Computer.OutputChar()
		if err != nil {
			return
		}

		fmt.Fprintf(runner.output(), "%c", rune(output))
		runner.midChars = output != '\n'
	}

	if err == nil {
		state = runner.Computer.State()
	}
	return
}

// Run steps the computer until it stops, satisfying I/O along the way, and
// returns the terminal state.
func (runner *Runner) Run() (state cpu.State, err error) {
	for {
		state, err = runner.Step()
		if err != nil {
			return
		}
		if state.Terminal() {
			runner.breakChars()
			return
		}
	}
}
