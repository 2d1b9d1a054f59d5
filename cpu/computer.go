package cpu

import (
	"fmt"
	"strings"
)

// State is the execution state of a Computer.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING              = State(0) // is running
	STATE_AWAITING_INPUT       = State(1) // is awaiting input
	STATE_AWAITING_OUTPUT      = State(2) // is awaiting output
	STATE_AWAITING_CHAR_INPUT  = State(3) // is awaiting char input
	STATE_AWAITING_CHAR_OUTPUT = State(4) // is awaiting char output
	STATE_HALTED               = State(5) // halted
	STATE_REACHED_END          = State(6) // reached the end of its memory
	STATE_INVALID_INSTRUCTION  = State(7) // reached an invalid instruction
)

// Terminal reports whether the state can never change again.
func (state State) Terminal() bool {
	switch state {
	case STATE_HALTED, STATE_REACHED_END, STATE_INVALID_INSTRUCTION:
		return true
	}

	return false
}

// Computer is the LMinC machine: a memory image, a program counter, one
// accumulator register, a negative flag, and an extended-mode flag. It owns
// its memory exclusively and is driven one fetch-execute cycle at a time.
type Computer struct {
	Extended bool // Enable the char-I/O opcodes and the EXT word.

	state    State
	memory   Memory
	counter  int
	register Num
	negative bool
	extmode  bool
}

// NewComputer creates a new Computer loaded with a memory image.
func NewComputer(memory Memory) (computer *Computer) {
	computer = &Computer{
		memory: memory,
	}

	return
}

// Step runs one fetch-execute cycle. Outside of the running state it is a
// no-op that returns the current state, so callers can poll after supplying
// I/O or reaching a terminal state.
func (computer *Computer) Step() State {
	if computer.state != STATE_RUNNING {
		return computer.state
	}

	if computer.counter == MemorySize {
		computer.state = STATE_REACHED_END
		return computer.state
	}

	word := computer.memory[computer.counter]
	opcode := word / 100
	address := int(word % 100)

	switch opcode {
	case 1: // ADD
		computer.register = computer.register.Add(computer.memory[address])
	case 2: // SUB
		computer.register, computer.negative = computer.register.Sub(computer.memory[address])
	case 3: // STO
		computer.memory[address] = computer.register
	case 5: // LDA
		computer.register = computer.memory[address]
	case 6: // BR
		computer.counter = address
		return computer.state
	case 7: // BRZ
		if computer.register == 0 {
			computer.counter = address
			return computer.state
		}
	case 8: // BRP
		if !computer.negative {
			computer.counter = address
			return computer.state
		}
	case 9: // I/O
		switch {
		case address == 1:
			computer.state = STATE_AWAITING_INPUT
		case address == 2:
			computer.state = STATE_AWAITING_OUTPUT
		case address == 11 && computer.Extended && computer.extmode:
			computer.state = STATE_AWAITING_CHAR_INPUT
		case address == 12 && computer.Extended && computer.extmode:
			computer.state = STATE_AWAITING_CHAR_OUTPUT
		default:
			computer.state = STATE_INVALID_INSTRUCTION
			return computer.state
		}
	case 0: // HLT
		// Word 010 enables extended mode instead of halting, when the
		// machine has the extended instruction set at all.
		if computer.Extended && address == 10 {
			computer.extmode = true
		} else {
			computer.state = STATE_HALTED
		}
	default: // 400 block
		computer.state = STATE_INVALID_INSTRUCTION
		return computer.state
	}

	computer.counter += 1
	return computer.state
}

// Run steps the Computer until it is no longer running, returning the
// suspended or terminal state. A program that never performs I/O and never
// halts will loop forever; bounded execution belongs to the caller.
func (computer *Computer) Run() State {
	for computer.Step() == STATE_RUNNING {
	}
	return computer.state
}

// Input gives an input to the Computer, which must be awaiting one.
func (computer *Computer) Input(input Num) (err error) {
	if computer.state != STATE_AWAITING_INPUT {
		err = ErrUnexpectedInput
		return
	}

	computer.register = input
	computer.state = STATE_RUNNING
	return
}

// Output takes an output from the Computer, which must be awaiting one.
func (computer *Computer) Output() (output Num, err error) {
	if computer.state != STATE_AWAITING_OUTPUT {
		err = ErrNoOutput
		return
	}

	output = computer.register
	computer.state = STATE_RUNNING
	return
}

// InputChar gives a char input to the Computer, which must be awaiting one.
func (computer *Computer) InputChar(input Num) (err error) {
	if computer.state != STATE_AWAITING_CHAR_INPUT {
		err = ErrUnexpectedCharInput
		return
	}

	computer.register = input
	computer.state = STATE_RUNNING
	return
}

// OutputChar takes a char output from the Computer, which must be awaiting
// one.
func (computer *Computer) OutputChar() (output Num, err error) {
	if computer.state != STATE_AWAITING_CHAR_OUTPUT {
		err = ErrNoCharOutput
		return
	}

	output = computer.register
	computer.state = STATE_RUNNING
	return
}

// State returns the current execution state.
func (computer *Computer) State() State {
	return computer.state
}

// Reset clears the counter, register, flags, and state, but keeps the loaded
// memory, including any words the program stored over it.
func (computer *Computer) Reset() {
	computer.state = STATE_RUNNING
	computer.counter = 0
	computer.register = 0
	computer.negative = false
	computer.extmode = false
}

// Load installs a fresh memory image and resets the Computer.
func (computer *Computer) Load(memory Memory) {
	computer.memory = memory
	computer.Reset()
}

// Memory returns a copy of the Computer's memory.
func (computer *Computer) Memory() Memory {
	return computer.memory
}

// Counter returns the program counter.
func (computer *Computer) Counter() int {
	return computer.counter
}

// SetCounter sets the program counter. A counter of MemorySize is allowed;
// stepping from there reports the end of memory.
func (computer *Computer) SetCounter(value int) (err error) {
	if value < 0 || value > MemorySize {
		err = ErrCounterOutOfRange
		return
	}

	computer.counter = value
	return
}

// Register returns the accumulator register.
func (computer *Computer) Register() Num {
	return computer.register
}

// SetRegister sets the accumulator register.
func (computer *Computer) SetRegister(value Num) {
	computer.register = value
}

// NegativeFlag returns the negative flag.
func (computer *Computer) NegativeFlag() bool {
	return computer.negative
}

// ExtendedModeFlag returns the extended-mode flag.
func (computer *Computer) ExtendedModeFlag() bool {
	return computer.extmode
}

// String formats the memory image as ten rows of ten three-digit words.
func (memory Memory) String() string {
	var sb strings.Builder

	for row := 0; row < MemorySize; row += 10 {
		for col := range 10 {
			if col != 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%03d", uint16(memory[row+col]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
