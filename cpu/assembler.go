// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Memory is a complete memory image, one word per address.
type Memory [MemorySize]Num

// Assembler assembles mnemonic assembly text into a memory image.
// The zero value is ready to use.
type Assembler struct {
	Extended bool // Accept the char-I/O mnemonics.
	Verbose  bool // If set, verbosely logs the parsed lines.

	predefine map[string]int
}

// Predefine binds a name to an integer value for $(...) expressions.
func (asm *Assembler) Predefine(name string, value int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// assembleLine encodes one parsed line into a three-digit word against the
// label table.
func assembleLine(line Line, labels map[string]int) (word Num, err error) {
	word = line.Op.Base()
	if line.Operand == nil {
		return
	}

	var data Num
	operand := *line.Operand
	if operand.IsLabel() {
		address, ok := labels[operand.Label]
		if !ok {
			err = ErrLabelUnknown(operand.Label)
			return
		}
		data = Num(address)
	} else {
		data = operand.Number
		// DAT takes a full three-digit word; everything else takes a
		// two-digit address.
		if line.Op != OP_DAT && !data.IsAddress() {
			err = ErrAddressTooLarge
			return
		}
	}

	word += data
	return
}

// AssembleParsed encodes parsed lines into a memory image. The first pass
// collects the label bindings, the second resolves operands and encodes.
// Unused trailing words are zero.
func AssembleParsed(parser *Parser) (memory Memory, err error) {
	labels, err := parser.Labels()
	if err != nil {
		return
	}

	for address, line := range parser.Lines {
		memory[address], err = assembleLine(line, labels)
		if err != nil {
			err = ErrInstruction{Number: address + 1, Err: err}
			return
		}
	}

	return
}

// Assemble assembles an input stream of assembly text into a memory image.
func (asm *Assembler) Assemble(input io.Reader) (memory Memory, err error) {
	parser := &Parser{
		Extended:  asm.Extended,
		Verbose:   asm.Verbose,
		predefine: asm.predefine,
	}

	err = parser.Parse(input)
	if err != nil {
		return
	}

	memory, err = AssembleParsed(parser)
	return
}

// NumberAssembler assembles raw three-digit words, one decimal literal per
// line, into a memory image. The zero value is ready to use.
type NumberAssembler struct {
	memory Memory
	index  int
	lineno int
}

// AssembleLine assembles a single line holding up to one number. Blank and
// comment-only lines assemble to nothing.
func (asm *NumberAssembler) AssembleLine(text string) (err error) {
	asm.lineno += 1

	defer func() {
		if err != nil {
			err = ErrLine{LineNo: asm.lineno, Line: strings.TrimSpace(text), Err: err}
		}
	}()

	if asm.index == MemorySize {
		err = ErrTooManyNumbers
		return
	}

	if mark := strings.IndexAny(text, "#;"); mark >= 0 {
		text = text[:mark]
	}
	code := strings.TrimSpace(text)
	if len(code) == 0 {
		return
	}

	value, perr := strconv.ParseUint(code, 10, 16)
	if perr != nil {
		err = ErrParseNumber(code)
		return
	}

	num, err := NumFrom(uint16(value))
	if err != nil {
		return
	}

	asm.memory[asm.index] = num
	asm.index += 1
	return
}

// Assemble assembles an input stream of numbers into a memory image.
func (asm *NumberAssembler) Assemble(input io.Reader) (memory Memory, err error) {
	scanner := bufio.NewScanner(input)

	for scanner.Scan() {
		err = asm.AssembleLine(scanner.Text())
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	memory = asm.memory
	return
}
