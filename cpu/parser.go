package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// MemorySize is the number of memory cells, and so also the maximum number of
// instructions in a program.
const MemorySize = 100

// Line is one parsed line of assembly: an optional label, one instruction,
// and its optional operand.
type Line struct {
	LineNo  int
	Label   string
	Op      Op
	Operand *Operand
}

// Parser parses assembly text into Lines, at most one per memory cell.
// The zero value is ready to use.
type Parser struct {
	Extended bool // Recognize the char-I/O mnemonics.
	Verbose  bool // If set, verbosely logs the parsed lines.
	Lines    []Line

	predefine map[string]int
	lineno    int
}

// Predefine binds a name to an integer value for $(...) expressions.
func (parser *Parser) Predefine(name string, value int) {
	if parser.predefine == nil {
		parser.predefine = map[string]int{name: value}
	} else {
		parser.predefine[name] = value
	}
}

// parenEval does compile-time $(...) evaluations.
func (parser *Parser) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	pred["LINENO"] = starlark.MakeInt(parser.lineno)
	for key, val := range parser.predefine {
		pred[key] = starlark.MakeInt(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 >= NumLimit {
		err = ErrParseExpression(expr)
		return
	}

	value = int(st_int64)
	return
}

// parseWords determines the role of up to three words: at most one label, at
// most one mnemonic, at most one operand.
func (parser *Parser) parseWords(words []string) (line Line, err error) {
	line.LineNo = parser.lineno

	var hasOp bool
	var data *Operand

	// The first word must be a mnemonic or a label.
	if op, ok := OpOf(words[0], parser.Extended); ok {
		line.Op = op
		hasOp = true
	} else {
		operand := OperandOf(words[0])
		if !operand.IsLabel() {
			// Numbers cannot be labels.
			err = ErrUnexpectedNumber
			return
		}
		line.Label = words[0]
	}

	// The second word must be a mnemonic or an operand.
	if len(words) > 1 {
		if op, ok := OpOf(words[1], parser.Extended); ok {
			if hasOp {
				err = ErrMultipleInstructions
				return
			}
			line.Op = op
			hasOp = true
		} else {
			operand := OperandOf(words[1])
			data = &operand
		}
	}

	// The third word must be an operand.
	if len(words) > 2 {
		if _, ok := OpOf(words[2], parser.Extended); ok {
			err = ErrMultipleInstructions
			return
		}
		if data != nil {
			err = ErrTooManyWords
			return
		}
		operand := OperandOf(words[2])
		data = &operand
	}

	if !hasOp {
		err = ErrNoInstruction
		return
	}

	if line.Op.NeedsData() && data == nil {
		err = ErrExpectedData
		return
	}
	if !line.Op.NeedsData() && data != nil {
		err = ErrUnexpectedData
		return
	}

	line.Operand = data
	return
}

// ParseLine parses a single line of assembly into the Parser. Blank and
// comment-only lines parse to nothing.
func (parser *Parser) ParseLine(text string) (err error) {
	parser.lineno += 1

	// Strip everything from a comment marker onward.
	if mark := strings.IndexAny(text, "#;"); mark >= 0 {
		text = text[:mark]
	}

	defer func() {
		if err != nil {
			err = ErrLine{LineNo: parser.lineno, Line: strings.TrimSpace(text), Err: err}
		}
	}()

	// Do $() evaluations.
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	text = re.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := parser.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	if parser.Verbose {
		log.Printf("%v: %v", parser.lineno, words)
	}

	if len(words) > 3 {
		err = ErrTooManyWords
		return
	}

	if len(parser.Lines) == MemorySize {
		err = ErrTooManyInstructions
		return
	}

	line, err := parser.parseWords(words)
	if err != nil {
		return
	}

	parser.Lines = append(parser.Lines, line)
	return
}

// Parse parses an input stream of assembly text.
func (parser *Parser) Parse(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	for scanner.Scan() {
		err = parser.ParseLine(scanner.Text())
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	return
}

// Labels collects the label to address bindings of the parsed lines. The
// address of a label is the position of the line defining it.
func (parser *Parser) Labels() (labels map[string]int, err error) {
	labels = make(map[string]int, len(parser.Lines))

	for address, line := range parser.Lines {
		if len(line.Label) == 0 {
			continue
		}
		if _, ok := labels[line.Label]; ok {
			err = ErrInstruction{Number: address + 1, Err: ErrLabelDuplicate(line.Label)}
			return
		}
		labels[line.Label] = address
	}

	return
}
