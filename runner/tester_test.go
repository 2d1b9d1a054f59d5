package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lminc/cpu"
)

var fibAssembly = strings.Join([]string{
	"start	LDA first",
	"	ADD second",
	"	OUT",
	"	STO next",
	"	LDA second",
	"	STO first",
	"	LDA next",
	"	STO second",
	"	LDA limit",
	"	SUB next",
	"	BRP start",
	"	HLT",
	"first	DAT 0",
	"second	DAT 1",
	"next	DAT 0",
	"limit	DAT 100",
}, "\n")

func assemble(t *testing.T, assembly string, extended bool) cpu.Memory {
	asm := &cpu.Assembler{Extended: extended}

	memory, err := asm.Assemble(strings.NewReader(assembly))
	if err != nil {
		t.Fatal(err)
	}

	return memory
}

func TestFromCSVLineEmpty(t *testing.T) {
	assert := assert.New(t)

	test, err := TestFromCSVLine(";;;1")
	assert.NoError(err)
	assert.Equal("", test.Name)
	assert.Equal(1, test.MaxCycles)
	assert.Equal(0, len(test.Inputs))
	assert.Equal(0, len(test.Outputs))
}

func TestFromCSVLineFull(t *testing.T) {
	assert := assert.New(t)

	test, err := TestFromCSVLine("name;1,2;3,4;5")
	assert.NoError(err)
	assert.Equal("name", test.Name)
	assert.Equal([]cpu.Num{1, 2}, test.Inputs)
	assert.Equal([]cpu.Num{3, 4}, test.Outputs)
	assert.Equal(5, test.MaxCycles)
}

func TestFromCSVLineChars(t *testing.T) {
	assert := assert.New(t)

	test, err := TestFromCSVLine("echo;;;AB;BA;100")
	assert.NoError(err)
	assert.Equal([]cpu.Num{'A', 'B'}, test.CharInputs)
	assert.Equal([]cpu.Num{'B', 'A'}, test.CharOutputs)
	assert.Equal(100, test.MaxCycles)
}

func TestFromCSVLineErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := TestFromCSVLine("a;b")
	assert.ErrorIs(err, ErrSections(2))

	_, err = TestFromCSVLine(";;;fish")
	assert.ErrorIs(err, ErrInvalidMaxCycles("fish"))

	_, err = TestFromCSVLine(";;;-1")
	assert.ErrorIs(err, ErrInvalidMaxCycles("-1"))

	_, err = TestFromCSVLine(";1000;;5")
	assert.ErrorIs(err, cpu.ErrNum{})

	_, err = TestFromCSVLine(";fish;;5")
	var parse cpu.ErrParseNumber
	assert.ErrorAs(err, &parse)
}

func TestTestsFromCSVLineNumbers(t *testing.T) {
	assert := assert.New(t)

	tests, err := TestsFromCSV(strings.NewReader("a;;;1\nb;;;2\n"))
	assert.NoError(err)
	assert.Equal(2, len(tests))
	assert.Equal("a", tests[0].Name)
	assert.Equal("b", tests[1].Name)

	_, err = TestsFromCSV(strings.NewReader("a;;;1\nbroken\n"))
	var errLine cpu.ErrLine
	assert.ErrorAs(err, &errLine)
	assert.Equal(2, errLine.LineNo)
	assert.ErrorIs(err, ErrSections(1))
}

func TestRunFibonacci(t *testing.T) {
	assert := assert.New(t)

	memory := assemble(t, fibAssembly, false)
	computer := cpu.NewComputer(memory)

	test, err := TestFromCSVLine("fib;;1,2,3,5,8,13,21,34,55,89,144;1000")
	assert.NoError(err)

	cycles, err := test.Run(computer)
	assert.NoError(err)
	assert.Greater(cycles, 0)
}

func TestRunDivergence(t *testing.T) {
	assert := assert.New(t)

	memory := assemble(t, "LDA n\nOUT\nHLT\nn DAT 7\n", false)

	test := Test{Name: "seven", MaxCycles: 10, Outputs: []cpu.Num{8}}
	_, err := test.Run(cpu.NewComputer(memory))
	assert.ErrorIs(err, ErrDifferentOutput{Expected: 8, Got: 7})

	var tagged ErrTest
	assert.ErrorAs(err, &tagged)
	assert.Equal("seven", tagged.Name)

	test = Test{MaxCycles: 10}
	_, err = test.Run(cpu.NewComputer(memory))
	assert.ErrorIs(err, ErrOutOfOutputs{Output: 7})

	test = Test{MaxCycles: 10, Outputs: []cpu.Num{7, 7}}
	_, err = test.Run(cpu.NewComputer(memory))
	assert.ErrorIs(err, ErrExpectedMoreOutputs)
}

func TestRunOutOfCycles(t *testing.T) {
	assert := assert.New(t)

	memory := assemble(t, "loop BR loop\n", false)

	test := Test{MaxCycles: 100}
	_, err := test.Run(cpu.NewComputer(memory))
	assert.ErrorIs(err, ErrOutOfCycles)
}

func TestRunInputs(t *testing.T) {
	assert := assert.New(t)

	memory := assemble(t, "IN\nOUT\nHLT\n", false)

	test := Test{MaxCycles: 10, Inputs: []cpu.Num{42}, Outputs: []cpu.Num{42}}
	cycles, err := test.Run(cpu.NewComputer(memory))
	assert.NoError(err)
	assert.Equal(3, cycles)

	test = Test{MaxCycles: 10}
	_, err = test.Run(cpu.NewComputer(memory))
	assert.ErrorIs(err, ErrOutOfInputs)

	test = Test{MaxCycles: 10, Inputs: []cpu.Num{1, 2}, Outputs: []cpu.Num{1}}
	_, err = test.Run(cpu.NewComputer(memory))
	assert.ErrorIs(err, ErrExpectedMoreInputs)
}

func TestRunComputerError(t *testing.T) {
	assert := assert.New(t)

	test := Test{MaxCycles: 10}
	_, err := test.Run(cpu.NewComputer(cpu.Memory{400}))
	assert.ErrorIs(err, ErrComputerState{State: cpu.STATE_INVALID_INSTRUCTION})
}

func TestRunChars(t *testing.T) {
	assert := assert.New(t)

	memory := assemble(t, "EXT\nINA\nOTA\nHLT\n", true)
	computer := cpu.NewComputer(memory)
	computer.Extended = true

	test, err := TestFromCSVLine("echo;;;A;A;100")
	assert.NoError(err)

	_, err = test.Run(computer)
	assert.NoError(err)

	computer.Reset()
	test.CharOutputs = []cpu.Num{'B'}
	_, err = test.Run(computer)
	assert.ErrorIs(err, ErrDifferentCharOutput{Expected: 'B', Got: 'A'})
}
