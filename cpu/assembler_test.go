// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemblerEmpty(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	memory, err := asm.Assemble(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(Memory{}, memory)
}

func TestAssemblerFull(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	memory, err := asm.Assemble(strings.NewReader(strings.Repeat("OUT\n", MemorySize)))
	assert.NoError(err)
	for _, word := range memory {
		assert.Equal(Num(902), word)
	}

	_, err = asm.Assemble(strings.NewReader(strings.Repeat("OUT\n", MemorySize+1)))
	assert.ErrorIs(err, ErrTooManyInstructions)
}

func TestAssemblerFibonacci(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	memory, err := asm.Assemble(strings.NewReader(fibAssembly))
	assert.NoError(err)

	expected := Memory{
		512, 113, 902, 314, 513, 312, 514, 313, 515, 214,
		800, 0, 0, 1, 0, 100,
	}
	assert.Equal(expected, memory)
}

func TestAssemblerAbsoluteAddress(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"LDA 9",
		"STO 98",
		"ADD 9",
		"STO 99",
		"LDA 98",
		"OUT",
		"LDA 99",
		"OUT",
		"HLT",
		"DAT 1",
	}

	memory, err := asm.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	expected := Memory{509, 398, 109, 399, 598, 902, 599, 902, 0, 1}
	assert.Equal(expected, memory)
}

func TestAssemblerHalt(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// HLT and "DAT 0" assemble to the same word.
	memory, err := asm.Assemble(strings.NewReader("HLT\nDAT 0\n"))
	assert.NoError(err)
	assert.Equal(Num(0), memory[0])
	assert.Equal(Num(0), memory[1])
}

func TestAssemblerUnknownLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Assemble(strings.NewReader("BR nowhere\n"))
	var unknown ErrLabelUnknown
	assert.ErrorAs(err, &unknown)
	assert.Equal(ErrLabelUnknown("nowhere"), unknown)

	var at ErrInstruction
	assert.ErrorAs(err, &at)
	assert.Equal(1, at.Number)
}

func TestAssemblerAddressTooLarge(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Assemble(strings.NewReader("ADD 100\n"))
	assert.ErrorIs(err, ErrAddressTooLarge)

	// DAT takes a full three-digit word.
	memory, err := asm.Assemble(strings.NewReader("DAT 999\n"))
	assert.NoError(err)
	assert.Equal(Num(999), memory[0])
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("LIMIT", 144)

	memory, err := asm.Assemble(strings.NewReader("DAT $(LIMIT)\n"))
	assert.NoError(err)
	assert.Equal(Num(144), memory[0])
}

func TestAssemblerExtended(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Extended: true}

	memory, err := asm.Assemble(strings.NewReader("EXT\nINA\nOTA\nHLT\n"))
	assert.NoError(err)

	expected := Memory{10, 911, 912, 0}
	assert.Equal(expected, memory)
}

func TestNumberAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &NumberAssembler{}

	program := []string{
		"# fibonacci seeds",
		"901",
		"902",
		"0 ; halt",
		"",
	}

	memory, err := asm.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(Memory{901, 902, 0}, memory)
}

func TestNumberAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &NumberAssembler{}
	err := asm.AssembleLine("1000")
	assert.ErrorIs(err, ErrNum{})

	asm = &NumberAssembler{}
	err = asm.AssembleLine("fish")
	var parse ErrParseNumber
	assert.ErrorAs(err, &parse)
	assert.Equal(ErrParseNumber("fish"), parse)

	asm = &NumberAssembler{}
	_, err = asm.Assemble(strings.NewReader(strings.Repeat("1\n", MemorySize+1)))
	assert.ErrorIs(err, ErrTooManyNumbers)

	var errLine ErrLine
	assert.ErrorAs(err, &errLine)
	assert.Equal(MemorySize+1, errLine.LineNo)
}
