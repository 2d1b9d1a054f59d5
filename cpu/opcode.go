package cpu

import (
	"strconv"
	"strings"
)

// Op is an LMinC operation, valued at its base op-code. Operations that take
// an address encode as base plus the two-digit address.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_DAT = Op(0)   // DAT
	OP_HLT = Op(1)   // HLT
	OP_EXT = Op(10)  // EXT
	OP_ADD = Op(100) // ADD
	OP_SUB = Op(200) // SUB
	OP_STO = Op(300) // STO
	OP_LDA = Op(500) // LDA
	OP_BR  = Op(600) // BR
	OP_BRZ = Op(700) // BRZ
	OP_BRP = Op(800) // BRP
	OP_IN  = Op(901) // IN
	OP_OUT = Op(902) // OUT
	OP_INA = Op(911) // INA
	OP_OTA = Op(912) // OTA
)

// opMap maps mnemonics (including aliases) to operations.
var opMap = map[string]Op{
	"ADD": OP_ADD,
	"SUB": OP_SUB,

	"STO": OP_STO,
	"STA": OP_STO,
	"LDA": OP_LDA,

	"BR":  OP_BR,
	"BRA": OP_BR,
	"BRZ": OP_BRZ,
	"BRP": OP_BRP,

	"IN":  OP_IN,
	"INP": OP_IN,
	"OUT": OP_OUT,

	"HLT": OP_HLT,
	"DAT": OP_DAT,
}

// extendedOpMap maps the char-I/O mnemonics, recognized only when the
// extended instruction set is selected.
var extendedOpMap = map[string]Op{
	"INA": OP_INA,
	"OTA": OP_OTA,
	"EXT": OP_EXT,
}

// OpOf looks up a mnemonic, case-insensitively.
func OpOf(word string, extended bool) (op Op, ok bool) {
	mnemonic := strings.ToUpper(word)

	op, ok = opMap[mnemonic]
	if !ok && extended {
		op, ok = extendedOpMap[mnemonic]
	}

	return
}

// NeedsData reports whether the operation requires an operand.
func (op Op) NeedsData() bool {
	switch op {
	case OP_ADD, OP_SUB, OP_STO, OP_LDA, OP_BR, OP_BRZ, OP_BRP, OP_DAT:
		return true
	}

	return false
}

// Base returns the encoded base op-code. HLT encodes to 0, the same word as
// "DAT 0": the machine cannot tell a halt from stored zero data, and the two
// are kept apart in source form only by the OP_HLT tag.
func (op Op) Base() Num {
	if op == OP_HLT {
		return 0
	}

	return Num(op)
}

// Operand is an instruction's data field before label resolution: either a
// literal number or a label reference.
type Operand struct {
	Label  string // Label reference; empty when Number is used.
	Number Num
}

// OperandOf classifies a word as a number or a label. A word is numeric only
// if it parses as a decimal and fits in three digits; anything else,
// including out-of-range numerals like "1000", is a label reference.
func OperandOf(word string) Operand {
	value, err := strconv.ParseUint(word, 10, 16)
	if err == nil && value < NumLimit {
		return Operand{Number: Num(value)}
	}

	return Operand{Label: word}
}

// IsLabel reports whether the operand is an unresolved label reference.
func (operand Operand) IsLabel() bool {
	return len(operand.Label) != 0
}
