// Package cpu implements the processor and assemblers for the Little Minion
// Computer (LMinC), a teaching machine with 100 memory cells of three-digit
// decimal words and a single accumulator register.
//
// The computer is an explicit state machine driven one fetch-execute cycle at
// a time; it suspends instead of blocking whenever a program performs I/O, so
// callers (the stdio runner, the script tester) decide where inputs come from
// and where outputs go.
//
// The assembler provides the classic LMC mnemonic language with labels and
// comments, plus compile-time $(...) expression evaluation. A sibling number
// assembler accepts raw three-digit words directly.
package cpu
