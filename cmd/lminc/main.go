// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/lminc/codec"
	"github.com/ezrec/lminc/cpu"
	"github.com/ezrec/lminc/runner"
)

const version = "1.0.0"

const usageText = `Usage: %v [flags] <subcommand> <arguments...>

Subcommands:
    assemble <in path> <out path>
        Assemble an assembly file into a binary file

    assembleNumbers <in path> <out path>
        Assemble a numbers file into a binary file

    run <path>
        Run a binary file

    runAssembly <path>
        Run an assembly file

    runNumbers <path>
        Run a numbers file

    memDump <path>
        Print the memory image of a binary file

    test <test path> <bin path>
        Run the tests in a CSV file against a binary file

    version
        Print the version number

Flags:
`

var extended bool
var verbose bool

// assembleFile assembles an assembly or numbers source file into a memory
// image.
func assembleFile(path string, numeric bool) (memory cpu.Memory, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	if numeric {
		asm := &cpu.NumberAssembler{}
		memory, err = asm.Assemble(inf)
	} else {
		asm := &cpu.Assembler{Extended: extended, Verbose: verbose}
		memory, err = asm.Assemble(inf)
	}

	return
}

// loadFile reads a packed memory image from a binary file.
func loadFile(path string) (memory cpu.Memory, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	memory, err = codec.Load(inf)
	return
}

// saveFile writes a packed memory image to a binary file.
func saveFile(path string, memory cpu.Memory) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}
	defer ouf.Close()

	err = codec.Save(ouf, memory)
	return
}

func assembleCmd(in, out string, numeric bool) (err error) {
	if in == out {
		return fmt.Errorf("cannot overwrite input %v with output binary", in)
	}

	memory, err := assembleFile(in, numeric)
	if err != nil {
		return
	}

	err = saveFile(out, memory)
	return
}

func runMemory(memory cpu.Memory) (err error) {
	run := runner.NewRunner(memory)
	run.Computer.Extended = extended

	state, err := run.Run()
	if err != nil {
		return
	}

	if verbose || state != cpu.STATE_HALTED {
		fmt.Fprintf(os.Stderr, "program %v\n", state)
	}
	return
}

func testCmd(testPath, binPath string) (err error) {
	inf, err := os.Open(testPath)
	if err != nil {
		return
	}
	defer inf.Close()

	tests, err := runner.TestsFromCSV(inf)
	if err != nil {
		return
	}

	memory, err := loadFile(binPath)
	if err != nil {
		return
	}

	computer := cpu.NewComputer(memory)
	computer.Extended = extended

	failed := 0
	for _, test := range tests {
		computer.Reset()

		cycles, terr := test.Run(computer)
		if terr != nil {
			fmt.Println(terr)
			failed += 1
			continue
		}

		if verbose {
			fmt.Printf("test %v passed after %d cycles, program %v\n",
				test.Name, cycles, computer.State())
		}
	}

	fmt.Printf("%d tests passed, %d tests failed\n", len(tests)-failed, failed)
	if failed != 0 {
		err = fmt.Errorf("%d of %d tests failed", failed, len(tests))
	}
	return
}

func main() {
	log.SetFlags(0)

	flag.BoolVar(&extended, "x", false, "Enable the extended instruction set")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usageText, os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	arity := func(n int) {
		if len(args) != n+1 {
			flag.Usage()
			os.Exit(2)
		}
	}

	var err error
	switch subcommand := args[0]; subcommand {
	case "help":
		flag.Usage()

	case "assemble":
		arity(2)
		err = assembleCmd(args[1], args[2], false)

	case "assembleNumbers":
		arity(2)
		err = assembleCmd(args[1], args[2], true)

	case "run":
		arity(1)
		var memory cpu.Memory
		memory, err = loadFile(args[1])
		if err == nil {
			err = runMemory(memory)
		}

	case "runAssembly":
		arity(1)
		var memory cpu.Memory
		memory, err = assembleFile(args[1], false)
		if err == nil {
			err = runMemory(memory)
		}

	case "runNumbers":
		arity(1)
		var memory cpu.Memory
		memory, err = assembleFile(args[1], true)
		if err == nil {
			err = runMemory(memory)
		}

	case "memDump":
		arity(1)
		var memory cpu.Memory
		memory, err = loadFile(args[1])
		if err == nil {
			_, err = io.WriteString(os.Stdout, memory.String())
		}

	case "test":
		arity(2)
		err = testCmd(args[1], args[2])

	case "version":
		fmt.Printf("lminc version %v\n", version)

	default:
		log.Fatalf("%v: unknown subcommand %q", os.Args[0], subcommand)
	}

	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
