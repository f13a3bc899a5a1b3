// Package main provides the mipsim command-line interface.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sarchlab/mipsim/asm"
	"github.com/sarchlab/mipsim/emu"
	"github.com/sarchlab/mipsim/insts"
	"github.com/sarchlab/mipsim/loader"
)

var (
	verbose  = flag.Bool("v", false, "Verbose output")
	dumpRegs = flag.Bool("regs", false, "Dump the final register file")
	maxInsts = flag.Uint64("max", 0, "Stop after this many instructions (0 = no limit)")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: mipsim [options] <program>\n")
		fmt.Fprintf(os.Stderr, "\nProgram formats: .s/.asm assembly, .hex/.txt hex listing, raw binary otherwise.\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	programPath := flag.Arg(0)

	words, err := loadWords(programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded: %s\n", programPath)
		fmt.Printf("Instructions: %d\n", len(words))
	}

	emulator := emu.NewEmulator(
		emu.WithMaxInstructions(*maxInsts),
	)
	emulator.LoadWords(words)

	if err := emulator.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Emulation error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Instructions executed: %d\n", emulator.InstructionCount())
	}
	if *verbose || *dumpRegs {
		dumpRegisters(emulator.RegFile())
	}
}

// loadWords turns the program file into instruction words, assembling
// source files and loading flat images.
func loadWords(path string) ([]uint32, error) {
	if strings.HasSuffix(path, ".s") || strings.HasSuffix(path, ".asm") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return asm.Assemble(f)
	}
	return loader.Load(path)
}

func dumpRegisters(regFile *emu.RegFile) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for r := insts.Reg(0); r < insts.NumRegs; r++ {
		value := regFile.Read(r)
		fmt.Fprintf(w, "%s\t0x%08X\t%d\n", r, value, value)
	}
	w.Flush()
}
