// Package main provides the entry point for mipsim.
// mipsim is a functional emulator for a MIPS32 ALU subset.
//
// For the full CLI, use: go run ./cmd/mipsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("mipsim - MIPS32 ALU-subset emulator")
	fmt.Println("")
	fmt.Println("Usage: mipsim [options] <program>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -v      Verbose output")
	fmt.Println("  -regs   Dump the final register file")
	fmt.Println("  -max N  Stop after N instructions")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/mipsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/mipsim' instead.")
	}
}
