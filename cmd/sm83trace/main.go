// Command sm83trace loads a raw binary blob, seeds it onto a flat memory
// bus at 0x0100, and steps the CPU core N times, logging each executed
// instruction. It performs no ROM-mapper, cartridge, or peripheral
// emulation — just enough to exercise the core in isolation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/awkless/chocboy/internal/bus"
	"github.com/awkless/chocboy/internal/cpu"
	"github.com/awkless/chocboy/internal/interrupts"
	"github.com/awkless/chocboy/internal/loader"
	"github.com/awkless/chocboy/internal/log"
)

func main() {
	blobFile := flag.String("blob", "", "binary blob to trace (.bin, .gz, .zip, or .7z)")
	steps := flag.Int("steps", 100, "number of steps to execute")
	flag.Parse()

	if *blobFile == "" {
		fmt.Fprintln(os.Stderr, "sm83trace: -blob is required")
		os.Exit(2)
	}

	data, err := loader.Load(*blobFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sm83trace: %v\n", err)
		os.Exit(1)
	}

	ram := bus.NewRAM()
	ram.LoadAt(0x0100, data)

	c := cpu.NewCPU(ram, interrupts.NewService(), cpu.WithLogger(log.New()))

	for i := 0; i < *steps; i++ {
		if err := c.Step(); err != nil {
			fmt.Fprintf(os.Stderr, "sm83trace: step %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	fmt.Printf("executed %d steps, mcycles=%d tstates=%d\n", *steps, c.MCycles(), c.TStates())
}
