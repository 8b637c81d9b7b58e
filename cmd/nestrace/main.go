// Command nestrace runs an iNES ROM's reset routine through the CPU
// interpreter, printing a nestest-style trace line to stdout for every
// instruction executed, until BRK or a fatal access terminates it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/coredump-labs/nescore/bus"
	"github.com/coredump-labs/nescore/ines"
	"github.com/coredump-labs/nescore/mos6502"
	"github.com/coredump-labs/nescore/trace"
)

var romPath = flag.String("rom", "", "Path to an iNES ROM to trace (may also be given positionally).")

func main() {
	flag.Parse()

	path := *romPath
	if path == "" {
		path = flag.Arg(0)
	}
	if path == "" {
		log.Fatal("usage: nestrace <rom.nes>")
	}

	if err := run(path, os.Stdout); err != nil {
		log.Fatalf("nestrace: %v", err)
	}
}

func run(path string, out *os.File) (err error) {
	cart, err := ines.Load(path)
	if err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}

	b := bus.New(cart)
	cpu := mos6502.New(b)

	w := bufio.NewWriter(out)
	defer w.Flush()

	cpu.Trace = func(c *mos6502.CPU, startPC uint16, op mos6502.Opcode, opByte uint8) {
		fmt.Fprintln(w, trace.Format(c, startPC, op, opByte))
	}

	defer func() {
		if r := recover(); r != nil {
			w.Flush()
			err = fmt.Errorf("fatal access: %v", r)
		}
	}()

	return cpu.Run()
}
