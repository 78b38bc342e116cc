// This file is part of core6502.
//
// core6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// core6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with core6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/core6502/hardware/cpu"
	"github.com/jetsetilly/core6502/hardware/memory"
	"github.com/jetsetilly/core6502/hardware/memory/cpubus"
	"github.com/jetsetilly/core6502/logger"
	"github.com/jetsetilly/core6502/modalflag"
	"github.com/jetsetilly/core6502/statsview"
	"github.com/jetsetilly/core6502/version"
)

// the number of instructions executed between checks for an interrupt signal
const runChunk = 1000

func main() {
	// #ctrlc stops a running program between chunks of instructions
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(launch(ctx, os.Stdout, os.Args[1:]))
}

// launch processes the command line and runs the selected mode. returns the
// value to be used with os.Exit()
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "TABLE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)

	case "TABLE":
		err = table(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(fmt.Sprintf("programs are loaded at %#04x and run until a BRK instruction", cpubus.ProgramOrigin))

	var hex hexProgram
	md.AddVar(&hex, "hex", "program as a string of hex bytes")
	limit := md.AddInt("limit", 0, "maximum number of instructions to execute (0 for no limit)")
	log := md.AddBool("log", false, "echo log to stdout")
	page := md.AddInt("page", -1, "print memory page after execution (-1 for no page)")
	memvizFile := md.AddString("memviz", "", "write graphviz rendering of the final CPU state to file")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(echoWriter(output))
		defer logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		statsview.Launch(output)
	}

	if *page > 0xff {
		return fmt.Errorf("memory page must be between 0 and 255")
	}

	var program []uint8

	switch len(md.RemainingArgs()) {
	case 0:
		if len(hex) == 0 {
			return fmt.Errorf("program file or -hex required for %s mode", md)
		}
		program = hex
	case 1:
		if len(hex) > 0 {
			return fmt.Errorf("program file and -hex cannot be used together")
		}
		program, err = os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ram := memory.NewRAM()
	mc, err := cpu.NewCPU(ram)
	if err != nil {
		return err
	}

	err = mc.Load(program)
	if err != nil {
		return err
	}
	err = mc.Reset()
	if err != nil {
		return err
	}

	halted, count, err := execute(ctx, mc, *limit)

	// the state of the CPU is interesting even if there was an error
	fmt.Fprintln(output, mc)
	if mc.LastResult.Final {
		fmt.Fprintf(output, "last: %s\n", mc.LastResult)
	}
	if err != nil {
		return err
	}

	if halted {
		fmt.Fprintf(output, "halted after %d instructions\n", count)
	} else {
		fmt.Fprintf(output, "stopped after %d instructions\n", count)
	}

	if *page >= 0 {
		fmt.Fprintln(output, ram.Dump(uint8(*page)))
	}

	if *memvizFile != "" {
		err = writeMemviz(*memvizFile, mc)
		if err != nil {
			return err
		}
	}

	return nil
}

// execute runs the CPU in chunks of instructions until the CPU halts, the
// limit is reached or the context is cancelled. a limit of zero means no
// limit. returns whether the CPU halted and the number of instructions
// executed, including the BRK instruction
func execute(ctx context.Context, mc *cpu.CPU, limit int) (bool, int, error) {
	var count int

	for {
		n := runChunk
		if limit > 0 {
			n = min(n, limit-count)
			if n == 0 {
				return false, count, nil
			}
		}

		for range n {
			halted, err := mc.ExecuteInstruction()
			if err != nil {
				return false, count, err
			}
			count++
			if halted {
				return true, count, nil
			}
		}

		if err := ctx.Err(); err != nil {
			logger.Logf(logger.Allow, "core6502", "interrupted after %d instructions", count)
			return false, count, nil
		}
	}
}

func table(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("%s mode does not accept arguments", md)
	}

	// the table is owned by a CPU instance. there is no need for memory to
	// print it
	mc, err := cpu.NewCPU(nil)
	if err != nil {
		return err
	}

	for _, d := range mc.Instructions().Definitions() {
		fmt.Fprintln(output, d)
	}
	fmt.Fprintf(output, "%d opcodes\n", mc.Instructions().Len())

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(output, "%s %s\n", v, r)
	} else {
		fmt.Fprintln(output, version.String())
	}

	return nil
}
