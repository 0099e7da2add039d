// main.go - command-line entry point for gbd, the N64 display-list debugger.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func boilerPlate() {
	fmt.Println("\033[38;2;255;20;147mgbd\033[0m - N64 graphics display-list debugger")
	fmt.Println("Walks an F3DEX2 display list against an RDRAM snapshot, validating")
	fmt.Println("pipeline state and printing a readable disassembly as it goes.")
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: gbd [flags] <rdram-image> <start>")
	fmt.Fprintln(os.Stderr, "  <start> is one of:")
	fmt.Fprintln(os.Stderr, "    0xNNNNNNNN   a literal display-list address")
	fmt.Fprintln(os.Stderr, "    *0xNNNNNNNN  the address of a pointer to the display list")
	fmt.Fprintln(os.Stderr, "    AUTO         start at address 0x00000000")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

// parseStart parses the positional start-location argument (spec.md §6).
func parseStart(arg string) (StartLocation, error) {
	switch {
	case arg == "AUTO":
		return StartLocation{Literal: true, Addr: 0}, nil
	case strings.HasPrefix(arg, "*"):
		v, err := strconv.ParseUint(strings.TrimPrefix(arg, "*"), 0, 32)
		if err != nil {
			return StartLocation{}, fmt.Errorf("bad pointer address %q: %w", arg, err)
		}
		return StartLocation{Literal: false, Addr: uint32(v)}, nil
	default:
		v, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return StartLocation{}, fmt.Errorf("bad start address %q: %w", arg, err)
		}
		return StartLocation{Literal: true, Addr: uint32(v)}, nil
	}
}

// analyze is the primary entry point (spec.md §6): it opens the RDRAM
// backend, resolves the start location, walks the display list, and
// performs every post-run side effect (state snapshot, clipboard report).
// It returns 0 on clean termination, -1 on startup failure or a crashed run.
func analyze(out io.Writer, registry *UcodeRegistry, opts *Options, backend RDRAMBackend, backendArg string, start StartLocation) int {
	if err := backend.Open(backendArg); err != nil {
		fmt.Fprintf(os.Stderr, "gbd: opening %q: %v\n", backendArg, err)
		return -1
	}
	defer backend.Close()

	interp := NewInterpreter(out, registry, opts, backend)

	reader := NewRDRAMReader(backend)
	if start.Literal {
		interp.PC = start.Addr
	} else {
		pc, err := reader.ReadU32(start.Addr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gbd: reading start pointer at %08X: %v\n", start.Addr, err)
			return -1
		}
		interp.PC = pc
	}

	if opts.ScriptPath != "" {
		hook, err := loadScriptHook(opts.ScriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gbd: %v\n", err)
			return -1
		}
		defer hook.Close()
		interp.script = hook
	}

	if opts.Interactive {
		NewInteractiveStepper(interp).Run()
	} else {
		interp.Run()
	}

	if opts.DumpStatePath != "" {
		if err := WriteSnapshotFile(opts.DumpStatePath, TakeSnapshot(interp)); err != nil {
			fmt.Fprintf(os.Stderr, "gbd: writing state snapshot: %v\n", err)
		}
	}

	if opts.CopyReport {
		if err := CopyReportToClipboard(BuildReport(interp)); err != nil {
			fmt.Fprintf(os.Stderr, "gbd: %v\n", err)
		}
	}

	if interp.Diag.Crashed() {
		return -1
	}
	return 0
}

func main() {
	opts := &Options{}
	fs := flag.NewFlagSet("gbd", flag.ExitOnError)
	opts.RegisterFlags(fs)
	showVersion := fs.Bool("version", false, "print version and compiled features")
	fs.Usage = usage
	fs.Parse(os.Args[1:])

	if *showVersion {
		printFeatures()
		return
	}

	args := fs.Args()
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}

	boilerPlate()

	start, err := parseStart(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "gbd: %v\n", err)
		os.Exit(1)
	}

	registry := NewUcodeRegistry(UcodeEntry{TextStart: 0, Tag: UcodeF3DEX2})
	if opts.UcodeOverride != "" {
		switch opts.UcodeOverride {
		case "F3DEX2":
			registry = NewUcodeRegistry(UcodeEntry{TextStart: 0, Tag: UcodeF3DEX2})
		case "S2DEX2":
			registry = NewUcodeRegistry(UcodeEntry{TextStart: 0, Tag: UcodeS2DEX2})
		case "F3DEX3":
			registry = NewUcodeRegistry(UcodeEntry{TextStart: 0, Tag: UcodeF3DEX3})
		default:
			fmt.Fprintf(os.Stderr, "gbd: unrecognized --ucode %q\n", opts.UcodeOverride)
			os.Exit(1)
		}
	}

	if analyze(os.Stdout, registry, opts, NewFileRDRAMBackend(), args[0], start) != 0 {
		os.Exit(1)
	}
}
