package main

import "flag"

// Options is the flat record of recognized behavior switches (spec.md §6),
// grounded on original_source/include/libgbd/gbd.h's gbd_options_t.
type Options struct {
	Quiet            bool
	PrintVertices    bool
	PrintTextures    bool
	PrintMatrices    bool
	PrintLights      bool
	PrintMultiPacket bool
	HexColor         bool
	QMacros          bool
	ToNum            int // 0 means unset (no step limit)
	NoVolumeCull     bool
	NoDepthCull      bool
	AllDepthCull     bool

	// Supplemental, reinstated from original_source/src/gbd/main.c per
	// SPEC_FULL.md §6.
	UcodeOverride string
	DumpStatePath string
	ScriptPath    string
	Interactive   bool
	CopyReport    bool
}

// RegisterFlags wires Options fields to fs, matching the teacher's
// stdlib-`flag`-based CLI convention (main.go parses os.Args directly
// rather than importing a third-party flags package).
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-error diagnostics")
	fs.BoolVar(&o.PrintVertices, "print-vertices", false, "accepted but has no effect: vertex records are not dumped")
	fs.BoolVar(&o.PrintTextures, "print-textures", false, "render a terminal preview of each loaded texture")
	fs.BoolVar(&o.PrintMatrices, "print-matrices", false, "accepted but has no effect: matrices are not dumped")
	fs.BoolVar(&o.PrintLights, "print-lights", false, "accepted but has no effect: light structures are not dumped")
	fs.BoolVar(&o.PrintMultiPacket, "print-multi-packet", false, "also print sub-packets of compound macros")
	fs.BoolVar(&o.HexColor, "hex-color", false, "emit color arguments in hex rather than decimal")
	fs.BoolVar(&o.QMacros, "q-macros", false, "accepted but has no effect: no argument is wrapped in a qsXY(...) macro")
	fs.IntVar(&o.ToNum, "to-num", 0, "terminate after executing the Nth command")
	fs.BoolVar(&o.NoVolumeCull, "no-volume-cull", false, "disable cull-display-list culling")
	fs.BoolVar(&o.NoDepthCull, "no-depth-cull", false, "force branch-less-z never taken")
	fs.BoolVar(&o.AllDepthCull, "all-depth-cull", false, "force branch-less-z always taken")

	fs.StringVar(&o.UcodeOverride, "ucode", "", "initial ucode variant: F3DEX2 (default), S2DEX2 or F3DEX3")
	fs.StringVar(&o.DumpStatePath, "dump-state", "", "write a JSON state snapshot after the run completes")
	fs.StringVar(&o.ScriptPath, "script", "", "run a Lua hook script during the run")
	fs.BoolVar(&o.Interactive, "interactive", false, "step the decoded stream one command at a time")
	fs.BoolVar(&o.CopyReport, "copy-report", false, "copy a short run summary (counts, termination) to the system clipboard")
}
