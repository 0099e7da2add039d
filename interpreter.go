package main

import (
	"fmt"
	"io"
)

// StartLocation is the two-variant sum type for where the walk begins
// (spec.md §6 / §9): either a literal address, or a pointer to be read and
// followed.
type StartLocation struct {
	Literal   bool
	Addr      uint32 // literal address, or the address holding the pointer
}

// DebugScope is one entry of the DispEntry stack, preserved only for
// post-mortem printing (spec.md §4.4 NoOp-tag handler).
type DebugScope struct {
	Tag string
	PC  uint32
}

// Interpreter is the single owning value containing every substate named in
// spec.md §3, passed explicitly (as the first parameter) to every handler, per
// SPEC_FULL.md §4's "rearchitected as a single owning value" guidance.
type Interpreter struct {
	Out      io.Writer
	Diag     *Diagnostics
	Opts     *Options
	RDRAM    *RDRAMReader
	Backend  RDRAMBackend

	Segments *SegmentMap
	DLStack  DLStack
	Matrices *MatrixStack
	Tiles    *TileTable
	Pipeline *PipelineState
	Vertices VertexCache

	Registry    *UcodeRegistry
	Decoders    map[UcodeTag]Decoder
	ActiveUcode UcodeTag
	nextUcode   UcodeTag

	PC       uint32
	NGfx     int
	TaskDone bool

	PerspNorm   float32
	DebugScopes []DebugScope

	pcWasSet bool
	script   *scriptHook // nil unless --script was given
}

// dramStackSizeDefault is the configured matrix-stack DRAM budget used when
// the caller does not override it (16 matrices, a typical ucode default).
const dramStackSizeDefault = 16 * matrixSizeBytes

// NewInterpreter constructs an Interpreter with the initial state specified
// in spec.md §4.3.
func NewInterpreter(out io.Writer, registry *UcodeRegistry, opts *Options, backend RDRAMBackend) *Interpreter {
	i := &Interpreter{
		Out:      out,
		Diag:     NewDiagnostics(out, opts.Quiet),
		Opts:     opts,
		RDRAM:    NewRDRAMReader(backend),
		Backend:  backend,
		Segments: NewSegmentMap(),
		Matrices: NewMatrixStack(dramStackSizeDefault),
		Tiles:    NewTileTable(),
		Pipeline: NewPipelineState(),
		Registry: registry,
		Decoders: map[UcodeTag]Decoder{
			UcodeF3DEX2: NewF3DEX2Decoder(),
		},
		PerspNorm: 1.0,
	}
	i.ActiveUcode = registry.First()
	i.nextUcode = i.ActiveUcode
	return i
}

// decoder returns the Decoder for the interpreter's active ucode,
// falling back to F3DEX2 if a variant-specific Decoder was never
// registered (S2DEX2/F3DEX3 are out of scope per spec.md §1, treated as
// sharing the F3DEX2 command surface for unrecognized-opcode purposes).
func (i *Interpreter) decoder() Decoder {
	if d, ok := i.Decoders[i.ActiveUcode]; ok {
		return d
	}
	return i.Decoders[UcodeF3DEX2]
}

// fetchPacket reads the 8-byte packet at physical address pc.
func (i *Interpreter) fetchPacket(pc uint32) ([8]byte, bool) {
	var buf [8]byte
	if !i.RDRAM.RangeValid(pc, 8) {
		return buf, false
	}
	b, err := i.RDRAM.ReadBytes(pc, 8)
	if err != nil {
		return buf, false
	}
	copy(buf[:], b)
	return buf, true
}

// Step executes a single conceptual loop step (spec.md §4.3).
func (i *Interpreter) Step() {
	if i.TaskDone || i.Diag.Crashed() {
		return
	}

	raw, ok := i.fetchPacket(i.PC)
	if !ok {
		i.Diag.Emit(DiagAddrNotInRdram)
		return
	}

	nextPacketIdx := 0
	extraPackets := [][8]byte{}
	extra := func() ([8]byte, bool) {
		p, ok := i.fetchPacket(i.PC + uint32((nextPacketIdx+1)*PacketSize))
		if ok {
			extraPackets = append(extraPackets, p)
			nextPacketIdx++
		}
		return p, ok
	}

	dec := i.decoder()
	macro := dec.Decode(raw, extra)

	fmt.Fprintf(i.Out, "  /* %d %08X */  %s,\n", i.NGfx, i.PC, dec.Pretty(macro, i.Opts))

	if i.Opts.PrintMultiPacket {
		for _, sub := range macro.Sub {
			fmt.Fprintf(i.Out, "    // sub: %s(%v)\n", sub.Name, sub.Args)
		}
	}

	if h, ok := macroHandlers[macro.ID]; ok {
		h(i, macro)
	} else {
		i.Diag.Emit(DiagInvalidGfxCmd)
	}

	if i.script != nil {
		i.script.onStep(i, macro)
	}

	i.Pipeline.DecayTileBusy()

	if !i.pcWasSet {
		i.PC += uint32(macro.Packets) * PacketSize
	}
	i.pcWasSet = false

	i.NGfx++
	i.ActiveUcode = i.nextUcode

	if i.Opts.ToNum > 0 && i.NGfx >= i.Opts.ToNum {
		i.TaskDone = true
	}
}

// SetPC redirects the program counter; handlers that branch call this
// instead of letting Step's default advance apply.
func (i *Interpreter) SetPC(pc uint32) {
	i.PC = pc
	i.pcWasSet = true
}

// Run drives Step until termination and prints the post-mortem.
func (i *Interpreter) Run() {
	for !i.TaskDone && !i.Diag.Crashed() {
		i.Step()
	}
	if i.Diag.Crashed() {
		PrintPostMortem(i)
	} else {
		i.Diag.Notef("Graphics task completed successfully.\n")
	}
}
