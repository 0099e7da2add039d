package main

func init() {
	registerHandler(MacroSetCImg, handleSetCImg)
	registerHandler(MacroSetZImg, handleSetZImg)
	registerHandler(MacroSetTImg, handleSetTImg)
	registerHandler(MacroSetScissor, handleSetScissor)
	registerHandler(MacroSetTile, handleSetTile)
	registerHandler(MacroSetTileSize, handleSetTileSize)
	registerHandler(MacroLoadTile, handleLoadTile)
	registerHandler(MacroLoadBlock, handleLoadBlock)
	registerHandler(MacroLoadTLUT, handleLoadTLUT)
	registerHandler(MacroLoadSync, handleLoadSync)
	registerHandler(MacroPipeSync, handlePipeSync)
	registerHandler(MacroTileSync, handleTileSync)
	registerHandler(MacroFullSync, handleFullSync)
	registerHandler(MacroSetOtherModeH, handleSetOtherModeH)
	registerHandler(MacroSetOtherModeL, handleSetOtherModeL)
	registerHandler(MacroSetCombine, handleSetCombine)
	registerHandler(MacroSetFillColor, handleSetFillColor)
	registerHandler(MacroFillRect, handleFillRect)
	registerHandler(MacroTexRect, handleTexRect)
	registerHandler(MacroTexRectFlip, handleTexRect)
	registerHandler(MacroLoadUcode, handleLoadUcode)
	registerHandler(MacroNoOp, handleNoOp)
}

func handleSetCImg(i *Interpreter, m Macro) {
	i.Pipeline.RequirePipeSync(i.Diag)
	fmtv := uint32(m.Arg(0))
	siz := uint32(m.Arg(1))
	width := uint32(m.Arg(2))
	addr := i.Segments.Translate(i.Diag, uint32(m.Arg(3)))
	i.Pipeline.SetColorImage(i.Diag, i.RDRAM, fmtv, siz, width, addr)
}

func handleSetZImg(i *Interpreter, m Macro) {
	i.Pipeline.RequirePipeSync(i.Diag)
	addr := i.Segments.Translate(i.Diag, uint32(m.Arg(3)))
	i.Pipeline.SetDepthImage(i.Diag, i.RDRAM, addr)
}

func handleSetTImg(i *Interpreter, m Macro) {
	fmtv := uint32(m.Arg(0))
	siz := uint32(m.Arg(1))
	width := uint32(m.Arg(2))
	addr := i.Segments.Translate(i.Diag, uint32(m.Arg(3)))
	i.Pipeline.SetTextureImage(i.Diag, i.RDRAM, fmtv, siz, width, addr)
}

// handleSetScissor implements SetScissor: decoded coordinates are already
// in 10.2 fixed-point units (spec.md §3 ScissorRect).
func handleSetScissor(i *Interpreter, m Macro) {
	i.Pipeline.SetScissor(i.Diag, i.RDRAM,
		int32(m.Arg(0)), int32(m.Arg(1)), int32(m.Arg(2)), int32(m.Arg(3)))
}

func handleSetTile(i *Interpreter, m Macro) {
	fmtv := uint32(m.Arg(0))
	siz := uint32(m.Arg(1))
	line := uint32(m.Arg(2))
	tmem := uint32(m.Arg(3))
	idx := int(m.Arg(4))
	i.Pipeline.RequireTileSync(i.Diag, idx)
	palette := uint32(m.Arg(5))
	cmt := uint32(m.Arg(6))
	maskt := uint32(m.Arg(7))
	shiftt := uint32(m.Arg(8))
	cms := uint32(m.Arg(9))
	masks := uint32(m.Arg(10))
	shifts := uint32(m.Arg(11))
	i.Tiles.SetTile(i.Diag, idx, fmtv, siz, line, tmem, palette, cms, cmt, masks, maskt, shifts, shiftt)
	if idx == int(i.Pipeline.RenderTile) {
		i.Pipeline.RenderTileOn = true
	}
}

func handleSetTileSize(i *Interpreter, m Macro) {
	uls := int32(m.Arg(0))
	ult := int32(m.Arg(1))
	idx := int(m.Arg(2))
	i.Pipeline.RequireTileSync(i.Diag, idx)
	lrs := int32(m.Arg(3))
	lrt := int32(m.Arg(4))
	i.Tiles.SetTileSize(i.Diag, idx, uls, ult, lrs, lrt)
}

// handleLoadTile implements LoadTile: derives the texel count from the tile
// descriptor's fetch window and defers to the same TMEM-occupancy tracking
// LoadBlock uses.
func handleLoadTile(i *Interpreter, m Macro) {
	idx := int(m.Arg(2))
	if idx < 0 || idx >= numTiles {
		i.Diag.Emit(DiagTiledescBad)
		return
	}
	i.Pipeline.RequireLoadSync(i.Diag)
	lrs := int32(m.Arg(3))
	lrt := int32(m.Arg(4))
	uls := int32(m.Arg(0))
	ult := int32(m.Arg(1))
	w := int((lrs-uls)>>2) + 1
	h := int((lrt-ult)>>2) + 1
	if w <= 0 || h <= 0 {
		i.Diag.Emit(DiagTiledescBad)
		return
	}
	i.Tiles.LoadBlock(i.Diag, idx, w*h)
}

func handleLoadBlock(i *Interpreter, m Macro) {
	i.Pipeline.RequireLoadSync(i.Diag)
	idx := int(m.Arg(0))
	texels := int(m.Arg(1))
	i.Tiles.LoadBlock(i.Diag, idx, texels)
	if i.Opts.PrintTextures {
		PrintTexturePreview(i.Out, i.Tiles, idx)
	}
}

func handleLoadTLUT(i *Interpreter, m Macro) {
	i.Pipeline.RequireLoadSync(i.Diag)
	idx := int(m.Arg(0))
	count := int(m.Arg(1))
	i.Tiles.LoadTLUT(i.Diag, idx, count)
	i.Pipeline.LastTLUTSet = true
}

func handleLoadSync(i *Interpreter, m Macro) { i.Pipeline.LoadSync(i.Diag) }
func handlePipeSync(i *Interpreter, m Macro) { i.Pipeline.PipeSync(i.Diag) }
func handleTileSync(i *Interpreter, m Macro) { i.Pipeline.TileSync(i.Diag) }
func handleFullSync(i *Interpreter, m Macro) { i.Pipeline.FullSync() }

// handleSetOtherModeH/L implement the bitfield-granular othermode setters:
// args are [shift, length, value], per the decoder's extraction.
func handleSetOtherModeH(i *Interpreter, m Macro) {
	i.Pipeline.RequirePipeSync(i.Diag)
	shift := int(m.Arg(0))
	length := int(m.Arg(1))
	value := uint32(m.Arg(2))
	i.Pipeline.OtherMode.SetHiField(shift, length, value)
}

func handleSetOtherModeL(i *Interpreter, m Macro) {
	i.Pipeline.RequirePipeSync(i.Diag)
	shift := int(m.Arg(0))
	length := int(m.Arg(1))
	value := uint32(m.Arg(2))
	i.Pipeline.OtherMode.SetLoField(shift, length, value)
	if shift == omRenderModeShift && length == omRenderModeLen {
		i.Pipeline.Blender = DecodeBlender(i.Pipeline.OtherMode.Lo)
	}
}

// handleSetCombine decodes the four combiner control words into the packed
// CombinerConfig representation.
func handleSetCombine(i *Interpreter, m Macro) {
	i.Pipeline.RequirePipeSync(i.Diag)
	word0 := uint32(m.Arg(0))
	word1 := uint32(m.Arg(1))
	i.Pipeline.Combiner = DecodeCombiner(word0, word1)
}

func handleSetFillColor(i *Interpreter, m Macro) {
	i.Pipeline.RequirePipeSync(i.Diag)
	i.Pipeline.SetFillColor(uint32(m.Arg(0)))
}

// handleFillRect implements FillRect: requires a color image bound, and
// defers the rest of the cross-checks to the shared render-mode validator.
func handleFillRect(i *Interpreter, m Macro) {
	if !i.Pipeline.ColorImage.set {
		i.Diag.Emit(DiagCimgUnset)
	}
	validateRenderMode(i, PrimFillRect)
	i.Pipeline.PipeBusy = true
}

// handleTexRect implements TextureRectangle/TextureRectangleFlip: warns when
// one is drawn in fill mode; otherwise reports enabled perspective
// correction as fatal, since a texrect has no W to divide by. The shared
// render-mode validator then checks the render tile and marks it busy.
func handleTexRect(i *Interpreter, m Macro) {
	cycle := i.Pipeline.OtherMode.CycleType()
	if cycle == CycleTypeFill {
		i.Diag.Emit(DiagTexrectInFillmode)
	} else if i.Pipeline.OtherMode.TexturePersp() {
		i.Diag.Emit(DiagTexrectPerspCorrect)
	}
	validateRenderMode(i, PrimTexRect)
}

// handleLoadUcode implements LoadUcode: resolves the microcode variant for
// the loaded text segment via the UcodeRegistry, deferring activation to the
// Interpreter's main loop (spec.md §4.3's "adopt nextUcode" step).
func handleLoadUcode(i *Interpreter, m Macro) {
	textStart := uint32(m.Arg(0))
	tag, ok := i.Registry.Match(textStart)
	if !ok {
		i.Diag.Emit(DiagLoadUnrecognizedUcode)
		return
	}
	i.nextUcode = tag
}

// handleNoOp implements the NoOp-tag discriminator (spec.md §4.4): bits
// 16-23 of the first word select debug-scope open/close, a free-form
// string tag (addressed by the second word), or an unrecognized tag to warn
// about.
func handleNoOp(i *Interpreter, m Macro) {
	word0 := uint32(m.Arg(0))
	word1 := uint32(m.Arg(1))
	tag := (word0 >> 16) & 0xFF
	switch tag {
	case noOpTagNone:
		// A bare tag of 0 is the ordinary shape of opSPNoOp (opcode 0, word0
		// all-zero): original_source/src/libgbd/gbd.c's chk_SPNoOp is itself a
		// true no-op, never a warning. Only tags that claim to be a debug
		// marker but aren't one of the known kinds fall through to the
		// unrecognized-tag warning below.
	case noOpTagOpen:
		i.DebugScopes = append(i.DebugScopes, DebugScope{Tag: "scope", PC: i.PC})
	case noOpTagClose:
		if n := len(i.DebugScopes); n > 0 {
			i.DebugScopes = i.DebugScopes[:n-1]
		}
	case noOpTagString:
		straddr := i.Segments.Translate(i.Diag, word1)
		if s, ok := readDebugString(i, straddr); ok {
			i.Diag.Notef("NoOp string tag at %08X: %q\n", i.PC, s)
		} else {
			i.Diag.Notef("NoOp string tag at %08X\n", i.PC)
		}
	default:
		i.Diag.Emit(DiagUnkNoopTag3)
	}
}

// NoOp tag byte values (original_source/src/libgbd/gbd.c's chk_NoOp switch).
const (
	noOpTagNone   = 0
	noOpTagOpen   = 1
	noOpTagClose  = 2
	noOpTagString = 3
)
