package main

import "testing"

func TestValidateRenderModeCIRenderTileRequiresTlut(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	interp.Pipeline.SetColorImage(interp.Diag, interp.RDRAM, FmtRGBA, SizBits16, 4, 0x40)
	interp.Pipeline.SetScissor(interp.Diag, interp.RDRAM, 0, 0, 16, 16)
	cleanOneCycleState(interp.Pipeline)
	interp.Tiles.SetTile(interp.Diag, 0, FmtCI, SizBits8, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	interp.Pipeline.RenderTileOn = true

	validateRenderMode(interp, PrimTri)
	if !interp.Diag.Crashed() {
		t.Fatal("a CI-format render tile without TLUT mode enabled must be fatal")
	}
}

func TestValidateRenderModeNonCIRenderTileRejectsTlut(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	interp.Pipeline.SetColorImage(interp.Diag, interp.RDRAM, FmtRGBA, SizBits16, 4, 0x40)
	interp.Pipeline.SetScissor(interp.Diag, interp.RDRAM, 0, 0, 16, 16)
	cleanOneCycleState(interp.Pipeline)
	interp.Tiles.SetTile(interp.Diag, 0, FmtRGBA, SizBits16, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	interp.Pipeline.OtherMode.SetHiField(omTexLUTShift, omTexLUTLen, 2)
	interp.Pipeline.RenderTileOn = true

	validateRenderMode(interp, PrimTri)
	if !interp.Diag.Crashed() {
		t.Fatal("a non-CI render tile with TLUT mode enabled must be fatal")
	}
}

func TestValidateRenderModeCleanRenderTileDoesNotCrash(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	interp.Pipeline.SetColorImage(interp.Diag, interp.RDRAM, FmtRGBA, SizBits16, 4, 0x40)
	interp.Pipeline.SetScissor(interp.Diag, interp.RDRAM, 0, 0, 16, 16)
	cleanOneCycleState(interp.Pipeline)
	interp.Tiles.SetTile(interp.Diag, 0, FmtRGBA, SizBits16, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	interp.Pipeline.RenderTileOn = true

	validateRenderMode(interp, PrimTri)
	if interp.Diag.Crashed() {
		t.Fatalf("a consistent RGBA render tile should not crash: %d errors", interp.Diag.errorCount)
	}
	if interp.Pipeline.TileBusy[0] == 0 {
		t.Fatal("checkRenderTile should mark the render tile busy")
	}
}

func TestValidateRenderModeCopyModeMismatch8b(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	interp.Pipeline.SetColorImage(interp.Diag, interp.RDRAM, FmtRGBA, SizBits32, 4, 0x40)
	interp.Pipeline.SetScissor(interp.Diag, interp.RDRAM, 0, 0, 16, 16)
	cleanOneCycleState(interp.Pipeline)
	interp.Pipeline.OtherMode.SetHiField(omCycleTypeShift, omCycleTypeLen, CycleTypeCopy)
	interp.Pipeline.OtherMode.Lo = 0 // clear render mode: AA/Z/FORCE_BL all off, required in copy mode
	interp.Tiles.SetTile(interp.Diag, 0, FmtCI, SizBits4, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	interp.Pipeline.RenderTileOn = true

	validateRenderMode(interp, PrimTri)
	if !interp.Diag.Crashed() {
		t.Fatal("a 4-bit tile copied to a non-8-bit color image must be fatal")
	}
}
