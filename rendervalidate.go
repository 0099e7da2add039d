package main

// PrimType distinguishes the few ways the render-mode validator's checks
// diverge by primitive, mirroring the original's chk_render_primitive
// prim_type switch (original_source/src/libgbd/gbd.c).
type PrimType int

const (
	PrimTri PrimType = iota
	PrimFillRect
	PrimTexRect
)

// validateRenderMode runs the combiner/blender/cycle-type cross-checks that
// apply to every render primitive regardless of which command issued it,
// grounded on chk_render_primitive. In 2-cycle mode it works out whether
// TEXEL1 is read by the active combiner configuration and, if so, also
// checks and marks the next tile busy; it returns that flag, which is
// always false outside 2-cycle mode.
func validateRenderMode(i *Interpreter, prim PrimType) (usesTexel1 bool) {
	om := i.Pipeline.OtherMode
	cc := i.Pipeline.Combiner
	bl := i.Pipeline.Blender
	cycle := om.CycleType()

	if !i.Pipeline.Scissor.set {
		i.Diag.Emit(DiagScissorUnset)
	}
	if !i.Pipeline.ColorImage.set {
		i.Diag.Emit(DiagCimgUnset)
	}

	blC1Set := bl.CycleIsSet(0)
	blC2Set := bl.CycleIsSet(1)
	blendEn := om.AAEn() || om.ForceBl()
	if !blendEn && (blC1Set || blC2Set) {
		i.Diag.Emit(DiagBlenderSetButUnused)
	}

	if cycle == CycleTypeFill && prim == PrimFillRect && !i.Pipeline.FillColorSet {
		i.Diag.Emit(DiagFillrectFillcolorUnset)
	}

	if cycle != CycleTypeFill && cycle != CycleTypeCopy && prim != PrimFillRect {
		shadeAllowed := prim != PrimTexRect && i.Pipeline.GeometryMode&GeomShade != 0
		if !shadeAllowed {
			errmsg := "G_SHADE not set in geometry mode"
			if prim == PrimTexRect {
				errmsg = "rendering textured rectangle"
			}
			if cc.HasColorInput(0, CCShade) || cc.RGB[0].C == CCShadeAlpha {
				i.Diag.Emit(DiagCCShadeInvalid, 1, "RGB", errmsg)
			}
			if cc.HasAlphaInput(0, CCShade) {
				i.Diag.Emit(DiagCCShadeInvalid, 1, "Alpha", errmsg)
			}
			if cc.HasColorInput(1, CCShade) || cc.RGB[1].C == CCShadeAlpha {
				i.Diag.Emit(DiagCCShadeInvalid, 2, "RGB", errmsg)
			}
			if cc.HasAlphaInput(1, CCShade) {
				i.Diag.Emit(DiagCCShadeInvalid, 2, "Alpha", errmsg)
			}
			if bl.Cycle[0].MB.P == BLShadeAlpha {
				i.Diag.Emit(DiagCCShadeAlphaInvalid, 1, errmsg)
			}
			if bl.Cycle[1].MB.P == BLShadeAlpha {
				i.Diag.Emit(DiagCCShadeAlphaInvalid, 2, errmsg)
			}
		}
	}

	zsrc := om.ZSrcSel()
	zCmp := om.ZCmp()
	zUpd := om.ZUpd()
	if zCmp || zUpd {
		if prim == PrimTri {
			if zsrc != 1 && i.Pipeline.GeometryMode&GeomZBuffer == 0 {
				i.Diag.Emit(DiagZSPixelSetWithoutZbuffer)
			}
		} else if zsrc != 1 {
			i.Diag.Emit(DiagZSrcInvalid)
		}
	}

	switch cycle {
	case CycleType1Cyc:
		if bl.Cycle[0] != bl.Cycle[1] {
			i.Diag.Emit(DiagBlenderStagesDiffer1Cyc)
		}
		if cc.StagesDiffer() {
			i.Diag.Emit(DiagCCStagesDiffer1Cyc)
		}
		if cc.HasColorInput(1, CCCombined) {
			i.Diag.Emit(DiagCCCombinedInC1, "RGB")
		}
		if cc.HasAlphaInput(1, CCCombined) {
			i.Diag.Emit(DiagCCCombinedInC1, "Alpha")
		}
		if cc.RGB[1].C == CCCombinedAlpha {
			i.Diag.Emit(DiagCCCombinedAlphaInC1)
		}
		if cc.HasColorInput(1, CCTexel1) {
			i.Diag.Emit(DiagCCTexel1RGB1Cyc)
		}
		if cc.HasAlphaInput(1, CCTexel1Alpha) {
			i.Diag.Emit(DiagCCTexel1Alpha1Cyc)
		}
		if cc.RGB[1].C == CCTexel1Alpha {
			i.Diag.Emit(DiagCCTexel1RGBA1Cyc)
		}
	case CycleType2Cyc:
		if cc.HasColorInput(0, CCCombined) {
			i.Diag.Emit(DiagCCCombinedInC2C1, "RGB")
		}
		if cc.HasAlphaInput(0, CCCombined) {
			i.Diag.Emit(DiagCCCombinedInC2C1, "Alpha")
		}
		if cc.RGB[0].C == CCCombinedAlpha {
			i.Diag.Emit(DiagCCCombinedAlphaInC2C1)
		}
		if cc.HasColorInput(1, CCTexel1) {
			i.Diag.Emit(DiagCCTexel1RGBC22Cyc)
		}
		if cc.HasAlphaInput(1, CCTexel1Alpha) {
			i.Diag.Emit(DiagCCTexel1AlphaC22Cyc)
		}
		if cc.RGB[1].C == CCTexel1Alpha {
			i.Diag.Emit(DiagCCTexel1RGBAC22Cyc)
		}
		usesTexel1 = prim != PrimFillRect &&
			(cc.HasColorInput(0, CCTexel1) || cc.HasColorInput(1, CCTexel0) ||
				cc.HasAlphaInput(0, CCTexel1Alpha) || cc.HasAlphaInput(1, CCTexel0Alpha))
	case CycleTypeFill:
		if om.ImRd() || zCmp {
			i.Diag.Emit(DiagFillmodeCimgZimgRdPerPixel)
		}
		if zUpd && zsrc != 1 {
			i.Diag.Emit(DiagFillmodeZimgWrPerPixel)
		}
	case CycleTypeCopy:
		if om.ImRd() || zCmp {
			i.Diag.Emit(DiagCopymodeCimgZimgRdPerPixel)
		}
		if zUpd && zsrc != 1 {
			i.Diag.Emit(DiagCopymodeZimgWrPerPixel)
		}
		if om.AAEn() {
			i.Diag.Emit(DiagCopymodeAA)
		}
		if om.RenderMode() != 0 {
			i.Diag.Emit(DiagCopymodeBlSet)
		}
		if !om.TexFilterPoint() {
			i.Diag.Emit(DiagCopymodeTextureFilter)
		}
	}

	tile := int(i.Pipeline.RenderTile)
	if prim == PrimTexRect || (prim == PrimTri && i.Pipeline.RenderTileOn) {
		checkRenderTile(i, tile)
		if usesTexel1 {
			if tile == 7 {
				i.Diag.Notef("TEXEL0 was tile 7 so TEXEL1 is sourced from tile 0\n")
			}
			checkRenderTile(i, (tile+1)&7)
		}
	}

	return usesTexel1
}

// checkRenderTile implements chk_render_tile: validates a render tile's
// format against the active TLUT mode and, in COPY mode, against the bound
// color image's pixel size, then marks it busy.
func checkRenderTile(i *Interpreter, tile int) {
	td, ok := i.Tiles.Descriptor(tile)
	if !ok {
		i.Diag.Emit(DiagTiledescBad)
		return
	}

	tlutEn := i.Pipeline.OtherMode.TLUTEnabled()
	if td.Fmt == FmtCI {
		if !tlutEn {
			i.Diag.Emit(DiagCIRenderTileNoTlut)
		}
	} else if tlutEn {
		i.Diag.Emit(DiagNoCIRenderTileTlut)
	}

	if i.Pipeline.OtherMode.CycleType() == CycleTypeCopy {
		if i.Pipeline.ColorImage.Siz != SizBits8 && (td.Siz == SizBits4 || td.Siz == SizBits8) {
			i.Diag.Emit(DiagCopymodeMismatch8b)
		}
		if i.Pipeline.ColorImage.Siz == SizBits16 && td.Siz != SizBits16 {
			i.Diag.Emit(DiagCopymodeMismatch16b)
		}
	}

	i.Pipeline.TileBusy[tile] = 1
}
