package main

// OtherMode is the RDP's 64-bit configuration word, partitioned into named
// subfields. Updates may replace the whole word or a single bitfield (shift
// + length mask), matching spec.md §3/§4.4.
type OtherMode struct {
	Hi uint32
	Lo uint32
}

// OtherMode-hi bitfield layout (shift, length in bits).
const (
	omAlphaDitherShift, omAlphaDitherLen = 4, 2
	omRGBDitherShift, omRGBDitherLen     = 6, 2
	omCombKeyShift, omCombKeyLen         = 8, 1
	omTexConvertShift, omTexConvertLen   = 9, 3
	omTexFilterShift, omTexFilterLen     = 12, 2
	omTexLUTShift, omTexLUTLen           = 14, 2
	omTexLODShift, omTexLODLen           = 16, 1
	omTexDetailShift, omTexDetailLen     = 17, 2
	omTexPerspShift, omTexPerspLen       = 19, 1
	omCycleTypeShift, omCycleTypeLen     = 20, 2
	omPipelineShift, omPipelineLen       = 23, 1
)

// OtherMode-lo bitfield layout.
const (
	omAlphaCompareShift, omAlphaCompareLen = 0, 2
	omZSrcSelShift, omZSrcSelLen           = 2, 1
	omRenderModeShift, omRenderModeLen     = 3, 29
)

// Cycle-type values (OtherMode-hi CYCLETYPE field).
const (
	CycleType1Cyc = iota
	CycleType2Cyc
	CycleTypeCopy
	CycleTypeFill
)

func bitfield(word uint32, shift, length int) uint32 {
	return (word >> uint(shift)) & ((1 << uint(length)) - 1)
}

func setBitfield(word uint32, shift, length int, value uint32) uint32 {
	mask := uint32((1<<uint(length))-1) << uint(shift)
	return (word &^ mask) | ((value << uint(shift)) & mask)
}

// CycleType extracts the pipeline cycle-type subfield.
func (om OtherMode) CycleType() uint32 {
	return bitfield(om.Hi, omCycleTypeShift, omCycleTypeLen)
}

// TexturePersp reports whether perspective-correct texturing is enabled.
func (om OtherMode) TexturePersp() bool {
	return bitfield(om.Hi, omTexPerspShift, omTexPerspLen) != 0
}

// ZSrcSel reports the depth-source-selection subfield (0 = pixel, 1 = prim).
func (om OtherMode) ZSrcSel() uint32 {
	return bitfield(om.Lo, omZSrcSelShift, omZSrcSelLen)
}

// Render-mode bit positions (absolute within Lo, matching the original's
// AA_EN/Z_CMP/Z_UPD/IM_RD/FORCE_BL macros).
const (
	rmAAEnBit    = 1 << 3
	rmZCmpBit    = 1 << 4
	rmZUpdBit    = 1 << 5
	rmImRdBit    = 1 << 6
	rmForceBlBit = 1 << 14
)

// RenderMode returns the full render-mode subfield (blend formula plus the
// AA/Z/coverage control bits).
func (om OtherMode) RenderMode() uint32 {
	return bitfield(om.Lo, omRenderModeShift, omRenderModeLen)
}

func (om OtherMode) AAEn() bool    { return om.Lo&rmAAEnBit != 0 }
func (om OtherMode) ForceBl() bool { return om.Lo&rmForceBlBit != 0 }
func (om OtherMode) ZCmp() bool    { return om.Lo&rmZCmpBit != 0 }
func (om OtherMode) ZUpd() bool    { return om.Lo&rmZUpdBit != 0 }
func (om OtherMode) ImRd() bool    { return om.Lo&rmImRdBit != 0 }

// TexFilterPoint reports whether the texture filter subfield selects
// point-sampling (G_TF_POINT), required in COPY mode.
func (om OtherMode) TexFilterPoint() bool {
	return bitfield(om.Hi, omTexFilterShift, omTexFilterLen) == 0
}

// TLUTEnabled reports whether the TEXTLUT subfield selects anything but
// G_TT_NONE.
func (om OtherMode) TLUTEnabled() bool {
	return bitfield(om.Hi, omTexLUTShift, omTexLUTLen) != 0
}

// SetHi replaces the whole hi word.
func (om *OtherMode) SetHi(v uint32) { om.Hi = v }

// SetLo replaces the whole lo word.
func (om *OtherMode) SetLo(v uint32) { om.Lo = v }

// SetHiField replaces a single hi subfield given its shift/length mask and
// new value, per the bitfield-granular other-mode setter class in spec.md
// §4.4.
func (om *OtherMode) SetHiField(shift, length int, value uint32) {
	om.Hi = setBitfield(om.Hi, shift, length, value)
}

// SetLoField replaces a single lo subfield.
func (om *OtherMode) SetLoField(shift, length int, value uint32) {
	om.Lo = setBitfield(om.Lo, shift, length, value)
}
