package main

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// F3DEX2 opcode bytes (top byte of each 8-byte packet), the standard
// microcode command encoding this Decoder targets.
const (
	opSPNoOp         = 0x00
	opVtx            = 0x01
	opModifyVtx      = 0x02
	opCullDL         = 0x03
	opBranchZ        = 0x04
	opTri1           = 0x05
	opTri2           = 0x06
	opQuad           = 0x07
	opLine3D         = 0x08
	opTexture        = 0xD7
	opPopMtx         = 0xD8
	opGeometryMode   = 0xD9
	opMtx            = 0xDA
	opMoveWord       = 0xDB
	opMoveMem        = 0xDC
	opLoadUcode      = 0xDD
	opDL             = 0xDE
	opEndDL          = 0xDF
	opNoOp           = 0xE0
	opRDPHalf1       = 0xE1
	opSetOtherModeL  = 0xE2
	opSetOtherModeH  = 0xE3
	opTexRect        = 0xE4
	opTexRectFlip    = 0xE5
	opLoadSync       = 0xE6
	opPipeSync       = 0xE7
	opTileSync       = 0xE8
	opFullSync       = 0xE9
	opSetScissor     = 0xED
	opSetPrimDepth   = 0xEE
	opLoadTLUT       = 0xF0
	opRDPHalf2       = 0xF1
	opSetTileSize    = 0xF2
	opLoadBlock      = 0xF3
	opLoadTile       = 0xF4
	opSetTile        = 0xF5
	opFillRect       = 0xF6
	opSetFillColor   = 0xF7
	opSetFogColor    = 0xF8
	opSetBlendColor  = 0xF9
	opSetPrimColor   = 0xFA
	opSetEnvColor    = 0xFB
	opSetCombine     = 0xFC
	opSetTImg        = 0xFD
	opSetZImg        = 0xFE
	opSetCImg        = 0xFF
)

type opcodeDef struct {
	id   MacroID
	name string
}

var f3dex2Table = map[byte]opcodeDef{
	// opcode 0 is padding/reserved memory as much as it is a real no-op: it
	// shares the NoOp-tag discriminator handling used by gsDPNoOp (spec.md
	// §4.4), so a run of zero words never reads as an invalid command.
	opSPNoOp:        {MacroNoOp, "gsSPNoOp"},
	opVtx:           {MacroVtx, "gsSPVertex"},
	opModifyVtx:     {MacroModifyVtx, "gsSPModifyVertex"},
	opCullDL:        {MacroCullDL, "gsSPCullDisplayList"},
	opBranchZ:       {MacroBranchZ, "gsSPBranchLessZraw"},
	opTri1:          {MacroTri1, "gsSP1Triangle"},
	opTri2:          {MacroTri2, "gsSP2Triangles"},
	opQuad:          {MacroQuad, "gsSP1Quadrangle"},
	opLine3D:        {MacroLine3D, "gsSPLine3D"},
	opTexture:       {MacroTexture, "gsSPTexture"},
	opPopMtx:        {MacroPopMtx, "gsSPPopMatrix"},
	opGeometryMode:  {MacroGeometryMode, "gsSPGeometryMode"},
	opMtx:           {MacroMtx, "gsSPMatrix"},
	opMoveWord:      {MacroMoveWord, "gsMoveWd"},
	opMoveMem:       {MacroMoveMem, "gsMoveMem"},
	opLoadUcode:     {MacroLoadUcode, "gsSPLoadUcode"},
	opDL:            {MacroDL, "gsSPDisplayList"},
	opEndDL:         {MacroEndDL, "gsSPEndDisplayList"},
	opNoOp:          {MacroNoOp, "gsDPNoOp"},
	opSetOtherModeL: {MacroSetOtherModeL, "gsDPSetOtherMode(Lo)"},
	opSetOtherModeH: {MacroSetOtherModeH, "gsDPSetOtherMode(Hi)"},
	opTexRect:       {MacroTexRect, "gsSPTextureRectangle"},
	opTexRectFlip:   {MacroTexRectFlip, "gsSPTextureRectangleFlip"},
	opLoadSync:      {MacroLoadSync, "gsDPLoadSync"},
	opPipeSync:      {MacroPipeSync, "gsDPPipeSync"},
	opTileSync:      {MacroTileSync, "gsDPTileSync"},
	opFullSync:      {MacroFullSync, "gsDPFullSync"},
	opSetScissor:    {MacroSetScissor, "gsDPSetScissor"},
	opSetPrimDepth:  {MacroSetPrimDepth, "gsDPSetPrimDepth"},
	opLoadTLUT:      {MacroLoadTLUT, "gsDPLoadTLUT"},
	opSetTileSize:   {MacroSetTileSize, "gsDPSetTileSize"},
	opLoadBlock:     {MacroLoadBlock, "gsDPLoadBlock"},
	opLoadTile:      {MacroLoadTile, "gsDPLoadTile"},
	opSetTile:       {MacroSetTile, "gsDPSetTile"},
	opFillRect:      {MacroFillRect, "gsDPFillRectangle"},
	opSetFillColor:  {MacroSetFillColor, "gsDPSetFillColor"},
	opSetFogColor:   {MacroSetFogColor, "gsDPSetFogColor"},
	opSetBlendColor: {MacroSetBlendColor, "gsDPSetBlendColor"},
	opSetPrimColor:  {MacroSetPrimColor, "gsDPSetPrimColor"},
	opSetEnvColor:   {MacroSetEnvColor, "gsDPSetEnvColor"},
	opSetCombine:    {MacroSetCombine, "gsDPSetCombineMode"},
	opSetTImg:       {MacroSetTImg, "gsDPSetTextureImage"},
	opSetZImg:       {MacroSetZImg, "gsDPSetDepthImage"},
	opSetCImg:       {MacroSetCImg, "gsDPSetColorImage"},
}

// F3DEX2Decoder is the concrete Decoder collaborator for the F3DEX2
// microcode, grounded on original_source/src/libgbd/gfx.h's inclusion of the
// F3DEX_GBI_2 command tables.
type F3DEX2Decoder struct{}

func NewF3DEX2Decoder() *F3DEX2Decoder { return &F3DEX2Decoder{} }

func (dec *F3DEX2Decoder) Ucode() UcodeTag { return UcodeF3DEX2 }

// Decode reads the opcode byte and argument words from raw, consuming
// additional packets via extra for the handful of macros that are genuinely
// compound (G_TRI2 packs two triangles' worth of vertex-index arguments
// into its own packet; it is treated as compound by synthesizing two Sub
// entries rather than reading further packets, since F3DEX2 encodes both
// triangles' indices in the single 8-byte word).
func (dec *F3DEX2Decoder) Decode(raw [8]byte, extra func() ([8]byte, bool)) Macro {
	op := raw[0]
	def, ok := f3dex2Table[op]
	if !ok {
		return Macro{ID: MacroInvalid, Name: fmt.Sprintf("0x%02X", op), Packets: 1}
	}
	word0 := binary.BigEndian.Uint32(raw[0:4])
	word1 := binary.BigEndian.Uint32(raw[4:8])
	m := Macro{ID: def.id, Name: def.name, Packets: 1}

	switch op {
	case opVtx:
		n := (word0 >> 12) & 0xFF
		v0 := ((word0 >> 1) & 0x7F) - n
		vaddr := word1
		m.Args = []int64{int64(vaddr), int64(n), int64(v0)}
	case opTri2:
		// two packed triangles: one index per byte (stored doubled) in the
		// low 24 bits of word0 and of word1
		a0 := int64((word0 >> 16) & 0xFF / 2)
		b0 := int64((word0 >> 8) & 0xFF / 2)
		c0 := int64((word0 >> 0) & 0xFF / 2)
		a1 := int64((word1 >> 16) & 0xFF / 2)
		b1 := int64((word1 >> 8) & 0xFF / 2)
		c1 := int64((word1 >> 0) & 0xFF / 2)
		m.Args = []int64{a0, b0, c0, a1, b1, c1}
		m.Sub = []Macro{
			{ID: MacroTri1, Name: "gsSP1Triangle", Packets: 0, Args: []int64{a0, b0, c0}},
			{ID: MacroTri1, Name: "gsSP1Triangle", Packets: 0, Args: []int64{a1, b1, c1}},
		}
	case opTri1:
		a := int64((word1 >> 16) & 0xFF / 2)
		b := int64((word1 >> 8) & 0xFF / 2)
		c := int64((word1 >> 0) & 0xFF / 2)
		m.Args = []int64{a, b, c}
	case opCullDL:
		v0 := int64((word0 & 0xFFF) / 2)
		vn := int64((word1 & 0xFFF) / 2)
		m.Args = []int64{v0, vn}
	case opBranchZ:
		vtx := int64((word0 >> 1) & 0x7FF)
		m.Packets = 2
		next, hasNext := extra()
		var dl uint32
		if hasNext {
			dl = binary.BigEndian.Uint32(next[4:8])
		}
		zval := int64(word1)
		m.Args = []int64{vtx, int64(dl), zval}
	case opMtx:
		param := int64(raw[3])
		m.Args = []int64{int64(word1), param}
	case opDL:
		pushFlag := raw[1]
		m.Args = []int64{int64(word1), int64(pushFlag)}
	case opSetCImg, opSetZImg, opSetTImg:
		fmtv := int64((word0 >> 21) & 0x7)
		siz := int64((word0 >> 19) & 0x3)
		width := int64((word0 & 0xFFF) + 1)
		m.Args = []int64{fmtv, siz, width, int64(word1)}
	case opSetTile:
		fmtv := int64((word0 >> 21) & 0x7)
		siz := int64((word0 >> 19) & 0x3)
		line := int64((word0 >> 9) & 0x1FF)
		tmem := int64(word0 & 0x1FF)
		tileIdx := int64((word1 >> 24) & 0x7)
		palette := int64((word1 >> 20) & 0xF)
		cmt := int64((word1 >> 18) & 0x3)
		maskt := int64((word1 >> 14) & 0xF)
		shiftt := int64((word1 >> 10) & 0xF)
		cms := int64((word1 >> 8) & 0x3)
		masks := int64((word1 >> 4) & 0xF)
		shifts := int64(word1 & 0xF)
		m.Args = []int64{fmtv, siz, line, tmem, tileIdx, palette, cmt, maskt, shiftt, cms, masks, shifts}
	case opSetTileSize, opLoadTile:
		uls := int64(int32(word0>>12) & 0xFFF)
		ult := int64(int32(word0) & 0xFFF)
		tileIdx := int64((word1 >> 24) & 0x7)
		lrs := int64(int32(word1>>12) & 0xFFF)
		lrt := int64(int32(word1) & 0xFFF)
		m.Args = []int64{uls, ult, tileIdx, lrs, lrt}
	case opLoadBlock:
		tileIdx := int64((word1 >> 24) & 0x7)
		dxt := int64(word1 & 0xFFF)
		texels := int64((word1 >> 12) & 0xFFF)
		m.Args = []int64{tileIdx, texels, dxt}
	case opLoadTLUT:
		tileIdx := int64((word1 >> 24) & 0x7)
		count := int64((word1 >> 14) & 0x3FF)
		m.Args = []int64{tileIdx, count}
	case opSetScissor:
		ulx := int64(int32(word0>>12) & 0xFFF)
		uly := int64(int32(word0) & 0xFFF)
		lrx := int64(int32(word1>>12) & 0xFFF)
		lry := int64(int32(word1) & 0xFFF)
		m.Args = []int64{ulx, uly, lrx, lry}
	case opSetOtherModeH, opSetOtherModeL:
		// The packet stores the field's complement: shiftpkt/lenpkt are
		// 32-sft-len and len-1, and the data word carries the field value
		// already positioned at its target bits. Reconstruct the logical
		// (sft, len) and pull the value back down to a low-aligned field so
		// it matches every other SetHiField/SetLoField caller's convention.
		shiftpkt := (word0 >> 8) & 0xFF
		lenpkt := word0 & 0xFF
		sft := 32 - shiftpkt - (lenpkt + 1)
		length := lenpkt + 1
		value := (word1 >> sft) & ((1 << length) - 1)
		m.Args = []int64{int64(sft), int64(length), int64(value)}
	case opSetCombine:
		m.Packets = 2
		next, hasNext := extra()
		var word2, word3 uint32
		if hasNext {
			word2 = binary.BigEndian.Uint32(next[0:4])
			word3 = binary.BigEndian.Uint32(next[4:8])
		}
		m.Args = []int64{int64(word0), int64(word1), int64(word2), int64(word3)}
	case opSetFillColor, opSetFogColor, opSetBlendColor, opSetEnvColor:
		m.Args = []int64{int64(word1)}
	case opSetPrimColor:
		minLevel := int64((word0 >> 8) & 0xFF)
		levelFrac := int64(word0 & 0xFF)
		m.Args = []int64{minLevel, levelFrac, int64(word1)}
	case opSetPrimDepth:
		z := int64((word1 >> 16) & 0xFFFF)
		dz := int64(word1 & 0xFFFF)
		m.Args = []int64{z, dz}
	case opLoadUcode:
		m.Args = []int64{int64(word1)}
	case opMoveWord:
		index := int64(raw[1])
		offset := int64(binary.BigEndian.Uint16(raw[2:4]))
		m.Args = []int64{index, offset, int64(word1)}
	default:
		m.Args = []int64{int64(word0), int64(word1)}
	}
	return m
}

// colorArgIndex names, for each macro that carries a packed RGBA color word,
// which argument holds it, so Pretty's hex_color formatting knows where to
// look without guessing at a fixed position.
var colorArgIndex = map[MacroID]int{
	MacroSetFillColor:  0,
	MacroSetFogColor:   0,
	MacroSetBlendColor: 0,
	MacroSetEnvColor:   0,
	MacroSetPrimColor:  2,
}

// Pretty renders m's argument list. With opts.HexColor set, the packed RGBA
// argument of the DP color-setter macros prints as 0xRRGGBBAA instead of a
// decimal word, matching gfxd's hex_color mode. q_macros has no effect here:
// none of the arguments Decode produces are inline fixed-point data (vertex
// and matrix words are RDRAM addresses, not values), so there is nothing in
// this macro's argument list to wrap in a qsXY(...) macro.
func (dec *F3DEX2Decoder) Pretty(m Macro, opts *Options) string {
	colorIdx, isColor := colorArgIndex[m.ID]
	parts := make([]string, len(m.Args))
	for i, a := range m.Args {
		if opts != nil && opts.HexColor && isColor && i == colorIdx {
			parts[i] = fmt.Sprintf("0x%08X", uint32(a))
			continue
		}
		parts[i] = fmt.Sprintf("%d", a)
	}
	return fmt.Sprintf("%s(%s)", m.Name, strings.Join(parts, ", "))
}
