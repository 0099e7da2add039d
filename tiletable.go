package main

// Image format/size constants (spec.md §3 TileDescriptor.fmt/.siz).
const (
	FmtRGBA = iota
	FmtYUV
	FmtCI
	FmtIA
	FmtI
)

const (
	SizBits4 = iota
	SizBits8
	SizBits16
	SizBits32
)

// validImgFmtSiz reports whether fmt/siz is one of the combinations the RDP
// actually supports, per the original's chk_ValidImgFmtSiz table.
func validImgFmtSiz(fmt, siz uint32) bool {
	switch {
	case fmt == FmtRGBA && (siz == SizBits32 || siz == SizBits16):
		return true
	case fmt == FmtYUV && siz == SizBits16:
		return true
	case fmt == FmtIA && (siz == SizBits16 || siz == SizBits8 || siz == SizBits4):
		return true
	case fmt == FmtCI && (siz == SizBits16 || siz == SizBits8 || siz == SizBits4):
		return true
	case fmt == FmtI && (siz == SizBits16 || siz == SizBits8 || siz == SizBits4):
		return true
	}
	return false
}

// Tile-clamp/mirror/mask constants for cms/cmt.
const (
	CMClamp = 1 << iota
	CMMirror
)

const numTiles = 8

// tmemSize is the coarse TMEM budget this implementation tracks occupancy
// against (4KB, 4096 texels worth of bytes); no pixel-exact emulation is
// attempted, per spec.md's explicit non-goal.
const tmemSize = 4096

// TileDescriptor parameterizes one texture-fetch window and its placement
// in TMEM (spec.md §3).
type TileDescriptor struct {
	Fmt, Siz            uint32
	Line                uint32 // TMEM line stride, in 64-bit words
	Tmem                uint32 // 9-bit TMEM word address
	Palette              uint32
	CMS, CMT             uint32
	MaskS, MaskT         uint32
	ShiftS, ShiftT       uint32
	ULS, ULT, LRS, LRT   int32 // fixed-point 10.2 coordinates

	set bool
}

// TileTable holds the eight tile-descriptor slots and a coarse TMEM
// occupancy shadow (byte-granular "who owns this byte" map, used only to
// flag gross overlap, never to reproduce exact texel contents).
type TileTable struct {
	Tiles [numTiles]TileDescriptor
	tmem  [tmemSize]int8 // -1 = unowned, else owning tile index
}

// NewTileTable returns a TileTable with no tiles set and an empty TMEM
// shadow.
func NewTileTable() *TileTable {
	t := &TileTable{}
	for i := range t.tmem {
		t.tmem[i] = -1
	}
	return t
}

// SetTile validates idx and stores the descriptor's static fields (format,
// size, line stride, TMEM address, palette, wrap/mask/shift).
func (t *TileTable) SetTile(d *Diagnostics, idx int, fmt, siz, line, tmem, palette, cms, cmt, masks, maskt, shifts, shiftt uint32) {
	if idx < 0 || idx >= numTiles {
		d.Emit(DiagTiledescBad)
		return
	}
	td := &t.Tiles[idx]
	td.Fmt, td.Siz, td.Line, td.Tmem, td.Palette = fmt, siz, line, tmem, palette
	td.CMS, td.CMT, td.MaskS, td.MaskT, td.ShiftS, td.ShiftT = cms, cmt, masks, maskt, shifts, shiftt
	td.set = true
}

// SetTileSize validates idx and stores the descriptor's fetch-window
// coordinates.
func (t *TileTable) SetTileSize(d *Diagnostics, idx int, uls, ult, lrs, lrt int32) {
	if idx < 0 || idx >= numTiles {
		d.Emit(DiagTiledescBad)
		return
	}
	td := &t.Tiles[idx]
	td.ULS, td.ULT, td.LRS, td.LRT = uls, ult, lrs, lrt
}

// Descriptor returns tile idx's descriptor and whether it has been set via
// SetTile, for callers that validate a render tile before using it.
func (t *TileTable) Descriptor(idx int) (TileDescriptor, bool) {
	if idx < 0 || idx >= numTiles || !t.Tiles[idx].set {
		return TileDescriptor{}, false
	}
	return t.Tiles[idx], true
}

// markOwned marks a coarse TMEM byte range as owned by tile idx, for
// occupancy tracking only.
func (t *TileTable) markOwned(start, count int, idx int) {
	end := start + count
	if end > tmemSize {
		end = tmemSize
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < end; i++ {
		t.tmem[i] = int8(idx)
	}
}

// LoadBlock validates the texel count against the 2048-texel hardware limit
// and that the size is not 4-bit, then marks the corresponding coarse TMEM
// range owned by idx.
func (t *TileTable) LoadBlock(d *Diagnostics, idx int, texelCount int) {
	if idx < 0 || idx >= numTiles {
		d.Emit(DiagTiledescBad)
		return
	}
	if t.Tiles[idx].Siz == SizBits4 {
		d.Emit(DiagTimgLoad4b)
		return
	}
	if texelCount > 2048 {
		d.Emit(DiagLoadblockTooManyTexels)
		return
	}
	t.markOwned(int(t.Tiles[idx].Tmem)*8, texelCount*2, idx)
}

// LoadTLUT validates the derived palette-entry count (<256), the TMEM
// placement (must be in the upper half of TMEM), and marks the range owned.
func (t *TileTable) LoadTLUT(d *Diagnostics, idx int, count int) {
	if idx < 0 || idx >= numTiles {
		d.Emit(DiagTiledescBad)
		return
	}
	if count >= 256 {
		d.Emit(DiagTlutTooLarge)
		return
	}
	if t.Tiles[idx].Tmem < 0x100 {
		d.Emit(DiagTlutBadTmemAddr)
		return
	}
	t.markOwned(int(t.Tiles[idx].Tmem)*8, count*2, idx)
}
