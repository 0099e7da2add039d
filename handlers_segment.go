package main

func init() {
	registerHandler(MacroMoveWord, handleMoveWord)
}

// moveWordSegment is the G_MW_SEGMENT index value: MoveWord's conventional
// use for assigning a segment base (original_source/src/libgbd/gbd.c's
// chk_MoveWord dispatches here on this index).
const moveWordSegment = 0x06

// handleMoveWord implements MoveWord (spec.md §4.4 Segment table): when the
// index names the segment slot, offset/4 selects which of the 16 bases to
// assign and the data word is the new base. The perspective-norm index sets
// PerspNorm (a zero value is ignored). Other indices (clip ratio, light
// count, fog parameters) are recorded as notes only; this implementation
// tracks segments and perspective normalization, the two that affect
// address translation and vertex transform.
func handleMoveWord(i *Interpreter, m Macro) {
	index := m.Arg(0)
	offset := m.Arg(1)
	data := uint32(m.Arg(2))

	switch index {
	case moveWordSegment:
		n := int(offset / 4)
		i.Segments.Assign(i.Diag, n, data)
	case moveWordPerspNorm:
		if data != 0 {
			i.PerspNorm = float32(data)
		}
	default:
		i.Diag.Notef("MoveWord(index=%d, offset=%d, data=0x%08X) recorded, not interpreted\n", index, offset, data)
	}
}

// moveWordPerspNorm is G_MW_PERSPNORM's index value.
const moveWordPerspNorm = 0x0E
