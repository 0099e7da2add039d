package main

// numSegments is the size of the N64 segment table.
const numSegments = 16

// SegmentMap maintains the 16 segment base registers used to translate
// segmented addresses into physical RDRAM offsets.
type SegmentMap struct {
	base     [numSegments]uint32
	assigned uint16 // bit n set if segment n has been assigned
}

// NewSegmentMap returns a SegmentMap with segment 0 assigned to 0, matching
// the Interpreter's specified initial state.
func NewSegmentMap() *SegmentMap {
	sm := &SegmentMap{}
	sm.assigned |= 1 // segment 0 is always considered assigned to 0
	return sm
}

func (sm *SegmentMap) isAssigned(n int) bool {
	return sm.assigned&(1<<uint(n)) != 0
}

// Assign stores base at slot n, masking off any kseg bits, and marks n
// assigned. It reports a diagnostic for an out-of-range slot or a nonzero
// segment 0 and leaves the table unchanged in either case, so segment 0
// stays 0.
func (sm *SegmentMap) Assign(d *Diagnostics, n int, base uint32) {
	if n < 0 || n >= numSegments {
		d.Emit(DiagInvalidSegmentNum, n)
		return
	}
	base = stripKseg(base)
	if n == 0 && base != 0 {
		d.Emit(DiagSegZeroNonzero, base)
		return
	}
	sm.base[n] = base
	sm.assigned |= 1 << uint(n)
}

// Translate lowers any address form to a physical RDRAM offset. Kseg
// addresses are stripped directly; segmented addresses are resolved through
// the table, emitting a warning (but still translating against the zero
// default) if the segment was never assigned.
func (sm *SegmentMap) Translate(d *Diagnostics, addr uint32) uint32 {
	if isKsegAddr(addr) {
		return stripKseg(addr) & 0x1FFFFFFF
	}
	n := segmentOf(addr)
	if !sm.isAssigned(n) {
		d.Emit(DiagUnsetSegment, n)
	}
	return sm.base[n] + segmentOffsetOf(addr)
}

// Base returns the raw base value of segment n, for post-mortem dumps.
func (sm *SegmentMap) Base(n int) (uint32, bool) {
	if n < 0 || n >= numSegments {
		return 0, false
	}
	return sm.base[n], sm.isAssigned(n)
}
