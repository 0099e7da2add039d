package main

// Address forms: physical offsets into the RDRAM image, cached/uncached kseg
// addresses (top three bits form a fixed mask), and segmented addresses (top
// nibble indexes the segment table, low 24 bits are the offset).
const (
	kseg0Base = 0x80000000
	kseg1Base = 0xA0000000
	ksegMask  = 0xE0000000
)

// isKsegAddr reports whether addr is a kseg0 or kseg1 cached/uncached address
// rather than a segmented one.
func isKsegAddr(addr uint32) bool {
	top := addr & 0xFF000000
	return top == 0x80000000 || top == 0xA0000000
}

// stripKseg masks off the kseg bits, yielding a physical offset.
func stripKseg(addr uint32) uint32 {
	return addr &^ ksegMask
}

// toKseg0 reconstructs the kseg0 form of a physical address. Post-mortem
// output does not call it; it prints addresses in physical form.
func toKseg0(phys uint32) uint32 {
	return phys | kseg0Base
}

// segmentOf returns the 4-bit segment index encoded in a segmented address.
func segmentOf(addr uint32) int {
	return int(addr>>24) & 0xF
}

// segmentOffsetOf returns the low 24-bit offset of a segmented address.
func segmentOffsetOf(addr uint32) uint32 {
	return addr & 0x00FFFFFF
}
