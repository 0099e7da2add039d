package main

// UcodeEntry pairs a microcode text-segment base address with the variant
// tag the Decoder should use once that ucode is active (spec.md §6).
type UcodeEntry struct {
	TextStart uint32
	Tag       UcodeTag
}

// UcodeRegistry is an ordered list of UcodeEntry values. Matching masks off
// kseg bits from both the stored text_start and the probed address.
type UcodeRegistry struct {
	Entries []UcodeEntry
}

// NewUcodeRegistry returns a registry seeded with entries.
func NewUcodeRegistry(entries ...UcodeEntry) *UcodeRegistry {
	return &UcodeRegistry{Entries: entries}
}

// Match returns the tag whose text_start matches textAddr (kseg-masked on
// both sides), and whether a match was found.
func (r *UcodeRegistry) Match(textAddr uint32) (UcodeTag, bool) {
	probe := stripKseg(textAddr)
	for _, e := range r.Entries {
		if stripKseg(e.TextStart) == probe {
			return e.Tag, true
		}
	}
	return 0, false
}

// First returns the registry's first entry's tag, the Interpreter's initial
// active ucode (spec.md §4.3).
func (r *UcodeRegistry) First() UcodeTag {
	if len(r.Entries) == 0 {
		return UcodeF3DEX2
	}
	return r.Entries[0].Tag
}
