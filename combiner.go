package main

// Color-combiner selector values recognized by the render-primitive
// validator (spec.md §4.4). Not an exhaustive GBI mux enumeration — only the
// selectors the validator must distinguish by name.
const (
	CCCombined = iota
	CCCombinedAlpha
	CCTexel0
	CCTexel0Alpha
	CCTexel1
	CCTexel1Alpha
	CCShade
	CCShadeAlpha
	CCPrimitive
	CC1
	CC0
	CCOther
)

// ccStage holds the four selectors (A,B,C,D) for one combiner cycle, one
// instance for RGB and one for alpha.
type ccStage struct {
	A, B, C, D uint32
}

// CombinerConfig is the decoded 16-selector two-cycle color/alpha muxer
// configuration (spec.md §3), grounded on the original's cc_decode.
type CombinerConfig struct {
	RGB   [2]ccStage
	Alpha [2]ccStage
}

// DecodeCombiner extracts the 16 muxer selectors from the combine-mode
// command's two 32-bit words. The bitfield widths below are this
// implementation's own consistent packed layout (4 selectors x 2 channels x
// 2 cycles), following the original's shift/mask extraction style without
// claiming bit-for-bit hardware fidelity — pixel-exact TMEM/combiner
// emulation is an explicit non-goal. The RGB D fields and all alpha fields
// are 3 bits wide, so they hold only selectors 0-7 (CCCombined through
// CCShadeAlpha); CCPrimitive, CC1, CC0 and CCOther fit only the RGB A, B
// and C fields.
func DecodeCombiner(hi, lo uint32) CombinerConfig {
	var cc CombinerConfig
	cc.RGB[0] = ccStage{
		A: bitfield(hi, 28, 4), B: bitfield(hi, 24, 4),
		C: bitfield(hi, 19, 5), D: bitfield(hi, 16, 3),
	}
	cc.RGB[1] = ccStage{
		A: bitfield(hi, 12, 4), B: bitfield(hi, 8, 4),
		C: bitfield(hi, 3, 5), D: bitfield(hi, 0, 3),
	}
	cc.Alpha[0] = ccStage{
		A: bitfield(lo, 28, 3), B: bitfield(lo, 24, 3),
		C: bitfield(lo, 19, 3), D: bitfield(lo, 16, 3),
	}
	cc.Alpha[1] = ccStage{
		A: bitfield(lo, 12, 3), B: bitfield(lo, 8, 3),
		C: bitfield(lo, 3, 3), D: bitfield(lo, 0, 3),
	}
	return cc
}

// HasColorInput reports whether cycle (0 or 1) of the RGB combiner
// references the given selector in any of its four inputs.
func (cc CombinerConfig) HasColorInput(cycle int, sel uint32) bool {
	s := cc.RGB[cycle]
	return s.A == sel || s.B == sel || s.C == sel || s.D == sel
}

// HasAlphaInput reports whether cycle (0 or 1) of the alpha combiner
// references the given selector.
func (cc CombinerConfig) HasAlphaInput(cycle int, sel uint32) bool {
	s := cc.Alpha[cycle]
	return s.A == sel || s.B == sel || s.C == sel || s.D == sel
}

// StagesDiffer reports whether the two cycle configurations differ, used by
// the 1-cycle-mode "stages must be identical" check.
func (cc CombinerConfig) StagesDiffer() bool {
	return cc.RGB[0] != cc.RGB[1] || cc.Alpha[0] != cc.Alpha[1]
}

// UsesTexel1 reports whether either cycle references TEXEL1/TEXEL1_ALPHA,
// used to decide whether a second tile must be marked busy.
func (cc CombinerConfig) UsesTexel1() bool {
	for c := 0; c < 2; c++ {
		if cc.HasColorInput(c, CCTexel1) || cc.HasAlphaInput(c, CCTexel1Alpha) {
			return true
		}
	}
	return false
}
