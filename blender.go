package main

// Blender selector values (spec.md §3): P/M inputs select a color source, A
// inputs select a blend factor.
const (
	BLPixelColor = iota
	BLMemoryColor
	BLBlendColor
	BLFogColor
	BLShadeAlpha
	BLFogAlpha
	BLBlendAlpha
	BLOneMinusA
	BLMemoryAlpha
	BLOne
	BLZero
)

// blStage holds the two-bit P/A (or M/B) selector pair for one blender
// cycle.
type blStage struct {
	P, A uint32
}

// BlenderConfig is the decoded 8-selector two-cycle framebuffer-blend
// configuration (spec.md §3), grounded on the original's bl_decode.
type BlenderConfig struct {
	Cycle [2]struct {
		PA, MB blStage
	}
}

// DecodeBlender extracts the 8 two-bit selectors from the other-mode-hi
// render-mode field's packed blender bits.
func DecodeBlender(renderMode uint32) BlenderConfig {
	var bl BlenderConfig
	bl.Cycle[0].PA = blStage{P: bitfield(renderMode, 30, 2), A: bitfield(renderMode, 26, 2)}
	bl.Cycle[0].MB = blStage{P: bitfield(renderMode, 22, 2), A: bitfield(renderMode, 18, 2)}
	bl.Cycle[1].PA = blStage{P: bitfield(renderMode, 28, 2), A: bitfield(renderMode, 24, 2)}
	bl.Cycle[1].MB = blStage{P: bitfield(renderMode, 20, 2), A: bitfield(renderMode, 16, 2)}
	return bl
}

// CycleIsSet reports whether the given cycle (0 or 1) has a non-default
// blend configuration (anything other than pixel-color-over-memory), mirror
// of the original's BL_CYC_IS_SET helper.
func (bl BlenderConfig) CycleIsSet(cycle int) bool {
	c := bl.Cycle[cycle]
	return !(c.PA.P == BLPixelColor && c.MB.P == BLMemoryColor)
}

// StagesDiffer reports whether the two cycle configurations differ.
func (bl BlenderConfig) StagesDiffer() bool {
	return bl.Cycle[0] != bl.Cycle[1]
}
