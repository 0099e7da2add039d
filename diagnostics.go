package main

import (
	"fmt"
	"io"
)

// Severity classifies a Diagnostic. An error latches "crashed"; a warning
// never does.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "Error"
	}
	return "Warning"
}

// DiagKind is a stable identifier for one diagnostic rule, transcribed from
// the original warnings_errors.h taxonomy.
type DiagKind int

const (
	DiagAddrNotInRdram DiagKind = iota
	DiagRangeNotInRdram
	DiagCullingBadIndices
	DiagCullingVertsOOB
	DiagSegZeroNonzero
	DiagInvalidSegmentNum
	DiagInvalidSegmentNumRel
	DiagMtxPushedToProjection
	DiagMtxStackOverflow
	DiagMulProjectionUnset
	DiagMulModelviewUnset
	DiagScissorTooWide
	DiagScissorStartInvalid
	DiagScissorEndInvalid
	DiagInvalidCimgFmt
	DiagBadCimgAlignment
	DiagInvalidCimgFmtSiz
	DiagBadZimgAlignment
	DiagInvalidTimgFmt
	DiagInvalidTimgFmtSiz
	DiagVtxLoadingZero
	DiagVtxLoadingTooMany
	DiagVtxCacheOverflow
	DiagFillmode4b
	DiagCopymode32b
	DiagScissorUnset
	DiagCimgUnset
	DiagFillrectFillcolorUnset
	DiagCCShadeInvalid
	DiagCCShadeAlphaInvalid
	DiagZSPixelSetWithoutZbuffer
	DiagZSrcInvalid
	DiagCCCombinedInC1
	DiagCCCombinedAlphaInC1
	DiagCCCombinedInC2C1
	DiagCCCombinedAlphaInC2C1
	DiagFillmodeCimgZimgRdPerPixel
	DiagFillmodeZimgWrPerPixel
	DiagCopymodeCimgZimgRdPerPixel
	DiagCopymodeZimgWrPerPixel
	DiagCopymodeAA
	DiagCopymodeBlSet
	DiagCopymodeTextureFilter
	DiagTiledescBad
	DiagCIRenderTileNoTlut
	DiagNoCIRenderTileTlut
	DiagCopymodeMismatch8b
	DiagCopymodeMismatch16b
	DiagTriVtxOOB
	DiagBadTimgAlignment
	DiagLoadblockTooManyTexels
	DiagTimgLoad4b
	DiagTimgTileLoadNonmatching
	DiagTlutTooLarge
	DiagTlutBadFmt
	DiagTlutBadTmemAddr
	DiagTlutBadCoords
	DiagTimgBadTmemAddr
	DiagScissorRegionEmpty
	DiagModifyVtxOOB
	DiagMtxPopNotModelview
	DiagMtxStackUnderflow
	DiagTexrectPerspCorrect
	DiagDLStackOverflow
	DiagInvalidGfxCmd
	DiagLoadUnrecognizedUcode
	DiagTriInFillmode
	DiagLtbInvalidWidth
	DiagLtbDxtCorruption
	DiagFullsyncSent

	// warnings
	DiagMissingPipesync
	DiagMissingLoadsync
	DiagMissingTilesync
	DiagSuperfluousPipesync
	DiagSuperfluousLoadsync
	DiagSuperfluousTilesync
	DiagUnsetSegment
	DiagUnkDLVariant
	DiagUnkNoopTag3
	DiagCullingBadVerts
	DiagDangerousTextureAlignment
	DiagBlenderSetButUnused
	DiagBlenderStagesDiffer1Cyc
	DiagCCStagesDiffer1Cyc
	DiagCCTexel1RGB1Cyc
	DiagCCTexel1Alpha1Cyc
	DiagCCTexel1RGBA1Cyc
	DiagCCTexel1RGBC22Cyc
	DiagCCTexel1AlphaC22Cyc
	DiagCCTexel1RGBAC22Cyc
	DiagTriLeechingVerts
	DiagTriTxtrNoPersp
	DiagTexCI8NonzeroPal
	DiagRDPLog2Inaccurate
	DiagTexrectInFillmode
	DiagCvgSaveNoImRd
	DiagCICimgFmtSiz

	diagKindCount
)

type diagDef struct {
	severity Severity
	template string
}

var diagDefs = [diagKindCount]diagDef{
	DiagAddrNotInRdram:             {SeverityError, "Address not in rdram"},
	DiagRangeNotInRdram:            {SeverityError, "Data does not fit fully in rdram"},
	DiagCullingBadIndices:          {SeverityError, "vn should be greater than v0"},
	DiagCullingVertsOOB:            {SeverityError, "Vertices indexed out-of-bounds"},
	DiagSegZeroNonzero:             {SeverityError, "Assigning segment 0 to something other than 0x00000000 (0x%08X)"},
	DiagInvalidSegmentNum:          {SeverityError, "Invalid segment number %d"},
	DiagInvalidSegmentNumRel:       {SeverityError, "Invalid relative segment number"},
	DiagMtxPushedToProjection:      {SeverityError, "Cannot push to the projection matrix stack"},
	DiagMtxStackOverflow:           {SeverityError, "Matrix stack overflow"},
	DiagMulProjectionUnset:         {SeverityError, "Multiplying a projection matrix when no projection matrix was loaded"},
	DiagMulModelviewUnset:          {SeverityError, "Multiplying a modelview matrix when no modelview matrix was loaded"},
	DiagScissorTooWide:             {SeverityError, "Scissor region is too wide for color image"},
	DiagScissorStartInvalid:        {SeverityError, "Scissor region start address not in RDRAM"},
	DiagScissorEndInvalid:          {SeverityError, "Scissor region end address not in RDRAM"},
	DiagInvalidCimgFmt:             {SeverityError, "Invalid image format"},
	DiagBadCimgAlignment:           {SeverityError, "Color image alignment must be 64-byte"},
	DiagInvalidCimgFmtSiz:          {SeverityError, "Bad format for color image, should be RGBA16, RGBA32 or I8"},
	DiagBadZimgAlignment:           {SeverityError, "Depth image alignment must be 64-byte"},
	DiagInvalidTimgFmt:             {SeverityError, "Invalid texture image format"},
	DiagInvalidTimgFmtSiz:          {SeverityError, "Invalid texture image format/size combination"},
	DiagVtxLoadingZero:             {SeverityError, "Vertex count cannot be zero"},
	DiagVtxLoadingTooMany:          {SeverityError, "Loading too many vertices"},
	DiagVtxCacheOverflow:           {SeverityError, "Loading %d vertices at position %d overflows the vertex cache"},
	DiagFillmode4b:                 {SeverityError, "Rendering primitives to a 4-bit color image is prohibited in FILL mode"},
	DiagCopymode32b:                {SeverityError, "Rendering primitives to a 32-bit color image is prohibited in COPY mode"},
	DiagScissorUnset:               {SeverityError, "Scissor must be set before rendering primitives"},
	DiagCimgUnset:                  {SeverityError, "Color image must be set before rendering primitives"},
	DiagFillrectFillcolorUnset:     {SeverityError, "Filling a rectangle without ever setting the fill color"},
	DiagCCShadeInvalid:             {SeverityError, "Shade used in CC cycle %d %s input when %s"},
	DiagCCShadeAlphaInvalid:        {SeverityError, "Shade alpha used as blender cycle %d input when %s"},
	DiagZSPixelSetWithoutZbuffer:   {SeverityError, "Per-pixel depth source (G_ZS_PIXEL) is set but G_ZBUFFER is unset"},
	DiagZSrcInvalid:                {SeverityError, "Per-pixel depth source is only available to triangles, either disable z-buffering or set G_ZS_PRIM in othermodes"},
	DiagCCCombinedInC1:             {SeverityError, "COMBINED input selected for CC 1-Cycle %s"},
	DiagCCCombinedAlphaInC1:        {SeverityError, "COMBINED_ALPHA input selected for CC 1-Cycle RGB"},
	DiagCCCombinedInC2C1:           {SeverityError, "COMBINED input selected for CC 2-Cycle Cycle 1 %s"},
	DiagCCCombinedAlphaInC2C1:      {SeverityError, "COMBINED_ALPHA input selected for CC 2-Cycle Cycle 1 RGB"},
	DiagFillmodeCimgZimgRdPerPixel: {SeverityError, "Color and depth image reading is prohibited in FILL mode"},
	DiagFillmodeZimgWrPerPixel:     {SeverityError, "Per-pixel depth image updates are prohibited in FILL mode"},
	DiagCopymodeCimgZimgRdPerPixel: {SeverityError, "Color and depth image reading is prohibited in COPY mode"},
	DiagCopymodeZimgWrPerPixel:     {SeverityError, "Per-pixel depth image updates are prohibited in COPY mode"},
	DiagCopymodeAA:                 {SeverityError, "Anti-aliasing is unavailable in COPY mode"},
	DiagCopymodeBlSet:              {SeverityError, "Blender pipeline stages are skipped in COPY mode"},
	DiagCopymodeTextureFilter:      {SeverityError, "Texture filtering is unavailable in COPY mode"},
	DiagTiledescBad:                {SeverityError, "bad tile descriptor"},
	DiagCIRenderTileNoTlut:         {SeverityError, "Render tile is color-indexed but TLUT mode was not enabled in other modes before drawing"},
	DiagNoCIRenderTileTlut:         {SeverityError, "Render tile is not color-indexed but TLUT mode was enabled in other modes before drawing"},
	DiagCopymodeMismatch8b:         {SeverityError, "4b and 8b images can only be copied to an 8b color image"},
	DiagCopymodeMismatch16b:        {SeverityError, "16b images can only be copied to a 16b color image"},
	DiagTriVtxOOB:                  {SeverityError, "triangle %d indexed out of bounds vertices"},
	DiagBadTimgAlignment:           {SeverityError, "Texture image alignment will hang the RDP"},
	DiagLoadblockTooManyTexels:     {SeverityError, "LoadBlock only allows loading up to 2048 texels"},
	DiagTimgLoad4b:                 {SeverityError, "Loading with a 4-bit texture image is unsupported"},
	DiagTimgTileLoadNonmatching:    {SeverityError, "Texture image and texture tile format/size do not match during load operation"},
	DiagTlutTooLarge:               {SeverityError, "TLUTs can be at most 256 colors"},
	DiagTlutBadFmt:                 {SeverityError, "TLUT format should be RGBA16 or IA16"},
	DiagTlutBadTmemAddr:            {SeverityError, "A TLUT must be loaded into the high half of TMEM"},
	DiagTlutBadCoords:              {SeverityError, "LoadTLUT loads nothing (on hardware, crashes on emulator) for lrt > ult"},
	DiagTimgBadTmemAddr:            {SeverityError, "format %s requires address in low TMEM (< 0x800)"},
	DiagScissorRegionEmpty:         {SeverityError, "Scissor region is empty"},
	DiagModifyVtxOOB:               {SeverityError, "Indexing out of bounds vertex"},
	DiagMtxPopNotModelview:         {SeverityError, "Can only pop from the modelview matrix stack"},
	DiagMtxStackUnderflow:          {SeverityError, "Matrix stack underflow"},
	DiagTexrectPerspCorrect:        {SeverityError, "Rectangles rendered with texture perspective correction"},
	DiagDLStackOverflow:            {SeverityError, "Display list stack overflow"},
	DiagInvalidGfxCmd:              {SeverityError, "Invalid gfx commands encountered"},
	DiagLoadUnrecognizedUcode:      {SeverityError, "Loading unrecognized ucode"},
	DiagTriInFillmode:              {SeverityError, "Rendering triangles in fillmode is very likely to crash"},
	DiagLtbInvalidWidth:            {SeverityError, "Load texture block invalid width"},
	DiagLtbDxtCorruption:           {SeverityError, "Load texture block dxt corruption"},
	DiagFullsyncSent:               {SeverityError, "DPFullSync should always be the last RDP command executed in a task"},

	DiagMissingPipesync:          {SeverityWarning, "Missing pipesync"},
	DiagMissingLoadsync:          {SeverityWarning, "Missing loadsync"},
	DiagMissingTilesync:          {SeverityWarning, "Missing tilesync"},
	DiagSuperfluousPipesync:      {SeverityWarning, "Superfluous pipesync"},
	DiagSuperfluousLoadsync:      {SeverityWarning, "Superfluous loadsync"},
	DiagSuperfluousTilesync:      {SeverityWarning, "Superfluous tilesync"},
	DiagUnsetSegment:             {SeverityWarning, "Using segment %d before it was assigned"},
	DiagUnkDLVariant:             {SeverityWarning, "Unknown display list command variant, will act as %s"},
	DiagUnkNoopTag3:              {SeverityWarning, "Unknown gsDPNoOpTag3 variant, possibly garbage data"},
	DiagCullingBadVerts:          {SeverityWarning, "Volume culling references vertices that were not loaded in the last batch"},
	DiagDangerousTextureAlignment: {SeverityWarning, "texture image is not 8-byte aligned; this has the potential to hang the RDP, it is recommended to align textures to 8 bytes"},
	DiagBlenderSetButUnused:      {SeverityWarning, "Blend formula is configured however the blender is not used as both AA_EN and FORCE_BL are unset"},
	DiagBlenderStagesDiffer1Cyc:  {SeverityWarning, "Blender configuration differs between stages in 1-Cycle mode, first cycle configuration is ignored"},
	DiagCCStagesDiffer1Cyc:       {SeverityWarning, "Color combiner configuration differs between stages in 1-Cycle mode, first cycle configuration is ignored"},
	DiagCCTexel1RGB1Cyc:          {SeverityWarning, "TEXEL1 input selected for CC 1-Cycle RGB, this reads the next pixel TEXEL0 instead of the current pixel TEXEL1"},
	DiagCCTexel1Alpha1Cyc:        {SeverityWarning, "TEXEL1 input selected for CC 1-Cycle Alpha, this reads the next pixel TEXEL0 instead of the current pixel TEXEL1"},
	DiagCCTexel1RGBA1Cyc:         {SeverityWarning, "TEXEL1_ALPHA input selected for CC 1-Cycle RGB"},
	DiagCCTexel1RGBC22Cyc:        {SeverityWarning, "TEXEL1 input selected for CC Cycle 2 RGB, this reads the next pixel TEXEL0 instead of the current pixel TEXEL1"},
	DiagCCTexel1AlphaC22Cyc:      {SeverityWarning, "TEXEL1 input selected for CC Cycle 2 Alpha, this reads the next pixel TEXEL0 instead of the current pixel TEXEL1"},
	DiagCCTexel1RGBAC22Cyc:       {SeverityWarning, "TEXEL1_ALPHA input selected for CC Cycle 2 RGB, this reads the next pixel TEXEL0_ALPHA instead of the current pixel TEXEL1_ALPHA"},
	DiagTriLeechingVerts:         {SeverityWarning, "triangle %d references vertices that were not loaded in the last batch"},
	DiagTriTxtrNoPersp:           {SeverityWarning, "Textured triangles rendered without texture perspective correction"},
	DiagTexCI8NonzeroPal:         {SeverityWarning, "Palette is non-zero for CI8 tile descriptor, will be treated as 0"},
	DiagRDPLog2Inaccurate:        {SeverityWarning, "The log2 that RDP hardware computes for dz does not agree with the true log2 of dz, inaccuracy may result."},
	DiagTexrectInFillmode:        {SeverityWarning, "Rendering textured rectangles in fill mode act like filled rectangles"},
	DiagCvgSaveNoImRd:            {SeverityWarning, "cvg_dst mode set to SAVE but IM_RD is not set, will behave as if cvg_dst was set to FULL"},
	DiagCICimgFmtSiz:             {SeverityWarning, "CI8 is technically invalid for color images, it behaves the same as I8 which better describes the behavior"},
}

// Diagnostics accumulates emitted diagnostics and owns the "crashed" latch.
// Diagnostics are not buffered: Emit prints immediately, interleaved with the
// decoded command stream, matching the reference tool's behavior.
type Diagnostics struct {
	out          io.Writer
	colors       *ansiWriter
	quiet        bool
	crashed      bool
	warningCount int
	errorCount   int
	inExpansion  string // non-empty while expanding a compound macro's sub-packets
}

// NewDiagnostics returns a Diagnostics sink writing to out.
func NewDiagnostics(out io.Writer, quiet bool) *Diagnostics {
	return &Diagnostics{out: out, colors: newANSIWriter(out), quiet: quiet}
}

// Crashed reports whether a fatal diagnostic has been latched.
func (d *Diagnostics) Crashed() bool { return d.crashed }

// EnterExpansion marks that subsequent diagnostics occur while expanding the
// sub-packets of the named compound macro, prefixing a Note line before the
// next diagnostic.
func (d *Diagnostics) EnterExpansion(macro string) { d.inExpansion = macro }

// LeaveExpansion clears the expansion-context marker.
func (d *Diagnostics) LeaveExpansion() { d.inExpansion = "" }

// Emit formats and prints the diagnostic for kind with the given template
// arguments, latching "crashed" if it is an error.
func (d *Diagnostics) Emit(kind DiagKind, args ...interface{}) {
	def := diagDefs[kind]
	if def.severity == SeverityWarning {
		d.warningCount++
		if d.quiet {
			return
		}
	} else {
		d.errorCount++
	}
	if d.inExpansion != "" {
		d.colors.Notef("In expansion of macro '%s':\n", d.inExpansion)
	}
	msg := fmt.Sprintf(def.template, args...)
	switch def.severity {
	case SeverityError:
		d.colors.Errorf("%s\n", msg)
		d.crashed = true
	default:
		d.colors.Warnf("%s\n", msg)
	}
}

// Notef prints an informational note, not part of the warning/error
// taxonomy (e.g. "BranchLessZ success", "Graphics task completed
// successfully.").
func (d *Diagnostics) Notef(format string, args ...interface{}) {
	if d.quiet {
		return
	}
	d.colors.Notef(format, args...)
}
