package main

// ImageBinding describes one of the color/depth/texture image registers.
type ImageBinding struct {
	Fmt, Siz uint32
	Width    uint32
	Addr     uint32 // physical
	set      bool
}

// ScissorRect is the RDP scissor rectangle, in 10.2 fixed-point coordinates.
type ScissorRect struct {
	ULX, ULY, LRX, LRY int32
	set                bool
}

// Viewport is the SPViewport scale/translate pair.
type Viewport struct {
	ScaleX, ScaleY, ScaleZ    float32
	TransX, TransY, TransZ    float32
	set                       bool
}

// PipelineState holds the remaining coprocessor substates not broken out
// into their own component types: other-mode, decoded combiner/blender,
// geometry-mode flags, render-tile selection, image bindings, fill-color,
// scissor, viewport, busy flags, and "last" trackers (spec.md §3).
type PipelineState struct {
	OtherMode OtherMode
	Combiner  CombinerConfig
	Blender   BlenderConfig

	GeometryMode uint32

	RenderTile   uint32
	RenderTileOn bool

	ColorImage   ImageBinding
	DepthImage   ImageBinding
	TextureImage ImageBinding

	FillColor     uint32
	FillColorSet  bool
	Scissor       ScissorRect
	Viewport      Viewport

	PipeBusy bool
	LoadBusy bool
	TileBusy [numTiles]int // decaying timer, 0 = clean

	LastTIMG          ImageBinding
	LastTLUTSet       bool
	LastLoadedVtxNum  int

	cimgScissorValid bool // gated latch: scissor/cimg cross-check runs once per cimg binding
	fullSyncSeen     bool
}

// Geometry-mode bits referenced by the render-primitive validator.
const (
	GeomClipping = 1 << 0
	GeomZBuffer  = 1 << 1
	GeomShade    = 1 << 2
)

// NewPipelineState returns a PipelineState with the Interpreter's specified
// initial conditions: geometry-mode = G_CLIPPING, all busy flags clear,
// render tile = G_TX_RENDERTILE (0), render-tile-on = false.
func NewPipelineState() *PipelineState {
	return &PipelineState{
		GeometryMode: GeomClipping,
	}
}

// DecayTileBusy advances the tile_busy decay timers, clearing any that have
// reached the 2-step threshold, per spec.md §4.3 step 6 and the "noise
// suppression only" guidance in §9.
func (p *PipelineState) DecayTileBusy() {
	for i := range p.TileBusy {
		if p.TileBusy[i] > 0 {
			p.TileBusy[i]++
			if p.TileBusy[i] >= 2 {
				p.TileBusy[i] = 0
			}
		}
	}
}

// PipeSync clears pipe_busy, warning if it was already clear.
func (p *PipelineState) PipeSync(d *Diagnostics) {
	if !p.PipeBusy {
		d.Emit(DiagSuperfluousPipesync)
	}
	p.PipeBusy = false
}

// LoadSync clears load_busy, warning if it was already clear.
func (p *PipelineState) LoadSync(d *Diagnostics) {
	if !p.LoadBusy {
		d.Emit(DiagSuperfluousLoadsync)
	}
	p.LoadBusy = false
}

// TileSync clears every tile_busy entry.
func (p *PipelineState) TileSync(d *Diagnostics) {
	allClear := true
	for _, b := range p.TileBusy {
		if b != 0 {
			allClear = false
			break
		}
	}
	if allClear {
		d.Emit(DiagSuperfluousTilesync)
	}
	for i := range p.TileBusy {
		p.TileBusy[i] = 0
	}
}

// FullSync clears pipe/load/tile busy and latches "fullsync seen".
func (p *PipelineState) FullSync() {
	p.PipeBusy = false
	p.LoadBusy = false
	for i := range p.TileBusy {
		p.TileBusy[i] = 0
	}
	p.fullSyncSeen = true
}

// RequirePipeSync warns that a pipe sync was missing before a command that
// changes pipeline-affecting state while the pipe is still busy.
func (p *PipelineState) RequirePipeSync(d *Diagnostics) {
	if p.PipeBusy {
		d.Emit(DiagMissingPipesync)
	}
}

// RequireLoadSync warns that a load sync was missing before a TMEM load
// while the load engine is still busy.
func (p *PipelineState) RequireLoadSync(d *Diagnostics) {
	if p.LoadBusy {
		d.Emit(DiagMissingLoadsync)
	}
}

// RequireTileSync warns that a tile sync was missing before redescribing a
// tile that a just-issued primitive may still be reading.
func (p *PipelineState) RequireTileSync(d *Diagnostics, tile int) {
	if tile >= 0 && tile < numTiles && p.TileBusy[tile] != 0 {
		d.Emit(DiagMissingTilesync)
	}
}

// SetColorImage validates format/alignment and stores the binding, clearing
// the cimg-scissor cross-check latch so it reruns against the new binding.
func (p *PipelineState) SetColorImage(d *Diagnostics, r *RDRAMReader, fmt, siz, width, addr uint32) {
	if fmt > FmtI {
		d.Emit(DiagInvalidCimgFmt)
		return
	}
	if fmt != FmtRGBA && fmt != FmtI {
		d.Emit(DiagInvalidCimgFmtSiz)
	}
	if addr%64 != 0 {
		d.Emit(DiagBadCimgAlignment)
	}
	if !r.AddrValid(addr) {
		d.Emit(DiagAddrNotInRdram)
	}
	p.ColorImage = ImageBinding{Fmt: fmt, Siz: siz, Width: width, Addr: addr, set: true}
	p.cimgScissorValid = false
	if p.Scissor.set {
		p.checkScissorCimg(d, r)
	}
}

// SetDepthImage validates alignment and stores the binding.
func (p *PipelineState) SetDepthImage(d *Diagnostics, r *RDRAMReader, addr uint32) {
	if addr%64 != 0 {
		d.Emit(DiagBadZimgAlignment)
	}
	if !r.AddrValid(addr) {
		d.Emit(DiagAddrNotInRdram)
	}
	p.DepthImage = ImageBinding{Addr: addr, set: true}
}

// SetTextureImage validates format and 8-byte alignment (a warning, not
// fatal, per spec.md §4.4) and stores the binding and the last-TIMG tracker.
func (p *PipelineState) SetTextureImage(d *Diagnostics, r *RDRAMReader, fmt, siz, width, addr uint32) {
	if fmt > FmtI {
		d.Emit(DiagInvalidTimgFmt)
	} else if !validImgFmtSiz(fmt, siz) {
		d.Emit(DiagInvalidTimgFmtSiz)
	}
	if !r.AddrValid(addr) {
		d.Emit(DiagAddrNotInRdram)
	}
	if addr%8 != 0 {
		d.Emit(DiagDangerousTextureAlignment)
	}
	img := ImageBinding{Fmt: fmt, Siz: siz, Width: width, Addr: addr, set: true}
	p.TextureImage = img
	p.LastTIMG = img
}

// SetScissor stores the rectangle, rejecting an empty region, and runs the
// cimg cross-check if a color image is already bound.
func (p *PipelineState) SetScissor(d *Diagnostics, r *RDRAMReader, ulx, uly, lrx, lry int32) {
	if lrx <= ulx || lry <= uly {
		d.Emit(DiagScissorRegionEmpty)
		return
	}
	p.Scissor = ScissorRect{ULX: ulx, ULY: uly, LRX: lrx, LRY: lry, set: true}
	if p.ColorImage.set {
		p.checkScissorCimg(d, r)
	}
}

// checkScissorCimg computes the byte range the scissor region would address
// in the bound color image and requires both ends be valid RDRAM addresses.
// Runs only once per cimg binding, per spec.md §4.4 and the preserved
// rounding behavior noted in SPEC_FULL.md §4.
func (p *PipelineState) checkScissorCimg(d *Diagnostics, r *RDRAMReader) {
	if p.cimgScissorValid {
		return
	}
	p.cimgScissorValid = true
	if p.Scissor.LRX > p.Scissor.ULX+int32(p.ColorImage.Width<<2) {
		d.Emit(DiagScissorTooWide)
	}
	bpp := uint32(1) << p.ColorImage.Siz >> 1 // bytes per pixel, Siz in {0..3} -> {0.5,1,2,4}
	if bpp == 0 {
		bpp = 1
	}
	// Round fractional (10.2) coordinates up toward positive infinity, matching
	// the original's observed behavior for negative coordinates (SPEC_FULL.md §4).
	ulyPix := (p.Scissor.ULY + 3) >> 2
	lryPix := (p.Scissor.LRY + 3) >> 2
	startAddr := p.ColorImage.Addr + uint32(ulyPix)*p.ColorImage.Width*bpp
	endAddr := p.ColorImage.Addr + uint32(lryPix)*p.ColorImage.Width*bpp
	if !r.AddrValid(startAddr) {
		d.Emit(DiagScissorStartInvalid)
	}
	if !r.AddrValid(endAddr) {
		d.Emit(DiagScissorEndInvalid)
	}
}

// SetFillColor stores the fill color, marking it as having been set at
// least once (required before a FILL-mode fillrect).
func (p *PipelineState) SetFillColor(color uint32) {
	p.FillColor = color
	p.FillColorSet = true
}

// SetViewport stores the viewport scale/translate registers.
func (p *PipelineState) SetViewport(sx, sy, sz, tx, ty, tz float32) {
	p.Viewport = Viewport{ScaleX: sx, ScaleY: sy, ScaleZ: sz, TransX: tx, TransY: ty, TransZ: tz, set: true}
}
