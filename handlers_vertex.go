package main

import "encoding/binary"

func init() {
	registerHandler(MacroVtx, handleVtx)
	registerHandler(MacroModifyVtx, handleModifyVtx)
	registerHandler(MacroTri1, handleTri1)
	registerHandler(MacroTri2, handleTri2)
	registerHandler(MacroQuad, handleQuad)
	registerHandler(MacroLine3D, handleLine3D)
	registerHandler(MacroGeometryMode, handleGeometryMode)
	registerHandler(MacroTexture, handleTexture)
}

// vtxRecordSize is the on-disk size of one Vtx record: three big-endian
// int16 object-space coordinates, a flag halfword, two texture-coordinate
// halfwords, and four color/normal bytes.
const vtxRecordSize = 16

// handleVtx implements Vertex-load (spec.md §4.4 Vertex cache): reads n
// vertex records from RDRAM starting at vaddr and transforms each through
// the current MVP into the cache slot starting at v0.
func handleVtx(i *Interpreter, m Macro) {
	vaddr := uint32(m.Arg(0))
	n := int(m.Arg(1))
	v0 := int(m.Arg(2))

	if n <= 0 {
		i.Diag.Emit(DiagVtxLoadingZero)
		return
	}
	if n > vertexCacheSize {
		i.Diag.Emit(DiagVtxLoadingTooMany)
		return
	}
	if v0 < 0 || v0+n > vertexCacheSize {
		i.Diag.Emit(DiagVtxCacheOverflow, n, v0)
		return
	}

	phys := i.Segments.Translate(i.Diag, vaddr)
	size := uint32(n * vtxRecordSize)
	if !i.RDRAM.CheckRange(i.Diag, phys, size) {
		return
	}
	buf, err := i.RDRAM.ReadBytes(phys, int(size))
	if err != nil {
		i.Diag.Emit(DiagAddrNotInRdram)
		return
	}

	mvp := i.Matrices.MVP()
	for k := 0; k < n; k++ {
		rec := buf[k*vtxRecordSize:]
		x := float32(int16(binary.BigEndian.Uint16(rec[0:2])))
		y := float32(int16(binary.BigEndian.Uint16(rec[2:4])))
		z := float32(int16(binary.BigEndian.Uint16(rec[4:6])))
		i.Vertices.Load(v0+k, x, y, z, mvp)
	}
	i.Pipeline.LastLoadedVtxNum = n
}

// handleModifyVtx implements ModifyVertex: rewrites a single field of an
// already-cached vertex in place. Only the index is range-checked here; the
// field being modified has no effect on the clip-space summary this
// implementation tracks.
func handleModifyVtx(i *Interpreter, m Macro) {
	word0 := uint32(m.Arg(0))
	vtxIdx := int((word0 >> 0) & 0xFFF)
	if !InBounds(vtxIdx) {
		i.Diag.Emit(DiagModifyVtxOOB)
	}
}

// renderPrimitive is the shared "render-primitive validator" internal
// contract (spec.md §4.4): every triangle/quad/line command runs the same
// cimg/scissor/cycle-type checks and marks busy flags before drawing.
func renderPrimitive(i *Interpreter, indices []int) {
	if !i.Pipeline.ColorImage.set || !i.Pipeline.Scissor.set {
		validateRenderMode(i, PrimTri) // emits DiagCimgUnset/DiagScissorUnset and bails
		return
	}

	cycle := i.Pipeline.OtherMode.CycleType()
	if cycle == CycleTypeFill {
		i.Diag.Emit(DiagTriInFillmode)
	}
	if cycle == CycleTypeCopy && i.Pipeline.ColorImage.Siz == SizBits32 {
		i.Diag.Emit(DiagCopymode32b)
	}
	if cycle == CycleTypeFill && i.Pipeline.ColorImage.Siz == SizBits4 {
		i.Diag.Emit(DiagFillmode4b)
	}

	for _, idx := range indices {
		if !InBounds(idx) {
			i.Diag.Emit(DiagTriVtxOOB, idx)
			continue
		}
		if idx >= i.Pipeline.LastLoadedVtxNum {
			i.Diag.Emit(DiagTriLeechingVerts, idx)
		}
	}

	validateRenderMode(i, PrimTri)
	// A textured triangle drawn without perspective correction still reads a
	// valid (non-perspective) W, so this is a warning rather than fatal.
	if i.Pipeline.RenderTileOn && !i.Pipeline.OtherMode.TexturePersp() {
		i.Diag.Emit(DiagTriTxtrNoPersp)
	}

	i.Pipeline.PipeBusy = true
}

func handleTri1(i *Interpreter, m Macro) {
	renderPrimitive(i, []int{int(m.Arg(0)), int(m.Arg(1)), int(m.Arg(2))})
}

// handleTri2 dispatches both triangles packed into a single G_TRI2 packet
// through the same validator as a standalone triangle.
func handleTri2(i *Interpreter, m Macro) {
	for _, sub := range m.Sub {
		renderPrimitive(i, []int{int(sub.Arg(0)), int(sub.Arg(1)), int(sub.Arg(2))})
	}
}

func handleQuad(i *Interpreter, m Macro) {
	renderPrimitive(i, []int{int(m.Arg(0)), int(m.Arg(1)), int(m.Arg(2)), int(m.Arg(3))})
}

func handleLine3D(i *Interpreter, m Macro) {
	renderPrimitive(i, []int{int(m.Arg(0)), int(m.Arg(1))})
}

// handleGeometryMode implements SPGeometryMode: clears then sets bits in the
// geometry-mode register (word0's low 24 bits are ANDed in, so a bit that is
// zero there is cleared; word1 holds the bits to set, matching
// G_GEOMETRYMODE's packed encoding).
func handleGeometryMode(i *Interpreter, m Macro) {
	word0 := uint32(m.Arg(0))
	word1 := uint32(m.Arg(1))
	clearMask := word0 & 0x00FFFFFF
	i.Pipeline.GeometryMode = (i.Pipeline.GeometryMode & clearMask) | word1
}

// handleTexture implements SPTexture: toggles whether the render tile's
// texture is sampled. Scale factors are ignored, since no pixel sampling
// takes place in this implementation (spec.md §1 non-goal).
func handleTexture(i *Interpreter, m Macro) {
	word1 := uint32(m.Arg(1))
	i.Pipeline.RenderTileOn = word1&0x1 != 0
}
