package main

func init() {
	registerHandler(MacroMtx, handleMtx)
	registerHandler(MacroPopMtx, handlePopMtx)
}

// SPMatrix parameter bits (original_source/src/libgbd/gfx.h), decoded from
// the single flag byte packed into the macro's second argument.
const (
	mtxProjection = 1 << 2
	mtxLoad       = 1 << 1
	mtxPush       = 1 << 0
)

// handleMtx implements SPMatrix (spec.md §4.4 Matrix stack): reads a 4x4
// fixed-point matrix from RDRAM and pushes (modelview only), loads, or
// multiplies it into the addressed register.
func handleMtx(i *Interpreter, m Macro) {
	vaddr := uint32(m.Arg(0))
	flags := m.Arg(1)

	phys := i.Segments.Translate(i.Diag, vaddr)
	if !i.RDRAM.CheckRange(i.Diag, phys, 64) {
		return
	}
	mtx, err := i.RDRAM.ReadMatrix(phys)
	if err != nil {
		i.Diag.Emit(DiagAddrNotInRdram)
		return
	}

	isProjection := flags&mtxProjection != 0
	isLoad := flags&mtxLoad != 0
	doPush := flags&mtxPush != 0

	if isProjection {
		if doPush {
			i.Diag.Emit(DiagMtxPushedToProjection)
			return
		}
		if isLoad {
			i.Matrices.LoadProjection(mtx)
		} else {
			i.Matrices.MulProjection(i.Diag, mtx)
		}
		return
	}

	if doPush {
		i.Matrices.Push(i.Diag)
		if i.Diag.Crashed() {
			return
		}
	}
	if isLoad {
		i.Matrices.LoadModelview(mtx)
	} else {
		i.Matrices.MulModelview(i.Diag, mtx)
	}
}

// handlePopMtx implements PopMatrix: pops the modelview stack.
func handlePopMtx(i *Interpreter, m Macro) {
	i.Matrices.Pop(i.Diag)
}
