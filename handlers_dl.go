package main

func init() {
	registerHandler(MacroDL, handleDL)
	registerHandler(MacroEndDL, handleEndDL)
	registerHandler(MacroCullDL, handleCullDL)
	registerHandler(MacroBranchZ, handleBranchZ)
}

// handleDL implements both Call and Branch (spec.md §4.4 Display-list
// control): a zero push-flag is a call (push return address), a nonzero
// push-flag is a branch (no push).
func handleDL(i *Interpreter, m Macro) {
	target := uint32(m.Arg(0))
	pushFlag := m.Arg(1)
	phys := i.Segments.Translate(i.Diag, target)
	if !i.RDRAM.AddrValid(phys) {
		i.Diag.Emit(DiagAddrNotInRdram)
		return
	}
	if pushFlag == 0 {
		i.DLStack.Push(i.Diag, i.PC+PacketSize)
		if i.Diag.Crashed() {
			return
		}
	}
	i.SetPC(phys)
}

// handleEndDL implements End: pop the DLStack, or mark task_done if it was
// already empty.
func handleEndDL(i *Interpreter, m Macro) {
	if pc, ok := i.DLStack.Pop(); ok {
		i.SetPC(pc)
		return
	}
	i.TaskDone = true
}

// handleCullDL implements Cull-display-list (spec.md §4.4): validates the
// vertex range, then culls (treats as end-of-list) if every referenced
// vertex shares a common off-screen clip-code bit.
func handleCullDL(i *Interpreter, m Macro) {
	v0 := int(m.Arg(0))
	vn := int(m.Arg(1))
	if v0 >= i.Pipeline.LastLoadedVtxNum || vn >= i.Pipeline.LastLoadedVtxNum {
		i.Diag.Emit(DiagCullingBadVerts)
	}
	if vn <= v0 {
		i.Diag.Emit(DiagCullingBadIndices)
	}
	if !InBounds(v0) || !InBounds(vn) {
		i.Diag.Emit(DiagCullingVertsOOB)
		return
	}
	if i.Opts.NoVolumeCull {
		return
	}
	clipAnd := uint8(0xFF)
	for idx := v0; idx <= vn && idx < vertexCacheSize; idx++ {
		clipAnd &= i.Vertices.Slots[idx].ClipCode
	}
	if clipAnd != 0 {
		// every vertex shares an off-screen side: cull.
		if pc, ok := i.DLStack.Pop(); ok {
			i.SetPC(pc)
		} else {
			i.TaskDone = true
		}
	}
}

// handleBranchZ implements Branch-less-z (spec.md §4.4): follows the branch
// if the loaded vertex's w is less than zval, subject to the debug
// force-always/force-never flags.
func handleBranchZ(i *Interpreter, m Macro) {
	vtx := int(m.Arg(0))
	dl := uint32(m.Arg(1))
	zval := float32(m.Arg(2))

	take := false
	switch {
	case i.Opts.AllDepthCull:
		take = true
	case i.Opts.NoDepthCull:
		take = false
	case InBounds(vtx):
		take = i.Vertices.Slots[vtx].W < zval
	}

	if take {
		i.Diag.Notef("BranchLessZ success\n")
		phys := i.Segments.Translate(i.Diag, dl)
		i.SetPC(phys)
	}
}
