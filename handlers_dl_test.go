package main

import "testing"

func TestHandleCullDLCullsWhenAllOffscreen(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	interp.Pipeline.LastLoadedVtxNum = 2
	interp.Vertices.Slots[0].ClipCode = ClipPlusX
	interp.Vertices.Slots[1].ClipCode = ClipPlusX | ClipPlusY

	interp.DLStack.Push(interp.Diag, 0x1234)
	handleCullDL(interp, Macro{Args: []int64{0, 1}})

	if interp.Diag.Crashed() {
		t.Fatal("a valid cull should not crash")
	}
	if interp.PC != 0x1234 {
		t.Fatalf("PC = %#x, want 0x1234 (culled back to caller)", interp.PC)
	}
}

func TestHandleCullDLDoesNotCullWhenVisible(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	interp.Pipeline.LastLoadedVtxNum = 2
	interp.Vertices.Slots[0].ClipCode = ClipPlusX
	interp.Vertices.Slots[1].ClipCode = 0 // not off the same side

	interp.PC = 0x500
	handleCullDL(interp, Macro{Args: []int64{0, 1}})

	if interp.PC != 0x500 {
		t.Fatalf("PC = %#x, want unchanged 0x500 (not culled)", interp.PC)
	}
}

func TestHandleCullDLOOBVertsFatal(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	handleCullDL(interp, Macro{Args: []int64{-1, 1}})
	if !interp.Diag.Crashed() {
		t.Fatal("out-of-bounds cull vertices must be fatal")
	}
}

func TestHandleCullDLRespectsNoVolumeCull(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	interp.Opts.NoVolumeCull = true
	interp.Pipeline.LastLoadedVtxNum = 2
	interp.Vertices.Slots[0].ClipCode = ClipPlusX
	interp.Vertices.Slots[1].ClipCode = ClipPlusX

	interp.PC = 0x500
	handleCullDL(interp, Macro{Args: []int64{0, 1}})
	if interp.PC != 0x500 {
		t.Fatal("--no-volume-cull must disable culling entirely")
	}
}

func TestHandleBranchZTakesWhenCloser(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	interp.Vertices.Slots[0].valid = true
	interp.Vertices.Slots[0].W = 1.0

	handleBranchZ(interp, Macro{Args: []int64{0, 0x06000100, 2}})
	if interp.PC != 0x100 {
		t.Fatalf("PC = %#x, want 0x100 (branch taken)", interp.PC)
	}
}

func TestHandleBranchZNotTakenWhenFarther(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	interp.Vertices.Slots[0].valid = true
	interp.Vertices.Slots[0].W = 5.0
	interp.PC = 0x500

	handleBranchZ(interp, Macro{Args: []int64{0, 0x06000100, 2}})
	if interp.PC != 0x500 {
		t.Fatalf("PC = %#x, want unchanged 0x500 (branch not taken)", interp.PC)
	}
}

func TestHandleBranchZAllDepthCullForcesTake(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	interp.Opts.AllDepthCull = true
	interp.Vertices.Slots[0].W = 999.0

	handleBranchZ(interp, Macro{Args: []int64{0, 0x06000100, 0}})
	if interp.PC != 0x100 {
		t.Fatal("--all-depth-cull must force the branch to be taken")
	}
}
