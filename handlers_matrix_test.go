package main

import "testing"

func newTestInterpreterForHandlers() *Interpreter {
	img := make([]byte, 0x2000)
	interp, _ := newTestInterpreter(img)
	return interp
}

func TestHandleMtxLoadModelview(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	m := IdentityMtxF()
	m.M[3][0] = 5
	raw := EncodeMtx(m)
	copy(interp.Backend.(*fakeRDRAMBackend).data[0x200:], raw[:])

	handleMtx(interp, Macro{Args: []int64{0x80000200, mtxLoad}})
	if interp.Diag.Crashed() {
		t.Fatal("a valid matrix load should not crash")
	}
	if interp.Matrices.Top() != m {
		t.Fatalf("Top() = %v, want %v", interp.Matrices.Top(), m)
	}
}

func TestHandleMtxPushOnlyAffectsModelview(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	m := IdentityMtxF()
	raw := EncodeMtx(m)
	copy(interp.Backend.(*fakeRDRAMBackend).data[0x200:], raw[:])

	depthBefore := interp.Matrices.Depth()
	handleMtx(interp, Macro{Args: []int64{0x80000200, mtxLoad | mtxPush}})
	if interp.Diag.Crashed() {
		t.Fatal("a valid push+load should not crash")
	}
	if interp.Matrices.Depth() != depthBefore+1 {
		t.Fatalf("Depth() = %d, want %d", interp.Matrices.Depth(), depthBefore+1)
	}
}

func TestHandleMtxProjectionNeverPushes(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	m := IdentityMtxF()
	raw := EncodeMtx(m)
	copy(interp.Backend.(*fakeRDRAMBackend).data[0x200:], raw[:])

	// projection + push + load: the projection stack has no push, so this is fatal.
	handleMtx(interp, Macro{Args: []int64{0x80000200, mtxProjection | mtxLoad | mtxPush}})
	if !interp.Diag.Crashed() {
		t.Fatal("pushing to the projection matrix stack must be fatal")
	}
}

func TestHandleMtxProjectionLoadWithoutPush(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	m := IdentityMtxF()
	raw := EncodeMtx(m)
	copy(interp.Backend.(*fakeRDRAMBackend).data[0x200:], raw[:])

	depthBefore := interp.Matrices.Depth()
	handleMtx(interp, Macro{Args: []int64{0x80000200, mtxProjection | mtxLoad}})
	if interp.Diag.Crashed() {
		t.Fatal("a valid projection load should not crash")
	}
	if interp.Matrices.Depth() != depthBefore {
		t.Fatal("a projection-only load must not affect the modelview stack")
	}
}

func TestHandlePopMtxUnderflow(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	handlePopMtx(interp, Macro{})
	if !interp.Diag.Crashed() {
		t.Fatal("popping the base modelview matrix must be fatal")
	}
}
