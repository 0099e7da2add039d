package main

import "testing"

func TestMatrixStackPushPopDepth(t *testing.T) {
	s := NewMatrixStack(16 * matrixSizeBytes)
	d := newTestDiagnostics()

	if s.Depth() != 1 {
		t.Fatalf("initial depth = %d, want 1", s.Depth())
	}
	s.Push(d)
	if s.Depth() != 2 {
		t.Fatalf("depth after push = %d, want 2", s.Depth())
	}
	s.Pop(d)
	if s.Depth() != 1 {
		t.Fatalf("depth after pop = %d, want 1", s.Depth())
	}
	if d.Crashed() {
		t.Fatal("balanced push/pop should not crash")
	}
}

func TestMatrixStackUnderflow(t *testing.T) {
	s := NewMatrixStack(16 * matrixSizeBytes)
	d := newTestDiagnostics()

	s.Pop(d)
	if !d.Crashed() {
		t.Fatal("popping the base matrix must be a fatal underflow")
	}
	if s.Depth() != 1 {
		t.Fatalf("depth after rejected pop = %d, want unchanged 1", s.Depth())
	}
}

func TestMatrixStackOverflow(t *testing.T) {
	budget := 2 * matrixSizeBytes
	s := NewMatrixStack(budget)
	d := newTestDiagnostics()

	s.Push(d)
	if d.Crashed() {
		t.Fatal("push within budget should not crash")
	}
	s.Push(d)
	if !d.Crashed() {
		t.Fatal("push exceeding the configured DRAM stack budget must be fatal")
	}
}

func TestMatrixStackMulModelviewBeforeLoad(t *testing.T) {
	s := NewMatrixStack(16 * matrixSizeBytes)
	d := newTestDiagnostics()

	s.MulModelview(d, IdentityMtxF())
	if !d.Crashed() {
		t.Fatal("multiplying an unset modelview matrix must be fatal")
	}
}

func TestMatrixStackMulProjectionBeforeLoad(t *testing.T) {
	s := NewMatrixStack(16 * matrixSizeBytes)
	d := newTestDiagnostics()

	s.MulProjection(d, IdentityMtxF())
	if !d.Crashed() {
		t.Fatal("multiplying an unset projection matrix must be fatal")
	}
}

func TestMatrixStackMVPRequiresBoth(t *testing.T) {
	s := NewMatrixStack(16 * matrixSizeBytes)

	mvp := s.MVP()
	zero := MtxF{}
	if mvp != zero {
		t.Fatalf("MVP with neither matrix loaded = %v, want zero value", mvp)
	}

	s.LoadModelview(IdentityMtxF())
	mvp = s.MVP()
	if mvp != zero {
		t.Fatal("MVP with only modelview loaded should remain the zero value")
	}

	proj := IdentityMtxF()
	proj.M[3][0] = 99
	s.LoadProjection(proj)
	mvp = s.MVP()
	if mvp != proj {
		t.Fatalf("MVP of identity modelview * projection = %v, want %v", mvp, proj)
	}
}

func TestMatrixStackMVPRecomputesOnChange(t *testing.T) {
	s := NewMatrixStack(16 * matrixSizeBytes)
	s.LoadModelview(IdentityMtxF())
	s.LoadProjection(IdentityMtxF())

	first := s.MVP()
	if first != IdentityMtxF() {
		t.Fatalf("initial MVP = %v, want identity", first)
	}

	m := IdentityMtxF()
	m.M[3][1] = 42
	s.LoadModelview(m)

	second := s.MVP()
	if second == first {
		t.Fatal("MVP should have recomputed after LoadModelview changed the top")
	}
}
