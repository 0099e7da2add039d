package main

import "testing"

func TestHandleMoveWordAssignsSegment(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	handleMoveWord(interp, Macro{Args: []int64{moveWordSegment, 24, 0x06100000}})
	if interp.Diag.Crashed() {
		t.Fatal("a valid segment assignment should not crash")
	}
	base, assigned := interp.Segments.Base(6)
	if !assigned || base != 0x06100000 {
		t.Fatalf("segment 6 = %#x, %v; want 0x06100000, true", base, assigned)
	}
}

func TestHandleMoveWordPerspNorm(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	handleMoveWord(interp, Macro{Args: []int64{moveWordPerspNorm, 0, 5}})
	if interp.PerspNorm != 5 {
		t.Fatalf("PerspNorm = %v, want 5", interp.PerspNorm)
	}
}

func TestHandleMoveWordPerspNormIgnoresZero(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	interp.PerspNorm = 3
	handleMoveWord(interp, Macro{Args: []int64{moveWordPerspNorm, 0, 0}})
	if interp.PerspNorm != 3 {
		t.Fatalf("PerspNorm = %v, want unchanged 3 for a zero value", interp.PerspNorm)
	}
}

func TestHandleMoveWordUnknownIndexRecordedNotFatal(t *testing.T) {
	interp := newTestInterpreterForHandlers()
	handleMoveWord(interp, Macro{Args: []int64{0x42, 0, 0}})
	if interp.Diag.Crashed() {
		t.Fatal("an unrecognized MoveWord index should just be recorded, not fatal")
	}
}
